package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/indaco/bumpkind/internal/config"
	"github.com/indaco/bumpkind/internal/core"
	"github.com/indaco/bumpkind/internal/operations"
	"github.com/indaco/bumpkind/internal/printer"
	"github.com/indaco/bumpkind/internal/semver"
	"github.com/indaco/bumpkind/internal/version"
	"github.com/tidwall/sjson"
	urfavecli "github.com/urfave/cli/v3"
)

// ErrUsage is returned for invalid invocations.
var ErrUsage = errors.New("usage error")

const (
	formatText = "text"
	formatJSON = "json"
)

// New builds and returns the root CLI command. The classification result is
// written to stdout; diagnostics go through the printer package.
func New(fs core.FileSystem, stdout io.Writer) *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "bumpkind",
		Version:   version.GetVersion(),
		Usage:     "Report the semver bump kind between a changelog and its package manifest",
		UsageText: "bumpkind [options] <changelog>",
		ArgsUsage: "<changelog>",
		Writer:    stdout,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to the package manifest (default: Cargo.toml next to the changelog)",
			},
			&urfavecli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the config file",
				DefaultText: config.DefaultFile,
			},
			&urfavecli.StringFlag{
				Name:  "format",
				Usage: "Output format: text or json",
				Value: formatText,
			},
			&urfavecli.StringFlag{
				Name:  "expect",
				Usage: "Fail unless the bump kind is this one (major, minor, patch)",
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Print the versions being compared to stderr",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runClassify(ctx, cmd, fs, stdout)
		},
	}
}

// runClassify validates the invocation, runs the classification and prints
// the result.
func runClassify(ctx context.Context, cmd *urfavecli.Command, fs core.FileSystem, stdout io.Writer) error {
	if n := cmd.Args().Len(); n != 1 {
		return fmt.Errorf("%w: expected exactly one changelog path, got %d argument(s)", ErrUsage, n)
	}

	format := cmd.String("format")
	if format != formatText && format != formatJSON {
		return fmt.Errorf("%w: unknown format %q (expected text or json)", ErrUsage, format)
	}

	var expected semver.Kind
	if s := cmd.String("expect"); s != "" {
		k, err := semver.ParseKind(s)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		expected = k
	}

	cfg, err := config.LoadConfigFn(ctx, fs, cmd.String("config"))
	if err != nil {
		return err
	}

	report, err := operations.NewClassifyOperation(fs, cfg).Run(ctx, cmd.Args().First(), cmd.String("manifest"))
	if err != nil {
		return err
	}

	if cmd.Bool("verbose") {
		printer.PrintFaint(fmt.Sprintf("changelog %s: %s", report.ChangelogPath, report.ChangelogVersion))
		printer.PrintFaint(fmt.Sprintf("manifest  %s: %s %s", report.ManifestPath, report.Package, report.ManifestVersion))
		if report.ChangelogVersion == report.ManifestVersion {
			printer.PrintWarning(fmt.Sprintf("changelog heading %s matches the manifest version; no new version declared", report.ChangelogVersion))
		}
	}

	if expected != "" {
		if err := report.Check(expected); err != nil {
			return err
		}
		if cmd.Bool("verbose") {
			printer.PrintSuccess(fmt.Sprintf("bump kind matches expected %s", expected))
		}
	}

	return writeReport(stdout, report, format)
}

// writeReport prints exactly one line: the bare kind, or a JSON object.
func writeReport(w io.Writer, report *operations.Report, format string) error {
	line := report.Kind.String()
	if format == formatJSON {
		var err error
		if line, err = reportJSON(report); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func reportJSON(report *operations.Report) (string, error) {
	fields := []struct {
		path  string
		value string
	}{
		{"kind", report.Kind.String()},
		{"package", report.Package},
		{"changelog.path", report.ChangelogPath},
		{"changelog.version", report.ChangelogVersion},
		{"manifest.path", report.ManifestPath},
		{"manifest.version", report.ManifestVersion},
	}

	out := "{}"
	for _, f := range fields {
		var err error
		if out, err = sjson.Set(out, f.path, f.value); err != nil {
			return "", fmt.Errorf("failed to render %s: %w", f.path, err)
		}
	}
	return out, nil
}
