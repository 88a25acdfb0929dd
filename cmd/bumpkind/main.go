// Command bumpkind prints the semantic-version bump kind (major, minor or
// patch) between the latest version heading of a changelog and the version
// declared in the package manifest next to it.
//
// Usage:
//
//	bumpkind [--manifest PATH] [--format text|json] [--expect KIND] CHANGELOG
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/bumpkind/internal/cli"
	"github.com/indaco/bumpkind/internal/core"
	"github.com/indaco/bumpkind/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

// runCLI builds the root command and runs it with args.
func runCLI(args []string) error {
	return cli.New(core.NewOSFileSystem(), os.Stdout).Run(context.Background(), args)
}
