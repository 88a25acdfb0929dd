// Package operations provides the end-to-end classification run.
package operations

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/indaco/bumpkind/internal/changelog"
	"github.com/indaco/bumpkind/internal/config"
	"github.com/indaco/bumpkind/internal/core"
	"github.com/indaco/bumpkind/internal/manifest"
	"github.com/indaco/bumpkind/internal/semver"
)

// DefaultChangelogFile is looked up when the changelog argument is a directory.
const DefaultChangelogFile = "CHANGELOG.md"

// ErrKindMismatch is returned by Check when the computed kind is not the
// expected one.
var ErrKindMismatch = errors.New("bump kind mismatch")

// Report describes one classification run.
type Report struct {
	Kind             semver.Kind
	Package          string
	ChangelogVersion string
	ManifestVersion  string
	ChangelogPath    string
	ManifestPath     string
}

// ClassifyOperation reads a changelog and its sibling manifest and classifies
// the version change between them.
type ClassifyOperation struct {
	fs           core.FileSystem
	changelog    *changelog.Reader
	manifest     *manifest.Loader
	manifestFile string
}

// NewClassifyOperation creates a classify operation using cfg for file layout.
func NewClassifyOperation(fs core.FileSystem, cfg *config.Config) *ClassifyOperation {
	if cfg == nil {
		cfg = config.Default()
	}
	return &ClassifyOperation{
		fs:           fs,
		changelog:    changelog.NewReader(fs, cfg.ChangelogOptions()),
		manifest:     manifest.NewLoader(fs, cfg.ManifestOptions()),
		manifestFile: cfg.Manifest.File,
	}
}

// Run classifies the changelog at changelogPath, which may also name the
// directory holding CHANGELOG.md. When manifestPath is empty it is derived
// from the changelog's directory.
func (op *ClassifyOperation) Run(ctx context.Context, changelogPath, manifestPath string) (*Report, error) {
	if changelogPath == "" {
		return nil, fmt.Errorf("changelog path is required")
	}
	changelogPath = op.normalizeChangelogPath(ctx, changelogPath)
	if manifestPath == "" {
		manifestPath = manifest.PathFor(changelogPath, op.manifestFile)
	}

	clVersion, err := op.changelog.ReadVersion(ctx, changelogPath)
	if err != nil {
		return nil, err
	}

	m, err := op.manifest.Load(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest %q: %w", manifestPath, err)
	}

	return &Report{
		Kind:             semver.Classify(clVersion, m.Version),
		Package:          m.Name,
		ChangelogVersion: clVersion,
		ManifestVersion:  m.Version,
		ChangelogPath:    changelogPath,
		ManifestPath:     manifestPath,
	}, nil
}

// Check returns ErrKindMismatch when the report's kind differs from expected.
func (r *Report) Check(expected semver.Kind) error {
	if r.Kind != expected {
		return fmt.Errorf("%w: %s %s -> %s is a %s bump, expected %s",
			ErrKindMismatch, r.Package, r.ManifestVersion, r.ChangelogVersion, r.Kind, expected)
	}
	return nil
}

// normalizeChangelogPath ensures the path is a file, not just a directory.
// Stat failures are left for the subsequent read to report.
func (op *ClassifyOperation) normalizeChangelogPath(ctx context.Context, path string) string {
	info, err := op.fs.Stat(ctx, path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, DefaultChangelogFile)
	}
	return path
}
