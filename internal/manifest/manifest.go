// Package manifest loads the package name and version declared in a
// package manifest such as Cargo.toml.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/indaco/bumpkind/internal/core"
	"github.com/indaco/bumpkind/internal/parser"
)

const (
	DefaultFileName     = "Cargo.toml"
	DefaultNameField    = "package.name"
	DefaultVersionField = "package.version"
)

// ErrMalformedManifest is returned when the manifest cannot be parsed or lacks
// the name/version fields.
var ErrMalformedManifest = errors.New("malformed manifest")

// Manifest holds the fields bumpkind needs from a package manifest.
type Manifest struct {
	Name    string
	Version string
}

// Options selects the manifest format and the fields holding name and version.
type Options struct {
	Format       parser.Format
	NameField    string
	VersionField string
}

// DefaultOptions returns the Cargo.toml layout: [package] name / version.
func DefaultOptions() Options {
	return Options{
		Format:       parser.FormatTOML,
		NameField:    DefaultNameField,
		VersionField: DefaultVersionField,
	}
}

// Loader reads manifests through a core.FileSystem.
type Loader struct {
	reader *parser.Reader
	opts   Options
}

// NewLoader creates a Loader; empty option fields take their defaults.
func NewLoader(fs core.FileSystem, opts Options) *Loader {
	def := DefaultOptions()
	if opts.Format == "" {
		opts.Format = def.Format
	}
	if opts.NameField == "" {
		opts.NameField = def.NameField
	}
	if opts.VersionField == "" {
		opts.VersionField = def.VersionField
	}
	return &Loader{reader: parser.NewReader(fs), opts: opts}
}

// Load parses the manifest at path. I/O failures are returned wrapped as-is;
// every decoding or lookup failure wraps ErrMalformedManifest.
func (l *Loader) Load(ctx context.Context, path string) (*Manifest, error) {
	values, err := l.reader.ReadFields(ctx, parser.FileConfig{
		Path:   path,
		Format: l.opts.Format,
	}, l.opts.NameField, l.opts.VersionField)
	if err != nil {
		if isMalformed(err) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedManifest, err)
		}
		return nil, err
	}

	return &Manifest{
		Name:    values[l.opts.NameField],
		Version: values[l.opts.VersionField],
	}, nil
}

// PathFor returns the manifest that sits next to the changelog at
// changelogPath.
func PathFor(changelogPath, fileName string) string {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return filepath.Join(filepath.Dir(changelogPath), fileName)
}

func isMalformed(err error) bool {
	return errors.Is(err, parser.ErrSyntax) ||
		errors.Is(err, parser.ErrFieldNotFound) ||
		errors.Is(err, parser.ErrNotString)
}
