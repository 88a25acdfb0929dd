package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/indaco/bumpkind/internal/changelog"
	"github.com/indaco/bumpkind/internal/core"
	"github.com/indaco/bumpkind/internal/manifest"
	"github.com/indaco/bumpkind/internal/parser"
)

const (
	// DefaultFile is looked up in the working directory when no path is given.
	DefaultFile = ".bumpkind.yaml"

	// EnvConfigPath names an alternate config file.
	EnvConfigPath = "BUMPKIND_CONFIG"
)

// ChangelogConfig controls how version headings are recognized.
type ChangelogConfig struct {
	HeadingPrefix    string `yaml:"heading-prefix,omitempty"`
	UnreleasedSuffix string `yaml:"unreleased-suffix,omitempty"`
}

// ManifestConfig controls where the manifest lives and how it is read.
type ManifestConfig struct {
	File         string `yaml:"file,omitempty"`
	Format       string `yaml:"format,omitempty"`
	NameField    string `yaml:"name-field,omitempty"`
	VersionField string `yaml:"version-field,omitempty"`
}

// Config is the main configuration structure for bumpkind.
type Config struct {
	Changelog ChangelogConfig `yaml:"changelog"`
	Manifest  ManifestConfig  `yaml:"manifest"`
}

// Default returns the Cargo.toml / "# v" configuration.
func Default() *Config {
	return &Config{
		Changelog: ChangelogConfig{
			HeadingPrefix:    changelog.DefaultHeadingPrefix,
			UnreleasedSuffix: changelog.DefaultUnreleasedSuffix,
		},
		Manifest: ManifestConfig{
			File:         manifest.DefaultFileName,
			Format:       parser.FormatTOML.String(),
			NameField:    manifest.DefaultNameField,
			VersionField: manifest.DefaultVersionField,
		},
	}
}

// fileConfig mirrors Config as it appears on disk. Pointer fields tell an
// absent key (default applies) from one explicitly set to "".
type fileConfig struct {
	Changelog struct {
		HeadingPrefix    *string `yaml:"heading-prefix"`
		UnreleasedSuffix *string `yaml:"unreleased-suffix"`
	} `yaml:"changelog"`
	Manifest struct {
		File         *string `yaml:"file"`
		Format       *string `yaml:"format"`
		NameField    *string `yaml:"name-field"`
		VersionField *string `yaml:"version-field"`
	} `yaml:"manifest"`
}

// toConfig overlays the keys present in the file onto Default().
func (f *fileConfig) toConfig() *Config {
	cfg := Default()
	overlay(&cfg.Changelog.HeadingPrefix, f.Changelog.HeadingPrefix)
	overlay(&cfg.Changelog.UnreleasedSuffix, f.Changelog.UnreleasedSuffix)
	overlay(&cfg.Manifest.File, f.Manifest.File)
	overlay(&cfg.Manifest.Format, f.Manifest.Format)
	overlay(&cfg.Manifest.NameField, f.Manifest.NameField)
	overlay(&cfg.Manifest.VersionField, f.Manifest.VersionField)
	return cfg
}

func overlay(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ChangelogOptions converts the changelog section for the changelog package.
func (c *Config) ChangelogOptions() changelog.Options {
	return changelog.Options{
		HeadingPrefix:    c.Changelog.HeadingPrefix,
		UnreleasedSuffix: c.Changelog.UnreleasedSuffix,
	}
}

// ManifestOptions converts the manifest section for the manifest package.
func (c *Config) ManifestOptions() manifest.Options {
	return manifest.Options{
		Format:       parser.Format(c.Manifest.Format),
		NameField:    c.Manifest.NameField,
		VersionField: c.Manifest.VersionField,
	}
}

// LoadConfigFn is a function variable so tests can stub configuration loading.
var LoadConfigFn = Load

// Load resolves and reads the configuration file.
//
// Lookup order: the explicit path, then $BUMPKIND_CONFIG, then .bumpkind.yaml
// in the working directory. Only the implicit default file may be absent, in
// which case Default() is returned.
//
// Keys missing from the file keep their default. Keys set to "" stay empty:
// unreleased-suffix: "" disables suffix stripping, while an empty
// heading-prefix or field path fails validation.
func Load(ctx context.Context, fs core.FileSystem, path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultFile
		explicit = false
	}

	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var raw fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	cfg := raw.toConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return cfg, nil
}
