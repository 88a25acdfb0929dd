package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/indaco/bumpkind/internal/parser"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.Changelog.HeadingPrefix == "" {
		errs = append(errs, fmt.Errorf("%w: changelog.heading-prefix must not be empty", ErrInvalidConfig))
	}
	if strings.ContainsAny(c.Changelog.HeadingPrefix, "\r\n") {
		errs = append(errs, fmt.Errorf("%w: changelog.heading-prefix must be a single line", ErrInvalidConfig))
	}

	if !parser.Format(c.Manifest.Format).IsValid() {
		errs = append(errs, fmt.Errorf("%w: manifest.format %q is not one of %s",
			ErrInvalidConfig, c.Manifest.Format, strings.Join(parser.ValidFormats(), ", ")))
	}
	if err := validateFileName(c.Manifest.File); err != nil {
		errs = append(errs, err)
	}
	if c.Manifest.NameField == "" {
		errs = append(errs, fmt.Errorf("%w: manifest.name-field must not be empty", ErrInvalidConfig))
	}
	if c.Manifest.VersionField == "" {
		errs = append(errs, fmt.Errorf("%w: manifest.version-field must not be empty", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// validateFileName requires a bare file name: the manifest always sits next
// to the changelog.
func validateFileName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: manifest.file must not be empty", ErrInvalidConfig)
	case strings.Contains(name, ".."):
		return fmt.Errorf("%w: manifest.file %q: path traversal not allowed", ErrInvalidConfig, name)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: manifest.file %q must be a file name, not a path", ErrInvalidConfig, name)
	}
	return nil
}
