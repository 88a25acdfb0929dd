package parser

import "errors"

// Format represents the supported manifest file formats.
type Format string

const (
	// FormatTOML is for TOML files (Cargo.toml, pyproject.toml, etc.).
	FormatTOML Format = "toml"

	// FormatJSON is for JSON files (package.json, etc.).
	FormatJSON Format = "json"

	// FormatYAML is for YAML files (Chart.yaml, etc.).
	FormatYAML Format = "yaml"
)

var (
	// ErrFieldNotFound is returned when a requested field path is absent.
	ErrFieldNotFound = errors.New("field not found")

	// ErrNotString is returned when a field exists but does not hold a string.
	ErrNotString = errors.New("field is not a string")

	// ErrSyntax is returned when the document cannot be decoded.
	ErrSyntax = errors.New("syntax error")
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatTOML, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ValidFormats lists the accepted format names.
func ValidFormats() []string {
	return []string{FormatTOML.String(), FormatJSON.String(), FormatYAML.String()}
}

// FileConfig describes which file to read and how to decode it.
type FileConfig struct {
	// Path is the file path (absolute or relative).
	Path string

	// Format specifies the file format.
	Format Format
}
