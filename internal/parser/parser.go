package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/bumpkind/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// Reader extracts string fields from structured files.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// ReadFields decodes the file once and returns the string value of every
// requested dot-notation field, keyed by the field path.
// I/O failures are returned as-is (wrapped); decode and lookup failures wrap
// ErrSyntax, ErrFieldNotFound or ErrNotString.
func (r *Reader) ReadFields(ctx context.Context, cfg FileConfig, fields ...string) (map[string]string, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file path is required")
	}

	if !cfg.Format.IsValid() {
		return nil, fmt.Errorf("invalid format: %s", cfg.Format)
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	obj, err := decode(data, cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s in %q: %w: %v", strings.ToUpper(cfg.Format.String()), cfg.Path, ErrSyntax, err)
	}

	values := make(map[string]string, len(fields))
	for _, field := range fields {
		v, err := stringField(obj, field)
		if err != nil {
			return nil, fmt.Errorf("in file %q: %w", cfg.Path, err)
		}
		values[field] = v
	}

	return values, nil
}

func decode(data []byte, format Format) (map[string]any, error) {
	var obj map[string]any
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &obj)
	case FormatJSON:
		err = json.Unmarshal(data, &obj)
	case FormatYAML:
		err = yaml.Unmarshal(data, &obj)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, err
	}
	if obj == nil {
		obj = map[string]any{}
	}
	return obj, nil
}

func stringField(obj map[string]any, field string) (string, error) {
	value, err := getNestedValue(obj, field)
	if err != nil {
		return "", err
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotString, field)
	}
	return s, nil
}

// getNestedValue retrieves a value from a nested map using dot notation.
// Example: "tool.poetry.version" accesses obj["tool"]["poetry"]["version"]
func getNestedValue(obj map[string]any, field string) (any, error) {
	if field == "" {
		return nil, fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a table at %q", ErrFieldNotFound, strings.Join(parts[:i], "."), part)
		}

		value, exists := currentMap[part]
		if !exists {
			return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, field)
		}

		current = value
	}

	return current, nil
}
