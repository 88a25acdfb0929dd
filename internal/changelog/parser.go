// Package changelog extracts the most recent version heading from a
// changelog document.
//
// A version heading is a line beginning with a fixed prefix ("# v" by
// default) followed by the version token. A heading for a version that has
// not shipped yet carries the suffix " (unreleased)", which is stripped:
//
//	# v1.4.0 (unreleased)   ->  1.4.0
//	# v1.3.2                ->  1.3.2
//
// Only the first heading in the document is considered.
package changelog

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/indaco/bumpkind/internal/core"
)

const (
	// DefaultHeadingPrefix marks a version heading line.
	DefaultHeadingPrefix = "# v"

	// DefaultUnreleasedSuffix marks a heading for a version not yet released.
	DefaultUnreleasedSuffix = " (unreleased)"

	maxLineSize = 1024 * 1024
)

// ErrVersionNotFound is returned when no line carries the heading prefix.
var ErrVersionNotFound = errors.New("no version heading found in changelog")

// Options controls how version headings are recognized.
type Options struct {
	HeadingPrefix    string
	UnreleasedSuffix string
}

// DefaultOptions returns the "# v" / " (unreleased)" convention.
func DefaultOptions() Options {
	return Options{
		HeadingPrefix:    DefaultHeadingPrefix,
		UnreleasedSuffix: DefaultUnreleasedSuffix,
	}
}

// ExtractVersion scans r from the top and returns the version token of the
// first heading line. Trailing whitespace is ignored. ErrVersionNotFound is
// returned when there is none.
func ExtractVersion(r io.Reader, opts Options) (string, error) {
	if opts.HeadingPrefix == "" {
		return "", fmt.Errorf("heading prefix is required")
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		version, ok := strings.CutPrefix(line, opts.HeadingPrefix)
		if !ok {
			continue
		}
		if opts.UnreleasedSuffix != "" {
			version = strings.TrimSuffix(version, opts.UnreleasedSuffix)
		}
		return version, nil
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to scan changelog: %w", err)
	}

	return "", ErrVersionNotFound
}

// Reader reads version headings from changelog files.
type Reader struct {
	fs   core.FileSystem
	opts Options
}

// NewReader creates a Reader. An empty HeadingPrefix falls back to
// DefaultHeadingPrefix; an empty UnreleasedSuffix disables stripping.
func NewReader(fs core.FileSystem, opts Options) *Reader {
	if opts.HeadingPrefix == "" {
		opts.HeadingPrefix = DefaultHeadingPrefix
	}
	return &Reader{fs: fs, opts: opts}
}

// ReadVersion returns the latest version declared in the changelog at path.
func (r *Reader) ReadVersion(ctx context.Context, path string) (string, error) {
	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to read changelog %q: %w", path, err)
	}

	version, err := ExtractVersion(bytes.NewReader(data), r.opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return version, nil
}
