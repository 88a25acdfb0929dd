// Package core holds the small set of abstractions shared across bumpkind's
// packages, chiefly the filesystem interface used to read changelogs and
// manifests.
package core

import (
	"context"
	"os"
)

// FileMode is an alias kept so callers do not need to import os for permissions.
type FileMode = os.FileMode

// PermOwnerRW grants read/write to the owner only.
const PermOwnerRW FileMode = 0o600

// FileSystem abstracts the file operations bumpkind performs.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	Stat(ctx context.Context, path string) (os.FileInfo, error)
}

// OSFileSystem implements FileSystem on top of the os package.
type OSFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the real filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (f *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (f *OSFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

// Ensure OSFileSystem implements FileSystem.
var _ FileSystem = (*OSFileSystem)(nil)
