// Package fs defines the filesystem abstraction used by perfdata-router.
// It provides the FS interface and the FileInfo type shared across the
// system; the router never touches the OS directly.
package fs

import (
	"context"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	MTime time.Time
	Inode uint64
}

type FS interface {
	Stat(path string) (FileInfo, error)
	DirExists(path string) bool
	CopyFile(ctx context.Context, src, dst string) error
	Rename(ctx context.Context, oldPath, newPath string) error
	Remove(ctx context.Context, path string) error
}
