package files

import (
	"context"
)

// Store performs the filesystem primitives behind file operations.
// Errors are returned as produced by the underlying filesystem, callers classify them.
type Store interface {
	RootTitle() string
	CreateDir(ctx context.Context, path string) error
	CreateFile(ctx context.Context, path string) error
	Rename(ctx context.Context, oldPath, newPath string) error
	Delete(ctx context.Context, path string, kind Kind) error
}
