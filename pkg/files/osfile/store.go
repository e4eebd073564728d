package osfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/datatug/fexplorer/pkg/files"
)

var osHostname = os.Hostname
var osMkdir = os.Mkdir
var osOpenFile = os.OpenFile
var osRemove = os.Remove
var osRemoveAll = os.RemoveAll
var osRename = os.Rename
var osLstat = os.Lstat

var _ files.Store = (*Store)(nil)

// Store performs file operations on the local disk.
type Store struct {
	title string
}

func (s Store) RootTitle() string {
	return strings.TrimSuffix(s.title, ".local")
}

func (s Store) CreateDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osMkdir(path, 0o755)
}

// CreateFile creates an empty file and fails if anything already has that name.
func (s Store) CreateFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := osOpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Rename moves oldPath to newPath without replacing an existing newPath.
func (s Store) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return renameNoReplace(oldPath, newPath)
}

// Delete removes a file, or a directory with everything below it.
func (s Store) Delete(ctx context.Context, path string, kind files.Kind) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// RemoveAll reports success for a missing path.
	if _, err := osLstat(path); err != nil {
		return err
	}
	if kind == files.KindDirectory {
		return osRemoveAll(path)
	}
	return osRemove(path)
}

func checkedRename(oldPath, newPath string) error {
	oldInfo, err := osLstat(oldPath)
	if err != nil {
		return err
	}
	// On a case-insensitive filesystem a case-only rename finds the source itself.
	if newInfo, err := osLstat(newPath); err == nil {
		if !os.SameFile(oldInfo, newInfo) {
			return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: fs.ErrExist}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return osRename(oldPath, newPath)
}

func NewStore() *Store {
	var store Store
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = ""
	}
	return &store
}
