//go:build linux

package osfile

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

var unixRenameat2 = unix.Renameat2

func renameNoReplace(oldPath, newPath string) error {
	err := unixRenameat2(unix.AT_FDCWD, oldPath, unix.AT_FDCWD, newPath, unix.RENAME_NOREPLACE)
	if err == nil {
		return nil
	}
	// Old kernels and some filesystems do not know the flag.
	if errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EINVAL) {
		return checkedRename(oldPath, newPath)
	}
	return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: err}
}
