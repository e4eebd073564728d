//go:build !linux

package osfile

func renameNoReplace(oldPath, newPath string) error {
	return checkedRename(oldPath, newPath)
}
