package files

import (
	"path/filepath"
)

// Kind tells a directory from a file. Nothing else is listed.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry is a snapshot of one child of a listed directory.
// It has no identity beyond its path: two listings produce independent values.
type Entry struct {
	Name     string
	FullPath string
	Kind     Kind
}

func NewEntry(dir, name string, kind Kind) Entry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("entry name can not have path: " + name)
	}
	return Entry{
		Name:     name,
		FullPath: filepath.Join(dir, name),
		Kind:     kind,
	}
}

func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

func (e Entry) String() string {
	return e.FullPath
}
