package files

import (
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const listBatchSize = 64

type dirReader interface {
	ReadDir(n int) ([]os.DirEntry, error)
	Close() error
}

var osOpenDir = func(name string) (dirReader, error) {
	return os.Open(name)
}

var osStat = os.Stat

// Lister reads directory children on demand. It keeps no cache:
// every call to List goes to the filesystem.
type Lister struct {
	log logrus.FieldLogger
}

func NewLister(log logrus.FieldLogger) *Lister {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Lister{log: log}
}

// List opens dirPath for reading. Failing to open the directory itself is
// reported here; children that can not be inspected are skipped later.
func (l *Lister) List(dirPath string) (*Listing, error) {
	reader, err := osOpenDir(dirPath)
	if err != nil {
		return nil, NewError("list", dirPath, err)
	}
	return &Listing{
		dir:    dirPath,
		reader: reader,
		log:    l.log.WithField("dir", dirPath),
	}, nil
}

// Listing is a single pass over the children of a directory.
type Listing struct {
	dir    string
	reader dirReader
	log    logrus.FieldLogger
	done   bool
	err    error
}

// Entries yields children lazily in filesystem enumeration order.
// The sequence can be ranged over once; later ranges yield nothing.
func (l *Listing) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if l.done {
			return
		}
		defer l.Close()
		for {
			batch, err := l.reader.ReadDir(listBatchSize)
			for _, child := range batch {
				entry, ok := l.resolve(child)
				if !ok {
					continue
				}
				if !yield(entry) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					l.err = NewError("list", l.dir, err)
				}
				return
			}
			if len(batch) == 0 {
				return
			}
		}
	}
}

// Err returns the error that ended the enumeration early, if any.
func (l *Listing) Err() error {
	return l.err
}

// Close releases the directory handle. Safe to call more than once.
func (l *Listing) Close() {
	if l.done {
		return
	}
	l.done = true
	if err := l.reader.Close(); err != nil {
		l.log.WithError(err).Debug("failed to close directory")
	}
}

func (l *Listing) resolve(child os.DirEntry) (Entry, bool) {
	name := child.Name()
	info, err := osStat(filepath.Join(l.dir, name))
	if err != nil {
		l.log.WithError(err).WithField("name", name).Debug("skipping unreadable entry")
		return Entry{}, false
	}
	switch {
	case info.IsDir():
		return NewEntry(l.dir, name, KindDirectory), true
	case info.Mode().IsRegular():
		return NewEntry(l.dir, name, KindFile), true
	default:
		l.log.WithField("name", name).Debug("skipping special entry")
		return Entry{}, false
	}
}
