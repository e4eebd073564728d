// Package fileops performs the mutations a user can request from the browser.
// Every operation is synchronous, never retried, and reports failure as *files.Error.
package fileops

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/datatug/fexplorer/pkg/files"
	"github.com/sirupsen/logrus"
)

// Launcher opens a path with the application the OS associates with it.
type Launcher interface {
	OpenWithDefaultHandler(path string) error
}

var errInvalidName = errors.New("invalid name")

type Executor struct {
	store    files.Store
	launcher Launcher
	log      logrus.FieldLogger
}

func NewExecutor(store files.Store, launcher Launcher, log logrus.FieldLogger) *Executor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Executor{store: store, launcher: launcher, log: log}
}

// CreateDirectory creates parent/name and returns its path.
func (x *Executor) CreateDirectory(ctx context.Context, parent, name string) (string, error) {
	const op = "create directory"
	if err := validateName(name); err != nil {
		return "", x.fail(op, filepath.Join(parent, name), err)
	}
	path := filepath.Join(parent, name)
	if err := x.store.CreateDir(ctx, path); err != nil {
		return "", x.fail(op, path, err)
	}
	x.log.WithField("path", path).Info("directory created")
	return path, nil
}

// CreateFile creates an empty parent/name and returns its path.
func (x *Executor) CreateFile(ctx context.Context, parent, name string) (string, error) {
	const op = "create file"
	if err := validateName(name); err != nil {
		return "", x.fail(op, filepath.Join(parent, name), err)
	}
	path := filepath.Join(parent, name)
	if err := x.store.CreateFile(ctx, path); err != nil {
		return "", x.fail(op, path, err)
	}
	x.log.WithField("path", path).Info("file created")
	return path, nil
}

// Rename gives oldPath a new name within the same directory and returns the new path.
// Keeping the current name is a no-op.
func (x *Executor) Rename(ctx context.Context, oldPath, newName string) (string, error) {
	const op = "rename"
	if err := validateName(newName); err != nil {
		return "", x.fail(op, oldPath, err)
	}
	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if newPath == filepath.Clean(oldPath) {
		return newPath, nil
	}
	if err := x.store.Rename(ctx, oldPath, newPath); err != nil {
		return "", x.fail(op, oldPath, err)
	}
	x.log.WithFields(logrus.Fields{"from": oldPath, "to": newPath}).Info("renamed")
	return newPath, nil
}

// Delete removes a file, or a directory recursively.
func (x *Executor) Delete(ctx context.Context, path string, kind files.Kind) error {
	if err := x.store.Delete(ctx, path, kind); err != nil {
		return x.fail("delete "+kind.String(), path, err)
	}
	x.log.WithFields(logrus.Fields{"path": path, "kind": kind}).Info("deleted")
	return nil
}

func (x *Executor) OpenWithDefaultHandler(path string) error {
	if err := x.launcher.OpenWithDefaultHandler(path); err != nil {
		var typed *files.Error
		if !errors.As(err, &typed) {
			typed = &files.Error{Op: "open", Path: path, Kind: files.LaunchFailed, Err: err}
		}
		x.log.WithFields(logrus.Fields{"op": typed.Op, "path": path, "kind": typed.Kind}).
			WithError(typed.Err).Warn("operation failed")
		return typed
	}
	return nil
}

func (x *Executor) fail(op, path string, err error) *files.Error {
	typed := files.NewError(op, path, err)
	x.log.WithFields(logrus.Fields{"op": op, "path": path, "kind": typed.Kind}).
		WithError(err).Warn("operation failed")
	return typed
}

func validateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return errInvalidName
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return errInvalidName
	}
	return nil
}
