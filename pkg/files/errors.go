package files

import (
	"errors"
	"io/fs"
	"syscall"
)

// ErrorKind classifies failures of file operations.
type ErrorKind int

const (
	IoError ErrorKind = iota
	NotFound
	AlreadyExists
	PermissionDenied
	DirectoryNotEmpty
	InvalidVolume
	UnsupportedPlatform
	LaunchFailed
)

var errorKindNames = [...]string{
	IoError:             "i/o error",
	NotFound:            "not found",
	AlreadyExists:       "already exists",
	PermissionDenied:    "permission denied",
	DirectoryNotEmpty:   "directory not empty",
	InvalidVolume:       "invalid volume",
	UnsupportedPlatform: "unsupported platform",
	LaunchFailed:        "launch failed",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return errorKindNames[IoError]
	}
	return errorKindNames[k]
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrNotFound            = &Error{Kind: NotFound}
	ErrAlreadyExists       = &Error{Kind: AlreadyExists}
	ErrPermissionDenied    = &Error{Kind: PermissionDenied}
	ErrDirectoryNotEmpty   = &Error{Kind: DirectoryNotEmpty}
	ErrInvalidVolume       = &Error{Kind: InvalidVolume}
	ErrUnsupportedPlatform = &Error{Kind: UnsupportedPlatform}
	ErrLaunchFailed        = &Error{Kind: LaunchFailed}
	ErrIO                  = &Error{Kind: IoError}
)

// Error is a typed failure of an operation on a path.
type Error struct {
	Op   string
	Path string
	Kind ErrorKind
	Err  error
}

func NewError(op, path string, err error) *Error {
	return &Error{
		Op:   op,
		Path: path,
		Kind: Classify(err),
		Err:  err,
	}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Op != "" {
		msg = e.Op + " " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	// Only bare sentinels match by kind.
	return t.Op == "" && t.Path == "" && t.Err == nil && t.Kind == e.Kind
}

// Classify maps an OS error onto ErrorKind. Unknown errors are IoError.
func Classify(err error) ErrorKind {
	var typed *Error
	switch {
	case err == nil:
		return IoError
	case errors.As(err, &typed):
		return typed.Kind
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrExist):
		return AlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, syscall.ENOTEMPTY):
		return DirectoryNotEmpty
	}
	return IoError
}
