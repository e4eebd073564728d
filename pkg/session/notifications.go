package session

import (
	"errors"

	"github.com/datatug/fexplorer/pkg/files"
)

type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notification is a message meant for the user, not the log.
type Notification struct {
	Level Level
	Text  string
	Err   error
}

const maxNotifications = 50

type notifications struct {
	items []Notification
}

func (n *notifications) info(text string) {
	n.push(Notification{Level: LevelInfo, Text: text})
}

func (n *notifications) error(err error) {
	n.push(Notification{Level: LevelError, Text: describe(err), Err: err})
}

func (n *notifications) push(item Notification) {
	n.items = append(n.items, item)
	if over := len(n.items) - maxNotifications; over > 0 {
		n.items = n.items[over:]
	}
}

func (n *notifications) all() []Notification {
	return append([]Notification(nil), n.items...)
}

func (n *notifications) last() (Notification, bool) {
	if len(n.items) == 0 {
		return Notification{}, false
	}
	return n.items[len(n.items)-1], true
}

// describe turns an error into a sentence for the status line.
func describe(err error) string {
	var typed *files.Error
	if !errors.As(err, &typed) {
		return err.Error()
	}
	subject := typed.Path
	if subject == "" {
		subject = "item"
	}
	switch typed.Kind {
	case files.NotFound:
		return "Can not " + typed.Op + ": " + subject + " does not exist"
	case files.AlreadyExists:
		return "Can not " + typed.Op + ": " + subject + " already exists"
	case files.PermissionDenied:
		return "Can not " + typed.Op + ": permission denied for " + subject
	case files.DirectoryNotEmpty:
		return "Can not " + typed.Op + ": " + subject + " is not empty"
	case files.InvalidVolume:
		return "Unknown volume " + subject
	case files.UnsupportedPlatform:
		return "Opening files is not supported on this system"
	case files.LaunchFailed:
		return "Could not open " + subject
	default:
		return typed.Error()
	}
}
