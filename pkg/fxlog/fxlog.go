// Package fxlog builds the logger shared by the application packages.
package fxlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/datatug/fexplorer/pkg/fsutils"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Level string
	// File receives log output. The terminal belongs to the UI, so without
	// a file, output goes to Fallback.
	File     string
	Fallback io.Writer
}

var osOpenFile = os.OpenFile
var osMkdirAll = os.MkdirAll

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a configured logger and a closer for its output.
func New(o Options) (*logrus.Logger, io.Closer, error) {
	level := logrus.InfoLevel
	if o.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(o.Level); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", o.Level, err)
		}
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	if o.File == "" {
		out := o.Fallback
		if out == nil {
			out = io.Discard
		}
		logger.SetOutput(out)
		return logger, nopCloser{}, nil
	}

	path := fsutils.ExpandHome(o.File)
	if err := osMkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := osOpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}
