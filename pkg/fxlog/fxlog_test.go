package fxlog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults_to_info_and_discard", func(t *testing.T) {
		logger, closer, err := New(Options{})
		require.NoError(t, err)
		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
		assert.NoError(t, closer.Close())
	})

	t.Run("fallback_writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger, _, err := New(Options{Level: "debug", Fallback: &buf})
		require.NoError(t, err)
		logger.WithField("path", "/tmp/x").Debug("directory created")
		assert.Contains(t, buf.String(), "level=debug")
		assert.Contains(t, buf.String(), "path=/tmp/x")
	})

	t.Run("invalid_level", func(t *testing.T) {
		_, _, err := New(Options{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "fexplorer.log")
		logger, closer, err := New(Options{Level: "warn", File: path})
		require.NoError(t, err)
		logger.Info("hidden")
		logger.Warn("shown")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.False(t, strings.Contains(string(data), "hidden"))
		assert.Contains(t, string(data), "shown")
	})

	t.Run("mkdir_error", func(t *testing.T) {
		orig := osMkdirAll
		defer func() { osMkdirAll = orig }()
		osMkdirAll = func(string, os.FileMode) error {
			return errors.New("read-only")
		}
		_, _, err := New(Options{File: "/nowhere/x.log"})
		assert.Error(t, err)
	})

	t.Run("open_error", func(t *testing.T) {
		orig := osOpenFile
		defer func() { osOpenFile = orig }()
		osOpenFile = func(string, int, os.FileMode) (*os.File, error) {
			return nil, os.ErrPermission
		}
		_, _, err := New(Options{File: filepath.Join(t.TempDir(), "x.log")})
		assert.ErrorIs(t, err, os.ErrPermission)
	})
}
