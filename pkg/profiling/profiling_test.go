package profiling

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestLogger(t *testing.T) *test.Hook {
	logger, hook := test.NewNullLogger()
	prev := log
	SetLogger(logger)
	t.Cleanup(func() { log = prev })
	return hook
}

func TestDoCPUProfiling(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		hook := withTestLogger(t)
		fileName := filepath.Join(t.TempDir(), "cpu.prof")
		stop := DoCPUProfiling(fileName)
		require.NotNil(t, stop)
		stop()
		_, err := os.Stat(fileName)
		assert.NoError(t, err)
		assert.Empty(t, hook.AllEntries())
	})
	t.Run("create_error", func(t *testing.T) {
		hook := withTestLogger(t)
		prev := osCreate
		osCreate = func(string) (*os.File, error) { return nil, errors.New("mock error") }
		defer func() { osCreate = prev }()
		stop := DoCPUProfiling("cpu.prof")
		require.NotNil(t, stop)
		stop()
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	})
	t.Run("start_error", func(t *testing.T) {
		hook := withTestLogger(t)
		prevStart, prevStop := pprofStartCPUProfile, pprofStopCPUProfile
		stopCalled := false
		pprofStartCPUProfile = func(io.Writer) error { return errors.New("mock pprof error") }
		pprofStopCPUProfile = func() { stopCalled = true }
		defer func() { pprofStartCPUProfile, pprofStopCPUProfile = prevStart, prevStop }()
		stop := DoCPUProfiling(filepath.Join(t.TempDir(), "cpu.prof"))
		stop()
		assert.False(t, stopCalled)
		assert.Equal(t, "could not start CPU profile", hook.LastEntry().Message)
	})
}

func TestDoMemProfiling(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		withTestLogger(t)
		fileName := filepath.Join(t.TempDir(), "mem.prof")
		write := DoMemProfiling(fileName)
		_, err := os.Stat(fileName)
		assert.True(t, os.IsNotExist(err))
		write()
		info, err := os.Stat(fileName)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	})
	t.Run("create_error", func(t *testing.T) {
		hook := withTestLogger(t)
		prev := osCreate
		osCreate = func(string) (*os.File, error) { return nil, errors.New("mock error") }
		defer func() { osCreate = prev }()
		DoMemProfiling("mem.prof")()
		assert.Equal(t, "could not create memory profile", hook.LastEntry().Message)
	})
	t.Run("write_error", func(t *testing.T) {
		hook := withTestLogger(t)
		prev := pprofWriteHeapProfile
		pprofWriteHeapProfile = func(io.Writer) error { return errors.New("mock error") }
		defer func() { pprofWriteHeapProfile = prev }()
		DoMemProfiling(filepath.Join(t.TempDir(), "mem.prof"))()
		assert.Equal(t, "could not write memory profile", hook.LastEntry().Message)
	})
}
