//go:build windows

package platform

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNative_ListVolumes_Windows(t *testing.T) {
	orig := getLogicalDrives
	defer func() { getLogicalDrives = orig }()
	log, _ := test.NewNullLogger()
	p := NewNative(log)

	t.Run("mask", func(t *testing.T) {
		getLogicalDrives = func() (uint32, error) {
			return 1<<2 | 1<<4, nil
		}
		assert.Equal(t, []VolumeID{"C", "E"}, p.ListVolumes())
	})

	t.Run("error", func(t *testing.T) {
		getLogicalDrives = func() (uint32, error) {
			return 0, errors.New("access denied")
		}
		assert.Equal(t, []VolumeID{}, p.ListVolumes())
	})
}
