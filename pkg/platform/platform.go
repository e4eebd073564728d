// Package platform hides what differs between operating systems:
// enumerating storage volumes and launching the default application for a path.
package platform

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// VolumeID names a storage volume. On Windows it is a drive letter.
type VolumeID string

//go:generate mockgen -destination=mock_platform.go -package=platform . Platform

// Platform is the capability set the browser needs from the operating system.
type Platform interface {
	ListVolumes() []VolumeID
	VolumeRoot(id VolumeID) string
	OpenWithDefaultHandler(path string) error
}

var _ Platform = (*Native)(nil)

// Native talks to the operating system the process runs on.
type Native struct {
	goos string
	log  logrus.FieldLogger
}

func NewNative(log logrus.FieldLogger) *Native {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Native{goos: runtime.GOOS, log: log}
}

// ListVolumes enumerates volumes afresh on every call.
// Platforms without a volume query return an empty list.
func (p *Native) ListVolumes() []VolumeID {
	volumes, err := listVolumes()
	if err != nil {
		p.log.WithError(err).Warn("failed to list volumes")
		return []VolumeID{}
	}
	return volumes
}

func (p *Native) VolumeRoot(id VolumeID) string {
	return VolumeRoot(id)
}

// VolumeRoot maps a drive letter to its root directory.
// Any other identifier is taken to be a mount path already.
func VolumeRoot(id VolumeID) string {
	if isDriveLetter(id) {
		return string(id) + `:\`
	}
	return string(id)
}

func isDriveLetter(id VolumeID) bool {
	if len(id) != 1 {
		return false
	}
	c := id[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// DecodeDriveMask turns a logical drive bitmask into drive letters:
// bit i set means drive 'A'+i exists. Letters come out in ascending order.
func DecodeDriveMask(mask uint32) []VolumeID {
	volumes := make([]VolumeID, 0, 4)
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		volumes = append(volumes, VolumeID(rune('A'+i)))
	}
	return volumes
}
