//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

var getLogicalDrives = windows.GetLogicalDrives

func listVolumes() ([]VolumeID, error) {
	mask, err := getLogicalDrives()
	if err != nil {
		return nil, err
	}
	return DecodeDriveMask(mask), nil
}
