package platform

import (
	"github.com/datatug/fexplorer/pkg/files"
	"github.com/shirou/gopsutil/v3/disk"
)

// Usage describes capacity of the filesystem mounted at a volume root.
type Usage struct {
	Root        string
	Fstype      string
	Total       uint64
	Free        uint64
	Used        uint64
	UsedPercent float64
}

var diskUsage = disk.Usage

func VolumeUsage(root string) (Usage, error) {
	stat, err := diskUsage(root)
	if err != nil {
		return Usage{}, files.NewError("volume info", root, err)
	}
	return Usage{
		Root:        root,
		Fstype:      stat.Fstype,
		Total:       stat.Total,
		Free:        stat.Free,
		Used:        stat.Used,
		UsedPercent: stat.UsedPercent,
	}, nil
}
