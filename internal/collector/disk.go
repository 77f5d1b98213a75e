package collector

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"horizonfetch/internal/model"
)

var pseudoFilesystems = map[string]bool{
	"autofs":      true,
	"binfmt_misc": true,
	"bpf":         true,
	"cgroup":      true,
	"cgroup2":     true,
	"configfs":    true,
	"debugfs":     true,
	"devpts":      true,
	"devtmpfs":    true,
	"efivarfs":    true,
	"fusectl":     true,
	"hugetlbfs":   true,
	"mqueue":      true,
	"nsfs":        true,
	"proc":        true,
	"pstore":      true,
	"rpc_pipefs":  true,
	"securityfs":  true,
	"squashfs":    true,
	"sysfs":       true,
	"tmpfs":       true,
	"tracefs":     true,
}

var pseudoMountRoots = []string{"/proc", "/sys", "/run", "/dev"}

// Removable media is mounted by udisks under /run/media/<user>.
const removableMediaRoot = "/run/media/"

func (c *Collector) collectDisks(ctx context.Context) {
	c.info.Disks = []model.DiskInfo{}

	partitions, err := c.host.Partitions(ctx)
	if err != nil {
		slog.Debug("collector fallback", "field", "disk", "error", err)
		return
	}

	seen := map[string]bool{}
	for _, p := range partitions {
		if isPseudoMount(p) || seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true

		usage, err := c.host.Usage(ctx, p.Mountpoint)
		if err != nil {
			slog.Debug("skipping disk", "mountpoint", p.Mountpoint, "error", err)
			continue
		}

		d := model.NewDiskInfo(p.Mountpoint, usage.Total, usage.Free)
		if d.TotalGB == 0 {
			continue
		}
		c.info.Disks = append(c.info.Disks, d)
	}
}

func isPseudoMount(p disk.PartitionStat) bool {
	if pseudoFilesystems[p.Fstype] {
		return true
	}
	if strings.HasPrefix(p.Mountpoint, removableMediaRoot) {
		return false
	}
	for _, root := range pseudoMountRoots {
		if p.Mountpoint == root || strings.HasPrefix(p.Mountpoint, root+"/") {
			return true
		}
	}
	return false
}
