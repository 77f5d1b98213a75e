package model

type SystemInfo struct {
	Username string `json:"username"`
	Hostname string `json:"hostname"`
	OSName   string `json:"os_name"`
	// Kernel is collected but not rendered.
	Kernel string `json:"kernel"`
	Uptime string `json:"uptime"`
	Shell  string `json:"shell"`
	DE     string `json:"de"`
	// Screen and Motherboard are empty when they could not be detected.
	Screen      string     `json:"screen,omitempty"`
	Motherboard string     `json:"motherboard,omitempty"`
	CPU         string     `json:"cpu"`
	GPU         []string   `json:"gpu"`
	RAMUsedGB   float64    `json:"ram_used_gb"`
	RAMTotalGB  float64    `json:"ram_total_gb"`
	RAMPercent  float64    `json:"ram_percent"`
	SwapTotalGB float64    `json:"swap_total_gb"`
	Locale      string     `json:"locale"`
	Disks       []DiskInfo `json:"disks"`
}

type DiskInfo struct {
	Name    string `json:"name"`
	UsedGB  uint64 `json:"used_gb"`
	TotalGB uint64 `json:"total_gb"`
	Percent uint64 `json:"percent"`
}

const bytesPerGB = 1 << 30

// NewDiskInfo derives whole-gigabyte figures from byte counts. Percent uses
// integer truncation on the gigabyte values.
func NewDiskInfo(name string, totalBytes, freeBytes uint64) DiskInfo {
	var usedBytes uint64
	if totalBytes > freeBytes {
		usedBytes = totalBytes - freeBytes
	}

	d := DiskInfo{
		Name:    name,
		UsedGB:  usedBytes / bytesPerGB,
		TotalGB: totalBytes / bytesPerGB,
	}
	if d.TotalGB > 0 {
		d.Percent = d.UsedGB * 100 / d.TotalGB
	}
	return d
}

func BytesToGB(bytes uint64) float64 {
	return float64(bytes) / bytesPerGB
}

func RAMPercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) * 100.0 / float64(total)
}
