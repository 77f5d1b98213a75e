package collector

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jaypipes/ghw"
)

var gpuClasses = []string{"VGA", "3D", "Display"}

func (c *Collector) collectGPU(ctx context.Context) {
	var gpus []string

	out, err := c.runner.Run(ctx, "lspci")
	if err != nil {
		slog.Debug("lspci unavailable, asking ghw", "error", err)
		gpus = c.ghwGPUs()
	} else {
		gpus = parseLspci(string(out))
	}

	if len(gpus) == 0 {
		gpus = []string{"Unknown"}
	}
	c.info.GPU = gpus
}

// parseLspci keeps the third colon-separated field of every display
// controller line, e.g. "00:02.0 VGA compatible controller: Intel ...".
func parseLspci(output string) []string {
	var gpus []string
	for _, line := range strings.Split(output, "\n") {
		if !isDisplayController(line) {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) < 3 {
			continue
		}
		gpus = append(gpus, strings.TrimSpace(parts[2]))
	}
	return gpus
}

func isDisplayController(line string) bool {
	for _, class := range gpuClasses {
		if strings.Contains(line, class) {
			return true
		}
	}
	return false
}

func (c *Collector) ghwGPUs() []string {
	info, err := ghw.GPU(ghw.WithChroot(c.root), ghw.WithDisableWarnings())
	if err != nil {
		slog.Debug("ghw gpu lookup failed", "error", err)
		return nil
	}

	var gpus []string
	for _, card := range info.GraphicsCards {
		if card == nil || card.DeviceInfo == nil {
			continue
		}
		var parts []string
		if v := card.DeviceInfo.Vendor; v != nil && v.Name != "" {
			parts = append(parts, v.Name)
		}
		if p := card.DeviceInfo.Product; p != nil && p.Name != "" {
			parts = append(parts, p.Name)
		}
		if len(parts) > 0 {
			gpus = append(gpus, strings.Join(parts, " "))
		}
	}
	return gpus
}
