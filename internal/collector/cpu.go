package collector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

func (c *Collector) collectCPU(ctx context.Context) {
	cpus, err := c.host.CPUs(ctx)
	if err != nil || len(cpus) == 0 {
		slog.Debug("collector fallback", "field", "cpu", "error", err)
		c.info.CPU = "Unknown"
		return
	}

	threads, err := c.host.LogicalCPUs(ctx)
	if err != nil || threads <= 0 {
		threads = len(cpus)
	}

	c.info.CPU = formatCPU(cpus[0].ModelName, threads)
}

func formatCPU(model string, threads int) string {
	model = strings.TrimSpace(model)
	if threads > 1 {
		return fmt.Sprintf("%s (%d threads)", model, threads)
	}
	return model
}
