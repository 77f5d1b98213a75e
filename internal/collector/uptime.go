package collector

import (
	"context"
	"fmt"
	"log/slog"
)

func (c *Collector) collectUptime(ctx context.Context) {
	seconds, err := c.host.Uptime(ctx)
	if err != nil {
		slog.Debug("collector fallback", "field", "uptime", "error", err)
		seconds = 0
	}
	c.info.Uptime = formatUptime(seconds)
}

func formatUptime(seconds uint64) string {
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours%24, minutes%60)
	}
	return fmt.Sprintf("%dh %dm", hours%24, minutes%60)
}
