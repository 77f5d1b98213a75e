package collector

import (
	"context"
	"log/slog"
	"strings"
)

func (c *Collector) collectResolution(ctx context.Context) {
	out, err := c.runner.Run(ctx, "xrandr", "--current")
	if err != nil {
		slog.Debug("screen resolution unavailable", "error", err)
		return
	}
	c.info.Screen = parseXrandr(string(out))
}

// parseXrandr takes the first token of the first line marked with the
// active-mode asterisk.
func parseXrandr(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "*") {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}
