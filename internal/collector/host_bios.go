package collector

import (
	"log/slog"
	"strings"

	"github.com/jaypipes/ghw"
)

// Placeholders that firmware or ghw report instead of a real board name.
var boardPlaceholders = map[string]bool{
	"":               true,
	"Default string": true,
	"unknown":        true,
}

func (c *Collector) collectMotherboard() {
	board, err := ghw.Baseboard(ghw.WithChroot(c.root), ghw.WithDisableWarnings())
	if err != nil {
		slog.Debug("motherboard unavailable", "error", err)
		return
	}
	c.info.Motherboard = normalizeBoardName(board.Product)
}

func normalizeBoardName(name string) string {
	name = strings.TrimSpace(name)
	if boardPlaceholders[name] {
		return ""
	}
	return name
}
