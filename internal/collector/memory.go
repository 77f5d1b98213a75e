package collector

import (
	"context"
	"log/slog"

	"horizonfetch/internal/model"
)

func (c *Collector) collectMemory(ctx context.Context) {
	if vm, err := c.host.Memory(ctx); err != nil {
		slog.Debug("collector fallback", "field", "ram", "error", err)
	} else {
		var used uint64
		if vm.Total > vm.Available {
			used = vm.Total - vm.Available
		}
		c.info.RAMUsedGB = model.BytesToGB(used)
		c.info.RAMTotalGB = model.BytesToGB(vm.Total)
		c.info.RAMPercent = model.RAMPercent(used, vm.Total)
	}

	if swap, err := c.host.Swap(ctx); err != nil {
		slog.Debug("collector fallback", "field", "swap", "error", err)
	} else {
		c.info.SwapTotalGB = model.BytesToGB(swap.Total)
	}
}
