package collector

import (
	"context"
	"time"

	"github.com/mitchellh/go-ps"

	"horizonfetch/internal/model"
)

const defaultCommandTimeout = 2 * time.Second

// Collector takes a one-shot snapshot of the host. Every field has its own
// fallback, so Gather never fails.
type Collector struct {
	root      string
	getenv    func(string) string
	runner    Runner
	host      Host
	processes func() ([]ps.Process, error)
	timeout   time.Duration

	info *model.SystemInfo
}

type Option func(*Collector)

// WithRoot prefixes every /etc, /proc and /sys path read by the collector.
func WithRoot(dir string) Option {
	return func(c *Collector) { c.root = dir }
}

func WithEnv(getenv func(string) string) Option {
	return func(c *Collector) { c.getenv = getenv }
}

func WithRunner(r Runner) Option {
	return func(c *Collector) { c.runner = r }
}

func WithHost(h Host) Option {
	return func(c *Collector) { c.host = h }
}

func WithProcesses(fn func() ([]ps.Process, error)) Option {
	return func(c *Collector) { c.processes = fn }
}

// WithCommandTimeout bounds each external command run by the default runner.
func WithCommandTimeout(d time.Duration) Option {
	return func(c *Collector) { c.timeout = d }
}

func New(opts ...Option) *Collector {
	c := &Collector{
		root:      "/",
		getenv:    osGetenv,
		host:      psutilHost{},
		processes: ps.Processes,
		timeout:   defaultCommandTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.runner == nil {
		c.runner = ExecRunner{Timeout: c.timeout}
	}
	return c
}

func (c *Collector) Gather(ctx context.Context) *model.SystemInfo {
	c.info = &model.SystemInfo{}

	c.collectIdentity()
	c.collectOS()
	c.collectKernel()
	c.collectUptime(ctx)
	c.collectShell()
	c.collectDE()
	c.collectResolution(ctx)
	c.collectMotherboard()
	c.collectCPU(ctx)
	c.collectGPU(ctx)
	c.collectMemory(ctx)
	c.collectLocale()
	c.collectDisks(ctx)

	return c.info
}
