package collector

import "path/filepath"

func (c *Collector) collectShell() {
	shellPath := c.getenv("SHELL")
	if shellPath == "" {
		c.info.Shell = unknown
		return
	}
	c.info.Shell = filepath.Base(shellPath)
}
