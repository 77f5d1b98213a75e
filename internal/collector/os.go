package collector

import (
	"errors"
	"strings"
)

var errNoPrettyName = errors.New("PRETTY_NAME not found")

func (c *Collector) collectIdentity() {
	c.info.Username = c.getEnvWithDefault("USER", unknown)

	hostname, err := c.readTrimmed("/etc/hostname")
	c.info.Hostname = orFallback("hostname", hostname, err, unknown)
}

func (c *Collector) collectOS() {
	name, err := c.prettyName("/etc/os-release")
	c.info.OSName = orFallback("os", name, err, "Linux")
}

func (c *Collector) collectKernel() {
	kernel, err := c.readTrimmed("/proc/sys/kernel/osrelease")
	c.info.Kernel = orFallback("kernel", kernel, err, unknown)
}

func (c *Collector) prettyName(p string) (string, error) {
	lines, err := c.readAllLines(p)
	if err != nil {
		return "", err
	}

	for _, line := range lines {
		if value, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(value, `"`), nil
		}
	}
	return "", errNoPrettyName
}
