package collector

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const unknown = "unknown"

func osGetenv(key string) string {
	return os.Getenv(key)
}

func (c *Collector) path(p string) string {
	return filepath.Join(c.root, p)
}

func (c *Collector) readTrimmed(p string) (string, error) {
	data, err := os.ReadFile(c.path(p))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (c *Collector) readAllLines(p string) ([]string, error) {
	file, err := os.Open(c.path(p))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func (c *Collector) getEnvWithDefault(key, defaultValue string) string {
	if val := c.getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// orFallback is the single place where a failed lookup turns into the
// field's fallback value.
func orFallback(field, value string, err error, fallback string) string {
	if err != nil {
		slog.Debug("collector fallback", "field", field, "fallback", fallback, "error", err)
		return fallback
	}
	if value == "" {
		slog.Debug("collector fallback", "field", field, "fallback", fallback, "reason", "empty")
		return fallback
	}
	return value
}
