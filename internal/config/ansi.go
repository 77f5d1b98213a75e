package config

import (
	"strconv"
	"strings"
)

// IsValidANSICode reports whether code is a foreground/background SGR
// parameter this tool accepts: a basic or bright color (30-37, 40-47, 90-97,
// 100-107), a 256-color index (38;5;n) or a truecolor triple (38;2;r;g;b).
func IsValidANSICode(code string) bool {
	if code == "" {
		return false
	}

	if n, ok := parseByte(code); ok {
		switch {
		case n >= 30 && n <= 37, n >= 40 && n <= 47, n >= 90 && n <= 97, n >= 100 && n <= 107:
			return true
		}
		return false
	}

	parts := strings.Split(code, ";")
	switch {
	case len(parts) == 3 && parts[0] == "38" && parts[1] == "5":
		return isByte(parts[2])
	case len(parts) == 5 && parts[0] == "38" && parts[1] == "2":
		return isByte(parts[2]) && isByte(parts[3]) && isByte(parts[4])
	}
	return false
}

func isByte(s string) bool {
	_, ok := parseByte(s)
	return ok
}

// parseByte reads a decimal 0-255 with an optional leading '+'.
func parseByte(s string) (uint64, bool) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 8)
	return n, err == nil
}
