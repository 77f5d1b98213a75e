package logo

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Gap is the number of columns between the widest art line and the info column.
const Gap = 3

// CSI sequences (colors, cursor moves) and OSC sequences (titles, hyperlinks)
// terminated by BEL or ST.
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

type Logo struct {
	Lines []string
}

func Parse(art string) *Logo {
	lines := strings.Split(art, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &Logo{Lines: lines}
}

// Width is the longest line in characters, escape sequences excluded. Lines
// that are blank still count.
func (l *Logo) Width() int {
	width := 0
	for _, line := range l.Lines {
		if w := VisibleWidth(line); w > width {
			width = w
		}
	}
	return width
}

// Column is the info column offset for this logo.
func (l *Logo) Column() int {
	return l.Width() + Gap
}

// Printable returns the lines that are drawn, trailing whitespace trimmed and
// blank lines dropped.
func (l *Logo) Printable() []string {
	var out []string
	for _, line := range l.Lines {
		trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// VisibleWidth counts the characters left after stripping escape sequences.
// Wide glyphs count once, so the result does not depend on the locale.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}
