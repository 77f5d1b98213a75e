package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "abc", StripANSI("\x1b[38;5;117mabc\x1b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
	assert.Equal(t, "xy", StripANSI("x\x1b[2Ky"))
}

func TestWidth(t *testing.T) {
	l := Parse("\n\x1b[31mabcd\x1b[0m\nab\n       \n")

	assert.Equal(t, 7, l.Width(), "whitespace-only lines count toward width")
	assert.Equal(t, 10, l.Column())
}

func TestWidth_Empty(t *testing.T) {
	assert.Equal(t, 0, Parse("").Width())
	assert.Equal(t, Gap, Parse("").Column())
}

func TestPrintable(t *testing.T) {
	l := Parse("\n  top  \r\n\n \t \n\x1b[31mred\x1b[0m\n")

	assert.Equal(t, []string{"  top", "\x1b[31mred\x1b[0m"}, l.Printable())
}

func TestStripANSI_OSC(t *testing.T) {
	link := "\x1b]8;;https://horizon.invalid/docs\x1b\\home\x1b]8;;\x1b\\"
	assert.Equal(t, "home", StripANSI(link))
	assert.Equal(t, "ab", StripANSI("a\x1b]0;window title\x07b"))
	assert.Equal(t, 4, VisibleWidth("\x1b[1m"+link+"\x1b[0m"))
}

func TestWidth_CountsCharacters(t *testing.T) {
	l := Parse("日本語\nab")

	assert.Equal(t, 3, l.Width())
	assert.Equal(t, 6, l.Column())
	assert.Equal(t, 5, VisibleWidth("ã…¤ab"))
}
