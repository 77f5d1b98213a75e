package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"horizonfetch/internal/config"
	"horizonfetch/internal/logo"
	"horizonfetch/internal/model"
)

const (
	colorReset  = "\033[0m"
	clearScreen = "\033[2J"
	brightWhite = "97"
	separator   = "-------"
	block       = "███"
	blockGap    = "   "
)

var (
	schemeTop    = []int{0, 91, 92, 93, 94, 95, 96, 97}
	schemeBottom = []int{30, 31, 32, 33, 34, 35, 36, 37}
)

// Render clears the terminal and draws the art column and the info column
// side by side. Only write errors are returned.
func Render(w io.Writer, cfg *config.Config, info *model.SystemInfo) error {
	artColor, infoColor, titleColor := cfg.Colors()
	art := logo.Parse(cfg.AsciiArt)

	f := &frame{
		w:          w,
		col:        art.Column(),
		infoColor:  infoColor,
		titleColor: titleColor,
	}

	f.write(clearScreen)

	for _, line := range art.Printable() {
		f.printAt(0, f.artRow, colorize(artColor, line))
		f.artRow++
	}

	f.renderInfo(cfg, info)

	f.printAt(0, max(f.artRow, f.infoRow)+1, "")
	return f.err
}

// frame tracks the two row counters and the first write error. Once a
// write fails every later one is skipped.
type frame struct {
	w   io.Writer
	err error

	col     int
	artRow  int
	infoRow int

	infoColor  string
	titleColor string
}

func (f *frame) write(s string) {
	if f.err != nil {
		return
	}
	_, f.err = io.WriteString(f.w, s)
}

func (f *frame) printAt(col, row int, s string) {
	f.write(fmt.Sprintf("\033[%d;%dH%s", row+1, col+1, s))
}

func (f *frame) row(s string) {
	f.printAt(f.col, f.infoRow, s)
	f.infoRow++
}

func (f *frame) field(title, value string) {
	f.row(colorize(f.titleColor, title) + " " + colorize(f.infoColor, value))
}

func (f *frame) renderInfo(cfg *config.Config, info *model.SystemInfo) {
	if cfg.ShowUser {
		f.row(colorize(f.infoColor, info.Username+"@"+info.Hostname))
		f.row(colorize(brightWhite, separator))
	}
	if cfg.ShowOS {
		f.field("OS:", info.OSName)
	}
	if cfg.ShowUptime {
		f.field("Uptime:", info.Uptime)
	}
	if cfg.ShowShell {
		f.field("Shell:", info.Shell)
	}
	if cfg.ShowDE {
		f.field("DE:", info.DE)
	}
	if cfg.ShowScreen && info.Screen != "" {
		f.field("Screen:", info.Screen)
	}
	if cfg.ShowMotherboard {
		board := info.Motherboard
		if board == "" {
			board = "Unknown"
		}
		f.field("Motherboard:", board)
	}
	if cfg.ShowCPU {
		f.field("Cpu:", info.CPU)
	}
	if cfg.ShowGPU {
		const label = "Gpu:"
		for i, gpu := range info.GPU {
			if i == 0 {
				f.field(label, gpu)
			} else {
				f.field(strings.Repeat(" ", len(label)), gpu)
			}
		}
	}
	if cfg.ShowRAM {
		f.field("Ram:", fmt.Sprintf("%.2f / %.2fgb (%.0f%%)", info.RAMUsedGB, info.RAMTotalGB, info.RAMPercent))
	}
	if cfg.ShowSwap {
		f.field("Swap:", fmt.Sprintf("%.2fgb", info.SwapTotalGB))
	}
	if cfg.ShowLocale {
		f.field("Locale:", info.Locale)
	}
	if cfg.ShowDisk {
		f.renderDisks(info.Disks)
	}
	if cfg.ShowColorScheme {
		f.infoRow++
		f.row(colorScheme(schemeTop))
		f.row(colorScheme(schemeBottom))
	}
}

func (f *frame) renderDisks(disks []model.DiskInfo) {
	nameWidth := 1
	for _, d := range disks {
		nameWidth = max(nameWidth, runewidth.StringWidth(d.Name))
	}

	for _, d := range disks {
		f.row(colorize(f.titleColor, "Disk:") + " " +
			colorize(brightWhite, runewidth.FillRight(d.Name, nameWidth)) + " " +
			colorize(f.infoColor, fmt.Sprintf("%3dgb", d.UsedGB)) + " " +
			colorize(brightWhite, "/") + " " +
			colorize(f.infoColor, fmt.Sprintf("%3dgb (%d%%)", d.TotalGB, d.Percent)))
	}
}

// colorScheme draws one block per code; code 0 leaves a gap of the same width.
func colorScheme(codes []int) string {
	var b strings.Builder
	for _, code := range codes {
		if code == 0 {
			b.WriteString(blockGap)
			continue
		}
		b.WriteString(colorize(fmt.Sprint(code), block))
	}
	return b.String()
}

func colorize(code, text string) string {
	return "\033[" + code + "m" + text + colorReset
}
