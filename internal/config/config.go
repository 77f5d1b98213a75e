package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"horizonfetch/assets"
)

const (
	DefaultColor      = "34"
	DefaultInfoColor  = "38;5;117"
	DefaultTitleColor = "38;5;110"

	artStart = "{|"
	artEnd   = "|}"
)

var configRelPath = filepath.Join(".config", "horizonfetch", "hf.conf")

// DefaultArt is drawn when the config file has no art block.
var DefaultArt = assets.DefaultLogo

type Config struct {
	AsciiArt   string
	Color      string
	InfoColor  string
	TitleColor string

	ShowUser        bool
	ShowOS          bool
	ShowUptime      bool
	ShowShell       bool
	ShowDE          bool
	ShowScreen      bool
	ShowMotherboard bool
	ShowCPU         bool
	ShowGPU         bool
	ShowRAM         bool
	ShowSwap        bool
	ShowLocale      bool
	ShowDisk        bool
	// ShowRAMExtInfo is accepted in the file but nothing renders it yet.
	ShowRAMExtInfo  bool
	ShowColorScheme bool
}

func Default() *Config {
	return &Config{
		AsciiArt:        DefaultArt,
		Color:           DefaultColor,
		InfoColor:       DefaultInfoColor,
		TitleColor:      DefaultTitleColor,
		ShowUser:        true,
		ShowOS:          true,
		ShowUptime:      true,
		ShowShell:       true,
		ShowDE:          true,
		ShowScreen:      true,
		ShowMotherboard: true,
		ShowCPU:         true,
		ShowGPU:         true,
		ShowRAM:         true,
		ShowSwap:        true,
		ShowLocale:      true,
		ShowDisk:        true,
		ShowRAMExtInfo:  false,
		ShowColorScheme: true,
	}
}

// Load reads the file at path. Only a failure to read the file is reported;
// anything odd inside it falls back to per-field defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// LoadDefault never fails.
func LoadDefault() *Config {
	path, err := DefaultPath()
	if err != nil {
		slog.Debug("no home directory, using built-in config", "error", err)
		return Default()
	}

	cfg, err := Load(path)
	if err != nil {
		slog.Debug("using built-in config", "error", err)
		return Default()
	}
	return cfg
}

func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, configRelPath), nil
}

func Parse(content string) *Config {
	def := Default()

	art, ok := extractArt(content)
	if !ok {
		art = def.AsciiArt
	}

	return &Config{
		AsciiArt:        art,
		Color:           paramOr(content, "ascii_color", def.Color),
		InfoColor:       paramOr(content, "info_color", def.InfoColor),
		TitleColor:      paramOr(content, "title_color", def.TitleColor),
		ShowUser:        boolParam(content, "show_user", def.ShowUser),
		ShowOS:          boolParam(content, "show_os", def.ShowOS),
		ShowUptime:      boolParam(content, "show_uptime", def.ShowUptime),
		ShowShell:       boolParam(content, "show_shell", def.ShowShell),
		ShowDE:          boolParam(content, "show_de", def.ShowDE),
		ShowScreen:      boolParam(content, "show_screen", def.ShowScreen),
		ShowMotherboard: boolParam(content, "show_motherboard", def.ShowMotherboard),
		ShowCPU:         boolParam(content, "show_cpu", def.ShowCPU),
		ShowGPU:         boolParam(content, "show_gpu", def.ShowGPU),
		ShowRAM:         boolParam(content, "show_ram", def.ShowRAM),
		ShowSwap:        boolParam(content, "show_swap", def.ShowSwap),
		ShowLocale:      boolParam(content, "show_locale", def.ShowLocale),
		ShowDisk:        boolParam(content, "show_disk", def.ShowDisk),
		ShowRAMExtInfo:  boolParam(content, "show_ram_ext_info", def.ShowRAMExtInfo),
		ShowColorScheme: boolParam(content, "show_color_scheme", def.ShowColorScheme),
	}
}

// Colors returns the art, info and title colors, each replaced by its
// default when it is not an accepted SGR code.
func (c *Config) Colors() (art, info, title string) {
	return validOr(c.Color, DefaultColor),
		validOr(c.InfoColor, DefaultInfoColor),
		validOr(c.TitleColor, DefaultTitleColor)
}

func validOr(code, fallback string) string {
	if IsValidANSICode(code) {
		return code
	}
	return fallback
}

func extractArt(content string) (string, bool) {
	start := strings.Index(content, artStart)
	if start == -1 {
		return "", false
	}
	rest := content[start+len(artStart):]

	end := strings.Index(rest, artEnd)
	if end == -1 {
		return "", false
	}
	return rest[:end], true
}

// param returns the value of the first non-empty line whose trimmed text
// starts with name. Keys are matched by prefix, so "show_ram" also sees a
// "show_ram_ext_info" line that comes before it.
func param(content, name string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !strings.HasPrefix(trimmed, name) {
			continue
		}

		_, value, found := strings.Cut(trimmed, "=")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		if len(value) > 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
			return value[1 : len(value)-1], true
		}
		if value != "" {
			return value, true
		}
	}
	return "", false
}

func paramOr(content, name, fallback string) string {
	if v, ok := param(content, name); ok {
		return v
	}
	return fallback
}

func boolParam(content, name string, fallback bool) bool {
	v, ok := param(content, name)
	if !ok {
		return fallback
	}
	return v == "true"
}
