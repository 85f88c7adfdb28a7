// Package config holds the fixed screen geometry and the color theme used by
// the pager. Values are passed explicitly to the pager, canvas and composer.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const (
	DefaultRows         = 30
	DefaultCols         = 120
	DefaultGutterWidth  = 6
	DefaultHeaderHeight = 2
)

// Environment variables consulted by Load.
const (
	EnvGutterColor = "LESSNT_GUTTER_COLOR"
	EnvTextColor   = "LESSNT_TEXT_COLOR"
	EnvStatusFg    = "LESSNT_STATUS_FG"
	EnvStatusBg    = "LESSNT_STATUS_BG"
	EnvKeepChunks  = "LESSNT_KEEP_CHUNKS"
	EnvDebugLog    = "LESSNT_DEBUG_LOG"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Geometry describes the fixed terminal layout. It is never negotiated against
// the real terminal size.
type Geometry struct {
	Rows         int
	Cols         int
	GutterWidth  int
	HeaderHeight int
}

// BodyHeight is the number of file rows visible below the header.
func (g Geometry) BodyHeight() int {
	return g.Rows - g.HeaderHeight
}

// ContentWidth is the number of columns right of the gutter. Rows read from
// the file hold at most ContentWidth-1 characters.
func (g Geometry) ContentWidth() int {
	return g.Cols - g.GutterWidth
}

// Validate reports geometry that cannot hold a header and at least one row.
func (g Geometry) Validate() error {
	switch {
	case g.Rows <= 0 || g.Cols <= 0:
		return fmt.Errorf("invalid geometry %dx%d", g.Cols, g.Rows)
	case g.HeaderHeight < 0 || g.BodyHeight() < 1:
		return fmt.Errorf("header height %d leaves no body rows", g.HeaderHeight)
	case g.GutterWidth < 0 || g.ContentWidth() < 2:
		return fmt.Errorf("gutter width %d leaves no content columns", g.GutterWidth)
	}
	return nil
}

// Theme holds the colors of the composed view.
type Theme struct {
	Gutter   RGB
	Text     RGB
	StatusFg RGB
	StatusBg RGB
}

// Config is the full runtime configuration.
type Config struct {
	Geometry Geometry
	Theme    Theme
	// KeepChunks bounds the chunk cache to this many chunks on either side of
	// the current one. Zero keeps every chunk ever loaded.
	KeepChunks int
	DebugLog   string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Geometry: Geometry{
			Rows:         DefaultRows,
			Cols:         DefaultCols,
			GutterWidth:  DefaultGutterWidth,
			HeaderHeight: DefaultHeaderHeight,
		},
		Theme: Theme{
			Gutter:   RGB{R: 200, G: 50, B: 80},
			Text:     RGB{R: 255, G: 255, B: 255},
			StatusFg: RGB{R: 20, G: 20, B: 20},
			StatusBg: RGB{R: 200, G: 200, B: 200},
		},
	}
}

// Load starts from Default and applies environment overrides looked up
// through getenv.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()
	if getenv == nil {
		return cfg, nil
	}

	colors := []struct {
		env    string
		target *RGB
	}{
		{EnvGutterColor, &cfg.Theme.Gutter},
		{EnvTextColor, &cfg.Theme.Text},
		{EnvStatusFg, &cfg.Theme.StatusFg},
		{EnvStatusBg, &cfg.Theme.StatusBg},
	}
	for _, c := range colors {
		value := strings.TrimSpace(getenv(c.env))
		if value == "" {
			continue
		}
		rgb, err := ParseColor(value)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", c.env, err)
		}
		*c.target = rgb
	}

	if value := strings.TrimSpace(getenv(EnvKeepChunks)); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s: invalid chunk count %q", EnvKeepChunks, value)
		}
		cfg.KeepChunks = n
	}

	cfg.DebugLog = strings.TrimSpace(getenv(EnvDebugLog))
	return cfg, nil
}

// ParseColor accepts a W3C color name ("teal") or a hex triplet ("#008080").
func ParseColor(value string) (RGB, error) {
	c := tcell.GetColor(strings.ToLower(value))
	if c == tcell.ColorDefault || !c.Valid() {
		return RGB{}, fmt.Errorf("unknown color %q", value)
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return RGB{}, fmt.Errorf("color %q has no RGB value", value)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
