// Package view draws the pager window into a canvas: a status bar, a
// separator, and each visible row behind a line-number gutter.
package view

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/kk-code-lab/lessnt/internal/config"
	"github.com/kk-code-lab/lessnt/internal/textutil"
	"github.com/kk-code-lab/lessnt/internal/ui/canvas"
	pagerpkg "github.com/kk-code-lab/lessnt/internal/ui/pager"
)

const separatorRune = "─"

// Window is the part of the pager the composer reads.
type Window interface {
	VisibleLines() []pagerpkg.VisibleLine
	ProgressPercent() float64
}

// Composer lays out one frame.
type Composer struct {
	geom     config.Geometry
	fileName string

	gutterFg canvas.Color
	textFg   canvas.Color
	statusFg canvas.Color
	statusBg canvas.Color
}

// NewComposer prepares a composer for the file shown under fileName. The name
// is composed to NFC, as file text is, so decomposed names take fewer cells.
func NewComposer(cfg config.Config, fileName string) *Composer {
	return &Composer{
		geom:     cfg.Geometry,
		fileName: textutil.CellSafe(norm.NFC.String(fileName)),
		gutterFg: toCanvas(cfg.Theme.Gutter),
		textFg:   toCanvas(cfg.Theme.Text),
		statusFg: toCanvas(cfg.Theme.StatusFg),
		statusBg: toCanvas(cfg.Theme.StatusBg),
	}
}

func toCanvas(c config.RGB) canvas.Color {
	return canvas.RGB(c.R, c.G, c.B)
}

// Compose clears cv and draws the window into it. A bounds error stops the
// frame at the offending write and is returned as is.
func (c *Composer) Compose(cv *canvas.Canvas, win Window) error {
	cv.Clear()

	if c.geom.HeaderHeight > 0 {
		if err := c.drawStatus(cv, win.ProgressPercent()); err != nil {
			return err
		}
	}
	if c.geom.HeaderHeight > 1 {
		sep := strings.Repeat(separatorRune, c.geom.Cols)
		if err := cv.Write(canvas.PrintOptions{X: 0, Y: 1, Fg: &c.gutterFg}, sep); err != nil {
			return err
		}
	}

	prev := -1
	for _, v := range win.VisibleLines() {
		y := c.geom.HeaderHeight + v.Row
		if c.geom.GutterWidth >= 2 {
			label := continuationLabel(c.geom.GutterWidth)
			if v.Number != prev {
				label = numberLabel(v.Number+1, c.geom.GutterWidth)
				prev = v.Number
			}
			if err := cv.Write(canvas.PrintOptions{X: 0, Y: y, Fg: &c.gutterFg}, label); err != nil {
				return err
			}
		}
		text := textutil.CellSafe(v.Text)
		if err := cv.Write(canvas.PrintOptions{X: c.geom.GutterWidth, Y: y, Fg: &c.textFg}, text); err != nil {
			return err
		}
	}
	return nil
}

func (c *Composer) drawStatus(cv *canvas.Canvas, percent float64) error {
	opts := canvas.PrintOptions{Y: 0, Fg: &c.statusFg, Bg: &c.statusBg}
	if err := cv.Write(opts, strings.Repeat(" ", c.geom.Cols)); err != nil {
		return err
	}

	right := formatPercent(percent) + " "
	rightLen := utf8.RuneCountInString(right)
	room := c.geom.Cols - rightLen - 2
	if room > 0 {
		left := " " + textutil.TruncateToCells(c.fileName, room)
		if err := cv.Write(opts, left); err != nil {
			return err
		}
	}
	if rightLen <= c.geom.Cols {
		opts.X = c.geom.Cols - rightLen
		return cv.Write(opts, right)
	}
	return nil
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// numberLabel right-aligns n in a gutter of the given width, ending in a
// bar and a blank column. Numbers too wide for that drop the blank, then
// their leading digits.
func numberLabel(n, width int) string {
	label := fmt.Sprintf("%*d |", width-3, n)
	if utf8.RuneCountInString(label) <= width {
		return label
	}
	label = fmt.Sprintf("%d|", n)
	if len(label) <= width {
		return label
	}
	return "…" + label[len(label)-(width-1):]
}

func continuationLabel(width int) string {
	return strings.Repeat(" ", width-2) + "|"
}
