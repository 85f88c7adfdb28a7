// Package canvas implements a fixed-size grid of colored character cells that
// is redrawn from scratch every frame.
package canvas

import (
	"fmt"
	"unicode/utf8"
)

// Color is a 24-bit RGB color. The Default flag marks the terminal's native
// background, which has no RGB value of its own.
type Color struct {
	R, G, B uint8
	Default bool
}

var (
	// DefaultFg is the foreground of a cleared cell.
	DefaultFg = Color{R: 255, G: 255, B: 255}
	// DefaultBg is the sentinel background rendered as "terminal default".
	DefaultBg = Color{Default: true}
)

// RGB builds an explicit color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Cell is one character position on screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blankCell = Cell{Rune: ' ', Fg: DefaultFg, Bg: DefaultBg}

// PrintOptions positions a Write and optionally overrides its colors.
type PrintOptions struct {
	X, Y int
	Fg   *Color
	Bg   *Color
}

// BoundsError is returned by Write when the text does not fit on the canvas.
type BoundsError struct {
	X, Y   int
	Length int
	Rows   int
	Cols   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("write of %d cells at (%d,%d) outside %dx%d canvas", e.Length, e.X, e.Y, e.Cols, e.Rows)
}

// Canvas is a rows x cols grid stored row-major in a flat slice.
type Canvas struct {
	rows  int
	cols  int
	cells []Cell
}

// New returns a cleared canvas. Non-positive sizes produce an empty grid.
func New(rows, cols int) *Canvas {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	c := &Canvas{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	c.Clear()
	return c
}

func (c *Canvas) Rows() int { return c.rows }

func (c *Canvas) Cols() int { return c.cols }

// Clear resets every cell to a space in the default colors.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blankCell
	}
}

// Cell returns the cell at column x, row y. It panics when out of range.
func (c *Canvas) Cell(x, y int) Cell {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		panic(fmt.Sprintf("canvas: cell (%d,%d) outside %dx%d", x, y, c.cols, c.rows))
	}
	return c.cells[y*c.cols+x]
}

// Row returns the cells of row y. The slice aliases the canvas.
func (c *Canvas) Row(y int) []Cell {
	start := y * c.cols
	return c.cells[start : start+c.cols]
}

// Write places text starting at (opts.X, opts.Y). The whole run must fit on a
// single row; otherwise nothing is written and a *BoundsError is returned.
func (c *Canvas) Write(opts PrintOptions, text string) error {
	length := utf8.RuneCountInString(text)
	if opts.X < 0 || opts.Y < 0 || opts.X+length > c.cols || opts.Y >= c.rows {
		return &BoundsError{X: opts.X, Y: opts.Y, Length: length, Rows: c.rows, Cols: c.cols}
	}

	idx := opts.Y*c.cols + opts.X
	for _, r := range text {
		cell := &c.cells[idx]
		cell.Rune = r
		if opts.Fg != nil {
			cell.Fg = *opts.Fg
		}
		if opts.Bg != nil {
			cell.Bg = *opts.Bg
		}
		idx++
	}
	return nil
}
