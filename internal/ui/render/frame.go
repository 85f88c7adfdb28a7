package render

import (
	"io"
	"unicode/utf8"

	"github.com/kk-code-lab/lessnt/internal/ui/canvas"
)

// Frame serializes a canvas into a full-screen ANSI stream. Color escapes are
// only emitted when a cell's color differs from the previous cell in scan
// order, and the comparison carries across row boundaries.
//
// A Frame keeps its output buffer between calls; it holds no other state, so
// rendering the same canvas twice yields identical bytes.
type Frame struct {
	buf []byte
}

// NewFrame returns a renderer with room for a typical rows x cols frame.
func NewFrame(rows, cols int) *Frame {
	return &Frame{buf: make([]byte, 0, rows*(cols+1)+256)}
}

// Render returns the escape stream for c. The slice is valid until the next
// call to Render.
func (f *Frame) Render(c *canvas.Canvas) []byte {
	buf := f.buf[:0]
	buf = append(buf, seqFramePrefix...)
	buf = appendFg(buf, canvas.DefaultFg)

	prevFg := canvas.DefaultFg
	prevBg := canvas.DefaultBg
	for y := 0; y < c.Rows(); y++ {
		for _, cell := range c.Row(y) {
			if cell.Fg != prevFg {
				buf = appendFg(buf, cell.Fg)
				prevFg = cell.Fg
			}
			if cell.Bg != prevBg {
				buf = appendBg(buf, cell.Bg)
				prevBg = cell.Bg
			}
			if cell.Rune < utf8.RuneSelf {
				buf = append(buf, byte(cell.Rune))
			} else {
				buf = utf8.AppendRune(buf, cell.Rune)
			}
		}
		buf = append(buf, '\n')
	}

	buf = append(buf, seqReset...)
	f.buf = buf
	return buf
}

// Draw renders c and writes the stream to w.
func (f *Frame) Draw(w io.Writer, c *canvas.Canvas) error {
	_, err := w.Write(f.Render(c))
	return err
}
