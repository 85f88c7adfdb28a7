package pager

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Line is one screen row read from the file. Number is the 0-based logical
// line it belongs to; rows split from one long line share the same Number.
type Line struct {
	Text   string
	Number int
}

// RowReader reads bounded-width rows from a seekable stream, decoding it to
// UTF-8 on the way.
type RowReader struct {
	src        io.ReadSeeker
	newDecoder func() transform.Transformer
	in         *bufio.Reader
	next       int
}

// NewRowReader wraps src. newDecoder may be nil for plain UTF-8 input.
func NewRowReader(src io.ReadSeeker, newDecoder func() transform.Transformer) *RowReader {
	r := &RowReader{src: src, newDecoder: newDecoder}
	r.in = bufio.NewReader(r.decoded())
	return r
}

func (r *RowReader) decoded() io.Reader {
	if r.newDecoder == nil {
		return r.src
	}
	return transform.NewReader(r.src, r.newDecoder())
}

// NextLineNumber is the number the next row will carry.
func (r *RowReader) NextLineNumber() int {
	return r.next
}

// ReadRow reads at most width-1 characters, or up to and including the next
// newline. Newlines and carriage returns become spaces; only a newline moves
// the line counter. A newline that immediately follows a full row is consumed
// with it so a line that exactly fills its rows does not leave a blank row.
//
// At end of file the (possibly empty) row is returned together with io.EOF.
func (r *RowReader) ReadRow(width int) (Line, error) {
	limit := width - 1
	if limit < 1 {
		limit = 1
	}

	line := Line{Number: r.next}
	var text strings.Builder
	count := 0
	for count < limit {
		ru, _, err := r.in.ReadRune()
		if err != nil {
			line.Text = norm.NFC.String(text.String())
			return line, err
		}
		count++
		switch ru {
		case '\n':
			r.next++
			text.WriteByte(' ')
			line.Text = norm.NFC.String(text.String())
			return line, nil
		case '\r':
			text.WriteByte(' ')
		default:
			text.WriteRune(ru)
		}
	}

	if err := r.swallowNewline(); err != nil && !errors.Is(err, io.EOF) {
		return Line{}, err
	}
	line.Text = norm.NFC.String(text.String())
	return line, nil
}

func (r *RowReader) swallowNewline() error {
	peek, err := r.in.Peek(2)
	switch {
	case len(peek) >= 1 && peek[0] == '\n':
		r.next++
		_, derr := r.in.Discard(1)
		return derr
	case len(peek) == 2 && peek[0] == '\r' && peek[1] == '\n':
		r.next++
		_, derr := r.in.Discard(2)
		return derr
	}
	return err
}

// Rewind seeks back to the start of the stream and resets the line counter.
func (r *RowReader) Rewind() error {
	if _, err := r.src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r.in.Reset(r.decoded())
	r.next = 0
	return nil
}

// CountRows performs the same bounded reads as ReadRow over the remaining
// stream without keeping any text, then rewinds. An empty row at end of file
// is not counted.
func (r *RowReader) CountRows(width int) (int, error) {
	rows := 0
	for {
		line, err := r.ReadRow(width)
		if errors.Is(err, io.EOF) {
			if line.Text != "" {
				rows++
			}
			break
		}
		if err != nil {
			return 0, err
		}
		rows++
	}
	if err := r.Rewind(); err != nil {
		return 0, err
	}
	return rows, nil
}
