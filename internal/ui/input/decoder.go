// Package input turns raw terminal bytes into scroll events.
package input

import (
	"bufio"
	"errors"
	"io"
)

// Event is a decoded key press.
type Event int

const (
	EventNone Event = iota
	EventQuit
	EventScrollUp
	EventScrollDown
)

func (e Event) String() string {
	switch e {
	case EventQuit:
		return "quit"
	case EventScrollUp:
		return "scroll-up"
	case EventScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03
)

// Decoder reads events from a blocking byte stream. Escape sequences are read
// as exactly three bytes with no timeout.
type Decoder struct {
	r io.ByteReader
}

// NewDecoder wraps r, buffering it unless it already reads single bytes.
func NewDecoder(r io.Reader) *Decoder {
	if br, ok := r.(io.ByteReader); ok {
		return &Decoder{r: br}
	}
	return &Decoder{r: bufio.NewReader(r)}
}

// Next blocks until one input unit has been consumed. End of input, including
// a lone escape byte at the end, is reported as EventQuit. Unrecognized input
// yields EventNone.
func (d *Decoder) Next() (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return endOfInput(err)
	}

	switch b {
	case 'q', keyCtrlC:
		return EventQuit, nil
	case 'j':
		return EventScrollDown, nil
	case 'k':
		return EventScrollUp, nil
	case keyEscape:
		return d.escapeSequence()
	}
	return EventNone, nil
}

func (d *Decoder) escapeSequence() (Event, error) {
	var seq [2]byte
	for i := range seq {
		b, err := d.r.ReadByte()
		if err != nil {
			return endOfInput(err)
		}
		seq[i] = b
	}
	if seq[0] != '[' {
		return EventNone, nil
	}
	switch seq[1] {
	case 'A':
		return EventScrollUp, nil
	case 'B':
		return EventScrollDown, nil
	}
	return EventNone, nil
}

func endOfInput(err error) (Event, error) {
	if errors.Is(err, io.EOF) {
		return EventQuit, nil
	}
	return EventNone, err
}
