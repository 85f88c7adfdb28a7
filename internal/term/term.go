// Package term switches the controlling terminal into the pager's display
// mode and back: alternate screen, hidden cursor, and unbuffered input
// without echo.
package term

import (
	"errors"
	"io"
	"sync"

	xterm "golang.org/x/term"
)

const (
	seqAltScreenEnter = "\x1b[?1049h"
	seqAltScreenExit  = "\x1b[?1049l"
	seqCursorHide     = "\x1b[?25l"
	seqCursorShow     = "\x1b[?25h"
)

// ErrNotTerminal is returned by Enter when input is not a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

var (
	isTerminal      = xterm.IsTerminal
	enableInputMode = platformInputMode
)

// Terminal owns the mode changes applied to one input descriptor and one
// output stream.
type Terminal struct {
	fd  int
	out io.Writer

	mu      sync.Mutex
	entered bool
	restore func() error
}

// New prepares a terminal for input descriptor fd and output out. Nothing is
// changed until Enter.
func New(fd int, out io.Writer) *Terminal {
	return &Terminal{fd: fd, out: out}
}

// Enter switches to the alternate screen, hides the cursor and turns off
// canonical mode and echo, in that order. On failure everything already
// applied is undone.
func (t *Terminal) Enter() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.entered {
		return nil
	}
	if !isTerminal(t.fd) {
		return ErrNotTerminal
	}

	if _, err := io.WriteString(t.out, seqAltScreenEnter+seqCursorHide); err != nil {
		return err
	}
	restore, err := enableInputMode(t.fd)
	if err != nil {
		_, _ = io.WriteString(t.out, seqCursorShow+seqAltScreenExit)
		return err
	}
	t.restore = restore
	t.entered = true
	return nil
}

// Restore undoes Enter in reverse order: the saved input attributes come
// back first, then the cursor, then the primary screen. It is safe to call
// more than once and from a signal handler goroutine.
func (t *Terminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.entered {
		return nil
	}
	t.entered = false

	var errs []error
	if t.restore != nil {
		errs = append(errs, t.restore())
		t.restore = nil
	}
	_, err := io.WriteString(t.out, seqCursorShow+seqAltScreenExit)
	errs = append(errs, err)
	return errors.Join(errs...)
}

// Active reports whether Enter has been applied and not yet restored.
func (t *Terminal) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entered
}
