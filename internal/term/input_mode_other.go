//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package term

import xterm "golang.org/x/term"

// platformInputMode falls back to full raw mode where termios flags cannot be
// edited individually.
func platformInputMode(fd int) (func() error, error) {
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return xterm.Restore(fd, state)
	}, nil
}
