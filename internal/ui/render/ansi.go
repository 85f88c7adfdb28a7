package render

import "github.com/kk-code-lab/lessnt/internal/ui/canvas"

var (
	seqFramePrefix = []byte("\x1b[0m\x1b[2J\x1b[H")
	seqReset       = []byte("\x1b[0m")
	seqFgRGB       = []byte("\x1b[38;2;")
	seqBgRGB       = []byte("\x1b[48;2;")
	seqDefaultBg   = []byte("\x1b[49m")
)

// appendInt writes a small non-negative integer without going through strconv.
func appendInt(buf []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(buf, byte(n)+'0')
	}
	if n < 100 {
		return append(buf, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(buf, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	var tmp [20]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(buf, tmp[i:]...)
}

func appendRGB(buf, prefix []byte, c canvas.Color) []byte {
	buf = append(buf, prefix...)
	buf = appendInt(buf, int(c.R))
	buf = append(buf, ';')
	buf = appendInt(buf, int(c.G))
	buf = append(buf, ';')
	buf = appendInt(buf, int(c.B))
	return append(buf, 'm')
}

func appendFg(buf []byte, c canvas.Color) []byte {
	return appendRGB(buf, seqFgRGB, c)
}

// appendBg maps the default sentinel to "terminal background" instead of a
// fixed color.
func appendBg(buf []byte, c canvas.Color) []byte {
	if c.Default {
		return append(buf, seqDefaultBg...)
	}
	return appendRGB(buf, seqBgRGB, c)
}
