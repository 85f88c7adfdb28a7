package textutil

import "strings"

// CellRune maps r to something safe to place in a single terminal cell.
// Control characters would move the cursor or start escape sequences, so they
// are shown as spaces (whitespace) or '?' (everything else).
func CellRune(r rune) rune {
	switch {
	case r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
		return ' '
	case r < 0x20 || r == 0x7f:
		return '?'
	case r >= 0x80 && r < 0xa0:
		return '?'
	default:
		return r
	}
}

// CellSafe applies CellRune to every rune. The rune count is unchanged, which
// keeps canvas bounds checks valid for the result.
func CellSafe(text string) string {
	clean := true
	for _, r := range text {
		if CellRune(r) != r {
			clean = false
			break
		}
	}
	if clean {
		return text
	}
	return strings.Map(CellRune, text)
}
