package textutil

import (
	"testing"
	"unicode/utf8"
)

func TestCellSafeLeavesSafeInput(t *testing.T) {
	input := "safe-file.txt"
	if got := CellSafe(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestCellSafeReplacesControlCharacters(t *testing.T) {
	input := "bad\x1b[31m\tpath\x7f"
	got := CellSafe(input)
	if got != "bad?[31m path?" {
		t.Fatalf("unexpected sanitized string %q", got)
	}
	if utf8.RuneCountInString(got) != utf8.RuneCountInString(input) {
		t.Fatalf("CellSafe must preserve rune count")
	}
}

func TestCellSafeKeepsUnicode(t *testing.T) {
	input := "zażółć gęślą jaźń"
	if got := CellSafe(input); got != input {
		t.Fatalf("expected unicode text untouched, got %q", got)
	}
}
