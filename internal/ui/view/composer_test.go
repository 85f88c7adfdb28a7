package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/kk-code-lab/lessnt/internal/config"
	"github.com/kk-code-lab/lessnt/internal/ui/canvas"
	pagerpkg "github.com/kk-code-lab/lessnt/internal/ui/pager"
)

type fakeWindow struct {
	lines   []pagerpkg.VisibleLine
	percent float64
}

func (w fakeWindow) VisibleLines() []pagerpkg.VisibleLine { return w.lines }

func (w fakeWindow) ProgressPercent() float64 { return w.percent }

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Geometry = config.Geometry{Rows: 8, Cols: 30, GutterWidth: 6, HeaderHeight: 2}
	return cfg
}

func rowString(cv *canvas.Canvas, y int) string {
	var b strings.Builder
	for _, cell := range cv.Row(y) {
		b.WriteRune(cell.Rune)
	}
	return b.String()
}

func visible(rows ...pagerpkg.Line) []pagerpkg.VisibleLine {
	out := make([]pagerpkg.VisibleLine, len(rows))
	for i, l := range rows {
		out[i] = pagerpkg.VisibleLine{Line: l, Row: i}
	}
	return out
}

func TestComposeStatusAndSeparator(t *testing.T) {
	cfg := testConfig()
	cv := canvas.New(cfg.Geometry.Rows, cfg.Geometry.Cols)
	c := NewComposer(cfg, "notes.txt")

	if err := c.Compose(cv, fakeWindow{percent: 33.0}); err != nil {
		t.Fatalf("Compose: %v", err)
	}

	status := rowString(cv, 0)
	if !strings.HasPrefix(status, " notes.txt") {
		t.Fatalf("status should start with file name, got %q", status)
	}
	if !strings.HasSuffix(status, "33.0% ") {
		t.Fatalf("status should end with percentage, got %q", status)
	}
	statusBg := canvas.RGB(cfg.Theme.StatusBg.R, cfg.Theme.StatusBg.G, cfg.Theme.StatusBg.B)
	for x := 0; x < cfg.Geometry.Cols; x++ {
		if cv.Cell(x, 0).Bg != statusBg {
			t.Fatalf("status cell %d not filled with status background", x)
		}
	}

	if sep := rowString(cv, 1); sep != strings.Repeat("─", cfg.Geometry.Cols) {
		t.Fatalf("separator row = %q", sep)
	}
}

func TestComposeGutterCollapsesContinuationRows(t *testing.T) {
	cfg := testConfig()
	cv := canvas.New(cfg.Geometry.Rows, cfg.Geometry.Cols)
	win := fakeWindow{lines: visible(
		pagerpkg.Line{Text: "first part", Number: 6},
		pagerpkg.Line{Text: "second part ", Number: 6},
		pagerpkg.Line{Text: "next ", Number: 7},
	)}

	if err := NewComposer(cfg, "f").Compose(cv, win); err != nil {
		t.Fatalf("Compose: %v", err)
	}

	want := []string{
		"  7 | first part",
		"    | second part ",
		"  8 | next ",
	}
	for i, w := range want {
		got := strings.TrimRight(rowString(cv, 2+i), " ")
		if got != strings.TrimRight(w, " ") {
			t.Fatalf("row %d = %q want %q", i, got, w)
		}
	}
	gutter := canvas.RGB(cfg.Theme.Gutter.R, cfg.Theme.Gutter.G, cfg.Theme.Gutter.B)
	if cv.Cell(2, 2).Fg != gutter {
		t.Fatalf("gutter digits should use the gutter color")
	}
	if got := rowString(cv, 5); strings.TrimSpace(got) != "" {
		t.Fatalf("rows below the window should stay blank, got %q", got)
	}
}

func TestComposeSanitizesControlCharacters(t *testing.T) {
	cfg := testConfig()
	cv := canvas.New(cfg.Geometry.Rows, cfg.Geometry.Cols)
	win := fakeWindow{lines: visible(pagerpkg.Line{Text: "a\tb\x1b[0m", Number: 0})}
	if err := NewComposer(cfg, "f").Compose(cv, win); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if got := strings.TrimRight(rowString(cv, 2), " "); got != "  1 | a b?[0m" {
		t.Fatalf("row = %q", got)
	}
}

func TestComposeStopsOnBoundsError(t *testing.T) {
	cfg := testConfig()
	cv := canvas.New(cfg.Geometry.Rows, cfg.Geometry.Cols)
	win := fakeWindow{lines: []pagerpkg.VisibleLine{
		{Line: pagerpkg.Line{Text: "ok", Number: 0}, Row: 0},
		{Line: pagerpkg.Line{Text: strings.Repeat("x", 40), Number: 1}, Row: 1},
		{Line: pagerpkg.Line{Text: "never", Number: 2}, Row: 2},
	}}

	err := NewComposer(cfg, "f").Compose(cv, win)
	var bounds *canvas.BoundsError
	if !errors.As(err, &bounds) {
		t.Fatalf("expected *canvas.BoundsError, got %v", err)
	}
	if strings.Contains(rowString(cv, 4), "never") {
		t.Fatalf("composition should stop at the failing row")
	}
}

func TestComposeTruncatesLongFileName(t *testing.T) {
	cfg := testConfig()
	cv := canvas.New(cfg.Geometry.Rows, cfg.Geometry.Cols)
	name := strings.Repeat("n", 60) + ".txt"
	if err := NewComposer(cfg, name).Compose(cv, fakeWindow{percent: 100}); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	status := rowString(cv, 0)
	if !strings.Contains(status, "…") || !strings.HasSuffix(status, "100.0% ") {
		t.Fatalf("status = %q", status)
	}
}

func TestComposeDecomposedFileName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
	}{
		{"composable marks", strings.Repeat("e\u0301", 80) + ".txt"},
		{"marks without precomposed form", strings.Repeat("x\u0301", 80) + ".txt"},
		{"stacked marks", strings.Repeat("q\u0301\u0323", 60) + ".txt"},
		{"wide characters", strings.Repeat("日本語", 40) + ".txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cv := canvas.New(cfg.Geometry.Rows, cfg.Geometry.Cols)
			win := fakeWindow{
				lines:   visible(pagerpkg.Line{Text: "first row", Number: 0}),
				percent: 42,
			}
			if err := NewComposer(cfg, tt.fileName).Compose(cv, win); err != nil {
				t.Fatalf("Compose: %v", err)
			}
			if status := rowString(cv, 0); !strings.HasSuffix(status, "42.0% ") {
				t.Fatalf("status = %q", status)
			}
			if row := rowString(cv, cfg.Geometry.HeaderHeight); !strings.Contains(row, "first row") {
				t.Fatalf("body row = %q", row)
			}
		})
	}
}

func TestNewComposerComposesFileName(t *testing.T) {
	c := NewComposer(testConfig(), "cafe\u0301.txt")
	if c.fileName != "caf\u00e9.txt" {
		t.Fatalf("fileName = %q", c.fileName)
	}
}

func TestNumberLabel(t *testing.T) {
	tests := []struct {
		n     int
		width int
		want  string
	}{
		{1, 6, "  1 |"},
		{42, 6, " 42 |"},
		{999, 6, "999 |"},
		{1000, 6, "1000 |"},
		{10000, 6, "10000|"},
		{1234567, 6, "…4567|"},
	}
	for _, tt := range tests {
		if got := numberLabel(tt.n, tt.width); got != tt.want {
			t.Fatalf("numberLabel(%d,%d)=%q want %q", tt.n, tt.width, got, tt.want)
		}
	}
	if got := continuationLabel(6); got != "    |" {
		t.Fatalf("continuationLabel(6)=%q", got)
	}
}
