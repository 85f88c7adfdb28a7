package render

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/kk-code-lab/lessnt/internal/ui/canvas"
)

const (
	prefix    = "\x1b[0m\x1b[2J\x1b[H\x1b[38;2;255;255;255m"
	suffix    = "\x1b[0m"
	fgPattern = "\x1b[38;2;"
)

func TestRenderBlankCanvas(t *testing.T) {
	c := canvas.New(2, 3)
	got := string(NewFrame(2, 3).Render(c))
	want := prefix + "   \n   \n" + suffix
	if got != want {
		t.Fatalf("Render blank canvas\n got %q\nwant %q", got, want)
	}
}

func TestRenderEmitsColorOnlyOnTransitions(t *testing.T) {
	c := canvas.New(1, 8)
	red := canvas.RGB(255, 0, 0)
	green := canvas.RGB(0, 255, 0)
	if err := c.Write(canvas.PrintOptions{X: 0, Fg: &red}, "aaa"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := c.Write(canvas.PrintOptions{X: 3, Fg: &green}, "bbbbb"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := string(NewFrame(1, 8).Render(c))
	body := strings.TrimPrefix(out, prefix)
	if n := strings.Count(body, fgPattern); n != 2 {
		t.Fatalf("expected 2 foreground escapes for 2 color runs, got %d in %q", n, body)
	}
	want := "\x1b[38;2;255;0;0maaa\x1b[38;2;0;255;0mbbbbb\n" + suffix
	if body != want {
		t.Fatalf("body\n got %q\nwant %q", body, want)
	}
}

func TestRenderCarriesColorAcrossRows(t *testing.T) {
	c := canvas.New(2, 2)
	red := canvas.RGB(255, 0, 0)
	if err := c.Write(canvas.PrintOptions{X: 1, Y: 0, Fg: &red}, "x"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := c.Write(canvas.PrintOptions{X: 0, Y: 1, Fg: &red}, "y"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	body := strings.TrimPrefix(string(NewFrame(2, 2).Render(c)), prefix)
	want := " \x1b[38;2;255;0;0mx\ny\x1b[38;2;255;255;255m \n" + suffix
	if body != want {
		t.Fatalf("body\n got %q\nwant %q", body, want)
	}
}

func TestRenderBackgroundUsesResetForDefault(t *testing.T) {
	c := canvas.New(1, 3)
	gray := canvas.RGB(10, 10, 10)
	if err := c.Write(canvas.PrintOptions{X: 1, Bg: &gray}, "m"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	body := strings.TrimPrefix(string(NewFrame(1, 3).Render(c)), prefix)
	want := " \x1b[48;2;10;10;10mm\x1b[49m \n" + suffix
	if body != want {
		t.Fatalf("body\n got %q\nwant %q", body, want)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	c := canvas.New(3, 5)
	blue := canvas.RGB(0, 0, 200)
	if err := c.Write(canvas.PrintOptions{X: 1, Y: 1, Fg: &blue, Bg: &blue}, "ab"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f := NewFrame(3, 5)
	first := append([]byte(nil), f.Render(c)...)
	second := f.Render(c)
	if !bytes.Equal(first, second) {
		t.Fatalf("rendering twice differs:\n%q\n%q", first, second)
	}
}

func TestRenderMultibyteRunes(t *testing.T) {
	c := canvas.New(1, 3)
	if err := c.Write(canvas.PrintOptions{}, "żół"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	body := strings.TrimPrefix(string(NewFrame(1, 3).Render(c)), prefix)
	if body != "żół\n"+suffix {
		t.Fatalf("body %q", body)
	}
}

func TestDrawWritesRenderedFrame(t *testing.T) {
	c := canvas.New(1, 1)
	var buf bytes.Buffer
	f := NewFrame(1, 1)
	if err := f.Draw(&buf, c); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if buf.String() != string(f.Render(c)) {
		t.Fatalf("Draw output differs from Render")
	}
}

func TestAppendInt(t *testing.T) {
	for _, n := range []int{0, 7, 42, 255, 1000, 123456} {
		if got, want := string(appendInt(nil, n)), strconv.Itoa(n); got != want {
			t.Fatalf("appendInt(%d)=%q want %q", n, got, want)
		}
	}
}
