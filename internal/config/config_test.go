package config

import (
	"strings"
	"testing"
)

func TestDefaultGeometry(t *testing.T) {
	g := Default().Geometry
	if got := g.BodyHeight(); got != 28 {
		t.Fatalf("BodyHeight=%d want 28", got)
	}
	if got := g.ContentWidth(); got != 114 {
		t.Fatalf("ContentWidth=%d want 114", got)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("default geometry should be valid: %v", err)
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name string
		geom Geometry
	}{
		{"zero rows", Geometry{Rows: 0, Cols: 80, GutterWidth: 6, HeaderHeight: 2}},
		{"header fills screen", Geometry{Rows: 2, Cols: 80, GutterWidth: 6, HeaderHeight: 2}},
		{"gutter fills screen", Geometry{Rows: 10, Cols: 7, GutterWidth: 6, HeaderHeight: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.geom.Validate(); err == nil {
				t.Fatalf("expected %+v to be rejected", tt.geom)
			}
		})
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	env := map[string]string{
		EnvGutterColor: "#102030",
		EnvStatusBg:    "Teal",
		EnvKeepChunks:  "3",
		EnvDebugLog:    "/tmp/lessnt.log",
	}
	cfg, err := Load(func(key string) string { return env[key] })
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme.Gutter != (RGB{R: 0x10, G: 0x20, B: 0x30}) {
		t.Fatalf("gutter color = %+v", cfg.Theme.Gutter)
	}
	if cfg.Theme.StatusBg != (RGB{R: 0, G: 0x80, B: 0x80}) {
		t.Fatalf("status bg = %+v", cfg.Theme.StatusBg)
	}
	if cfg.Theme.Text != Default().Theme.Text {
		t.Fatalf("text color should keep its default, got %+v", cfg.Theme.Text)
	}
	if cfg.KeepChunks != 3 {
		t.Fatalf("KeepChunks=%d want 3", cfg.KeepChunks)
	}
	if cfg.DebugLog != "/tmp/lessnt.log" {
		t.Fatalf("DebugLog=%q", cfg.DebugLog)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown color", map[string]string{EnvTextColor: "notacolor"}, EnvTextColor},
		{"negative keep", map[string]string{EnvKeepChunks: "-1"}, EnvKeepChunks},
		{"non numeric keep", map[string]string{EnvKeepChunks: "many"}, EnvKeepChunks},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(func(key string) string { return tt.env[key] })
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q should mention %s", err, tt.want)
			}
		})
	}
}

func TestLoadNilGetenv(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil): %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(nil) should return defaults")
	}
}
