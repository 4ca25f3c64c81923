package main

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := defaultConfig().Validate(); err != nil {
		t.Error(err)
	}
}

func TestReadConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "sweep.toml")
	body := `width = 320
height = 200
counts = [1, 2, 3]
format = "tiff"
seed = 99
`
	if err := os.WriteFile(fname, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	if err := cfg.readConfig(fname); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 200 {
		t.Errorf("canvas %dx%d, want 320x200", cfg.Width, cfg.Height)
	}
	if !slices.Equal(cfg.Counts, []int{1, 2, 3}) {
		t.Errorf("counts = %v", cfg.Counts)
	}
	if cfg.Format != "tiff" || cfg.Seed != 99 {
		t.Errorf("format %q, seed %d", cfg.Format, cfg.Seed)
	}
	// not in the file
	if cfg.OutDir != "soutput" || cfg.MaxRadius != 50 {
		t.Errorf("defaults lost: out %q, max radius %g", cfg.OutDir, cfg.MaxRadius)
	}
}

func TestReadConfigUnknownKey(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "sweep.toml")
	if err := os.WriteFile(fname, []byte("colour = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	err := defaultConfig().readConfig(fname)
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Errorf("got %v, want an unknown key error", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*config)
	}{
		{"zero width", func(c *config) { c.Width = 0 }},
		{"negative height", func(c *config) { c.Height = -3 }},
		{"no counts", func(c *config) { c.Counts = nil }},
		{"zero count", func(c *config) { c.Counts = []int{10, 0} }},
		{"radius range", func(c *config) { c.MinRadius, c.MaxRadius = 10, 5 }},
		{"format", func(c *config) { c.Format = "jpeg" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := defaultConfig()
			c.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, errConfig) {
				t.Errorf("got %v, want errConfig", err)
			}
		})
	}
}

func TestParseCounts(t *testing.T) {
	got, err := parseCounts("10, 100,,1000")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{10, 100, 1000}) {
		t.Errorf("got %v", got)
	}

	if _, err := parseCounts("10,x"); err == nil {
		t.Error("expected an error")
	}
}

func TestOutputName(t *testing.T) {
	got := outputName(1000, 1234567*time.Microsecond, "png")
	want := "sequential_true_n_circles_1000_1.23457.png"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
