package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/circles/generate"
)

// config holds the settings for a sweep over circle counts.
type config struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Counts    []int   `toml:"counts"`
	OutDir    string  `toml:"out_dir"`
	Format    string  `toml:"format"`
	Seed      uint64  `toml:"seed"` // 0 picks a random seed
	MinRadius float64 `toml:"min_radius"`
	MaxRadius float64 `toml:"max_radius"`
}

func defaultConfig() *config {
	return &config{
		Width:     800,
		Height:    600,
		Counts:    []int{10, 100, 1000, 10000, 100000, 1000000},
		OutDir:    "soutput",
		Format:    "png",
		MinRadius: generate.DefaultMinRadius,
		MaxRadius: generate.DefaultMaxRadius,
	}
}

// readConfig reads a TOML file on top of the current settings.
// Keys missing from the file keep their values.
func (c *config) readConfig(fname string) error {
	md, err := toml.DecodeFile(fname, c)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", fname, undecoded[0].String())
	}
	return nil
}

var errConfig = errors.New("invalid configuration")

// Validate checks that the settings describe a sweep which can be run.
func (c *config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", errConfig, c.Width, c.Height)
	}
	if len(c.Counts) == 0 {
		return fmt.Errorf("%w: no circle counts", errConfig)
	}
	for _, n := range c.Counts {
		if n <= 0 {
			return fmt.Errorf("%w: circle count %d", errConfig, n)
		}
	}
	if c.MinRadius > c.MaxRadius {
		return fmt.Errorf("%w: radius range [%g, %g)", errConfig, c.MinRadius, c.MaxRadius)
	}
	switch c.Format {
	case "png", "bmp", "tiff":
	default:
		return fmt.Errorf("%w: image format %q", errConfig, c.Format)
	}
	return nil
}

// parseCounts parses a comma-separated list of circle counts.
func parseCounts(s string) ([]int, error) {
	var res []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("circle count %q: %w", field, err)
		}
		res = append(res, n)
	}
	return res, nil
}
