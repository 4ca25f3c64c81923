// Command circlesweep renders random circles for a range of circle counts
// and writes one image per count, with the rendering time in the file name.
//
// Usage:
//
//	circlesweep [-config sweep.toml] [-counts 10,100,1000] [-out dir] [-format png|bmp|tiff]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"seehuhn.de/go/circles"
	"seehuhn.de/go/circles/encode"
	"seehuhn.de/go/circles/generate"
)

func main() {
	configFile := flag.String("config", "", "read settings from this TOML `file`")
	width := flag.Int("width", 0, "canvas width in pixels")
	height := flag.Int("height", 0, "canvas height in pixels")
	counts := flag.String("counts", "", "comma-separated circle counts")
	outDir := flag.String("out", "", "output `directory`")
	format := flag.String("format", "", "image format: png, bmp or tiff")
	seed := flag.Uint64("seed", 0, "random seed (0 for a random seed)")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	circles.SetLogger(logger)

	cfg := defaultConfig()
	if *configFile != "" {
		if err := cfg.readConfig(*configFile); err != nil {
			logger.Error("cannot read config", "file", *configFile, "error", err)
			os.Exit(1)
		}
	}

	// explicitly set flags override the config file
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "counts":
			var cc []int
			cc, err = parseCounts(*counts)
			if err == nil {
				cfg.Counts = cc
			}
		case "out":
			cfg.OutDir = *outDir
		case "format":
			cfg.Format = *format
		case "seed":
			cfg.Seed = *seed
		}
	})
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Error("bad settings", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("sweep failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config, logger *slog.Logger) error {
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Debug("starting sweep", "seed", seed, "width", cfg.Width, "height", cfg.Height)

	gen := generate.New(cfg.Width, cfg.Height, seed)
	gen.MinRadius = cfg.MinRadius
	gen.MaxRadius = cfg.MaxRadius

	for _, n := range cfg.Counts {
		cc := gen.Circles(n)
		pix := make([]byte, cfg.Width*cfg.Height*4)

		elapsed, err := renderTimed(pix, cfg.Width, cfg.Height, cc)
		if err != nil {
			return err
		}

		fname := filepath.Join(cfg.OutDir, outputName(n, elapsed, cfg.Format))
		logger.Info("saving", "file", fname)
		if err := encode.Save(fname, pix, cfg.Width, cfg.Height); err != nil {
			return err
		}

		logger.Info("rendering completed", "circles", n, "seconds", elapsed.Seconds())
	}
	return nil
}

// renderTimed clears the canvas and renders the circles, returning the
// time spent in both.
func renderTimed(pix []byte, width, height int, cc []circles.Circle) (time.Duration, error) {
	start := time.Now()
	circles.Clear(pix)
	err := circles.RenderSlice(pix, width, height, cc)
	return time.Since(start), err
}

// outputName returns the file name for a rendering of n circles.
// The time is given in seconds, with six significant digits.
func outputName(n int, elapsed time.Duration, format string) string {
	secs := strconv.FormatFloat(elapsed.Seconds(), 'g', 6, 64)
	return fmt.Sprintf("sequential_true_n_circles_%d_%s.%s", n, secs, format)
}
