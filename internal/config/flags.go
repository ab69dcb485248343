package config

import (
	"flag"

	"github.com/Faultbox/twisty/pkg/puzzle"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagPuzzle     = flag.String("puzzle", "", "Puzzle kind: rubik, mirror or pyraminx")
	flagDimension  = flag.Int("dimension", 0, "Layers per axis")
	flagShape      = flag.String("shape", "", "Pyraminx solid: tetrahedron or bipyramid")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPuzzle != "" {
		kind, err := puzzle.ParseKind(*flagPuzzle)
		if err != nil {
			return err
		}
		cfg.Puzzle.Kind = kind
	}
	if *flagDimension != 0 {
		cfg.Puzzle.Dimension = *flagDimension
	}
	if *flagShape != "" {
		shape, err := puzzle.ParseShape(*flagShape)
		if err != nil {
			return err
		}
		cfg.Puzzle.Shape = shape
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	return nil
}
