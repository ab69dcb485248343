// Package config handles viewer and tool configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/twisty/internal/logger"
	"github.com/Faultbox/twisty/pkg/palette"
	"github.com/Faultbox/twisty/pkg/puzzle"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Puzzle   PuzzleConfig   `yaml:"puzzle"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
	Export   ExportConfig   `yaml:"export"`
}

// PuzzleConfig selects the puzzle to generate.
type PuzzleConfig struct {
	Kind      puzzle.Kind  `yaml:"kind"`
	Dimension int          `yaml:"dimension"`
	Shape     puzzle.Shape `yaml:"shape,omitempty"`
	// Colors overrides Rubik face colours by face name (right, left, top,
	// bottom, front, back). Values are colour names or hex strings.
	Colors map[string]string `yaml:"colors,omitempty"`
	// Name overrides the file name stem used by export and screenshots.
	Name string `yaml:"name,omitempty"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Background string `yaml:"background"`
}

// Camera modes.
const (
	CameraStatic = "static"
	CameraFly    = "fly"
)

// CameraConfig holds viewer camera settings.
type CameraConfig struct {
	Mode        string  `yaml:"mode"`
	Distance    float32 `yaml:"distance"`
	FOV         float32 `yaml:"fov"` // Vertical field of view in degrees
	MoveSpeed   float32 `yaml:"move_speed"`
	Sensitivity float32 `yaml:"sensitivity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ExportConfig holds puzzletool export settings.
type ExportConfig struct {
	Dir        string  `yaml:"dir"`
	AtlasScale int     `yaml:"atlas_scale"` // Pixels per atlas slot in PNG output
	STLScale   float32 `yaml:"stl_scale"`   // STL units per puzzle side
	Parallel   int     `yaml:"parallel"`
	// Puzzles lists what the export command writes. Empty means the
	// configured puzzle only.
	Puzzles []PuzzleConfig `yaml:"puzzles,omitempty"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Puzzle: PuzzleConfig{
			Kind:      puzzle.KindRubik,
			Dimension: 3,
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Background: "#1a1a1fff",
		},
		Camera: CameraConfig{
			Mode:        CameraStatic,
			Distance:    5,
			FOV:         45,
			MoveSpeed:   2.5,
			Sensitivity: 0.25,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Export: ExportConfig{
			Dir:        "export",
			AtlasScale: 64,
			STLScale:   57,
			Parallel:   4,
		},
	}
}

// Options converts the section into puzzle constructor options.
func (p PuzzleConfig) Options() (puzzle.Options, error) {
	opts := puzzle.Options{
		Kind:      p.Kind,
		Dimension: p.Dimension,
		Shape:     p.Shape,
	}
	if len(p.Colors) == 0 {
		return opts, nil
	}

	colors := puzzle.DefaultRubikColors()
	faces := map[string]*palette.Color{
		"right":  &colors.Right,
		"left":   &colors.Left,
		"top":    &colors.Top,
		"bottom": &colors.Bottom,
		"front":  &colors.Front,
		"back":   &colors.Back,
	}
	for face, value := range p.Colors {
		dst, ok := faces[strings.ToLower(face)]
		if !ok {
			return opts, fmt.Errorf("%w: unknown face %q", ErrInvalidConfig, face)
		}
		c, err := palette.Parse(value)
		if err != nil {
			return opts, fmt.Errorf("face %s: %w", face, err)
		}
		*dst = c
	}
	opts.Colors = &colors
	return opts, nil
}

// New builds the configured puzzle.
func (p PuzzleConfig) New() (puzzle.Puzzle, error) {
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	return puzzle.New(opts)
}

// Stem returns the file name stem for this puzzle, such as "rubik-3" or
// "pyraminx-bipyramid", unless Name is set.
func (p PuzzleConfig) Stem() string {
	if p.Name != "" {
		return p.Name
	}
	switch p.Kind {
	case puzzle.KindRubik:
		return fmt.Sprintf("rubik-%d", p.Dimension)
	case puzzle.KindPyraminx:
		return "pyraminx-" + p.Shape.String()
	default:
		return p.Kind.String()
	}
}

// BackgroundColor parses Graphics.Background.
func (c *Config) BackgroundColor() (palette.Color, error) {
	return palette.Parse(c.Graphics.Background)
}

// ExportPuzzles returns the puzzles the export command should write.
func (c *Config) ExportPuzzles() []PuzzleConfig {
	if len(c.Export.Puzzles) > 0 {
		return c.Export.Puzzles
	}
	return []PuzzleConfig{c.Puzzle}
}

// Validate checks values that the YAML decoder cannot.
func (c *Config) Validate() error {
	if _, err := c.Puzzle.New(); err != nil {
		return fmt.Errorf("puzzle: %w", err)
	}
	stems := make(map[string]int, len(c.Export.Puzzles))
	for i, p := range c.Export.Puzzles {
		if _, err := p.New(); err != nil {
			return fmt.Errorf("export.puzzles[%d]: %w", i, err)
		}
		// Export writes <stem>.png and <stem>.stl, so stems must differ.
		// Entries that only differ in colours or pyraminx dimension need a name.
		stem := p.Stem()
		if j, ok := stems[stem]; ok {
			return fmt.Errorf("%w: export.puzzles[%d] and [%d] both export as %q, set name", ErrInvalidConfig, j, i, stem)
		}
		stems[stem] = i
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Graphics.Width, c.Graphics.Height)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("graphics.background: %w", err)
	}
	switch c.Camera.Mode {
	case CameraStatic, CameraFly:
	default:
		return fmt.Errorf("%w: camera mode %q", ErrInvalidConfig, c.Camera.Mode)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: fov %g", ErrInvalidConfig, c.Camera.FOV)
	}
	if c.Export.AtlasScale < 1 {
		return fmt.Errorf("%w: atlas_scale %d", ErrInvalidConfig, c.Export.AtlasScale)
	}
	if c.Export.STLScale <= 0 {
		return fmt.Errorf("%w: stl_scale %g", ErrInvalidConfig, c.Export.STLScale)
	}
	if c.Export.Parallel < 1 {
		return fmt.Errorf("%w: parallel %d", ErrInvalidConfig, c.Export.Parallel)
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}
