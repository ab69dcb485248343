package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/twisty/pkg/palette"
	"github.com/Faultbox/twisty/pkg/puzzle"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Puzzle.Kind != puzzle.KindRubik {
		t.Errorf("expected rubik, got %v", cfg.Puzzle.Kind)
	}
	if cfg.Puzzle.Dimension != 3 {
		t.Errorf("expected dimension 3, got %d", cfg.Puzzle.Dimension)
	}

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.Mode != CameraStatic {
		t.Errorf("expected static camera, got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.Distance != 5 {
		t.Errorf("expected camera distance 5, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.MoveSpeed != 2.5 {
		t.Errorf("expected move speed 2.5, got %f", cfg.Camera.MoveSpeed)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
puzzle:
  kind: pyraminx
  dimension: 4
  shape: bipyramid

graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  background: "#000000"

camera:
  mode: fly
  fov: 60
  move_speed: 4

logging:
  level: "debug"
  log_file: "twisty.log"

export:
  dir: out
  atlas_scale: 16
  puzzles:
    - kind: rubik
      dimension: 2
      colors:
        top: gold
    - kind: mirror
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Puzzle.Kind != puzzle.KindPyraminx {
		t.Errorf("expected pyraminx, got %v", cfg.Puzzle.Kind)
	}
	if cfg.Puzzle.Dimension != 4 {
		t.Errorf("expected dimension 4, got %d", cfg.Puzzle.Dimension)
	}
	if cfg.Puzzle.Shape != puzzle.ShapeBipyramid {
		t.Errorf("expected bipyramid, got %v", cfg.Puzzle.Shape)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Camera.Mode != CameraFly {
		t.Errorf("expected fly camera, got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	// Untouched keys keep their defaults
	if cfg.Camera.Sensitivity != 0.25 {
		t.Errorf("expected default sensitivity 0.25, got %f", cfg.Camera.Sensitivity)
	}

	if cfg.Logging.LogFile != "twisty.log" {
		t.Errorf("expected log file 'twisty.log', got %s", cfg.Logging.LogFile)
	}

	if cfg.Export.Dir != "out" || cfg.Export.AtlasScale != 16 {
		t.Errorf("unexpected export section %+v", cfg.Export)
	}
	if n := len(cfg.ExportPuzzles()); n != 2 {
		t.Fatalf("expected 2 export puzzles, got %d", n)
	}
	if cfg.Export.Puzzles[1].Kind != puzzle.KindMirror {
		t.Errorf("expected mirror, got %v", cfg.Export.Puzzles[1].Kind)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected loaded config to validate: %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "graphics:\n  width: not a number\n  invalid syntax here\n"},
		{"unknown kind", "puzzle:\n  kind: megaminx\n"},
		{"unknown shape", "puzzle:\n  shape: cube\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.yaml), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"zero dimension", func(c *Config) { c.Puzzle.Dimension = 0 }, puzzle.ErrInvalidDimension},
		{"negative dimension", func(c *Config) { c.Puzzle.Dimension = -2 }, puzzle.ErrInvalidDimension},
		{"oversized dimension", func(c *Config) { c.Puzzle.Dimension = 250 }, puzzle.ErrInvalidDimension},
		{"bad export dimension", func(c *Config) {
			c.Export.Puzzles = []PuzzleConfig{{Kind: puzzle.KindPyraminx}}
		}, puzzle.ErrInvalidDimension},
		{"bad face colour", func(c *Config) { c.Puzzle.Colors = map[string]string{"top": "#12"} }, palette.ErrInvalidColor},
		{"unknown face", func(c *Config) { c.Puzzle.Colors = map[string]string{"up": "red"} }, ErrInvalidConfig},
		{"window size", func(c *Config) { c.Graphics.Width = 0 }, ErrInvalidConfig},
		{"background", func(c *Config) { c.Graphics.Background = "mauve" }, palette.ErrInvalidColor},
		{"camera mode", func(c *Config) { c.Camera.Mode = "orbit" }, ErrInvalidConfig},
		{"fov", func(c *Config) { c.Camera.FOV = 180 }, ErrInvalidConfig},
		{"atlas scale", func(c *Config) { c.Export.AtlasScale = 0 }, ErrInvalidConfig},
		{"stl scale", func(c *Config) { c.Export.STLScale = -1 }, ErrInvalidConfig},
		{"parallel", func(c *Config) { c.Export.Parallel = 0 }, ErrInvalidConfig},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidConfig},
		{"duplicate export stem", func(c *Config) {
			c.Export.Puzzles = []PuzzleConfig{
				{Kind: puzzle.KindRubik, Dimension: 3},
				{Kind: puzzle.KindRubik, Dimension: 3, Colors: map[string]string{"top": "silver"}},
			}
		}, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}

	// A name tells otherwise identical stems apart.
	cfg := Default()
	cfg.Export.Puzzles = []PuzzleConfig{
		{Kind: puzzle.KindPyraminx, Dimension: 1},
		{Kind: puzzle.KindPyraminx, Dimension: 2, Name: "pyraminx-2"},
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("named export puzzles should validate: %v", err)
	}

	// The mirror cube ignores its dimension.
	cfg = Default()
	cfg.Puzzle = PuzzleConfig{Kind: puzzle.KindMirror}
	if err := cfg.Validate(); err != nil {
		t.Errorf("mirror without dimension should validate: %v", err)
	}
}

func TestPuzzleStem(t *testing.T) {
	tests := []struct {
		p    PuzzleConfig
		want string
	}{
		{PuzzleConfig{Kind: puzzle.KindRubik, Dimension: 4}, "rubik-4"},
		{PuzzleConfig{Kind: puzzle.KindMirror}, "mirror"},
		{PuzzleConfig{Kind: puzzle.KindPyraminx, Shape: puzzle.ShapeBipyramid}, "pyraminx-bipyramid"},
		{PuzzleConfig{Kind: puzzle.KindRubik, Dimension: 3, Name: "silver-top"}, "silver-top"},
	}
	for _, tt := range tests {
		if got := tt.p.Stem(); got != tt.want {
			t.Errorf("Stem(%+v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestPuzzleOptions(t *testing.T) {
	p := PuzzleConfig{
		Kind:      puzzle.KindRubik,
		Dimension: 2,
		Colors:    map[string]string{"Top": "silver", "back": "#ff0000"},
	}

	opts, err := p.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	if opts.Colors == nil {
		t.Fatal("expected colour override")
	}
	if opts.Colors.Top != palette.Silver {
		t.Errorf("expected silver top, got %v", opts.Colors.Top)
	}
	if opts.Colors.Back != palette.RGB(1, 0, 0) {
		t.Errorf("expected red back, got %v", opts.Colors.Back)
	}
	if opts.Colors.Front != palette.Blue {
		t.Errorf("expected default blue front, got %v", opts.Colors.Front)
	}

	opts, err = PuzzleConfig{Kind: puzzle.KindMirror}.Options()
	if err != nil || opts.Colors != nil {
		t.Errorf("expected no overrides, got %+v, %v", opts, err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "twisty.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find twisty.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "puzzle and dimension flags",
			setup: func() {
				*flagPuzzle = "pyraminx"
				*flagDimension = 5
				*flagShape = "bipyramid"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Puzzle.Kind != puzzle.KindPyraminx {
					t.Errorf("expected pyraminx, got %v", cfg.Puzzle.Kind)
				}
				if cfg.Puzzle.Dimension != 5 {
					t.Errorf("expected dimension 5, got %d", cfg.Puzzle.Dimension)
				}
				if cfg.Puzzle.Shape != puzzle.ShapeBipyramid {
					t.Errorf("expected bipyramid, got %v", cfg.Puzzle.Shape)
				}
			},
			teardown: func() {
				*flagPuzzle = ""
				*flagDimension = 0
				*flagShape = ""
			},
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags failed: %v", err)
			}
			tt.verify(t, cfg)
		})
	}

	*flagPuzzle = "megaminx"
	defer func() { *flagPuzzle = "" }()
	if err := applyFlags(Default()); !errors.Is(err, puzzle.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
puzzle:
  dimension: 4
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height and dimension from file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Puzzle.Dimension != 4 {
		t.Errorf("expected dimension 4 from file, got %d", cfg.Puzzle.Dimension)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("puzzle:\n  dimension: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, puzzle.ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Puzzle.Kind = puzzle.KindMirror
	cfg.Camera.Mode = CameraFly
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if !strings.Contains(string(data), "kind: mirror") {
		t.Errorf("expected kind written by name, got:\n%s", data)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Puzzle.Kind != puzzle.KindMirror || loaded.Camera.Mode != CameraFly {
		t.Errorf("reloaded config differs: %+v", loaded)
	}
}
