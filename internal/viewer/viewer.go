// Package viewer runs the interactive puzzle viewer: window, input, cameras
// and the render loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/twisty/internal/config"
	"github.com/Faultbox/twisty/internal/engine/camera"
	"github.com/Faultbox/twisty/internal/engine/input"
	"github.com/Faultbox/twisty/internal/engine/renderer"
	"github.com/Faultbox/twisty/internal/engine/window"
	"github.com/Faultbox/twisty/internal/export"
	"github.com/Faultbox/twisty/internal/logger"
	"github.com/Faultbox/twisty/pkg/puzzle"
)

// Viewer is the main viewer instance.
type Viewer struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	rig      *camera.Rig
	controls *Controls
	log      *zap.Logger

	screenshot bool
}

// New creates the window and GL state and loads the configured puzzle.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
	}

	p, err := cfg.Puzzle.New()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}

	v.window, err = window.New(window.Config{
		Title:      title(cfg.Puzzle),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    4,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window created.
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: bg,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := v.renderer.Load(p); err != nil {
		v.Close()
		return nil, err
	}

	v.input = input.New()
	v.input.SetSize(v.window.GetSize())

	cam := cfg.Camera
	v.rig = camera.NewRig(cam.Distance, cam.FOV, cam.MoveSpeed, cam.Sensitivity)
	if cam.Mode == config.CameraFly {
		v.rig.Toggle()
	}
	v.controls = NewControls(v.rig, cfg.Puzzle)
	v.window.SetCursorLocked(v.controls.CursorLocked())

	v.log.Info("viewer initialized", zap.Stringer("puzzle", p.Kind()), zap.Stringer("camera", v.rig.Mode))
	return v, nil
}

// Run starts the main loop and returns when the window closes.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting render loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			if event.Type == input.EventWindowResize {
				v.renderer.Resize(v.window.DrawableSize())
			}
		}

		if err := v.update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		v.render()
		if v.screenshot {
			v.saveScreenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) update(dt float32) error {
	res := v.controls.Update(v.input, dt)

	if res.Quit {
		v.running = false
	}
	if res.CursorChanged {
		v.window.SetCursorLocked(res.CursorLocked)
	}
	if res.ToggleWireframe {
		v.renderer.Wireframe = !v.renderer.Wireframe
	}
	v.screenshot = res.Screenshot
	if res.Reload != nil {
		p, err := res.Reload.New()
		if err != nil {
			// Only reachable through a bad selection; keep showing the old puzzle.
			v.log.Warn("cannot build puzzle", zap.Error(err))
			return nil
		}
		if err := v.renderer.Load(p); err != nil {
			return err
		}
		v.window.SetTitle(title(*res.Reload))
	}
	return nil
}

func (v *Viewer) render() {
	width, height := v.renderer.Size()
	v.renderer.Draw(renderer.Frame{
		View:     v.rig.ViewMatrix(),
		Proj:     v.rig.Projection(width, height),
		Eye:      v.rig.EyePosition(),
		Rotation: v.rig.View.Mat4(),
	})
}

// saveScreenshot writes the frame just drawn into the export directory.
func (v *Viewer) saveScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path := export.ScreenshotName(v.cfg.Export.Dir, v.controls.Puzzle().Stem(), time.Now())
	if err := export.Screenshot(pixels, w, h, path); err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL and SDL resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func title(p config.PuzzleConfig) string {
	return "Twisty - " + describe(p)
}

// describe names a puzzle selection for titles and logs.
func describe(p config.PuzzleConfig) string {
	switch p.Kind {
	case puzzle.KindRubik:
		return fmt.Sprintf("rubik %dx%dx%d", p.Dimension, p.Dimension, p.Dimension)
	case puzzle.KindPyraminx:
		return "pyraminx " + p.Shape.String()
	default:
		return p.Kind.String()
	}
}
