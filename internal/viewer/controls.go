package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/twisty/internal/config"
	"github.com/Faultbox/twisty/internal/engine/camera"
	"github.com/Faultbox/twisty/pkg/puzzle"
)

// inputState is the part of input.Input the controls read.
type inputState interface {
	IsKeyPressed(sdl.Scancode) bool
	IsKeyHeld(sdl.Scancode) bool
	IsButtonHeld(uint8) bool
	MouseDelta() (float32, float32)
	TouchDelta() (float32, float32, bool)
	Scroll() float32
}

// Key bindings.
const (
	keyToggleCamera = sdl.SCANCODE_C
	keyEscape       = sdl.SCANCODE_ESCAPE
	keyWireframe    = sdl.SCANCODE_F
	keyScreenshot   = sdl.SCANCODE_P
	keyRubik        = sdl.SCANCODE_1
	keyMirror       = sdl.SCANCODE_2
	keyPyraminx     = sdl.SCANCODE_3
	keyShape        = sdl.SCANCODE_B
	keyGrow         = sdl.SCANCODE_EQUALS
	keyShrink       = sdl.SCANCODE_MINUS
)

// Interactive resizing bounds.
const (
	defaultDimension = 3
	maxDimension     = 20
)

// Result is what one frame of input asks the viewer to do.
type Result struct {
	Quit            bool
	CursorChanged   bool
	CursorLocked    bool
	ToggleWireframe bool
	Screenshot      bool
	// Reload is set when the puzzle selection changed.
	Reload *config.PuzzleConfig
}

// Controls maps input onto the camera rig and puzzle selection.
type Controls struct {
	rig          *camera.Rig
	puzzle       config.PuzzleConfig
	cursorLocked bool
}

// NewControls starts in the rig's current mode.
func NewControls(rig *camera.Rig, p config.PuzzleConfig) *Controls {
	c := &Controls{rig: rig, puzzle: p}
	c.cursorLocked = rig.Mode == camera.ModeFly
	return c
}

// CursorLocked reports whether fly-mode mouse look is active.
func (c *Controls) CursorLocked() bool {
	return c.cursorLocked
}

// Puzzle returns the current selection.
func (c *Controls) Puzzle() config.PuzzleConfig {
	return c.puzzle
}

// Update applies one frame of input. dt is in seconds.
func (c *Controls) Update(in inputState, dt float32) Result {
	var res Result

	if in.IsKeyPressed(keyToggleCamera) {
		mode := c.rig.Toggle()
		c.setCursor(&res, mode == camera.ModeFly)
	}

	if in.IsKeyPressed(keyEscape) {
		if c.rig.Mode == camera.ModeFly {
			c.setCursor(&res, !c.cursorLocked)
		} else {
			res.Quit = true
		}
	}

	if in.IsKeyPressed(keyWireframe) {
		res.ToggleWireframe = true
	}
	if in.IsKeyPressed(keyScreenshot) {
		res.Screenshot = true
	}

	c.selectPuzzle(in, &res)

	dx, dy := in.MouseDelta()
	switch c.rig.Mode {
	case camera.ModeFly:
		if !c.cursorLocked {
			break
		}
		c.rig.Fly.Look(dx, dy, dt)
		c.rig.Fly.Move(
			axis(in, sdl.SCANCODE_W, sdl.SCANCODE_S),
			axis(in, sdl.SCANCODE_D, sdl.SCANCODE_A),
			axis(in, sdl.SCANCODE_SPACE, sdl.SCANCODE_LSHIFT),
			dt,
		)
	case camera.ModeStatic:
		if tx, ty, ok := in.TouchDelta(); ok {
			c.rig.View.Drag(tx, ty, dt)
		} else if in.IsButtonHeld(sdl.BUTTON_LEFT) {
			c.rig.View.Drag(dx, dy, dt)
		}
		if s := in.Scroll(); s != 0 {
			c.rig.Static.Zoom(s)
		}
	}

	return res
}

func (c *Controls) setCursor(res *Result, locked bool) {
	if c.cursorLocked == locked {
		return
	}
	c.cursorLocked = locked
	res.CursorChanged = true
	res.CursorLocked = locked
}

func (c *Controls) selectPuzzle(in inputState, res *Result) {
	next := c.puzzle
	switch {
	case in.IsKeyPressed(keyRubik):
		next.Kind = puzzle.KindRubik
	case in.IsKeyPressed(keyMirror):
		next.Kind = puzzle.KindMirror
	case in.IsKeyPressed(keyPyraminx):
		next.Kind = puzzle.KindPyraminx
	}

	if next.Kind == puzzle.KindPyraminx && in.IsKeyPressed(keyShape) {
		if next.Shape == puzzle.ShapeTetrahedron {
			next.Shape = puzzle.ShapeBipyramid
		} else {
			next.Shape = puzzle.ShapeTetrahedron
		}
	}

	if next.Kind == puzzle.KindRubik {
		if in.IsKeyPressed(keyGrow) && next.Dimension < maxDimension {
			next.Dimension++
		}
		if in.IsKeyPressed(keyShrink) && next.Dimension > 1 {
			next.Dimension--
		}
	}
	if next.Dimension < 1 {
		next.Dimension = defaultDimension
	}

	if next.Kind != c.puzzle.Kind || next.Dimension != c.puzzle.Dimension || next.Shape != c.puzzle.Shape {
		c.puzzle = next
		res.Reload = &next
	}
}

// axis returns +1, -1 or 0 for a pair of opposing keys.
func axis(in inputState, pos, neg sdl.Scancode) float32 {
	var v float32
	if in.IsKeyHeld(pos) {
		v++
	}
	if in.IsKeyHeld(neg) {
		v--
	}
	return v
}
