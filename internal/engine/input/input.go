// Package input turns SDL2 events into viewer events and tracks which keys
// and buttons are held.
package input

import (
	"slices"

	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
	EventTouchDown
	EventTouchUp
	EventTouchMove
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	// DeltaX and DeltaY are relative motion for mouse moves, scroll
	// amounts for wheel events and window-normalised motion for touches.
	DeltaX float32
	DeltaY float32
	Button uint8
	Finger sdl.FingerID
}

// Input handles all input processing.
type Input struct {
	events  []Event
	keys    map[sdl.Scancode]bool
	buttons map[uint8]bool

	// fingers in touch-down order.
	fingers []sdl.FingerID
	width   int
	height  int
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		keys:    make(map[sdl.Scancode]bool),
		buttons: make(map[uint8]bool),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := translate(event); ok {
			i.push(e)
			if e.Type == EventQuit {
				quit = true
			}
		}
	}
	return quit
}

// push records an event and updates held state.
func (i *Input) push(e Event) {
	i.events = append(i.events, e)

	switch e.Type {
	case EventKeyDown:
		i.keys[e.Key] = true
	case EventKeyUp:
		delete(i.keys, e.Key)
	case EventMouseDown:
		i.buttons[e.Button] = true
	case EventMouseUp:
		delete(i.buttons, e.Button)
	case EventWindowResize:
		i.SetSize(e.Width, e.Height)
	case EventTouchDown:
		if !slices.Contains(i.fingers, e.Finger) {
			i.fingers = append(i.fingers, e.Finger)
		}
	case EventTouchUp:
		i.fingers = slices.DeleteFunc(i.fingers, func(f sdl.FingerID) bool { return f == e.Finger })
	}
}

// SetSize sets the window size touch motion is scaled by.
func (i *Input) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// translate converts one SDL event. Events the viewer ignores report false.
func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		ev := Event{Key: e.Keysym.Scancode, Repeat: e.Repeat != 0}
		switch e.Type {
		case sdl.KEYDOWN:
			ev.Type = EventKeyDown
			return ev, true
		case sdl.KEYUP:
			ev.Type = EventKeyUp
			return ev, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			DeltaX: float32(e.XRel),
			DeltaY: float32(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		ev := Event{
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
		}
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			ev.Type = EventMouseDown
			return ev, true
		case sdl.MOUSEBUTTONUP:
			ev.Type = EventMouseUp
			return ev, true
		}

	case *sdl.TouchFingerEvent:
		ev := Event{
			Finger: e.FingerID,
			DeltaX: e.DX,
			DeltaY: e.DY,
		}
		switch e.Type {
		case sdl.FINGERDOWN:
			ev.Type = EventTouchDown
			return ev, true
		case sdl.FINGERUP:
			ev.Type = EventTouchUp
			return ev, true
		case sdl.FINGERMOTION:
			ev.Type = EventTouchMove
			return ev, true
		}

	case *sdl.MouseWheelEvent:
		return Event{
			Type:   EventMouseWheel,
			DeltaX: float32(e.X),
			DeltaY: float32(e.Y),
		}, true
	}

	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame, ignoring
// auto-repeat.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode && !e.Repeat {
			return true
		}
	}
	return false
}

// IsKeyHeld reports whether a key is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.keys[scancode]
}

// IsButtonHeld reports whether a mouse button is currently down.
func (i *Input) IsButtonHeld(button uint8) bool {
	return i.buttons[button]
}

// MouseDelta sums the relative motion of this frame.
func (i *Input) MouseDelta() (dx, dy float32) {
	for _, e := range i.events {
		if e.Type == EventMouseMove {
			dx += e.DeltaX
			dy += e.DeltaY
		}
	}
	return dx, dy
}

// TouchDelta sums this frame's motion of the first finger still on the
// screen, in pixels. ok is false when nothing touches the screen.
func (i *Input) TouchDelta() (dx, dy float32, ok bool) {
	if len(i.fingers) == 0 {
		return 0, 0, false
	}
	first := i.fingers[0]
	for _, e := range i.events {
		if e.Type == EventTouchMove && e.Finger == first {
			dx += e.DeltaX * float32(i.width)
			dy += e.DeltaY * float32(i.height)
		}
	}
	return dx, dy, true
}

// Scroll sums the vertical wheel motion of this frame.
func (i *Input) Scroll() float32 {
	var y float32
	for _, e := range i.events {
		if e.Type == EventMouseWheel {
			y += e.DeltaY
		}
	}
	return y
}
