// Package system holds the per-frame systems that sit between ebiten and
// the scene driver.
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/multiscene/internal/domain/event"
)

// InputSystem turns ebiten's keyboard and window state into events
type InputSystem struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	closing  bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{
		pressed:  make([]ebiten.Key, 0, 8),
		released: make([]ebiten.Key, 0, 8),
	}
}

// InputState holds the key edges and window state of one frame
type InputState struct {
	Pressed  []ebiten.Key
	Released []ebiten.Key
	// Closing is set while the window close button has been pressed.
	// Requires ebiten.SetWindowClosingHandled(true).
	Closing bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	return InputState{
		Pressed:  s.pressed,
		Released: s.released,
		Closing:  ebiten.IsWindowBeingClosed(),
	}
}

// Events converts one frame of input into events: key downs, then key
// ups, then a single Quit for a close request. The close request is
// reported once even if the window keeps asking.
func (s *InputSystem) Events(in InputState) []event.Event {
	var events []event.Event
	for _, k := range in.Pressed {
		events = append(events, event.KeyDown(k))
	}
	for _, k := range in.Released {
		events = append(events, event.KeyUp(k))
	}

	if in.Closing && !s.closing {
		events = append(events, event.Quit())
	}
	s.closing = in.Closing

	return events
}

// Poll implements event.Source
func (s *InputSystem) Poll() []event.Event {
	return s.Events(s.GetInput())
}
