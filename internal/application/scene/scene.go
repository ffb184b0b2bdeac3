// Package scene defines the Scene interface for game screens.
//
// Each mode of the program (title, circle screens, etc.) implements the
// Scene interface. The driver starts a scene, feeds it events and frames
// until it reports itself invalid, then ends it and moves on.
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/multiscene/internal/domain/event"
)

// DefaultFrameRate is the frame rate a scene asks for unless configured
const DefaultFrameRate = 60

// Scene represents one mode of the program.
//
// The driver calls Start once on activation, then per frame: SetDeltaTime,
// ProcessEvent for each pending event, Update, Draw. Once IsValid reports
// false it calls End.
type Scene interface {
	// Name identifies the scene in logs.
	Name() string

	// Start is called when the scene becomes active.
	// A returned error is fatal for the program.
	Start() error

	// ProcessEvent handles one input event.
	ProcessEvent(e event.Event)

	// Update advances time-based state. Called once per frame before Draw.
	Update()

	// Draw renders the current frame onto screen.
	Draw(screen *ebiten.Image)

	// IsValid reports whether the scene should keep running.
	IsValid() bool

	// End is called when the scene is deactivated.
	End()

	// FrameRate is the update/draw frequency the scene wants.
	FrameRate() int

	// SetDeltaTime records the time elapsed since the previous frame.
	SetDeltaTime(dt time.Duration)
}
