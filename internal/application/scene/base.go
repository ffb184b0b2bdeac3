package scene

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/multiscene/internal/application/state"
	"github.com/younwookim/multiscene/internal/domain/event"
	"github.com/younwookim/multiscene/internal/infrastructure/music"
)

// Options configures a Base
type Options struct {
	Name       string
	Background color.Color
	FrameRate  int
	// Soundtrack is the path of the track to loop while the scene is
	// active. Empty means silence.
	Soundtrack string
	Music      music.Channel
}

// Base provides the default behavior of a Scene. Variants embed it and
// override what they need, calling back into Base for the rest.
type Base struct {
	name       string
	background color.Color
	frameRate  int
	deltaTime  time.Duration
	soundtrack string
	music      music.Channel

	valid  bool
	active bool
}

// NewBase creates a valid, inactive scene base
func NewBase(opts Options) Base {
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultFrameRate
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	return Base{
		name:       opts.Name,
		background: opts.Background,
		frameRate:  opts.FrameRate,
		soundtrack: opts.Soundtrack,
		music:      opts.Music,
		valid:      true,
	}
}

// Name implements Scene
func (b *Base) Name() string {
	return b.name
}

// Start begins the soundtrack, if any
func (b *Base) Start() error {
	b.active = true
	if b.soundtrack == "" || b.music == nil {
		return nil
	}
	if err := b.music.Play(b.soundtrack); err != nil {
		return fmt.Errorf("scene %s: failed to start soundtrack: %w", b.name, err)
	}
	return nil
}

// ProcessEvent invalidates the scene on quit or Escape
func (b *Base) ProcessEvent(e event.Event) {
	switch {
	case e.IsQuit():
		log.Printf("%s: good bye", b.name)
		b.Invalidate()
	case e.IsKeyDown(ebiten.KeyEscape):
		log.Printf("%s: bye bye", b.name)
		b.Invalidate()
	}
}

// Update does nothing by default
func (b *Base) Update() {}

// Draw fills the screen with the background color
func (b *Base) Draw(screen *ebiten.Image) {
	screen.Fill(b.background)
}

// IsValid implements Scene
func (b *Base) IsValid() bool {
	return b.valid
}

// Invalidate marks the scene as ready to exit
func (b *Base) Invalidate() {
	b.valid = false
}

// End fades out the soundtrack if it is still playing
func (b *Base) End() {
	b.active = false
	if b.soundtrack != "" && b.music != nil && b.music.Busy() {
		b.music.FadeOut()
	}
}

// Revalidate makes the scene runnable again. Reentrant scenes call it
// from End so the next activation starts valid.
func (b *Base) Revalidate() {
	b.valid = true
}

// FrameRate implements Scene
func (b *Base) FrameRate() int {
	return b.frameRate
}

// SetDeltaTime implements Scene
func (b *Base) SetDeltaTime(dt time.Duration) {
	b.deltaTime = dt
}

// DeltaTime returns the time elapsed since the previous frame
func (b *Base) DeltaTime() time.Duration {
	return b.deltaTime
}

// State reports where the scene is in its lifecycle
func (b *Base) State() state.Lifecycle {
	return state.Of(b.active, b.valid)
}

// Soundtrack returns the path of the scene's track
func (b *Base) Soundtrack() string {
	return b.soundtrack
}
