// Package title provides the blinking title scene.
package title

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/multiscene/internal/application/scene"
	"github.com/younwookim/multiscene/internal/domain/event"
	"github.com/younwookim/multiscene/internal/domain/palette"
	"github.com/younwookim/multiscene/internal/infrastructure/fonts"
)

const (
	defaultSize = 72
	hintText    = "Press any key."
	hintSize    = 18
	hintMargin  = 50
	phaseStep   = 0.01
	exitKey     = ebiten.KeyX
)

var hintColor = color.RGBA{0, 0, 0, 255}

// Options configures a title scene
type Options struct {
	scene.Options

	Message string
	Color   color.RGBA
	Size    float64

	// Selector and Next take effect when the scene exits with the X key.
	Selector scene.Selector
	Next     int
}

// Title shows a message whose color swings between Color and its
// complement. Any key exits. The scene can be activated repeatedly.
type Title struct {
	scene.AnyKeyExit

	message    string
	color      color.RGBA
	complement color.RGBA
	size       float64

	selector scene.Selector
	next     int

	phase float64
	step  float64

	face     *text.GoTextFace
	hintFace *text.GoTextFace
}

// New creates a title scene
func New(opts Options) *Title {
	if opts.Size <= 0 {
		opts.Size = defaultSize
	}
	return &Title{
		AnyKeyExit: *scene.NewAnyKeyExit(opts.Options),
		message:    opts.Message,
		color:      opts.Color,
		complement: palette.Complement(opts.Color),
		size:       opts.Size,
		selector:   opts.Selector,
		next:       opts.Next,
		step:       phaseStep,
	}
}

// Start loads the fonts and begins the soundtrack
func (s *Title) Start() error {
	if s.face == nil {
		face, err := fonts.Face(s.size)
		if err != nil {
			return fmt.Errorf("scene %s: failed to load font: %w", s.Name(), err)
		}
		hint, err := fonts.Face(hintSize)
		if err != nil {
			return fmt.Errorf("scene %s: failed to load font: %w", s.Name(), err)
		}
		s.face, s.hintFace = face, hint
	}
	return s.AnyKeyExit.Start()
}

// ProcessEvent exits on X, picking the next scene when keyed
func (s *Title) ProcessEvent(e event.Event) {
	if !e.IsKeyDown(exitKey) {
		s.AnyKeyExit.ProcessEvent(e)
		return
	}
	if s.selector != nil {
		if err := s.selector.SetNext(s.next); err != nil {
			log.Printf("%s: %v", s.Name(), err)
		}
	}
	s.Invalidate()
}

// Update advances the blink phase, bouncing at both ends
func (s *Title) Update() {
	s.phase += s.step
	if s.phase > 1 || s.phase < 0 {
		s.step = -s.step
	}
}

// Phase returns the blend position in [0, 1]
func (s *Title) Phase() float64 {
	switch {
	case s.phase < 0:
		return 0
	case s.phase > 1:
		return 1
	default:
		return s.phase
	}
}

// MessageColor returns the color the message is drawn in this frame
func (s *Title) MessageColor() color.RGBA {
	return palette.Lerp(s.complement, s.color, s.Phase())
}

// Draw renders the background, the message and the hint
func (s *Title) Draw(screen *ebiten.Image) {
	s.AnyKeyExit.Draw(screen)
	if s.face == nil {
		return
	}

	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	op := &text.DrawOptions{}
	op.GeoM.Translate(w/2, h/2)
	op.ColorScale.ScaleWithColor(s.MessageColor())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s.message, s.face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(w/2, h-hintMargin)
	op.ColorScale.ScaleWithColor(hintColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, hintText, s.hintFace, op)
}

// End stops the soundtrack and makes the scene runnable again
func (s *Title) End() {
	s.AnyKeyExit.End()
	s.Revalidate()
}

// Message returns the title text
func (s *Title) Message() string {
	return s.message
}
