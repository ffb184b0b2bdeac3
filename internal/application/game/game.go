// Package game drives scenes: the Director runs the scene lifecycle, Game
// adapts it to ebiten's loop and Loop runs it without a window.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/multiscene/internal/domain/event"
)

// Game implements ebiten.Game on top of a Director
type Game struct {
	director *Director
	source   event.Source
	screenW  int
	screenH  int
	showFPS  bool

	last time.Time
	now  func() time.Time
	tps  func(int)
}

// New creates a Game. The first scene is started on the first Update.
func New(director *Director, source event.Source, screenW, screenH int) *Game {
	return &Game{
		director: director,
		source:   source,
		screenW:  screenW,
		screenH:  screenH,
		now:      time.Now,
		tps:      ebiten.SetTPS,
	}
}

// SetShowFPS toggles the frame rate overlay
func (g *Game) SetShowFPS(show bool) {
	g.showFPS = show
}

// Update steps the active scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if err := g.director.Begin(); err != nil {
		return g.terminal(err)
	}

	now := g.now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	if err := g.director.Step(g.source.Poll(), dt); err != nil {
		return g.terminal(err)
	}

	g.tps(g.director.FrameRate())
	return nil
}

// Draw renders the active scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.director.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Director returns the director the game drives
func (g *Game) Director() *Director {
	return g.director
}

// terminal maps the director's normal endings to ebiten.Termination
func (g *Game) terminal(err error) error {
	if errors.Is(err, ErrFinished) || errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	return err
}
