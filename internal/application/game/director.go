package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/multiscene/internal/application/scene"
	"github.com/younwookim/multiscene/internal/domain/event"
)

var (
	// ErrFinished means the scene sequence ran out. It is the normal way
	// for the program to end.
	ErrFinished = errors.New("no more scenes")

	// ErrQuit means a quit event was received
	ErrQuit = errors.New("quit requested")
)

// Sequence hands out scenes one at a time
type Sequence interface {
	Next() (scene.Scene, bool)
}

// Ticker is advanced once per frame alongside the active scene
type Ticker interface {
	Update(dt time.Duration)
}

// Director runs scenes pulled from a Sequence: it starts each one, feeds
// it frames until it becomes invalid, ends it and moves to the next.
type Director struct {
	seq     Sequence
	current scene.Scene
	tickers []Ticker

	activations int
	frames      int
}

// NewDirector creates a director. Tickers are advanced every frame.
func NewDirector(seq Sequence, tickers ...Ticker) *Director {
	return &Director{seq: seq, tickers: tickers}
}

// Begin activates the first scene if none is active yet
func (d *Director) Begin() error {
	if d.current != nil {
		return nil
	}
	return d.advance()
}

// Step runs one frame of the active scene: delta time, the pending events
// in order, then Update. When the scene becomes invalid it is ended and
// the next one started, so the following Draw shows the new scene.
//
// ErrFinished is returned once the sequence is exhausted and ErrQuit after
// a quit event; both leave no scene active.
func (d *Director) Step(events []event.Event, dt time.Duration) error {
	if err := d.Begin(); err != nil {
		return err
	}

	cur := d.current
	d.frames++
	for _, t := range d.tickers {
		t.Update(dt)
	}

	cur.SetDeltaTime(dt)
	quit := false
	for _, e := range events {
		cur.ProcessEvent(e)
		if e.IsQuit() {
			quit = true
		}
	}
	cur.Update()

	if quit {
		d.Close()
		return ErrQuit
	}
	if cur.IsValid() {
		return nil
	}

	d.end()
	return d.advance()
}

// Draw renders the active scene, if any
func (d *Director) Draw(screen *ebiten.Image) {
	if d.current != nil {
		d.current.Draw(screen)
	}
}

// Close ends the active scene, if any
func (d *Director) Close() {
	if d.current != nil {
		d.end()
	}
}

// Current returns the active scene, or nil
func (d *Director) Current() scene.Scene {
	return d.current
}

// FrameRate returns the frame rate of the active scene
func (d *Director) FrameRate() int {
	if d.current == nil {
		return scene.DefaultFrameRate
	}
	return d.current.FrameRate()
}

// Activations returns how many scenes have been started
func (d *Director) Activations() int {
	return d.activations
}

// Frames returns how many frames have been stepped
func (d *Director) Frames() int {
	return d.frames
}

func (d *Director) advance() error {
	next, ok := d.seq.Next()
	if !ok {
		log.Printf("scene sequence finished after %d activations", d.activations)
		return ErrFinished
	}

	if err := next.Start(); err != nil {
		log.Printf("failed to start scene %s: %v", next.Name(), err)
		return fmt.Errorf("start scene: %w", err)
	}

	d.current = next
	d.activations++
	log.Printf("scene %s started (%d fps)", next.Name(), next.FrameRate())
	return nil
}

func (d *Director) end() {
	cur := d.current
	d.current = nil
	cur.End()
	log.Printf("scene %s ended", cur.Name())
}
