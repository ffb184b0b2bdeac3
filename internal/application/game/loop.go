package game

import (
	"context"
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/multiscene/internal/domain/event"
)

// Pacer blocks until the next frame at fps is due and returns the time
// elapsed since the previous frame
type Pacer interface {
	Tick(ctx context.Context, fps int) (time.Duration, error)
}

// Loop drives a Director without ebiten's scheduler: poll events, step,
// draw, wait for the next frame. It is used for headless replays.
type Loop struct {
	director *Director
	source   event.Source
	pacer    Pacer

	// Screen, when set, receives a Draw every frame
	Screen *ebiten.Image
}

// NewLoop creates a loop
func NewLoop(director *Director, source event.Source, pacer Pacer) *Loop {
	return &Loop{director: director, source: source, pacer: pacer}
}

// Run drives scenes until the sequence is exhausted (nil), a quit event
// arrives (nil) or ctx is done (ctx.Err()). The active scene is ended on
// every exit path.
func (l *Loop) Run(ctx context.Context) error {
	defer l.director.Close()

	if err := l.director.Begin(); err != nil {
		return normalEnd(err)
	}

	for {
		dt, err := l.pacer.Tick(ctx, l.director.FrameRate())
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return err
		}

		if err := l.director.Step(l.source.Poll(), dt); err != nil {
			return normalEnd(err)
		}

		if l.Screen != nil {
			l.director.Draw(l.Screen)
		}
	}
}

func normalEnd(err error) error {
	if errors.Is(err, ErrFinished) || errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
