// Package clock paces frame delivery for loops that are not driven by
// ebiten's own tick scheduler.
package clock

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Clock blocks the caller until the next frame is due
type Clock struct {
	limiter *rate.Limiter
	fps     int
	last    time.Time
}

// New creates a clock. The first Tick returns immediately.
func New() *Clock {
	return &Clock{limiter: rate.NewLimiter(rate.Inf, 1)}
}

// Tick waits for the next frame at fps and returns the time elapsed since
// the previous Tick (zero on the first call). fps <= 0 disables throttling.
func (c *Clock) Tick(ctx context.Context, fps int) (time.Duration, error) {
	if fps != c.fps {
		c.fps = fps
		if fps > 0 {
			c.limiter.SetLimit(rate.Limit(fps))
		} else {
			c.limiter.SetLimit(rate.Inf)
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	now := time.Now()
	var dt time.Duration
	if !c.last.IsZero() {
		dt = now.Sub(c.last)
	}
	c.last = now
	return dt, nil
}

// FPS returns the rate the clock is currently pacing at
func (c *Clock) FPS() int {
	return c.fps
}
