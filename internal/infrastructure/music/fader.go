package music

import "time"

type fadeDir int

const (
	fadeNone fadeDir = iota
	fadeUp
	fadeDown
)

// fader tracks the volume ramp of the current track
type fader struct {
	target  float64
	in, out time.Duration

	level float64
	dir   fadeDir
}

func newFader(opts Options) fader {
	if opts.Volume <= 0 || opts.Volume > 1 {
		opts.Volume = DefaultVolume
	}
	return fader{target: opts.Volume, in: opts.FadeIn, out: opts.FadeOut}
}

// fadeIn starts a ramp up and returns the starting level
func (f *fader) fadeIn() float64 {
	if f.in <= 0 {
		f.level = f.target
		f.dir = fadeNone
		return f.level
	}
	f.level = 0
	f.dir = fadeUp
	return f.level
}

// fadeOut starts a ramp down and returns its duration
func (f *fader) fadeOut() time.Duration {
	if f.out > 0 {
		f.dir = fadeDown
	}
	return f.out
}

// step advances the ramp by dt. silent is true once a fade-out has finished.
func (f *fader) step(dt time.Duration) (level float64, silent bool) {
	switch f.dir {
	case fadeUp:
		f.level += f.target * float64(dt) / float64(f.in)
		if f.level >= f.target {
			f.level = f.target
			f.dir = fadeNone
		}
	case fadeDown:
		f.level -= f.target * float64(dt) / float64(f.out)
		if f.level <= 0 {
			f.level = 0
			f.dir = fadeNone
			return 0, true
		}
	}
	return f.level, false
}

func (f *fader) reset() {
	f.level = 0
	f.dir = fadeNone
}
