// Package music plays one looping soundtrack at a time, in the spirit of a
// single music channel: starting a track replaces whatever was playing.
package music

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const (
	DefaultVolume  = 0.2
	DefaultFadeIn  = 500 * time.Millisecond
	DefaultFadeOut = 500 * time.Millisecond
)

// ErrUnsupportedFormat is returned for files the mixer cannot decode
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Channel is the music collaborator scenes talk to
type Channel interface {
	// Play loads the file at path and loops it forever, fading in.
	Play(path string) error
	// FadeOut fades the current track out and stops it.
	FadeOut()
	// Busy reports whether a track is playing.
	Busy() bool
	// Update advances any fade in progress.
	Update(dt time.Duration)
}

// Options configures a Mixer
type Options struct {
	Volume  float64
	FadeIn  time.Duration
	FadeOut time.Duration
}

// DefaultOptions returns the volume and fades the demo ships with
func DefaultOptions() Options {
	return Options{Volume: DefaultVolume, FadeIn: DefaultFadeIn, FadeOut: DefaultFadeOut}
}

type stream interface {
	io.ReadSeeker
	Length() int64
}

// Mixer is a Channel backed by an ebiten audio context
type Mixer struct {
	ctx    *audio.Context
	player *audio.Player
	track  string
	fader  fader
}

// NewMixer creates a mixer on ctx. Only one audio context may exist per
// process, so the caller owns it.
func NewMixer(ctx *audio.Context, opts Options) *Mixer {
	return &Mixer{
		ctx:   ctx,
		fader: newFader(opts),
	}
}

// Play implements Channel
func (m *Mixer) Play(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	s, err := m.decode(path, data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	p, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		return fmt.Errorf("failed to create player for %s: %w", path, err)
	}

	m.stop()
	m.player = p
	m.track = path
	p.SetVolume(m.fader.fadeIn())
	p.Play()
	return nil
}

// FadeOut implements Channel
func (m *Mixer) FadeOut() {
	if m.player == nil {
		return
	}
	if m.fader.fadeOut() <= 0 {
		m.stop()
	}
}

// Busy implements Channel
func (m *Mixer) Busy() bool {
	return m.player != nil && m.player.IsPlaying()
}

// Update implements Channel
func (m *Mixer) Update(dt time.Duration) {
	if m.player == nil {
		return
	}
	level, silent := m.fader.step(dt)
	if silent {
		m.stop()
		return
	}
	m.player.SetVolume(level)
}

// Track returns the path of the track that is loaded, if any
func (m *Mixer) Track() string {
	return m.track
}

func (m *Mixer) stop() {
	if m.player == nil {
		return
	}
	m.player.Pause()
	_ = m.player.Close()
	m.player = nil
	m.track = ""
	m.fader.reset()
}

func (m *Mixer) decode(path string, data []byte) (stream, error) {
	sr := m.ctx.SampleRate()
	r := bytes.NewReader(data)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sr, r)
		if err != nil {
			return nil, err
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sr, r)
		if err != nil {
			return nil, err
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sr, r)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}
