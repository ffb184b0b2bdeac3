package music

import "time"

// Silent is a Channel that only remembers what it was asked to do.
// It backs the -mute flag and stands in for the mixer in tests.
type Silent struct {
	Played  []string
	Fades   int
	playing bool
	// Err, when set, is returned from Play.
	Err error
}

// Play implements Channel
func (s *Silent) Play(path string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Played = append(s.Played, path)
	s.playing = true
	return nil
}

// FadeOut implements Channel
func (s *Silent) FadeOut() {
	s.Fades++
	s.playing = false
}

// Busy implements Channel
func (s *Silent) Busy() bool {
	return s.playing
}

// Update implements Channel
func (s *Silent) Update(time.Duration) {}
