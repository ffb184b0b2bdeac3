package scene

import "github.com/younwookim/multiscene/internal/domain/event"

// AnyKeyExit is a scene that becomes invalid on any key press
type AnyKeyExit struct {
	Base
}

// NewAnyKeyExit creates an AnyKeyExit scene
func NewAnyKeyExit(opts Options) *AnyKeyExit {
	return &AnyKeyExit{Base: NewBase(opts)}
}

// ProcessEvent applies the base rules, then exits on any key press
func (s *AnyKeyExit) ProcessEvent(e event.Event) {
	s.Base.ProcessEvent(e)
	if e.Kind == event.KindKeyDown {
		s.Invalidate()
	}
}
