package event

// Source produces the batch of events pending for the current frame.
// Events are returned in the order they were produced.
type Source interface {
	Poll() []Event
}

// Script is a Source that replays preset batches, one per frame.
// Once the batches run out it yields nothing.
type Script struct {
	frames [][]Event
	next   int
}

// NewScript creates a Script from per-frame batches
func NewScript(frames ...[]Event) *Script {
	return &Script{frames: frames}
}

// Poll returns the next batch
func (s *Script) Poll() []Event {
	if s.next >= len(s.frames) {
		return nil
	}
	batch := s.frames[s.next]
	s.next++
	return batch
}

// Remaining returns how many batches have not been polled yet
func (s *Script) Remaining() int {
	return len(s.frames) - s.next
}
