package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/multiscene/internal/domain/event"
)

// Replayer is an event.Source that plays back recorded frames. After the
// last recorded frame it yields a single Quit, then nothing.
type Replayer struct {
	data  ReplayData
	frame int
	next  int // index into data.Frames
	quit  bool
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Poll returns the events for the current frame and advances
func (r *Replayer) Poll() []event.Event {
	if r.frame >= r.data.Length {
		if r.quit {
			return nil
		}
		r.quit = true
		return []event.Event{event.Quit()}
	}

	f := r.frame
	r.frame++

	if r.next < len(r.data.Frames) && r.data.Frames[r.next].F == f {
		batch := r.data.Frames[r.next].Events
		r.next++
		return batch
	}
	return nil
}

// Done reports whether the final Quit has been handed out
func (r *Replayer) Done() bool {
	return r.quit
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return r.data.Length
}

// Roster returns the roster name the replay was recorded with
func (r *Replayer) Roster() string {
	return r.data.Roster
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.next = 0
	r.quit = false
}
