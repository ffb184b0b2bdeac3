package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/multiscene/internal/domain/event"
)

// ErrEmpty is returned when saving a recording with no frames
var ErrEmpty = errors.New("no frames to save")

// Recorder wraps a Source and records every batch it hands out
type Recorder struct {
	source    event.Source
	data      ReplayData
	recording bool
}

// NewRecorder creates a recorder over source. roster names the scene
// roster the session runs so a replay can be matched to its config.
func NewRecorder(source event.Source, roster string) *Recorder {
	return &Recorder{
		source: source,
		data: ReplayData{
			Version:   Version,
			Roster:    roster,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameEvents, 0, 64),
		},
		recording: true,
	}
}

// Poll implements event.Source. The batch is passed through unchanged.
func (r *Recorder) Poll() []event.Event {
	batch := r.source.Poll()
	if !r.recording {
		return batch
	}

	if len(batch) > 0 {
		r.data.Frames = append(r.data.Frames, FrameEvents{
			F:      r.data.Length,
			Events: append([]event.Event(nil), batch...),
		})
	}
	r.data.Length++
	return batch
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.data.Length == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording. Polling still passes batches through.
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return r.data.Length
}

// Data returns the recorded replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
