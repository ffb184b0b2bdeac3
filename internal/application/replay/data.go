// Package replay records the events fed to the scene driver and plays
// them back frame by frame.
package replay

import "github.com/younwookim/multiscene/internal/domain/event"

// Version is written into every replay file
const Version = "1.0"

// FrameEvents records the events polled in a single frame.
// Frames with no events are not stored.
type FrameEvents struct {
	F      int           `json:"f"` // Frame number
	Events []event.Event `json:"events"`
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string        `json:"version"`
	Roster    string        `json:"roster"`
	StartTime string        `json:"startTime"`
	Length    int           `json:"length"` // Total frames polled
	Frames    []FrameEvents `json:"frames"`
}
