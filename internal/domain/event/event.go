// Package event defines the discrete input events delivered to scenes.
package event

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kind tags what happened
type Kind int

const (
	KindQuit Kind = iota
	KindKeyDown
	KindKeyUp
)

var kindNames = map[Kind]string{
	KindQuit:    "quit",
	KindKeyDown: "keydown",
	KindKeyUp:   "keyup",
}

// String returns the string representation of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so replay files stay readable
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown event kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", string(text))
}

// Event is a single input event. Key is only meaningful for key kinds.
type Event struct {
	Kind Kind       `json:"kind"`
	Key  ebiten.Key `json:"key,omitempty"`
}

// Quit creates a quit event
func Quit() Event {
	return Event{Kind: KindQuit}
}

// KeyDown creates a key press event
func KeyDown(key ebiten.Key) Event {
	return Event{Kind: KindKeyDown, Key: key}
}

// KeyUp creates a key release event
func KeyUp(key ebiten.Key) Event {
	return Event{Kind: KindKeyUp, Key: key}
}

// IsQuit reports whether the event asks the program to quit
func (e Event) IsQuit() bool {
	return e.Kind == KindQuit
}

// IsKeyDown reports whether the event is a press of the given key
func (e Event) IsKeyDown(key ebiten.Key) bool {
	return e.Kind == KindKeyDown && e.Key == key
}

func (e Event) String() string {
	if e.Kind == KindQuit {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
}
