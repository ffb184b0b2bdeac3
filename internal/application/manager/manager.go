// Package manager owns the ordered scene collection and hands scenes to
// the driver one at a time.
package manager

import (
	"iter"

	"github.com/younwookim/multiscene/internal/application/scene"
)

// Manager walks its scenes once, in insertion order.
//
// Populate it with Add before the driver starts pulling scenes. The walk
// is single pass: once Next has reported exhaustion it keeps doing so.
type Manager struct {
	scenes []scene.Scene
	cursor int
}

// New creates a manager holding scenes
func New(scenes ...scene.Scene) *Manager {
	m := &Manager{}
	m.Add(scenes...)
	return m
}

// Add appends scenes, preserving call order
func (m *Manager) Add(scenes ...scene.Scene) {
	m.scenes = append(m.scenes, scenes...)
}

// Next returns the next scene, or false when every scene has been handed out
func (m *Manager) Next() (scene.Scene, bool) {
	if m.cursor >= len(m.scenes) {
		return nil, false
	}
	s := m.scenes[m.cursor]
	m.cursor++
	return s, true
}

// All ranges over the scenes not yet handed out. It shares the cursor with
// Next, so ranging a second time yields nothing.
func (m *Manager) All() iter.Seq[scene.Scene] {
	return func(yield func(scene.Scene) bool) {
		for {
			s, ok := m.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Len returns the number of managed scenes
func (m *Manager) Len() int {
	return len(m.scenes)
}

// Remaining returns how many scenes Next has yet to hand out
func (m *Manager) Remaining() int {
	return len(m.scenes) - m.cursor
}
