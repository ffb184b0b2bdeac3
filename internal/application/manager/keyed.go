package manager

import (
	"errors"
	"fmt"

	"github.com/younwookim/multiscene/internal/application/scene"
)

// ErrUnknownScene is returned by SetNext for a key with no scene
var ErrUnknownScene = errors.New("unknown scene")

// Keyed lets scenes choose their successor. Scenes are keyed by insertion
// index. Each SetNext arms exactly one Next; a Next without a preceding
// SetNext reports exhaustion, which ends the program.
type Keyed struct {
	scenes []scene.Scene
	next   scene.Scene
	armed  bool
}

// NewKeyed creates a keyed manager holding scenes
func NewKeyed(scenes ...scene.Scene) *Keyed {
	k := &Keyed{}
	k.Add(scenes...)
	return k
}

// Add appends scenes; the first added scene has key 0
func (k *Keyed) Add(scenes ...scene.Scene) {
	k.scenes = append(k.scenes, scenes...)
}

// SetNext implements scene.Selector
func (k *Keyed) SetNext(key int) error {
	if key < 0 || key >= len(k.scenes) {
		return fmt.Errorf("%w: key %d (have %d scenes)", ErrUnknownScene, key, len(k.scenes))
	}
	k.next = k.scenes[key]
	k.armed = true
	return nil
}

// Next returns the selected scene once per SetNext
func (k *Keyed) Next() (scene.Scene, bool) {
	if !k.armed || k.next == nil {
		return nil, false
	}
	k.armed = false
	return k.next, true
}

// Len returns the number of managed scenes
func (k *Keyed) Len() int {
	return len(k.scenes)
}
