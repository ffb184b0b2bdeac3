package circle

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/multiscene/internal/application/scene"
	"github.com/younwookim/multiscene/internal/domain/event"
	"github.com/younwookim/multiscene/internal/infrastructure/music"
)

var _ scene.Scene = (*Circle)(nil)

var red = color.RGBA{255, 0, 0, 255}

type fakeSelector struct {
	keys []int
	err  error
}

func (f *fakeSelector) SetNext(key int) error {
	f.keys = append(f.keys, key)
	return f.err
}

func TestNew(t *testing.T) {
	c := New(Options{Options: scene.Options{Name: "red"}, Color: red})

	assert.Equal(t, "red", c.Name())
	assert.Equal(t, red, c.Color())
	assert.Equal(t, float64(DefaultRadius), c.Radius())
	assert.True(t, c.IsValid())
}

func TestCircle_Rect(t *testing.T) {
	c := New(Options{Color: red})

	assert.Equal(t, image.Rect(200, 200, 600, 600), c.Rect(800, 800))

	small := New(Options{Color: red, Radius: 10})
	assert.Equal(t, image.Rect(150, 110, 170, 130), small.Rect(320, 240))
}

func TestCircle_ProcessEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     event.Event
		wantValid bool
	}{
		{"quit", event.Quit(), false},
		{"escape", event.KeyDown(ebiten.KeyEscape), false},
		{"x", event.KeyDown(ebiten.KeyX), false},
		{"any key", event.KeyDown(ebiten.Key1), false},
		{"key release", event.KeyUp(ebiten.Key1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Options{Color: red})
			require.NoError(t, c.Start())

			c.ProcessEvent(tt.event)
			assert.Equal(t, tt.wantValid, c.IsValid())
		})
	}
}

func TestCircle_XSelectsNextScene(t *testing.T) {
	sel := &fakeSelector{}
	c := New(Options{Color: red, Selector: sel, Next: 3})
	require.NoError(t, c.Start())

	c.ProcessEvent(event.Quit())
	assert.Empty(t, sel.keys)

	c.ProcessEvent(event.KeyDown(ebiten.KeyX))
	assert.Equal(t, []int{3}, sel.keys)
}

func TestCircle_SelectorErrorStillExits(t *testing.T) {
	c := New(Options{Color: red, Selector: &fakeSelector{err: errors.New("bad key")}})
	require.NoError(t, c.Start())

	c.ProcessEvent(event.KeyDown(ebiten.KeyX))
	assert.False(t, c.IsValid())
}

func TestCircle_Reentrant(t *testing.T) {
	ch := &music.Silent{}
	c := New(Options{Options: scene.Options{Name: "blue", Soundtrack: "song.mp3", Music: ch}, Color: red})

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Start())
		assert.True(t, c.IsValid(), "activation %d starts valid", i)
		c.ProcessEvent(event.KeyDown(ebiten.KeyX))
		assert.False(t, c.IsValid())
		c.End()
	}

	assert.Len(t, ch.Played, 3)
	assert.Equal(t, 3, ch.Fades)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name  string
		build func(scene.Options, scene.Selector) *Circle
		color color.RGBA
		next  int
	}{
		{"red-circle", Red, color.RGBA{255, 0, 0, 255}, 2},
		{"green-circle", Green, color.RGBA{0, 128, 0, 255}, 3},
		{"blue-circle", Blue, color.RGBA{0, 0, 255, 255}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := &fakeSelector{}
			c := tt.build(scene.Options{}, sel)

			assert.Equal(t, tt.name, c.Name())
			assert.Equal(t, tt.color, c.Color())

			c.ProcessEvent(event.KeyDown(ebiten.KeyX))
			assert.Equal(t, []int{tt.next}, sel.keys)
			assert.False(t, c.IsValid())
		})
	}
}
