package manager

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/multiscene/internal/application/scene"
)

var _ scene.Selector = (*Keyed)(nil)

func namedScenes(names ...string) []scene.Scene {
	scenes := make([]scene.Scene, len(names))
	for i, name := range names {
		scenes[i] = scene.NewAnyKeyExit(scene.Options{Name: name})
	}
	return scenes
}

func names(scenes []scene.Scene) []string {
	out := make([]string, len(scenes))
	for i, s := range scenes {
		out[i] = s.Name()
	}
	return out
}

func TestManager_YieldsInsertionOrderThenExhausts(t *testing.T) {
	m := New()
	m.Add(namedScenes("A", "B", "C")...)

	var got []scene.Scene
	for i := 0; i < 3; i++ {
		s, ok := m.Next()
		require.True(t, ok)
		got = append(got, s)
	}
	assert.Equal(t, []string{"A", "B", "C"}, names(got))

	s, ok := m.Next()
	assert.False(t, ok, "fourth pull signals exhaustion")
	assert.Nil(t, s)

	_, ok = m.Next()
	assert.False(t, ok, "exhaustion is sticky")
}

func TestManager_AnyLength(t *testing.T) {
	for n := 0; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			want := make([]string, n)
			for i := range want {
				want[i] = fmt.Sprintf("scene-%d", i)
			}
			m := New(namedScenes(want...)...)
			assert.Equal(t, n, m.Len())

			var got []string
			for s := range m.All() {
				got = append(got, s.Name())
			}
			assert.Equal(t, n, len(got))
			if n > 0 {
				assert.Equal(t, want, got)
			}
			assert.Equal(t, 0, m.Remaining())
		})
	}
}

func TestManager_AllDrainsOnce(t *testing.T) {
	m := New(namedScenes("A", "B")...)

	first := 0
	for range m.All() {
		first++
	}
	second := 0
	for range m.All() {
		second++
	}

	assert.Equal(t, 2, first)
	assert.Equal(t, 0, second)
}

func TestManager_AllStopsEarly(t *testing.T) {
	m := New(namedScenes("A", "B", "C")...)

	for s := range m.All() {
		assert.Equal(t, "A", s.Name())
		break
	}

	s, ok := m.Next()
	require.True(t, ok)
	assert.Equal(t, "B", s.Name(), "breaking out of a range leaves the rest")
}

func TestManager_AddPreservesCallOrder(t *testing.T) {
	m := New(namedScenes("A")...)
	m.Add(namedScenes("B", "C")...)
	m.Add(namedScenes("D")...)

	var got []string
	for s := range m.All() {
		got = append(got, s.Name())
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, got)
}

func TestKeyed_NextWithoutSelection(t *testing.T) {
	k := NewKeyed(namedScenes("title", "red")...)

	_, ok := k.Next()
	assert.False(t, ok)
}

func TestKeyed_SetNextArmsOnePull(t *testing.T) {
	k := NewKeyed(namedScenes("title", "red", "green", "blue")...)
	assert.Equal(t, 4, k.Len())

	require.NoError(t, k.SetNext(0))
	s, ok := k.Next()
	require.True(t, ok)
	assert.Equal(t, "title", s.Name())

	_, ok = k.Next()
	assert.False(t, ok, "a second pull without SetNext is exhaustion")

	require.NoError(t, k.SetNext(3))
	require.NoError(t, k.SetNext(2))
	s, ok = k.Next()
	require.True(t, ok)
	assert.Equal(t, "green", s.Name(), "the last selection wins")
}

func TestKeyed_Revisit(t *testing.T) {
	k := NewKeyed(namedScenes("title", "red")...)

	var visits []string
	for _, key := range []int{1, 0, 1} {
		require.NoError(t, k.SetNext(key))
		s, ok := k.Next()
		require.True(t, ok)
		visits = append(visits, s.Name())
	}
	assert.Equal(t, []string{"red", "title", "red"}, visits)
}

func TestKeyed_UnknownKey(t *testing.T) {
	k := NewKeyed(namedScenes("only")...)

	assert.ErrorIs(t, k.SetNext(1), ErrUnknownScene)
	assert.ErrorIs(t, k.SetNext(-1), ErrUnknownScene)

	_, ok := k.Next()
	assert.False(t, ok, "a failed SetNext arms nothing")
}
