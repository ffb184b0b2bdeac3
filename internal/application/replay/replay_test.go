package replay

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/multiscene/internal/domain/event"
)

var (
	_ event.Source = (*Recorder)(nil)
	_ event.Source = (*Replayer)(nil)
)

func testBatches() [][]event.Event {
	return [][]event.Event{
		nil,
		{event.KeyDown(ebiten.KeyX)},
		{event.KeyUp(ebiten.KeyX)},
		nil,
		{event.KeyDown(ebiten.KeyA), event.KeyDown(ebiten.KeyEscape)},
	}
}

func record(t *testing.T, batches [][]event.Event) *Recorder {
	t.Helper()
	rec := NewRecorder(event.NewScript(batches...), "demo")
	for range batches {
		rec.Poll()
	}
	return rec
}

func TestRecorder_PassesBatchesThrough(t *testing.T) {
	batches := testBatches()
	rec := NewRecorder(event.NewScript(batches...), "demo")

	for i, want := range batches {
		assert.Equal(t, want, rec.Poll(), "frame %d", i)
	}
	assert.Equal(t, len(batches), rec.FrameCount())
}

func TestRecorder_StoresOnlyFramesWithEvents(t *testing.T) {
	rec := record(t, testBatches())
	data := rec.Data()

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "demo", data.Roster)
	assert.Equal(t, 5, data.Length)
	require.Len(t, data.Frames, 3)
	assert.Equal(t, []int{1, 2, 4}, []int{data.Frames[0].F, data.Frames[1].F, data.Frames[2].F})
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder(event.NewScript(
		[]event.Event{event.KeyDown(ebiten.KeyA)},
		[]event.Event{event.KeyDown(ebiten.KeyB)},
	), "demo")

	rec.Poll()
	rec.Stop()
	assert.False(t, rec.IsRecording())

	batch := rec.Poll()
	assert.Equal(t, []event.Event{event.KeyDown(ebiten.KeyB)}, batch, "still passes through")
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(event.NewScript(), "demo")

	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestReplay_RoundTrip(t *testing.T) {
	batches := testBatches()
	rec := record(t, batches)

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data().Frames, data.Frames)

	replayer := NewReplayer(*data)
	assert.Equal(t, 5, replayer.TotalFrames())
	assert.Equal(t, "demo", replayer.Roster())

	for i, want := range batches {
		got := replayer.Poll()
		if len(want) == 0 {
			assert.Empty(t, got, "frame %d", i)
			continue
		}
		assert.Equal(t, want, got, "frame %d", i)
	}
}

func TestReplayer_EndsWithSingleQuit(t *testing.T) {
	replayer := NewReplayer(record(t, testBatches()).Data())
	for range testBatches() {
		replayer.Poll()
	}
	assert.False(t, replayer.Done())

	assert.Equal(t, []event.Event{event.Quit()}, replayer.Poll())
	assert.True(t, replayer.Done())
	assert.Nil(t, replayer.Poll())
	assert.Nil(t, replayer.Poll())
}

func TestReplayer_EmptyReplayQuitsImmediately(t *testing.T) {
	replayer := NewReplayer(ReplayData{Version: Version})

	assert.Equal(t, []event.Event{event.Quit()}, replayer.Poll())
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(record(t, testBatches()).Data())

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.Poll()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.Poll()
	replayer.Poll()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(record(t, testBatches()).Data())

	// Advance past the end
	for i := 0; i < 7; i++ {
		replayer.Poll()
	}
	assert.True(t, replayer.Done())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.False(t, replayer.Done())

	assert.Empty(t, replayer.Poll())
	assert.Equal(t, []event.Event{event.KeyDown(ebiten.KeyX)}, replayer.Poll())
}

func TestLoadReplay_MissingFile(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
