package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadDisplay(t *testing.T) {
	loader := NewLoader("../../../cmd/multiscene/configs")

	cfg, err := loader.LoadDisplay()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.ScreenWidth)
	assert.Equal(t, 800, cfg.ScreenHeight)
	assert.Equal(t, 1, cfg.Scale)
	assert.Equal(t, "Multi Scene Demo", cfg.Title)
	assert.False(t, cfg.ShowFPS)
}

func TestLoader_LoadAudio(t *testing.T) {
	loader := NewLoader("../../../cmd/multiscene/configs")

	cfg, err := loader.LoadAudio()
	require.NoError(t, err)

	assert.Equal(t, 44100, cfg.SampleRate)
	assert.Equal(t, 0.2, cfg.Volume)
	assert.Equal(t, 500*time.Millisecond, cfg.FadeIn())
	assert.Equal(t, 500*time.Millisecond, cfg.FadeOut())
}

func TestLoader_LoadRoster(t *testing.T) {
	loader := NewLoader("../../../cmd/multiscene/configs")

	cfg, err := loader.LoadRoster()
	require.NoError(t, err)

	assert.Equal(t, ModeLinear, cfg.Mode)
	assert.False(t, cfg.Keyed())
	require.Len(t, cfg.Scenes, 4)

	title := cfg.Scenes[0]
	assert.Equal(t, KindTitle, title.Kind)
	assert.Equal(t, "Multi Scene Demo", title.Message)
	assert.Equal(t, "orange", title.Color)
	assert.Equal(t, 72.0, title.Size)

	names := make([]string, 0, len(cfg.Scenes))
	for _, s := range cfg.Scenes[1:] {
		assert.Equal(t, KindCircle, s.Kind)
		names = append(names, s.Color)
	}
	assert.Equal(t, []string{"red", "green", "blue"}, names)

	assert.Equal(t, "8bp051-06-random-happy_ending_after_all.mp3", cfg.Assets["soundtrack"])
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/multiscene/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Display)
	assert.NotNil(t, cfg.Audio)
	assert.NotNil(t, cfg.Roster)
}

func TestLoader_Defaults(t *testing.T) {
	fsys := fstest.MapFS{
		"display.json": {Data: []byte(`{"screenWidth": 320, "screenHeight": 240}`)},
		"audio.json":   {Data: []byte(`{}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	display, err := loader.LoadDisplay()
	require.NoError(t, err)
	assert.Equal(t, 1, display.Scale)

	audio, err := loader.LoadAudio()
	require.NoError(t, err)
	assert.Equal(t, 44100, audio.SampleRate)
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"display.json": {Data: []byte(`{"screenWidth": 0}`)},
		"audio.json":   {Data: []byte(`not json`)},
		"scenes.yaml":  {Data: []byte("scenes:\n  - kind: movie\n    color: red\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadDisplay()
	assert.Error(t, err)

	_, err = loader.LoadAudio()
	assert.ErrorContains(t, err, "audio.json")

	_, err = loader.LoadRoster()
	assert.ErrorContains(t, err, `unknown kind "movie"`)

	_, err = NewFSLoader(fstest.MapFS{}, "empty").LoadAll()
	assert.ErrorContains(t, err, "display.json")
}
