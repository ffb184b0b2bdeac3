package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Audio   *AudioConfig
	Roster  *RosterConfig
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.readJSON("display.json", &cfg); err != nil {
		return nil, err
	}

	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d in display.json", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}

	return &cfg, nil
}

// LoadAudio loads audio.json
func (l *Loader) LoadAudio() (*AudioConfig, error) {
	var cfg AudioConfig
	if err := l.readJSON("audio.json", &cfg); err != nil {
		return nil, err
	}

	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}

	return &cfg, nil
}

// LoadRoster loads scenes.yaml
func (l *Loader) LoadRoster() (*RosterConfig, error) {
	data, err := fs.ReadFile(l.fsys, "scenes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read scenes.yaml: %w", err)
	}

	var cfg RosterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenes.yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenes.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAll loads all configurations (display, audio, roster)
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	audio, err := l.LoadAudio()
	if err != nil {
		return nil, err
	}

	roster, err := l.LoadRoster()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		Audio:   audio,
		Roster:  roster,
	}, nil
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}
