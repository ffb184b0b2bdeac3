package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/multiscene/internal/domain/palette"
)

// Manager modes
const (
	ModeLinear = "linear"
	ModeKeyed  = "keyed"
)

// Scene kinds
const (
	KindTitle  = "title"
	KindCircle = "circle"
)

// RosterConfig is the root config for scenes.yaml
type RosterConfig struct {
	Name   string            `yaml:"name"`
	Mode   string            `yaml:"mode"`
	Start  int               `yaml:"start"`
	Assets map[string]string `yaml:"assets"`
	Scenes []SceneSpec       `yaml:"scenes"`
}

// SceneSpec describes one scene of the roster
type SceneSpec struct {
	Kind       string  `yaml:"kind"`
	Name       string  `yaml:"name"`
	Message    string  `yaml:"message,omitempty"`
	Color      string  `yaml:"color"`
	Background string  `yaml:"background,omitempty"`
	Size       float64 `yaml:"size,omitempty"`
	Radius     float64 `yaml:"radius,omitempty"`
	Soundtrack string  `yaml:"soundtrack,omitempty"`
	FrameRate  int     `yaml:"frameRate,omitempty"`
	Next       int     `yaml:"next"`
}

// Validate checks the roster for mistakes that would otherwise surface
// only when a scene is built or started.
func (r *RosterConfig) Validate() error {
	var errs []error

	switch r.Mode {
	case "", ModeLinear:
	case ModeKeyed:
		if r.Start < 0 || r.Start >= len(r.Scenes) {
			errs = append(errs, fmt.Errorf("start scene %d out of range", r.Start))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", r.Mode))
	}

	for i, s := range r.Scenes {
		if err := s.validate(r); err != nil {
			errs = append(errs, fmt.Errorf("scene %d (%s): %w", i, s.Name, err))
		}
	}

	return errors.Join(errs...)
}

// Keyed reports whether the roster asks for keyed transitions
func (r *RosterConfig) Keyed() bool {
	return r.Mode == ModeKeyed
}

func (s *SceneSpec) validate(r *RosterConfig) error {
	if s.Kind != KindTitle && s.Kind != KindCircle {
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
	if _, err := palette.Named(s.Color); err != nil {
		return err
	}
	if s.Background != "" {
		if _, err := palette.Named(s.Background); err != nil {
			return err
		}
	}
	if s.Soundtrack != "" {
		if _, ok := r.Assets[s.Soundtrack]; !ok {
			return fmt.Errorf("soundtrack %q is not in assets", s.Soundtrack)
		}
	}
	if s.FrameRate < 0 {
		return fmt.Errorf("negative frame rate %d", s.FrameRate)
	}
	if r.Keyed() && (s.Next < 0 || s.Next >= len(r.Scenes)) {
		return fmt.Errorf("next scene %d out of range", s.Next)
	}
	return nil
}
