package main

import (
	"fmt"
	"image/color"

	"github.com/younwookim/multiscene/internal/application/game"
	"github.com/younwookim/multiscene/internal/application/manager"
	"github.com/younwookim/multiscene/internal/application/scene"
	"github.com/younwookim/multiscene/internal/application/scene/circle"
	"github.com/younwookim/multiscene/internal/application/scene/title"
	"github.com/younwookim/multiscene/internal/domain/palette"
	"github.com/younwookim/multiscene/internal/infrastructure/assets"
	"github.com/younwookim/multiscene/internal/infrastructure/config"
	"github.com/younwookim/multiscene/internal/infrastructure/music"
)

// buildSequence creates the scenes listed in the roster and the manager
// that hands them out. The roster must have passed Validate.
func buildSequence(roster *config.RosterConfig, catalog *assets.Catalog, ch music.Channel) (game.Sequence, error) {
	if roster.Keyed() {
		keyed := manager.NewKeyed()
		for i := range roster.Scenes {
			s, err := buildScene(&roster.Scenes[i], catalog, ch, keyed)
			if err != nil {
				return nil, err
			}
			keyed.Add(s)
		}
		if err := keyed.SetNext(roster.Start); err != nil {
			return nil, fmt.Errorf("roster %s: %w", roster.Name, err)
		}
		return keyed, nil
	}

	linear := manager.New()
	for i := range roster.Scenes {
		s, err := buildScene(&roster.Scenes[i], catalog, ch, nil)
		if err != nil {
			return nil, err
		}
		linear.Add(s)
	}
	return linear, nil
}

func buildScene(spec *config.SceneSpec, catalog *assets.Catalog, ch music.Channel, sel scene.Selector) (scene.Scene, error) {
	fg, err := palette.Named(spec.Color)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", spec.Name, err)
	}

	var bg color.Color = color.Black
	if spec.Background != "" {
		c, err := palette.Named(spec.Background)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", spec.Name, err)
		}
		bg = c
	}

	var soundtrack string
	if spec.Soundtrack != "" {
		soundtrack = catalog.MustPath(spec.Soundtrack)
	}

	opts := scene.Options{
		Name:       spec.Name,
		Background: bg,
		FrameRate:  spec.FrameRate,
		Soundtrack: soundtrack,
		Music:      ch,
	}

	switch spec.Kind {
	case config.KindTitle:
		return title.New(title.Options{
			Options:  opts,
			Message:  spec.Message,
			Color:    fg,
			Size:     spec.Size,
			Selector: sel,
			Next:     spec.Next,
		}), nil
	case config.KindCircle:
		return circle.New(circle.Options{
			Options:  opts,
			Color:    fg,
			Radius:   spec.Radius,
			Selector: sel,
			Next:     spec.Next,
		}), nil
	default:
		return nil, fmt.Errorf("scene %s: unknown kind %q", spec.Name, spec.Kind)
	}
}
