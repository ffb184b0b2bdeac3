package config

import "time"

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Title        string `json:"title"`
	ShowFPS      bool   `json:"showFPS"`
}

// AudioConfig is the root config for audio.json
type AudioConfig struct {
	SampleRate int     `json:"sampleRate"`
	Volume     float64 `json:"volume"`
	FadeInMs   int     `json:"fadeInMs"`
	FadeOutMs  int     `json:"fadeOutMs"`
}

// FadeIn returns the fade-in duration
func (c *AudioConfig) FadeIn() time.Duration {
	return time.Duration(c.FadeInMs) * time.Millisecond
}

// FadeOut returns the fade-out duration
func (c *AudioConfig) FadeOut() time.Duration {
	return time.Duration(c.FadeOutMs) * time.Millisecond
}
