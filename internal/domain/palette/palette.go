// Package palette resolves named colors and provides the small amount of
// color arithmetic the scenes need.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Named resolves an SVG/CSS color name such as "orange" or "black"
func Named(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// MustNamed is Named for colors fixed at compile time
func MustNamed(name string) color.RGBA {
	c, err := Named(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Complement returns 255-c per channel, keeping alpha
func Complement(c color.RGBA) color.RGBA {
	return color.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// Scale multiplies every channel by s, clamped to [0, 255]
func Scale(s float64, c color.RGBA) color.RGBA {
	return color.RGBA{
		R: clampChannel(s * float64(c.R)),
		G: clampChannel(s * float64(c.G)),
		B: clampChannel(s * float64(c.B)),
		A: clampChannel(s * float64(c.A)),
	}
}

// Sum adds two colors channel-wise, saturating at 255
func Sum(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: clampChannel(float64(a.R) + float64(b.R)),
		G: clampChannel(float64(a.G) + float64(b.G)),
		B: clampChannel(float64(a.B) + float64(b.B)),
		A: clampChannel(float64(a.A) + float64(b.A)),
	}
}

// Lerp blends from a (t=0) to b (t=1). t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Sum(Scale(1-t, a), Scale(t, b))
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
