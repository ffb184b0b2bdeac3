// Package circle provides scenes that show a single colored circle.
package circle

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/multiscene/internal/application/scene"
	"github.com/younwookim/multiscene/internal/domain/event"
	"github.com/younwookim/multiscene/internal/domain/palette"
)

const (
	DefaultRadius = 200
	exitKey       = ebiten.KeyX
)

// Options configures a circle scene
type Options struct {
	scene.Options

	Color  color.RGBA
	Radius float64

	// Selector and Next take effect when the scene exits with the X key.
	Selector scene.Selector
	Next     int
}

// Circle draws a filled circle in the middle of the screen. Any key exits.
// The scene can be activated repeatedly.
type Circle struct {
	scene.AnyKeyExit

	color  color.RGBA
	radius float64

	selector scene.Selector
	next     int

	sprite *ebiten.Image
}

// New creates a circle scene
func New(opts Options) *Circle {
	if opts.Radius <= 0 {
		opts.Radius = DefaultRadius
	}
	return &Circle{
		AnyKeyExit: *scene.NewAnyKeyExit(opts.Options),
		color:      opts.Color,
		radius:     opts.Radius,
		selector:   opts.Selector,
		next:       opts.Next,
	}
}

// Red creates the red circle scene, followed by key 2 when keyed
func Red(opts scene.Options, sel scene.Selector) *Circle {
	return preset(opts, sel, "red", 2)
}

// Green creates the green circle scene, followed by key 3 when keyed
func Green(opts scene.Options, sel scene.Selector) *Circle {
	return preset(opts, sel, "green", 3)
}

// Blue creates the blue circle scene, followed by key 1 when keyed
func Blue(opts scene.Options, sel scene.Selector) *Circle {
	return preset(opts, sel, "blue", 1)
}

func preset(opts scene.Options, sel scene.Selector, name string, next int) *Circle {
	if opts.Name == "" {
		opts.Name = name + "-circle"
	}
	return New(Options{
		Options:  opts,
		Color:    palette.MustNamed(name),
		Selector: sel,
		Next:     next,
	})
}

// ProcessEvent exits on X, picking the next scene when keyed
func (c *Circle) ProcessEvent(e event.Event) {
	if !e.IsKeyDown(exitKey) {
		c.AnyKeyExit.ProcessEvent(e)
		return
	}
	if c.selector != nil {
		if err := c.selector.SetNext(c.next); err != nil {
			log.Printf("%s: %v", c.Name(), err)
		}
	}
	c.Invalidate()
}

// Draw renders the background and blits the circle at the screen center
func (c *Circle) Draw(screen *ebiten.Image) {
	c.AnyKeyExit.Draw(screen)

	if c.sprite == nil {
		c.sprite = c.render()
	}

	rect := c.Rect(screen.Bounds().Dx(), screen.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	screen.DrawImage(c.sprite, op)
}

// End stops the soundtrack and makes the scene runnable again
func (c *Circle) End() {
	c.AnyKeyExit.End()
	c.Revalidate()
}

// Rect returns the circle's bounding box on a screen of the given size
func (c *Circle) Rect(screenW, screenH int) image.Rectangle {
	d := c.diameter()
	x := screenW/2 - d/2
	y := screenH/2 - d/2
	return image.Rect(x, y, x+d, y+d)
}

// Color returns the fill color
func (c *Circle) Color() color.RGBA {
	return c.color
}

// Radius returns the circle radius in pixels
func (c *Circle) Radius() float64 {
	return c.radius
}

func (c *Circle) diameter() int {
	return int(2 * c.radius)
}

// render draws the circle once into its own image
func (c *Circle) render() *ebiten.Image {
	d := c.diameter()
	img := ebiten.NewImage(d, d)
	r := float32(c.radius)
	vector.DrawFilledCircle(img, r, r, r, c.color, true)
	return img
}
