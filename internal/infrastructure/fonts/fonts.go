// Package fonts provides text faces for ebiten's text/v2 renderer.
package fonts

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	sourceOnce sync.Once
	source     *text.GoTextFaceSource
	sourceErr  error
)

// Source returns the parsed Go Regular face source
func Source() (*text.GoTextFaceSource, error) {
	sourceOnce.Do(func() {
		source, sourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	return source, sourceErr
}

// Face returns a Go Regular face at size pixels
func Face(size float64) (*text.GoTextFace, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}
