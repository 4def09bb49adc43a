package imageio

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/ForeverZer0/texpack"
)

// ErrEmptyTexture is returned when exporting a texture with no pixels, such as an atlas page
// nothing has been packed into.
var ErrEmptyTexture = errors.New("texture width or height is zero")

// Pixel is a texpack pixel that can be converted to a standard color.
type Pixel[P any] interface {
	texpack.Pixel[P]
	color.Color
}

type exportOptions struct {
	background     color.Color
	alphaThreshold uint8
}

// Option configures Export.
type Option func(*exportOptions)

// WithBackground sets the color of pixels no texture covers. The default is transparent black.
func WithBackground(c color.Color) Option {
	return func(o *exportOptions) {
		o.background = c
	}
}

// WithAlphaThreshold replaces pixels whose alpha is below threshold with the background.
func WithAlphaThreshold(threshold uint8) Option {
	return func(o *exportOptions) {
		o.alphaThreshold = threshold
	}
}

// Export renders a texture into a new image.
func Export[P Pixel[P]](tex texpack.Texture[P], opts ...Option) (*image.NRGBA, error) {
	o := exportOptions{background: color.Transparent}
	for _, opt := range opts {
		opt(&o)
	}

	width, height := tex.Width(), tex.Height()
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyTexture
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)

	for y, loopN := 0, height; y < loopN; y++ {
		for x, loopN := 0, width; x < loopN; x++ {
			p, ok := tex.Get(x, y)
			if !ok {
				continue
			}
			c := color.NRGBAModel.Convert(p).(color.NRGBA)
			if c.A < o.alphaThreshold {
				continue
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img, nil
}

// vim: ts=4
