// Package imageio converts between encoded images and texpack textures.
//
// Importing decodes PNG, JPEG, GIF, BMP, TIFF and WebP files into an ImageTexture. Exporting
// renders any texture, including a composed atlas page, into an *image.NRGBA that can be
// encoded as PNG, BMP or TIFF.
package imageio

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/ForeverZer0/texpack"
)

// ImageTexture is a texpack texture backed by a non-premultiplied RGBA image.
type ImageTexture struct {
	img *image.NRGBA
}

// NewImageTexture wraps an image. Images that are not *image.NRGBA with an origin of (0, 0)
// are copied into one.
func NewImageTexture(img image.Image) *ImageTexture {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return &ImageTexture{img: nrgba}
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return &ImageTexture{img: dst}
}

// Image returns the backing image.
func (t *ImageTexture) Image() *image.NRGBA {
	return t.img
}

func (t *ImageTexture) Width() int  { return t.img.Rect.Dx() }
func (t *ImageTexture) Height() int { return t.img.Rect.Dy() }

func (t *ImageTexture) Get(x, y int) (texpack.RGBA8, bool) {
	if !(image.Point{X: x, Y: y}).In(t.img.Rect) {
		return texpack.RGBA8{}, false
	}
	i := t.img.PixOffset(x, y)
	px := t.img.Pix[i : i+4 : i+4]
	return texpack.RGBA8{R: px[0], G: px[1], B: px[2], A: px[3]}, true
}

func (t *ImageTexture) Set(x, y int, val texpack.RGBA8) {
	if !(image.Point{X: x, Y: y}).In(t.img.Rect) {
		panic("imageio: pixel out of range")
	}
	i := t.img.PixOffset(x, y)
	px := t.img.Pix[i : i+4 : i+4]
	px[0], px[1], px[2], px[3] = val.R, val.G, val.B, val.A
}

// IsRowTransparent reads the alpha channel of a row directly.
func (t *ImageTexture) IsRowTransparent(row int) bool {
	if row < 0 || row >= t.Height() {
		return true
	}
	off := row * t.img.Stride
	pix := t.img.Pix[off : off+t.Width()*4]
	for x := 3; x < len(pix); x += 4 {
		if pix[x] != 0 {
			return false
		}
	}
	return true
}

// IsColumnTransparent reads the alpha channel of a column directly.
func (t *ImageTexture) IsColumnTransparent(col int) bool {
	if col < 0 || col >= t.Width() {
		return true
	}
	off := col*4 + 3
	for loopI, loopN := 0, t.Height(); loopI < loopN; loopI++ {
		if t.img.Pix[off] != 0 {
			return false
		}
		off += t.img.Stride
	}
	return true
}

// vim: ts=4
