package texpack

import (
	"fmt"
	"image/color"
)

// Pixel is the capability required of a texture's pixel type. Transparency and Outline describe
// the type rather than a value, and are called on the zero value.
type Pixel[P any] interface {
	// IsTransparent tests whether the pixel is fully transparent.
	IsTransparent() bool
	// Transparency returns the fully transparent value of the pixel type, or false when the
	// format has no transparency.
	Transparency() (P, bool)
	// Outline returns the color drawn around frames when outlines are enabled.
	Outline() P
}

// Texture is a rectangular pixel source. Coordinates are zero-based with the origin at the
// top-left corner.
//
// A texture may additionally implement IsRowTransparent(row int) bool and
// IsColumnTransparent(col int) bool when it can answer them faster than a pixel-by-pixel scan.
type Texture[P Pixel[P]] interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// Get returns the pixel at the specified location, or false when it lies outside the texture.
	Get(x, y int) (P, bool)
	// Set writes the pixel at the specified location.
	Set(x, y int, val P)
}

type rowTransparency interface {
	IsRowTransparent(row int) bool
}

type columnTransparency interface {
	IsColumnTransparent(col int) bool
}

// GetRotated returns the pixel at (x, y) of the texture as if it were rotated 90° clockwise.
// The rotated texture is Height() columns wide and Width() rows tall.
func GetRotated[P Pixel[P]](t Texture[P], x, y int) (P, bool) {
	return t.Get(y, t.Height()-x-1)
}

// IsRowTransparent tests whether every pixel of a row is transparent.
func IsRowTransparent[P Pixel[P]](t Texture[P], row int) bool {
	if fast, ok := t.(rowTransparency); ok {
		return fast.IsRowTransparent(row)
	}
	for x, loopN := 0, t.Width(); x < loopN; x++ {
		if p, ok := t.Get(x, row); ok && !p.IsTransparent() {
			return false
		}
	}
	return true
}

// IsColumnTransparent tests whether every pixel of a column is transparent.
func IsColumnTransparent[P Pixel[P]](t Texture[P], col int) bool {
	if fast, ok := t.(columnTransparency); ok {
		return fast.IsColumnTransparent(col)
	}
	for y, loopN := 0, t.Height(); y < loopN; y++ {
		if p, ok := t.Get(col, y); ok && !p.IsTransparent() {
			return false
		}
	}
	return true
}

// RGBA8 is an 8-bit per channel, non-premultiplied color.
type RGBA8 struct {
	R, G, B, A uint8
}

// IsTransparent implements Pixel.
func (c RGBA8) IsTransparent() bool {
	return c.A == 0
}

// Transparency implements Pixel.
func (RGBA8) Transparency() (RGBA8, bool) {
	return RGBA8{}, true
}

// Outline implements Pixel, returning opaque red.
func (RGBA8) Outline() RGBA8 {
	return RGBA8{R: 255, A: 255}
}

// RGBA implements color.Color.
func (c RGBA8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// MemoryTexture is a texture of RGBA8 pixels stored in row-major order.
type MemoryTexture struct {
	pixels []RGBA8
	width  int
	height int
}

// NewMemoryTexture creates a fully transparent texture of the given size.
func NewMemoryTexture(width, height int) *MemoryTexture {
	return &MemoryTexture{
		pixels: make([]RGBA8, max(width, 0)*max(height, 0)),
		width:  max(width, 0),
		height: max(height, 0),
	}
}

// MemoryTextureFromBytes creates a texture from a raw buffer holding four bytes (R, G, B, A)
// per pixel in row-major order.
func MemoryTextureFromBytes(buf []byte, width, height int) (*MemoryTexture, error) {
	if width < 0 || height < 0 || len(buf) != width*height*4 {
		return nil, fmt.Errorf("buffer of %d bytes does not hold %dx%d RGBA pixels", len(buf), width, height)
	}

	t := NewMemoryTexture(width, height)
	for i := range t.pixels {
		px := buf[i*4 : i*4+4]
		t.pixels[i] = RGBA8{R: px[0], G: px[1], B: px[2], A: px[3]}
	}
	return t, nil
}

func (t *MemoryTexture) Width() int  { return t.width }
func (t *MemoryTexture) Height() int { return t.height }

func (t *MemoryTexture) Get(x, y int) (RGBA8, bool) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return RGBA8{}, false
	}
	return t.pixels[y*t.width+x], true
}

// Set writes a pixel. It panics if the location is outside the texture.
func (t *MemoryTexture) Set(x, y int, val RGBA8) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		panic(fmt.Sprintf("pixel (%d, %d) out of range for %dx%d texture", x, y, t.width, t.height))
	}
	t.pixels[y*t.width+x] = val
}

func (t *MemoryTexture) IsRowTransparent(row int) bool {
	if row < 0 || row >= t.height {
		return true
	}
	for _, p := range t.pixels[row*t.width : (row+1)*t.width] {
		if p.A != 0 {
			return false
		}
	}
	return true
}

// SubTexture is a rectangular view into another texture. The view either owns its texture,
// and may write through to it, or borrows it read-only.
type SubTexture[P Pixel[P]] struct {
	texture Texture[P]
	source  Rect
	owned   bool
}

// NewSubTexture creates a view over a texture the view takes ownership of.
func NewSubTexture[P Pixel[P]](texture Texture[P], source Rect) *SubTexture[P] {
	return &SubTexture[P]{texture: texture, source: source, owned: true}
}

// SubTextureRef creates a read-only view over a borrowed texture. The texture must remain valid
// and unchanged for as long as the view is used.
func SubTextureRef[P Pixel[P]](texture Texture[P], source Rect) *SubTexture[P] {
	return &SubTexture[P]{texture: texture, source: source}
}

// Source returns the area of the underlying texture covered by the view.
func (s *SubTexture[P]) Source() Rect {
	return s.source
}

// Owned reports whether the view owns its texture.
func (s *SubTexture[P]) Owned() bool {
	return s.owned
}

func (s *SubTexture[P]) Width() int  { return s.source.W }
func (s *SubTexture[P]) Height() int { return s.source.H }

func (s *SubTexture[P]) Get(x, y int) (P, bool) {
	if x < 0 || y < 0 || x >= s.source.W || y >= s.source.H {
		var zero P
		return zero, false
	}
	return s.texture.Get(s.source.X+x, s.source.Y+y)
}

// Set writes through to the underlying texture. It panics when the texture is borrowed.
func (s *SubTexture[P]) Set(x, y int, val P) {
	if !s.owned {
		panic("cannot set pixel through a borrowed texture")
	}
	s.texture.Set(s.source.X+x, s.source.Y+y, val)
}

// vim: ts=4
