package texpack

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrTextureTooLarge is returned when a texture does not fit into the free space of an atlas.
	ErrTextureTooLarge = errors.New("texture too large to fit into atlas")
	// ErrEmptyTexture is returned for a texture with no pixels.
	ErrEmptyTexture = errors.New("texture has zero width or height")
)

// Packer packs textures into a single atlas page. The packer is itself a read-only Texture whose
// pixels are looked up from the packed textures on demand.
//
// A Packer is not safe for concurrent use.
type Packer[P Pixel[P]] struct {
	config   Config
	algo     packAlgorithm
	textures map[string]*SubTexture[P]
	frames   map[string]Frame
	// keys holds every packed key in the order it was last packed.
	keys []string
}

// New creates an empty atlas page using the free-space tracker selected by cfg.Heuristic.
func New[P Pixel[P]](cfg Config) (*Packer[P], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Packer[P]{
		config:   cfg,
		algo:     newAlgorithm(cfg),
		textures: make(map[string]*SubTexture[P]),
		frames:   make(map[string]Frame),
	}, nil
}

func newAlgorithm(cfg Config) packAlgorithm {
	size := cfg.trackerSize()

	var algo packAlgorithm
	switch cfg.Heuristic & typeMask {
	case MaxRects:
		algo = newMaxRects(size.Width, size.Height, cfg.Heuristic)
	case Guillotine:
		algo = newGuillotine(size.Width, size.Height, cfg.Heuristic)
	case Shelf:
		algo = newShelf(size.Width, size.Height)
	default: // Skyline
		algo = newSkyline(size.Width, size.Height, cfg.Heuristic)
	}

	algo.AllowFlip(cfg.AllowRotation)
	algo.Padding(cfg.TexturePadding, cfg.TextureExtrusion)
	return algo
}

// PackOwn packs a texture the packer takes ownership of. Packing a key that is already present
// replaces its texture and frame, but the space of the old frame stays reserved.
//
// When the texture does not fit, an error wrapping ErrTextureTooLarge is returned and the packer
// is left unchanged.
func (p *Packer[P]) PackOwn(key string, texture Texture[P]) error {
	return p.pack(key, texture, true)
}

// PackRef packs a borrowed texture, see PackOwn. The texture must stay valid and unchanged for
// as long as the packer is used.
func (p *Packer[P]) PackRef(key string, texture Texture[P]) error {
	return p.pack(key, texture, false)
}

func (p *Packer[P]) pack(key string, texture Texture[P], owned bool) error {
	width, height := texture.Width(), texture.Height()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pack %q: %w", key, ErrEmptyTexture)
	}

	source := p.sourceRect(texture)
	if !canPack(p.algo, source.Size()) {
		return fmt.Errorf("pack %q: %w", key, ErrTextureTooLarge)
	}

	frame, ok := pack(p.algo, key, source.Size())
	if !ok {
		panic(fmt.Sprintf("texpack: %q fit during the dry run but could not be placed", key))
	}

	frame.Frame.X += p.config.BorderPadding
	frame.Frame.Y += p.config.BorderPadding
	frame.Trimmed = !source.Eq(NewRect(0, 0, width, height))
	frame.Source = NewRect(source.X, source.Y, width, height)

	if owned {
		p.textures[key] = NewSubTexture(texture, source)
	} else {
		p.textures[key] = SubTextureRef(texture, source)
	}
	if _, exists := p.frames[key]; exists {
		p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
	}
	p.frames[key] = frame
	p.keys = append(p.keys, key)
	return nil
}

// CanPack tests whether the texture would fit, without changing the packer.
func (p *Packer[P]) CanPack(texture Texture[P]) bool {
	if texture.Width() <= 0 || texture.Height() <= 0 {
		return false
	}
	return canPack(p.algo, p.sourceRect(texture).Size())
}

func (p *Packer[P]) sourceRect(texture Texture[P]) Rect {
	if p.config.Trim {
		return trimTexture(texture)
	}
	return NewRect(0, 0, texture.Width(), texture.Height())
}

// trimTexture returns the smallest area of the texture that holds every non-transparent pixel.
// A fully transparent texture trims to its top-left pixel.
func trimTexture[P Pixel[P]](texture Texture[P]) Rect {
	width, height := texture.Width(), texture.Height()

	x1 := 0
	for x1 < width && IsColumnTransparent(texture, x1) {
		x1++
	}
	if x1 == width {
		return NewRect(0, 0, 1, 1)
	}

	x2 := width - 1
	for x2 > x1 && IsColumnTransparent(texture, x2) {
		x2--
	}

	y1 := 0
	for y1 < height && IsRowTransparent(texture, y1) {
		y1++
	}

	y2 := height - 1
	for y2 > y1 && IsRowTransparent(texture, y2) {
		y2--
	}

	return NewRectPoints(x1, y1, x2, y2)
}

// Frames returns a copy of the frames packed into the atlas, by key.
func (p *Packer[P]) Frames() map[string]Frame {
	return maps.Clone(p.frames)
}

// Frame returns the frame packed under key.
func (p *Packer[P]) Frame(key string) (Frame, bool) {
	frame, ok := p.frames[key]
	return frame, ok
}

// Keys returns the packed keys in the order they were packed.
func (p *Packer[P]) Keys() []string {
	return slices.Clone(p.keys)
}

// Config returns the configuration of the packer.
func (p *Packer[P]) Config() Config {
	return p.config
}

// Occupancy returns the ratio of reserved area to the area available for packing, in the range
// of 0.0 to 1.0. Padding and extrusion count as reserved.
func (p *Packer[P]) Occupancy() float64 {
	return p.algo.Used()
}

// Width returns the width of the composed atlas. It covers the right-most frame with its
// extrusion, plus the border.
func (p *Packer[P]) Width() int {
	if p.config.ForceMaxDimensions {
		return p.config.MaxWidth
	}
	if len(p.frames) == 0 {
		return 0
	}
	right := 0
	for _, frame := range p.frames {
		right = max(right, frame.Frame.Right())
	}
	return right + 1 + p.config.TextureExtrusion + p.config.BorderPadding
}

// Height returns the height of the composed atlas, see Width.
func (p *Packer[P]) Height() int {
	if p.config.ForceMaxDimensions {
		return p.config.MaxHeight
	}
	if len(p.frames) == 0 {
		return 0
	}
	bottom := 0
	for _, frame := range p.frames {
		bottom = max(bottom, frame.Frame.Bottom())
	}
	return bottom + 1 + p.config.TextureExtrusion + p.config.BorderPadding
}

// frameAt returns the frame covering a point of the atlas, extrusion included. The most
// recently packed frame wins where frames overlap.
func (p *Packer[P]) frameAt(x, y int) (Frame, bool) {
	extrusion := p.config.TextureExtrusion
	for i := len(p.keys) - 1; i >= 0; i-- {
		frame := p.frames[p.keys[i]]
		if frame.Frame.Inflate(extrusion, extrusion).Contains(x, y) {
			return frame, true
		}
	}
	return Frame{}, false
}

// Get returns the pixel of the composed atlas at (x, y), or false for the background.
func (p *Packer[P]) Get(x, y int) (P, bool) {
	var zero P

	frame, ok := p.frameAt(x, y)
	if !ok {
		return zero, false
	}

	if p.config.TextureOutlines && frame.Frame.IsOutline(x, y) {
		return zero.Outline(), true
	}

	texture, ok := p.textures[frame.Key]
	if !ok {
		return zero, false
	}

	// Extruded pixels repeat the nearest edge of the frame.
	localX := min(max(x-frame.Frame.X, 0), frame.Frame.W-1)
	localY := min(max(y-frame.Frame.Y, 0), frame.Frame.H-1)

	if frame.Rotated {
		return GetRotated[P](texture, localX, localY)
	}
	return texture.Get(localX, localY)
}

// Set panics. The composed atlas is read-only.
func (p *Packer[P]) Set(x, y int, val P) {
	panic("texpack: cannot set a pixel of a composed atlas")
}

// vim: ts=4
