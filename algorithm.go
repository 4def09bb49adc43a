package texpack

// packAlgorithm is a free-space tracker. Every strategy keeps its own bookkeeping of unused
// area but exposes the same placement contract.
type packAlgorithm interface {
	// Reset returns the packer to its initial configured state with the specified maximum extents.
	// This function will panic if width or height is less than 1.
	Reset(width, height int)
	// Used computes the ratio of used surface area to the maximum possible area, in the range of
	// 0.0 (empty) and 1.0 (perfectly packed with no waste).
	Used() float64
	// Rects returns a slice of the areas that have been reserved, padding included.
	Rects() []Rect
	// AllowFlip indicates if rectangles can be flipped/rotated to provide better placement.
	//
	// Default: false
	AllowFlip(enabled bool)
	// Padding defines the empty space reserved to the right of and below each rectangle, and the
	// number of edge pixels extruded on every side of it.
	Padding(padding, extrusion int)
	// MaxSize returns the maximum size the algorithm can pack into.
	MaxSize() Size
	// UsedArea returns the total area that is occupied.
	UsedArea() int

	// find locates space for a rectangle of the given (already inflated) size without
	// modifying any state.
	find(size Size) (placement, bool)
	// place commits a placement previously returned by find. No other call may happen
	// between the two.
	place(p placement)
	// base exposes the state shared by every algorithm.
	base() *algorithmBase
}

// placement is a candidate position returned by an algorithm's search.
type placement struct {
	// rect is the reserved area, including padding and extrusion.
	rect Rect
	// index is strategy specific: the skyline segment or free rectangle the search settled on.
	index int
	// flipped is set when the requested size was rotated to fit.
	flipped bool
	// waste is set by the skyline when the placement comes from its waste map.
	waste bool
}

type algorithmBase struct {
	packed    []Rect
	maxWidth  int
	maxHeight int
	usedArea  int
	allowFlip bool
	padding   int
	extrusion int
}

func (p *algorithmBase) Used() float64 {
	return float64(p.usedArea) / float64(p.maxWidth*p.maxHeight)
}

func (p *algorithmBase) Reset(width, height int) {
	if width <= 0 || height <= 0 {
		panic("width and height must be greater than 0")
	}

	p.maxWidth = width
	p.maxHeight = height
	p.usedArea = 0
	p.packed = p.packed[:0]
}

func (p *algorithmBase) Rects() []Rect {
	return p.packed
}

func (p *algorithmBase) AllowFlip(enabled bool) {
	p.allowFlip = enabled
}

func (p *algorithmBase) Padding(padding, extrusion int) {
	p.padding = max(padding, 0)
	p.extrusion = max(extrusion, 0)
}

func (p *algorithmBase) MaxSize() Size {
	return NewSize(p.maxWidth, p.maxHeight)
}

func (p *algorithmBase) UsedArea() int {
	return p.usedArea
}

func (p *algorithmBase) base() *algorithmBase {
	return p
}

// grow returns the amount added to each dimension of a texture before it is placed.
func (p *algorithmBase) grow() int {
	return p.padding + p.extrusion*2
}

func (p *algorithmBase) inflate(size Size) Size {
	g := p.grow()
	return Size{Width: size.Width + g, Height: size.Height + g}
}

// canPack reports whether a texture of the given size fits, without modifying the algorithm.
func canPack(algo packAlgorithm, size Size) bool {
	if size.Width <= 0 || size.Height <= 0 {
		return false
	}
	_, ok := algo.find(algo.base().inflate(size))
	return ok
}

// pack places a texture of the given size and returns its frame. The frame is positioned at
// the texture's top-left pixel, inside the extrusion and excluding padding.
func pack(algo packAlgorithm, key string, size Size) (Frame, bool) {
	if size.Width <= 0 || size.Height <= 0 {
		return Frame{}, false
	}

	b := algo.base()
	request := b.inflate(size)
	node, ok := algo.find(request)
	if !ok {
		return Frame{}, false
	}
	algo.place(node)

	b.packed = append(b.packed, node.rect)
	b.usedArea += node.rect.Area()

	g := b.grow()
	rect := node.rect
	return Frame{
		Key: key,
		Frame: Rect{
			X: rect.X + b.extrusion,
			Y: rect.Y + b.extrusion,
			W: rect.W - g,
			H: rect.H - g,
		},
		Rotated: rect.W != request.Width,
		Source:  NewRect(0, 0, size.Width, size.Height),
	}, true
}

func abs(x int) int {
	if x >= 0 {
		return x
	}
	return -x
}

// vim: ts=4
