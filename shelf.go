package texpack

// shelfPack fills the atlas row by row. Only the open shelf accepts new rectangles; space left
// on closed shelves is never revisited.
type shelfPack struct {
	algorithmBase
	// x is the cursor on the open shelf and y its top edge.
	x, y int
	// shelfHeight is the height of the tallest rectangle on the open shelf.
	shelfHeight int
}

func newShelf(width, height int) *shelfPack {
	var packer shelfPack
	packer.Reset(width, height)
	return &packer
}

func (p *shelfPack) Reset(width, height int) {
	p.algorithmBase.Reset(width, height)
	p.x, p.y, p.shelfHeight = 0, 0, 0
}

func (p *shelfPack) fits(x, y, width, height int) bool {
	return x+width <= p.maxWidth && y+height <= p.maxHeight
}

func (p *shelfPack) find(size Size) (placement, bool) {
	upright := placement{rect: NewRect(p.x, p.y, size.Width, size.Height)}
	sideways := placement{rect: NewRect(p.x, p.y, size.Height, size.Width), flipped: true}
	canFlip := p.allowFlip && size.Width != size.Height

	if p.x > 0 {
		var best placement
		found := false
		for i, node := range []placement{upright, sideways} {
			if i == 1 && !canFlip {
				break
			}
			if !p.fits(node.rect.X, node.rect.Y, node.rect.W, node.rect.H) {
				continue
			}
			if !found || p.better(node.rect, best.rect) {
				best = node
				found = true
			}
		}
		if found {
			return best, true
		}
	}

	// Open a new shelf below the current one, or start the first shelf.
	y := p.y + p.shelfHeight
	if p.x == 0 {
		y = p.y
	}
	upright.rect.X, upright.rect.Y = 0, y
	sideways.rect.X, sideways.rect.Y = 0, y

	// The first rectangle of a shelf lies on its side when that makes the shelf lower.
	if canFlip && size.Height > size.Width && p.fits(0, y, size.Height, size.Width) {
		return sideways, true
	}
	if p.fits(0, y, size.Width, size.Height) {
		return upright, true
	}
	if canFlip && p.fits(0, y, size.Height, size.Width) {
		return sideways, true
	}
	return placement{}, false
}

// better tests whether a is a better fit than b on the open shelf. Fitting under the shelf
// ceiling comes first. Under the ceiling the taller orientation wastes less space, above it the
// flatter one raises the shelf the least.
func (p *shelfPack) better(a, b Rect) bool {
	aUnder, bUnder := a.H <= p.shelfHeight, b.H <= p.shelfHeight
	if aUnder != bUnder {
		return aUnder
	}
	if aUnder {
		return a.H > b.H
	}
	return a.H < b.H
}

func (p *shelfPack) place(node placement) {
	if node.rect.X == 0 {
		p.y = node.rect.Y
		p.shelfHeight = 0
	}
	p.x = node.rect.X + node.rect.W
	p.shelfHeight = max(p.shelfHeight, node.rect.H)
}

// vim: ts=4
