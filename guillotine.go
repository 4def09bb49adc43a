package texpack

import (
	"math"
	"slices"
)

type scoreFunc func(width, height int, freeRect *Rect) int

type guillotinePack struct {
	algorithmBase
	Merge       bool
	splitMethod Heuristic

	scoreRect scoreFunc
	// freeRects are pairwise disjoint.
	freeRects []Rect
}

func newGuillotine(width, height int, heuristic Heuristic) *guillotinePack {
	var packer guillotinePack
	packer.Merge = true

	switch heuristic & fitMask {
	case BestShortSideFit:
		packer.scoreRect = scoreBestShort
	case BestLongSideFit:
		packer.scoreRect = scoreBestLong
	case WorstAreaFit:
		packer.scoreRect = func(w, h int, r *Rect) int { return -scoreBestArea(w, h, r) }
	case WorstShortSideFit:
		packer.scoreRect = func(w, h int, r *Rect) int { return -scoreBestShort(w, h, r) }
	case WorstLongSideFit:
		packer.scoreRect = func(w, h int, r *Rect) int { return -scoreBestLong(w, h, r) }
	default: // BestAreaFit
		packer.scoreRect = scoreBestArea
	}

	packer.splitMethod = heuristic & splitMask
	packer.Reset(width, height)
	return &packer
}

func (p *guillotinePack) Reset(width, height int) {
	p.algorithmBase.Reset(width, height)
	p.freeRects = p.freeRects[:0]
	p.freeRects = append(p.freeRects, NewRect(0, 0, p.maxWidth, p.maxHeight))
}

func (p *guillotinePack) find(size Size) (placement, bool) {
	width, height := size.Width, size.Height
	bestScore := math.MaxInt
	var best placement
	found := false

	// Try each free rectangle to find the best one for placement.
	for i := range p.freeRects {
		freeRect := &p.freeRects[i]

		// A perfect fit is chosen immediately.
		if width == freeRect.W && height == freeRect.H {
			return placement{rect: NewRect(freeRect.X, freeRect.Y, width, height), index: i}, true
		}
		if p.allowFlip && height == freeRect.W && width == freeRect.H {
			return placement{rect: NewRect(freeRect.X, freeRect.Y, height, width), index: i, flipped: true}, true
		}

		// Does the rectangle fit upright?
		if width <= freeRect.W && height <= freeRect.H {
			if score := p.scoreRect(width, height, freeRect); score < bestScore {
				best = placement{rect: NewRect(freeRect.X, freeRect.Y, width, height), index: i}
				bestScore = score
				found = true
			}
		}
		// Does the rectangle fit sideways?
		if p.allowFlip && width != height && height <= freeRect.W && width <= freeRect.H {
			if score := p.scoreRect(height, width, freeRect); score < bestScore {
				best = placement{rect: NewRect(freeRect.X, freeRect.Y, height, width), index: i, flipped: true}
				bestScore = score
				found = true
			}
		}
	}
	return best, found
}

func (p *guillotinePack) place(node placement) {
	freeRect := p.freeRects[node.index]
	p.freeRects = slices.Delete(p.freeRects, node.index, node.index+1)

	// Remove the free space we lost in the bin.
	p.splitByHeuristic(freeRect, node.rect)

	// Perform a Rectangle Merge step if desired.
	if p.Merge {
		p.mergeFreeList()
	}
}

func scoreBestArea(width, height int, freeRect *Rect) int {
	return freeRect.W*freeRect.H - width*height
}

func scoreBestShort(width, height int, freeRect *Rect) int {
	leftoverHoriz := abs(freeRect.W - width)
	leftoverVert := abs(freeRect.H - height)
	return min(leftoverHoriz, leftoverVert)
}

func scoreBestLong(width, height int, freeRect *Rect) int {
	leftoverHoriz := abs(freeRect.W - width)
	leftoverVert := abs(freeRect.H - height)
	return max(leftoverHoriz, leftoverVert)
}

func (p *guillotinePack) splitAlongAxis(freeRect, placedRect Rect, splitHorizontal bool) {
	// Form the two new rectangles.
	bottom := Rect{
		X: freeRect.X,
		Y: freeRect.Y + placedRect.H,
		H: freeRect.H - placedRect.H,
	}
	right := Rect{
		X: freeRect.X + placedRect.W,
		Y: freeRect.Y,
		W: freeRect.W - placedRect.W,
	}

	if splitHorizontal {
		bottom.W = freeRect.W
		right.H = placedRect.H
	} else { // Split vertically
		bottom.W = placedRect.W
		right.H = freeRect.H
	}

	// Add the new rectangles into the free rectangle pool if they weren't degenerate.
	if !bottom.IsEmpty() {
		p.freeRects = append(p.freeRects, bottom)
	}
	if !right.IsEmpty() {
		p.freeRects = append(p.freeRects, right)
	}
}

func (p *guillotinePack) splitByHeuristic(freeRect, placedRect Rect) {
	// Compute the lengths of the leftover area.
	w := freeRect.W - placedRect.W
	h := freeRect.H - placedRect.H

	// Placing placedRect into freeRect results in an L-shaped free area, which must be split into
	// two disjoint rectangles. This can be achieved with by splitting the L-shape using a single
	// line. We have two choices: horizontal or vertical.

	var splitHorizontal bool
	switch p.splitMethod {
	case SplitShorterLeftoverAxis:
		// Split along the shorter leftover axis.
		splitHorizontal = w <= h
	case SplitLongerLeftoverAxis:
		// Split along the longer leftover axis.
		splitHorizontal = w > h
	case SplitMinimizeArea:
		// Maximize the larger area == minimize the smaller area.
		// Tries to make the single bigger rectangle.
		splitHorizontal = placedRect.W*h > w*placedRect.H
	case SplitMaximizeArea:
		// Maximize the smaller area == minimize the larger area.
		// Tries to make the rectangles more even-sized.
		splitHorizontal = placedRect.W*h <= w*placedRect.H
	case SplitLongerAxis:
		// Split along the longer total axis.
		splitHorizontal = freeRect.W > freeRect.H
	default: // SplitShorterAxis
		splitHorizontal = freeRect.W <= freeRect.H
	}

	p.splitAlongAxis(freeRect, placedRect, splitHorizontal)
}

// mergeFreeList joins pairs of free rectangles that share a full edge. Runs of three or more
// are only caught over several calls.
func (p *guillotinePack) mergeFreeList() {
	for i := 0; i < len(p.freeRects); i++ {
		for j := i + 1; j < len(p.freeRects); j++ {
			a, b := &p.freeRects[i], p.freeRects[j]
			switch {
			case a.W == b.W && a.X == b.X && a.Y == b.Y+b.H:
				a.Y -= b.H
				a.H += b.H
			case a.W == b.W && a.X == b.X && a.Y+a.H == b.Y:
				a.H += b.H
			case a.H == b.H && a.Y == b.Y && a.X == b.X+b.W:
				a.X -= b.W
				a.W += b.W
			case a.H == b.H && a.Y == b.Y && a.X+a.W == b.X:
				a.W += b.W
			default:
				continue
			}
			p.freeRects = slices.Delete(p.freeRects, j, j+1)
			j--
		}
	}
}

// vim: ts=4
