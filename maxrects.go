package texpack

import "math"

// heuristicFunc scores every free rectangle for a request and returns the best candidate. Lower
// scores are better; score1 is compared first.
type heuristicFunc func(pack *maxRects, width, height int) (node placement, score1, score2 int)

type maxRects struct {
	algorithmBase
	findNode     heuristicFunc
	newLastSize  int
	newFreeRects []Rect
	// freeRects may overlap, but none is contained in another.
	freeRects []Rect
}

func newMaxRects(width, height int, heuristic Heuristic) *maxRects {
	var p maxRects
	switch heuristic & fitMask {
	case BestAreaFit:
		p.findNode = findPositionBestAreaFit
	case BottomLeft:
		p.findNode = findPositionBottomLeft
	case ContactPoint:
		p.findNode = findPositionContactPoint
	case BestLongSideFit:
		p.findNode = findPositionBestLongSideFit
	default: // BestShortSideFit
		p.findNode = findPositionBestShortSideFit
	}

	p.Reset(width, height)
	return &p
}

func (p *maxRects) Reset(width, height int) {
	p.algorithmBase.Reset(width, height)
	p.newFreeRects = p.newFreeRects[:0]
	p.freeRects = p.freeRects[:0]
	p.freeRects = append(p.freeRects, NewRect(0, 0, p.maxWidth, p.maxHeight))
}

func (p *maxRects) find(size Size) (placement, bool) {
	node, score1, _ := p.findNode(p, size.Width, size.Height)
	if node.rect.IsEmpty() || score1 == math.MaxInt {
		return placement{}, false
	}
	return node, true
}

func (p *maxRects) place(node placement) {
	for i := 0; i < len(p.freeRects); {
		if p.splitFreeNode(p.freeRects[i], node.rect) {
			last := len(p.freeRects) - 1
			p.freeRects[i] = p.freeRects[last]
			p.freeRects = p.freeRects[:last]
		} else {
			i++
		}
	}
	p.pruneFreeList()
}

func findPositionBottomLeft(p *maxRects, width, height int) (placement, int, int) {
	var bestNode placement

	bestY := math.MaxInt
	bestX := math.MaxInt

	for _, freeRect := range p.freeRects {

		// Try to place the rectangle in upright (non-flipped) orientation.
		if freeRect.W >= width && freeRect.H >= height {
			topSideY := freeRect.Y + height
			if topSideY < bestY || (topSideY == bestY && freeRect.X < bestX) {
				bestNode = placement{rect: NewRect(freeRect.X, freeRect.Y, width, height)}
				bestY = topSideY
				bestX = freeRect.X
			}
		}

		if p.allowFlip && width != height && freeRect.W >= height && freeRect.H >= width {
			topSideY := freeRect.Y + width
			if topSideY < bestY || (topSideY == bestY && freeRect.X < bestX) {
				bestNode = placement{rect: NewRect(freeRect.X, freeRect.Y, height, width), flipped: true}
				bestY = topSideY
				bestX = freeRect.X
			}
		}
	}
	return bestNode, bestY, bestX
}

func findPositionBestShortSideFit(p *maxRects, width, height int) (placement, int, int) {
	var bestNode placement
	bestShortSideFit := math.MaxInt
	bestLongSideFit := math.MaxInt

	for _, freeRect := range p.freeRects {

		// Try to place the rectangle in upright (non-flipped) orientation.
		if freeRect.W >= width && freeRect.H >= height {
			leftoverHoriz := abs(freeRect.W - width)
			leftoverVert := abs(freeRect.H - height)
			shortSideFit := min(leftoverHoriz, leftoverVert)
			longSideFit := max(leftoverHoriz, leftoverVert)

			if shortSideFit < bestShortSideFit || (shortSideFit == bestShortSideFit && longSideFit < bestLongSideFit) {
				bestNode = placement{rect: NewRect(freeRect.X, freeRect.Y, width, height)}
				bestShortSideFit = shortSideFit
				bestLongSideFit = longSideFit
			}
		}

		if p.allowFlip && width != height && freeRect.W >= height && freeRect.H >= width {
			flippedLeftoverHoriz := abs(freeRect.W - height)
			flippedLeftoverVert := abs(freeRect.H - width)
			flippedShortSideFit := min(flippedLeftoverHoriz, flippedLeftoverVert)
			flippedLongSideFit := max(flippedLeftoverHoriz, flippedLeftoverVert)

			if flippedShortSideFit < bestShortSideFit || (flippedShortSideFit == bestShortSideFit && flippedLongSideFit < bestLongSideFit) {
				bestNode = placement{rect: NewRect(freeRect.X, freeRect.Y, height, width), flipped: true}
				bestShortSideFit = flippedShortSideFit
				bestLongSideFit = flippedLongSideFit
			}
		}
	}

	return bestNode, bestShortSideFit, bestLongSideFit
}

func findPositionBestLongSideFit(p *maxRects, width, height int) (placement, int, int) {
	var bestNode placement
	bestShortSideFit := math.MaxInt
	bestLongSideFit := math.MaxInt

	for _, freeRect := range p.freeRects {

		// Try to place the rectangle in upright (non-flipped) orientation.
		if freeRect.W >= width && freeRect.H >= height {
			leftoverHoriz := abs(freeRect.W - width)
			leftoverVert := abs(freeRect.H - height)
			shortSideFit := min(leftoverHoriz, leftoverVert)
			longSideFit := max(leftoverHoriz, leftoverVert)

			if longSideFit < bestLongSideFit || (longSideFit == bestLongSideFit && shortSideFit < bestShortSideFit) {
				bestNode = placement{rect: NewRect(freeRect.X, freeRect.Y, width, height)}
				bestShortSideFit = shortSideFit
				bestLongSideFit = longSideFit
			}
		}

		if p.allowFlip && width != height && freeRect.W >= height && freeRect.H >= width {
			leftoverHoriz := abs(freeRect.W - height)
			leftoverVert := abs(freeRect.H - width)
			shortSideFit := min(leftoverHoriz, leftoverVert)
			longSideFit := max(leftoverHoriz, leftoverVert)

			if longSideFit < bestLongSideFit || (longSideFit == bestLongSideFit && shortSideFit < bestShortSideFit) {
				bestNode = placement{rect: NewRect(freeRect.X, freeRect.Y, height, width), flipped: true}
				bestShortSideFit = shortSideFit
				bestLongSideFit = longSideFit
			}
		}
	}
	return bestNode, bestLongSideFit, bestShortSideFit
}

func findPositionBestAreaFit(p *maxRects, width, height int) (placement, int, int) {
	var bestNode placement

	bestAreaFit := math.MaxInt
	bestShortSideFit := math.MaxInt

	for _, freeRect := range p.freeRects {
		areaFit := freeRect.W*freeRect.H - width*height

		// Try to place the rectangle in upright (non-flipped) orientation.
		if freeRect.W >= width && freeRect.H >= height {
			leftoverHoriz := abs(freeRect.W - width)
			leftoverVert := abs(freeRect.H - height)
			shortSideFit := min(leftoverHoriz, leftoverVert)

			if areaFit < bestAreaFit || (areaFit == bestAreaFit && shortSideFit < bestShortSideFit) {
				bestNode = placement{rect: NewRect(freeRect.X, freeRect.Y, width, height)}
				bestShortSideFit = shortSideFit
				bestAreaFit = areaFit
			}
		}

		if p.allowFlip && width != height && freeRect.W >= height && freeRect.H >= width {
			leftoverHoriz := abs(freeRect.W - height)
			leftoverVert := abs(freeRect.H - width)
			shortSideFit := min(leftoverHoriz, leftoverVert)

			if areaFit < bestAreaFit || (areaFit == bestAreaFit && shortSideFit < bestShortSideFit) {
				bestNode = placement{rect: NewRect(freeRect.X, freeRect.Y, height, width), flipped: true}
				bestShortSideFit = shortSideFit
				bestAreaFit = areaFit
			}
		}
	}
	return bestNode, bestAreaFit, bestShortSideFit
}

// Returns 0 if the two intervals i1 and i2 are disjoint, or the length of their overlap otherwise
func commonIntervalLength(i1start, i1end, i2start, i2end int) int {
	if i1end < i2start || i2end < i1start {
		return 0
	}
	return min(i1end, i2end) - max(i1start, i2start)
}

func (p *maxRects) contactPointScoreNode(x, y, width, height int) int {
	score := 0

	if x == 0 || x+width == p.maxWidth {
		score += height
	}
	if y == 0 || y+height == p.maxHeight {
		score += width
	}

	for _, used := range p.packed {
		if used.X == x+width || used.X+used.W == x {
			score += commonIntervalLength(used.Y, used.Y+used.H, y, y+height)
		}
		if used.Y == y+height || used.Y+used.H == y {
			score += commonIntervalLength(used.X, used.X+used.W, x, x+width)
		}
	}
	return score
}

func findPositionContactPoint(p *maxRects, width, height int) (placement, int, int) {
	var bestNode placement
	bestContactScore := -1

	for _, freeRect := range p.freeRects {
		// Try to place the rectangle in upright (non-flipped) orientation.
		if freeRect.W >= width && freeRect.H >= height {
			score := p.contactPointScoreNode(freeRect.X, freeRect.Y, width, height)
			if score > bestContactScore {
				bestNode = placement{rect: NewRect(freeRect.X, freeRect.Y, width, height)}
				bestContactScore = score
			}
		}
		if p.allowFlip && width != height && freeRect.W >= height && freeRect.H >= width {
			score := p.contactPointScoreNode(freeRect.X, freeRect.Y, height, width)
			if score > bestContactScore {
				bestNode = placement{rect: NewRect(freeRect.X, freeRect.Y, height, width), flipped: true}
				bestContactScore = score
			}
		}
	}

	// Higher contact is better, so the score is negated to fit the lower-is-better contract.
	if bestContactScore < 0 {
		return bestNode, math.MaxInt, math.MaxInt
	}
	return bestNode, -bestContactScore, 0
}

func (p *maxRects) insertNewFreeRectangle(newFreeRect Rect) {
	for i := 0; i < p.newLastSize; {
		// This new free rectangle is already accounted for?
		if p.newFreeRects[i].ContainsRect(newFreeRect) {
			return
		}

		// Does this new free rectangle obsolete a previous new free rectangle?
		if newFreeRect.ContainsRect(p.newFreeRects[i]) {
			// Remove i'th new free rectangle, but do so by retaining the order
			// of the older vs newest free rectangles that we may still be placing
			// in calling function splitFreeNode().
			p.newLastSize--
			p.newFreeRects[i] = p.newFreeRects[p.newLastSize]

			last := len(p.newFreeRects) - 1
			p.newFreeRects[p.newLastSize] = p.newFreeRects[last]
			p.newFreeRects = p.newFreeRects[:last]
			continue
		}

		i++
	}

	p.newFreeRects = append(p.newFreeRects, newFreeRect)
}

// splitFreeNode subtracts usedNode from freeNode, queueing the remaining pieces as new free
// rectangles. It returns false when the two do not overlap and freeNode must be kept.
func (p *maxRects) splitFreeNode(freeNode, usedNode Rect) bool {
	if !freeNode.Intersects(usedNode) {
		return false
	}

	p.newLastSize = len(p.newFreeRects)

	for _, piece := range freeNode.Crop(usedNode) {
		// Crop keeps the top and bottom strips to the width of the overlap. Stretch them across
		// the whole free node so that each piece is a maximal rectangle.
		if piece.X >= usedNode.X && piece.X+piece.W <= usedNode.X+usedNode.W {
			piece.X = freeNode.X
			piece.W = freeNode.W
		}
		p.insertNewFreeRectangle(piece)
	}

	return true
}

func (p *maxRects) pruneFreeList() {
	// Test all newly introduced free rectangles against old free rectangles.
	for i := 0; i < len(p.freeRects); i++ {
		for j := 0; j < len(p.newFreeRects); {

			if p.freeRects[i].ContainsRect(p.newFreeRects[j]) {
				last := len(p.newFreeRects) - 1
				p.newFreeRects[j] = p.newFreeRects[last]
				p.newFreeRects = p.newFreeRects[:last]
				continue
			}
			j++
		}
	}

	// Merge new and old free rectangles to the group of old free rectangles.
	p.freeRects = append(p.freeRects, p.newFreeRects...)
	p.newFreeRects = p.newFreeRects[:0]
}

// vim: ts=4
