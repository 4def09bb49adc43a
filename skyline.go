package texpack

import (
	"math"
	"slices"
)

// skylineNode is one horizontal segment of the skyline. Y is the height of the filled floor
// across the span [X, X+Width).
type skylineNode struct {
	X, Y, Width int
}

type skylinePack struct {
	algorithmBase
	levelSelect Heuristic
	// skyline is sorted by X, and its spans cover [0, maxWidth) with no gaps or overlaps.
	skyline  []skylineNode
	wasteMap *guillotinePack
}

func newSkyline(width, height int, heuristic Heuristic) *skylinePack {
	var packer skylinePack

	switch heuristic & fitMask {
	case MinWaste:
		packer.levelSelect = MinWaste
		packer.wasteMap = newGuillotine(width, height, GuillotineBAF)
	default: // BottomLeft
		packer.levelSelect = BottomLeft
	}

	packer.Reset(width, height)
	return &packer
}

func (p *skylinePack) Reset(width, height int) {
	p.algorithmBase.Reset(width, height)
	p.skyline = p.skyline[:0]
	p.skyline = append(p.skyline, skylineNode{X: 0, Y: 0, Width: p.maxWidth})

	if p.wasteMap != nil {
		p.wasteMap.Reset(width, height)
		p.wasteMap.freeRects = p.wasteMap.freeRects[:0]
	}
}

func (p *skylinePack) AllowFlip(enabled bool) {
	p.allowFlip = enabled
	if p.wasteMap != nil {
		p.wasteMap.AllowFlip(enabled)
	}
}

func (p *skylinePack) find(size Size) (placement, bool) {
	if p.levelSelect == MinWaste {
		// Space lost under earlier placements is always preferred.
		if node, ok := p.wasteMap.find(size); ok {
			node.waste = true
			return node, true
		}
		return p.findMinWaste(size.Width, size.Height)
	}
	return p.findBottomLeft(size.Width, size.Height)
}

func (p *skylinePack) place(node placement) {
	if node.waste {
		p.wasteMap.place(node)
		return
	}
	p.addLevel(node.index, node.rect)
}

// canPut tests whether a rectangle of the given size can rest on the skyline starting at
// segment index. The rectangle sits on the highest segment it spans.
func (p *skylinePack) canPut(index, width, height int) (Rect, bool) {
	x := p.skyline[index].X
	if x+width > p.maxWidth {
		return Rect{}, false
	}

	widthLeft := width
	y := 0
	for i := index; widthLeft > 0; i++ {
		if i >= len(p.skyline) {
			return Rect{}, false
		}
		y = max(y, p.skyline[i].Y)
		if y+height > p.maxHeight {
			return Rect{}, false
		}
		widthLeft -= p.skyline[i].Width
	}
	return NewRect(x, y, width, height), true
}

func (p *skylinePack) findBottomLeft(width, height int) (placement, bool) {
	bestHeight := math.MaxInt
	// Used to break ties if there are nodes at the same level. Then pick the narrowest one.
	bestWidth := math.MaxInt
	var best placement
	found := false

	for i := range p.skyline {
		if r, ok := p.canPut(i, width, height); ok {
			if r.Y+r.H < bestHeight || (r.Y+r.H == bestHeight && p.skyline[i].Width < bestWidth) {
				bestHeight = r.Y + r.H
				bestWidth = p.skyline[i].Width
				best = placement{rect: r, index: i}
				found = true
			}
		}
		if p.allowFlip && width != height {
			if r, ok := p.canPut(i, height, width); ok {
				if r.Y+r.H < bestHeight || (r.Y+r.H == bestHeight && p.skyline[i].Width < bestWidth) {
					bestHeight = r.Y + r.H
					bestWidth = p.skyline[i].Width
					best = placement{rect: r, index: i, flipped: true}
					found = true
				}
			}
		}
	}

	return best, found
}

func (p *skylinePack) findMinWaste(width, height int) (placement, bool) {
	bestHeight := math.MaxInt
	bestWastedArea := math.MaxInt
	var best placement
	found := false

	for i := range p.skyline {
		if r, ok := p.canPut(i, width, height); ok {
			wasted := p.computeWaste(i, r)
			if wasted < bestWastedArea || (wasted == bestWastedArea && r.Y+r.H < bestHeight) {
				bestHeight = r.Y + r.H
				bestWastedArea = wasted
				best = placement{rect: r, index: i}
				found = true
			}
		}

		if p.allowFlip && width != height {
			if r, ok := p.canPut(i, height, width); ok {
				wasted := p.computeWaste(i, r)
				if wasted < bestWastedArea || (wasted == bestWastedArea && r.Y+r.H < bestHeight) {
					bestHeight = r.Y + r.H
					bestWastedArea = wasted
					best = placement{rect: r, index: i, flipped: true}
					found = true
				}
			}
		}
	}

	return best, found
}

// computeWaste returns the area left unreachable beneath rect if it is placed on the
// skyline starting at index.
func (p *skylinePack) computeWaste(index int, rect Rect) int {
	wastedArea := 0
	rectRight := rect.X + rect.W

	for ; index < len(p.skyline) && p.skyline[index].X < rectRight; index++ {
		node := p.skyline[index]
		rightSide := min(rectRight, node.X+node.Width)
		wastedArea += (rightSide - node.X) * (rect.Y - node.Y)
	}

	return wastedArea
}

// addWaste records the area left beneath rect into the waste map.
func (p *skylinePack) addWaste(index int, rect Rect) {
	rectRight := rect.X + rect.W

	for ; index < len(p.skyline) && p.skyline[index].X < rectRight; index++ {
		node := p.skyline[index]
		if node.Y >= rect.Y {
			continue
		}
		rightSide := min(rectRight, node.X+node.Width)
		waste := NewRect(node.X, node.Y, rightSide-node.X, rect.Y-node.Y)
		p.wasteMap.freeRects = append(p.wasteMap.freeRects, waste)
	}
	p.wasteMap.mergeFreeList()
}

// addLevel raises the skyline where rect has been placed, starting at segment index.
func (p *skylinePack) addLevel(index int, rect Rect) {
	// First track all wasted areas and mark them into the waste map if we're using one.
	if p.wasteMap != nil {
		p.addWaste(index, rect)
	}
	p.split(index, rect)
	p.mergeSkylines()
}

// split inserts a new segment for rect at index and trims the segments it now covers.
func (p *skylinePack) split(index int, rect Rect) {
	node := skylineNode{X: rect.X, Y: rect.Y + rect.H, Width: rect.W}
	p.skyline = slices.Insert(p.skyline, index, node)

	for i := index + 1; i < len(p.skyline); i++ {
		prev := p.skyline[i-1]
		if p.skyline[i].X >= prev.X+prev.Width {
			break
		}
		shrink := prev.X + prev.Width - p.skyline[i].X
		if p.skyline[i].Width <= shrink {
			p.skyline = slices.Delete(p.skyline, i, i+1)
			i--
			continue
		}
		p.skyline[i].X += shrink
		p.skyline[i].Width -= shrink
		break
	}
}

// mergeSkylines joins neighbouring segments of equal height.
func (p *skylinePack) mergeSkylines() {
	for i := 0; i < len(p.skyline)-1; i++ {
		if p.skyline[i].Y == p.skyline[i+1].Y {
			p.skyline[i].Width += p.skyline[i+1].Width
			p.skyline = slices.Delete(p.skyline, i+1, i+2)
			i--
		}
	}
}

// vim: ts=4
