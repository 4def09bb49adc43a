package texpack

import "fmt"

// Size describes dimensions of an entity in 2D space.
type Size struct {
	// Width is the dimension on the horizontal x-axis.
	Width int `json:"w" toml:"w"`
	// Height is the dimensions on the vertical y-axis.
	Height int `json:"h" toml:"h"`
}

// NewSize creates a new size with specified dimensions.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Eq tests whether the receiver and another size have equal values.
func (sz Size) Eq(size Size) bool {
	return sz.Width == size.Width && sz.Height == size.Height
}

// String returns a string representation of the size.
func (sz Size) String() string {
	return fmt.Sprintf("<%v, %v>", sz.Width, sz.Height)
}

// Area returns the total area (width * height).
func (sz Size) Area() int {
	return sz.Width * sz.Height
}

// Perimeter returns the sum length of all sides.
func (sz Size) Perimeter() int {
	return (sz.Width + sz.Height) << 1
}

// MaxSide returns the value of the greater side.
func (sz Size) MaxSide() int {
	return max(sz.Width, sz.Height)
}

// MinSide returns the value of the lesser side.
func (sz Size) MinSide() int {
	return min(sz.Width, sz.Height)
}

// Ratio compute the ratio between the width/height.
func (sz Size) Ratio() float64 {
	return float64(sz.Width) / float64(sz.Height)
}

// Flip returns the size with width and height swapped.
func (sz Size) Flip() Size {
	return Size{Width: sz.Height, Height: sz.Width}
}

// Rect is an axis-aligned rectangle in pixel coordinates. X and Y locate the top-left corner.
//
// The edge accessors Right and Bottom are inclusive, so they are only meaningful for a
// rectangle that is not empty.
type Rect struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
	W int `json:"w" toml:"w"`
	H int `json:"h" toml:"h"`
}

// NewRect initializes a new rectangle using the specified location and size values.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// NewRectPoints initializes a new rectangle from two inclusive corners, so that
// (x1, y1) is the top-left pixel and (x2, y2) the bottom-right pixel.
func NewRectPoints(x1, y1, x2, y2 int) Rect {
	return Rect{X: x1, Y: y1, W: x2 - x1 + 1, H: y2 - y1 + 1}
}

// Eq compares two rectangles to determine if the location and size is equal.
func (r Rect) Eq(rect Rect) bool {
	return r == rect
}

// String returns a string describing the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", r.X, r.Y, r.W, r.H)
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.W, Height: r.H}
}

// Area returns the total area (width * height).
func (r Rect) Area() int {
	return r.W * r.H
}

// Left returns the coordinate of the left-edge of the rectangle on the x-axis.
func (r Rect) Left() int {
	return r.X
}

// Top returns the coordinate of the top-edge of the rectangle on the y-axis.
func (r Rect) Top() int {
	return r.Y
}

// Right returns the coordinate of the right-most column covered by the rectangle.
func (r Rect) Right() int {
	return r.X + r.W - 1
}

// Bottom returns the coordinate of the bottom-most row covered by the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H - 1
}

// IsEmpty tests whether the width or size of the rectangle is less than 1.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// ContainsRect tests whether the specified rectangle is contained within the bounds of the
// current receiver.
func (r Rect) ContainsRect(rect Rect) bool {
	return r.X <= rect.X &&
		rect.X+rect.W <= r.X+r.W &&
		r.Y <= rect.Y &&
		rect.Y+rect.H <= r.Y+r.H
}

// Contains tests whether the specified coordinates are within the bounds of the receiver.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.X+r.W && r.Y <= y && y < r.Y+r.H
}

// IsOutline tests whether the specified coordinates lie on one of the four edges of the
// rectangle.
func (r Rect) IsOutline(x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.Left() || x == r.Right() || y == r.Top() || y == r.Bottom()
}

// Inflate pushes each edge of the rectangle out from the center by the specified relative
// amount on each axis.
func (r Rect) Inflate(width, height int) Rect {
	r.X -= width
	r.Y -= height
	r.W += width << 1
	r.H += height << 1
	return r
}

// Intersects tests whether the receiver and the specified rectangle share at least one pixel.
func (r Rect) Intersects(rect Rect) bool {
	return rect.X < r.X+r.W &&
		r.X < rect.X+rect.W &&
		rect.Y < r.Y+r.H &&
		r.Y < rect.Y+rect.H
}

// Intersect returns a rectangle representing only the overlapping area of this rectangle and
// another, or an empty rectangle when no overlap is present.
func (r Rect) Intersect(rect Rect) (result Rect) {
	x1 := max(r.X, rect.X)
	x2 := min(r.X+r.W, rect.X+rect.W)
	y1 := max(r.Y, rect.Y)
	y2 := min(r.Y+r.H, rect.Y+rect.H)

	if x2 > x1 && y2 > y1 {
		result = Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
	}
	return
}

// Union returns a minimum rectangle required to contain the receiver and another rectangle.
func (r Rect) Union(rect Rect) Rect {
	x1 := min(r.X, rect.X)
	x2 := max(r.X+r.W, rect.X+rect.W)
	y1 := min(r.Y, rect.Y)
	y2 := max(r.Y+r.H, rect.Y+rect.H)
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// Crop subtracts the specified rectangle from the receiver, returning the pieces that remain.
// The result is the receiver itself when the two do not intersect, or up to four disjoint
// rectangles otherwise:
//
//	+----+-----+----+
//	|    | top |    |
//	|    +-----+    |
//	|left|     |rght|
//	|    +-----+    |
//	|    | bot |    |
//	+----+-----+----+
//
// Left and right strips span the full height of the receiver.
func (r Rect) Crop(rect Rect) []Rect {
	if !r.Intersects(rect) {
		return []Rect{r}
	}

	// Inclusive corners of the overlapping area.
	x1 := max(r.Left(), rect.Left())
	y1 := max(r.Top(), rect.Top())
	x2 := min(r.Right(), rect.Right())
	y2 := min(r.Bottom(), rect.Bottom())

	result := make([]Rect, 0, 4)
	if x1 > r.Left() {
		result = append(result, NewRectPoints(r.Left(), r.Top(), x1-1, r.Bottom()))
	}
	if x2 < r.Right() {
		result = append(result, NewRectPoints(x2+1, r.Top(), r.Right(), r.Bottom()))
	}
	if y1 > r.Top() {
		result = append(result, NewRectPoints(x1, r.Top(), x2, y1-1))
	}
	if y2 < r.Bottom() {
		result = append(result, NewRectPoints(x1, y2+1, x2, r.Bottom()))
	}
	return result
}

// vim: ts=4
