package layout

// Rect represents a rectangle.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromPoints creates the Rect spanned by two corners.
func RectFromPoints(a, b Point) Rect {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns a new Rect moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	width := right - x
	height := bottom - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// ClipSegment clips the axis-aligned segment from-to to r, edges included.
// The result runs in increasing coordinate order. It returns false for
// diagonal segments and segments outside r.
func (r Rect) ClipSegment(from, to Point) (Point, Point, bool) {
	switch {
	case from.Y == to.Y:
		if from.Y < r.Y || from.Y > r.Bottom() {
			return Point{}, Point{}, false
		}
		x0, x1 := max(min(from.X, to.X), r.X), min(max(from.X, to.X), r.Right())
		if x0 >= x1 {
			return Point{}, Point{}, false
		}
		return Point{X: x0, Y: from.Y}, Point{X: x1, Y: from.Y}, true
	case from.X == to.X:
		if from.X < r.X || from.X > r.Right() {
			return Point{}, Point{}, false
		}
		y0, y1 := max(min(from.Y, to.Y), r.Y), min(max(from.Y, to.Y), r.Bottom())
		if y0 >= y1 {
			return Point{}, Point{}, false
		}
		return Point{X: from.X, Y: y0}, Point{X: from.X, Y: y1}, true
	default:
		return Point{}, Point{}, false
	}
}
