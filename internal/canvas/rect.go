package canvas

import (
	"math"

	table "github.com/grindlemire/go-table"
)

// Rect is a rectangle of whole cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersect returns the overlap of r and o, or an empty Rect.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Snap rounds the edges of a float rectangle to the nearest cell
// boundaries. Infinite edges saturate.
func Snap(r table.Rect) Rect {
	x0, y0 := snap(r.X), snap(r.Y)
	x1, y1 := snap(r.Right()), snap(r.Bottom())
	return Rect{X: x0, Y: y0, Width: max(x1-x0, 0), Height: max(y1-y0, 0)}
}

const maxCoord = math.MaxInt32

func snap(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= maxCoord:
		return maxCoord
	case v <= -maxCoord:
		return -maxCoord
	}
	return int(math.Round(v))
}
