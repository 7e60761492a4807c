package layout

// Axis is a physical screen direction.
type Axis uint8

const (
	Horizontal Axis = iota // Left to right
	Vertical               // Top to bottom
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

// Major returns the component of s along this axis.
func (a Axis) Major(s Size) float64 {
	if a == Vertical {
		return s.Height
	}
	return s.Width
}

// Minor returns the component of s along the cross axis.
func (a Axis) Minor(s Size) float64 {
	if a == Vertical {
		return s.Width
	}
	return s.Height
}

// MajorPos returns the coordinate of p along this axis.
func (a Axis) MajorPos(p Point) float64 {
	if a == Vertical {
		return p.Y
	}
	return p.X
}

// MinorPos returns the coordinate of p along the cross axis.
func (a Axis) MinorPos(p Point) float64 {
	if a == Vertical {
		return p.X
	}
	return p.Y
}

// MajorSpan returns the start and end of r along this axis.
func (a Axis) MajorSpan(r Rect) (start, end float64) {
	if a == Vertical {
		return r.Y, r.Bottom()
	}
	return r.X, r.Right()
}

// MinorSpan returns the start and end of r along the cross axis.
func (a Axis) MinorSpan(r Rect) (start, end float64) {
	return a.Cross().MajorSpan(r)
}

// Pack returns (x, y) for a major and minor component.
func (a Axis) Pack(major, minor float64) (x, y float64) {
	if a == Vertical {
		return minor, major
	}
	return major, minor
}

// PackSize builds a Size from a major and minor component.
func (a Axis) PackSize(major, minor float64) Size {
	w, h := a.Pack(major, minor)
	return Size{Width: w, Height: h}
}

// PackPoint builds a Point from a major and minor component.
func (a Axis) PackPoint(major, minor float64) Point {
	x, y := a.Pack(major, minor)
	return Point{X: x, Y: y}
}
