package layout

import "math"

// Constraints bounds the size a cell may be measured at.
type Constraints struct {
	Min Size
	Max Size
}

// Tight returns constraints that only admit s.
func Tight(s Size) Constraints {
	return Constraints{Min: s, Max: s}
}

// Loose returns constraints from zero up to s.
func Loose(s Size) Constraints {
	return Constraints{Max: s}
}

// Unbounded returns constraints with no upper limit.
func Unbounded() Constraints {
	return Constraints{Max: Size{Width: math.Inf(1), Height: math.Inf(1)}}
}

// Constrain clamps s into the constraints.
// If a minimum exceeds its maximum, the minimum wins.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, c.Min.Width, c.Max.Width),
		Height: clamp(s.Height, c.Min.Height, c.Max.Height),
	}
}

// Shrink reduces both bounds by d, flooring at zero.
func (c Constraints) Shrink(d Size) Constraints {
	return Constraints{Min: c.Min.Sub(d), Max: c.Max.Sub(d)}
}

// IsTight returns true if the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.Min == c.Max
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
