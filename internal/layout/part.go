package layout

import "math"

// AxisPart is the sizing state of one line or element along its axis.
//
// A fixed part always has size == min == max and never takes part in the
// shared budget of its axis. A flexible part starts at its minimum in every
// pass and only grows while cells are measured against it.
type AxisPart struct {
	size    float64
	min     float64
	max     float64
	fixed   bool
	percent float64 // > 0 for parts resolved against the available size
}

// FixedPart returns a part with an explicit size.
func FixedPart(size float64) AxisPart {
	size = max(size, 0)
	return AxisPart{size: size, min: size, max: size, fixed: true}
}

// FlexPart returns a flexible part bounded by [0, +Inf].
func FlexPart() AxisPart {
	return AxisPart{max: math.Inf(1)}
}

// BoundedPart returns a flexible part restricted to [minSize, maxSize].
func BoundedPart(minSize, maxSize float64) AxisPart {
	minSize = max(minSize, 0)
	maxSize = max(maxSize, minSize)
	return AxisPart{size: minSize, min: minSize, max: maxSize}
}

// PercentPart returns a fixed part whose size is p percent (0-100) of the
// available size of its axis. It is resolved at the start of every pass;
// on an unbounded axis it resolves to zero.
func PercentPart(p float64) AxisPart {
	return AxisPart{fixed: true, percent: max(p, 0)}
}

// NewAxisPart returns a fixed part when size is non-nil and a flexible part otherwise.
func NewAxisPart(size *float64) AxisPart {
	if size != nil {
		return FixedPart(*size)
	}
	return FlexPart()
}

// Size returns the current resolved size.
func (p AxisPart) Size() float64 { return p.size }

// Min returns the lower size bound.
func (p AxisPart) Min() float64 { return p.min }

// Max returns the upper size bound.
func (p AxisPart) Max() float64 { return p.max }

// IsFixed reports whether the part was constructed with an explicit size.
func (p AxisPart) IsFixed() bool { return p.fixed }

// Same reports whether two parts have identical state.
func (p AxisPart) Same(other AxisPart) bool {
	return p == other
}

// Constrains returns the legal size range for a measurement of this part
// when budget space is still free on the axis.
func (p AxisPart) Constrains(budget float64) (minSize, maxSize float64) {
	return p.min, min(p.max, p.size+budget)
}

// CalcSpace grows a flexible part to the measured size and returns the
// remaining budget. Measurements outside the range reported by Constrains
// are clamped into it, so a part never grows past the free space. Fixed
// parts leave the budget unchanged.
func (p *AxisPart) CalcSpace(measured, budget float64) float64 {
	if p.fixed {
		return budget
	}
	old := p.size
	upper := min(p.max, p.size+budget)
	p.size = max(p.size, min(measured, upper))
	return max(budget-(p.size-old), 0)
}

// reset prepares the part for a new pass on an axis with the given
// available size.
func (p *AxisPart) reset(available float64) {
	switch {
	case p.percent > 0:
		size := 0.0
		if !math.IsInf(available, 0) {
			size = max(available*p.percent/100, 0)
		}
		p.size, p.min, p.max = size, size, size
	case !p.fixed:
		p.size = p.min
	}
}
