package layout

import "fmt"

// CellOffset identifies a pixel position along one axis as the part it falls
// inside and the remaining offset within that part.
type CellOffset struct {
	Offset float64
	Index  int
}

// AxisLayout is an ordered sequence of parts along one axis plus the budget
// of free space left during the current pass.
type AxisLayout struct {
	parts  []AxisPart
	budget float64
}

// NewAxisLayout creates an axis with the given parts.
func NewAxisLayout(parts ...AxisPart) *AxisLayout {
	return &AxisLayout{parts: append([]AxisPart(nil), parts...)}
}

// Prepare starts a pass on an axis with the given available size. Flexible
// parts fall back to their minimum; every part's size is taken from the
// budget. It must be called once per pass before Constrains or SetSize.
func (a *AxisLayout) Prepare(available float64) {
	a.budget = available
	for i := range a.parts {
		a.parts[i].reset(available)
		a.budget -= a.parts[i].size
	}
}

// Constrains returns the legal size range of the part at index.
func (a *AxisLayout) Constrains(index int) (minSize, maxSize float64) {
	a.check(index)
	return a.parts[index].Constrains(a.budget)
}

// SetSize records a measurement for the part at index.
func (a *AxisLayout) SetSize(index int, measured float64) {
	a.check(index)
	a.budget = a.parts[index].CalcSpace(measured, a.budget)
}

// Remaining returns the free space left in the current pass.
func (a *AxisLayout) Remaining() float64 {
	return a.budget
}

// AsCellOffset converts a pixel offset into the part containing it. A
// boundary belongs to the part that ends there. It panics if the offset is
// negative or beyond Size.
func (a *AxisLayout) AsCellOffset(offset float64) CellOffset {
	if offset < 0 {
		panic(fmt.Sprintf("layout: negative axis offset %v", offset))
	}
	start := 0.0
	for i, p := range a.parts {
		end := start + p.size
		if end >= offset {
			return CellOffset{Offset: offset - start, Index: i}
		}
		start = end
	}
	panic(fmt.Sprintf("layout: no axis part found for offset %v (axis size %v)", offset, a.Size()))
}

// FromCellOffset is the inverse of AsCellOffset.
func (a *AxisLayout) FromCellOffset(c CellOffset) float64 {
	if c.Index < 0 || c.Index > len(a.parts) {
		panic(fmt.Sprintf("layout: part index %d out of range [0, %d]", c.Index, len(a.parts)))
	}
	return a.start(c.Index) + c.Offset
}

// Clamp restricts offset to the valid range [0, Size].
func (a *AxisLayout) Clamp(offset float64) float64 {
	return clamp(offset, 0, a.Size())
}

// CurrentLayout returns the span of the part at index.
func (a *AxisLayout) CurrentLayout(index int) (start, end float64) {
	a.check(index)
	start = a.start(index)
	return start, start + a.parts[index].size
}

// SetLength truncates the axis or extends it with copies of template.
// It reports whether the length changed.
func (a *AxisLayout) SetLength(length int, template AxisPart) bool {
	if length < 0 {
		panic(fmt.Sprintf("layout: negative axis length %d", length))
	}
	if len(a.parts) == length {
		return false
	}
	if len(a.parts) > length {
		a.parts = a.parts[:length]
		return true
	}
	for len(a.parts) < length {
		a.parts = append(a.parts, template)
	}
	return true
}

// AddPart appends a part.
func (a *AxisLayout) AddPart(p AxisPart) {
	a.parts = append(a.parts, p)
}

// Part returns the part at index.
func (a *AxisLayout) Part(index int) AxisPart {
	a.check(index)
	return a.parts[index]
}

// SetPart replaces the part at index.
func (a *AxisLayout) SetPart(index int, p AxisPart) {
	a.check(index)
	a.parts[index] = p
}

// Parts returns a copy of all parts.
func (a *AxisLayout) Parts() []AxisPart {
	return append([]AxisPart(nil), a.parts...)
}

// Len returns the number of parts.
func (a *AxisLayout) Len() int {
	return len(a.parts)
}

// Size returns the total extent of the axis.
func (a *AxisLayout) Size() float64 {
	return a.start(len(a.parts))
}

// Boundaries returns the Len()+1 cumulative part edges, starting at zero.
func (a *AxisLayout) Boundaries() []float64 {
	edges := make([]float64, 0, len(a.parts)+1)
	advance := 0.0
	edges = append(edges, advance)
	for _, p := range a.parts {
		advance += p.size
		edges = append(edges, advance)
	}
	return edges
}

func (a *AxisLayout) start(index int) float64 {
	sum := 0.0
	for _, p := range a.parts[:index] {
		sum += p.size
	}
	return sum
}

func (a *AxisLayout) check(index int) {
	if index < 0 || index >= len(a.parts) {
		panic(fmt.Sprintf("layout: part index %d out of range [0, %d)", index, len(a.parts)))
	}
}
