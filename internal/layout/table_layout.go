package layout

// TableAxis names one of the two axes of a table independent of screen
// orientation.
type TableAxis uint8

const (
	LineAxis    TableAxis = iota // The axis along which lines are stacked
	ElementAxis                  // The axis along which the cells of a line run
)

// String returns the table axis name.
func (t TableAxis) String() string {
	if t == ElementAxis {
		return "element"
	}
	return "line"
}

// Other returns the opposite table axis.
func (t TableAxis) Other() TableAxis {
	if t == ElementAxis {
		return LineAxis
	}
	return ElementAxis
}

// CellPosition is a 2-D cell offset: the line and element containing a point
// and the remaining offset inside that cell.
type CellPosition struct {
	Offset  Point
	Line    int
	Element int
}

// MeasureFunc measures a cell under the given constraints.
type MeasureFunc func(Constraints) Size

// TableLayout composes the line and element axes of a table. It is the single
// source of truth for sizing shared by the table body and its headers.
type TableLayout struct {
	lines    AxisLayout
	elements AxisLayout
	lineAxis Axis

	phase      Phase
	generation uint64
}

// NewTableLayout creates an empty layout whose lines are stacked along lineAxis.
func NewTableLayout(lineAxis Axis) *TableLayout {
	return &TableLayout{lineAxis: lineAxis}
}

// LineAxis returns the physical axis along which lines are stacked.
func (l *TableLayout) LineAxis() Axis {
	return l.lineAxis
}

// PrepareLayout starts a pass with maxSize available to the whole table.
// It invalidates every handle of the previous pass.
func (l *TableLayout) PrepareLayout(maxSize Size) {
	l.generation++
	l.phase = PhaseMeasuring
	l.lines.Prepare(l.lineAxis.Major(maxSize))
	l.elements.Prepare(l.lineAxis.Minor(maxSize))
}

// Constraints returns the box constraints for the cell (line, element).
func (l *TableLayout) Constraints(line, element int) Constraints {
	lineMin, lineMax := l.lines.Constrains(line)
	elemMin, elemMax := l.elements.Constrains(element)
	return Constraints{
		Min: l.lineAxis.PackSize(lineMin, elemMin),
		Max: l.lineAxis.PackSize(lineMax, elemMax),
	}
}

// Layout measures the cell (line, element) and feeds the result back into
// both axes. The measured size is clamped to the cell's constraints and
// returned.
func (l *TableLayout) Layout(line, element int, measure MeasureFunc) Size {
	bc := l.Constraints(line, element)
	size := bc.Constrain(measure(bc))

	l.lines.SetSize(line, l.lineAxis.Major(size))
	l.elements.SetSize(element, l.lineAxis.Minor(size))
	return size
}

// LayoutRect returns the rectangle of the cell (line, element).
func (l *TableLayout) LayoutRect(line, element int) Rect {
	l1, l2 := l.lines.CurrentLayout(line)
	e1, e2 := l.elements.CurrentLayout(element)
	return RectFromPoints(l.lineAxis.PackPoint(l1, e1), l.lineAxis.PackPoint(l2, e2))
}

// AsCellOffset converts a table offset into the cell containing it.
func (l *TableLayout) AsCellOffset(offset Point) CellPosition {
	line := l.lines.AsCellOffset(l.lineAxis.MajorPos(offset))
	element := l.elements.AsCellOffset(l.lineAxis.MinorPos(offset))
	return CellPosition{
		Offset:  l.lineAxis.PackPoint(line.Offset, element.Offset),
		Line:    line.Index,
		Element: element.Index,
	}
}

// FromCellOffset is the inverse of AsCellOffset.
func (l *TableLayout) FromCellOffset(pos CellPosition) Point {
	line := l.lines.FromCellOffset(CellOffset{Offset: l.lineAxis.MajorPos(pos.Offset), Index: pos.Line})
	element := l.elements.FromCellOffset(CellOffset{Offset: l.lineAxis.MinorPos(pos.Offset), Index: pos.Element})
	return l.lineAxis.PackPoint(line, element)
}

// ClampOffset restricts offset to the table's extent.
func (l *TableLayout) ClampOffset(offset Point) Point {
	return l.lineAxis.PackPoint(
		l.lines.Clamp(l.lineAxis.MajorPos(offset)),
		l.elements.Clamp(l.lineAxis.MinorPos(offset)),
	)
}

// TableSize returns the total extent of the table.
func (l *TableLayout) TableSize() Size {
	return l.lineAxis.PackSize(l.lines.Size(), l.elements.Size())
}

// AxisDirection returns the physical axis along which a single entry of
// tableAxis extends: a line runs along the element direction and an element
// slot runs along the line direction.
func (l *TableLayout) AxisDirection(tableAxis TableAxis) Axis {
	if tableAxis == LineAxis {
		return l.lineAxis.Cross()
	}
	return l.lineAxis
}

// HeaderDirection returns the physical axis along which the header items of
// tableAxis advance. Each item's extent along it is the size of the
// matching part.
func (l *TableLayout) HeaderDirection(tableAxis TableAxis) Axis {
	if tableAxis == LineAxis {
		return l.lineAxis
	}
	return l.lineAxis.Cross()
}

// Lines returns the line axis layout.
func (l *TableLayout) Lines() *AxisLayout {
	return &l.lines
}

// Elements returns the element axis layout.
func (l *TableLayout) Elements() *AxisLayout {
	return &l.elements
}

// AxisLayout returns the layout of the given table axis.
func (l *TableLayout) AxisLayout(tableAxis TableAxis) *AxisLayout {
	if tableAxis == ElementAxis {
		return &l.elements
	}
	return &l.lines
}

// AddLine appends a line part.
func (l *TableLayout) AddLine(p AxisPart) {
	l.lines.AddPart(p)
	l.Invalidate()
}

// TruncateLines drops the line parts after the first count. It reports
// whether any part was dropped.
func (l *TableLayout) TruncateLines(count int) bool {
	if count >= l.lines.Len() {
		return false
	}
	l.lines.SetLength(max(count, 0), FlexPart())
	l.Invalidate()
	return true
}

// SetElementCount reconciles the element axis with the live element count.
// It reports whether the count changed.
func (l *TableLayout) SetElementCount(count int, template AxisPart) bool {
	if !l.elements.SetLength(count, template) {
		return false
	}
	l.Invalidate()
	return true
}
