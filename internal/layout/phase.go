package layout

import "fmt"

// Phase is the position of a TableLayout in its per-pass state machine.
type Phase uint8

const (
	PhaseIdle      Phase = iota // No pass in progress or the last one was invalidated
	PhaseMeasuring              // Prepared; cells are being measured
	PhaseArranged               // Measurement finished; geometry is final
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMeasuring:
		return "measuring"
	case PhaseArranged:
		return "arranged"
	default:
		return "idle"
	}
}

// Phase returns the current phase.
func (l *TableLayout) Phase() Phase {
	return l.phase
}

// Invalidate drops the current pass, e.g. after a structural change or a
// manual part resize. Outstanding handles become unusable.
func (l *TableLayout) Invalidate() {
	l.phase = PhaseIdle
}

// Begin starts a layout pass with maxSize available and returns the handle
// through which cells are measured.
func (l *TableLayout) Begin(maxSize Size) *Measurement {
	l.PrepareLayout(maxSize)
	return &Measurement{layout: l, generation: l.generation}
}

// Measurement is the measure phase of one pass. Cells may be measured in any
// order; growth is monotonic so the result does not depend on it.
type Measurement struct {
	layout     *TableLayout
	generation uint64
	measured   int
}

// Constraints returns the current constraints of a cell.
func (m *Measurement) Constraints(line, element int) Constraints {
	m.live()
	return m.layout.Constraints(line, element)
}

// Measure measures one cell. See TableLayout.Layout.
func (m *Measurement) Measure(line, element int, measure MeasureFunc) Size {
	m.live()
	m.measured++
	return m.layout.Layout(line, element, measure)
}

// Measured returns how many cells were measured so far.
func (m *Measurement) Measured() int {
	return m.measured
}

// Finish ends the measure phase. The Measurement must not be used afterwards.
func (m *Measurement) Finish() *Arrangement {
	m.live()
	m.layout.phase = PhaseArranged
	return &Arrangement{layout: m.layout, generation: m.generation}
}

func (m *Measurement) live() {
	if m.layout.generation != m.generation || m.layout.phase != PhaseMeasuring {
		panic(fmt.Sprintf("layout: measurement of pass %d used while layout is %s in pass %d",
			m.generation, m.layout.phase, m.layout.generation))
	}
}

// Arrangement is the read-only result of a finished pass. It stays valid
// until the next pass starts or the layout is invalidated.
type Arrangement struct {
	layout     *TableLayout
	generation uint64
}

// Valid reports whether the arrangement still reflects the layout.
func (a *Arrangement) Valid() bool {
	return a != nil && a.layout.generation == a.generation && a.layout.phase == PhaseArranged
}

// Rect returns the rectangle of the cell (line, element).
func (a *Arrangement) Rect(line, element int) Rect {
	a.live()
	return a.layout.LayoutRect(line, element)
}

// TableSize returns the total extent of the table.
func (a *Arrangement) TableSize() Size {
	a.live()
	return a.layout.TableSize()
}

// AsCellOffset converts a table offset into the cell containing it.
func (a *Arrangement) AsCellOffset(offset Point) CellPosition {
	a.live()
	return a.layout.AsCellOffset(offset)
}

// FromCellOffset converts a cell position back into a table offset.
func (a *Arrangement) FromCellOffset(pos CellPosition) Point {
	a.live()
	return a.layout.FromCellOffset(pos)
}

// VisibleCells returns the cells intersecting viewport.
func (a *Arrangement) VisibleCells(viewport Rect) CellRange {
	a.live()
	return a.layout.VisibleCells(viewport)
}

// Part returns a part of the given table axis.
func (a *Arrangement) Part(tableAxis TableAxis, index int) AxisPart {
	a.live()
	return a.layout.AxisLayout(tableAxis).Part(index)
}

// Boundaries returns the cumulative part edges of the given table axis.
func (a *Arrangement) Boundaries(tableAxis TableAxis) []float64 {
	a.live()
	return a.layout.AxisLayout(tableAxis).Boundaries()
}

// Len returns the number of parts of the given table axis.
func (a *Arrangement) Len(tableAxis TableAxis) int {
	a.live()
	return a.layout.AxisLayout(tableAxis).Len()
}

// LineAxis returns the physical axis along which lines are stacked.
func (a *Arrangement) LineAxis() Axis {
	return a.layout.lineAxis
}

func (a *Arrangement) live() {
	if !a.Valid() {
		panic(fmt.Sprintf("layout: arrangement of pass %d used while layout is %s in pass %d",
			a.generation, a.layout.phase, a.layout.generation))
	}
}
