// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package table

import "github.com/grindlemire/go-table/internal/layout"

// Axis is a physical screen axis.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// TableAxis names the line or element axis independent of orientation.
type TableAxis = layout.TableAxis

const (
	LineAxis    = layout.LineAxis
	ElementAxis = layout.ElementAxis
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Constraints bounds the size a cell may take.
type Constraints = layout.Constraints

// AxisPart is the sizing state of one line or element slot.
type AxisPart = layout.AxisPart

// AxisLayout sizes the parts of one table axis.
type AxisLayout = layout.AxisLayout

// TableLayout composes the line and element axes of a table.
type TableLayout = layout.TableLayout

// CellOffset is a part index plus the offset inside that part.
type CellOffset = layout.CellOffset

// CellPosition is a cell plus the offset inside that cell.
type CellPosition = layout.CellPosition

// MeasureFunc measures a cell under the given constraints.
type MeasureFunc = layout.MeasureFunc

// Measurement is the measure phase handle of a layout pass.
type Measurement = layout.Measurement

// Arrangement is the read-only result of a finished layout pass.
type Arrangement = layout.Arrangement

// Phase is the position of a TableLayout in its per-pass state machine.
type Phase = layout.Phase

const (
	PhaseIdle      = layout.PhaseIdle
	PhaseMeasuring = layout.PhaseMeasuring
	PhaseArranged  = layout.PhaseArranged
)

// Span is a half-open index range.
type Span = layout.Span

// CellRange is a rectangular block of cells.
type CellRange = layout.CellRange

// Fixed creates a Value with a fixed size.
func Fixed(n float64) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// FixedPart creates a part that always has the given size.
func FixedPart(size float64) AxisPart {
	return layout.FixedPart(size)
}

// FlexPart creates a part sized by its measurements.
func FlexPart() AxisPart {
	return layout.FlexPart()
}

// BoundedPart creates a flexible part limited to [minSize, maxSize].
func BoundedPart(minSize, maxSize float64) AxisPart {
	return layout.BoundedPart(minSize, maxSize)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewTableLayout creates an empty layout whose lines are stacked along lineAxis.
func NewTableLayout(lineAxis Axis) *TableLayout {
	return layout.NewTableLayout(lineAxis)
}

// Tight returns constraints that only allow s.
func Tight(s Size) Constraints {
	return layout.Tight(s)
}

// Loose returns constraints from zero up to s.
func Loose(s Size) Constraints {
	return layout.Loose(s)
}

// Unbounded returns constraints with no upper limit.
func Unbounded() Constraints {
	return layout.Unbounded()
}
