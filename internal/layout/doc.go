// Package layout implements a pure-Go table layout engine.
//
// A table is two independent one-dimensional sizing problems: the line axis,
// along which lines are stacked, and the element axis, along which the cells
// of a line run. Each axis is an [AxisLayout], a sequence of [AxisPart] values
// that are either fixed or grown greedily from cell measurements during a
// layout pass. [TableLayout] binds the two axes to a physical [Axis] and
// converts between scroll offsets and cell positions so headers and
// virtualized content stay aligned with the body.
//
// Types are re-exported through the root table package for public consumption.
//
// The main entry point is [TableLayout.Begin], which starts a pass and returns
// a [Measurement]; finishing it yields an [Arrangement] with final geometry.
package layout
