package table

import (
	"fmt"

	"github.com/grindlemire/go-table/internal/debug"
	"github.com/grindlemire/go-table/internal/layout"
)

// Table drives the lines of a table through the measure and arrange phases
// of a shared TableLayout.
//
// A Table is not safe for concurrent use; hosts call it from their UI
// goroutine.
type Table[T any] struct {
	layout  *layout.TableLayout
	content Content[T]

	policy      Policy[T]
	controller  Controller[T]
	painter     Painter[T]
	elementPart AxisPart

	arrangement *Arrangement
	attached    bool
}

// New creates an empty table.
func New[T any](opts ...Option) (*Table[T], error) {
	s, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return newTable[T](s)
}

func newTable[T any](s settings) (*Table[T], error) {
	policy, err := collaborator[Policy[T]](s.policy, Static[T]{}, "policy")
	if err != nil {
		return nil, err
	}
	controller, err := collaborator[Controller[T]](s.controller, DefaultController[T]{}, "controller")
	if err != nil {
		return nil, err
	}
	painter, err := collaborator[Painter[T]](s.painter, DefaultPainter[T]{}, "painter")
	if err != nil {
		return nil, err
	}

	return &Table[T]{
		layout:      layout.NewTableLayout(s.lineAxis),
		policy:      policy,
		controller:  controller,
		painter:     painter,
		elementPart: s.elementPart,
	}, nil
}

// AddLine appends a line sized by v: Auto for a flexible line, Fixed for an
// explicit size, Percent for a share of the available size.
func (t *Table[T]) AddLine(line Line[T], v Value) *Table[T] {
	t.content.lines = append(t.content.lines, line)
	t.layout.AddLine(v.Part())
	return t
}

// TruncateLines drops every line after the first n.
func (t *Table[T]) TruncateLines(n int) {
	if n >= len(t.content.lines) {
		return
	}
	n = max(n, 0)
	clear(t.content.lines[n:])
	t.content.lines = t.content.lines[:n]
	t.layout.TruncateLines(n)
}

// LineCount returns the number of lines.
func (t *Table[T]) LineCount() int {
	return len(t.content.lines)
}

// Content returns the lines of the table.
func (t *Table[T]) Content() *Content[T] {
	return &t.content
}

// TableLayout returns the layout shared with headers.
func (t *Table[T]) TableLayout() *TableLayout {
	return t.layout
}

// Arrangement returns the result of the last layout pass, or nil when the
// layout changed since.
func (t *Table[T]) Arrangement() *Arrangement {
	if !t.arrangement.Valid() {
		return nil
	}
	return t.arrangement
}

// ElementCount returns the element count shared by all lines. It returns a
// *LineLengthError if a line disagrees with the first one.
func (t *Table[T]) ElementCount(data T) (int, error) {
	if len(t.content.lines) == 0 {
		return 0, nil
	}
	want := t.content.lines[0].ElementCount(data)
	for i, line := range t.content.lines[1:] {
		if got := line.ElementCount(data); got != want {
			return 0, &LineLengthError{Line: i + 1, Got: got, Want: want}
		}
	}
	return want, nil
}

// Attach prepares the lines for data for the first time. The policy sees
// the zero value as the old data. It panics if the lines differ in length.
func (t *Table[T]) Attach(data T) {
	var zero T
	t.policy.Update(zero, data, t)
	for _, line := range t.content.lines {
		line.Update(data)
	}
	t.reconcile(data)
	t.attached = true
}

// Update consults the policy, synchronizes every line with data and
// reconciles the element axis. It panics if the lines differ in length.
func (t *Table[T]) Update(old, data T) {
	if !t.attached {
		t.Attach(data)
		return
	}
	t.policy.Update(old, data, t)
	for _, line := range t.content.lines {
		line.Update(data)
	}
	t.reconcile(data)
}

func (t *Table[T]) reconcile(data T) {
	elements, err := t.ElementCount(data)
	if err != nil {
		panic(err)
	}
	if t.layout.SetElementCount(elements, t.elementPart) {
		debug.Log("table: %d lines, element count now %d", len(t.content.lines), elements)
	}
}

// Event passes ev to the controller. It reports whether ev was consumed.
func (t *Table[T]) Event(ev Event, data *T) bool {
	return t.controller.Event(ev, data, &t.content, t.layout)
}

// Layout runs one full layout pass within maxSize and returns the table size.
// Lines are measured in declaration order, then arranged.
func (t *Table[T]) Layout(maxSize Size, data T) Size {
	m := t.layout.Begin(maxSize)
	for i, line := range t.content.lines {
		line.Measure(m, data, i)
	}
	a := m.Finish()
	for i, line := range t.content.lines {
		line.Arrange(a, data, i)
	}
	t.arrangement = a

	size := a.TableSize()
	debug.Log("table: pass measured %d cells, size %.1fx%.1f", m.Measured(), size.Width, size.Height)
	return size
}

// NeedsLayout reports whether geometry must be recomputed before painting.
func (t *Table[T]) NeedsLayout() bool {
	return !t.arrangement.Valid()
}

// Paint paints the part of the table inside viewport, given in table
// coordinates. It panics if the table was not laid out since its last
// structural change.
func (t *Table[T]) Paint(s Surface, data T, viewport Rect) {
	if !t.arrangement.Valid() {
		panic(fmt.Sprintf("table: Paint called while layout is %s", t.layout.Phase()))
	}
	t.painter.Paint(s, data, viewport, &t.content, t.arrangement)
}
