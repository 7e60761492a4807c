package table

import (
	"math"
)

// HeaderTable is a scrollable table with a line header and an element
// header pinned to its edges. It owns the single TableLayout and hands it to
// the body and both headers on every call, so all three always agree on part
// sizes and on the scroll position.
//
// Layout coordinates of a HeaderTable put the corner at the origin. With a
// vertical line axis the element header is the top strip and the line header
// the left strip.
type HeaderTable[T any] struct {
	table         *Table[T]
	lineHeader    *Header[T]
	elementHeader *Header[T]

	lineHeaderWidth    float64
	elementHeaderWidth float64
	sticky             bool
	bounded            bool

	offset   Point // Scroll origin of the body in table coordinates
	viewport Size  // Visible body size
}

// NewHeaderTable creates an empty header table.
func NewHeaderTable[T any](opts ...Option) (*HeaderTable[T], error) {
	s, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	t, err := newTable[T](s)
	if err != nil {
		return nil, err
	}
	lineHeaders, err := collaborator[HeaderBuilder[T]](s.lineHeaders, nil, "line header builder")
	if err != nil {
		return nil, err
	}
	elementHeaders, err := collaborator[HeaderBuilder[T]](s.elementHeaders, nil, "element header builder")
	if err != nil {
		return nil, err
	}

	return &HeaderTable[T]{
		table:              t,
		lineHeader:         newHeader(LineAxis, lineHeaders),
		elementHeader:      newHeader(ElementAxis, elementHeaders),
		lineHeaderWidth:    s.lineHeaderWidth,
		elementHeaderWidth: s.elementHeaderWidth,
		sticky:             s.sticky,
		bounded:            s.boundedBody,
	}, nil
}

// AddLine appends a line sized by v together with its line header widget,
// which may be nil when the line header is built dynamically.
func (h *HeaderTable[T]) AddLine(line Line[T], v Value, header Widget[HeaderData[T]]) *HeaderTable[T] {
	h.table.AddLine(line, v)
	if header != nil {
		h.lineHeader.Add(header)
	}
	return h
}

// Table returns the body.
func (h *HeaderTable[T]) Table() *Table[T] {
	return h.table
}

// TableLayout returns the layout shared by the body and the headers.
func (h *HeaderTable[T]) TableLayout() *TableLayout {
	return h.table.layout
}

// LineHeader returns the header labeling the lines.
func (h *HeaderTable[T]) LineHeader() *Header[T] {
	return h.lineHeader
}

// ElementHeader returns the header labeling the elements.
func (h *HeaderTable[T]) ElementHeader() *Header[T] {
	return h.elementHeader
}

func (h *HeaderTable[T]) lineAxis() Axis {
	return h.table.layout.LineAxis()
}

// Attach prepares the body and the headers for data.
func (h *HeaderTable[T]) Attach(data T) {
	h.table.Attach(data)
	h.lineHeader.update(data, data, h.table.layout)
	h.elementHeader.update(data, data, h.table.layout)
}

// Update synchronizes the body and the headers with data.
func (h *HeaderTable[T]) Update(old, data T) {
	h.table.Update(old, data)
	h.lineHeader.update(old, data, h.table.layout)
	h.elementHeader.update(old, data, h.table.layout)
}

// Event delivers ev to the body, then to both headers. A ScrollEvent nobody
// consumed pans the body.
func (h *HeaderTable[T]) Event(ev Event, data *T) bool {
	l := h.table.layout
	handled := h.table.Event(ev, data)
	if h.lineHeader.event(ev, data, l) {
		handled = true
	}
	if h.elementHeader.event(ev, data, l) {
		handled = true
	}
	if se, ok := ev.(ScrollEvent); ok && !handled {
		h.ScrollBy(se.Delta)
		return true
	}
	return handled
}

// Resize turns slot index of tableAxis into a fixed part of size.
func (h *HeaderTable[T]) Resize(tableAxis TableAxis, index int, size float64) {
	header := h.lineHeader
	if tableAxis == ElementAxis {
		header = h.elementHeader
	}
	header.Resize(h.table.layout, index, size)
}

// NeedsLayout reports whether Layout must run before painting.
func (h *HeaderTable[T]) NeedsLayout() bool {
	return h.table.NeedsLayout()
}

// headerSpace is the size of the corner where both headers meet.
func (h *HeaderTable[T]) headerSpace() Size {
	return h.lineAxis().PackSize(h.elementHeaderWidth, h.lineHeaderWidth)
}

// Layout lays out the body and the headers within maxSize and returns the
// size used. An unbounded component of maxSize fits the table along it.
//
// The scroll origin keeps pointing at the same cell across the pass: it is
// converted into a cell offset before and back after. A viewport scrolled to
// the far edge of an axis stays there when sticky edges are enabled.
func (h *HeaderTable[T]) Layout(maxSize Size, data T) Size {
	l := h.table.layout
	la := l.LineAxis()
	space := h.headerSpace()
	viewport := maxSize.Sub(space)

	lines := captureAnchor(l.Lines(), la.MajorPos(h.offset), la.Major(h.viewport))
	elements := captureAnchor(l.Elements(), la.MinorPos(h.offset), la.Minor(h.viewport))

	budget := Size{Width: math.Inf(1), Height: math.Inf(1)}
	if h.bounded {
		budget = viewport
	}
	tableSize := h.table.Layout(budget, data)

	if math.IsInf(viewport.Width, 1) {
		viewport.Width = tableSize.Width
	}
	if math.IsInf(viewport.Height, 1) {
		viewport.Height = tableSize.Height
	}
	h.viewport = viewport

	h.offset = la.PackPoint(
		lines.restore(l.Lines(), la.Major(viewport), h.sticky),
		elements.restore(l.Elements(), la.Minor(viewport), h.sticky),
	)

	h.lineHeader.layout(l, h.lineHeaderWidth, data)
	h.elementHeader.layout(l, h.elementHeaderWidth, data)

	return space.Add(viewport)
}

// Offset returns the scroll origin of the body in table coordinates.
func (h *HeaderTable[T]) Offset() Point {
	return h.offset
}

// Viewport returns the visible part of the body in table coordinates.
func (h *HeaderTable[T]) Viewport() Rect {
	return NewRect(h.offset.X, h.offset.Y, h.viewport.Width, h.viewport.Height)
}

// BodyRect returns the body's area in header table coordinates.
func (h *HeaderTable[T]) BodyRect() Rect {
	o := h.headerSpace()
	return NewRect(o.Width, o.Height, h.viewport.Width, h.viewport.Height)
}

// LineHeaderRect returns the line header's area in header table coordinates.
func (h *HeaderTable[T]) LineHeaderRect() Rect {
	la := h.lineAxis()
	origin := la.PackPoint(h.elementHeaderWidth, 0)
	size := la.PackSize(la.Major(h.viewport), h.lineHeaderWidth)
	return NewRect(origin.X, origin.Y, size.Width, size.Height)
}

// ElementHeaderRect returns the element header's area in header table
// coordinates.
func (h *HeaderTable[T]) ElementHeaderRect() Rect {
	la := h.lineAxis()
	origin := la.PackPoint(0, h.lineHeaderWidth)
	size := la.PackSize(h.elementHeaderWidth, la.Minor(h.viewport))
	return NewRect(origin.X, origin.Y, size.Width, size.Height)
}

// CornerRect returns the area where both headers meet.
func (h *HeaderTable[T]) CornerRect() Rect {
	s := h.headerSpace()
	return NewRect(0, 0, s.Width, s.Height)
}

// LineHeaderPan returns the offset the line header is scrolled by. It
// follows the body along the line axis only.
func (h *HeaderTable[T]) LineHeaderPan() Point {
	la := h.lineAxis()
	return la.PackPoint(la.MajorPos(h.offset), 0)
}

// ElementHeaderPan returns the offset the element header is scrolled by. It
// follows the body across the line axis only.
func (h *HeaderTable[T]) ElementHeaderPan() Point {
	la := h.lineAxis()
	return la.PackPoint(0, la.MinorPos(h.offset))
}

// maxOffset returns the largest valid scroll origin.
func (h *HeaderTable[T]) maxOffset() Point {
	size := h.table.layout.TableSize()
	return Point{
		X: max(size.Width-h.viewport.Width, 0),
		Y: max(size.Height-h.viewport.Height, 0),
	}
}

// ScrollTo pans the body to p, clamped to the table. Both headers follow.
// It reports whether the offset changed.
func (h *HeaderTable[T]) ScrollTo(p Point) bool {
	limit := h.maxOffset()
	next := Point{X: clampf(p.X, 0, limit.X), Y: clampf(p.Y, 0, limit.Y)}
	if next == h.offset {
		return false
	}
	h.offset = next
	return true
}

// ScrollBy pans the body by d.
func (h *HeaderTable[T]) ScrollBy(d Point) bool {
	return h.ScrollTo(h.offset.Add(d))
}

// ScrollToView pans the minimal distance that makes r, in table coordinates,
// visible along each of axes. With no axes both are used.
func (h *HeaderTable[T]) ScrollToView(r Rect, axes ...Axis) bool {
	if len(axes) == 0 {
		axes = []Axis{Horizontal, Vertical}
	}
	next := h.offset
	for _, ax := range axes {
		start, end := ax.MajorSpan(r)
		pos := reveal(ax.MajorPos(next), ax.Major(h.viewport), start, end)
		if ax == Horizontal {
			next.X = pos
		} else {
			next.Y = pos
		}
	}
	return h.ScrollTo(next)
}

// ScrollToCell makes the cell (line, element) visible.
func (h *HeaderTable[T]) ScrollToCell(line, element int) bool {
	return h.ScrollToView(h.table.layout.LayoutRect(line, element))
}

// ScrollToHeaderItem makes the slot index of tableAxis visible. Only the
// direction the header scrolls in is panned.
func (h *HeaderTable[T]) ScrollToHeaderItem(tableAxis TableAxis, index int) bool {
	l := h.table.layout
	start, end := l.AxisLayout(tableAxis).CurrentLayout(index)
	ax := l.HeaderDirection(tableAxis)
	origin := ax.PackPoint(start, 0)
	size := ax.PackSize(end-start, 0)
	return h.ScrollToView(NewRect(origin.X, origin.Y, size.Width, size.Height), ax)
}

// CellAt returns the body cell under p, given in header table coordinates.
func (h *HeaderTable[T]) CellAt(p Point) (CellPosition, bool) {
	body := h.BodyRect()
	if !p.In(body) {
		return CellPosition{}, false
	}
	return h.table.layout.CellAt(p.Sub(body.Origin()).Add(h.offset))
}

// CellRect returns the visible part of cell (line, element) in header table
// coordinates. It is empty when the cell is scrolled out of view.
func (h *HeaderTable[T]) CellRect(line, element int) Rect {
	body := h.BodyRect()
	r := h.table.layout.LayoutRect(line, element)
	return r.Translate(body.Origin().Sub(h.offset)).Intersect(body)
}

// Paint paints the body, both headers and the corner. The body and each
// header are clipped to their own area.
func (h *HeaderTable[T]) Paint(s Surface, data T) {
	l := h.table.layout

	body := h.BodyRect()
	withState(s, func() {
		s.Clip(body)
		s.Translate(body.Origin().Sub(h.offset))
		h.table.Paint(s, data, h.Viewport())
	})

	h.paintHeader(s, data, h.lineHeader, h.LineHeaderRect(), h.LineHeaderPan(), l)
	h.paintHeader(s, data, h.elementHeader, h.ElementHeaderRect(), h.ElementHeaderPan(), l)

	if corner := h.CornerRect(); !corner.IsEmpty() {
		s.Fill(corner, RoleCorner)
	}
}

func (h *HeaderTable[T]) paintHeader(s Surface, data T, header *Header[T], area Rect, pan Point, l *TableLayout) {
	if area.IsEmpty() {
		return
	}
	withState(s, func() {
		s.Clip(area)
		s.Translate(area.Origin().Sub(pan))
		header.paint(s, data, NewRect(pan.X, pan.Y, area.Width, area.Height), l)
	})
}

// anchor is a scroll position along one axis expressed as a cell offset.
type anchor struct {
	cell   CellOffset
	pinned bool // Scrolled to the far edge
	ok     bool
}

func captureAnchor(a *AxisLayout, offset, viewport float64) anchor {
	size := a.Size()
	if a.Len() == 0 || size <= 0 {
		return anchor{}
	}
	offset = a.Clamp(offset)
	cell, ok := a.IndexAt(offset)
	if !ok {
		cell = a.AsCellOffset(offset)
	}
	return anchor{
		cell:   cell,
		pinned: size > viewport && offset >= size-viewport,
		ok:     true,
	}
}

// restore converts the anchor back into an offset on the re-laid-out axis.
// The offset inside the cell is clamped to the cell's new size.
func (an anchor) restore(a *AxisLayout, viewport float64, sticky bool) float64 {
	limit := max(a.Size()-viewport, 0)
	switch {
	case !an.ok:
		return 0
	case an.pinned && sticky:
		return limit
	case an.cell.Index >= a.Len():
		return limit
	}
	within := min(an.cell.Offset, a.Part(an.cell.Index).Size())
	return clampf(a.FromCellOffset(CellOffset{Offset: within, Index: an.cell.Index}), 0, limit)
}

// reveal returns the scroll position closest to pos that shows [start, end)
// in a viewport of the given length, preferring the start when it does not fit.
func reveal(pos, length, start, end float64) float64 {
	switch {
	case start < pos:
		return start
	case end > pos+length:
		return min(start, end-length)
	default:
		return pos
	}
}

func clampf(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
