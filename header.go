package table

import (
	"github.com/grindlemire/go-table/internal/debug"
)

// HeaderData is the value seen by a header widget: the table data, the
// index of the line or element it labels and the current part of that slot.
// A widget may replace Part during an event to resize its slot.
type HeaderData[T any] struct {
	Data  T
	Index int
	Part  AxisPart
}

// HeaderBuilder keeps the widgets of a header in step with the length of
// its axis. It returns the updated widget list.
type HeaderBuilder[T any] func(old, data T, length int, widgets []Widget[HeaderData[T]]) []Widget[HeaderData[T]]

// DynamicHeader returns a builder that adds or drops widgets so there is
// exactly one per slot.
func DynamicHeader[T any](build func(index int) Widget[HeaderData[T]]) HeaderBuilder[T] {
	return func(_, _ T, length int, widgets []Widget[HeaderData[T]]) []Widget[HeaderData[T]] {
		for len(widgets) < length {
			widgets = append(widgets, build(len(widgets)))
		}
		if len(widgets) > length {
			clear(widgets[length:])
			widgets = widgets[:length]
		}
		return widgets
	}
}

// Header is a strip of widgets labeling the lines or the elements of a
// table. Items advance along the header direction of the axis and take the
// size of the matching part.
type Header[T any] struct {
	tableAxis TableAxis
	widgets   []Widget[HeaderData[T]]
	builder   HeaderBuilder[T]
	rects     []Rect
	size      Size
}

func newHeader[T any](tableAxis TableAxis, builder HeaderBuilder[T]) *Header[T] {
	return &Header[T]{tableAxis: tableAxis, builder: builder}
}

// TableAxis returns the axis the header labels.
func (h *Header[T]) TableAxis() TableAxis {
	return h.tableAxis
}

// Widgets returns the header widgets.
func (h *Header[T]) Widgets() []Widget[HeaderData[T]] {
	return h.widgets
}

// Add appends a widget.
func (h *Header[T]) Add(w Widget[HeaderData[T]]) {
	h.widgets = append(h.widgets, w)
}

// Size returns the size computed by the last layout.
func (h *Header[T]) Size() Size {
	return h.size
}

// Rect returns the rectangle of item index in header coordinates.
func (h *Header[T]) Rect(index int) Rect {
	return h.rects[index]
}

// ItemAt returns the item under p, given in header coordinates.
func (h *Header[T]) ItemAt(p Point) (int, bool) {
	for i, r := range h.rects {
		if p.In(r) {
			return i, true
		}
	}
	return 0, false
}

// Resize turns slot index into a fixed part of the given size.
func (h *Header[T]) Resize(l *TableLayout, index int, size float64) {
	l.AxisLayout(h.tableAxis).SetPart(index, FixedPart(size))
	l.Invalidate()
}

func (h *Header[T]) count(l *TableLayout) int {
	return min(len(h.widgets), l.AxisLayout(h.tableAxis).Len())
}

func (h *Header[T]) data(l *TableLayout, data T, index int) HeaderData[T] {
	return HeaderData[T]{Data: data, Index: index, Part: l.AxisLayout(h.tableAxis).Part(index)}
}

func (h *Header[T]) update(old, data T, l *TableLayout) {
	if h.builder != nil {
		h.widgets = h.builder(old, data, l.AxisLayout(h.tableAxis).Len(), h.widgets)
	}
	for i := range h.count(l) {
		h.widgets[i].Update(h.data(l, data, i))
	}
}

// event delivers ev to every item. A widget that changes its part resizes
// the slot and invalidates the layout.
func (h *Header[T]) event(ev Event, data *T, l *TableLayout) bool {
	axis := l.AxisLayout(h.tableAxis)
	handled := false
	for i := range h.count(l) {
		part := axis.Part(i)
		hd := HeaderData[T]{Data: *data, Index: i, Part: part}
		if h.widgets[i].Event(ev, &hd) {
			handled = true
		}
		*data = hd.Data
		if !part.Same(hd.Part) {
			debug.Log("header: %s %d resized to %.1f", h.tableAxis, i, hd.Part.Size())
			axis.SetPart(i, hd.Part)
			l.Invalidate()
		}
	}
	return handled
}

// layout places the items after a table pass. cross is the header's
// thickness.
func (h *Header[T]) layout(l *TableLayout, cross float64, data T) Size {
	axis := l.HeaderDirection(h.tableAxis)
	n := h.count(l)
	h.rects = setLen(h.rects, n, func() Rect { return Rect{} })

	advance := 0.0
	for i := range n {
		hd := h.data(l, data, i)
		extent := hd.Part.Size()
		bc := Constraints{
			Min: axis.PackSize(extent, 0),
			Max: axis.PackSize(extent, cross),
		}
		h.widgets[i].Measure(bc, hd)

		origin := axis.PackPoint(advance, 0)
		size := axis.PackSize(extent, cross)
		h.rects[i] = NewRect(origin.X, origin.Y, size.Width, size.Height)
		advance += extent
	}

	h.size = axis.PackSize(advance, cross)
	return h.size
}

// paint draws the items intersecting visible, in header coordinates.
func (h *Header[T]) paint(s Surface, data T, visible Rect, l *TableLayout) {
	area := NewRect(0, 0, h.size.Width, h.size.Height).Intersect(visible)
	if area.IsEmpty() {
		return
	}
	s.Fill(area, RoleHeader)

	axis := l.HeaderDirection(h.tableAxis)
	crossStart, crossEnd := axis.MinorSpan(area)
	for i := range min(len(h.rects), h.count(l)) {
		r := h.rects[i]
		if !r.Intersects(visible) {
			continue
		}
		h.widgets[i].Paint(s, r, h.data(l, data, i))

		start, end := axis.MajorSpan(r)
		if i == 0 {
			s.Line(axis.PackPoint(start, crossStart), axis.PackPoint(start, crossEnd), RoleGrid)
		}
		s.Line(axis.PackPoint(end, crossStart), axis.PackPoint(end, crossEnd), RoleGrid)
	}
}
