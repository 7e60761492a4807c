package table

import "github.com/grindlemire/go-table/internal/debug"

// Line is one line of a table: a row when lines are stacked vertically, a
// column otherwise. All lines of a table must report the same element count.
type Line[T any] interface {
	// ElementCount returns how many cells the line holds for data.
	ElementCount(data T) int
	// Update synchronizes the line's cells with data.
	Update(data T)
	// Event delivers ev to the cells. It reports whether ev was consumed.
	Event(ev Event, data *T) bool
	// Measure measures every cell of the line during the measure phase.
	Measure(m *Measurement, data T, line int)
	// Arrange reads back the final cell rectangles.
	Arrange(a *Arrangement, data T, line int)
	// Paint paints the cells of elements.
	Paint(s Surface, data T, line int, elements Span)
}

// WidgetLine is a Line whose cells are widgets of type V built from a slice
// extracted from the table data.
type WidgetLine[T, V any] struct {
	items   func(T) []V
	set     func(data *T, index int, v V)
	build   func() Widget[V]
	widgets []Widget[V]
	rects   []Rect
}

// NewWidgetLine creates a line showing items(data), one widget per item.
func NewWidgetLine[T, V any](items func(T) []V, build func() Widget[V]) *WidgetLine[T, V] {
	return &WidgetLine[T, V]{items: items, build: build}
}

// WithSetter makes events able to write modified items back into the data.
func (l *WidgetLine[T, V]) WithSetter(set func(data *T, index int, v V)) *WidgetLine[T, V] {
	l.set = set
	return l
}

// Widgets returns the line's widgets.
func (l *WidgetLine[T, V]) Widgets() []Widget[V] {
	return l.widgets
}

// Rect returns the arranged rectangle of element index.
func (l *WidgetLine[T, V]) Rect(index int) Rect {
	return l.rects[index]
}

// ElementCount implements Line.
func (l *WidgetLine[T, V]) ElementCount(data T) int {
	return len(l.items(data))
}

// Update implements Line. It adds or drops widgets to match the data.
func (l *WidgetLine[T, V]) Update(data T) {
	items := l.items(data)
	if n := len(items); n != len(l.widgets) {
		debug.Log("widget line: %d -> %d widgets", len(l.widgets), n)
		l.widgets = setLen(l.widgets, n, l.build)
	}
	for i, w := range l.widgets {
		w.Update(items[i])
	}
}

// Event implements Line.
func (l *WidgetLine[T, V]) Event(ev Event, data *T) bool {
	items := l.items(*data)
	handled := false
	for i := range min(len(items), len(l.widgets)) {
		v := items[i]
		if !l.widgets[i].Event(ev, &v) {
			continue
		}
		handled = true
		if l.set != nil {
			l.set(data, i, v)
		}
	}
	return handled
}

// Measure implements Line.
func (l *WidgetLine[T, V]) Measure(m *Measurement, data T, line int) {
	items := l.items(data)
	for i := range min(len(items), len(l.widgets)) {
		w, v := l.widgets[i], items[i]
		m.Measure(line, i, func(bc Constraints) Size {
			return w.Measure(bc, v)
		})
	}
}

// Arrange implements Line.
func (l *WidgetLine[T, V]) Arrange(a *Arrangement, _ T, line int) {
	l.rects = setLen(l.rects, len(l.widgets), func() Rect { return Rect{} })
	for i := range l.rects {
		l.rects[i] = a.Rect(line, i)
	}
}

// Paint implements Line.
func (l *WidgetLine[T, V]) Paint(s Surface, data T, _ int, elements Span) {
	items := l.items(data)
	end := min(elements.End, len(items), len(l.widgets), len(l.rects))
	for i := max(elements.Start, 0); i < end; i++ {
		l.widgets[i].Paint(s, l.rects[i], items[i])
	}
}
