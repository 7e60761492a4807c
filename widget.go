package table

// Event is a host event delivered to lines and widgets. The engine only
// interprets ScrollEvent; everything else is passed through.
type Event any

// ScrollEvent pans a HeaderTable by Delta.
type ScrollEvent struct {
	Delta Point
}

// Widget is a single cell of type V.
type Widget[V any] interface {
	// Event handles ev and may modify v. It reports whether ev was consumed.
	Event(ev Event, v *V) bool
	// Update is called whenever the backing data may have changed.
	Update(v V)
	// Measure returns the size the cell wants under bc.
	Measure(bc Constraints, v V) Size
	// Paint draws the cell into r.
	Paint(s Surface, r Rect, v V)
}

// Label is a text cell. Format turns the cell value into text; a nil Format
// uses fmt's default formatting.
type Label[V any] struct {
	Format   func(V) string
	Measurer TextMeasurer
	Role     Role
	Padding  Size // Added to the measured text on both sides
}

// NewLabel returns a label constructor suitable for NewWidgetLine.
func NewLabel[V any](m TextMeasurer, role Role, format func(V) string) func() Widget[V] {
	return func() Widget[V] {
		return &Label[V]{Format: format, Measurer: m, Role: role}
	}
}

// Text returns the text shown for v.
func (l *Label[V]) Text(v V) string {
	if l.Format != nil {
		return l.Format(v)
	}
	return sprint(v)
}

func (l *Label[V]) Event(Event, *V) bool { return false }

func (l *Label[V]) Update(V) {}

func (l *Label[V]) Measure(bc Constraints, v V) Size {
	var s Size
	if l.Measurer != nil {
		s = l.Measurer.MeasureText(l.Text(v))
	}
	s.Width += 2 * l.Padding.Width
	s.Height += 2 * l.Padding.Height
	return bc.Constrain(s)
}

func (l *Label[V]) Paint(s Surface, r Rect, v V) {
	inner := NewRect(
		r.X+l.Padding.Width,
		r.Y+l.Padding.Height,
		max(r.Width-2*l.Padding.Width, 0),
		max(r.Height-2*l.Padding.Height, 0),
	)
	s.Text(inner, l.Text(v), l.Role)
}
