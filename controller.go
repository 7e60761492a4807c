package table

// Controller receives every event of a table before the lines do.
type Controller[T any] interface {
	Event(ev Event, data *T, content *Content[T], l *TableLayout) bool
}

// DefaultController forwards events to the lines in declaration order.
type DefaultController[T any] struct{}

// Event implements Controller.
func (DefaultController[T]) Event(ev Event, data *T, content *Content[T], _ *TableLayout) bool {
	return content.Event(ev, data)
}

// ControllerFunc adapts a function to Controller.
type ControllerFunc[T any] func(ev Event, data *T, content *Content[T], l *TableLayout) bool

// Event calls f.
func (f ControllerFunc[T]) Event(ev Event, data *T, content *Content[T], l *TableLayout) bool {
	return f(ev, data, content, l)
}
