package table

import "fmt"

// Option is a functional option for configuring a Table or HeaderTable.
type Option func(*settings) error

type settings struct {
	lineAxis    Axis
	elementPart AxisPart

	policy     any // Policy[T]
	controller any // Controller[T]
	painter    any // Painter[T]

	lineHeaderWidth    float64
	elementHeaderWidth float64
	lineHeaders        any // HeaderBuilder[T]
	elementHeaders     any // HeaderBuilder[T]
	sticky             bool
	boundedBody        bool
}

func defaultSettings() settings {
	return settings{
		lineAxis:    Vertical,
		elementPart: FlexPart(),
		sticky:      true,
	}
}

func applyOptions(opts []Option) (settings, error) {
	s := defaultSettings()
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return s, err
		}
	}
	return s, nil
}

// collaborator returns v as a C, or def when v is unset.
func collaborator[C any](v any, def C, name string) (C, error) {
	if v == nil {
		return def, nil
	}
	c, ok := v.(C)
	if !ok {
		var zero C
		return zero, fmt.Errorf("%s %T does not match the table data type", name, v)
	}
	return c, nil
}

// WithLineAxis sets the physical axis along which lines are stacked.
// Default is Vertical: lines are rows and elements are columns.
func WithLineAxis(a Axis) Option {
	return func(s *settings) error {
		if a != Horizontal && a != Vertical {
			return fmt.Errorf("invalid line axis %d", a)
		}
		s.lineAxis = a
		return nil
	}
}

// WithElementPart sets the template part used for element slots added when
// the element count grows. Default is a flexible part.
func WithElementPart(p AxisPart) Option {
	return func(s *settings) error {
		s.elementPart = p
		return nil
	}
}

// WithPolicy sets the policy consulted on every data update.
// Default is Static.
func WithPolicy[T any](p Policy[T]) Option {
	return func(s *settings) error {
		if p == nil {
			return fmt.Errorf("policy must not be nil")
		}
		s.policy = p
		return nil
	}
}

// WithController sets the controller receiving table events.
// Default is DefaultController.
func WithController[T any](c Controller[T]) Option {
	return func(s *settings) error {
		if c == nil {
			return fmt.Errorf("controller must not be nil")
		}
		s.controller = c
		return nil
	}
}

// WithPainter sets the painter of the table body.
// Default is DefaultPainter with grid lines.
func WithPainter[T any](p Painter[T]) Option {
	return func(s *settings) error {
		if p == nil {
			return fmt.Errorf("painter must not be nil")
		}
		s.painter = p
		return nil
	}
}

// WithLineHeader reserves width for the line header of a HeaderTable.
// The header runs alongside the lines, one item per line.
func WithLineHeader(width float64) Option {
	return func(s *settings) error {
		if width < 0 {
			return fmt.Errorf("line header width must not be negative")
		}
		s.lineHeaderWidth = width
		return nil
	}
}

// WithElementHeader reserves width for the element header of a HeaderTable.
// The header runs across the lines, one item per element.
func WithElementHeader(width float64) Option {
	return func(s *settings) error {
		if width < 0 {
			return fmt.Errorf("element header width must not be negative")
		}
		s.elementHeaderWidth = width
		return nil
	}
}

// WithHeaderBuilder sets the builder that keeps the header of tableAxis in
// step with the length of that axis.
func WithHeaderBuilder[T any](tableAxis TableAxis, b HeaderBuilder[T]) Option {
	return func(s *settings) error {
		if b == nil {
			return fmt.Errorf("%s header builder must not be nil", tableAxis)
		}
		if tableAxis == ElementAxis {
			s.elementHeaders = b
		} else {
			s.lineHeaders = b
		}
		return nil
	}
}

// WithStickyEdges keeps a viewport scrolled to the far edge of an axis
// pinned to that edge when the table grows or shrinks. Default is true.
func WithStickyEdges(sticky bool) Option {
	return func(s *settings) error {
		s.sticky = sticky
		return nil
	}
}

// WithBoundedBody lays the body of a HeaderTable out within its viewport
// instead of an unbounded area. Flexible parts then share the viewport and
// percent parts resolve against it.
func WithBoundedBody() Option {
	return func(s *settings) error {
		s.boundedBody = true
		return nil
	}
}
