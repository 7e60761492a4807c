package table

// Role tells a Surface what kind of content it is drawing so hosts can pick
// colors and styles without the engine knowing about them.
type Role uint8

const (
	RoleBackground Role = iota // Table background
	RoleCell                   // Body cell content
	RoleHeader                 // Header item content
	RoleCorner                 // Area where both headers meet
	RoleGrid                   // Grid lines
	RoleSelected               // Highlighted cell content
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleBackground:
		return "background"
	case RoleCell:
		return "cell"
	case RoleHeader:
		return "header"
	case RoleCorner:
		return "corner"
	case RoleGrid:
		return "grid"
	case RoleSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Surface is the painting target supplied by the host.
//
// Coordinates are transformed by the current translation. Clip intersects
// the clip region with r, given in current coordinates. Save and Restore
// push and pop the translation and clip.
type Surface interface {
	Fill(r Rect, role Role)
	Text(r Rect, text string, role Role)
	Line(from, to Point, role Role)

	Translate(d Point)
	Clip(r Rect)
	Save()
	Restore()
}

// TextMeasurer measures text in surface units.
type TextMeasurer interface {
	MeasureText(text string) Size
}

// TextMeasurerFunc adapts a function to TextMeasurer.
type TextMeasurerFunc func(text string) Size

// MeasureText calls f(text).
func (f TextMeasurerFunc) MeasureText(text string) Size {
	return f(text)
}

// withState runs fn between Save and Restore.
func withState(s Surface, fn func()) {
	s.Save()
	defer s.Restore()
	fn()
}
