package table

// Painter paints an arranged table. viewport is the visible part of the
// table in table coordinates.
type Painter[T any] interface {
	Paint(s Surface, data T, viewport Rect, content *Content[T], a *Arrangement)
}

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// DefaultPainter paints the background, the visible cells and, unless
// NoGrid is set, a grid line at every part boundary.
type DefaultPainter[T any] struct {
	NoGrid bool
}

// Paint implements Painter.
func (p DefaultPainter[T]) Paint(s Surface, data T, viewport Rect, content *Content[T], a *Arrangement) {
	content.PaintBackground(s, a, viewport)
	content.PaintForeground(s, data, a, viewport)
	if p.NoGrid {
		return
	}
	for _, seg := range GridLines(a, viewport) {
		s.Line(seg.From, seg.To, RoleGrid)
	}
}

// GridLines returns the boundaries of every line and element that fall
// inside viewport, each clipped to the table and the viewport.
func GridLines(a *Arrangement, viewport Rect) []Segment {
	size := a.TableSize()
	area := NewRect(0, 0, size.Width, size.Height).Intersect(viewport)
	if area.IsEmpty() {
		return nil
	}

	var segs []Segment
	for _, tableAxis := range []TableAxis{LineAxis, ElementAxis} {
		// Boundaries of this axis are drawn across the other direction.
		along := a.LineAxis()
		if tableAxis == ElementAxis {
			along = along.Cross()
		}
		across := along.Cross()
		start, end := along.MajorSpan(viewport)
		crossStart, crossEnd := across.MajorSpan(area)

		for _, b := range a.Boundaries(tableAxis) {
			if b < start || b > end {
				continue
			}
			segs = append(segs, Segment{
				From: along.PackPoint(b, crossStart),
				To:   along.PackPoint(b, crossEnd),
			})
		}
	}
	return segs
}
