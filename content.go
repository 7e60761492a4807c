package table

// Content is the ordered list of lines of a table. Controllers and painters
// use it to reach the lines without owning the table.
type Content[T any] struct {
	lines []Line[T]
}

// Lines returns the lines in declaration order.
func (c *Content[T]) Lines() []Line[T] {
	return c.lines
}

// Len returns the number of lines.
func (c *Content[T]) Len() int {
	return len(c.lines)
}

// Event delivers ev to every line in declaration order. Every line sees the
// event even if an earlier one consumed it.
func (c *Content[T]) Event(ev Event, data *T) bool {
	handled := false
	for _, line := range c.lines {
		if line.Event(ev, data) {
			handled = true
		}
	}
	return handled
}

// PaintBackground fills the part of viewport covered by the table.
func (c *Content[T]) PaintBackground(s Surface, a *Arrangement, viewport Rect) {
	size := a.TableSize()
	r := NewRect(0, 0, size.Width, size.Height).Intersect(viewport)
	if !r.IsEmpty() {
		s.Fill(r, RoleBackground)
	}
}

// PaintForeground paints the cells intersecting viewport.
func (c *Content[T]) PaintForeground(s Surface, data T, a *Arrangement, viewport Rect) {
	cells := a.VisibleCells(viewport)
	if cells.Empty() {
		return
	}
	for i := cells.Lines.Start; i < min(cells.Lines.End, len(c.lines)); i++ {
		c.lines[i].Paint(s, data, i, cells.Elements)
	}
}
