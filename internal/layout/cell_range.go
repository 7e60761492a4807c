package layout

// Span is a half-open index range [Start, End).
type Span struct {
	Start, End int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	return max(s.End-s.Start, 0)
}

// Contains reports whether i is inside the span.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// CellRange is a rectangular block of cells.
type CellRange struct {
	Lines    Span
	Elements Span
}

// Empty reports whether the range holds no cells.
func (r CellRange) Empty() bool {
	return r.Lines.Len() == 0 || r.Elements.Len() == 0
}

// Contains reports whether the cell (line, element) is inside the range.
func (r CellRange) Contains(line, element int) bool {
	return r.Lines.Contains(line) && r.Elements.Contains(element)
}

// VisibleCells returns the cells intersecting viewport, given in table
// coordinates. Parts of the viewport outside the table are ignored.
func (l *TableLayout) VisibleCells(viewport Rect) CellRange {
	lineStart, lineEnd := l.lineAxis.MajorSpan(viewport)
	elemStart, elemEnd := l.lineAxis.MinorSpan(viewport)
	return CellRange{
		Lines:    l.lines.visible(lineStart, lineEnd),
		Elements: l.elements.visible(elemStart, elemEnd),
	}
}

// visible returns the parts overlapping [start, end).
func (a *AxisLayout) visible(start, end float64) Span {
	size := a.Size()
	start = clamp(start, 0, size)
	end = clamp(end, 0, size)
	if len(a.parts) == 0 || end <= start {
		return Span{}
	}

	first := a.AsCellOffset(start)
	if first.Offset >= a.parts[first.Index].size && first.Index+1 < len(a.parts) {
		first = CellOffset{Index: first.Index + 1}
	}
	last := a.AsCellOffset(end)
	return Span{Start: first.Index, End: last.Index + 1}
}

// CellAt returns the cell containing p for hit testing. Unlike AsCellOffset
// a boundary belongs to the part starting there. It reports false when p is
// outside the table.
func (l *TableLayout) CellAt(p Point) (CellPosition, bool) {
	line, ok := l.lines.IndexAt(l.lineAxis.MajorPos(p))
	if !ok {
		return CellPosition{}, false
	}
	element, ok := l.elements.IndexAt(l.lineAxis.MinorPos(p))
	if !ok {
		return CellPosition{}, false
	}
	return CellPosition{
		Offset:  l.lineAxis.PackPoint(line.Offset, element.Offset),
		Line:    line.Index,
		Element: element.Index,
	}, true
}

// IndexAt converts a pixel offset into the part containing it, where a
// boundary belongs to the part starting there. It reports false for offsets
// before the first part or at or beyond Size.
func (a *AxisLayout) IndexAt(offset float64) (CellOffset, bool) {
	if offset < 0 {
		return CellOffset{}, false
	}
	start := 0.0
	for i, p := range a.parts {
		if offset < start+p.size {
			return CellOffset{Offset: offset - start, Index: i}, true
		}
		start += p.size
	}
	return CellOffset{}, false
}
