package canvas

import (
	"strings"

	table "github.com/grindlemire/go-table"
)

// Buffer is a 2D grid of cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of the given size filled with background
// spaces. Negative dimensions are treated as 0.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// Rect returns the bounds of the buffer.
func (b *Buffer) Rect() Rect {
	return Rect{Width: b.width, Height: b.height}
}

func (b *Buffer) in(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the cell at (x, y), or a zero Cell outside the buffer.
func (b *Buffer) Cell(x, y int) Cell {
	if !b.in(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetCell sets the cell at (x, y). Out of bounds writes are ignored.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if !b.in(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// SetRune places r at (x, y), keeping wide runes consistent: a wide rune
// that is partially overwritten is replaced with spaces, and a wide rune
// that does not fit in the last column becomes a space.
func (b *Buffer) SetRune(x, y int, r rune, role table.Role) {
	if !b.in(x, y) {
		return
	}
	width := RuneWidth(r)
	if width == 0 {
		return
	}

	b.clearWide(x, y)
	if width == 2 {
		if x+1 >= b.width {
			b.SetCell(x, y, NewCell(' ', role))
			return
		}
		b.clearWide(x+1, y)
	}

	b.SetCell(x, y, Cell{Rune: r, Role: role, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{Role: role})
	}
}

// clearWide blanks the wide rune covering (x, y), if any.
func (b *Buffer) clearWide(x, y int) {
	c := b.Cell(x, y)
	switch {
	case c.IsContinuation() && x > 0:
		prev := b.Cell(x-1, y)
		b.SetCell(x-1, y, NewCell(' ', prev.Role))
		b.SetCell(x, y, NewCell(' ', prev.Role))
	case c.Width == 2:
		b.SetCell(x, y, NewCell(' ', c.Role))
		b.SetCell(x+1, y, NewCell(' ', c.Role))
	}
}

// SetString writes s starting at (x, y) and returns the number of cells
// advanced. Runes past the right edge are dropped.
func (b *Buffer) SetString(x, y int, s string, role table.Role) int {
	return b.SetStringClipped(x, y, s, role, b.Rect())
}

// SetStringClipped writes s starting at (x, y), dropping every rune that
// does not fit entirely inside clip. It returns the number of cells advanced.
func (b *Buffer) SetStringClipped(x, y int, s string, role table.Role, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	start := x
	for _, r := range s {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > clip.Right() {
			break
		}
		if x >= clip.X {
			b.SetRune(x, y, r, role)
		}
		x += w
	}
	return x - start
}

// Fill sets every cell in rect to r.
func (b *Buffer) Fill(rect Rect, r rune, role table.Role) {
	rect = rect.Intersect(b.Rect())
	step := max(RuneWidth(r), 1)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x+step <= rect.Right(); x += step {
			b.SetRune(x, y, r, role)
		}
	}
}

// Clear resets every cell to a background space.
func (b *Buffer) Clear() {
	blank := NewCell(' ', table.RoleBackground)
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Resize changes the buffer dimensions, preserving overlapping content.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}
	nb := NewBuffer(width, height)
	for y := 0; y < min(height, b.height); y++ {
		for x := 0; x < min(width, b.width); x++ {
			nb.cells[y*width+x] = b.cells[y*b.width+x]
		}
	}
	*b = *nb
}

// Run is a horizontal stretch of cells painted with the same role.
type Run struct {
	Role table.Role
	Text string
}

// Runs returns row y split into runs of equal role. Continuation cells are
// skipped, so concatenating the texts yields the row as displayed.
func (b *Buffer) Runs(y int) []Run {
	if y < 0 || y >= b.height {
		return nil
	}
	var (
		runs []Run
		sb   strings.Builder
		cur  table.Role
	)
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.IsContinuation() {
			continue
		}
		if sb.Len() > 0 && c.Role != cur {
			runs = append(runs, Run{Role: cur, Text: sb.String()})
			sb.Reset()
		}
		cur = c.Role
		sb.WriteRune(cellRune(c))
	}
	if sb.Len() > 0 {
		runs = append(runs, Run{Role: cur, Text: sb.String()})
	}
	return runs
}

// String returns the buffer contents as text, one line per row.
func (b *Buffer) String() string {
	return b.text(false)
}

// StringTrimmed is like String with trailing spaces removed from each row.
func (b *Buffer) StringTrimmed() string {
	return b.text(true)
}

func (b *Buffer) text(trim bool) string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			line.WriteRune(cellRune(c))
		}
		row := line.String()
		if trim {
			row = strings.TrimRight(row, " ")
		}
		sb.WriteString(row)
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func cellRune(c Cell) rune {
	if c.Rune == 0 {
		return ' '
	}
	return c.Rune
}
