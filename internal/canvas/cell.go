package canvas

import (
	"github.com/mattn/go-runewidth"

	table "github.com/grindlemire/go-table"
)

// Cell is a single character cell of the grid.
type Cell struct {
	Rune  rune       // The character (0 for continuation cells)
	Role  table.Role // Role the cell was painted with
	Width uint8      // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a Cell with its display width looked up.
func NewCell(r rune, role table.Role) Cell {
	return Cell{Rune: r, Role: role, Width: uint8(RuneWidth(r))}
}

// IsContinuation reports whether c is the trailing half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// RuneWidth returns the display width of r in cells, 1 or 2. Zero width
// runes report 0 and are dropped by the buffer.
func RuneWidth(r rune) int {
	if r < 32 {
		return 1
	}
	return min(runewidth.RuneWidth(r), 2)
}

// StringWidth returns the number of cells SetString uses for s.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}
