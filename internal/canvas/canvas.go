package canvas

import (
	table "github.com/grindlemire/go-table"
)

// Rules selects which grid line directions a Canvas draws.
type Rules uint8

const (
	RulesHorizontal Rules = 1 << iota // Lines running left to right
	RulesVertical                     // Lines running top to bottom

	RulesAll = RulesHorizontal | RulesVertical
)

// Canvas paints onto a Buffer and implements table.Surface and
// table.TextMeasurer. One surface unit is one cell.
type Canvas struct {
	buf   *Buffer
	chars BorderChars
	rules Rules
	state state
	stack []state
}

type state struct {
	offset table.Point
	clip   Rect
}

var (
	_ table.Surface      = (*Canvas)(nil)
	_ table.TextMeasurer = (*Canvas)(nil)
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithBorder sets the characters used for grid lines.
func WithBorder(b BorderStyle) Option {
	return func(c *Canvas) {
		c.chars = b.Chars()
	}
}

// WithRules limits the grid line directions that are drawn.
func WithRules(r Rules) Option {
	return func(c *Canvas) {
		c.rules = r
	}
}

// New creates a canvas of the given size in cells.
func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		buf:   NewBuffer(width, height),
		chars: BorderSingle.Chars(),
		rules: RulesAll,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = state{clip: c.buf.Rect()}
	return c
}

// Buffer returns the underlying cell grid.
func (c *Canvas) Buffer() *Buffer {
	return c.buf
}

// Reset resizes and clears the canvas and drops any saved state.
func (c *Canvas) Reset(width, height int) {
	c.buf.Resize(width, height)
	c.buf.Clear()
	c.stack = c.stack[:0]
	c.state = state{clip: c.buf.Rect()}
}

// String returns the painted cells as text.
func (c *Canvas) String() string {
	return c.buf.StringTrimmed()
}

// MeasureText returns the cell size of a single line of text.
func (c *Canvas) MeasureText(text string) table.Size {
	return table.Size{Width: float64(StringWidth(text)), Height: 1}
}

func (c *Canvas) device(r table.Rect) Rect {
	return Snap(r.Translate(c.state.offset))
}

// Fill implements table.Surface.
func (c *Canvas) Fill(r table.Rect, role table.Role) {
	c.buf.Fill(c.device(r).Intersect(c.state.clip), ' ', role)
}

// Text writes text on the first row of r. Runes that do not fit in r or in
// the clip are dropped.
func (c *Canvas) Text(r table.Rect, text string, role table.Role) {
	dr := c.device(r)
	if dr.IsEmpty() {
		return
	}
	c.buf.SetStringClipped(dr.X, dr.Y, text, role, dr.Intersect(c.state.clip))
}

// Line draws an axis aligned grid line. Where a line crosses one drawn in
// the other direction the crossing character is used. Diagonal lines are
// ignored.
func (c *Canvas) Line(from, to table.Point, role table.Role) {
	from = from.Add(c.state.offset)
	to = to.Add(c.state.offset)
	clip := c.state.clip

	switch {
	case snap(from.Y) == snap(to.Y):
		if c.rules&RulesHorizontal == 0 {
			return
		}
		y := snap(from.Y)
		if y < clip.Y || y >= clip.Bottom() {
			return
		}
		x0, x1 := snap(min(from.X, to.X)), snap(max(from.X, to.X))
		for x := max(x0, clip.X); x < min(x1, clip.Right()); x++ {
			c.rule(x, y, c.chars.Horizontal, c.chars.Vertical, role)
		}
	case snap(from.X) == snap(to.X):
		if c.rules&RulesVertical == 0 {
			return
		}
		x := snap(from.X)
		if x < clip.X || x >= clip.Right() {
			return
		}
		y0, y1 := snap(min(from.Y, to.Y)), snap(max(from.Y, to.Y))
		for y := max(y0, clip.Y); y < min(y1, clip.Bottom()); y++ {
			c.rule(x, y, c.chars.Vertical, c.chars.Horizontal, role)
		}
	}
}

func (c *Canvas) rule(x, y int, r, other rune, role table.Role) {
	cur := c.buf.Cell(x, y)
	if cur.Role == role && (cur.Rune == other || cur.Rune == c.chars.Cross) && r != ' ' {
		r = c.chars.Cross
	}
	c.buf.SetRune(x, y, r, role)
}

// Restyle changes the role of every cell in r, given in current
// coordinates, without touching the runes.
func (c *Canvas) Restyle(r table.Rect, role table.Role) {
	dr := c.device(r).Intersect(c.state.clip)
	for y := dr.Y; y < dr.Bottom(); y++ {
		for x := dr.X; x < dr.Right(); x++ {
			cell := c.buf.Cell(x, y)
			cell.Role = role
			c.buf.SetCell(x, y, cell)
		}
	}
}

// Translate implements table.Surface.
func (c *Canvas) Translate(d table.Point) {
	c.state.offset = c.state.offset.Add(d)
}

// Clip implements table.Surface.
func (c *Canvas) Clip(r table.Rect) {
	c.state.clip = c.state.clip.Intersect(c.device(r))
}

// Save implements table.Surface.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore implements table.Surface. It panics without a matching Save.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		panic("canvas: Restore without Save")
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}
