package htmlexport

import (
	"strconv"

	"github.com/google/safehtml"

	table "github.com/grindlemire/go-table"
)

// Box is one absolutely positioned element of the page.
type Box struct {
	Class string
	Style safehtml.Style
	Text  string
}

// Surface records painting as boxes. Areas and lines are cut to the clip;
// text that starts outside it is dropped and the rest is cut by the box.
type Surface struct {
	boxes []Box
	state state
	stack []state
}

type state struct {
	offset table.Point
	clip   table.Rect
}

var _ table.Surface = (*Surface)(nil)

// NewSurface creates a surface covering size.
func NewSurface(size table.Size) *Surface {
	return &Surface{state: state{clip: table.NewRect(0, 0, size.Width, size.Height)}}
}

// Boxes returns the boxes painted so far, in paint order.
func (s *Surface) Boxes() []Box {
	return s.boxes
}

func (s *Surface) add(class string, r table.Rect, text string) {
	s.boxes = append(s.boxes, Box{Class: class, Style: rectStyle(r), Text: text})
}

// Fill adds a filled box.
func (s *Surface) Fill(r table.Rect, role table.Role) {
	dr := r.Translate(s.state.offset).Intersect(s.state.clip)
	if dr.IsEmpty() {
		return
	}
	s.add("fill fill-"+role.String(), dr, "")
}

// Text adds a text box.
func (s *Surface) Text(r table.Rect, text string, role table.Role) {
	dr := r.Translate(s.state.offset)
	clip := s.state.clip
	if text == "" || dr.X < clip.X || dr.Y < clip.Y {
		return
	}
	dr = dr.Intersect(clip)
	if dr.IsEmpty() {
		return
	}
	s.add("text text-"+role.String(), dr, text)
}

// Line adds a one pixel box along an axis-aligned line.
func (s *Surface) Line(from, to table.Point, role table.Role) {
	from, to, ok := s.state.clip.ClipSegment(from.Add(s.state.offset), to.Add(s.state.offset))
	if !ok {
		return
	}
	r := table.NewRect(from.X, from.Y, to.X-from.X, 1)
	if from.X == to.X {
		r = table.NewRect(from.X, from.Y, 1, to.Y-from.Y)
	}
	s.add("line line-"+role.String(), r, "")
}

// Translate moves the origin by d.
func (s *Surface) Translate(d table.Point) {
	s.state.offset = s.state.offset.Add(d)
}

// Clip narrows the clip to r.
func (s *Surface) Clip(r table.Rect) {
	s.state.clip = s.state.clip.Intersect(r.Translate(s.state.offset))
}

// Save pushes the translation and clip.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.state)
}

// Restore pops the translation and clip pushed by the matching Save.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		panic("htmlexport: Restore without Save")
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func rectStyle(r table.Rect) safehtml.Style {
	return safehtml.StyleFromProperties(safehtml.StyleProperties{
		Height: px(r.Height),
		Width:  px(r.Width),
		Left:   px(r.X),
		Top:    px(r.Y),
	})
}

func sizeStyle(s table.Size) safehtml.Style {
	return safehtml.StyleFromProperties(safehtml.StyleProperties{
		Height: px(s.Height),
		Width:  px(s.Width),
	})
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
