package fynetable

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	table "github.com/grindlemire/go-table"
)

// Surface records painting as fyne canvas objects. Fyne does not clip
// individual objects, so geometry is clipped here: areas and lines are cut
// to the clip, text that starts outside it is dropped and text running past
// its right edge is shortened.
type Surface struct {
	palette  Palette
	measurer table.TextMeasurer
	textSize float32

	objects []fyne.CanvasObject
	state   state
	stack   []state
}

type state struct {
	offset table.Point
	clip   table.Rect
}

var _ table.Surface = (*Surface)(nil)

// NewSurface creates a surface covering size. Text objects use textSize and
// m is used to shorten clipped text.
func NewSurface(size table.Size, p Palette, m table.TextMeasurer, textSize float32) *Surface {
	return &Surface{
		palette:  p,
		measurer: m,
		textSize: textSize,
		state:    state{clip: table.NewRect(0, 0, size.Width, size.Height)},
	}
}

// Objects returns the objects painted so far, in paint order.
func (s *Surface) Objects() []fyne.CanvasObject {
	return s.objects
}

func (s *Surface) device(r table.Rect) table.Rect {
	return r.Translate(s.state.offset)
}

// Fill adds a rectangle.
func (s *Surface) Fill(r table.Rect, role table.Role) {
	dr := s.device(r).Intersect(s.state.clip)
	if dr.IsEmpty() {
		return
	}
	rect := canvas.NewRectangle(s.palette.fill(role))
	place(rect, dr)
	s.objects = append(s.objects, rect)
}

// Text adds a text object at the top left of r.
func (s *Surface) Text(r table.Rect, text string, role table.Role) {
	dr := s.device(r)
	clip := s.state.clip
	if text == "" || dr.X < clip.X || dr.Y < clip.Y || !dr.Intersects(clip) {
		return
	}
	text = s.fit(text, min(dr.Right(), clip.Right())-dr.X)
	if text == "" {
		return
	}
	t := canvas.NewText(text, s.palette.ink(role))
	t.TextSize = s.textSize
	place(t, dr.Intersect(clip))
	s.objects = append(s.objects, t)
}

// fit drops trailing runes until text is at most width wide.
func (s *Surface) fit(text string, width float64) string {
	if s.measurer == nil {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && s.measurer.MeasureText(string(runes)).Width > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// Line adds an axis-aligned line. Diagonal lines are ignored.
func (s *Surface) Line(from, to table.Point, role table.Role) {
	from, to, ok := s.state.clip.ClipSegment(from.Add(s.state.offset), to.Add(s.state.offset))
	if !ok {
		return
	}

	l := canvas.NewLine(s.palette.ink(role))
	l.StrokeWidth = 1
	l.Position1 = position(from)
	l.Position2 = position(to)
	s.objects = append(s.objects, l)
}

// Translate moves the origin by d.
func (s *Surface) Translate(d table.Point) {
	s.state.offset = s.state.offset.Add(d)
}

// Clip narrows the clip to r.
func (s *Surface) Clip(r table.Rect) {
	s.state.clip = s.state.clip.Intersect(s.device(r))
}

// Save pushes the translation and clip.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.state)
}

// Restore pops the translation and clip pushed by the matching Save.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		panic("fynetable: Restore without Save")
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func place(o fyne.CanvasObject, r table.Rect) {
	o.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	o.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
}

func position(p table.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}
