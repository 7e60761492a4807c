// Package fynetable shows a sheet in a fyne window. The widget owns a
// sheet.View; its body, headers and corner are painted into canvas objects
// positioned from the one TableLayout the view shares between them, so
// scrolling the body pans both headers in the same pass.
package fynetable

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	table "github.com/grindlemire/go-table"
	"github.com/grindlemire/go-table/internal/config"
	"github.com/grindlemire/go-table/internal/debug"
	"github.com/grindlemire/go-table/internal/sheet"
	"github.com/grindlemire/go-table/internal/source"
)

// Table is a fyne widget showing a sheet.View. All methods must be called
// on the fyne UI goroutine; use fyne.Do from elsewhere.
type Table struct {
	widget.BaseWidget

	view     *sheet.View
	measurer table.TextMeasurer
	palette  Palette
	textSize float32

	// OnSelected is called when a cell is tapped.
	OnSelected func(table.CellPosition)
	// OnScrolled is called with the new scroll offset after the body
	// and headers have been panned.
	OnScrolled func(offset table.Point)

	size     fyne.Size
	loaded   bool
	selected table.CellPosition
	hasSel   bool
}

var (
	_ fyne.Widget     = (*Table)(nil)
	_ fyne.Scrollable = (*Table)(nil)
	_ fyne.Tappable   = (*Table)(nil)
)

// Measurer measures text the way fyne renders it at size.
func Measurer(size float32) table.TextMeasurer {
	return table.TextMeasurerFunc(func(text string) table.Size {
		s := fyne.MeasureText(text, size, fyne.TextStyle{})
		return table.Size{Width: float64(s.Width), Height: float64(s.Height)}
	})
}

// Build creates a view for cfg measured with m. Header widths from the
// config count characters; they are scaled to the width of "0" for the line
// header and to the text height for the element header.
func Build(cfg config.Config, m table.TextMeasurer) (*sheet.View, error) {
	digit := m.MeasureText("0")
	lineHeader, elementHeader := digit.Width*cfg.LineHeader, digit.Height*cfg.ElementHeader
	if cfg.LineAxis() == table.Horizontal {
		lineHeader, elementHeader = digit.Height*cfg.LineHeader, digit.Width*cfg.ElementHeader
	}
	pad := float64(theme.DefaultTheme().Size(theme.SizeNameInnerPadding)) / 2
	return sheet.New(cfg, sheet.Options{
		Measurer: m,
		Padding:  table.Size{Width: pad, Height: pad / 2},
		Extra: []table.Option{
			table.WithLineHeader(lineHeader),
			table.WithElementHeader(elementHeader),
		},
	})
}

// New creates a widget for v. Text objects are drawn at textSize and
// shortened with m when clipped; m should be the measurer v was built with.
func New(v *sheet.View, m table.TextMeasurer, textSize float32) *Table {
	t := &Table{
		view:     v,
		measurer: m,
		palette:  DefaultPalette(theme.VariantLight),
		textSize: textSize,
	}
	t.ExtendBaseWidget(t)
	return t
}

// View returns the view shown by t.
func (t *Table) View() *sheet.View {
	return t.view
}

// SetPalette replaces the colors used for painting.
func (t *Table) SetPalette(p Palette) {
	t.palette = p
	t.Refresh()
}

// SetSheet shows s.
func (t *Table) SetSheet(s source.Sheet) {
	t.view.Set(s)
	t.loaded = true
	if t.hasSel {
		t.hasSel = t.selected.Line < len(s.Rows) && t.selected.Element < len(s.Columns)
	}
	debug.Log("fynetable: sheet %d rows x %d columns", len(s.Rows), len(s.Columns))
	t.Refresh()
}

// Selected returns the selected cell.
func (t *Table) Selected() (table.CellPosition, bool) {
	return t.selected, t.hasSel
}

// Select selects the cell and scrolls it into view.
func (t *Table) Select(line, element int) {
	t.selected = table.CellPosition{Line: line, Element: element}
	t.hasSel = true
	if t.ready() {
		t.layoutIfNeeded()
		if t.view.ScrollToCell(line, element) {
			t.scrolled()
		}
	}
	t.Refresh()
}

// Scrolled pans the table by a mouse wheel or touchpad scroll.
func (t *Table) Scrolled(ev *fyne.ScrollEvent) {
	if !t.ready() {
		return
	}
	t.layoutIfNeeded()
	data := t.view.Sheet()
	delta := table.Point{X: -float64(ev.Scrolled.DX), Y: -float64(ev.Scrolled.DY)}
	before := t.view.Offset()
	t.view.Event(table.ScrollEvent{Delta: delta}, &data)
	if t.view.Offset() != before {
		t.scrolled()
		t.Refresh()
	}
}

func (t *Table) scrolled() {
	if t.OnScrolled != nil {
		t.OnScrolled(t.view.Offset())
	}
}

// Tapped selects the cell under the pointer.
func (t *Table) Tapped(ev *fyne.PointEvent) {
	if !t.ready() {
		return
	}
	t.layoutIfNeeded()
	pos, ok := t.view.CellAt(table.Point{X: float64(ev.Position.X), Y: float64(ev.Position.Y)})
	if !ok {
		return
	}
	t.selected, t.hasSel = pos, true
	if t.OnSelected != nil {
		t.OnSelected(pos)
	}
	t.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (t *Table) CreateRenderer() fyne.WidgetRenderer {
	return &renderer{t: t}
}

// ready reports whether there is a sheet and room to show it.
func (t *Table) ready() bool {
	return t.loaded && !t.size.IsZero()
}

func (t *Table) layout(size fyne.Size) {
	t.size = size
	if t.ready() {
		t.view.Layout(table.Size{Width: float64(size.Width), Height: float64(size.Height)}, t.view.Sheet())
	}
}

func (t *Table) layoutIfNeeded() {
	if t.ready() && t.view.NeedsLayout() {
		t.layout(t.size)
	}
}

// paint returns the objects for the current state.
func (t *Table) paint() []fyne.CanvasObject {
	if !t.ready() {
		return nil
	}
	s := NewSurface(table.Size{Width: float64(t.size.Width), Height: float64(t.size.Height)}, t.palette, t.measurer, t.textSize)
	t.view.Paint(s, t.view.Sheet())
	if t.hasSel {
		if r := t.view.CellRect(t.selected.Line, t.selected.Element); !r.IsEmpty() {
			s.Fill(r, table.RoleSelected)
		}
	}
	return s.Objects()
}

type renderer struct {
	t       *Table
	objects []fyne.CanvasObject
}

func (r *renderer) Layout(size fyne.Size) {
	r.t.layout(size)
	r.objects = r.t.paint()
}

// MinSize leaves room for the headers.
func (r *renderer) MinSize() fyne.Size {
	if !r.t.ready() {
		return fyne.NewSize(0, 0)
	}
	c := r.t.view.CornerRect()
	return fyne.NewSize(float32(c.Width), float32(c.Height))
}

func (r *renderer) Refresh() {
	r.t.layoutIfNeeded()
	r.objects = r.t.paint()
	canvas.Refresh(r.t)
}

func (r *renderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *renderer) Destroy() {}
