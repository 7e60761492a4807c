// Package htmlexport renders a sheet.View as a standalone HTML page. Every
// area, text and grid line the table paints becomes an absolutely
// positioned box, so the page shows exactly the arranged layout.
package htmlexport

import (
	"embed"
	"errors"
	"io"
	"math"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/mattn/go-runewidth"

	table "github.com/grindlemire/go-table"
	"github.com/grindlemire/go-table/internal/config"
	"github.com/grindlemire/go-table/internal/debug"
	"github.com/grindlemire/go-table/internal/sheet"
)

//go:embed templates/*
var templateFS embed.FS

// ErrNoSheet is returned when rendering a view that was never given data.
var ErrNoSheet = errors.New("htmlexport: view has no sheet")

// Options controls the exported page.
type Options struct {
	Title string
	// CharWidth and LineHeight are the CSS pixel size of one character.
	CharWidth  float64
	LineHeight float64
	// Size bounds the exported area. An unbounded component exports the
	// whole table along it.
	Size table.Size
}

// DefaultOptions exports the whole table with an 8x18 pixel character.
func DefaultOptions() Options {
	return Options{
		CharWidth:  8,
		LineHeight: 18,
		Size:       table.Size{Width: math.Inf(1), Height: math.Inf(1)},
	}
}

// Measurer measures text in whole characters scaled to o.
func (o Options) Measurer() table.TextMeasurer {
	return table.TextMeasurerFunc(func(text string) table.Size {
		return table.Size{
			Width:  float64(runewidth.StringWidth(text)) * o.CharWidth,
			Height: o.LineHeight,
		}
	})
}

// Build creates a view for cfg sized for o. Header widths from the config
// count characters.
func Build(cfg config.Config, o Options) (*sheet.View, error) {
	lineHeader, elementHeader := o.CharWidth*cfg.LineHeader, o.LineHeight*cfg.ElementHeader
	if cfg.LineAxis() == table.Horizontal {
		lineHeader, elementHeader = o.LineHeight*cfg.LineHeader, o.CharWidth*cfg.ElementHeader
	}
	return sheet.New(cfg, sheet.Options{
		Measurer: o.Measurer(),
		Padding:  table.Size{Width: o.CharWidth / 2},
		Extra: []table.Option{
			table.WithLineHeader(lineHeader),
			table.WithElementHeader(elementHeader),
		},
	})
}

// Renderer renders views to HTML.
type Renderer struct {
	tmpl *template.Template
}

// Page is the data handed to the template.
type Page struct {
	Title string
	Style safehtml.Style
	Boxes []Box
}

// NewRenderer parses the embedded page template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("table.html").ParseFS(template.TrustedFSFromEmbed(templateFS), "templates/table.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render lays v out within o.Size and writes it to w as a page.
func (r *Renderer) Render(w io.Writer, v *sheet.View, o Options) error {
	data := v.Sheet()
	if data.Columns == nil {
		return ErrNoSheet
	}
	size := v.Layout(o.Size, data)

	s := NewSurface(size)
	v.Paint(s, data)
	debug.Log("htmlexport: %vx%v, %d boxes", size.Width, size.Height, len(s.Boxes()))

	return r.tmpl.Execute(w, Page{
		Title: o.Title,
		Style: sizeStyle(size),
		Boxes: s.Boxes(),
	})
}
