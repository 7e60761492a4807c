// Package sheet binds a source.Sheet to a HeaderTable: one line per record,
// one element per column, record numbers in the line header and column
// names in the element header.
package sheet

import (
	"slices"
	"strconv"

	table "github.com/grindlemire/go-table"
	"github.com/grindlemire/go-table/internal/config"
	"github.com/grindlemire/go-table/internal/source"
)

// Options controls how cells are measured.
type Options struct {
	Measurer table.TextMeasurer
	// Padding is added on each side of every cell and header item.
	Padding table.Size
	// Gutter is reserved in front of every item that advances horizontally,
	// leaving a column for vertical grid lines.
	Gutter float64
	// Extra options are applied after the ones derived from the config.
	Extra []table.Option
}

// View is a HeaderTable showing a sheet.
type View struct {
	*table.HeaderTable[source.Sheet]

	cfg      config.Config
	sheet    source.Sheet
	attached bool
}

// New builds an empty view. Call Set to give it data.
func New(cfg config.Config, o Options) (*View, error) {
	cell := func() table.Widget[string] {
		return withGutter[string](&table.Label[string]{
			Format:   func(s string) string { return s },
			Measurer: o.Measurer,
			Role:     table.RoleCell,
			Padding:  o.Padding,
		}, o.Gutter)
	}
	// Line header items advance along the line axis, element header items
	// across it.
	lineGutter, elementGutter := 0.0, o.Gutter
	if cfg.LineAxis() == table.Horizontal {
		lineGutter, elementGutter = o.Gutter, 0
	}
	header := func(format func(table.HeaderData[source.Sheet]) string, gutter float64) func(int) table.Widget[table.HeaderData[source.Sheet]] {
		return func(int) table.Widget[table.HeaderData[source.Sheet]] {
			return withGutter[table.HeaderData[source.Sheet]](&table.Label[table.HeaderData[source.Sheet]]{
				Format:   format,
				Measurer: o.Measurer,
				Role:     table.RoleHeader,
				Padding:  o.Padding,
			}, gutter)
		}
	}

	opts := append(cfg.Options(),
		table.WithPolicy(table.LinePerItem(
			func(s source.Sheet) [][]string { return s.Rows },
			func(i int) (table.Line[source.Sheet], table.Value) {
				return table.NewWidgetLine(func(s source.Sheet) []string { return s.Rows[i] }, cell), table.Auto()
			},
		)),
		table.WithHeaderBuilder(table.LineAxis, table.DynamicHeader(header(RecordLabel, lineGutter))),
		table.WithHeaderBuilder(table.ElementAxis, table.DynamicHeader(header(ColumnLabel, elementGutter))),
	)
	opts = append(opts, o.Extra...)

	ht, err := table.NewHeaderTable[source.Sheet](opts...)
	if err != nil {
		return nil, err
	}
	return &View{HeaderTable: ht, cfg: cfg}, nil
}

// gutter reserves width in front of a widget.
type gutter[V any] struct {
	table.Widget[V]
	width float64
}

func withGutter[V any](w table.Widget[V], width float64) table.Widget[V] {
	if width <= 0 {
		return w
	}
	return gutter[V]{Widget: w, width: width}
}

func (g gutter[V]) Measure(bc table.Constraints, v V) table.Size {
	s := g.Widget.Measure(bc.Shrink(table.Size{Width: g.width}), v)
	s.Width += g.width
	return bc.Constrain(s)
}

func (g gutter[V]) Paint(s table.Surface, r table.Rect, v V) {
	inner := table.NewRect(r.X+g.width, r.Y, max(r.Width-g.width, 0), r.Height)
	g.Widget.Paint(s, inner, v)
}

// RecordLabel labels a line with its 1-based record number.
func RecordLabel(h table.HeaderData[source.Sheet]) string {
	return strconv.Itoa(h.Index + 1)
}

// ColumnLabel labels an element with its column name.
func ColumnLabel(h table.HeaderData[source.Sheet]) string {
	if h.Index < len(h.Data.Columns) {
		return h.Data.Columns[h.Index]
	}
	return ""
}

// Sheet returns the data currently shown.
func (v *View) Sheet() source.Sheet {
	return v.sheet
}

// Set shows s. Column sizes from the config are applied whenever the
// column names change; otherwise parts keep any interactive resizing.
func (v *View) Set(s source.Sheet) {
	old := v.sheet
	v.sheet = s
	if !v.attached {
		v.Attach(s)
		v.attached = true
	} else {
		v.Update(old, s)
	}
	if !v.sameColumns(old, s) {
		v.applyColumns(s)
	}
}

func (v *View) sameColumns(old, s source.Sheet) bool {
	return old.Columns != nil && slices.Equal(old.Columns, s.Columns)
}

func (v *View) applyColumns(s source.Sheet) {
	l := v.TableLayout()
	elements := l.Elements()
	for i := range min(elements.Len(), len(s.Columns)) {
		part := table.FlexPart()
		if col, ok := v.cfg.Column(s.Columns[i]); ok {
			part = col.Part()
		}
		elements.SetPart(i, part)
	}
	l.Invalidate()
}

// ColumnIndex returns the element index of the named column.
func (v *View) ColumnIndex(name string) (int, bool) {
	i := slices.Index(v.sheet.Columns, name)
	return i, i >= 0
}
