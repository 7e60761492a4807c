// Package termview shows a sheet in the terminal with bubbletea. The table
// is painted onto an internal/canvas cell grid and every run of cells is
// rendered with the lipgloss style of its role.
package termview

import (
	tea "github.com/charmbracelet/bubbletea"

	table "github.com/grindlemire/go-table"
	"github.com/grindlemire/go-table/internal/canvas"
	"github.com/grindlemire/go-table/internal/config"
	"github.com/grindlemire/go-table/internal/sheet"
	"github.com/grindlemire/go-table/internal/source"
)

// Model is the bubbletea model of the sheet viewer.
type Model struct {
	view   *sheet.View
	canvas *canvas.Canvas
	styles Styles
	reload func() (source.Sheet, error)

	width, height int
	selected      table.CellPosition

	ready    bool
	quitting bool
	err      error
}

// Build creates the view and the canvas it is painted on for cfg. Cells are
// measured in terminal cells with one column of padding on each side and a
// gutter column in front for the vertical grid lines.
func Build(cfg config.Config) (*sheet.View, *canvas.Canvas, error) {
	c := canvas.New(0, 0, canvas.WithBorder(cfg.BorderStyle()), canvas.WithRules(canvas.RulesVertical))
	v, err := sheet.New(cfg, sheet.Options{
		Measurer: c,
		Padding:  table.Size{Width: 1},
		Gutter:   1,
	})
	if err != nil {
		return nil, nil, err
	}
	return v, c, nil
}

// New creates a model. reload is called on start and when the user asks
// for fresh data; it may be nil for a static sheet set on v beforehand.
func New(v *sheet.View, c *canvas.Canvas, reload func() (source.Sheet, error)) Model {
	return Model{
		view:   v,
		canvas: c,
		styles: DefaultStyles(),
		reload: reload,
	}
}

// WithStyles returns a copy of m using s.
func (m Model) WithStyles(s Styles) Model {
	m.styles = s
	return m
}

// Init loads the sheet.
func (m Model) Init() tea.Cmd {
	return m.reloadCmd()
}

func (m Model) reloadCmd() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	reload := m.reload
	return func() tea.Msg {
		s, err := reload()
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return SheetMsg{Sheet: s}
	}
}

// Selected returns the selected cell.
func (m Model) Selected() table.CellPosition {
	return m.selected
}

// Err returns the last load error.
func (m Model) Err() error {
	return m.err
}

func (m Model) bodySize() table.Size {
	return table.Size{Width: float64(m.width), Height: float64(max(m.height-1, 0))}
}

func (m Model) layout() {
	if !m.ready {
		return
	}
	m.view.Layout(m.bodySize(), m.view.Sheet())
}

func (m Model) hasCells() bool {
	l := m.view.TableLayout()
	return l.Lines().Len() > 0 && l.Elements().Len() > 0
}

// clampSelection keeps the selection inside the table after a reload.
func (m *Model) clampSelection() {
	l := m.view.TableLayout()
	m.selected.Line = clampIndex(m.selected.Line, l.Lines().Len())
	m.selected.Element = clampIndex(m.selected.Element, l.Elements().Len())
}

func clampIndex(i, n int) int {
	return max(min(i, n-1), 0)
}
