package termview

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	table "github.com/grindlemire/go-table"
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}
	if m.view.NeedsLayout() {
		m.layout()
	}

	size := m.bodySize()
	m.canvas.Reset(int(size.Width), int(size.Height))
	if !m.view.NeedsLayout() {
		m.view.Paint(m.canvas, m.view.Sheet())
		if m.hasCells() {
			m.canvas.Restyle(m.view.CellRect(m.selected.Line, m.selected.Element), table.RoleSelected)
		}
	}

	var b strings.Builder
	buf := m.canvas.Buffer()
	for y := range buf.Height() {
		for _, run := range buf.Runs(y) {
			b.WriteString(m.styles.Role(run.Role).Render(run.Text))
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

// statusLine describes the selection and the visible range, or the last
// error, truncated to the terminal width.
func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(runewidth.Truncate("error: "+m.err.Error(), m.width, "…"))
	}
	return m.styles.Status.Render(runewidth.Truncate(m.status(), m.width, "…"))
}

func (m Model) status() string {
	s := m.view.Sheet()
	if !m.hasCells() {
		return fmt.Sprintf("%d records", s.Len())
	}
	a := m.view.Table().Arrangement()
	if a == nil {
		return ""
	}
	vis := a.VisibleCells(m.view.Viewport())
	column := ""
	if m.selected.Element < len(s.Columns) {
		column = s.Columns[m.selected.Element]
	}
	return fmt.Sprintf("record %d/%d  %s  showing records %d-%d, fields %d-%d",
		m.selected.Line+1, s.Len(), column,
		vis.Lines.Start+1, vis.Lines.End, vis.Elements.Start+1, vis.Elements.End)
}
