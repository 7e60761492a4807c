package termview

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	table "github.com/grindlemire/go-table"
	"github.com/grindlemire/go-table/internal/debug"
)

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case SheetMsg:
		m.view.Set(msg.Sheet)
		m.clampSelection()
		m.err = nil
		m.layout()
		debug.Log("termview: sheet %dx%d", msg.Sheet.Len(), msg.Sheet.Width())
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "r":
		return m, m.reloadCmd()
	case "up", "k":
		m.move(0, -1)
	case "down", "j":
		m.move(0, 1)
	case "left", "h":
		m.move(-1, 0)
	case "right", "l":
		m.move(1, 0)
	case "pgup":
		m.page(-1)
	case "pgdown", " ":
		m.page(1)
	case "home", "g":
		m.selected = table.CellPosition{}
		m.view.ScrollTo(table.Point{})
	case "end", "G":
		l := m.view.TableLayout()
		m.selected = table.CellPosition{Line: l.Lines().Len() - 1, Element: l.Elements().Len() - 1}
		m.clampSelection()
		m.view.ScrollTo(table.Point{X: math.Inf(1), Y: math.Inf(1)})
	case "+", "=":
		m.resizeSelected(1)
	case "-":
		m.resizeSelected(-1)
	}
	return m, nil
}

// move shifts the selection by dx columns and dy rows on screen and
// scrolls it into view.
func (m *Model) move(dx, dy int) {
	if !m.hasCells() {
		return
	}
	d := table.CellPosition{Line: dy, Element: dx}
	if m.view.TableLayout().LineAxis() == table.Horizontal {
		d = table.CellPosition{Line: dx, Element: dy}
	}
	m.selected.Line += d.Line
	m.selected.Element += d.Element
	m.clampSelection()
	m.reveal()
}

func (m *Model) reveal() {
	if m.view.NeedsLayout() {
		m.layout()
	}
	if m.view.NeedsLayout() {
		return
	}
	m.view.ScrollToCell(m.selected.Line, m.selected.Element)
}

// page scrolls a viewport height up or down.
func (m *Model) page(dir float64) {
	vp := m.view.Viewport()
	m.view.ScrollBy(table.Point{Y: dir * vp.Height})
}

// resizeSelected widens or narrows the selected element by one cell.
func (m *Model) resizeSelected(delta float64) {
	if !m.hasCells() {
		return
	}
	part := m.view.TableLayout().Elements().Part(m.selected.Element)
	m.view.Resize(table.ElementAxis, m.selected.Element, max(part.Size()+delta, 1))
	m.layout()
}

// handleMouseMsg scrolls on the wheel and selects on click.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var delta table.Point
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		delta.Y = -1
	case tea.MouseButtonWheelDown:
		delta.Y = 1
	case tea.MouseButtonWheelLeft:
		delta.X = -1
	case tea.MouseButtonWheelRight:
		delta.X = 1
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		if pos, ok := m.view.CellAt(table.Point{X: float64(msg.X), Y: float64(msg.Y)}); ok {
			m.selected = pos
		}
		return m, nil
	default:
		return m, nil
	}

	data := m.view.Sheet()
	m.view.Event(table.ScrollEvent{Delta: delta}, &data)
	return m, nil
}
