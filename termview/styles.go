package termview

import (
	"github.com/charmbracelet/lipgloss"

	table "github.com/grindlemire/go-table"
)

// Styles contains the lipgloss styles for each role plus the status bar.
type Styles struct {
	Background lipgloss.Style
	Cell       lipgloss.Style
	Header     lipgloss.Style
	Corner     lipgloss.Style
	Grid       lipgloss.Style
	Selected   lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	primary := lipgloss.Color("86")
	muted := lipgloss.Color("239")

	return Styles{
		Background: lipgloss.NewStyle(),
		Cell:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Background(lipgloss.Color("236")),
		Corner: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Grid:   lipgloss.NewStyle().Foreground(muted),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(primary),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// Role returns the style cells of role r are rendered with.
func (s Styles) Role(r table.Role) lipgloss.Style {
	switch r {
	case table.RoleCell:
		return s.Cell
	case table.RoleHeader:
		return s.Header
	case table.RoleCorner:
		return s.Corner
	case table.RoleGrid:
		return s.Grid
	case table.RoleSelected:
		return s.Selected
	default:
		return s.Background
	}
}
