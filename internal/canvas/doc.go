// Package canvas is a terminal cell grid that implements table.Surface.
//
// Float geometry from the layout engine is rounded to whole cells. Each cell
// keeps the role it was painted with so a host can style runs of cells
// (termview maps roles to lipgloss styles). Wide runes occupy two cells; the
// second one is a continuation with width 0.
package canvas
