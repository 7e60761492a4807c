package fynetable

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	table "github.com/grindlemire/go-table"
)

// Swatch holds the colors used for one role. Fill is used for areas, Ink for
// text and lines.
type Swatch struct {
	Fill color.Color
	Ink  color.Color
}

// Palette maps roles to colors. Missing roles draw transparent.
type Palette map[table.Role]Swatch

// DefaultPalette derives a palette from the default fyne theme.
func DefaultPalette(variant fyne.ThemeVariant) Palette {
	th := theme.DefaultTheme()
	c := func(name fyne.ThemeColorName) color.Color {
		return th.Color(name, variant)
	}
	return Palette{
		table.RoleBackground: {Fill: c(theme.ColorNameBackground), Ink: c(theme.ColorNameForeground)},
		table.RoleCell:       {Fill: c(theme.ColorNameBackground), Ink: c(theme.ColorNameForeground)},
		table.RoleHeader:     {Fill: c(theme.ColorNameHeaderBackground), Ink: c(theme.ColorNameForeground)},
		table.RoleCorner:     {Fill: c(theme.ColorNameHeaderBackground), Ink: c(theme.ColorNameForeground)},
		table.RoleGrid:       {Fill: c(theme.ColorNameSeparator), Ink: c(theme.ColorNameSeparator)},
		table.RoleSelected:   {Fill: c(theme.ColorNameSelection), Ink: c(theme.ColorNameForeground)},
	}
}

func (p Palette) fill(r table.Role) color.Color {
	if s, ok := p[r]; ok && s.Fill != nil {
		return s.Fill
	}
	return color.Transparent
}

func (p Palette) ink(r table.Role) color.Color {
	if s, ok := p[r]; ok && s.Ink != nil {
		return s.Ink
	}
	return color.Transparent
}
