package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var accentColor = color.NRGBA{R: 0x00, G: 0xBF, B: 0xFF, A: 0xFF}

type etherollTheme struct {
	fyne.Theme
}

// NewTheme returns the default theme with the project accent colour.
func NewTheme() fyne.Theme {
	return &etherollTheme{Theme: theme.DefaultTheme()}
}

func (t *etherollTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameHyperlink, theme.ColorNameFocus:
		return accentColor
	}
	return t.Theme.Color(name, variant)
}
