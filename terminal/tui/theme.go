package tui

import "github.com/lixenwraith/vgrid/terminal"

// Theme defines semantic colors for the grid view
type Theme struct {
	Fg       terminal.RGB
	Bg       terminal.RGB
	HeaderFg terminal.RGB
	HeaderBg terminal.RGB
	GutterFg terminal.RGB
	Border   terminal.RGB
	Accent   terminal.RGB // Scrollbar thumb and status values
	Stripe   terminal.RGB // Background of odd rows
	StatusFg terminal.RGB
	StatusBg terminal.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Fg:       terminal.RGB{R: 200, G: 200, B: 200},
	Bg:       terminal.RGB{R: 20, G: 20, B: 30},
	HeaderFg: terminal.RGB{R: 255, G: 255, B: 255},
	HeaderBg: terminal.RGB{R: 40, G: 60, B: 90},
	GutterFg: terminal.RGB{R: 100, G: 110, B: 120},
	Border:   terminal.RGB{R: 60, G: 80, B: 100},
	Accent:   terminal.RGB{R: 100, G: 180, B: 200},
	Stripe:   terminal.RGB{R: 28, G: 28, B: 40},
	StatusFg: terminal.RGB{R: 140, G: 140, B: 140},
	StatusBg: terminal.RGB{R: 30, G: 30, B: 50},
}

// Cell returns the body style for a row, odd rows use the stripe background
func (t Theme) Cell(row int) Style {
	bg := t.Bg
	if row%2 == 1 && !t.Stripe.IsZero() {
		bg = t.Stripe
	}
	return Style{Fg: t.Fg, Bg: bg}
}

// Header returns the header row style
func (t Theme) Header() Style {
	return Style{Fg: t.HeaderFg, Bg: t.HeaderBg, Attr: terminal.AttrBold}
}

// Gutter returns the row-number gutter style
func (t Theme) Gutter() Style {
	return Style{Fg: t.GutterFg, Bg: t.Bg, Attr: terminal.AttrDim}
}
