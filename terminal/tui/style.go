package tui

import "github.com/lixenwraith/vgrid/terminal"

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// WithBg returns a copy with background replaced
func (s Style) WithBg(bg terminal.RGB) Style {
	s.Bg = bg
	return s
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg.IsZero() && s.Bg.IsZero() && s.Attr == terminal.AttrNone
}
