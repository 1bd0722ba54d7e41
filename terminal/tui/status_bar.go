package tui

import (
	"slices"

	"github.com/lixenwraith/vgrid/terminal"
)

// BarSection is one label/value pair of a status bar
type BarSection struct {
	Label      string
	Value      string
	LabelStyle Style
	ValueStyle Style
	Priority   int // Higher survives truncation
}

func (s BarSection) width() int {
	return Width(s.Label) + Width(s.Value)
}

// BarAlign packs sections against one end of the bar
type BarAlign uint8

const (
	BarAlignRight BarAlign = iota
	BarAlignLeft
)

// BarOpts configures status bar rendering
type BarOpts struct {
	Separator string // Default " │ "
	SepStyle  Style
	Bg        terminal.RGB
	Align     BarAlign
	Padding   int // Columns kept free at both ends, default 1
}

// DefaultBarOpts returns right-aligned bar options with a dim separator
func DefaultBarOpts() BarOpts {
	return BarOpts{
		Separator: " │ ",
		SepStyle:  Style{Fg: terminal.RGB{R: 80, G: 80, B: 100}},
		Padding:   1,
	}
}

// StatusBar fills row y with opts.Bg and writes sections in order
// The lowest-priority section is dropped until the rest fit, the first of equal priority goes first
func (r Region) StatusBar(y int, sections []BarSection, opts BarOpts) {
	if y < 0 || y >= r.H {
		return
	}
	if opts.Separator == "" {
		opts.Separator = " │ "
	}
	if opts.Padding == 0 {
		opts.Padding = 1
	}

	line := r.Sub(0, y, r.W, 1)
	line.Fill(opts.Bg)
	if len(sections) == 0 {
		return
	}

	sepW := Width(opts.Separator)
	shown := fitSections(sections, sepW, r.W-2*opts.Padding)

	x := opts.Padding
	if opts.Align == BarAlignRight {
		x = max(r.W-opts.Padding-barWidth(shown, sepW), opts.Padding)
	}
	line = line.Sub(0, 0, r.W-opts.Padding, 1)
	for i, sec := range shown {
		if i > 0 {
			x += line.Text(x, 0, opts.Separator, opts.SepStyle.Fg, opts.Bg, opts.SepStyle.Attr)
		}
		x += line.Text(x, 0, sec.Label, sec.LabelStyle.Fg, opts.Bg, sec.LabelStyle.Attr)
		x += line.Text(x, 0, sec.Value, sec.ValueStyle.Fg, opts.Bg, sec.ValueStyle.Attr)
	}
}

// barWidth is the width of sections joined by separators
func barWidth(sections []BarSection, sepW int) int {
	w := max(len(sections)-1, 0) * sepW
	for _, s := range sections {
		w += s.width()
	}
	return w
}

// fitSections drops lowest-priority sections until the bar fits, keeping at least one
func fitSections(sections []BarSection, sepW, availW int) []BarSection {
	secs := slices.Clone(sections)
	for len(secs) > 1 && barWidth(secs, sepW) > availW {
		lowest := slices.IndexFunc(secs, func(s BarSection) bool {
			return s.Priority == slices.MinFunc(secs, byPriority).Priority
		})
		secs = slices.Delete(secs, lowest, lowest+1)
	}
	return secs
}

func byPriority(a, b BarSection) int {
	return a.Priority - b.Priority
}
