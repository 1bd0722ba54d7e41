package terminal

import "github.com/gdamore/tcell/v2"

// StyleOf converts cell colors and attributes to a tcell style
// Zero RGB maps to tcell.ColorDefault
func StyleOf(fg, bg RGB, attr Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(colorOf(fg)).
		Background(colorOf(bg)).
		Attributes(AttrMask(attr))
}

func colorOf(c RGB) tcell.Color {
	if c.IsZero() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// attrPairs lines up each Attr bit with its tcell counterpart
var attrPairs = [...]struct {
	attr Attr
	mask tcell.AttrMask
}{
	{AttrBold, tcell.AttrBold},
	{AttrDim, tcell.AttrDim},
	{AttrItalic, tcell.AttrItalic},
	{AttrUnderline, tcell.AttrUnderline},
	{AttrBlink, tcell.AttrBlink},
	{AttrReverse, tcell.AttrReverse},
}

// AttrMask converts Attr bits to a tcell mask
func AttrMask(a Attr) tcell.AttrMask {
	mask := tcell.AttrNone
	for _, p := range attrPairs {
		if a&p.attr != 0 {
			mask |= p.mask
		}
	}
	return mask
}

// AttrFromMask converts a tcell mask back to Attr bits, bits without a counterpart are dropped
func AttrFromMask(mask tcell.AttrMask) Attr {
	var a Attr
	for _, p := range attrPairs {
		if mask&p.mask != 0 {
			a |= p.attr
		}
	}
	return a
}
