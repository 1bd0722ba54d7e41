package terminal

// Attr is a set of text attribute bits
type Attr uint8

const AttrNone Attr = 0

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
)

// AttrStyle masks every attribute bit
const AttrStyle = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse

// Cell is one screen position of a frame buffer
// Rune 0 right after a double-width rune is its continuation, elsewhere it renders as a space
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}
