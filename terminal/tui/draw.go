package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vgrid/terminal"
)

// Border selects the box drawing set
type Border uint8

const (
	BorderSingle  Border = iota // ┌─┐│└┘
	BorderRounded               // ╭─╮│╰╯
)

// borderRunes holds corners and edges in the order tl, h, tr, v, bl, br
var borderRunes = [...][6]rune{
	BorderSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	BorderRounded: {'╭', '─', '╮', '│', '╰', '╯'},
}

// Text writes s on row y from column x and returns the columns consumed
// A double-width rune takes two cells, the second holding rune 0, and is dropped when only half fits
// Columns left of the region are consumed without writing so text may start at negative x
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		if col >= 0 {
			r.Cell(col, y, ch, fg, bg, attr)
			if w == 2 {
				r.Cell(col+1, y, 0, fg, bg, attr)
			}
		}
		col += w
	}
	return col - x
}

// TextStyle writes s with st
func (r Region) TextStyle(x, y int, s string, st Style) int {
	return r.Text(x, y, s, st.Fg, st.Bg, st.Attr)
}

// TextCenter writes s centered on row y
func (r Region) TextCenter(y int, s string, st Style) {
	r.TextStyle((r.W-Width(s))/2, y, s, st)
}

// Box draws a border along the region edge
func (r Region) Box(b Border, st Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	set := borderRunes[min(int(b), len(borderRunes)-1)]
	right, bottom := r.W-1, r.H-1

	for x := 1; x < right; x++ {
		r.Put(x, 0, set[1], st)
		r.Put(x, bottom, set[1], st)
	}
	for y := 1; y < bottom; y++ {
		r.Put(0, y, set[3], st)
		r.Put(right, y, set[3], st)
	}
	r.Put(0, 0, set[0], st)
	r.Put(right, 0, set[2], st)
	r.Put(0, bottom, set[4], st)
	r.Put(right, bottom, set[5], st)
}

// Card fills r with st.Bg, draws a titled border and returns the inner region
func (r Region) Card(title string, b Border, st Style) Region {
	r.Fill(st.Bg)
	r.Box(b, st)
	if title != "" && r.W > 4 {
		label := " " + Truncate(title, r.W-4) + " "
		r.Sub(0, 0, r.W, 1).TextCenter(0, label, Style{Fg: st.Fg, Bg: st.Bg, Attr: terminal.AttrBold})
	}
	return r.Sub(1, 1, r.W-2, r.H-2)
}
