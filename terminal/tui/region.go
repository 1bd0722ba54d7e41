package tui

import "github.com/lixenwraith/vgrid/terminal"

// Region is a clipped rectangular window onto a row-major cell buffer
// Drawing methods take region-relative coordinates and silently drop anything outside
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Row stride of Cells
	X, Y   int // Origin in the buffer
	W, H   int
}

// Screen returns a region covering a whole w x h buffer, allocating when cells is too small
func Screen(cells []terminal.Cell, w, h int) Region {
	w, h = max(w, 0), max(h, 0)
	if len(cells) < w*h {
		cells = make([]terminal.Cell, w*h)
	}
	return Region{Cells: cells[:w*h], TotalW: w, W: w, H: h}
}

// Sub returns the part of r at x, y of size w x h, clipped to r
// The origin is not clamped past the right or bottom edge, the result is then empty
func (r Region) Sub(x, y, w, h int) Region {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, r.W), min(y+h, r.H)
	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x0,
		Y:      r.Y + y0,
		W:      max(x1-x0, 0),
		H:      max(y1-y0, 0),
	}
}

// index returns the buffer index of a region cell, -1 when clipped
func (r Region) index(x, y int) int {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return -1
	}
	ax := r.X + x
	if ax >= r.TotalW {
		return -1
	}
	i := (r.Y+y)*r.TotalW + ax
	if i >= len(r.Cells) {
		return -1
	}
	return i
}

// Cell writes one cell
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if i := r.index(x, y); i >= 0 {
		r.Cells[i] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// Put writes one cell with a Style
func (r Region) Put(x, y int, ch rune, s Style) {
	r.Cell(x, y, ch, s.Fg, s.Bg, s.Attr)
}

// At returns the cell at x, y, the zero Cell when clipped
func (r Region) At(x, y int) terminal.Cell {
	if i := r.index(x, y); i >= 0 {
		return r.Cells[i]
	}
	return terminal.Cell{}
}

// Fill blanks the region with bg
func (r Region) Fill(bg terminal.RGB) {
	blank := terminal.Cell{Rune: ' ', Bg: bg}
	for y := range r.H {
		start := r.index(0, y)
		if start < 0 {
			return
		}
		end := min(start+r.W, len(r.Cells), (r.Y+y+1)*r.TotalW)
		row := r.Cells[start:end]
		for i := range row {
			row[i] = blank
		}
	}
}

// Clear blanks the region with the default background
func (r Region) Clear() {
	r.Fill(terminal.RGB{})
}

// Empty reports whether nothing can be drawn
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Bounds returns the origin in the buffer and the size
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}
