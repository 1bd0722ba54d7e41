package tui

import (
	"math"
	"strconv"

	"github.com/lixenwraith/vgrid/terminal"
)

// ScrollPercent returns the offset as 0-100 of the scrollable distance
func ScrollPercent(offset, visible, total float64) int {
	span := total - visible
	if !(span > 0) {
		return 0
	}
	return max(0, min(100, int(offset*100/span)))
}

// ScrollLabel returns compact position text: "All", "Top", "Bot" or "XX%"
func ScrollLabel(offset, visible, total float64) string {
	switch {
	case total <= visible:
		return "All"
	case offset <= 0:
		return "Top"
	case offset+visible >= total:
		return "Bot"
	}
	return strconv.Itoa(min(ScrollPercent(offset, visible, total), 99)) + "%"
}

// thumb returns thumb start and length along a track of n cells
func thumb(n int, offset, visible, total float64) (start, length int) {
	length = max(1, min(n, int(visible/total*float64(n))))
	if span := total - visible; span > 0 {
		start = int(math.Round(offset / span * float64(n-length)))
	}
	return max(0, min(start, n-length)), length
}

// track draws a scrollbar of n cells through put
// A track with nothing to scroll, or too short for a thumb, is drawn as a dim rule
func track(n int, offset, visible, total float64, rule rune, put func(i int, ch rune, attr terminal.Attr)) {
	if total <= visible || n < 3 {
		for i := range n {
			put(i, rule, terminal.AttrDim)
		}
		return
	}
	start, length := thumb(n, offset, visible, total)
	for i := range n {
		ch := '░'
		if i >= start && i < start+length {
			ch = '█'
		}
		put(i, ch, terminal.AttrNone)
	}
}

// ScrollBar draws a vertical scrollbar in column x
func ScrollBar(r Region, x int, offset, visible, total float64, fg terminal.RGB) {
	if x < 0 || x >= r.W {
		return
	}
	track(r.H, offset, visible, total, '│', func(y int, ch rune, attr terminal.Attr) {
		r.Cell(x, y, ch, fg, terminal.RGB{}, attr)
	})
}

// HScrollBar draws a horizontal scrollbar in row y
func HScrollBar(r Region, y int, offset, visible, total float64, fg terminal.RGB) {
	if y < 0 || y >= r.H {
		return
	}
	track(r.W, offset, visible, total, '─', func(x int, ch rune, attr terminal.Attr) {
		r.Cell(x, y, ch, fg, terminal.RGB{}, attr)
	})
}
