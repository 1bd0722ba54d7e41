package tui

import (
	"math"

	"github.com/lixenwraith/vgrid/grid"
)

// ViewportScroll owns the 2-D scroll position of a content area larger than its viewport
// Offsets are clamped to [0, content - viewport] on each axis
type ViewportScroll struct {
	Top      float64
	Left     float64
	ContentW float64
	ContentH float64
	ViewW    float64
	ViewH    float64
}

// NewViewportScroll creates viewport scroll state
func NewViewportScroll() *ViewportScroll {
	return &ViewportScroll{}
}

// SetDimensions updates content and viewport sizes, clamps offsets
func (v *ViewportScroll) SetDimensions(contentW, contentH, viewW, viewH float64) {
	v.ContentW = contentW
	v.ContentH = contentH
	v.ViewW = viewW
	v.ViewH = viewH
	v.clamp()
}

// MaxTop returns maximum valid vertical offset
func (v *ViewportScroll) MaxTop() float64 {
	return maxOffset(v.ContentH, v.ViewH)
}

// MaxLeft returns maximum valid horizontal offset
func (v *ViewportScroll) MaxLeft() float64 {
	return maxOffset(v.ContentW, v.ViewW)
}

func maxOffset(content, view float64) float64 {
	m := content - view
	if !(m > 0) {
		return 0
	}
	return m
}

// ScrollBy adjusts offsets by delta
func (v *ViewportScroll) ScrollBy(dx, dy float64) {
	v.Left += dx
	v.Top += dy
	v.clamp()
}

// ScrollTo sets absolute offsets
func (v *ViewportScroll) ScrollTo(top, left float64) {
	v.Top = top
	v.Left = left
	v.clamp()
}

// PageUp scrolls up by viewport height
func (v *ViewportScroll) PageUp() {
	v.ScrollBy(0, -v.ViewH)
}

// PageDown scrolls down by viewport height
func (v *ViewportScroll) PageDown() {
	v.ScrollBy(0, v.ViewH)
}

// HalfPage returns half the viewport height rounded down, at least 1
func (v *ViewportScroll) HalfPage() float64 {
	return math.Max(1, math.Floor(v.ViewH/2))
}

// HalfPageUp scrolls up by half the viewport height
func (v *ViewportScroll) HalfPageUp() {
	v.ScrollBy(0, -v.HalfPage())
}

// HalfPageDown scrolls down by half the viewport height
func (v *ViewportScroll) HalfPageDown() {
	v.ScrollBy(0, v.HalfPage())
}

// PageLeft scrolls left by viewport width
func (v *ViewportScroll) PageLeft() {
	v.ScrollBy(-v.ViewW, 0)
}

// PageRight scrolls right by viewport width
func (v *ViewportScroll) PageRight() {
	v.ScrollBy(v.ViewW, 0)
}

// Home scrolls to top
func (v *ViewportScroll) Home() {
	v.Top = 0
}

// End scrolls to bottom
func (v *ViewportScroll) End() {
	v.Top = v.MaxTop()
}

// LineStart scrolls to the leftmost column
func (v *ViewportScroll) LineStart() {
	v.Left = 0
}

// LineEnd scrolls to the rightmost column
func (v *ViewportScroll) LineEnd() {
	v.Left = v.MaxLeft()
}

// Position returns the offsets as a scroll notification for the windowing engine
func (v *ViewportScroll) Position() grid.ScrollPosition {
	return grid.ScrollPosition{Top: v.Top, Left: v.Left}
}

func (v *ViewportScroll) clamp() {
	v.Top = clampOffset(v.Top, v.MaxTop())
	v.Left = clampOffset(v.Left, v.MaxLeft())
}

func clampOffset(off, max float64) float64 {
	if math.IsNaN(off) || off < 0 {
		return 0
	}
	if off > max {
		return max
	}
	return off
}

// Project maps a content rectangle to viewport cell coordinates without clipping
// Both edges are floored so adjacent rectangles tile without gaps
func (v *ViewportScroll) Project(left, top, w, h float64) (x, y, cw, ch int) {
	x0 := int(math.Floor(left - v.Left))
	y0 := int(math.Floor(top - v.Top))
	x1 := int(math.Floor(left + w - v.Left))
	y1 := int(math.Floor(top + h - v.Top))
	return x0, y0, x1 - x0, y1 - y0
}
