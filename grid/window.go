package grid

import "math"

// Range is an inclusive span of visible indices along one axis
// Last < First denotes an empty range
type Range struct {
	First int
	Last  int
}

// emptyRange renders nothing
var emptyRange = Range{First: 0, Last: -1}

// Len returns the number of indices in the range
func (r Range) Len() int {
	n := r.Last - r.First + 1
	if n < 0 {
		return 0
	}
	return n
}

// Empty returns true if the range holds no index
func (r Range) Empty() bool {
	return r.Last < r.First
}

// Contains returns true if i lies within the range
func (r Range) Contains(i int) bool {
	return i >= r.First && i <= r.Last
}

// clip intersects the range with [0, count)
func (r Range) clip(count int) Range {
	if r.First < 0 {
		r.First = 0
	}
	if r.Last > count-1 {
		r.Last = count - 1
	}
	return r
}

// ScrollPosition is the host-owned scroll offset
type ScrollPosition struct {
	Top  float64
	Left float64
}

func (p ScrollPosition) sanitized() ScrollPosition {
	if !(p.Top > 0) || math.IsInf(p.Top, 1) {
		p.Top = 0
	}
	if !(p.Left > 0) || math.IsInf(p.Left, 1) {
		p.Left = 0
	}
	return p
}

// RangeState holds the visible ranges of both axes
type RangeState struct {
	Rows    Range
	Columns Range
}

// Cells returns the number of visible cells
func (s RangeState) Cells() int {
	return s.Rows.Len() * s.Columns.Len()
}

// --- Recomputation ---

// Recompute derives visible ranges from grid shape, sizing and viewport alone
// Call it whenever any declarative input changes
func Recompute(cfg Config) RangeState {
	return RangeState{
		Rows:    recomputeAxis(cfg.PerIndex, cfg.RowHeight, cfg.Rows, cfg.Viewport.Height),
		Columns: recomputeAxis(cfg.PerIndex, cfg.ColumnWidth, cfg.Columns, cfg.Viewport.Width),
	}
}

// Scroll derives visible ranges for a new scroll position from the previous state
// Under PerIndexFrozen the state is returned unchanged while either axis is PerIndex
func Scroll(cfg Config, prev RangeState, pos ScrollPosition) RangeState {
	pos = pos.sanitized()
	if cfg.PerIndex == PerIndexSearch {
		return RangeState{
			Rows:    scrollAxis(cfg.RowHeight, cfg.Rows, cfg.Viewport.Height, pos.Top, prev.Rows),
			Columns: scrollAxis(cfg.ColumnWidth, cfg.Columns, cfg.Viewport.Width, pos.Left, prev.Columns),
		}
	}
	if cfg.HasPerIndex() {
		return prev
	}
	return RangeState{
		Rows:    scrollUniform(cfg.RowHeight.size, cfg.Rows, cfg.Viewport.Height, pos.Top, prev.Rows),
		Columns: scrollUniform(cfg.ColumnWidth.size, cfg.Columns, cfg.Viewport.Width, pos.Left, prev.Columns),
	}
}

// initialRange applies last = min(viewport/size, count) - 1 with first = 0
// The fit may be fractional, visible count is rounded
func initialRange(s Sizing, count int, viewport float64) Range {
	size := s.Representative(count)
	if count <= 0 || !(size > 0) {
		return emptyRange
	}
	fit := math.Min(viewport/size, float64(count))
	n := int(math.Round(fit))
	return Range{First: 0, Last: n - 1}
}

// scrollUniform applies the closed form for one Uniform axis
// A candidate last >= count is rejected and the previous last kept, unless that would
// leave last behind first after a jump, in which case last becomes count-1
// An offset past the end of the axis yields an empty range
func scrollUniform(size float64, count int, viewport, offset float64, prev Range) Range {
	if count <= 0 || !(size > 0) || !(viewport > 0) {
		return emptyRange
	}
	start := math.Floor(offset / size)
	if start >= float64(count) {
		return emptyRange
	}
	first := int(start)
	last := prev.Last
	if candidate := int(math.Floor((offset + viewport) / size)); candidate < count {
		last = candidate
	} else if last < first {
		last = count - 1
	}
	return Range{First: first, Last: last}
}

func recomputeAxis(policy PerIndexPolicy, s Sizing, count int, viewport float64) Range {
	if policy == PerIndexSearch && !s.IsUniform() {
		return searchRange(s, count, viewport, 0)
	}
	return initialRange(s, count, viewport)
}

// scrollAxis routes Uniform axes to the closed form and PerIndex axes to the prefix-sum walk
func scrollAxis(s Sizing, count int, viewport, offset float64, prev Range) Range {
	if s.IsUniform() {
		return scrollUniform(s.size, count, viewport, offset, prev)
	}
	return searchRange(s, count, viewport, offset)
}
