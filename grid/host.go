package grid

import (
	"iter"
	"log/slog"
)

// Window keeps normalized options, visible ranges and the last scroll position together
// Single-threaded: the host serializes Update, ScrollTo and Render
type Window struct {
	cfg   Config
	state RangeState
	pos   ScrollPosition
	log   *slog.Logger
}

// NewWindow normalizes opts and computes the initial ranges
// A nil logger discards output
func NewWindow(opts Options, logger *slog.Logger) *Window {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &Window{log: logger}
	w.Update(opts)
	return w
}

// Update replaces the declarative inputs and recomputes both axes
// A non-zero scroll position is reapplied to the fresh ranges
func (w *Window) Update(opts Options) {
	w.cfg = Normalize(opts)
	for _, f := range w.cfg.Fallbacks {
		w.log.Debug("option fallback", "option", f.Option, "value", f.Value)
	}
	w.state = Recompute(w.cfg)
	if w.pos != (ScrollPosition{}) {
		w.state = Scroll(w.cfg, w.state, w.pos)
	}
	w.log.Debug("grid recomputed",
		"rows", w.cfg.Rows,
		"columns", w.cfg.Columns,
		"row_sizing", w.cfg.RowHeight.Kind(),
		"column_sizing", w.cfg.ColumnWidth.Kind(),
		"visible_rows", w.state.Rows,
		"visible_columns", w.state.Columns,
	)
}

// ScrollTo records a scroll notification and recomputes the ranges it affects
// Returns true if the visible ranges changed
func (w *Window) ScrollTo(pos ScrollPosition) bool {
	w.pos = pos.sanitized()
	prev := w.state
	w.state = Scroll(w.cfg, prev, w.pos)
	if w.state == prev {
		return false
	}
	w.log.Debug("visible range changed",
		"top", w.pos.Top,
		"left", w.pos.Left,
		"visible_rows", w.state.Rows,
		"visible_columns", w.state.Columns,
	)
	return true
}

// Config returns the normalized inputs
func (w *Window) Config() Config {
	return w.cfg
}

// State returns the current visible ranges
func (w *Window) State() RangeState {
	return w.state
}

// Position returns the last scroll position received
func (w *Window) Position() ScrollPosition {
	return w.pos
}

// Extent returns total scrollable width and height
func (w *Window) Extent() (width, height float64) {
	return w.cfg.Extent()
}

// VisibleCells yields geometry for the visible cells
func (w *Window) VisibleCells() iter.Seq[CellGeometry] {
	return Cells(w.cfg, w.state)
}

// Render produces content for the visible cells
func (w *Window) Render() []Rendered {
	return Render(w.cfg, w.state)
}
