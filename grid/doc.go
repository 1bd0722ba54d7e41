// Package grid computes the visible window of a virtualized two-dimensional grid.
//
// Given grid dimensions, per-axis sizing rules, a viewport and a scroll position, the engine
// resolves total scrollable extent, the visible row and column index ranges, and the absolute
// geometry of each visible cell. Only visible cells are handed to the content callback, so render
// cost tracks viewport size rather than grid size.
//
// Design principles:
//   - Passive: no goroutines, no event loop, everything recomputed on demand
//   - Forgiving: malformed options degrade to zero values, never to errors
//   - Explicit: Normalize produces a typed Config, Recompute and Scroll are pure functions
//
// Usage pattern:
//
//	cfg := grid.Normalize(grid.Options{
//	    NumRows:         1_000_000,
//	    NumColumns:      200,
//	    RowHeight:       1,
//	    ColumnWidth:     grid.SizeFunc(widthOf),
//	    ContainerHeight: h,
//	    ContainerWidth:  w,
//	    Children:        grid.ContentFunc(label),
//	})
//	st := grid.Recompute(cfg)
//
//	// on every scroll notification
//	st = grid.Scroll(cfg, st, grid.ScrollPosition{Top: top, Left: left})
//
//	for _, c := range grid.Render(cfg, st) {
//	    draw(c.Top, c.Left, c.Content)
//	}
//
// Window wraps the same functions for hosts that prefer to keep the state in one place.
package grid
