// Package tui draws into terminal cell buffers through clipped Regions.
//
// It provides text and box primitives, 2-D scroll state, scrollbars, a status
// bar and GridView, which hosts a grid.Window: the view's body is the engine's
// viewport and every scroll offset change is forwarded as a scroll notification.
//
// Usage pattern:
//
//	view := tui.NewGridView(opts, tui.DefaultTheme, logger)
//	cells := make([]terminal.Cell, w*h)
//	view.Draw(tui.Screen(cells, w, h))
//	term.Flush(cells, w, h)
package tui
