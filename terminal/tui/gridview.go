package tui

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lixenwraith/vgrid/grid"
	"github.com/lixenwraith/vgrid/input"
)

// CellDrawer is cell content that paints itself into its clipped cell region
type CellDrawer interface {
	DrawCell(r Region, st Style)
}

// HeaderFunc returns the header label of a column, "" leaves it blank
type HeaderFunc func(col int) string

// GridView hosts a windowing engine inside a terminal region
// The body area is the engine's viewport, its scroll offsets are the engine's scroll notifications
type GridView struct {
	opts       grid.Options
	win        *grid.Window
	scroll     *ViewportScroll
	theme      Theme
	header     HeaderFunc
	rowNumbers bool
	log        *slog.Logger

	bodyW, bodyH int
	sized        bool
}

// NewGridView creates a view over opts, container sizes are taken from the region at draw time
// A nil logger discards output
func NewGridView(opts grid.Options, theme Theme, logger *slog.Logger) *GridView {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	opts.ContainerWidth, opts.ContainerHeight = 0, 0
	return &GridView{
		opts:   opts,
		win:    grid.NewWindow(opts, logger),
		scroll: NewViewportScroll(),
		theme:  theme,
		log:    logger,
	}
}

// SetOptions replaces grid shape, sizing and content, keeping the current body size and scroll offsets
func (g *GridView) SetOptions(opts grid.Options) {
	opts.ContainerWidth, opts.ContainerHeight = g.bodyW, g.bodyH
	g.opts = opts
	g.win.Update(opts)
	g.syncScroll()
}

// SetHeader enables a header row, nil disables it
func (g *GridView) SetHeader(fn HeaderFunc) {
	g.header = fn
	g.sized = false
}

// SetRowNumbers toggles the row-number gutter
func (g *GridView) SetRowNumbers(on bool) {
	g.rowNumbers = on
	g.sized = false
}

// RowNumbers reports whether the gutter is shown
func (g *GridView) RowNumbers() bool {
	return g.rowNumbers
}

// SetTheme replaces the color theme
func (g *GridView) SetTheme(t Theme) {
	g.theme = t
}

// Window returns the hosted windowing engine
func (g *GridView) Window() *grid.Window {
	return g.win
}

// Scroll returns the scroll state
func (g *GridView) Scroll() *ViewportScroll {
	return g.scroll
}

// ScrollTo moves to absolute offsets and notifies the engine
// Returns true if the offsets changed
func (g *GridView) ScrollTo(top, left float64) bool {
	before := g.scroll.Position()
	g.scroll.ScrollTo(top, left)
	return g.notify(before)
}

// notify forwards the scroll position to the engine if it moved since before
func (g *GridView) notify(before grid.ScrollPosition) bool {
	pos := g.scroll.Position()
	if pos == before {
		return false
	}
	g.win.ScrollTo(pos)
	return true
}

// resize makes the body size the engine's viewport
func (g *GridView) resize(w, h int) {
	if g.sized && w == g.bodyW && h == g.bodyH {
		return
	}
	g.bodyW, g.bodyH = w, h
	g.sized = true
	g.opts.ContainerWidth, g.opts.ContainerHeight = w, h
	g.win.Update(g.opts)
	g.syncScroll()
	g.log.Debug("grid view resized", "width", w, "height", h)
}

// syncScroll refreshes scroll bounds from the engine extent and reapplies the clamped offsets
func (g *GridView) syncScroll() {
	cw, ch := g.win.Extent()
	g.scroll.SetDimensions(cw, ch, float64(g.bodyW), float64(g.bodyH))
	g.win.ScrollTo(g.scroll.Position())
}

// gutterWidth returns the row-number gutter width including its trailing space
func (g *GridView) gutterWidth() int {
	if !g.rowNumbers {
		return 0
	}
	return Digits(max(g.win.Config().Rows-1, 0)) + 1
}

// --- Drawing ---

// gridLayout is the split of a view region into its parts
type gridLayout struct {
	head   Region // Header cells, right of the gutter
	gutter Region
	body   Region
	vbar   Region
	hbar   Region
}

// layout splits r and makes the body size the engine's viewport
func (g *GridView) layout(r Region) gridLayout {
	headerH := 0
	if g.header != nil {
		headerH = 1
	}
	gutterW := g.gutterWidth()

	frame, hbar := SplitVFixedBottom(r, 1)
	frame, vbar := SplitHFixedRight(frame, 1)
	head, rest := SplitVFixed(frame, headerH)
	gutter, body := SplitHFixed(rest, gutterW)
	_, headCells := SplitHFixed(head, gutterW)

	g.resize(body.W, body.H)
	return gridLayout{head: headCells, gutter: gutter, body: body, vbar: vbar, hbar: hbar}
}

// Layout sizes the engine viewport for r without drawing
// Call it before reading the visible ranges of a frame that has not been drawn yet
func (g *GridView) Layout(r Region) {
	g.layout(r)
}

// Draw lays out header, gutter, body and scrollbars inside r and paints the visible cells
func (g *GridView) Draw(r Region) {
	if r.Empty() {
		return
	}
	r.Fill(g.theme.Bg)

	l := g.layout(r)
	if g.header != nil {
		r.Sub(0, 0, r.W, 1).Fill(g.theme.HeaderBg)
	}
	g.drawCells(l.body)
	g.drawLabels(l.head, l.gutter)

	ScrollBar(l.vbar, 0, g.scroll.Top, g.scroll.ViewH, g.scroll.ContentH, g.theme.Accent)
	HScrollBar(l.hbar, 0, g.scroll.Left, g.scroll.ViewW, g.scroll.ContentW, g.theme.Accent)
}

// drawCells paints rendered content at its absolute geometry translated by the scroll offsets
func (g *GridView) drawCells(body Region) {
	for _, c := range g.win.Render() {
		x, y, w, h := g.scroll.Project(c.Left, c.Top, c.Width, c.Height)
		cell := body.Sub(x, y, w, h)
		if cell.Empty() {
			continue
		}
		st := g.theme.Cell(c.Row)
		cell.Fill(st.Bg)

		switch v := c.Content.(type) {
		case CellDrawer:
			v.DrawCell(cell, st)
		case string:
			drawLabel(body, x, y, w, v, st)
		case fmt.Stringer:
			drawLabel(body, x, y, w, v.String(), st)
		default:
			drawLabel(body, x, y, w, fmt.Sprint(v), st)
		}
	}
}

// drawLabel writes s on the first line of a projected cell, leaving one trailing column as separator
func drawLabel(body Region, x, y, w int, s string, st Style) {
	if y < 0 || y >= body.H || w <= 0 {
		return
	}
	limit := w
	if w > 1 {
		limit = w - 1
	}
	line := body.Sub(0, y, x+w, 1)
	line.TextStyle(x, 0, Truncate(s, limit), st)
}

// drawLabels writes column headers for the first visible row and row numbers for the first visible column
func (g *GridView) drawLabels(head, gutter Region) {
	firstRow, firstCol := -1, -1
	hs := g.theme.Header()
	gs := g.theme.Gutter()

	for c := range g.win.VisibleCells() {
		if firstRow < 0 {
			firstRow, firstCol = c.Row, c.Column
		}
		if c.Row == firstRow && g.header != nil && !head.Empty() {
			x, _, w, _ := g.scroll.Project(c.Left, 0, c.Width, 1)
			if label := g.header(c.Column); label != "" {
				drawLabel(head, x, 0, w, label, hs)
			}
		}
		if c.Column == firstCol && !gutter.Empty() {
			_, y, _, h := g.scroll.Project(0, c.Top, 1, c.Height)
			if h > 0 && y >= 0 && y < gutter.H {
				label := strconv.Itoa(c.Row)
				gutter.TextStyle(gutter.W-1-Width(label), y, label, gs)
			}
		}
	}
}

// --- Navigation ---

// Move applies a motion count times and notifies the engine
// Returns true if the offsets changed, a motion against an edge returns false
func (g *GridView) Move(m input.Motion, count int) bool {
	before := g.scroll.Position()
	n := max(count, 1)

	switch m {
	case input.MotionUp:
		g.step(true, -n)
	case input.MotionDown:
		g.step(true, n)
	case input.MotionLeft:
		g.step(false, -n)
	case input.MotionRight:
		g.step(false, n)
	case input.MotionPageUp:
		g.scroll.ScrollBy(0, -g.scroll.ViewH*float64(n))
	case input.MotionPageDown:
		g.scroll.ScrollBy(0, g.scroll.ViewH*float64(n))
	case input.MotionHalfPageUp:
		g.scroll.ScrollBy(0, -g.scroll.HalfPage()*float64(n))
	case input.MotionHalfPageDown:
		g.scroll.ScrollBy(0, g.scroll.HalfPage()*float64(n))
	case input.MotionPageLeft:
		g.scroll.ScrollBy(-g.scroll.ViewW*float64(n), 0)
	case input.MotionPageRight:
		g.scroll.ScrollBy(g.scroll.ViewW*float64(n), 0)
	case input.MotionTop:
		g.scroll.Home()
	case input.MotionBottom:
		g.scroll.End()
	case input.MotionOrigin:
		g.scroll.Home()
		g.scroll.LineStart()
	case input.MotionLineStart:
		g.scroll.LineStart()
	case input.MotionLineEnd:
		g.scroll.LineEnd()
	case input.MotionGotoRow:
		g.jump(true, count)
	case input.MotionGotoColumn:
		g.jump(false, count)
	}
	return g.notify(before)
}

// axis returns the sizing, count and current offset of one axis
func (g *GridView) axis(vertical bool) (grid.Sizing, int, float64) {
	cfg := g.win.Config()
	if vertical {
		return cfg.RowHeight, cfg.Rows, g.scroll.Top
	}
	return cfg.ColumnWidth, cfg.Columns, g.scroll.Left
}

// step moves n rows or columns, aligning the offset to the start of the target index
// A partially scrolled index counts as the first step when moving backwards
func (g *GridView) step(vertical bool, n int) {
	s, count, off := g.axis(vertical)
	idx := s.IndexAt(count, off)
	if idx < 0 || n == 0 {
		return
	}
	target := idx + n
	if n < 0 && s.Offset(idx) < off {
		target++
	}
	g.jump(vertical, target)
}

// jump scrolls so that index i is the first visible, clamped to the grid
func (g *GridView) jump(vertical bool, i int) {
	s, count, _ := g.axis(vertical)
	if count == 0 {
		return
	}
	off := s.Offset(max(0, min(i, count-1)))
	if vertical {
		g.scroll.ScrollTo(off, g.scroll.Left)
	} else {
		g.scroll.ScrollTo(g.scroll.Top, off)
	}
}
