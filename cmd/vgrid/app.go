package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lixenwraith/vgrid/input"
	"github.com/lixenwraith/vgrid/source"
	"github.com/lixenwraith/vgrid/status"
	"github.com/lixenwraith/vgrid/terminal"
	"github.com/lixenwraith/vgrid/terminal/tui"
)

// frameInterval caps the redraw rate while events arrive in bursts
const frameInterval = 16 * time.Millisecond

// app owns the frame buffer and routes terminal events to the grid view
type app struct {
	term   terminal.Terminal
	events <-chan terminal.Event
	view   *tui.GridView
	src    source.Source
	theme  tui.Theme
	label  string
	keys   *input.Machine
	stats  *status.Registry
	log    *slog.Logger

	cells   []terminal.Cell
	width   int
	height  int
	dirty   bool
	help    []tui.HelpLine // Shown while non-nil
	loadErr error
}

func newApp(term terminal.Terminal, events <-chan terminal.Event, view *tui.GridView, keys *input.Machine,
	src source.Source, theme tui.Theme, label string, stats *status.Registry, logger *slog.Logger) *app {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w, h := term.Size()
	return &app{
		term:   term,
		events: events,
		view:   view,
		src:    src,
		theme:  theme,
		label:  label,
		keys:   keys,
		stats:  stats,
		log:    logger,
		width:  w,
		height: h,
		dirty:  true,
	}
}

// run draws on demand until quit, context cancellation or a terminal error
func (a *app) run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-a.events:
			if !ok {
				return nil
			}
			quit, err := a.handle(ev)
			if err != nil || quit {
				return err
			}
		case <-ticker.C:
			if a.dirty {
				a.draw(ctx)
			}
		}
	}
}

// handle applies one event, quit reports a request to exit
func (a *app) handle(ev terminal.Event) (quit bool, err error) {
	switch ev.Type {
	case terminal.EventClosed:
		return true, nil
	case terminal.EventError:
		return true, fmt.Errorf("terminal: %w", ev.Err)
	case terminal.EventResize:
		a.width, a.height = ev.Width, ev.Height
		a.dirty = true
		return false, nil
	}

	// Any key closes the help card
	if a.help != nil && ev.Type == terminal.EventKey {
		a.help = nil
		a.keys.Reset()
		a.dirty = true
		return false, nil
	}

	// Key events redraw the pending sequence even when nothing moves
	in := a.keys.Process(ev)
	if ev.Type == terminal.EventKey {
		a.dirty = true
	}
	if in == nil {
		return false, nil
	}

	switch in.Type {
	case input.IntentQuit:
		return true, nil
	case input.IntentRedraw:
		a.term.Sync()
		a.dirty = true
	case input.IntentToggleNumbers:
		a.view.SetRowNumbers(!a.view.RowNumbers())
	case input.IntentHelp:
		a.help = helpLines(a.keys.Table())
	case input.IntentMotion:
		if a.view.Move(in.Motion, in.Count) {
			a.dirty = true
		} else {
			// Motion against an edge
			a.term.Beep()
		}
		a.log.Debug("motion", "intent", in, "position", a.view.Scroll().Position())
	}
	return false, nil
}

// draw renders one frame: layout, prefetch of the visible rows, cells, status line
func (a *app) draw(ctx context.Context) {
	a.dirty = false
	if a.width <= 0 || a.height <= 0 {
		return
	}
	start := time.Now()
	if len(a.cells) != a.width*a.height {
		a.cells = make([]terminal.Cell, a.width*a.height)
	}
	screen := tui.Screen(a.cells, a.width, a.height)
	screen.Clear()

	body, bar := tui.SplitVFixedBottom(screen, 1)
	a.view.Layout(body)

	st := a.view.Window().State()
	if err := a.src.Load(ctx, st.Rows, st.Columns); err != nil {
		if a.loadErr == nil {
			a.log.Error("source load failed", "rows", st.Rows, "error", err)
		}
		a.loadErr = err
	} else {
		a.loadErr = nil
	}

	a.view.Draw(body)
	if a.help != nil {
		body.Help("keys", a.help, a.theme)
	}
	a.drawStatus(bar)
	a.term.Flush(a.cells, a.width, a.height)

	ms := float64(time.Since(start).Microseconds()) / 1000
	a.stats.Counter(status.Frames).Add(1)
	a.stats.Gauge(status.FrameCells).Set(float64(st.Cells()))
	a.stats.Gauge(status.FrameMillis).Set(ms)
	a.stats.Gauge(status.FrameMaxMs).Max(ms)
}

func (a *app) drawStatus(r tui.Region) {
	if r.Empty() {
		return
	}
	r.Fill(a.theme.StatusBg)

	win := a.view.Window()
	st := win.State()
	cfg := win.Config()
	scroll := a.view.Scroll()

	label := tui.Style{Fg: a.theme.StatusFg, Bg: a.theme.StatusBg}
	value := tui.Style{Fg: a.theme.Fg, Bg: a.theme.StatusBg, Attr: terminal.AttrBold}
	accent := tui.Style{Fg: a.theme.Accent, Bg: a.theme.StatusBg, Attr: terminal.AttrBold}

	sections := []tui.BarSection{
		{Label: "src ", Value: a.label, LabelStyle: label, ValueStyle: accent, Priority: 5},
		{Label: "rows ", Value: rangeText(st.Rows.First, st.Rows.Last, cfg.Rows), LabelStyle: label, ValueStyle: value, Priority: 4},
		{Label: "cols ", Value: rangeText(st.Columns.First, st.Columns.Last, cfg.Columns), LabelStyle: label, ValueStyle: value, Priority: 3},
		{Value: tui.ScrollLabel(scroll.Top, scroll.ViewH, scroll.ContentH), LabelStyle: label, ValueStyle: value, Priority: 2},
		{Label: "cells ", Value: fmt.Sprint(st.Cells()), LabelStyle: label, ValueStyle: value, Priority: 1},
	}
	if loads := a.stats.Counter(status.PageLoads).Load(); loads > 0 {
		sections = append(sections, tui.BarSection{
			Label:      "pages ",
			Value:      fmt.Sprintf("%.0f cached %d loaded", a.stats.Gauge(status.PagesCached).Get(), loads),
			LabelStyle: label,
			ValueStyle: value,
			Priority:   0,
		})
	}
	if pending := a.keys.Pending(); pending != "" {
		sections = append(sections, tui.BarSection{Value: pending, ValueStyle: accent, Priority: 7})
	}
	if a.loadErr != nil {
		sections = append(sections, tui.BarSection{
			Label:      "error ",
			Value:      a.loadErr.Error(),
			LabelStyle: label,
			ValueStyle: tui.Style{Fg: terminal.RGB{R: 230, G: 90, B: 90}, Bg: a.theme.StatusBg},
			Priority:   6,
		})
	}

	opts := tui.DefaultBarOpts()
	opts.Bg = a.theme.StatusBg
	opts.SepStyle = tui.Style{Fg: a.theme.Border, Bg: a.theme.StatusBg}
	opts.Align = tui.BarAlignLeft
	r.StatusBar(0, sections, opts)
}

// rangeText formats an inclusive visible range against its total count
func rangeText(first, last, total int) string {
	if last < first {
		return fmt.Sprintf("-/%d", total)
	}
	return fmt.Sprintf("%d-%d/%d", first, last, total)
}

// helpLines lists every bound action with its keys
func helpLines(kt *input.KeyTable) []tui.HelpLine {
	bindings := input.Bindings(kt)
	lines := make([]tui.HelpLine, 0, len(bindings))
	for _, b := range bindings {
		lines = append(lines, tui.HelpLine{Key: strings.Join(b.Keys, " "), Text: strings.ReplaceAll(b.Action, "_", " ")})
	}
	return lines
}
