package terminal

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimTerminal(t *testing.T, w, h int) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(sim)
	require.NoError(t, term.Init())
	sim.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, sim
}

func TestFlushWritesCells(t *testing.T) {
	term, sim := newSimTerminal(t, 4, 2)

	cells := make([]Cell, 8)
	red := RGB{R: 255}
	cells[0] = Cell{Rune: 'a', Fg: red, Attrs: AttrBold}
	cells[5] = Cell{Rune: 'z'}
	term.Flush(cells, 4, 2)

	contents, w, h := sim.GetContents()
	require.Equal(t, 4, w)
	require.Equal(t, 2, h)
	assert.Equal(t, []rune{'a'}, contents[0].Runes)
	assert.Equal(t, []rune{' '}, contents[1].Runes)
	assert.Equal(t, []rune{'z'}, contents[5].Runes)

	fg, _, attrs := contents[0].Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, AttrBold, AttrFromMask(attrs)&AttrStyle)
}

func TestFlushDropsMismatchedFrame(t *testing.T) {
	term, sim := newSimTerminal(t, 3, 1)

	term.Flush([]Cell{{Rune: 'x'}, {Rune: 'y'}}, 2, 1)

	contents, _, _ := sim.GetContents()
	for i, c := range contents {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			t.Errorf("Expected blank cell %d, got %q", i, c.Runes)
		}
	}
}

func TestPollTranslatesKeys(t *testing.T) {
	term, sim := newSimTerminal(t, 10, 2)

	sim.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	sim.InjectKey(tcell.KeyPgDn, 0, tcell.ModShift)

	ev := term.PollEvent()
	for ev.Type == EventResize {
		ev = term.PollEvent()
	}
	assert.Equal(t, EventKey, ev.Type)
	assert.Equal(t, KeyRune, ev.Key)
	assert.Equal(t, 'j', ev.Rune)

	ev = term.PollEvent()
	assert.Equal(t, KeyPageDown, ev.Key)
	assert.Equal(t, ModShift, ev.Modifiers)
	assert.Equal(t, "page_down", ev.Key.String())
}

func TestPostEventRoundTrip(t *testing.T) {
	term, _ := newSimTerminal(t, 5, 5)

	term.PostEvent(Event{Type: EventInterrupt, Data: "tick"})
	ev := term.PollEvent()
	for ev.Type == EventResize {
		ev = term.PollEvent()
	}
	assert.Equal(t, EventInterrupt, ev.Type)
	assert.Equal(t, "tick", ev.Data)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   tcell.Event
		want Event
		ok   bool
	}{
		{"resize", tcell.NewEventResize(80, 24), Event{Type: EventResize, Width: 80, Height: 24}, true},
		{"wheel down", tcell.NewEventMouse(3, 4, tcell.WheelDown, tcell.ModNone),
			Event{Type: EventMouse, MouseX: 3, MouseY: 4, MouseBtn: MouseBtnWheelDown, MouseAction: MouseActionPress}, true},
		{"wheel right", tcell.NewEventMouse(0, 0, tcell.WheelRight, tcell.ModNone),
			Event{Type: EventMouse, MouseBtn: MouseBtnWheelRight, MouseAction: MouseActionPress}, true},
		{"motion", tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone),
			Event{Type: EventMouse, MouseX: 1, MouseY: 1, MouseAction: MouseActionMove}, true},
		{"ctrl-f", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl),
			Event{Type: EventKey, Key: KeyCtrlF, Modifiers: ModCtrl}, true},
		{"unmapped key", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateError(t *testing.T) {
	got, ok := translate(tcell.NewEventError(errors.New("boom")))
	require.True(t, ok)
	assert.Equal(t, EventError, got.Type)
	assert.EqualError(t, got.Err, "boom")
}

func TestServiceDeliversEvents(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	svc := NewService(NewWithScreen(sim))
	require.NoError(t, svc.Start())

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-svc.Events():
			if ev.Type != EventKey {
				continue
			}
			assert.Equal(t, 'q', ev.Rune)
			svc.Stop()
			_, open := <-svc.Events()
			for open {
				_, open = <-svc.Events()
			}
			assert.ErrorIs(t, svc.Start(), ErrServiceStopped)
			return
		case <-deadline:
			t.Fatal("Expected key event before deadline")
		}
	}
}

func TestColorHelpers(t *testing.T) {
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 128}, c)
	assert.Equal(t, "#ff8000", c.Hex())

	_, err = ParseHex("orange")
	assert.Error(t, err)

	black, white := RGB{}, RGB{R: 255, G: 255, B: 255}
	assert.Equal(t, black, Blend(black, white, 0))
	assert.Equal(t, white, Blend(black, white, 1))
	mid := Blend(RGB{R: 1, G: 1, B: 1}, white, 0.5)
	assert.True(t, mid.R > 1 && mid.R < 255, "blend midpoint out of range: %v", mid)

	assert.Equal(t, white, Dim(white, 0))
	assert.Equal(t, RGB{}, Dim(white, 1))
}

func TestStyleOfDefaultColors(t *testing.T) {
	fg, bg, _ := StyleOf(RGB{}, RGB{}, AttrNone).Decompose()
	assert.Equal(t, tcell.ColorDefault, fg)
	assert.Equal(t, tcell.ColorDefault, bg)
}

func TestHandleCrash(t *testing.T) {
	var out bytes.Buffer
	code := -1
	crashOut, crashExit = &out, func(c int) { code = c }
	t.Cleanup(func() {
		crashOut, crashExit = os.Stderr, os.Exit
		SetCrashTerminal(nil)
	})

	HandleCrash(nil)
	assert.Equal(t, -1, code, "nil recover value is ignored")

	term, _ := newSimTerminal(t, 10, 2)
	SetCrashTerminal(term)
	HandleCrash("boom")

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "VGRID CRASHED: boom")
	assert.Contains(t, out.String(), "Stack Trace:")
}

func TestGoRecoversPanics(t *testing.T) {
	done := make(chan int, 1)
	crashOut, crashExit = io.Discard, func(c int) { done <- c }
	t.Cleanup(func() { crashOut, crashExit = os.Stderr, os.Exit })

	Go(func() { panic("poll") })
	assert.Equal(t, 1, <-done)
}

func TestKeyByName(t *testing.T) {
	for _, k := range []Key{KeyEscape, KeyPageDown, KeyCtrlL, KeyF5} {
		got, ok := KeyByName(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	_, ok := KeyByName("hyper")
	assert.False(t, ok)
}
