package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ErrNotReady is returned by calls that need an initialized, unfinalized terminal
var ErrNotReady = errors.New("terminal not initialized")

// Terminal is the frame-buffer view of the tty
type Terminal interface {
	// Init switches to raw mode on the alternate screen with the cursor hidden
	Init() error

	// Fini restores the tty, repeated calls are no-ops
	Fini()

	// Size returns the screen size in cells
	Size() (width, height int)

	// Flush presents a row-major frame, cells[y*width+x]
	// A frame whose size no longer matches the screen is dropped
	Flush(cells []Cell, width, height int)

	// Sync repaints the whole screen on the next flush
	Sync()

	// Beep rings the bell
	Beep()

	// PollEvent blocks for the next event, EventClosed after Fini
	PollEvent() Event

	// PostEvent queues a synthetic event for PollEvent
	PostEvent(Event)

	// SetMouseMode selects the reported mouse events
	SetMouseMode(mode MouseMode) error
}

// tcellTerminal implements Terminal on a tcell screen
type tcellTerminal struct {
	screen tcell.Screen

	mu        sync.Mutex
	state     lifecycle
	mouseMode MouseMode
}

type lifecycle uint8

const (
	stateNew lifecycle = iota
	stateLive
	stateDone
)

// New opens the controlling tty
func New() (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps a tcell screen, tests pass tcell.NewSimulationScreen
func NewWithScreen(s tcell.Screen) Terminal {
	return &tcellTerminal{screen: s}
}

func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != stateNew {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.state = stateLive
	return nil
}

func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != stateLive {
		return
	}
	if t.mouseMode != MouseModeNone {
		t.screen.DisableMouse()
	}
	t.screen.Fini()
	t.state = stateDone
}

func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

// Flush holds the lock for the whole frame so a resize can't interleave
func (t *tcellTerminal) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != stateLive || len(cells) < width*height {
		return
	}
	if w, h := t.screen.Size(); w != width || h != height {
		return
	}

	for y := range height {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			ch := c.Rune
			if ch == 0 {
				if x > 0 && runewidth.RuneWidth(row[x-1].Rune) == 2 {
					continue
				}
				ch = ' '
			}
			t.screen.SetContent(x, y, ch, nil, StyleOf(c.Fg, c.Bg, c.Attrs))
		}
	}
	t.screen.Show()
}

func (t *tcellTerminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == stateLive {
		t.screen.Sync()
	}
}

func (t *tcellTerminal) Beep() {
	_ = t.screen.Beep()
}

// PollEvent skips tcell events with no counterpart here
func (t *tcellTerminal) PollEvent() Event {
	for {
		raw := t.screen.PollEvent()
		if raw == nil {
			return Event{Type: EventClosed}
		}
		if ev, ok := translate(raw); ok {
			return ev
		}
	}
}

func (t *tcellTerminal) PostEvent(ev Event) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

func (t *tcellTerminal) SetMouseMode(mode MouseMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != stateLive {
		return fmt.Errorf("set mouse mode: %w", ErrNotReady)
	}
	t.mouseMode = mode
	if mode == MouseModeNone {
		t.screen.DisableMouse()
		return nil
	}

	var flags tcell.MouseFlags
	if mode&MouseModeClick != 0 {
		flags |= tcell.MouseButtonEvents
	}
	if mode&MouseModeDrag != 0 {
		flags |= tcell.MouseDragEvents
	}
	if mode&MouseModeMotion != 0 {
		flags |= tcell.MouseMotionEvents
	}
	t.screen.EnableMouse(flags)
	return nil
}

// resetSequence turns off mouse reporting, shows the cursor, leaves the alternate screen and resets SGR and autowrap
const resetSequence = "\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l" +
	"\x1b[?25h" +
	"\x1b[?1049l" +
	"\x1b[0m" +
	"\x1b[?7h"

// EmergencyReset writes the reset sequence directly, for panic handlers that can't trust the screen
func EmergencyReset(w io.Writer) {
	io.WriteString(w, resetSequence)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
