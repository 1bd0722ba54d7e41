package terminal

import "github.com/gdamore/tcell/v2"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventInterrupt // Synthetic event posted by the application
	EventError     // Backend error
	EventClosed    // Screen finalized
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
	Data      any   // For EventInterrupt

	// Mouse event fields
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// translate maps a tcell event to an Event, false for event kinds the application ignores
func translate(raw tcell.Event) (Event, bool) {
	switch ev := raw.(type) {
	case *tcell.EventKey:
		key, ok := keyFromTcell(ev.Key())
		if !ok {
			return Event{}, false
		}
		out := Event{Type: EventKey, Key: key, Modifiers: modFromTcell(ev.Modifiers())}
		if key == KeyRune {
			out.Rune = ev.Rune()
		}
		return out, true

	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventMouse:
		x, y := ev.Position()
		btn := buttonFromTcell(ev.Buttons())
		action := MouseActionPress
		if btn == MouseBtnNone {
			action = MouseActionMove
		}
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseBtn:    btn,
			MouseAction: action,
			Modifiers:   modFromTcell(ev.Modifiers()),
		}, true

	case *tcell.EventInterrupt:
		// Events posted through PostEvent carry themselves as payload
		if posted, ok := ev.Data().(Event); ok {
			return posted, true
		}
		return Event{Type: EventInterrupt, Data: ev.Data()}, true

	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}, true
	}
	return Event{}, false
}

func modFromTcell(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

func buttonFromTcell(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.WheelUp != 0:
		return MouseBtnWheelUp
	case b&tcell.WheelDown != 0:
		return MouseBtnWheelDown
	case b&tcell.WheelLeft != 0:
		return MouseBtnWheelLeft
	case b&tcell.WheelRight != 0:
		return MouseBtnWheelRight
	case b&tcell.Button1 != 0:
		return MouseBtnLeft
	case b&tcell.Button3 != 0:
		return MouseBtnMiddle
	case b&tcell.Button2 != 0:
		return MouseBtnRight
	default:
		return MouseBtnNone
	}
}
