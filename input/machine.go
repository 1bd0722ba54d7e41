package input

import "github.com/lixenwraith/vgrid/terminal"

// maxCount caps the numeric prefix
const maxCount = 99_999_999

// WheelLines is the number of rows or columns moved per wheel notch
const WheelLines = 3

// Machine turns terminal events into intents
// Counts and the g prefix span several events; Process returns nil while a sequence is pending
type Machine struct {
	table *KeyTable
	state InputState
	count int
	typed []rune
}

// NewMachine creates a parser over table, nil uses DefaultKeyTable
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// Table returns the bindings in use
func (m *Machine) Table() *KeyTable {
	return m.table
}

// State returns the parser state
func (m *Machine) State() InputState {
	return m.state
}

// Pending returns the keys typed for the unfinished sequence, "" when idle
func (m *Machine) Pending() string {
	return string(m.typed)
}

// Reset discards a pending sequence
func (m *Machine) Reset() {
	m.state = StateIdle
	m.count = 0
	m.typed = m.typed[:0]
}

// Process consumes one event
func (m *Machine) Process(ev terminal.Event) *Intent {
	switch ev.Type {
	case terminal.EventKey:
		return m.processKey(ev)
	case terminal.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev terminal.Event) *Intent {
	if ev.Key != terminal.KeyRune {
		entry, ok := m.table.Keys[ev.Key]
		if !ok {
			m.Reset()
			return nil
		}
		return m.emit(entry)
	}

	r := ev.Rune
	if m.state == StatePrefixG {
		entry, ok := m.table.PrefixG[r]
		if !ok {
			m.Reset()
			return nil
		}
		return m.emit(entry)
	}

	// Digits extend a count, a leading 0 is a key of its own
	if r >= '1' && r <= '9' || r == '0' && m.state == StateCount {
		m.count = min(m.count*10+int(r-'0'), maxCount)
		m.state = StateCount
		m.typed = append(m.typed, r)
		return nil
	}

	entry, ok := m.table.Runes[r]
	if !ok {
		m.Reset()
		return nil
	}
	if entry.Behavior == BehaviorPrefixG {
		m.state = StatePrefixG
		m.typed = append(m.typed, r)
		return nil
	}
	return m.emit(entry)
}

func (m *Machine) processMouse(ev terminal.Event) *Intent {
	var mo Motion
	switch ev.MouseBtn {
	case terminal.MouseBtnWheelUp:
		mo = MotionUp
	case terminal.MouseBtnWheelDown:
		mo = MotionDown
	case terminal.MouseBtnWheelLeft:
		mo = MotionLeft
	case terminal.MouseBtnWheelRight:
		mo = MotionRight
	default:
		return nil
	}
	m.Reset()
	return &Intent{Type: IntentMotion, Motion: mo, Count: WheelLines}
}

// emit builds the intent for entry with the pending count and resets the parser
func (m *Machine) emit(entry KeyEntry) *Intent {
	count, explicit := m.count, m.count > 0
	m.Reset()

	switch entry.Behavior {
	case BehaviorAction:
		return &Intent{Type: entry.Intent, Count: 1}
	case BehaviorMotion:
		return buildMotion(entry.Motion, count, explicit)
	case BehaviorPrefixG:
		// Bound inside PrefixG or to a non-rune key, nothing to wait for
		return nil
	}
	return nil
}

// buildMotion applies vi count rules: a counted G or gg jumps to that row
func buildMotion(mo Motion, count int, explicit bool) *Intent {
	switch mo {
	case MotionTop, MotionBottom:
		if explicit {
			return &Intent{Type: IntentMotion, Motion: MotionGotoRow, Count: count}
		}
	case MotionGotoRow, MotionGotoColumn:
		return &Intent{Type: IntentMotion, Motion: mo, Count: count}
	}
	return &Intent{Type: IntentMotion, Motion: mo, Count: max(count, 1)}
}
