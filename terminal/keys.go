package terminal

import "github.com/gdamore/tcell/v2"

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter bindings used by pagers
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlF
	KeyCtrlL
	KeyCtrlU
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// tcellKeys maps tcell key codes, unlisted keys are dropped
// tcell aliases (KeyCtrlH/KeyBackspace, KeyCtrlI/KeyTab, KeyCtrlM/KeyEnter) share codes
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyRune:       KeyRune,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
	tcell.KeyCtrlB:      KeyCtrlB,
	tcell.KeyCtrlC:      KeyCtrlC,
	tcell.KeyCtrlD:      KeyCtrlD,
	tcell.KeyCtrlF:      KeyCtrlF,
	tcell.KeyCtrlL:      KeyCtrlL,
	tcell.KeyCtrlU:      KeyCtrlU,
}

func keyFromTcell(k tcell.Key) (Key, bool) {
	key, ok := tcellKeys[k]
	return key, ok
}
