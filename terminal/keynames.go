package terminal

// keyToName maps Key constants to names used in logs and the help line
var keyToName = map[Key]string{
	KeyRune:      "rune",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyCtrlB: "ctrl_b",
	KeyCtrlC: "ctrl_c",
	KeyCtrlD: "ctrl_d",
	KeyCtrlF: "ctrl_f",
	KeyCtrlL: "ctrl_l",
	KeyCtrlU: "ctrl_u",
}

// String returns the canonical key name, "none" for unmapped keys
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "none"
}

var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyToName))
	for k, name := range keyToName {
		m[name] = k
	}
	return m
}()

// KeyByName returns the key for a canonical name as produced by String
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}
