package input

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// actionRegistry maps config action names to entries
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":           action(IntentQuit),
	"redraw":         action(IntentRedraw),
	"toggle_numbers": action(IntentToggleNumbers),
	"help":           action(IntentHelp),

	"up":             motion(MotionUp),
	"down":           motion(MotionDown),
	"left":           motion(MotionLeft),
	"right":          motion(MotionRight),
	"page_up":        motion(MotionPageUp),
	"page_down":      motion(MotionPageDown),
	"half_page_up":   motion(MotionHalfPageUp),
	"half_page_down": motion(MotionHalfPageDown),
	"page_left":      motion(MotionPageLeft),
	"page_right":     motion(MotionPageRight),
	"top":            motion(MotionTop),
	"bottom":         motion(MotionBottom),
	"origin":         motion(MotionOrigin),
	"line_start":     motion(MotionLineStart),
	"line_end":       motion(MotionLineEnd),
	"goto_row":       motion(MotionGotoRow),
	"goto_column":    motion(MotionGotoColumn),

	"prefix_g": {Behavior: BehaviorPrefixG},
}

// ActionEntry returns the entry registered under name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

// ActionNames returns all action names in order
func ActionNames() []string {
	return slices.Sorted(maps.Keys(actionRegistry))
}

// ActionName returns the registered name of entry, "" if none matches
func ActionName(entry KeyEntry) string {
	for _, name := range ActionNames() {
		if actionRegistry[name] == entry {
			return name
		}
	}
	return ""
}

// Binding lists the keys bound to one action
type Binding struct {
	Action string
	Keys   []string
}

// Bindings groups the keys of kt by action, ordered by action name
func Bindings(kt *KeyTable) []Binding {
	byAction := make(map[string][]string)
	add := func(key string, e KeyEntry) {
		if name := ActionName(e); name != "" && name != "none" {
			byAction[name] = append(byAction[name], key)
		}
	}
	for k, e := range kt.Keys {
		add(k.String(), e)
	}
	for r, e := range kt.Runes {
		add(runeName(r), e)
	}
	for r, e := range kt.PrefixG {
		add("g"+runeName(r), e)
	}

	out := make([]Binding, 0, len(byAction))
	for _, name := range slices.Sorted(maps.Keys(byAction)) {
		keys := byAction[name]
		// Shorter names first so single characters lead
		slices.SortFunc(keys, func(a, b string) int {
			return cmp.Or(
				cmp.Compare(utf8.RuneCountInString(a), utf8.RuneCountInString(b)),
				strings.Compare(a, b),
			)
		})
		out = append(out, Binding{Action: name, Keys: keys})
	}
	return out
}

// runeName is the display form of a rune key
func runeName(r rune) string {
	if r == ' ' {
		return "space"
	}
	return string(r)
}
