package input

import (
	"maps"

	"github.com/lixenwraith/vgrid/terminal"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone    KeyBehavior = iota // Unbound, deletes the key when merged
	BehaviorAction                     // Emits Intent directly
	BehaviorMotion                     // Emits IntentMotion with the pending count
	BehaviorPrefixG                    // Waits for a key from PrefixG
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Behavior KeyBehavior
	Intent   IntentType
	Motion   Motion
}

func action(t IntentType) KeyEntry { return KeyEntry{Behavior: BehaviorAction, Intent: t} }
func motion(m Motion) KeyEntry {
	return KeyEntry{Behavior: BehaviorMotion, Intent: IntentMotion, Motion: m}
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Non-rune keys (arrows, paging, Ctrl+*)
	Keys map[terminal.Key]KeyEntry

	// Rune bindings in the idle state
	Runes map[rune]KeyEntry

	// Runes after the g prefix
	PrefixG map[rune]KeyEntry
}

// DefaultKeyTable returns the default vi-style bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[terminal.Key]KeyEntry{
			terminal.KeyEscape:   action(IntentQuit),
			terminal.KeyCtrlC:    action(IntentQuit),
			terminal.KeyCtrlL:    action(IntentRedraw),
			terminal.KeyF1:       action(IntentHelp),
			terminal.KeyUp:       motion(MotionUp),
			terminal.KeyDown:     motion(MotionDown),
			terminal.KeyLeft:     motion(MotionLeft),
			terminal.KeyRight:    motion(MotionRight),
			terminal.KeyPageUp:   motion(MotionPageUp),
			terminal.KeyPageDown: motion(MotionPageDown),
			terminal.KeyCtrlB:    motion(MotionPageUp),
			terminal.KeyCtrlF:    motion(MotionPageDown),
			terminal.KeyCtrlU:    motion(MotionHalfPageUp),
			terminal.KeyCtrlD:    motion(MotionHalfPageDown),
			terminal.KeyHome:     motion(MotionOrigin),
			terminal.KeyEnd:      motion(MotionBottom),
		},

		Runes: map[rune]KeyEntry{
			'q': action(IntentQuit),
			'r': action(IntentRedraw),
			'n': action(IntentToggleNumbers),
			'?': action(IntentHelp),

			'h': motion(MotionLeft),
			'j': motion(MotionDown),
			'k': motion(MotionUp),
			'l': motion(MotionRight),
			'H': motion(MotionPageLeft),
			'L': motion(MotionPageRight),
			'G': motion(MotionBottom),
			'0': motion(MotionLineStart),
			'$': motion(MotionLineEnd),
			'|': motion(MotionGotoColumn),
			' ': motion(MotionPageDown),
			'g': {Behavior: BehaviorPrefixG},
		},

		PrefixG: map[rune]KeyEntry{
			'g': motion(MotionTop),
			'0': motion(MotionOrigin),
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:    maps.Clone(kt.Keys),
		Runes:   maps.Clone(kt.Runes),
		PrefixG: maps.Clone(kt.PrefixG),
	}
}

// MergeKeyTable returns base overridden by the entries of override
// BehaviorNone entries unbind the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.PrefixG, override.PrefixG)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.Behavior == BehaviorNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
