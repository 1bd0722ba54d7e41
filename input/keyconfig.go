package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/vgrid/terminal"
)

// ErrKeyConfig wraps every keymap configuration error
var ErrKeyConfig = errors.New("keymap")

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"pipe":      '|',
	"dollar":    '$',
}

// Section names of the [keys] table
const (
	SectionKeys    = "keys"
	SectionRunes   = "runes"
	SectionPrefixG = "prefix_g"
)

// LoadKeyConfig turns a decoded [keys] table into a sparse override table
// Only sections present in raw are populated
func LoadKeyConfig(raw map[string]any) (*KeyTable, error) {
	kt := &KeyTable{}
	for name, data := range raw {
		section, ok := data.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: [keys.%s]: expected table, got %T", ErrKeyConfig, name, data)
		}

		var err error
		switch name {
		case SectionKeys:
			kt.Keys, err = parseSection(name, section, resolveKey)
		case SectionRunes:
			kt.Runes, err = parseSection(name, section, resolveRune)
		case SectionPrefixG:
			kt.PrefixG, err = parseSection(name, section, resolveRune)
		default:
			err = fmt.Errorf("%w: unknown section [keys.%s]", ErrKeyConfig, name)
		}
		if err != nil {
			return nil, err
		}
	}
	return kt, nil
}

func parseSection[K comparable](section string, data map[string]any, resolve func(string) (K, error)) (map[K]KeyEntry, error) {
	result := make(map[K]KeyEntry, len(data))
	for keyStr, val := range data {
		k, err := resolve(keyStr)
		if err != nil {
			return nil, fmt.Errorf("%w: [keys.%s] %w", ErrKeyConfig, section, err)
		}
		name, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%w: [keys.%s] key %q: value must be string, got %T", ErrKeyConfig, section, keyStr, val)
		}
		entry, ok := ActionEntry(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("%w: [keys.%s] key %q: unknown action %q", ErrKeyConfig, section, keyStr, name)
		}
		result[k] = entry
	}
	return result, nil
}

func resolveKey(s string) (terminal.Key, error) {
	k, ok := terminal.KeyByName(strings.ToLower(s))
	if !ok || k == terminal.KeyRune {
		return 0, fmt.Errorf("unknown key name %q", s)
	}
	return k, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key %q (expected single character or alias)", s)
}
