package tui

import "github.com/mattn/go-runewidth"

// ellipsis marks truncated text
const ellipsis = "…"

// Width returns the display width of s in terminal columns
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxW columns, ending in an ellipsis when cut
func Truncate(s string, maxW int) string {
	switch {
	case maxW <= 0:
		return ""
	case Width(s) <= maxW:
		return s
	case maxW == 1:
		return ellipsis
	}
	return runewidth.Truncate(s, maxW, ellipsis)
}

// PadRight pads s with spaces to w columns
func PadRight(s string, w int) string {
	return runewidth.FillRight(s, w)
}

// Digits returns the number of decimal digits of n, at least 1
func Digits(n int) int {
	if n < 0 {
		n = -n
	}
	d := 1
	for ; n >= 10; n /= 10 {
		d++
	}
	return d
}
