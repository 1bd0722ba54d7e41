package tui

// HelpLine is one row of a help card
type HelpLine struct {
	Key  string
	Text string
}

// Help draws a rounded card with two aligned columns centered in r
// The card shrinks to its content and clips to r
func (r Region) Help(title string, lines []HelpLine, theme Theme) {
	keyW, textW := 0, Width(title)+2
	for _, l := range lines {
		keyW = max(keyW, Width(l.Key))
		textW = max(textW, Width(l.Key)+Width(l.Text)+2)
	}
	textW = max(textW, keyW+2)

	w := min(textW+4, r.W)
	h := min(len(lines)+2, r.H)
	card := r.Sub((r.W-w)/2, (r.H-h)/2, w, h)
	if card.Empty() {
		return
	}

	st := Style{Fg: theme.Border, Bg: theme.HeaderBg}
	keySt := Style{Fg: theme.Accent, Bg: theme.HeaderBg}
	textSt := Style{Fg: theme.Fg, Bg: theme.HeaderBg}

	inner := card.Card(title, BorderRounded, st)
	for y, l := range lines {
		if y >= inner.H {
			break
		}
		x := 1 + inner.TextStyle(1, y, PadRight(l.Key, keyW+1), keySt)
		inner.TextStyle(x, y, Truncate(l.Text, inner.W-x-1), textSt)
	}
}
