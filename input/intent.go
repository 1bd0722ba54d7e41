package input

import "strconv"

// IntentType discriminates what a key sequence asks for
type IntentType uint8

const (
	IntentNone          IntentType = iota
	IntentQuit                     // q, Esc, Ctrl+C
	IntentRedraw                   // r, Ctrl+L
	IntentToggleNumbers            // n
	IntentHelp                     // ?, F1
	IntentMotion                   // Any scroll movement, see Motion
)

// Motion is a scroll movement over the grid
type Motion uint8

const (
	MotionNone Motion = iota
	MotionUp
	MotionDown
	MotionLeft
	MotionRight
	MotionPageUp
	MotionPageDown
	MotionHalfPageUp
	MotionHalfPageDown
	MotionPageLeft
	MotionPageRight
	MotionTop        // First row, column unchanged
	MotionBottom     // Last row, column unchanged
	MotionOrigin     // First row and column
	MotionLineStart  // First column
	MotionLineEnd    // Last column
	MotionGotoRow    // Row Count
	MotionGotoColumn // Column Count
)

// Intent is the result of a complete key sequence
type Intent struct {
	Type   IntentType
	Motion Motion
	// Count is the repeat count, at least 1 for relative motions and the target index for Goto motions
	Count int
}

var motionNames = [...]string{
	MotionNone:         "none",
	MotionUp:           "up",
	MotionDown:         "down",
	MotionLeft:         "left",
	MotionRight:        "right",
	MotionPageUp:       "page_up",
	MotionPageDown:     "page_down",
	MotionHalfPageUp:   "half_page_up",
	MotionHalfPageDown: "half_page_down",
	MotionPageLeft:     "page_left",
	MotionPageRight:    "page_right",
	MotionTop:          "top",
	MotionBottom:       "bottom",
	MotionOrigin:       "origin",
	MotionLineStart:    "line_start",
	MotionLineEnd:      "line_end",
	MotionGotoRow:      "goto_row",
	MotionGotoColumn:   "goto_column",
}

// String returns the action name of the motion
func (m Motion) String() string {
	if int(m) < len(motionNames) {
		return motionNames[m]
	}
	return "none"
}

// String describes an intent for logs
func (i Intent) String() string {
	switch i.Type {
	case IntentQuit:
		return "quit"
	case IntentRedraw:
		return "redraw"
	case IntentToggleNumbers:
		return "toggle_numbers"
	case IntentHelp:
		return "help"
	case IntentMotion:
		return i.Motion.String() + " x" + strconv.Itoa(i.Count)
	}
	return "none"
}
