package terminal

// MouseButton identifies the button or wheel direction of a mouse event
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
	MouseBtnWheelLeft
	MouseBtnWheelRight
)

var mouseButtonNames = [...]string{
	MouseBtnNone:       "none",
	MouseBtnLeft:       "left",
	MouseBtnMiddle:     "middle",
	MouseBtnRight:      "right",
	MouseBtnWheelUp:    "wheel_up",
	MouseBtnWheelDown:  "wheel_down",
	MouseBtnWheelLeft:  "wheel_left",
	MouseBtnWheelRight: "wheel_right",
}

// String returns the button name used in logs
func (b MouseButton) String() string {
	if int(b) < len(mouseButtonNames) {
		return mouseButtonNames[b]
	}
	return "none"
}

// IsWheel reports whether b is a wheel direction
func (b MouseButton) IsWheel() bool {
	return b >= MouseBtnWheelUp && b <= MouseBtnWheelRight
}

// MouseAction is what happened to the button
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// MouseMode selects reported mouse events, values combine as a bitmask
type MouseMode uint8

const (
	MouseModeNone   MouseMode = 0
	MouseModeClick  MouseMode = 1 << 0 // Press, release and wheel
	MouseModeDrag   MouseMode = 1 << 1 // Motion with a button held
	MouseModeMotion MouseMode = 1 << 2 // All motion
)
