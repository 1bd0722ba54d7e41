package input

// InputState tracks the key parser state between events
type InputState uint8

const (
	StateIdle    InputState = iota // Awaiting a key
	StateCount                     // Accumulating a numeric prefix (1-9 start, 0 continues)
	StatePrefixG                   // After 'g', awaiting the second key
)

// String returns the state name for logs
func (s InputState) String() string {
	switch s {
	case StateCount:
		return "count"
	case StatePrefixG:
		return "prefix_g"
	default:
		return "idle"
	}
}
