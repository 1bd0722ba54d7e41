// Package terminal wraps a tcell screen behind a small cell-buffer API.
//
// Callers draw into a row-major []Cell and hand it to Flush; input arrives as
// Event values translated from tcell events. Colors are 24-bit RGB with the
// zero value meaning the terminal default.
//
// Service runs the blocking poll loop on its own goroutine and delivers events
// on a channel, so a render loop can select on input alongside timers.
package terminal
