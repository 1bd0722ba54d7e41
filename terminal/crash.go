package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashTerminal is finalized by HandleCrash, set by Service.Start
var crashTerminal atomic.Pointer[Terminal]

// Crash output and exit, replaced in tests
var (
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashTerminal registers the terminal HandleCrash restores, nil falls back to raw reset sequences
func SetCrashTerminal(t Terminal) {
	if t == nil {
		crashTerminal.Store(nil)
		return
	}
	crashTerminal.Store(&t)
}

// HandleCrash restores the terminal, prints r with the stack trace and exits
// A nil r returns immediately so it can wrap recover() unconditionally
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if t := crashTerminal.Load(); t != nil {
		(*t).Fini()
	}
	// Fini is a no-op on a half-initialized screen, the raw sequences cover it
	EmergencyReset(os.Stdout)

	fmt.Fprintf(crashOut, "\r\n\x1b[31mVGRID CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	if f, ok := crashOut.(*os.File); ok {
		f.Sync()
	}
	crashExit(1)
}

// Go runs fn in a goroutine with crash handling
// Use it instead of the go keyword for goroutines that run while the terminal is in raw mode
func Go(fn func()) {
	go func() {
		defer func() { HandleCrash(recover()) }()
		fn()
	}()
}
