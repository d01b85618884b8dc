package engine

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var restoreHook atomic.Pointer[func()]

// SetRestoreHook registers the function that puts the terminal back into a sane state
// before a crash report is printed; the banner registers screen finalization here
func SetRestoreHook(fn func()) {
	if fn == nil {
		restoreHook.Store(nil)
		return
	}
	restoreHook.Store(&fn)
}

// HandleCrash restores the terminal, prints the panic with stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if hook := restoreHook.Load(); hook != nil {
		(*hook)()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash never leaves the terminal in raw mode
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
