package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	crashLogger   *slog.Logger

	// Replaced in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// RegisterTerminal sets the screen finalized before a crash report is printed
func RegisterTerminal(t Finalizer) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = t
}

// RegisterLogger sets the logger that records the crash alongside stderr
func RegisterLogger(l *slog.Logger) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashLogger = l
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term, logger := crashTerminal, crashLogger
	crashTerminal = nil
	crashMu.Unlock()

	// Restore terminal to sane state before writing anything
	if term != nil {
		term.Fini()
	}

	stack := debug.Stack()
	if logger != nil {
		logger.Error("crash", "panic", fmt.Sprint(r), "stack", string(stack))
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", stack)
	if f, ok := crashOut.(*os.File); ok {
		f.Sync()
	}

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
