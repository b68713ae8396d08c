package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/fatih/color"
)

var (
	restoreMu sync.Mutex
	restore   func()

	// Overridable for tests
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// RegisterTerminal sets the function that returns the terminal to a sane state on crash
// Typically the screen's Fini; nil unregisters
func RegisterTerminal(fn func()) {
	restoreMu.Lock()
	restore = fn
	restoreMu.Unlock()
}

// restoreTerminal runs the registered restore function at most once
func restoreTerminal() {
	restoreMu.Lock()
	fn := restore
	restore = nil
	restoreMu.Unlock()

	if fn != nil {
		fn()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	restoreTerminal()

	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(crashOutput, "\nCRASH DETECTED: %v\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
}

// Fatal restores the terminal, reports err and exits with status 1
func Fatal(err error) {
	restoreTerminal()
	color.New(color.FgRed).Fprintf(crashOutput, "Error: %v\n", err)
	exit(1)
}

// Guard wraps an errgroup function so a panic restores the terminal before exiting
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
