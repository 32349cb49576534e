// Package hostenv describes the capabilities of the execution context a
// logger runs in.
//
// The rest of the framework never sniffs globals or type-asserts host
// objects at render time; it receives a Context value at construction and
// branches on that. Detect builds a Context for the current process, but a
// caller embedding conlog in an unusual host (a GUI shell, a wasm sandbox)
// can and should construct the Context by hand.
package hostenv

import (
	"os"
	"runtime"

	"golang.org/x/term"
)

// Context is the capability descriptor for an execution context.
type Context struct {
	// UICapable reports that the host can supply UI element values worth
	// rendering in detail. Detect never sets this; hosts that register
	// inspect.Element implementations opt in explicitly.
	UICapable bool

	// ANSIColor reports that the output sink understands ANSI escape
	// sequences.
	ANSIColor bool

	// Restricted reports a sandboxed or edge-style runtime where the
	// process owns no real terminal.
	Restricted bool
}

// Detect probes the current process and returns a Context for it.
// The stdout file descriptor is probed for terminal-ness; the NO_COLOR
// and TERM=dumb conventions are honored.
func Detect() Context {
	ctx := Context{
		Restricted: runtime.GOOS == "js" || runtime.GOOS == "wasip1",
	}
	if ctx.Restricted {
		return ctx
	}
	ctx.ANSIColor = term.IsTerminal(int(os.Stdout.Fd())) &&
		os.Getenv("NO_COLOR") == "" &&
		os.Getenv("TERM") != "dumb"
	return ctx
}
