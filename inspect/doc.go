// Package inspect renders arbitrary Go values into bounded, human-readable
// strings for console logging.
//
// The renderer walks a value recursively with three hard limits: a maximum
// depth, a maximum string length, and identity-based circular reference
// detection. Together they guarantee termination and a bounded output size
// for any input, including deeply nested and cyclic structures. Whatever
// the input, Inspect always returns a string and never panics; values that
// blow up under introspection render as a diagnostic placeholder instead.
//
// Dispatch over value kinds follows a fixed priority order: nil, depth
// limit, strings, numbers and booleans, functions, host UI elements,
// errors, times, regular expressions, sequences, and finally generic
// objects. The order matters because several categories overlap (a
// time.Time is also a struct); the first match wins.
//
// Cycle tracking is conservative: the visited set is scoped to a single
// Inspect call and entries are never removed during the walk, so an
// acyclic value shared by two sibling branches renders as
// [Circular Reference] on its second encounter. This bounds work to the
// number of reachable nodes without path backtracking.
//
// An Inspector is immutable after New and safe for concurrent use; all
// per-call state lives on the stack of the call.
package inspect
