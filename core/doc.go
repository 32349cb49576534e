// Package core defines the shared types used across the conlog framework.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and caller capture helpers.
//
// Unlike field-based structured loggers, an Entry carries the raw values
// passed to the logging call in a Values slice. Rendering those values
// into a bounded string is the job of the inspect package; core
// deliberately knows nothing about rendering.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must return it
// with PutEntry once the handler has consumed it. The pool pre-allocates
// the Values slice with capacity 8, which covers most log calls without
// triggering a slice growth.
package core
