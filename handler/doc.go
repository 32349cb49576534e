// Package handler provides the Handler interface and its built-in
// implementations for dispatching log entries to the execution context's
// output sink.
//
// Handlers support both synchronous and asynchronous operation. In async
// mode, entries are sent to a bounded channel and processed by a
// background goroutine, which keeps the caller's hot path fast even under
// slow I/O.
//
// When the async queue is full, each handler applies a per-level
// OverflowPolicy: DropNewest (default for Debug/Info/Warn), DropOldest,
// or Block with a configurable timeout (default for Error and above). This
// ensures that low-priority logs never stall the application while
// critical errors are never silently dropped.
//
// Built-in handlers:
//
//   - SyncConsoleHandler and AsyncConsoleHandler write formatted entries
//     to any io.Writer (default: stdout).
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - SlogHandler adapts the Handler interface to log/slog.Handler,
//     allowing conlog to serve as a drop-in backend for the standard
//     library.
//
// All handlers track dropped, blocked, and processed counts via the Stats
// type, which can be queried at runtime for monitoring.
package handler
