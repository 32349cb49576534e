// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which formats into a caller-provided buffer. Handlers
// check for the richer interfaces at construction time and prefer them
// when available, eliminating intermediate allocations on the write path.
//
// Both built-in formatters (TextFormatter and JSONFormatter) render the
// entry's values through an inspect.Inspector, so every value the logger
// receives arrives at the sink as a bounded string regardless of its
// shape. The entry metadata (timestamp, level bracket, caller) is
// serialized with Append-style functions (time.AppendFormat,
// strconv.AppendInt) to avoid per-call allocations.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large log line from permanently inflating memory usage.
package formatter
