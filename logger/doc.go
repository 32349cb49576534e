// Package logger provides the user-facing logging facade.
//
// A Logger is immutable once built: level, handler, caller capture, and
// context values are fixed by the Builder, and With returns a new Logger
// rather than mutating the receiver. The level methods accept arbitrary
// values (Info("listening on", addr, cfg)); rendering them into bounded
// strings is delegated to the configured formatter's inspector, so a
// cyclic or enormous value at a call site can never wedge or flood the
// sink.
//
// A package-level default logger writes to stdout asynchronously; Default
// and SetDefault manage it. LoadConfig reads a YAML file describing the
// level, output format, and inspector limits, and Config.Build assembles
// a ready logger from it.
package logger
