package logger

import (
	"sync"

	"github.com/conlog/conlog/core"
	"github.com/conlog/conlog/formatter"
	"github.com/conlog/conlog/handler"
	"github.com/conlog/conlog/hostenv"
	"github.com/conlog/conlog/inspect"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Default logger: async console handler, colors when the detected
	// context supports them.
	ctx := hostenv.Detect()
	opts := inspect.DefaultOptions()
	opts.Context = ctx
	opts.Colors = ctx.ANSIColor

	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Async:      true,
		BufferSize: 1000,
		Formatter:  formatter.NewTextFormatter(formatter.Config{Inspector: inspect.New(opts)}),
	})

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs values at debug level using the default logger
func Debug(values ...interface{}) {
	Default().Debug(values...)
}

// Info logs values at info level using the default logger
func Info(values ...interface{}) {
	Default().Info(values...)
}

// Warn logs values at warning level using the default logger
func Warn(values ...interface{}) {
	Default().Warn(values...)
}

// Error logs values at error level using the default logger
func Error(values ...interface{}) {
	Default().Error(values...)
}

// Fatal logs values at fatal level using the default logger and exits the program
func Fatal(values ...interface{}) {
	Default().Fatal(values...)
}

// Panic logs values at panic level using the default logger and panics
func Panic(values ...interface{}) {
	Default().Panic(values...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Fatalf logs a formatted fatal message using the default logger and exits the program
func Fatalf(format string, args ...interface{}) {
	Default().Fatalf(format, args...)
}

// Panicf logs a formatted panic message using the default logger and panics
func Panicf(format string, args ...interface{}) {
	Default().Panicf(format, args...)
}

// With creates a new logger with additional context values
func With(values ...interface{}) *Logger {
	return Default().With(values...)
}
