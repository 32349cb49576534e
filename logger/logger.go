package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/conlog/conlog/core"
	"github.com/conlog/conlog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	level         core.Level
	context       []interface{}
	includeCaller bool
	callerSkip    int
	recycleEntry  bool
	coarseClock   bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	context       []interface{}
	includeCaller bool
	callerSkip    int
	coarseClock   bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 3,              // Default skip for GetCaller
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithContext adds values rendered before the call-site values of every
// entry.
func (b *Builder) WithContext(values ...interface{}) *Builder {
	b.context = append(b.context, values...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip overrides the number of stack frames skipped when
// capturing the caller. Useful when wrapping the logger.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// WithCoarseClock makes the logger timestamp entries from the cached
// millisecond clock instead of calling time.Now per entry.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	recycle := false
	if rc, ok := b.handler.(handler.Recycler); ok {
		recycle = rc.CanRecycleEntry()
	}
	if b.coarseClock {
		core.StartCoarseClock()
	}
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		context:       b.context,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		recycleEntry:  recycle,
		coarseClock:   b.coarseClock,
	}
}

// With creates a new Logger with additional context values (immutable operation)
func (l *Logger) With(values ...interface{}) *Logger {
	newContext := make([]interface{}, len(l.context)+len(values))
	copy(newContext, l.context)
	copy(newContext[len(l.context):], values)

	clone := *l
	clone.context = newContext
	return &clone
}

// Log logs values at the specified level
func (l *Logger) Log(level core.Level, values ...interface{}) {
	// Level check optimization - exit early BEFORE any allocations
	if level < l.level {
		return
	}
	l.log(level, "", values)
}

// log is the internal logging method that takes a pre-built slice
func (l *Logger) log(level core.Level, msg string, values []interface{}) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	if l.coarseClock {
		entry.Time = core.CoarseNow()
	} else {
		entry.Time = time.Now()
	}
	entry.Level = level
	entry.Message = msg

	if len(l.context) > 0 {
		entry.Values = append(entry.Values, l.context...)
	}
	if len(values) > 0 {
		entry.Values = append(entry.Values, values...)
	}

	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	err := l.handler.Handle(entry)

	// Return entry to pool if the handler is done with it
	if l.recycleEntry && err == nil {
		core.PutEntry(entry)
	}
}

// Debug logs values at debug level
func (l *Logger) Debug(values ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, "", values)
}

// Info logs values at info level
func (l *Logger) Info(values ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, "", values)
}

// Warn logs values at warning level
func (l *Logger) Warn(values ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, "", values)
}

// Error logs values at error level
func (l *Logger) Error(values ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, "", values)
}

// Fatal logs values at fatal level and exits the program with os.Exit(1)
func (l *Logger) Fatal(values ...interface{}) {
	l.log(core.FatalLevel, "", values)
	l.Close()
	osExit(1)
}

// Panic logs values at panic level and panics
func (l *Logger) Panic(values ...interface{}) {
	l.log(core.PanicLevel, "", values)
	panic(fmt.Sprint(values...))
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a fatal message with formatting and exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(core.FatalLevel, fmt.Sprintf(format, args...), nil)
	l.Close()
	osExit(1)
}

// Panicf logs a panic message with formatting and panics
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.log(core.PanicLevel, msg, nil)
	panic(msg)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
