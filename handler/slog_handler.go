package handler

import (
	"context"
	"log/slog"

	"github.com/conlog/conlog/core"
)

// SlogHandler is an adapter that implements slog.Handler using a conlog
// Handler. This allows conlog to be used as a drop-in backend for log/slog.
type SlogHandler struct {
	handler Handler
	level   core.Level
	attrs   []slog.Attr
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle processes a slog.Record by converting it to a core.Entry and
// passing it to the wrapped handler. Attributes arrive as a single map
// value so the inspector renders them as one key/value object.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = record.Message

	attrs := make(map[string]interface{}, record.NumAttrs()+len(s.attrs))
	for _, a := range s.attrs {
		// pre-set attrs were keyed when added
		attrs[a.Key] = a.Value.Resolve().Any()
	}
	record.Attrs(func(a slog.Attr) bool {
		attrs[s.attrKey(a)] = a.Value.Resolve().Any()
		return true
	})
	if len(attrs) > 0 {
		entry.Values = append(entry.Values, attrs)
	}

	err := s.handler.Handle(entry)
	if rc, ok := s.handler.(Recycler); ok && rc.CanRecycleEntry() {
		core.PutEntry(entry)
	}
	return err
}

func (s *SlogHandler) attrKey(a slog.Attr) string {
	if s.group != "" {
		return s.group + "." + a.Key
	}
	return a.Key
}

// WithAttrs returns a new SlogHandler with additional attributes, keyed
// under the group in effect at the time of the call.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, slog.Attr{Key: s.attrKey(a), Value: a.Value})
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]slog.Attr, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   newAttrs,
		group:   newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
