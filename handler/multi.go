package handler

import (
	"github.com/conlog/conlog/core"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers  []Handler
	recyclers []bool // per child: true when the child is done with the entry at Handle return
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:  handlers,
		recyclers: make([]bool, len(handlers)),
	}
	for i, h := range handlers {
		if rc, ok := h.(Recycler); ok && rc.CanRecycleEntry() {
			m.recyclers[i] = true
		}
	}
	return m
}

// Handle processes a log entry by sending it to all handlers. Children
// that keep the entry past Handle (async handlers) each receive their own
// copy, so no two handlers ever share ownership.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var lastErr error
	for i, child := range h.handlers {
		e := entry
		if !h.recyclers[i] {
			e = cloneEntry(entry)
		}
		if err := child.Handle(e); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func cloneEntry(entry *core.Entry) *core.Entry {
	e := core.GetEntry()
	e.Time = entry.Time
	e.Level = entry.Level
	e.Message = entry.Message
	e.Caller = entry.Caller
	e.Values = append(e.Values, entry.Values...)
	return e
}

// CanRecycleEntry returns true if the caller can recycle the entry after
// Handle returns. Owning children got copies, so this only requires every
// child to be synchronous.
func (h *MultiHandler) CanRecycleEntry() bool {
	return true
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var lastErr error
	for _, child := range h.handlers {
		if err := child.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
