package handler

import (
	"github.com/conlog/conlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Recycler is an optional interface handlers implement to report whether
// the caller may return an entry to the pool once Handle returns. Async
// handlers keep the entry past Handle and must answer false.
type Recycler interface {
	CanRecycleEntry() bool
}

// StatsProvider is an optional interface for handlers that track
// processing statistics.
type StatsProvider interface {
	Stats() Snapshot
}
