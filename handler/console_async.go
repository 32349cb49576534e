package handler

import (
	"sync"
	"time"

	"github.com/conlog/conlog/core"
)

// AsyncConsoleHandler queues entries on a bounded channel and writes them
// from a dedicated background goroutine. A full queue is resolved by the
// per-level overflow policy.
type AsyncConsoleHandler struct {
	consoleBase
	queue          chan *core.Entry
	wg             sync.WaitGroup
	overflowPolicy map[core.Level]OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
}

// newAsyncConsoleHandler creates a new asynchronous console handler.
func newAsyncConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	h := &AsyncConsoleHandler{
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
	}
	h.init(cfg)
	h.queue = make(chan *core.Entry, cfg.BufferSize)
	h.wg.Add(1)
	go h.process()
	return h
}

// Handle sends a log entry to the async queue with overflow policy handling.
func (h *AsyncConsoleHandler) Handle(entry *core.Entry) error {
	policy, ok := h.overflowPolicy[entry.Level]
	if !ok {
		policy = DropNewest
	}

	switch policy {
	case Block:
		select {
		case h.queue <- entry:
			return nil
		default:
		}
		// Queue full: wait up to blockTimeout for space, then write on
		// the caller's goroutine rather than lose the entry.
		timer := time.NewTimer(h.blockTimeout)
		defer timer.Stop()
		select {
		case h.queue <- entry:
			return nil
		case <-timer.C:
			h.stats.IncrementBlocked()
		case <-h.closed:
		}
		err := h.write(entry)
		core.PutEntry(entry)
		return err

	case DropOldest:
		select {
		case h.queue <- entry:
			return nil
		default:
		}
		// Queue full: evict the oldest entry and retry once.
		select {
		case old := <-h.queue:
			h.stats.IncrementDropped(old.Level)
			core.PutEntry(old)
		default:
		}
		select {
		case h.queue <- entry:
			return nil
		default:
			h.stats.IncrementDropped(entry.Level)
			core.PutEntry(entry)
			return nil
		}

	default: // DropNewest
		select {
		case h.queue <- entry:
			return nil
		default:
			h.stats.IncrementDropped(entry.Level)
			core.PutEntry(entry)
			return nil
		}
	}
}

// CanRecycleEntry returns false because entries are processed after Handle
// returns; the handler recycles them itself.
func (h *AsyncConsoleHandler) CanRecycleEntry() bool {
	return false
}

// process handles async log processing
func (h *AsyncConsoleHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case entry := <-h.queue:
			h.consume(entry)
			// Batch drain: process additional queued entries without
			// going back through the outer select.
		batchDrain:
			for {
				select {
				case entry := <-h.queue:
					h.consume(entry)
				default:
					break batchDrain
				}
			}
		case <-h.closed:
			// Drain remaining entries with timeout
			deadline := time.After(h.drainTimeout)
		drainLoop:
			for {
				select {
				case entry := <-h.queue:
					h.consume(entry)
				case <-deadline:
					break drainLoop
				default:
					break drainLoop
				}
			}
			return
		}
	}
}

func (h *AsyncConsoleHandler) consume(entry *core.Entry) {
	// Write errors are recorded nowhere useful from a background
	// goroutine; the entry is recycled either way.
	_ = h.write(entry)
	core.PutEntry(entry)
}

// Close closes the handler, draining the queue with a timeout.
func (h *AsyncConsoleHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
	}
	close(h.closed)
	h.wg.Wait()
	return nil
}
