package handler

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/conlog/conlog/core"
	"github.com/conlog/conlog/formatter"
)

// ConsoleConfig holds configuration for console handlers
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Async enables asynchronous logging
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for the Block overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// NewConsoleHandler creates a console handler. Returns a
// SyncConsoleHandler when Async is false, or an AsyncConsoleHandler when
// Async is true.
func NewConsoleHandler(cfg ConsoleConfig) Handler {
	applyConsoleDefaults(&cfg)
	if cfg.Async {
		return newAsyncConsoleHandler(cfg)
	}
	return newSyncConsoleHandler(cfg)
}

// consoleBase contains shared fields and methods for console handlers.
type consoleBase struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	stats           *Stats
	mu              sync.Mutex // serializes all writes
	closed          chan struct{}
}

func (b *consoleBase) init(cfg ConsoleConfig) {
	b.writer = cfg.Writer
	b.formatter = cfg.Formatter
	b.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	b.stats = NewStats()
	b.closed = make(chan struct{})
}

// write formats an entry and writes it under the handler lock.
func (b *consoleBase) write(entry *core.Entry) error {
	if b.writerFormatter != nil {
		b.mu.Lock()
		err := b.writerFormatter.FormatTo(entry, b.writer)
		b.mu.Unlock()
		if err == nil {
			b.stats.IncrementProcessed()
		}
		return err
	}

	data, err := b.formatter.Format(entry)
	if err != nil {
		return err
	}
	b.mu.Lock()
	_, writeErr := b.writer.Write(data)
	b.mu.Unlock()
	if writeErr == nil {
		b.stats.IncrementProcessed()
	}
	return writeErr
}

// Stats returns a snapshot of the current statistics
func (b *consoleBase) Stats() Snapshot {
	return b.stats.GetSnapshot()
}
