package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/safelog/core"
	"github.com/philipp01105/safelog/formatter"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Formatters prepare data in their own pooled buffers
// and call Write once, so the lock is held only during the actual I/O.
type lockedWriter struct {
	mu *sync.Mutex // points to handler's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleConfig configures a Console handler.
type ConsoleConfig struct {
	// Writer is the destination; defaults to os.Stderr
	Writer io.Writer
	// Formatter serializes entries; defaults to a plain text formatter
	Formatter formatter.Formatter
	// ConcurrentWriter marks the writer as safe for concurrent Write calls
	ConcurrentWriter bool
}

// Console is a synchronous handler writing each entry to a writer as a
// single Write call.
type Console struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool
	stats           *Stats
	mu              sync.Mutex // protects syncBuf and writer
	lw              lockedWriter
	syncBuf         bytes.Buffer
}

// NewConsole creates a synchronous console handler.
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	h := &Console{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          NewStats(),
	}
	// Cache the optional formatter interfaces once
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.lw = lockedWriter{mu: &h.mu, w: h.writer}
	h.syncBuf.Grow(256)
	return h
}

// Handle formats the entry and writes it out.
func (h *Console) Handle(entry *core.Entry) error {
	if h.bufferFormatter != nil {
		h.mu.Lock()
		h.syncBuf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
		_, err := h.writer.Write(h.syncBuf.Bytes())
		h.mu.Unlock()
		if err == nil {
			h.stats.IncrementProcessed()
		}
		return err
	}

	if h.writerFormatter != nil {
		var err error
		if h.concurrentSafe {
			err = h.writerFormatter.FormatTo(entry, h.writer)
		} else {
			err = h.writerFormatter.FormatTo(entry, &h.lw)
		}
		if err == nil {
			h.stats.IncrementProcessed()
		}
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	if h.concurrentSafe {
		_, err = h.writer.Write(data)
	} else {
		_, err = h.lw.Write(data)
	}
	if err == nil {
		h.stats.IncrementProcessed()
	}
	return err
}

// CanRecycleEntry returns true because entries are consumed before Handle returns.
func (h *Console) CanRecycleEntry() bool {
	return true
}

// Stats returns the handler's counters.
func (h *Console) Stats() *Stats {
	return h.stats
}

// Close is a no-op for console output.
func (h *Console) Close() error {
	return nil
}
