package handler

import (
	"sync"
	"time"

	"github.com/philipp01105/safelog/core"
)

// AsyncConfig configures an Async handler.
type AsyncConfig struct {
	// BufferSize is the queue capacity; defaults to 1000
	BufferSize int
	// OverflowPolicy maps levels to queue-full behavior; defaults to
	// DefaultLevelPolicy. Levels not in the map use DropNewest.
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout bounds how long a Block policy waits; defaults to 100ms
	BlockTimeout time.Duration
	// DrainTimeout bounds how long Close waits for the queue; defaults to 5s
	DrainTimeout time.Duration
}

// Async decouples log statements from delivery: entries go into a
// bounded queue drained by a dedicated goroutine that feeds the wrapped
// handler. Queue overflow is resolved per level by the overflow policy.
type Async struct {
	inner        Handler
	queue        chan *core.Entry
	policy       map[core.Level]OverflowPolicy
	blockTimeout time.Duration
	drainTimeout time.Duration
	stats        *Stats
	wg           sync.WaitGroup
	done         chan struct{}
	closeOnce    sync.Once
	recycleInner bool

	blockMu    sync.Mutex
	blockTimer *time.Timer
}

// NewAsync wraps a handler with an asynchronous delivery queue.
func NewAsync(inner Handler, cfg AsyncConfig) *Async {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout <= 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
	h := &Async{
		inner:        inner,
		queue:        make(chan *core.Entry, cfg.BufferSize),
		policy:       cfg.OverflowPolicy,
		blockTimeout: cfg.BlockTimeout,
		drainTimeout: cfg.DrainTimeout,
		stats:        NewStats(),
		done:         make(chan struct{}),
		recycleInner: CanRecycle(inner),
		blockTimer:   NewStoppedTimer(),
	}
	h.wg.Add(1)
	go h.worker()
	return h
}

// Handle enqueues the entry. Ownership of the entry transfers to the
// async handler; the caller must not recycle it (CanRecycleEntry is
// false for exactly this reason).
func (h *Async) Handle(entry *core.Entry) error {
	select {
	case <-h.done:
		h.discard(entry)
		return nil
	default:
	}

	select {
	case h.queue <- entry:
		return nil
	default:
	}

	// Queue full: resolve per level
	switch h.policy[entry.Site.Level] {
	case DropOldest:
		select {
		case old := <-h.queue:
			h.discard(old)
		default:
		}
		select {
		case h.queue <- entry:
		default:
			h.discard(entry)
		}
	case Block:
		h.stats.IncrementBlocked()
		h.blockMu.Lock()
		h.blockTimer.Reset(h.blockTimeout)
		select {
		case h.queue <- entry:
			if !h.blockTimer.Stop() {
				<-h.blockTimer.C
			}
		case <-h.blockTimer.C:
			h.discard(entry)
		case <-h.done:
			if !h.blockTimer.Stop() {
				<-h.blockTimer.C
			}
			h.discard(entry)
		}
		h.blockMu.Unlock()
	default: // DropNewest
		h.discard(entry)
	}
	return nil
}

// discard counts a lost entry and returns it to the pool.
func (h *Async) discard(entry *core.Entry) {
	h.stats.IncrementDropped()
	core.PutEntry(entry)
}

// worker drains the queue into the inner handler.
func (h *Async) worker() {
	defer h.wg.Done()
	for {
		select {
		case e := <-h.queue:
			h.deliver(e)
		case <-h.done:
			// Drain what is already queued, then stop
			for {
				select {
				case e := <-h.queue:
					h.deliver(e)
				default:
					return
				}
			}
		}
	}
}

func (h *Async) deliver(e *core.Entry) {
	if err := h.inner.Handle(e); err == nil {
		h.stats.IncrementProcessed()
	}
	if h.recycleInner {
		core.PutEntry(e)
	}
}

// CanRecycleEntry returns false: entries live in the queue past Handle.
func (h *Async) CanRecycleEntry() bool {
	return false
}

// Stats returns the handler's counters.
func (h *Async) Stats() *Stats {
	return h.stats
}

// Close stops the worker, waits up to DrainTimeout for queued entries,
// and closes the wrapped handler.
func (h *Async) Close() error {
	h.closeOnce.Do(func() {
		close(h.done)
	})

	waited := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(h.drainTimeout):
	}
	return h.inner.Close()
}
