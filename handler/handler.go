package handler

import (
	"time"

	"github.com/philipp01105/safelog/core"
)

// Handler is the delivery boundary: it receives a finalized, non-empty
// constructed message inside its entry and must not modify it.
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Recycler is an optional interface reporting whether the caller may
// return an entry to the pool immediately after Handle returns. Async
// handlers retain entries past Handle and answer false.
type Recycler interface {
	CanRecycleEntry() bool
}

// CanRecycle reports whether entries given to h may be recycled by the
// caller after Handle returns.
func CanRecycle(h Handler) bool {
	if r, ok := h.(Recycler); ok {
		return r.CanRecycleEntry()
	}
	return false
}

// NewStoppedTimer returns a stopped timer ready for Reset, avoiding a
// timer allocation per blocked enqueue.
func NewStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return t
}
