package handler

import "github.com/philipp01105/safelog/core"

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers     []Handler
	recycleEntry bool // true when every child supports entry recycling
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:     handlers,
		recycleEntry: true,
	}
	for _, h := range handlers {
		if !CanRecycle(h) {
			m.recycleEntry = false
		}
	}
	return m
}

// Handle fans the entry out to every child. Every child is attempted
// even when an earlier one fails; the last error wins.
func (m *MultiHandler) Handle(entry *core.Entry) error {
	var lastErr error
	for _, h := range m.handlers {
		if err := h.Handle(entry); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// CanRecycleEntry returns true only when every child allows recycling.
func (m *MultiHandler) CanRecycleEntry() bool {
	return m.recycleEntry
}

// Close closes all handlers, returning the last error encountered.
func (m *MultiHandler) Close() error {
	var lastErr error
	for _, h := range m.handlers {
		if err := h.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
