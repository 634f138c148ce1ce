// Package handler implements the delivery side of a log statement: a
// finalized Entry comes in, bytes go out.
//
// Console and File write synchronously; Async wraps any handler with a
// bounded queue, a drain goroutine, and per-level overflow policies
// (drop newest, drop oldest, or block with a timeout). MultiHandler
// fans an entry out to several handlers. Two bridges connect safelog to
// other ecosystems: SlogHandler adapts a safelog Handler into a
// log/slog backend, and ZapHandler delivers entries through a zap
// logger.
//
// Handlers that finish with an entry inside Handle implement Recycler
// and answer true, letting the logger return the entry to the pool
// immediately. Async answers false because the entry outlives Handle
// in its queue; it recycles entries itself after delivery.
package handler
