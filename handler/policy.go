package handler

import (
	"sync/atomic"

	"github.com/philipp01105/safelog/core"
)

// OverflowPolicy defines how to handle full async queues
type OverflowPolicy int

const (
	// DropNewest drops the newest log entry when queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest log entry when queue is full
	DropOldest
	// Block blocks the caller until space is available (with timeout)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy returns the default level-based overflow policies
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.DebugLevel: DropNewest, // Drop debug logs when full
		core.InfoLevel:  DropNewest, // Drop info logs when full
		core.WarnLevel:  DropNewest, // Drop warn logs when full
		core.ErrorLevel: Block,      // Block for errors (with timeout)
	}
}

// Stats tracks handler statistics
type Stats struct {
	// DroppedTotal counts entries lost to queue overflow
	DroppedTotal uint64
	// BlockedTotal counts times logging blocked due to full queue
	BlockedTotal uint64
	// ProcessedTotal counts total processed logs
	ProcessedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	atomic.AddUint64(&s.BlockedTotal, 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// Dropped returns the dropped count
func (s *Stats) Dropped() uint64 {
	return atomic.LoadUint64(&s.DroppedTotal)
}

// Blocked returns the blocked count
func (s *Stats) Blocked() uint64 {
	return atomic.LoadUint64(&s.BlockedTotal)
}

// Processed returns the processed count
func (s *Stats) Processed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}
