package core

import "sync/atomic"

// Category is a named handle that gates which statements are worth
// constructing. The level is atomic so call sites on other goroutines
// read it without coordination. Callers hold a Category by pointer and
// never copy it; the registry that created it manages its lifetime.
type Category struct {
	name  string
	level atomic.Int32
}

// NewCategory creates a category with the given name and minimum level.
func NewCategory(name string, level Level) *Category {
	c := &Category{name: name}
	c.level.Store(int32(level))
	return c
}

// Name returns the category's dot-separated name. The root category's
// name is the empty string.
func (c *Category) Name() string {
	return c.name
}

// Level returns the category's current minimum level.
func (c *Category) Level() Level {
	return Level(c.level.Load())
}

// SetLevel updates the category's minimum level.
func (c *Category) SetLevel(level Level) {
	c.level.Store(int32(level))
}

// Enabled reports whether a statement at the given level should be
// constructed at all. A nil category accepts everything so that a bare
// logger still works.
func (c *Category) Enabled(level Level) bool {
	if c == nil {
		return true
	}
	return level >= Level(c.level.Load())
}
