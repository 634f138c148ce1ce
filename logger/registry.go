package logger

import (
	"strings"
	"sync"

	"github.com/philipp01105/safelog/core"
)

// Registry resolves dot-separated category names to Category handles.
// A category created on demand inherits the level of its nearest
// existing ancestor; the root category (empty name) always exists.
// Handles are never removed, so a call site may keep its pointer for
// the process lifetime.
type Registry struct {
	mu         sync.RWMutex
	categories map[string]*core.Category
}

// NewRegistry creates a registry whose root category has the given level.
func NewRegistry(rootLevel core.Level) *Registry {
	r := &Registry{categories: make(map[string]*core.Category)}
	r.categories[""] = core.NewCategory("", rootLevel)
	return r
}

// Category returns the handle for name, creating it (and recording it
// permanently) if needed.
func (r *Registry) Category(name string) *core.Category {
	r.mu.RLock()
	c, ok := r.categories[name]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.categories[name]; ok {
		return c
	}
	c = core.NewCategory(name, r.inheritedLevel(name))
	r.categories[name] = c
	return c
}

// inheritedLevel finds the level of the nearest existing ancestor.
// Callers hold at least a read lock.
func (r *Registry) inheritedLevel(name string) core.Level {
	for name != "" {
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[:i]
		} else {
			name = ""
		}
		if c, ok := r.categories[name]; ok {
			return c.Level()
		}
	}
	return r.categories[""].Level()
}

// SetLevel updates a category's level, creating the category if needed.
// With propagate set, every existing descendant is updated too.
func (r *Registry) SetLevel(name string, level core.Level, propagate bool) {
	r.Category(name).SetLevel(level)
	if !propagate {
		return
	}

	prefix := name + "."
	r.mu.RLock()
	defer r.mu.RUnlock()
	for n, c := range r.categories {
		if name == "" && n != "" || strings.HasPrefix(n, prefix) {
			c.SetLevel(level)
		}
	}
}

// Names returns the currently known category names, unordered.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.categories))
	for n := range r.categories {
		names = append(names, n)
	}
	return names
}
