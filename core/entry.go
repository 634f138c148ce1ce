package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Site is the static call-site context of one log statement: which
// category it belongs to, at what severity, and where in the source it
// was written. It is captured once per statement and never mutated.
//
// The Category pointer and File string are non-owning references; the
// caller guarantees they stay valid for at least the duration of the
// statement. File always does, since runtime.Caller returns a string
// backed by the binary's pclntab.
type Site struct {
	Category *Category
	Level    Level
	File     string
	Line     int
}

// ShortFile returns the base name of the site's file.
func (s Site) ShortFile() string {
	if s.File == "" {
		return ""
	}
	return filepath.Base(s.File)
}

// CategoryName returns the site's category name, or "" when the site has
// no category.
func (s Site) CategoryName() string {
	if s.Category == nil {
		return ""
	}
	return s.Category.Name()
}

// Entry represents one finished log statement: the call-site context plus
// the single constructed message. The message is set exactly once, after
// construction succeeded or degraded, and is immutable from then on.
type Entry struct {
	Time    time.Time
	Site    Site
	Message string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Site = Site{}
	e.Message = ""
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Site = Site{}
	entryPool.Put(e)
}

// CallSite captures the file and line of the caller skip frames up and
// binds them to the given category and level. Lookup failure degrades to
// an empty file, never an error.
func CallSite(category *Category, level Level, skip int) Site {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Site{Category: category, Level: level}
	}
	return Site{Category: category, Level: level, File: file, Line: line}
}
