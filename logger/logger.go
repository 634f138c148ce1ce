package logger

import (
	"os"
	"time"

	"github.com/philipp01105/safelog/core"
	"github.com/philipp01105/safelog/handler"
	"github.com/philipp01105/safelog/message"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is the main logging interface (immutable). Each accepted log
// statement constructs exactly one message through the fail-safe
// message package and hands exactly one finalized Entry to the handler;
// no statement can fail out of the logging call.
type Logger struct {
	handler      handler.Handler
	registry     *Registry
	category     *core.Category
	includeSite  bool
	callerSkip   int
	coarseClock  bool
	recycleEntry bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler     handler.Handler
	registry    *Registry
	level       core.Level
	includeSite bool
	callerSkip  int
	coarseClock bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default root level
		callerSkip: 3,              // Default skip for CallSite
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the root category level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithRegistry sets a pre-built category registry. Without one, Build
// creates a fresh registry using the configured level as its root.
func (b *Builder) WithRegistry(r *Registry) *Builder {
	b.registry = r
	return b
}

// WithSite enables call-site (file:line) capture
func (b *Builder) WithSite(enabled bool) *Builder {
	b.includeSite = enabled
	return b
}

// WithCallerSkip adjusts the stack depth used for call-site capture,
// for wrappers that add frames between the user and the logger.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// WithCoarseClock trades timestamp precision (about 500µs) for not
// calling time.Now on every statement.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build creates the Logger instance bound to the root category.
func (b *Builder) Build() *Logger {
	reg := b.registry
	if reg == nil {
		reg = NewRegistry(b.level)
	}
	if b.coarseClock {
		core.StartCoarseClock()
	}
	return &Logger{
		handler:      b.handler,
		registry:     reg,
		category:     reg.Category(""),
		includeSite:  b.includeSite,
		callerSkip:   b.callerSkip,
		coarseClock:  b.coarseClock,
		recycleEntry: handler.CanRecycle(b.handler),
	}
}

// Category returns a logger bound to the named category (immutable
// operation; the receiver is unchanged).
func (l *Logger) Category(name string) *Logger {
	c := *l
	c.category = l.registry.Category(name)
	return &c
}

// Registry returns the category registry backing this logger.
func (l *Logger) Registry() *Registry {
	return l.registry
}

// now returns the entry timestamp from the configured clock.
func (l *Logger) now() time.Time {
	if l.coarseClock {
		return core.CoarseNow()
	}
	return time.Now()
}

// emit constructs and delivers the single Entry of one log statement.
// The message is already finalized; emit never inspects or alters it.
func (l *Logger) emit(level core.Level, msg string) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	entry.Time = l.now()
	if l.includeSite {
		entry.Site = core.CallSite(l.category, level, l.callerSkip)
	} else {
		entry.Site = core.Site{Category: l.category, Level: level}
	}
	entry.Message = msg

	if err := l.handler.Handle(entry); err != nil {
		return
	}
	if l.recycleEntry {
		core.PutEntry(entry)
	}
}

// Log logs the concatenation of the arguments at the given level.
func (l *Logger) Log(level core.Level, args ...any) {
	if !l.category.Enabled(level) {
		return
	}
	l.emit(level, message.Build(args...))
}

// Logf logs a brace-templated message at the given level.
func (l *Logger) Logf(level core.Level, tmpl string, args ...any) {
	if !l.category.Enabled(level) {
		return
	}
	l.emit(level, message.Format(tmpl, args...))
}

// Debug logs the concatenation of the arguments at debug level
func (l *Logger) Debug(args ...any) {
	if !l.category.Enabled(core.DebugLevel) {
		return
	}
	l.emit(core.DebugLevel, message.Build(args...))
}

// Info logs the concatenation of the arguments at info level
func (l *Logger) Info(args ...any) {
	if !l.category.Enabled(core.InfoLevel) {
		return
	}
	l.emit(core.InfoLevel, message.Build(args...))
}

// Warn logs the concatenation of the arguments at warn level
func (l *Logger) Warn(args ...any) {
	if !l.category.Enabled(core.WarnLevel) {
		return
	}
	l.emit(core.WarnLevel, message.Build(args...))
}

// Error logs the concatenation of the arguments at error level
func (l *Logger) Error(args ...any) {
	if !l.category.Enabled(core.ErrorLevel) {
		return
	}
	l.emit(core.ErrorLevel, message.Build(args...))
}

// Fatal logs at fatal level, flushes the handler, and exits the
// program with os.Exit(1)
func (l *Logger) Fatal(args ...any) {
	l.emit(core.FatalLevel, message.Build(args...))
	l.Close()
	osExit(1)
}

// Panic logs at panic level and panics with the constructed message
func (l *Logger) Panic(args ...any) {
	msg := message.Build(args...)
	l.emit(core.PanicLevel, msg)
	panic(msg)
}

// Debugf logs a brace-templated debug message
func (l *Logger) Debugf(tmpl string, args ...any) {
	if !l.category.Enabled(core.DebugLevel) {
		return
	}
	l.emit(core.DebugLevel, message.Format(tmpl, args...))
}

// Infof logs a brace-templated info message
func (l *Logger) Infof(tmpl string, args ...any) {
	if !l.category.Enabled(core.InfoLevel) {
		return
	}
	l.emit(core.InfoLevel, message.Format(tmpl, args...))
}

// Warnf logs a brace-templated warn message
func (l *Logger) Warnf(tmpl string, args ...any) {
	if !l.category.Enabled(core.WarnLevel) {
		return
	}
	l.emit(core.WarnLevel, message.Format(tmpl, args...))
}

// Errorf logs a brace-templated error message
func (l *Logger) Errorf(tmpl string, args ...any) {
	if !l.category.Enabled(core.ErrorLevel) {
		return
	}
	l.emit(core.ErrorLevel, message.Format(tmpl, args...))
}

// Fatalf logs a brace-templated fatal message, flushes the handler,
// and exits with os.Exit(1)
func (l *Logger) Fatalf(tmpl string, args ...any) {
	l.emit(core.FatalLevel, message.Format(tmpl, args...))
	l.Close()
	osExit(1)
}

// Panicf logs a brace-templated panic message and panics with it
func (l *Logger) Panicf(tmpl string, args ...any) {
	msg := message.Format(tmpl, args...)
	l.emit(core.PanicLevel, msg)
	panic(msg)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
