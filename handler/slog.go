package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/safelog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// safelog Handler, so safelog can be used as a drop-in slog backend.
// Attributes have no separate representation in an Entry; they are
// rendered into the message text as " key=value" suffixes.
type SlogHandler struct {
	handler  Handler
	category *core.Category
	level    core.Level
	attrText string // attrs from WithAttrs, rendered with their group at the time
	group    string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, category *core.Category, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler:  h,
		category: category,
		level:    level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts a slog.Record into an Entry and passes it on.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Site = core.Site{Category: s.category, Level: slogLevelToCore(record.Level)}

	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrText)
	record.Attrs(func(a slog.Attr) bool {
		appendSlogAttr(&b, s.group, a)
		return true
	})
	entry.Message = b.String()

	err := s.handler.Handle(entry)
	if CanRecycle(s.handler) {
		core.PutEntry(entry)
	}
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes. They
// are rendered immediately so later WithGroup calls cannot re-prefix them.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrText)
	for _, a := range attrs {
		appendSlogAttr(&b, s.group, a)
	}
	return &SlogHandler{
		handler:  s.handler,
		category: s.category,
		level:    s.level,
		attrText: b.String(),
		group:    s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		handler:  s.handler,
		category: s.category,
		level:    s.level,
		attrText: s.attrText,
		group:    newGroup,
	}
}

// appendSlogAttr renders one attribute as " key=value", flattening
// groups with a dotted prefix.
func appendSlogAttr(b *strings.Builder, group string, a slog.Attr) {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendSlogAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
