package logger

import (
	"fmt"
	"strings"

	"github.com/philipp01105/safelog/core"
)

// Stream is the stream-composition input mode: the caller accumulates
// text however it likes, and Send extracts the accumulated content
// verbatim as the statement's message. The logger applies no further
// formatting to stream-composed text.
//
// A Stream created below its category's level is inert: writes are
// discarded and Send delivers nothing. A Stream is single-use and not
// safe for concurrent use, matching its one-statement lifetime.
type Stream struct {
	logger  *Logger
	level   core.Level
	enabled bool
	sent    bool
	buf     strings.Builder
}

// Stream starts a stream-composed log statement at the given level.
func (l *Logger) Stream(level core.Level) *Stream {
	return &Stream{
		logger:  l,
		level:   level,
		enabled: l.category.Enabled(level),
	}
}

// Write implements io.Writer. It never fails; writing to a disabled or
// already-sent stream is a silent no-op.
func (s *Stream) Write(p []byte) (int, error) {
	if s.enabled && !s.sent {
		s.buf.Write(p)
	}
	return len(p), nil
}

// WriteString appends a string to the stream.
func (s *Stream) WriteString(str string) (int, error) {
	if s.enabled && !s.sent {
		s.buf.WriteString(str)
	}
	return len(str), nil
}

// Print appends the arguments using fmt.Fprint and returns the stream
// for chaining. fmt contains the failures of misbehaving String methods
// itself, so this cannot panic either.
func (s *Stream) Print(args ...any) *Stream {
	if s.enabled && !s.sent {
		fmt.Fprint(&s.buf, args...)
	}
	return s
}

// Printf appends fmt.Sprintf-formatted text and returns the stream for
// chaining.
func (s *Stream) Printf(format string, args ...any) *Stream {
	if s.enabled && !s.sent {
		fmt.Fprintf(&s.buf, format, args...)
	}
	return s
}

// Send finalizes the stream and delivers its accumulated text as one
// log statement. Subsequent Send calls are no-ops; a statement produces
// at most one message.
func (s *Stream) Send() {
	if !s.enabled || s.sent {
		return
	}
	s.sent = true
	s.logger.emit(s.level, s.buf.String())
}
