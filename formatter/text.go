package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/philipp01105/safelog/core"
)

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	Config
	brackets [len(levelBrackets)]string
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
	core.FatalLevel: " [FATAL] ",
	core.PanicLevel: " [PANIC] ",
}

var levelColors = [...]*color.Color{
	core.DebugLevel: color.New(color.FgCyan),
	core.InfoLevel:  color.New(color.FgGreen),
	core.WarnLevel:  color.New(color.FgYellow),
	core.ErrorLevel: color.New(color.FgRed),
	core.FatalLevel: color.New(color.FgRed, color.Bold),
	core.PanicLevel: color.New(color.FgRed, color.Bold),
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	f := &TextFormatter{Config: cfg}
	// Brackets are pre-rendered once, colored or plain, so the hot path
	// is a single WriteString regardless of configuration.
	for i, b := range levelBrackets {
		if cfg.Colors {
			f.brackets[i] = levelColors[i].Sprint(b)
		} else {
			f.brackets[i] = b
		}
	}
	return f
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f.formatToBuffer(entry, buf)
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Level - use pre-formatted string
	if int(entry.Site.Level) < len(f.brackets) {
		buf.WriteString(f.brackets[entry.Site.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	// Category name
	if name := entry.Site.CategoryName(); name != "" {
		buf.WriteString(name)
		buf.WriteString(": ")
	}

	// Call-site info if enabled
	if f.IncludeSite && entry.Site.File != "" {
		buf.WriteByte('[')
		buf.WriteString(entry.Site.ShortFile())
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Site.Line))
		buf.WriteString("] ")
	}

	// Message
	buf.WriteString(entry.Message)

	buf.WriteByte('\n')
}
