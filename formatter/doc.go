// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which fills a caller-provided buffer. Handlers check
// for the optional interfaces at construction time and prefer them when
// available, eliminating intermediate allocations on the write path.
//
// Both built-in formatters (TextFormatter and JSONFormatter) implement
// all three. They use a pooled bytes.Buffer internally and rely on Go's
// Append-style functions (time.AppendFormat, strconv.Itoa into a single
// write) to avoid per-call allocations. The TextFormatter pre-renders
// its level bracket strings (" [INFO] ", etc.) at construction time,
// colored via fatih/color when Config.Colors is set, so the common path
// is a single WriteString either way.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
