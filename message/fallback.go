package message

import "strings"

// fallbackFormat composes the diagnostic message for a failed template
// attempt. The layout is fixed: the cause, the original template
// verbatim, then every original argument in order joined by ", ". The
// assembly uses only pre-sized builder writes and the individually
// guarded per-argument renderer, so this path cannot itself fail.
func fallbackFormat(tmpl string, args []any, cause error) string {
	text := cause.Error()

	var b strings.Builder
	b.Grow(len(text) + len(tmpl) + 24*len(args) + 64)
	b.WriteString("error formatting log message: ")
	b.WriteString(text)
	b.WriteString("; format string: \"")
	b.WriteString(tmpl)
	b.WriteString("\", arguments: ")
	for i, v := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		appendFallbackArg(&b, v)
	}
	return b.String()
}
