package message

import (
	"strconv"
	"strings"
)

// expandTemplate substitutes brace placeholders in tmpl with converted
// arguments. `{}` consumes the next argument, `{N}` a specific one, and
// `{{`/`}}` are literal braces. Any defect in the template or a failed
// argument conversion aborts with an error; the partially written
// builder contents are discarded by the caller.
//
// Arguments never referenced by a placeholder are not an error.
func expandTemplate(b *strings.Builder, tmpl string, args []any) error {
	next := 0
	for i := 0; i < len(tmpl); {
		switch tmpl[i] {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				return &FormatError{Pos: i, Msg: "unterminated '{' placeholder"}
			}
			body := tmpl[i+1 : i+end]
			idx := next
			if body == "" {
				next++
			} else {
				n, err := strconv.Atoi(body)
				if err != nil || n < 0 {
					return &FormatError{Pos: i, Msg: "invalid placeholder {" + body + "}"}
				}
				idx = n
			}
			if idx >= len(args) {
				return &FormatError{Pos: i, Msg: "placeholder index " + strconv.Itoa(idx) + " out of range for " + strconv.Itoa(len(args)) + " argument(s)"}
			}
			if err := appendArg(b, args[idx], idx); err != nil {
				return err
			}
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return &FormatError{Pos: i, Msg: "single '}' in format string"}
		default:
			b.WriteByte(tmpl[i])
			i++
		}
	}
	return nil
}
