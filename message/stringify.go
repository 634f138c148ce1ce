package message

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Placeholder tokens emitted on the fallback path. They are distinct so
// a reader can tell a conversion that was attempted and failed apart
// from a type that never had a conversion, without consulting source.
const (
	// ErrorConvertingToString marks an argument whose conversion exists
	// but raised when attempted.
	ErrorConvertingToString = "error_converting_to_string"
	// NoStringConversion marks an argument whose type exposes no textual
	// conversion at all.
	NoStringConversion = "no_string_conversion"
)

// convert produces the textual form of one value. ok is false when the
// value exposes no conversion capability; err is non-nil when a
// conversion was attempted and failed. convert itself never panics:
// the fallible capabilities (error, fmt.Stringer, encoding.TextMarshaler)
// run inside a recover boundary.
func convert(v any) (text string, ok bool, err error) {
	switch x := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return x, true, nil
	case []byte:
		return string(x), true, nil
	case bool:
		return strconv.FormatBool(x), true, nil
	case int:
		return strconv.FormatInt(int64(x), 10), true, nil
	case int8:
		return strconv.FormatInt(int64(x), 10), true, nil
	case int16:
		return strconv.FormatInt(int64(x), 10), true, nil
	case int32:
		return strconv.FormatInt(int64(x), 10), true, nil
	case int64:
		return strconv.FormatInt(x, 10), true, nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), true, nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true, nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true, nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true, nil
	case uint64:
		return strconv.FormatUint(x, 10), true, nil
	case uintptr:
		return "0x" + strconv.FormatUint(uint64(x), 16), true, nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), true, nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true, nil
	case error:
		text, err = guarded(func() (string, error) { return x.Error(), nil })
		return text, true, err
	case fmt.Stringer:
		text, err = guarded(func() (string, error) { return x.String(), nil })
		return text, true, err
	case encoding.TextMarshaler:
		text, err = guarded(func() (string, error) {
			b, merr := x.MarshalText()
			return string(b), merr
		})
		return text, true, err
	default:
		return "", false, nil
	}
}

// guarded runs one conversion attempt and turns a panic into an error.
func guarded(fn func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

// typeName returns the concrete type name of v, or "" for a nil
// interface. Name lookup is best-effort; the fallback rendering simply
// omits the name when it is unavailable.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	return t.String()
}

// appendArg appends the strict conversion of one argument. An argument
// without a conversion capability, or whose conversion fails, fails the
// whole attempt with a *ConversionError; the caller's failure boundary
// decides how to degrade.
func appendArg(b *strings.Builder, v any, index int) error {
	text, ok, err := convert(v)
	if !ok {
		return &ConversionError{Index: index, Type: typeName(v)}
	}
	if err != nil {
		return &ConversionError{Index: index, Type: typeName(v), Err: err}
	}
	b.WriteString(text)
	return nil
}

// appendFallbackArg renders one argument for the fallback composer. It
// never fails: a failed conversion degrades to ErrorConvertingToString
// and a missing one to NoStringConversion. The type name prefix is
// omitted when the name is unavailable, independently of which branch
// was taken.
func appendFallbackArg(b *strings.Builder, v any) {
	b.WriteByte('(')
	if name := typeName(v); name != "" {
		b.WriteString(name)
		b.WriteString(": ")
	}
	text, ok, err := convert(v)
	switch {
	case !ok:
		b.WriteString(NoStringConversion)
	case err != nil:
		b.WriteString(ErrorConvertingToString)
	default:
		b.WriteString(text)
	}
	b.WriteByte(')')
}
