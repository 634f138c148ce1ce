package message

import "fmt"

// ConversionError reports that one argument's textual conversion either
// failed or does not exist. It is contained inside this package; Build
// and Format convert it to text instead of returning it.
type ConversionError struct {
	Index int    // position in the argument list
	Type  string // concrete type name, "" when unknown
	Err   error  // nil when the type has no conversion capability
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		if e.Type == "" {
			return fmt.Sprintf("argument %d has no string conversion", e.Index)
		}
		return fmt.Sprintf("argument %d (%s) has no string conversion", e.Index, e.Type)
	}
	if e.Type == "" {
		return fmt.Sprintf("converting argument %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("converting argument %d (%s): %v", e.Index, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// FormatError reports a defect in a format template or its argument
// list: an unterminated or stray brace, a malformed placeholder, or an
// index that does not match the arguments.
type FormatError struct {
	Pos int    // byte offset into the template
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Pos)
}
