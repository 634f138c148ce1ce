package message

import (
	"fmt"
	"strings"
)

// Build concatenates the arguments into one message using the strict
// per-argument conversion. It never panics and never returns an error:
// when the primary attempt fails, the result is an error description
// instead of the concatenation. Zero arguments yield an empty string.
func Build(args ...any) string {
	s, err := tryBuild(args)
	if err == nil {
		return s
	}
	// Concatenation failures are rare and carry little structure, so
	// they degrade to the bare error text without the per-argument
	// breakdown the template path gets.
	var b strings.Builder
	b.Grow(len("error constructing log message: ") + len(err.Error()))
	b.WriteString("error constructing log message: ")
	b.WriteString(err.Error())
	return b.String()
}

// Format expands the template with the arguments. It never panics and
// never returns an error: when the primary attempt fails, the result is
// the fallback composer's diagnostic rendering of the template and every
// original argument.
func Format(tmpl string, args ...any) string {
	s, err := tryFormat(tmpl, args)
	if err == nil {
		return s
	}
	return fallbackFormat(tmpl, args, err)
}

// tryBuild is the primary attempt for Build, bounded so that no failure
// escapes past it as a panic.
func tryBuild(args []any) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	var b strings.Builder
	for i, v := range args {
		if aerr := appendArg(&b, v, i); aerr != nil {
			return "", aerr
		}
	}
	return b.String(), nil
}

// tryFormat is the primary attempt for Format, bounded the same way.
func tryFormat(tmpl string, args []any) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	var b strings.Builder
	b.Grow(len(tmpl) + 16*len(args))
	if ferr := expandTemplate(&b, tmpl, args); ferr != nil {
		return "", ferr
	}
	return b.String(), nil
}
