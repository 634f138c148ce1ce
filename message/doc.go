// Package message constructs the final text of one log statement and
// guarantees the construction never fails, no matter what the caller's
// arguments do.
//
// Two construction modes exist. Build concatenates its arguments using
// a strict per-argument conversion; Format expands a brace-placeholder
// template ({}, {N}, {{ and }} escapes). Both run the primary attempt
// inside a failure boundary: a template defect, an argument type
// without a textual conversion, or a conversion that panics all degrade
// to a diagnostic string instead of propagating out of the log call.
//
// Build's failure path surfaces only the error text. Format's failure
// path additionally preserves the original template and a per-argument
// rendering for forensics: each argument appears as (<type>: <text>),
// with the ErrorConvertingToString token when its conversion was
// attempted and raised, or the distinct NoStringConversion token when
// no conversion exists for its type.
//
// The conversion capability set is: string, []byte, bool, every int,
// uint and float width, uintptr, error, fmt.Stringer, and
// encoding.TextMarshaler. Anything else has no conversion.
//
// All functions here are pure and safe for concurrent use.
package message
