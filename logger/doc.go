// Package logger is the front of the safelog library: it binds
// categories, fail-safe message construction, and a delivery handler
// into one immutable Logger built through a fluent Builder.
//
// Three input modes exist per statement. Log/Debug/Info/... concatenate
// their arguments; Logf/Debugf/... expand a brace-placeholder template
// ({} or {N}); Stream lets the caller compose text incrementally and
// send it verbatim. All three share the same guarantee: a log statement
// never panics and never returns an error, no matter what the arguments
// or their String methods do. Failed constructions degrade to
// self-describing diagnostic messages (see the message package).
//
// Categories are hierarchical, dot-separated names resolved through a
// Registry. A category created on demand inherits its nearest
// ancestor's level, and levels can be changed at runtime (see the
// config package for file-driven updates). Statements below their
// category's level are discarded before any message construction work.
package logger
