// Package core defines the shared types used across the safelog library.
//
// It provides the Level type for severity filtering, the Category type
// that gates whether a statement is worth constructing, the Site type
// that records a statement's static call-site context, and the Entry
// type that carries the finished message to a handler.
//
// A Site holds non-owning references: the Category pointer belongs to
// the registry that created it, and the File string is backed by the
// runtime's caller tables. Neither is copied per statement, which keeps
// the hot path allocation-free.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and must return it with PutEntry once the handler has
// consumed it.
package core
