// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package luadata

// UnknownFieldPolicy controls how the materializer (C5) reacts to a table
// key that does not correspond to any field of the destination record.
type UnknownFieldPolicy int

const (
	// ErrorOnUnknownField fails materialization when a record's source
	// table carries a key with no matching destination field. This is
	// the default zero value.
	ErrorOnUnknownField UnknownFieldPolicy = iota
	// IgnoreUnknownField silently skips keys with no matching
	// destination field.
	IgnoreUnknownField
)

// TraceEvent describes a single decision point visited by the
// materializer, for callers that opt into [Options.Trace].
type TraceEvent struct {
	// Path is the sequence of field names and/or sequence indices (as
	// decimal strings) leading to Value, root first.
	Path []string
	// Value is the source LuaValue being materialized at this point.
	Value Value
	// Kind names the capability the materializer is about to invoke,
	// e.g. "bool", "int", "seq", "map", "enum", "option".
	Kind string
}

// Options configures [Parse] and [Decode].
type Options struct {
	// MaxDepth bounds table nesting (§4.4): the root table counts as
	// depth 1. A value of 0 rejects any table at all. Required: the
	// zero Options value rejects every table-bearing input.
	MaxDepth int
	// Form selects the top-level grammar production. The zero value is
	// ExpressionForm.
	Form Form
	// OnUnknownField controls record materialization's handling of
	// unrecognized table keys. The zero value is ErrorOnUnknownField.
	OnUnknownField UnknownFieldPolicy
	// Trace, if non-nil, is invoked at each field or element the
	// materializer visits. It is never invoked by Parse alone, only by
	// Decode/DecodeAs.
	Trace func(TraceEvent)
}
