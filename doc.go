// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

// Package luadata parses the "data-only" subset of Lua 5.4 source text —
// literal values, optionally wrapped in a return statement or a sequence
// of identifier assignments — into an in-memory value tree, and
// materializes that tree into caller-defined Go types.
//
// It never evaluates Lua code: there are no operators, control flow,
// function calls, or variable references in the accepted grammar. Inputs
// that use any of those are rejected with a parse error. This makes the
// package suitable for reading persisted state written with Lua's
// %q-style formatting, such as game saves or configuration dumps, without
// embedding a Lua interpreter.
package luadata
