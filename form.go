// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package luadata

import "strconv"

// Form selects which top-level grammar production [Parse] recognizes.
type Form int

const (
	// ExpressionForm accepts a single value with no surrounding keyword.
	ExpressionForm Form = iota
	// ReturnForm accepts "return" followed by a single value and an
	// optional trailing semicolon.
	ReturnForm
	// ScriptForm accepts zero or more "name = value" assignments,
	// separated by optional semicolons, producing a table keyed by the
	// assigned identifiers.
	ScriptForm
)

// String returns a human-readable name for f.
func (f Form) String() string {
	switch f {
	case ExpressionForm:
		return "ExpressionForm"
	case ReturnForm:
		return "ReturnForm"
	case ScriptForm:
		return "ScriptForm"
	default:
		return "Form(" + strconv.Itoa(int(f)) + ")"
	}
}
