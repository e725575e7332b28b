// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

//go:generate go tool stringer -type=TokenKind -linecomment

// Package lualex provides a byte-oriented scanner for the lexical
// elements of the data-only subset of Lua 5.4 source text: identifiers,
// reserved words, numerals, short and long strings, and the handful of
// punctuation tokens a literal-value grammar needs.
//
// It does not tokenize Lua's full operator surface: of the operators, only
// '+', '-', and '/' are recognized (for signs and the (0/0) literal), and
// the characters of the other operators, such as '*', '<', or '#', are
// reported as errors. All reserved words, including the control-flow
// keywords, are recognized so that they are never scanned as identifiers.
package lualex

// Token represents a single lexical element.
type Token struct {
	Kind TokenKind
	// Offset is the zero-based byte offset of the first byte of the
	// token in the scanned input.
	Offset int
	// Value holds the decoded payload for an IdentifierToken, a
	// StringToken, or a NumeralToken. For NumeralToken, Value is the raw
	// numeral text as written in the source (sign excluded), for later
	// interpretation by ParseNumeral.
	Value string
}

// String formats the token approximately as it appeared in the source.
func (tok Token) String() string {
	switch tok.Kind {
	case EOFToken:
		return "<eof>"
	case ErrorToken:
		return "<error>"
	case StringToken:
		return Quote(tok.Value)
	case IdentifierToken, NumeralToken:
		return tok.Value
	default:
		return tok.Kind.String()
	}
}

// TokenKind is an enumeration of valid [Token] kinds.
// The zero value is [ErrorToken].
type TokenKind int

// [TokenKind] values.
const (
	// ErrorToken indicates an invalid token; the scanner also returns a
	// non-nil error alongside it.
	ErrorToken TokenKind = iota
	// EOFToken indicates the end of input was reached.
	EOFToken
	// IdentifierToken indicates a name that is not a reserved word.
	IdentifierToken
	// StringToken indicates a literal string. Value holds the decoded
	// bytes, not the source text.
	StringToken
	// NumeralToken indicates a numeral constant. Value holds the raw
	// source text of the numeral (no sign).
	NumeralToken

	// Reserved words.

	AndToken      // and
	BreakToken    // break
	DoToken       // do
	ElseToken     // else
	ElseifToken   // elseif
	EndToken      // end
	FalseToken    // false
	ForToken      // for
	FunctionToken // function
	GotoToken     // goto
	IfToken       // if
	InToken       // in
	LocalToken    // local
	NilToken      // nil
	NotToken      // not
	OrToken       // or
	RepeatToken   // repeat
	ReturnToken   // return
	ThenToken     // then
	TrueToken     // true
	UntilToken    // until
	WhileToken    // while

	// Punctuation used by the value and table-constructor grammar.

	AddToken      // +
	SubToken      // -
	DivToken      // /
	LParenToken   // (
	RParenToken   // )
	LBraceToken   // {
	RBraceToken   // }
	LBracketToken // [
	RBracketToken // ]
	AssignToken   // =
	CommaToken    // ,
	SemiToken     // ;
)

var keywords = map[string]TokenKind{
	"and":      AndToken,
	"break":    BreakToken,
	"do":       DoToken,
	"else":     ElseToken,
	"elseif":   ElseifToken,
	"end":      EndToken,
	"false":    FalseToken,
	"for":      ForToken,
	"function": FunctionToken,
	"goto":     GotoToken,
	"if":       IfToken,
	"in":       InToken,
	"local":    LocalToken,
	"nil":      NilToken,
	"not":      NotToken,
	"or":       OrToken,
	"repeat":   RepeatToken,
	"return":   ReturnToken,
	"then":     ThenToken,
	"true":     TrueToken,
	"until":    UntilToken,
	"while":    WhileToken,
}

// IsReservedWord reports whether s is a Lua 5.4 reserved word.
func IsReservedWord(s string) bool {
	_, reserved := keywords[s]
	return reserved
}
