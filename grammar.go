// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package luadata

import (
	"math"
	"strings"

	"github.com/lua-data/luadata/internal/lualex"
)

// parser holds the in-progress state of a [Parse] call. Unlike a full Lua
// parser, it recognizes only the data-only grammar of §4.2: there is no
// expression precedence, no statements beyond top-level assignment, and
// no function or variable resolution.
type parser struct {
	ls       *lualex.Scanner
	curr     lualex.Token
	err      error
	depth    int
	maxDepth int
}

func (p *parser) advance() {
	if p.err != nil {
		return
	}
	p.curr, p.err = p.ls.Scan()
}

// scanErr reports a pending lexical error from the scanner, if any, as a
// typed *Error.
func (p *parser) scanErr() error {
	if p.err == nil {
		return nil
	}
	return newLexicalError(p.curr.Offset, "%v", p.err)
}

func (p *parser) parseValue() (Value, error) {
	switch p.curr.Kind {
	case lualex.NilToken:
		p.advance()
		return Nil, p.scanErr()
	case lualex.TrueToken:
		p.advance()
		return BoolValue(true), p.scanErr()
	case lualex.FalseToken:
		p.advance()
		return BoolValue(false), p.scanErr()
	case lualex.StringToken:
		s := p.curr.Value
		p.advance()
		if err := p.scanErr(); err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	case lualex.NumeralToken:
		return p.parseSignedNumeral(1)
	case lualex.AddToken:
		off := p.curr.Offset
		p.advance()
		if err := p.scanErr(); err != nil {
			return Value{}, err
		}
		if p.curr.Kind != lualex.NumeralToken {
			return Value{}, newSyntaxError(off, "expected number after '+'")
		}
		return p.parseSignedNumeral(1)
	case lualex.SubToken:
		off := p.curr.Offset
		p.advance()
		if err := p.scanErr(); err != nil {
			return Value{}, err
		}
		if p.curr.Kind != lualex.NumeralToken {
			return Value{}, newSyntaxError(off, "expected number after '-'")
		}
		return p.parseSignedNumeral(-1)
	case lualex.LParenToken:
		return p.parseNaNLiteral()
	case lualex.LBraceToken:
		return p.parseTable()
	default:
		return Value{}, newSyntaxError(p.curr.Offset, "unexpected %v; expected a value", p.curr)
	}
}

// parseSignedNumeral consumes the current NumeralToken and applies sign
// (1 or -1), which was folded in at the lexical level so that the most
// negative 64-bit integer can be represented (§4.1 "Signs").
func (p *parser) parseSignedNumeral(sign int) (Value, error) {
	off := p.curr.Offset
	raw := p.curr.Value
	kind, i, f, err := lualex.ParseNumeral(raw)
	if err != nil {
		return Value{}, newLexicalError(off, "malformed number %q: %v", raw, err)
	}
	p.advance()
	if serr := p.scanErr(); serr != nil {
		return Value{}, serr
	}
	switch kind {
	case lualex.IntegerNumeral:
		if sign < 0 {
			i = -i
		}
		return IntegerValue(i), nil
	default:
		if sign < 0 {
			// The decimal magnitude 2^63 overflows int64 on its own, but
			// its negation is math.MinInt64.
			if strings.TrimLeft(raw, "0") == "9223372036854775808" {
				return IntegerValue(math.MinInt64), nil
			}
			f = -f
		}
		return FloatValue(f), nil
	}
}

// parseNaNLiteral recognizes the single literal token "(0/0)", the only
// parenthesized form the grammar accepts, which denotes Float(NaN).
func (p *parser) parseNaNLiteral() (Value, error) {
	off := p.curr.Offset
	fail := func() (Value, error) {
		return Value{}, newSyntaxError(off, "unsupported expression; only the literal (0/0) is accepted")
	}

	p.advance()
	if err := p.scanErr(); err != nil {
		return Value{}, err
	}
	if p.curr.Kind != lualex.NumeralToken || p.curr.Value != "0" {
		return fail()
	}
	p.advance()
	if err := p.scanErr(); err != nil {
		return Value{}, err
	}
	if p.curr.Kind != lualex.DivToken {
		return fail()
	}
	p.advance()
	if err := p.scanErr(); err != nil {
		return Value{}, err
	}
	if p.curr.Kind != lualex.NumeralToken || p.curr.Value != "0" {
		return fail()
	}
	p.advance()
	if err := p.scanErr(); err != nil {
		return Value{}, err
	}
	if p.curr.Kind != lualex.RParenToken {
		return fail()
	}
	p.advance()
	if err := p.scanErr(); err != nil {
		return Value{}, err
	}
	return FloatValue(math.NaN()), nil
}

// parseTable recognizes a table_constructor, enforcing the depth guard
// (C4) and the insertion/override rules of §4.2.
func (p *parser) parseTable() (Value, error) {
	off := p.curr.Offset
	p.depth++
	if p.depth > p.maxDepth {
		return Value{}, newDepthExceededError(off)
	}
	defer func() { p.depth-- }()

	p.advance()
	if err := p.scanErr(); err != nil {
		return Value{}, err
	}

	t := NewTable()
	nextImplicit := int64(1)
	for p.curr.Kind != lualex.RBraceToken {
		if p.curr.Kind == lualex.EOFToken {
			return Value{}, newSyntaxError(p.curr.Offset, "'}' expected")
		}

		switch p.curr.Kind {
		case lualex.LBracketToken:
			bracketOff := p.curr.Offset
			p.advance()
			if err := p.scanErr(); err != nil {
				return Value{}, err
			}
			key, err := p.parseValue()
			if err != nil {
				return Value{}, err
			}
			if key.IsNil() {
				return Value{}, newSemanticError(bracketOff, "table key may not be nil")
			}
			if key.isNaN() {
				return Value{}, newSemanticError(bracketOff, "table key may not be NaN")
			}
			if p.curr.Kind != lualex.RBracketToken {
				return Value{}, newSyntaxError(p.curr.Offset, "']' expected")
			}
			p.advance()
			if err := p.scanErr(); err != nil {
				return Value{}, err
			}
			if p.curr.Kind != lualex.AssignToken {
				return Value{}, newSyntaxError(p.curr.Offset, "'=' expected")
			}
			p.advance()
			if err := p.scanErr(); err != nil {
				return Value{}, err
			}
			val, err := p.parseValue()
			if err != nil {
				return Value{}, err
			}
			t.Set(key, val)
		case lualex.IdentifierToken:
			name := p.curr.Value
			p.advance()
			if err := p.scanErr(); err != nil {
				return Value{}, err
			}
			if p.curr.Kind != lualex.AssignToken {
				return Value{}, newSyntaxError(p.curr.Offset, "'=' expected")
			}
			p.advance()
			if err := p.scanErr(); err != nil {
				return Value{}, err
			}
			val, err := p.parseValue()
			if err != nil {
				return Value{}, err
			}
			t.Set(StringValue(name), val)
		default:
			val, err := p.parseValue()
			if err != nil {
				return Value{}, err
			}
			t.Set(IntegerValue(nextImplicit), val)
			nextImplicit++
		}

		switch p.curr.Kind {
		case lualex.CommaToken, lualex.SemiToken:
			p.advance()
			if err := p.scanErr(); err != nil {
				return Value{}, err
			}
		case lualex.RBraceToken:
			// Loop condition exits.
		default:
			return Value{}, newSyntaxError(p.curr.Offset, "'}', ',' or ';' expected")
		}
	}

	p.advance() // consume '}'
	if err := p.scanErr(); err != nil {
		return Value{}, err
	}
	return TableValue(t), nil
}
