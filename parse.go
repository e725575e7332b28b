// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package luadata

import (
	"bytes"

	"github.com/lua-data/luadata/internal/lualex"
)

// Parse parses src as the data-only subset of Lua 5.4 source text,
// returning the resulting value tree. The grammar production accepted is
// selected by opts.Form:
//
//   - ExpressionForm accepts a single value and nothing else.
//   - ReturnForm accepts "return <value>", with an optional trailing ';'.
//   - ScriptForm accepts zero or more "name = value" assignments and
//     returns them as a table keyed by the assigned names.
//
// opts.MaxDepth bounds table nesting; a table nested deeper than
// MaxDepth fails with a DepthExceededError. The zero Options value
// therefore rejects any input containing a table.
func Parse(src []byte, opts Options) (Value, error) {
	p := &parser{
		ls:       lualex.NewScanner(bytes.NewReader(src)),
		maxDepth: opts.MaxDepth,
	}
	p.advance()
	if err := p.scanErr(); err != nil {
		return Value{}, err
	}

	var v Value
	var err error
	switch opts.Form {
	case ReturnForm:
		v, err = p.parseReturn()
	case ScriptForm:
		v, err = p.parseScript()
	default:
		v, err = p.parseExpression()
	}
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

func (p *parser) parseExpression() (Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	if p.curr.Kind != lualex.EOFToken {
		return Value{}, newSyntaxError(p.curr.Offset, "unexpected %v after value", p.curr)
	}
	return v, nil
}

func (p *parser) parseReturn() (Value, error) {
	if p.curr.Kind != lualex.ReturnToken {
		return Value{}, newSyntaxError(p.curr.Offset, "expected 'return'")
	}
	p.advance()
	if err := p.scanErr(); err != nil {
		return Value{}, err
	}
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	if p.curr.Kind == lualex.SemiToken {
		p.advance()
		if err := p.scanErr(); err != nil {
			return Value{}, err
		}
	}
	if p.curr.Kind != lualex.EOFToken {
		return Value{}, newSyntaxError(p.curr.Offset, "unexpected %v after return value", p.curr)
	}
	return v, nil
}

// parseScript recognizes a sequence of top-level "name = value"
// assignments, building a table keyed by the assigned names in
// assignment order (last assignment to a given name wins, and is
// re-appended to the end, following the table-constructor override rule).
func (p *parser) parseScript() (Value, error) {
	t := NewTable()
	for p.curr.Kind != lualex.EOFToken {
		if p.curr.Kind != lualex.IdentifierToken {
			return Value{}, newSyntaxError(p.curr.Offset, "expected identifier")
		}
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

		if p.curr.Kind == lualex.SemiToken {
			p.advance()
			if err := p.scanErr(); err != nil {
				return Value{}, err
			}
		}
	}
	return TableValue(t), nil
}
