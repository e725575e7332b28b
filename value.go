// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package luadata

import (
	"hash/maphash"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/lua-data/luadata/internal/lualex"
)

type valueKind byte

const (
	kindNil valueKind = iota
	kindFalse
	kindTrue
	kindInteger
	kindFloat
	kindString
	kindTable
)

// Value is a Lua value restricted to the data-only sublanguage: nil,
// booleans, integers, floats, strings, and tables. The zero Value is Nil.
type Value struct {
	_     [0]func() // forbid ==; use Equal or IdenticalTo
	kind  valueKind
	bits  uint64
	s     string
	table *Table
}

// Nil is the nil Value.
var Nil = Value{}

// BoolValue converts a boolean to a Value.
func BoolValue(b bool) Value {
	if b {
		return Value{kind: kindTrue}
	}
	return Value{kind: kindFalse}
}

// IntegerValue converts a signed 64-bit integer to a Value.
func IntegerValue(i int64) Value {
	return Value{kind: kindInteger, bits: uint64(i)}
}

// FloatValue converts a 64-bit float to a Value. NaN and infinities are
// representable.
func FloatValue(f float64) Value {
	return Value{kind: kindFloat, bits: math.Float64bits(f)}
}

// StringValue converts an arbitrary byte sequence to a Value. The bytes
// need not be valid UTF-8.
func StringValue(s string) Value {
	return Value{kind: kindString, s: s}
}

// TableValue wraps t as a Value.
func TableValue(t *Table) Value {
	return Value{kind: kindTable, table: t}
}

// IsNil reports whether v is Nil.
func (v Value) IsNil() bool { return v.kind == kindNil }

// IsBool reports whether v is a boolean.
func (v Value) IsBool() bool { return v.kind == kindFalse || v.kind == kindTrue }

// IsInteger reports whether v is an integer.
func (v Value) IsInteger() bool { return v.kind == kindInteger }

// IsFloat reports whether v is a float.
func (v Value) IsFloat() bool { return v.kind == kindFloat }

// IsNumber reports whether v is an integer or a float.
func (v Value) IsNumber() bool { return v.kind == kindInteger || v.kind == kindFloat }

// IsString reports whether v is a string.
func (v Value) IsString() bool { return v.kind == kindString }

// IsTable reports whether v is a table.
func (v Value) IsTable() bool { return v.kind == kindTable }

// isNaN reports whether v is a NaN float, the one case a table key may
// never hold.
func (v Value) isNaN() bool {
	return v.kind == kindFloat && math.IsNaN(math.Float64frombits(v.bits))
}

// Bool returns the boolean value of v and whether v is a boolean.
func (v Value) Bool() (_ bool, ok bool) {
	switch v.kind {
	case kindTrue:
		return true, true
	case kindFalse:
		return false, true
	default:
		return false, false
	}
}

// Int64 returns v as a signed 64-bit integer and whether v is an integer
// (no float-to-int coercion is performed here; see the materializer for
// range-checked numeric coercion).
func (v Value) Int64() (_ int64, ok bool) {
	if v.kind != kindInteger {
		return 0, false
	}
	return int64(v.bits), true
}

// Float64 returns v as a float64 and whether v is a number (integers
// widen losslessly in the common case; very large integers may lose
// precision, matching Lua's own int-to-float coercion).
func (v Value) Float64() (_ float64, ok bool) {
	switch v.kind {
	case kindInteger:
		return float64(int64(v.bits)), true
	case kindFloat:
		return math.Float64frombits(v.bits), true
	default:
		return 0, false
	}
}

// String returns v's raw bytes and whether v is a string.
func (v Value) String() (_ string, ok bool) {
	if v.kind != kindString {
		return "", false
	}
	return v.s, true
}

// Table returns v's table and whether v is a table.
func (v Value) Table() (_ *Table, ok bool) {
	if v.kind != kindTable {
		return nil, false
	}
	return v.table, true
}

// GoString renders v approximately as Lua source, following the style of
// Lua's string.format("%q", v).
func (v Value) GoString() string {
	switch v.kind {
	case kindNil:
		return "nil"
	case kindFalse:
		return "false"
	case kindTrue:
		return "true"
	case kindInteger:
		return strconv.FormatInt(int64(v.bits), 10)
	case kindFloat:
		f := math.Float64frombits(v.bits)
		switch {
		case math.IsNaN(f):
			return "(0/0)"
		case math.IsInf(f, 1):
			return "1e9999"
		case math.IsInf(f, -1):
			return "-1e9999"
		default:
			s := strconv.FormatFloat(f, 'g', -1, 64)
			if !strings.ContainsAny(s, ".e") {
				s += ".0"
			}
			return s
		}
	case kindString:
		return lualex.Quote(v.s)
	case kindTable:
		return "{...}"
	default:
		return "<invalid>"
	}
}

// Equal reports whether v and v2 are equal under Lua's raw-equality rules:
// an Integer and a Float compare equal when the float is finite, integral,
// and numerically equal to the integer. NaN is never equal to anything,
// including itself. Tables compare by identity, not by structural
// equality.
func (v Value) Equal(v2 Value) bool {
	switch v.kind {
	case kindNil, kindFalse, kindTrue:
		return v.kind == v2.kind
	case kindInteger:
		switch v2.kind {
		case kindInteger:
			return v.bits == v2.bits
		case kindFloat:
			f := math.Float64frombits(v2.bits)
			return isIntegralFloat(f) && int64(f) == int64(v.bits)
		default:
			return false
		}
	case kindFloat:
		f1 := math.Float64frombits(v.bits)
		switch v2.kind {
		case kindInteger:
			return isIntegralFloat(f1) && int64(f1) == int64(v2.bits)
		case kindFloat:
			f2 := math.Float64frombits(v2.bits)
			return f1 == f2
		default:
			return false
		}
	case kindString:
		return v2.kind == kindString && v.s == v2.s
	case kindTable:
		return v2.kind == kindTable && v.table == v2.table
	default:
		return false
	}
}

func isIntegralFloat(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f) &&
		f >= -9223372036854775808.0 && f < 9223372036854775808.0
}

// IdenticalTo reports whether v and v2 hold the same representation,
// distinguishing Integer(1) from Float(1.0) and reporting true for two
// NaNs, unlike Equal.
func (v Value) IdenticalTo(v2 Value) bool {
	if v.kind != v2.kind {
		return false
	}
	switch v.kind {
	case kindNil, kindFalse, kindTrue:
		return true
	case kindString:
		return v.s == v2.s
	case kindTable:
		return v.table == v2.table
	default:
		return v.bits == v2.bits
	}
}

// hash returns a hash of v consistent with Equal: if v.Equal(v2), then
// v.hash(seed) == v2.hash(seed). This is the rule [Table] uses to key
// its entries, so an Integer and a Float naming the same number must
// fall in the same bucket: they are hashed as a number by value, not by
// kind. Tables hash by identity. NaN, which Equal never reports equal
// to anything (including itself), hashes by its raw bits; it can never
// collide usefully with another key, which is fine since it can never
// compare equal to one either.
func (v Value) hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	switch {
	case v.kind == kindInteger:
		h.WriteByte('n')
		writeUint64(&h, v.bits)
	case v.kind == kindFloat && isIntegralFloat(math.Float64frombits(v.bits)):
		h.WriteByte('n')
		writeUint64(&h, uint64(int64(math.Float64frombits(v.bits))))
	case v.kind == kindFloat:
		h.WriteByte(byte(v.kind))
		writeUint64(&h, v.bits)
	case v.kind == kindString:
		h.WriteByte(byte(v.kind))
		h.WriteString(v.s)
	case v.kind == kindTable:
		h.WriteByte(byte(v.kind))
		writeUint64(&h, uint64(uintptr(unsafe.Pointer(v.table))))
	default:
		h.WriteByte(byte(v.kind))
	}
	return h.Sum64()
}

func writeUint64(h *maphash.Hash, u uint64) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(u >> (i * 8))
	}
	h.Write(buf[:])
}
