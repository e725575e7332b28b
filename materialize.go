// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package luadata

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/lua-data/luadata/sets"
)

// Materializable is implemented by a destination type that knows how to
// build itself from a Value. The materializer never does this through
// reflection over Go struct tags; instead a destination describes, by
// which [Decoder] capability methods it calls, which of the mapping
// rules of §4.5 it expects, and the Decoder dispatches on the source
// Value's variant, erroring if the destination calls a capability the
// Value does not support.
type Materializable interface {
	MaterializeLua(dec *Decoder, v Value) error
}

// Decode parses src and materializes the result into dst, which must
// implement [Materializable] or be one of the built-in adapters
// *Value, *map[string]Value, or *[]Value.
func Decode(src []byte, opts Options, dst any) error {
	v, err := Parse(src, opts)
	if err != nil {
		return err
	}
	dec := &Decoder{opts: opts}
	return dec.decodeInto(v, dst)
}

// DecodeAs parses src and materializes the result into a new value of
// type T, which must implement [Materializable] on its pointer receiver
// or be one of the built-in adapter types.
func DecodeAs[T any](src []byte, opts Options) (T, error) {
	var zero T
	if err := Decode(src, opts, &zero); err != nil {
		var empty T
		return empty, err
	}
	return zero, nil
}

func (dec *Decoder) decodeInto(v Value, dst any) error {
	switch d := dst.(type) {
	case Materializable:
		return d.MaterializeLua(dec, v)
	case *Value:
		*d = v
		return nil
	case *map[string]Value:
		t, ok := v.Table()
		if !ok {
			return dec.typeError(v, "table")
		}
		m := make(map[string]Value, t.Len())
		for k, val := range t.All() {
			s, ok := k.String()
			if !ok {
				return dec.errorf("map key %s is not a string", k.GoString())
			}
			m[s] = val
		}
		*d = m
		return nil
	case *[]Value:
		t, ok := v.Table()
		if !ok {
			return dec.typeError(v, "table")
		}
		seq := t.Seq()
		if seq == nil && t.Len() > 0 {
			return dec.errorf("table is not a contiguous sequence")
		}
		*d = seq
		return nil
	default:
		return dec.errorf("destination type does not implement Materializable")
	}
}

// Decoder drives a single [Decode] call. It tracks the path (field
// names and sequence indices, root first) to the Value currently being
// materialized, for error messages and for [Options.Trace].
type Decoder struct {
	opts Options
	path []string
}

func (dec *Decoder) push(name string) {
	dec.path = append(dec.path, name)
}

func (dec *Decoder) pop() {
	dec.path = dec.path[:len(dec.path)-1]
}

func (dec *Decoder) pathCopy() []string {
	return append([]string(nil), dec.path...)
}

func (dec *Decoder) errorf(format string, args ...any) error {
	return newMaterializationError(dec.pathCopy(), format, args...)
}

func (dec *Decoder) typeError(v Value, want string) error {
	return dec.errorf("expected %s, got %s", want, kindName(v))
}

func kindName(v Value) string {
	switch {
	case v.IsNil():
		return "nil"
	case v.IsBool():
		return "bool"
	case v.IsInteger():
		return "integer"
	case v.IsFloat():
		return "float"
	case v.IsString():
		return "string"
	case v.IsTable():
		return "table"
	default:
		return "<invalid>"
	}
}

func (dec *Decoder) trace(v Value, kind string) {
	if dec.opts.Trace != nil {
		dec.opts.Trace(TraceEvent{Path: dec.pathCopy(), Value: v, Kind: kind})
	}
}

// Bool implements the "bool" capability: the destination expects v to
// be a Bool.
func (dec *Decoder) Bool(v Value) (bool, error) {
	dec.trace(v, "bool")
	b, ok := v.Bool()
	if !ok {
		return false, dec.typeError(v, "bool")
	}
	return b, nil
}

// Int implements the signed-integer capability for a destination of
// the given bit width (8, 16, 32, or 64). An Integer is accepted
// directly if it fits; a Float is accepted if it is finite, integral,
// and fits.
func (dec *Decoder) Int(v Value, bitSize int) (int64, error) {
	dec.trace(v, "int")
	lo, hi := signedRange(bitSize)
	switch {
	case v.IsInteger():
		i, _ := v.Int64()
		if i < lo || i > hi {
			return 0, dec.errorf("integer %d out of range for int%d", i, bitSize)
		}
		return i, nil
	case v.IsFloat():
		f, _ := v.Float64()
		if !isIntegralFloat(f) {
			return 0, dec.errorf("float %v is not integral", f)
		}
		i := int64(f)
		if i < lo || i > hi || float64(i) != f {
			return 0, dec.errorf("float %v out of range for int%d", f, bitSize)
		}
		return i, nil
	default:
		return 0, dec.typeError(v, "integer or float")
	}
}

// Uint implements the unsigned-integer capability, analogous to [Decoder.Int].
func (dec *Decoder) Uint(v Value, bitSize int) (uint64, error) {
	dec.trace(v, "uint")
	hi := unsignedMax(bitSize)
	switch {
	case v.IsInteger():
		i, _ := v.Int64()
		if i < 0 || uint64(i) > hi {
			return 0, dec.errorf("integer %d out of range for uint%d", i, bitSize)
		}
		return uint64(i), nil
	case v.IsFloat():
		f, _ := v.Float64()
		if !isIntegralFloat(f) || f < 0 {
			return 0, dec.errorf("float %v is not a non-negative integral value", f)
		}
		u := uint64(f)
		if u > hi || float64(u) != f {
			return 0, dec.errorf("float %v out of range for uint%d", f, bitSize)
		}
		return u, nil
	default:
		return 0, dec.typeError(v, "integer or float")
	}
}

// Float implements the float capability for a destination of bit width
// 32 or 64. Both Integer and Float sources widen to float64; narrowing
// to float32 is permitted to lose precision, not an error.
func (dec *Decoder) Float(v Value, bitSize int) (float64, error) {
	dec.trace(v, "float")
	f, ok := v.Float64()
	if !ok {
		return 0, dec.typeError(v, "integer or float")
	}
	if bitSize == 32 {
		return float64(float32(f)), nil
	}
	return f, nil
}

// Str implements the UTF-8 string capability: v must be a String whose
// bytes are valid UTF-8.
func (dec *Decoder) Str(v Value) (string, error) {
	dec.trace(v, "string")
	s, ok := v.String()
	if !ok {
		return "", dec.typeError(v, "string")
	}
	if !utf8.ValidString(s) {
		return "", dec.errorf("string is not valid UTF-8")
	}
	return s, nil
}

// Bytes implements the raw byte-string capability: v must be a String;
// its bytes are returned without a UTF-8 check.
func (dec *Decoder) Bytes(v Value) ([]byte, error) {
	dec.trace(v, "bytes")
	s, ok := v.String()
	if !ok {
		return nil, dec.typeError(v, "string")
	}
	return []byte(s), nil
}

// Option implements the "optional T" capability: it reports whether v
// is present (non-Nil). The caller invokes the appropriate capability
// for T only when present is true.
func (dec *Decoder) Option(v Value) (present bool) {
	dec.trace(v, "option")
	return !v.IsNil()
}

// Seq implements the "sequence of T" capability: v must be a Table
// whose keys are exactly {1, ..., n}. elem is called once per element
// in ascending key order with the 0-based index and element Value.
func (dec *Decoder) Seq(v Value, elem func(i int, ev Value) error) error {
	dec.trace(v, "seq")
	t, ok := v.Table()
	if !ok {
		return dec.typeError(v, "table")
	}
	seq := t.Seq()
	if seq == nil && t.Len() > 0 {
		return dec.errorf("table is not a contiguous sequence")
	}
	for i, ev := range seq {
		dec.push(strconv.Itoa(i + 1))
		err := elem(i, ev)
		dec.pop()
		if err != nil {
			return err
		}
	}
	return nil
}

// Map implements the "map K->V" capability: v must be a Table. entry is
// called once per pair in the table's insertion order.
func (dec *Decoder) Map(v Value, entry func(k, mv Value) error) error {
	dec.trace(v, "map")
	t, ok := v.Table()
	if !ok {
		return dec.typeError(v, "table")
	}
	for k, mv := range t.All() {
		dec.push(k.GoString())
		err := entry(k, mv)
		dec.pop()
		if err != nil {
			return err
		}
	}
	return nil
}

// RecordField describes one field of a record destination for
// [Decoder.Record].
type RecordField struct {
	// Name is the Lua table key the field is read from.
	Name string
	// Optional marks the field as not required to be present.
	Optional bool
	// Set is called with the field's Value when present.
	Set func(v Value) error
}

// Record implements the "record with fields" capability: v must be a
// Table whose string keys match the given fields. Unknown keys are an
// error unless opts.OnUnknownField is IgnoreUnknownField; missing
// non-optional fields are always an error.
func (dec *Decoder) Record(v Value, fields []RecordField) error {
	dec.trace(v, "record")
	t, ok := v.Table()
	if !ok {
		return dec.typeError(v, "table")
	}

	byName := make(map[string]*RecordField, len(fields))
	seen := make(sets.Set[string], len(fields))
	for i := range fields {
		byName[fields[i].Name] = &fields[i]
	}

	for k, fv := range t.All() {
		name, ok := k.String()
		if !ok {
			return dec.errorf("record key %s is not a string", k.GoString())
		}
		f, known := byName[name]
		if !known {
			if dec.opts.OnUnknownField == IgnoreUnknownField {
				continue
			}
			return dec.errorf("unknown field %q", name)
		}
		seen.Add(name)
		dec.push(name)
		err := f.Set(fv)
		dec.pop()
		if err != nil {
			return err
		}
	}

	missing := sets.NewSorted[string]()
	for _, f := range fields {
		if !f.Optional && !seen.Has(f.Name) {
			missing.Add(f.Name)
		}
	}
	if missing.Len() > 0 {
		return dec.errorf("missing required field %q", missing.At(0))
	}
	return nil
}

// Enum implements the "enum/tagged variant" capability. A String v
// selects the unit variant by that name; a Table with exactly one
// entry selects the complex variant named by that entry's key, with
// the entry's value as the variant's payload.
func (dec *Decoder) Enum(v Value, unit func(name string) error, tagged func(name string, payload Value) error) error {
	dec.trace(v, "enum")
	if s, ok := v.String(); ok {
		if !utf8.ValidString(s) {
			return dec.errorf("enum tag is not valid UTF-8")
		}
		return unit(s)
	}
	t, ok := v.Table()
	if !ok {
		return dec.typeError(v, "string or single-entry table")
	}
	if t.Len() != 1 {
		return dec.errorf("expected a single-entry table naming the variant, got %d entries", t.Len())
	}
	for k, payload := range t.All() {
		name, ok := k.String()
		if !ok {
			return dec.errorf("variant tag %s is not a string", k.GoString())
		}
		return tagged(name, payload)
	}
	panic("unreachable")
}

func signedRange(bitSize int) (lo, hi int64) {
	switch bitSize {
	case 8:
		return math.MinInt8, math.MaxInt8
	case 16:
		return math.MinInt16, math.MaxInt16
	case 32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func unsignedMax(bitSize int) uint64 {
	switch bitSize {
	case 8:
		return math.MaxUint8
	case 16:
		return math.MaxUint16
	case 32:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}
