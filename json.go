// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package luadata

import (
	"bytes"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/go-json-experiment/json/jsontext"
)

// ToJSON converts v to a JSON value following §4.6's lossy mapping:
// Nil becomes null, tables with keys exactly {1,...,n} become arrays,
// tables whose keys are all strings become objects, and any other
// table shape, any non-finite Float, or any non-UTF-8 String is an
// error.
func ToJSON(v Value) (jsontext.Value, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := writeJSON(enc, v, nil); err != nil {
		return nil, err
	}
	// The encoder ends a top-level value with a newline; the returned
	// value carries no trailing whitespace.
	return jsontext.Value(bytes.Clone(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))), nil
}

func writeJSON(enc *jsontext.Encoder, v Value, path []string) error {
	switch {
	case v.IsNil():
		return enc.WriteToken(jsontext.Null)
	case v.IsBool():
		b, _ := v.Bool()
		if b {
			return enc.WriteToken(jsontext.True)
		}
		return enc.WriteToken(jsontext.False)
	case v.IsInteger():
		i, _ := v.Int64()
		return enc.WriteToken(jsontext.Int(i))
	case v.IsFloat():
		f, _ := v.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return newMaterializationError(path, "float %v has no JSON representation", f)
		}
		return enc.WriteToken(jsontext.Float(f))
	case v.IsString():
		s, _ := v.String()
		if !isValidUTF8(s) {
			return &NonUTF8StringError{Path: append([]string(nil), path...)}
		}
		return enc.WriteToken(jsontext.String(s))
	case v.IsTable():
		return writeJSONTable(enc, v, path)
	default:
		return newMaterializationError(path, "value has no JSON representation")
	}
}

func writeJSONTable(enc *jsontext.Encoder, v Value, path []string) error {
	t, _ := v.Table()
	if _, ok := t.IsSequence(); ok {
		seq := t.Seq()
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for i, ev := range seq {
			if err := writeJSON(enc, ev, append(path, strconv.Itoa(i+1))); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	}

	for k := range t.All() {
		if !k.IsString() {
			return newMaterializationError(path, "table has non-string, non-sequence keys; cannot convert to JSON")
		}
	}
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for k, ev := range t.All() {
		name, _ := k.String()
		if err := enc.WriteToken(jsontext.String(name)); err != nil {
			return err
		}
		if err := writeJSON(enc, ev, append(path, name)); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

// FromJSON converts a JSON value to a LuaValue following §4.6's total
// mapping: null becomes Nil, arrays become tables with implicit
// integer keys, objects become tables with string keys in source
// order, and numbers that are integral and fit a signed 64-bit integer
// become Integer, otherwise Float.
func FromJSON(j jsontext.Value) Value {
	dec := jsontext.NewDecoder(bytes.NewReader(j))
	v, err := readJSON(dec)
	if err != nil {
		// FromJSON is documented total over any well-formed jsontext.Value;
		// a decode error here means the caller handed us malformed JSON.
		return Nil
	}
	return v
}

func readJSON(dec *jsontext.Decoder) (Value, error) {
	if dec.PeekKind() == '0' {
		return readJSONNumber(dec)
	}
	tok, err := dec.ReadToken()
	if err != nil {
		return Value{}, err
	}
	switch tok.Kind() {
	case 'n':
		return Nil, nil
	case 'f':
		return BoolValue(false), nil
	case 't':
		return BoolValue(true), nil
	case '"':
		return StringValue(tok.String()), nil
	case '[':
		t := NewTable()
		i := int64(1)
		for dec.PeekKind() != ']' {
			ev, err := readJSON(dec)
			if err != nil {
				return Value{}, err
			}
			t.Set(IntegerValue(i), ev)
			i++
		}
		if _, err := dec.ReadToken(); err != nil { // ']'
			return Value{}, err
		}
		return TableValue(t), nil
	case '{':
		t := NewTable()
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return Value{}, err
			}
			ev, err := readJSON(dec)
			if err != nil {
				return Value{}, err
			}
			t.Set(StringValue(keyTok.String()), ev)
		}
		if _, err := dec.ReadToken(); err != nil { // '}'
			return Value{}, err
		}
		return TableValue(t), nil
	default:
		return Value{}, newSyntaxError(-1, "unexpected JSON token kind %q", tok.Kind())
	}
}

// readJSONNumber decodes a JSON number without ever widening an exact
// integer literal to float64 first: large integers (beyond 2^53) would
// lose precision in that conversion before any integral check could run.
// A literal that parses as a base-10 int64 is taken as exact; anything
// else (a fraction, an exponent, or an integer beyond the int64 range) is
// parsed as a float64, which becomes an Integer only if it is integral
// and converts back to the same int64.
func readJSONNumber(dec *jsontext.Decoder) (Value, error) {
	raw, err := dec.ReadValue()
	if err != nil {
		return Value{}, err
	}
	s := string(raw)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntegerValue(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, err
	}
	if i := int64(f); float64(i) == f {
		return IntegerValue(i), nil
	}
	return FloatValue(f), nil
}

func isValidUTF8(s string) bool {
	return utf8.ValidString(s)
}
