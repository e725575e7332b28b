// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package luadata

import (
	"testing"
)

type point struct {
	X, Y int32
	Name string
	Tag  *string
}

func (p *point) MaterializeLua(dec *Decoder, v Value) error {
	return dec.Record(v, []RecordField{
		{Name: "x", Set: func(fv Value) error {
			i, err := dec.Int(fv, 32)
			p.X = int32(i)
			return err
		}},
		{Name: "y", Set: func(fv Value) error {
			i, err := dec.Int(fv, 32)
			p.Y = int32(i)
			return err
		}},
		{Name: "name", Set: func(fv Value) error {
			s, err := dec.Str(fv)
			p.Name = s
			return err
		}},
		{Name: "tag", Optional: true, Set: func(fv Value) error {
			if !dec.Option(fv) {
				return nil
			}
			s, err := dec.Str(fv)
			if err != nil {
				return err
			}
			p.Tag = &s
			return nil
		}},
	})
}

func TestDecodeRecord(t *testing.T) {
	src := `{x = 3, y = -4, name = "origin"}`
	var p point
	if err := Decode([]byte(src), Options{Form: ExpressionForm, MaxDepth: 8}, &p); err != nil {
		t.Fatal(err)
	}
	if p.X != 3 || p.Y != -4 || p.Name != "origin" || p.Tag != nil {
		t.Errorf("got %+v", p)
	}
}

func TestDecodeRecordMissingField(t *testing.T) {
	src := `{x = 3}`
	var p point
	err := Decode([]byte(src), Options{Form: ExpressionForm, MaxDepth: 8}, &p)
	lerr, ok := err.(*Error)
	if !ok || lerr.Kind != MaterializationError {
		t.Fatalf("error = %v; want MaterializationError", err)
	}
}

func TestDecodeRecordUnknownField(t *testing.T) {
	src := `{x = 1, y = 2, name = "n", oops = true}`
	var p point
	err := Decode([]byte(src), Options{Form: ExpressionForm, MaxDepth: 8}, &p)
	if err == nil {
		t.Fatal("expected an error for an unknown field")
	}

	var p2 point
	err = Decode([]byte(src), Options{Form: ExpressionForm, MaxDepth: 8, OnUnknownField: IgnoreUnknownField}, &p2)
	if err != nil {
		t.Fatalf("with IgnoreUnknownField: %v", err)
	}
}

func TestDecodeValuePassthrough(t *testing.T) {
	var v Value
	if err := Decode([]byte(`42`), Options{Form: ExpressionForm}, &v); err != nil {
		t.Fatal(err)
	}
	if i, ok := v.Int64(); !ok || i != 42 {
		t.Errorf("got %s; want Integer(42)", v.GoString())
	}
}

func TestDecodeMapAdapter(t *testing.T) {
	var m map[string]Value
	src := `{a = 1, b = "two"}`
	if err := Decode([]byte(src), Options{Form: ExpressionForm, MaxDepth: 8}, &m); err != nil {
		t.Fatal(err)
	}
	if len(m) != 2 {
		t.Fatalf("len(m) = %d; want 2", len(m))
	}
	if i, ok := m["a"].Int64(); !ok || i != 1 {
		t.Errorf("m[a] = %s; want Integer(1)", m["a"].GoString())
	}
}

func TestDecodeSeqAdapter(t *testing.T) {
	var s []Value
	if err := Decode([]byte(`{10, 20, 30}`), Options{Form: ExpressionForm, MaxDepth: 8}, &s); err != nil {
		t.Fatal(err)
	}
	if len(s) != 3 {
		t.Fatalf("len(s) = %d; want 3", len(s))
	}
	if i, _ := s[1].Int64(); i != 20 {
		t.Errorf("s[1] = %s; want Integer(20)", s[1].GoString())
	}
}

type shape struct {
	kind    string
	payload float64
}

func (s *shape) MaterializeLua(dec *Decoder, v Value) error {
	return dec.Enum(v,
		func(name string) error {
			s.kind = name
			return nil
		},
		func(name string, payload Value) error {
			s.kind = name
			f, err := dec.Float(payload, 64)
			s.payload = f
			return err
		},
	)
}

func TestDecodeEnum(t *testing.T) {
	var s1 shape
	if err := Decode([]byte(`"circle"`), Options{Form: ExpressionForm}, &s1); err != nil {
		t.Fatal(err)
	}
	if s1.kind != "circle" {
		t.Errorf("kind = %q; want circle", s1.kind)
	}

	var s2 shape
	if err := Decode([]byte(`{radius = 2.5}`), Options{Form: ExpressionForm, MaxDepth: 8}, &s2); err != nil {
		t.Fatal(err)
	}
	if s2.kind != "radius" || s2.payload != 2.5 {
		t.Errorf("got %+v; want {radius 2.5}", s2)
	}
}

func TestDecodeIntRange(t *testing.T) {
	type holder struct{ v int8 }
	var h holder
	dst := materializeFunc(func(dec *Decoder, v Value) error {
		i, err := dec.Int(v, 8)
		h.v = int8(i)
		return err
	})
	if err := Decode([]byte(`127`), Options{Form: ExpressionForm}, &dst); err != nil {
		t.Fatal(err)
	}
	if h.v != 127 {
		t.Errorf("v = %d; want 127", h.v)
	}
	if err := Decode([]byte(`128`), Options{Form: ExpressionForm}, &dst); err == nil {
		t.Error("Decode(128) into int8 succeeded; want a range error")
	}
}

type materializeFunc func(dec *Decoder, v Value) error

func (f materializeFunc) MaterializeLua(dec *Decoder, v Value) error { return f(dec, v) }
