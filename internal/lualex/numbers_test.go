// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package lualex

import "testing"

func TestParseNumeral(t *testing.T) {
	tests := []struct {
		s        string
		kind     NumeralKind
		wantInt  int64
		wantFloat float64
		err      bool
	}{
		{s: "0", kind: IntegerNumeral, wantInt: 0},
		{s: "1", kind: IntegerNumeral, wantInt: 1},
		{s: "345", kind: IntegerNumeral, wantInt: 345},
		{s: "1000000", kind: IntegerNumeral, wantInt: 1000000},
		{s: "0xff", kind: IntegerNumeral, wantInt: 0xff},
		{s: "0xBEBADA", kind: IntegerNumeral, wantInt: 0xBEBADA},
		{s: "0x7fffffffffffffff", kind: IntegerNumeral, wantInt: 0x7fffffffffffffff},
		// Hex integer overflow wraps around rather than erroring.
		{s: "0x8000000000000000", kind: IntegerNumeral, wantInt: -0x8000000000000000},
		{s: "0xffffffffffffffff", kind: IntegerNumeral, wantInt: -1},

		{s: "0.0", kind: FloatNumeral, wantFloat: 0},
		{s: "1.0", kind: FloatNumeral, wantFloat: 1},
		{s: "3.1416", kind: FloatNumeral, wantFloat: 3.1416},
		{s: "314.16e-2", kind: FloatNumeral, wantFloat: 314.16e-2},
		{s: "0.31416E1", kind: FloatNumeral, wantFloat: 0.31416e1},
		{s: "34e1", kind: FloatNumeral, wantFloat: 34e1},

		// Hex floats require the exponent; without it, a radix point is
		// malformed rather than silently treated as a float.
		{s: "0x0.1E", err: true},
		{s: "0xA23p-4", kind: FloatNumeral, wantFloat: 0xa23p-4},
		{s: "0X1.921FB54442D18P+1", kind: FloatNumeral, wantFloat: 0x1.921FB54442D18p1},
		{s: "0x1.fp10", kind: FloatNumeral, wantFloat: 1984},
		{s: "0x1p0", kind: FloatNumeral, wantFloat: 1},

		// Decimal integer overflow coerces to float instead of erroring.
		{s: "99999999999999999999", kind: FloatNumeral, wantFloat: 1e20},

		{s: "1_000_000", err: true},
		{s: "inf", err: true},
		{s: "nan", err: true},
		{s: "", err: true},
		{s: "0x", err: true},
		{s: "1.2.3", err: true},
		{s: "1e", err: true},
	}

	for _, test := range tests {
		kind, i, f, err := ParseNumeral(test.s)
		if test.err {
			if err == nil {
				t.Errorf("ParseNumeral(%q) = %v, %d, %g, <nil>; want error", test.s, kind, i, f)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseNumeral(%q) returned unexpected error: %v", test.s, err)
			continue
		}
		if kind != test.kind {
			t.Errorf("ParseNumeral(%q) kind = %v; want %v", test.s, kind, test.kind)
			continue
		}
		switch kind {
		case IntegerNumeral:
			if i != test.wantInt {
				t.Errorf("ParseNumeral(%q) = %d; want %d", test.s, i, test.wantInt)
			}
		case FloatNumeral:
			if f != test.wantFloat {
				t.Errorf("ParseNumeral(%q) = %g; want %g", test.s, f, test.wantFloat)
			}
		}
	}
}
