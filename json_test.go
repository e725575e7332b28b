// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package luadata

import (
	"math"
	"testing"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/go-cmp/cmp"
)

func TestToJSON(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"nil", Nil, "null"},
		{"true", BoolValue(true), "true"},
		{"integer", IntegerValue(42), "42"},
		{"float", FloatValue(1.5), "1.5"},
		{"string", StringValue("hi"), `"hi"`},
		{"empty-table", TableValue(NewTable()), "[]"},
		{"sequence", tableOf(pairOf(IntegerValue(1), IntegerValue(1)), pairOf(IntegerValue(2), IntegerValue(2))), "[1,2]"},
		{"object", tableOf(pairOf(StringValue("a"), IntegerValue(1))), `{"a":1}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ToJSON(test.v)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("ToJSON(%s) (-want +got):\n%s", test.v.GoString(), diff)
			}
		})
	}
}

func TestToJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
	}{
		{"nan", FloatValue(math.NaN())},
		{"inf", FloatValue(math.Inf(1))},
		{"mixed-table", tableOf(pairOf(IntegerValue(1), IntegerValue(1)), pairOf(StringValue("x"), IntegerValue(2)))},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ToJSON(test.v); err == nil {
				t.Errorf("ToJSON(%s) succeeded; want an error", test.v.GoString())
			}
		})
	}
}

func TestFromJSON(t *testing.T) {
	tests := []struct {
		json string
		want Value
	}{
		{"null", Nil},
		{"true", BoolValue(true)},
		{"42", IntegerValue(42)},
		{"1.5", FloatValue(1.5)},
		{`"hi"`, StringValue("hi")},
		{"[1,2,3]", tableOf(pairOf(IntegerValue(1), IntegerValue(1)), pairOf(IntegerValue(2), IntegerValue(2)), pairOf(IntegerValue(3), IntegerValue(3)))},
		{`{"a":1}`, tableOf(pairOf(StringValue("a"), IntegerValue(1)))},
		// 9007199254740993 is 2^53 + 1, one past the largest integer a
		// float64 can represent exactly: decoding through Float() first
		// would silently round this down to 9007199254740992.
		{"9007199254740993", IntegerValue(9007199254740993)},
	}
	for _, test := range tests {
		got := FromJSON(jsontext.Value(test.json))
		if !valuesDeepEqual(got, test.want) {
			t.Errorf("FromJSON(%s) = %s; want %s", test.json, got.GoString(), test.want.GoString())
		}
	}
}

func TestFromJSONLargeIntegerExact(t *testing.T) {
	got := FromJSON(jsontext.Value("9007199254740993"))
	i, ok := got.Int64()
	if !ok || i != 9007199254740993 {
		t.Errorf("FromJSON(9007199254740993) = %s; want exact Integer(9007199254740993)", got.GoString())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	v := tableOf(
		pairOf(StringValue("name"), StringValue("widget")),
		pairOf(StringValue("count"), IntegerValue(3)),
	)
	j, err := ToJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	back := FromJSON(j)
	if !valuesDeepEqual(v, back) {
		t.Errorf("round trip: got %s; want %s", back.GoString(), v.GoString())
	}
}
