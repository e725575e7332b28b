// Copyright 2026 The luadata Authors
// SPDX-License-Identifier: MIT

package lualex

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// NumeralKind distinguishes the two numeric variants a Lua 5.4 numeral can
// denote.
type NumeralKind int

const (
	// IntegerNumeral indicates the numeral denotes a signed 64-bit integer.
	IntegerNumeral NumeralKind = iota
	// FloatNumeral indicates the numeral denotes an IEEE-754 binary64 float.
	FloatNumeral
)

// ErrMalformedNumeral is returned (possibly wrapped) by [ParseNumeral] when
// raw does not match any of Lua 5.4's numeral productions.
var ErrMalformedNumeral = errors.New("malformed number")

// ParseNumeral classifies and converts raw — the undecorated numeral text as
// produced by the scanner's NumeralToken, with no leading sign — into
// either a 64-bit integer or a float64, following the priority order of
// Lua 5.4's lexical grammar:
//
//  1. hex float: 0[xX] hex-digits ['.' hex-digits] [pP] ['+'|'-'] digits
//     (the exponent is mandatory for this production to match)
//  2. hex integer: 0[xX] hex-digits, with neither '.' nor exponent;
//     accumulates as unsigned 64 bits and wraps, with no overflow error
//  3. decimal float: digits with a '.' and/or an [eE] exponent
//  4. decimal integer: digits; on overflow of signed 64 bits, the value is
//     coerced to a float by decimal-to-double rounding rather than erroring
func ParseNumeral(raw string) (kind NumeralKind, i int64, f float64, err error) {
	if rest, ok := cutHexPrefix(raw); ok {
		return parseHexNumeral(rest)
	}
	return parseDecimalNumeral(raw)
}

func cutHexPrefix(s string) (rest string, hex bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:], true
	}
	return s, false
}

func parseHexNumeral(s string) (kind NumeralKind, i int64, f float64, err error) {
	intPart, rest, _ := cutWhile(s, isHexDigit)
	fracPart := ""
	hasDot := strings.HasPrefix(rest, ".")
	if hasDot {
		fracPart, rest, _ = cutWhile(rest[1:], isHexDigit)
	}
	if intPart == "" && fracPart == "" {
		return 0, 0, 0, ErrMalformedNumeral
	}

	hasExponent := strings.HasPrefix(rest, "p") || strings.HasPrefix(rest, "P")
	if !hasExponent {
		if hasDot || rest != "" {
			// A hex radix point with no exponent matches neither the hex
			// float production (exponent is mandatory) nor the hex integer
			// production (no radix point allowed).
			return 0, 0, 0, ErrMalformedNumeral
		}
		return IntegerNumeral, hexIntegerValue(intPart), 0, nil
	}

	exp, err := parseExponent(rest[1:])
	if err != nil {
		return 0, 0, 0, err
	}
	return FloatNumeral, 0, hexFloatValue(intPart, fracPart, exp), nil
}

// hexIntegerValue accumulates digits as an unsigned 64-bit integer, wrapping
// silently on overflow, then reinterprets the bits as signed. An arbitrary
// number of leading hex digits is accepted; only the low 64 bits survive.
func hexIntegerValue(digits string) int64 {
	var u uint64
	for i := 0; i < len(digits); i++ {
		u = u*16 + uint64(hexDigitValue(digits[i]))
	}
	return int64(u)
}

// hexFloatValue computes Σ digit × 16^pos × 2^exp by accumulating the
// integral and fractional hex digits into a single mantissa (scaling the
// running exponent down by 4 for each fractional digit), then applying the
// binary exponent with [math.Ldexp].
func hexFloatValue(intPart, fracPart string, exp int) float64 {
	var mantissa float64
	for i := 0; i < len(intPart); i++ {
		mantissa = mantissa*16 + float64(hexDigitValue(intPart[i]))
	}
	fracExp := 0
	for i := 0; i < len(fracPart); i++ {
		mantissa = mantissa*16 + float64(hexDigitValue(fracPart[i]))
		fracExp -= 4
	}
	return math.Ldexp(mantissa, exp+fracExp)
}

func parseExponent(s string) (int, error) {
	neg := false
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if s == "" || !isAllDigits(s) {
		return 0, ErrMalformedNumeral
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrMalformedNumeral
	}
	if neg {
		n = -n
	}
	return n, nil
}

func parseDecimalNumeral(s string) (kind NumeralKind, i int64, f float64, err error) {
	if s == "" || !isDecimalNumeralShape(s) {
		return 0, 0, 0, ErrMalformedNumeral
	}
	if strings.ContainsAny(s, ".eE") {
		fv, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			return 0, 0, 0, ErrMalformedNumeral
		}
		return FloatNumeral, 0, fv, nil
	}
	if iv, perr := strconv.ParseInt(s, 10, 64); perr == nil {
		return IntegerNumeral, iv, 0, nil
	}
	// Absolute value exceeds the signed 64-bit range: coerce to float via
	// decimal-to-double rounding, matching Lua 5.4's behavior.
	fv, perr := strconv.ParseFloat(s, 64)
	if perr != nil {
		return 0, 0, 0, ErrMalformedNumeral
	}
	return FloatNumeral, 0, fv, nil
}

// isDecimalNumeralShape reports whether s matches one of:
//
//	digits '.' digits? exp?  |  '.' digits exp?  |  digits exp  |  digits
func isDecimalNumeralShape(s string) bool {
	intPart, rest, _ := cutWhile(s, isDigit)
	hasDot := strings.HasPrefix(rest, ".")
	fracPart := ""
	if hasDot {
		fracPart, rest, _ = cutWhile(rest[1:], isDigit)
	}
	if intPart == "" && fracPart == "" {
		return false
	}
	if rest == "" {
		return true
	}
	if rest[0] != 'e' && rest[0] != 'E' {
		return false
	}
	_, err := parseExponent(rest[1:])
	return err == nil
}

func cutWhile(s string, pred func(byte) bool) (prefix, rest string, n int) {
	i := 0
	for i < len(s) && pred(s[i]) {
		i++
	}
	return s[:i], s[i:], i
}

func isAllDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func hexDigitValue(c byte) byte {
	switch {
	case isDigit(c):
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
