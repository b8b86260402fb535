// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package numeric parses C numeric literals (as they appear in default
// values, enum members and designated initializers fed to the code
// emitter) into a tagged integer/float representation, mirroring the
// original cdd-c numeric literal parser (see original_source's
// src/tests/parse/test_numeric_parser.h for the literal forms exercised).
package numeric

import (
	"strconv"
	"strings"

	"ccdd.dev/ccdd/errcode"
)

// DecimalFloat identifies a C23 _Decimal32/64/128 suffix.
type DecimalFloat int

const (
	DecimalNone DecimalFloat = iota
	Decimal32
	Decimal64
	Decimal128
)

// Literal is the parsed, tagged form of a C numeric literal.
type Literal struct {
	IsFloat bool
	Base    int // 2, 8, 10, or 16; floats are always base 10 unless hex-float

	// Integer fields
	IsUnsigned bool
	IsLong     bool
	IsLongLong bool
	IntValue   int64
	UintValue  uint64

	// Float fields
	IsLongDouble bool
	Decimal      DecimalFloat
	FloatValue   float64

	// Raw is the literal exactly as given, preserved for re-emission.
	Raw string
}

// Parse parses a C numeric literal string. Returns an *errcode.Error
// wrapping errcode.EINVAL on empty input, an unrecognized suffix, or a
// malformed mantissa/exponent.
func Parse(s string) (Literal, error) {
	raw := s
	if s == "" {
		return Literal{}, errcode.Wrap(errcode.EINVAL, errcode.ErrEmptyLiteral)
	}

	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return Literal{}, errcode.Wrap(errcode.EINVAL, errcode.ErrEmptyLiteral)
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") && strings.ContainsAny(lower, "pP.") && !isPlainHexInt(lower) {
		return parseHexFloat(raw, s, neg)
	}
	if looksLikeFloat(lower) {
		return parseDecimalFloat(raw, s, neg)
	}
	return parseInteger(raw, s, neg)
}

func isPlainHexInt(lower string) bool {
	body := strings.TrimPrefix(lower, "0x")
	body = strings.TrimRight(body, "ulUL")
	if body == "" {
		return false
	}
	for _, c := range body {
		if !isHexDigit(byte(c)) {
			return false
		}
	}
	return true
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func looksLikeFloat(lower string) bool {
	if strings.HasSuffix(lower, "df") || strings.HasSuffix(lower, "dd") || strings.HasSuffix(lower, "dl") {
		return true
	}
	body := lower
	body = strings.TrimSuffix(body, "f")
	body = strings.TrimSuffix(body, "l")
	return strings.ContainsAny(body, ".") || (strings.ContainsAny(body, "e") && !strings.HasPrefix(body, "0x"))
}

func parseInteger(raw, s string, neg bool) (Literal, error) {
	lower := strings.ToLower(s)
	base := 10
	digits := lower
	switch {
	case strings.HasPrefix(lower, "0x"):
		base = 16
		digits = lower[2:]
	case strings.HasPrefix(lower, "0b"):
		base = 2
		digits = lower[2:]
	case strings.HasPrefix(lower, "0") && len(lower) > 1:
		base = 8
		digits = lower[1:]
	}

	var unsigned, isLong, isLongLong bool
	digits = trimIntSuffix(digits, &unsigned, &isLong, &isLongLong)
	if digits == "" {
		return Literal{}, errcode.Wrap(errcode.EINVAL, errcode.ErrMalformedMantissa)
	}
	for _, c := range digits {
		if !isHexDigit(byte(c)) {
			return Literal{}, errcode.Wrap(errcode.EINVAL, errcode.ErrUnknownSuffix)
		}
	}

	uv, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return Literal{}, errcode.Wrap(errcode.EINVAL, errcode.ErrMalformedMantissa)
	}

	lit := Literal{Base: base, IsUnsigned: unsigned, IsLong: isLong, IsLongLong: isLongLong, Raw: raw, UintValue: uv}
	iv := int64(uv)
	if neg {
		iv = -iv
	}
	lit.IntValue = iv
	return lit, nil
}

// trimIntSuffix strips trailing integer suffix letters (any order/case of
// u/U and l/L, with two l's meaning long long) and reports which were seen.
func trimIntSuffix(digits string, unsigned, isLong, isLongLong *bool) string {
	end := len(digits)
	lcount := 0
loop:
	for end > 0 {
		switch digits[end-1] {
		case 'u', 'U':
			*unsigned = true
			end--
		case 'l', 'L':
			lcount++
			end--
		default:
			break loop
		}
	}
	if lcount == 1 {
		*isLong = true
	} else if lcount >= 2 {
		*isLongLong = true
	}
	return digits[:end]
}

func parseDecimalFloat(raw, s string, neg bool) (Literal, error) {
	lower := strings.ToLower(s)
	decimal := DecimalNone
	body := lower
	isLongDouble := false
	isFloat32 := false

	switch {
	case strings.HasSuffix(lower, "df"):
		decimal = Decimal32
		body = strings.TrimSuffix(lower, "df")
	case strings.HasSuffix(lower, "dd"):
		decimal = Decimal64
		body = strings.TrimSuffix(lower, "dd")
	case strings.HasSuffix(lower, "dl"):
		decimal = Decimal128
		body = strings.TrimSuffix(lower, "dl")
	case strings.HasSuffix(lower, "f"):
		isFloat32 = true
		body = strings.TrimSuffix(lower, "f")
	case strings.HasSuffix(lower, "l"):
		isLongDouble = true
		body = strings.TrimSuffix(lower, "l")
	}

	if body == "" || !validDecimalMantissaExponent(body) {
		return Literal{}, errcode.Wrap(errcode.EINVAL, errcode.ErrMalformedMantissa)
	}

	fv, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return Literal{}, errcode.Wrap(errcode.EINVAL, errcode.ErrMalformedExponent)
	}
	if neg {
		fv = -fv
	}
	_ = isFloat32
	return Literal{IsFloat: true, Base: 10, IsLongDouble: isLongDouble, Decimal: decimal, FloatValue: fv, Raw: raw}, nil
}

func validDecimalMantissaExponent(body string) bool {
	if body == "" {
		return false
	}
	sawDigit, sawDot, sawExp := false, false, false
	i := 0
	for i < len(body) {
		c := body[i]
		switch {
		case c >= '0' && c <= '9':
			sawDigit = true
		case c == '.' && !sawDot && !sawExp:
			sawDot = true
		case (c == 'e') && !sawExp:
			sawExp = true
			if i+1 < len(body) && (body[i+1] == '+' || body[i+1] == '-') {
				i++
			}
		default:
			return false
		}
		i++
	}
	return sawDigit
}

func parseHexFloat(raw, s string, neg bool) (Literal, error) {
	lower := strings.ToLower(s)
	isLongDouble := strings.HasSuffix(lower, "l")
	isFloat32 := strings.HasSuffix(lower, "f")
	body := lower
	if isLongDouble {
		body = strings.TrimSuffix(body, "l")
	} else if isFloat32 {
		body = strings.TrimSuffix(body, "f")
	}
	if !strings.Contains(body, "p") {
		return Literal{}, errcode.Wrap(errcode.EINVAL, errcode.ErrMalformedExponent)
	}
	fv, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return Literal{}, errcode.Wrap(errcode.EINVAL, errcode.ErrMalformedMantissa)
	}
	if neg {
		fv = -fv
	}
	return Literal{IsFloat: true, Base: 16, IsLongDouble: isLongDouble, FloatValue: fv, Raw: raw}, nil
}
