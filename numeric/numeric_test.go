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

package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccdd.dev/ccdd/errcode"
)

func TestParse_Integers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         string
		wantBase   int
		wantInt    int64
		wantUns    bool
		wantLong   bool
		wantLLong  bool
	}{
		{name: "decimal", in: "42", wantBase: 10, wantInt: 42},
		{name: "negative decimal", in: "-42", wantBase: 10, wantInt: -42},
		{name: "explicit positive", in: "+7", wantBase: 10, wantInt: 7},
		{name: "hex", in: "0x2A", wantBase: 16, wantInt: 42},
		{name: "binary", in: "0b101010", wantBase: 2, wantInt: 42},
		{name: "octal", in: "052", wantBase: 8, wantInt: 42},
		{name: "unsigned suffix", in: "42u", wantBase: 10, wantInt: 42, wantUns: true},
		{name: "long suffix", in: "42L", wantBase: 10, wantInt: 42, wantLong: true},
		{name: "long long suffix", in: "42ll", wantBase: 10, wantInt: 42, wantLLong: true},
		{name: "unsigned long long mixed case", in: "42ULL", wantBase: 10, wantInt: 42, wantUns: true, wantLLong: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lit, err := Parse(tt.in)
			require.NoError(t, err)
			assert.False(t, lit.IsFloat)
			assert.Equal(t, tt.wantBase, lit.Base)
			assert.Equal(t, tt.wantInt, lit.IntValue)
			assert.Equal(t, tt.wantUns, lit.IsUnsigned)
			assert.Equal(t, tt.wantLong, lit.IsLong)
			assert.Equal(t, tt.wantLLong, lit.IsLongLong)
			assert.Equal(t, tt.in, lit.Raw)
		})
	}
}

func TestParse_Floats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		in           string
		wantBase     int
		wantValue    float64
		wantLongDbl  bool
		wantDecimal  DecimalFloat
	}{
		{name: "plain decimal float", in: "3.14", wantBase: 10, wantValue: 3.14},
		{name: "negative decimal float", in: "-3.14", wantBase: 10, wantValue: -3.14},
		{name: "exponent form", in: "1e3", wantBase: 10, wantValue: 1000},
		{name: "float suffix", in: "1.5f", wantBase: 10, wantValue: 1.5},
		{name: "long double suffix", in: "1.5l", wantBase: 10, wantValue: 1.5, wantLongDbl: true},
		{name: "decimal32 suffix", in: "1.5df", wantBase: 10, wantValue: 1.5, wantDecimal: Decimal32},
		{name: "decimal64 suffix", in: "1.5dd", wantBase: 10, wantValue: 1.5, wantDecimal: Decimal64},
		{name: "decimal128 suffix", in: "1.5dl", wantBase: 10, wantValue: 1.5, wantDecimal: Decimal128},
		{name: "hex float", in: "0x1.8p3", wantBase: 16, wantValue: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lit, err := Parse(tt.in)
			require.NoError(t, err)
			assert.True(t, lit.IsFloat)
			assert.Equal(t, tt.wantBase, lit.Base)
			assert.InDelta(t, tt.wantValue, lit.FloatValue, 1e-9)
			assert.Equal(t, tt.wantLongDbl, lit.IsLongDouble)
			assert.Equal(t, tt.wantDecimal, lit.Decimal)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "empty literal", in: "", want: errcode.ErrEmptyLiteral},
		{name: "bare sign", in: "-", want: errcode.ErrEmptyLiteral},
		{name: "bad hex digit", in: "0xg", want: errcode.ErrUnknownSuffix},
		{name: "hex float missing exponent", in: "0x1.8", want: errcode.ErrMalformedExponent},
		{name: "malformed float mantissa", in: ".df", want: errcode.ErrMalformedMantissa},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.in)
			require.Error(t, err)
			assert.Equal(t, errcode.EINVAL, errcode.From(err))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
