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

package urlenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "unreserved passes through", in: "abc-._~XYZ019", want: "abc-._~XYZ019"},
		{name: "space encoded", in: "a b", want: "a%20b"},
		{name: "reserved encoded", in: "a/b?c", want: "a%2Fb%3Fc"},
		{name: "unicode normalized then encoded", in: "café", want: "caf%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestEncodeAllowReserved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "reserved passed through", in: "a/b?c", want: "a/b?c"},
		{name: "space still encoded", in: "a b", want: "a%20b"},
		{name: "existing percent-triple preserved", in: "a%2Fb", want: "a%2Fb"},
		{name: "bare percent re-encoded", in: "100%", want: "100%25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EncodeAllowReserved(tt.in))
		})
	}
}

func TestEncodeForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "space becomes plus", in: "a b", want: "a+b"},
		{name: "star unreserved", in: "a*b", want: "a*b"},
		{name: "tilde encoded in form set", in: "a~b", want: "a%7Eb"},
		{name: "reserved encoded", in: "a&b=c", want: "a%26b%3Dc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EncodeForm(tt.in))
		})
	}
}

func TestEncodeFormAllowReserved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "space becomes plus", in: "a b", want: "a+b"},
		{name: "ampersand encoded", in: "a&b", want: "a%26b"},
		{name: "equals encoded", in: "a=b", want: "a%3Db"},
		{name: "plus encoded", in: "a+b", want: "a%2Bb"},
		{name: "other reserved passes through", in: "a/b", want: "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EncodeFormAllowReserved(tt.in))
		})
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string", in: "x", want: "x"},
		{name: "bool true", in: true, want: "true"},
		{name: "bool false", in: false, want: "false"},
		{name: "float64", in: 1.5, want: "1.5"},
		{name: "int", in: 7, want: "7"},
		{name: "int64", in: int64(8), want: "8"},
		{name: "nil", in: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Stringify(tt.in))
		})
	}
}

func TestParams_Build(t *testing.T) {
	t.Parallel()

	t.Run("empty yields empty string", func(t *testing.T) {
		t.Parallel()
		p := New()
		assert.Equal(t, "", p.Build())
	})

	t.Run("encodes raw pairs in insertion order", func(t *testing.T) {
		t.Parallel()
		p := New()
		p.Add("a", "1")
		p.Add("b c", "2 3")
		assert.Equal(t, "?a=1&b%20c=2%203", p.Build())
	})

	t.Run("pre-encoded values pass through unchanged", func(t *testing.T) {
		t.Parallel()
		p := New()
		p.AddEncoded("list", "a,b,c")
		assert.Equal(t, "?list=a,b,c", p.Build())
	})
}

func TestParams_BuildForm(t *testing.T) {
	t.Parallel()

	p := New()
	p.Add("a", "1")
	p.Add("b", "x y")
	assert.Equal(t, "a=1&b=x+y", p.BuildForm())
	assert.Equal(t, 2, p.Len())
}

func TestJoin(t *testing.T) {
	t.Parallel()

	pairs := []KV{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}

	assert.Equal(t, "a,1,b,2", Join(pairs, ",", false))
	assert.Equal(t, "a,1,b,2", Join(pairs, ",", true))
}

func TestNormalizeHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ascii host unchanged", in: "api.example.com", want: "api.example.com"},
		{name: "templated host returned unchanged", in: "{env}.api.example.com", want: "{env}.api.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeHost(tt.in))
		})
	}
}
