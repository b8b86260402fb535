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

// Package urlenc implements the RFC 3986 percent-encoders and the OpenAPI
// parameter style/explode serialization matrix that the generated C client
// SDK's request builders rely on. It is a leaf utility: no other package in
// this module depends on it, and it depends on nothing but the stdlib,
// golang.org/x/text for Unicode normalization ahead of encoding, and
// golang.org/x/net/idna for host normalization (NormalizeHost).
package urlenc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

func isUnreserved(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' ||
		b == '-' || b == '.' || b == '_' || b == '~'
}

func isReserved(b byte) bool {
	switch b {
	case ':', '/', '?', '#', '[', ']', '@', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	default:
		return false
	}
}

func hexUpper(b byte) string {
	return fmt.Sprintf("%%%02X", b)
}

func normalize(s string) string {
	return norm.NFC.String(s)
}

// Encode percent-encodes s using the unreserved set ALPHA/DIGIT/-._~ and
// encodes space as %20. Always encodes reserved characters.
func Encode(s string) string {
	var b strings.Builder
	s = normalize(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteString(hexUpper(c))
	}
	return b.String()
}

// EncodeAllowReserved percent-encodes s but passes reserved characters
// through verbatim, and preserves any already-valid %HH triple in the
// input instead of re-encoding its leading '%'.
func EncodeAllowReserved(s string) string {
	var b strings.Builder
	s = normalize(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte('%')
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
			continue
		}
		if isUnreserved(c) || isReserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteString(hexUpper(c))
	}
	return b.String()
}

func isHex(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

// EncodeForm percent-encodes s for application/x-www-form-urlencoded,
// using ALPHA/DIGIT/-._* as the unreserved set and '+' for space.
func EncodeForm(s string) string {
	var b strings.Builder
	s = normalize(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			b.WriteByte('+')
			continue
		}
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' ||
			c == '-' || c == '.' || c == '_' || c == '*' {
			b.WriteByte(c)
			continue
		}
		b.WriteString(hexUpper(c))
	}
	return b.String()
}

// EncodeFormAllowReserved is like EncodeForm but only encodes '&', '=' and
// '+' (the characters that would otherwise be ambiguous with delimiters),
// passing every other reserved character through.
func EncodeFormAllowReserved(s string) string {
	var b strings.Builder
	s = normalize(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ':
			b.WriteByte('+')
		case '&', '=', '+':
			b.WriteString(hexUpper(c))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// KV is one key/value pair. Value must stringify the same way the style
// matrix expects: bool -> "true"/"false", numbers via strconv.
type KV struct {
	Key   string
	Value string
}

// entry is a stored UrlQueryParams value: raw or pre-encoded.
type entry struct {
	key       string
	value     string
	preEncoded bool
}

// Params is an ordered key-value container (the spec's UrlQueryParams).
type Params struct {
	entries []entry
}

// New returns an empty Params container.
func New() *Params { return &Params{} }

// Add stores a raw (not-yet-encoded) key/value pair, preserving insertion order.
func (p *Params) Add(key, value string) {
	p.entries = append(p.entries, entry{key: key, value: value})
}

// AddEncoded stores a key/value pair whose value is already percent-encoded
// and must not be re-encoded by Build (used e.g. for a comma-joined form
// value where the commas must survive as delimiters).
func (p *Params) AddEncoded(key, value string) {
	p.entries = append(p.entries, entry{key: key, value: value, preEncoded: true})
}

// Len reports the number of stored pairs.
func (p *Params) Len() int { return len(p.entries) }

// Build renders "?k1=v1&k2=v2", encoding every key and every non-pre-encoded
// value with Encode. An empty container renders "".
func (p *Params) Build() string {
	if len(p.entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('?')
	for i, e := range p.entries {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Encode(e.key))
		b.WriteByte('=')
		if e.preEncoded {
			b.WriteString(e.value)
		} else {
			b.WriteString(Encode(e.value))
		}
	}
	return b.String()
}

// BuildForm renders "k1=v1&k2=v2" (no leading '?') using EncodeForm.
func (p *Params) BuildForm() string {
	var b strings.Builder
	for i, e := range p.entries {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(EncodeForm(e.key))
		b.WriteByte('=')
		if e.preEncoded {
			b.WriteString(e.value)
		} else {
			b.WriteString(EncodeForm(e.value))
		}
	}
	return b.String()
}

// Join produces a single encoded string interleaving keys and stringified
// values with delim, e.g. "k1,v1,k2,v2" — the value shape of
// style=form,explode=false on objects.
func Join(pairs []KV, delim string, allowReserved bool) string {
	enc := Encode
	if allowReserved {
		enc = EncodeAllowReserved
	}
	parts := make([]string, 0, len(pairs)*2)
	for _, kv := range pairs {
		parts = append(parts, enc(kv.Key), enc(kv.Value))
	}
	return strings.Join(parts, delim)
}

// Stringify renders a Go value the way the style matrix expects to see it
// before encoding: bool -> true/false, float64 -> shortest round-trip form,
// everything else via fmt.Sprint.
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
