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

package model

import "encoding/json"

// AnyKind tags the alternative held by an Any value.
type AnyKind uint8

const (
	AnyNull AnyKind = iota
	AnyBool
	AnyNumber
	AnyString
	AnyFragment // opaque JSON object/array, kept as a raw message
)

// Any is a tagged-union value for JSON Schema positions that accept any
// instance type: default, const, enum members, example values and x-
// extension payloads. It is deliberately not `any`/`interface{}` so that
// the writer can round-trip the exact literal kind (e.g. an integer default
// of 0 versus the JSON `false`) without reflection on decode.
type Any struct {
	Kind     AnyKind
	Bool     bool
	Number   float64
	Str      string
	Fragment json.RawMessage
}

// NullAny returns the JSON null value.
func NullAny() Any { return Any{Kind: AnyNull} }

// BoolAny wraps a boolean.
func BoolAny(b bool) Any { return Any{Kind: AnyBool, Bool: b} }

// NumberAny wraps a number.
func NumberAny(n float64) Any { return Any{Kind: AnyNumber, Number: n} }

// StringAny wraps a string.
func StringAny(s string) Any { return Any{Kind: AnyString, Str: s} }

// FragmentAny wraps an arbitrary JSON object or array verbatim.
func FragmentAny(raw json.RawMessage) Any { return Any{Kind: AnyFragment, Fragment: raw} }

// MarshalJSON implements json.Marshaler.
func (a Any) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnyNull:
		return []byte("null"), nil
	case AnyBool:
		return json.Marshal(a.Bool)
	case AnyNumber:
		return json.Marshal(a.Number)
	case AnyString:
		return json.Marshal(a.Str)
	case AnyFragment:
		if len(a.Fragment) == 0 {
			return []byte("null"), nil
		}
		return a.Fragment, nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler, classifying the incoming
// literal into the narrowest Any alternative.
func (a *Any) UnmarshalJSON(data []byte) error {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch v := probe.(type) {
	case nil:
		*a = NullAny()
	case bool:
		*a = BoolAny(v)
	case float64:
		*a = NumberAny(v)
	case string:
		*a = StringAny(v)
	default:
		raw := make(json.RawMessage, len(data))
		copy(raw, data)
		*a = FragmentAny(raw)
	}
	return nil
}

// Equal reports whether two Any values are structurally identical.
func (a Any) Equal(other Any) bool {
	if a.Kind != other.Kind {
		return false
	}
	switch a.Kind {
	case AnyBool:
		return a.Bool == other.Bool
	case AnyNumber:
		return a.Number == other.Number
	case AnyString:
		return a.Str == other.Str
	case AnyFragment:
		return string(a.Fragment) == string(other.Fragment)
	default:
		return true
	}
}
