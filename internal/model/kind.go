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

// Package model holds the version-agnostic intermediate representation that
// every other package in this module operates on: the Loader builds it from
// JSON, the Reference Resolver and Inline Promotion passes walk and rewrite
// it, and the Writer and Code Emitter read it back out.
package model

// Kind is the JSON Schema primitive type a SchemaRef resolves to once enums,
// refs and composition keywords have been accounted for. It drives the
// C type chosen by the code emitter (struct/union/enum/scalar/array).
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNull
	KindBoolean
	KindInteger
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Bound represents a numeric minimum/maximum with its exclusivity flag,
// normalizing the OpenAPI 3.0 (boolean-flag) and 3.1 (numeric-exclusive)
// encodings of the same constraint into one shape.
type Bound struct {
	Value     float64
	Exclusive bool
}

// Additional represents additionalProperties / unevaluatedProperties.
//
//   - nil: not specified (JSON Schema default: true)
//   - Allow != nil, Schema == nil: additionalProperties: <bool>
//   - Schema != nil: additionalProperties: <schema>, takes precedence over Allow
type Additional struct {
	Allow  *bool
	Schema *SchemaRef
}

// NoAdditionalProps returns an Additional that disallows additional properties.
func NoAdditionalProps() *Additional {
	f := false
	return &Additional{Allow: &f}
}

// AdditionalPropsSchema returns an Additional constraining additional properties to a schema.
func AdditionalPropsSchema(s *SchemaRef) *Additional {
	return &Additional{Schema: s}
}
