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

// Discriminator aids in determining which variant of a oneOf/anyOf schema
// applies to a given payload.
type Discriminator struct {
	PropertyName string
	Mapping      map[string]string
	Default      string
}

// XMLInfo carries XML serialization metadata for a schema node.
type XMLInfo struct {
	Name      string
	Namespace string
	Prefix    string
	NodeType  string // element, attribute, text, cdata, none
	Attribute bool
	Wrapped   bool
}

// MultipartField describes one field of a multipart/form-data schema
// collapsed via the `multipart_fields` shorthand.
type MultipartField struct {
	Name     string
	Type     string
	IsBinary bool
}

// SchemaRef is the single structure representing every schema position:
// a named component, a property, an items schema, a parameter schema, or
// a request/response body schema. Every other package navigates the spec
// through SchemaRef values rather than through version-specific JSON Schema
// keyword structs.
//
// Fields suffixed *Set record whether the field was explicitly present in
// source JSON, for JSON Schema keywords whose zero value (false, 0, "") is
// itself a meaningful user choice; a field with no *Set companion is always
// semantically optional (zero value == absent).
type SchemaRef struct {
	// Identity
	Ref               string // URI or JSON pointer, set when this node is `{"$ref": ...}`
	RefIsDynamic      bool
	RefName           string // resolved local component key, once resolved
	InlineType        string // string|integer|number|boolean|object|array|null, when not a $ref
	SchemaIsBoolean   bool
	SchemaIsBooleanV  bool // the boolean value itself, when SchemaIsBoolean
	SchemaIsBooleanSet bool

	// Type union: JSON Schema `"type": ["string","null"]` flattened to a list.
	TypeUnion []string

	// Array
	IsArray             bool
	ItemsRef            string
	ItemsRefIsDynamic   bool
	ItemsInlineType     string
	ItemsNullable       bool
	ItemsSchemaIsBoolean bool
	ItemsTypeUnion      []string
	Items               *SchemaRef // nested items schema, when materialized as a full node

	// Format & content
	Format            string
	ContentMediaType  string
	ContentEncoding   string
	ContentSchema     *SchemaRef
	ItemsFormat           string
	ItemsContentMediaType string
	ItemsContentEncoding  string
	ItemsContentSchema    *SchemaRef

	// Numeric constraints
	Min          *Bound
	Max          *Bound
	MultipleOf   *float64
	ItemsMin        *Bound
	ItemsMax        *Bound
	ItemsMultipleOf *float64

	// String constraints
	MinLen  *int
	MaxLen  *int
	Pattern string
	ItemsMinLen  *int
	ItemsMaxLen  *int
	ItemsPattern string

	// Array constraints
	MinItems    *int
	MaxItems    *int
	UniqueItems bool
	UniqueItemsSet bool

	// Object constraints
	Properties        map[string]*SchemaRef
	PropertyOrder     []string // iteration order of Properties; the JSON loader fills it with the keys sorted
	Required          []string
	AdditionalProps   *Additional
	MinProperties     *int
	MaxProperties     *int
	PatternProperties map[string]*SchemaRef

	// Composition
	AllOf []*SchemaRef
	OneOf []*SchemaRef
	AnyOf []*SchemaRef
	Not   *SchemaRef

	// Enumeration
	Enum         []Any
	Const        *Any
	Default      *Any
	ItemsDefault *Any

	// Annotations
	Title       string
	Summary     string
	Description string
	Deprecated  bool
	DeprecatedSet bool
	ReadOnly    bool
	ReadOnlySet bool
	WriteOnly   bool
	WriteOnlySet bool
	Example     *Any
	Examples    []Any

	// Composition directives and unknown keywords, kept verbatim.
	SchemaExtraJSON json.RawMessage
	ItemsExtraJSON  json.RawMessage

	// Special
	MultipartFields []MultipartField
	ExternalDocs    *ExternalDocs
	Discriminator   *Discriminator
	XML             *XMLInfo

	// Resolution bookkeeping, not part of the wire format: the base URI of
	// the document that owns this node (for $ref resolution).
	OwnerBaseURI string
}

// Kind computes the effective JSON Schema kind of this node. A type union
// containing more than one non-null primitive, or none at all, resolves to
// KindArray when IsArray is set, else KindObject when Properties is
// non-empty, else KindUnknown; callers that need the full union should
// consult TypeUnion.
func (s *SchemaRef) Kind() Kind {
	if s == nil {
		return KindUnknown
	}
	if s.InlineType != "" {
		return kindOf(s.InlineType)
	}
	nonNull := make([]string, 0, len(s.TypeUnion))
	for _, t := range s.TypeUnion {
		if t != "null" {
			nonNull = append(nonNull, t)
		}
	}
	if len(nonNull) == 1 {
		return kindOf(nonNull[0])
	}
	if s.IsArray {
		return KindArray
	}
	if len(s.Properties) > 0 {
		return KindObject
	}
	return KindUnknown
}

func kindOf(t string) Kind {
	switch t {
	case "null":
		return KindNull
	case "boolean":
		return KindBoolean
	case "integer":
		return KindInteger
	case "number":
		return KindNumber
	case "string":
		return KindString
	case "object":
		return KindObject
	case "array":
		return KindArray
	default:
		return KindUnknown
	}
}

// Nullable reports whether the type union admits null, the projection the
// spec calls `nullable`.
func (s *SchemaRef) Nullable() bool {
	for _, t := range s.TypeUnion {
		if t == "null" {
			return true
		}
	}
	return false
}

// EnumMember is one ordered member of an enum-shaped StructFields.
type EnumMember struct {
	Name  string
	Value Any
}

// Field is one ordered member of a StructFields composite.
type Field struct {
	Name       string
	Type       string // resolved C-ish type name, or a ref_name lookup key
	Ref        string // set when Type resolves through a named component
	Required   bool
	BitWidth   int // 0 means unspecified
	DefaultVal *Any

	// Constraint fields mirrored from the originating SchemaRef, consulted
	// by the code emitter for _from_jsonObject validation and by the
	// writer when re-projecting a promoted component back to JSON Schema.
	Min        *Bound
	Max        *Bound
	MinLen     *int
	MaxLen     *int
	Pattern    string
	IsArray    bool
	MinItems   *int
	MaxItems   *int
	IsBinary   bool // multipart shorthand
}

// StructFields is the emit-time shape of a named composite: the loader
// lowers SchemaRef objects into StructFields once they are promoted to
// components (named, or synthesized via Inline Promotion).
type StructFields struct {
	Name        string
	Fields      []Field
	IsEnum      bool
	EnumMembers []EnumMember
	IsUnion     bool // Fields holds the union's variants; each Field.Type names the variant's own StructFields
	Discriminator *Discriminator
	Description string
}
