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

package export

import (
	"encoding/json"
	"maps"
)

// SchemaDoc is the canonical JSON Schema 2020-12 projection of a
// model.SchemaRef. A schema that is a bare JSON boolean (`true`/`false`)
// marshals as that boolean rather than this struct; see MarshalJSON.
type SchemaDoc struct {
	isBoolean      bool
	booleanValue   bool

	Ref         string `json:"$ref,omitempty"`
	DynamicRef  string `json:"$dynamicRef,omitempty"`

	Type   any `json:"type,omitempty"` // string or []string
	Format string `json:"format,omitempty"`

	ContentMediaType string     `json:"contentMediaType,omitempty"`
	ContentEncoding  string     `json:"contentEncoding,omitempty"`
	ContentSchema    *SchemaDoc `json:"contentSchema,omitempty"`

	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty"`

	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	MinItems    *int `json:"minItems,omitempty"`
	MaxItems    *int `json:"maxItems,omitempty"`
	UniqueItems bool `json:"uniqueItems,omitempty"`
	Items       *SchemaDoc `json:"items,omitempty"`

	MinProperties         *int                  `json:"minProperties,omitempty"`
	MaxProperties         *int                  `json:"maxProperties,omitempty"`
	Properties            map[string]*SchemaDoc `json:"properties,omitempty"`
	Required              []string              `json:"required,omitempty"`
	AdditionalProperties  any                   `json:"additionalProperties,omitempty"` // bool or *SchemaDoc
	PatternProperties     map[string]*SchemaDoc `json:"patternProperties,omitempty"`

	AllOf []*SchemaDoc `json:"allOf,omitempty"`
	OneOf []*SchemaDoc `json:"oneOf,omitempty"`
	AnyOf []*SchemaDoc `json:"anyOf,omitempty"`
	Not   *SchemaDoc   `json:"not,omitempty"`

	Enum    []any `json:"enum,omitempty"`
	Const   any   `json:"const,omitempty"`
	Default any   `json:"default,omitempty"`

	Title       string `json:"title,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty"`
	WriteOnly   bool   `json:"writeOnly,omitempty"`
	Example     any    `json:"example,omitempty"`
	Examples    []any  `json:"examples,omitempty"`

	ExternalDocs  *ExternalDocsDoc `json:"externalDocs,omitempty"`
	Discriminator *DiscriminatorDoc `json:"discriminator,omitempty"`
	XML           *XMLDoc           `json:"xml,omitempty"`

	Extra map[string]any `json:"-"` // schema_extra_json, merged in verbatim
}

type DiscriminatorDoc struct {
	PropertyName string            `json:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty"`
}

type XMLDoc struct {
	Name      string `json:"name,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Attribute bool   `json:"attribute,omitempty"`
	Wrapped   bool   `json:"wrapped,omitempty"`
}

// BooleanSchemaDoc returns a SchemaDoc that marshals as the bare JSON
// boolean v (a JSON Schema boolean schema).
func BooleanSchemaDoc(v bool) *SchemaDoc {
	return &SchemaDoc{isBoolean: true, booleanValue: v}
}

func (s *SchemaDoc) MarshalJSON() ([]byte, error) {
	if s.isBoolean {
		return json.Marshal(s.booleanValue)
	}
	type schemaDoc SchemaDoc
	data, err := json.Marshal(schemaDoc(*s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return data, nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	maps.Copy(m, s.Extra)
	return json.Marshal(m)
}
