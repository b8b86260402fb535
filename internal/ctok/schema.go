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

package ctok

import (
	"sort"

	"ccdd.dev/ccdd/internal/model"
)

// ToSchemas inverts §4.J's Object Struct / enum type-mapping table,
// turning the declarations Parse recognized back into named
// model.SchemaRef components. Order is the declaration names sorted,
// matching the name-order convention codegen's own Emit uses (neither
// direction preserves true source order through this module's JSON
// front end).
func ToSchemas(p *Parsed) (schemas map[string]*model.SchemaRef, order []string) {
	schemas = make(map[string]*model.SchemaRef, len(p.Structs)+len(p.Enums))

	for _, e := range p.Enums {
		members := make([]model.Any, 0, len(e.Members))
		for _, m := range e.Members {
			if m == e.Name+"_UNKNOWN" {
				continue // the synthesized zero-value member, not a schema-declared one
			}
			members = append(members, model.StringAny(m))
		}
		schemas[e.Name] = &model.SchemaRef{
			InlineType: "string",
			TypeUnion:  []string{"string"},
			Enum:       members,
		}
	}

	for _, sd := range p.Structs {
		schemas[sd.Name] = structSchema(sd)
	}

	order = make([]string, 0, len(schemas))
	for name := range schemas {
		order = append(order, name)
	}
	sort.Strings(order)
	return schemas, order
}

func structSchema(sd StructDecl) *model.SchemaRef {
	props := make(map[string]*model.SchemaRef, len(sd.Fields))
	propOrder := make([]string, 0, len(sd.Fields))
	var required []string

	for _, f := range sd.Fields {
		propOrder = append(propOrder, f.Name)
		props[f.Name] = fieldSchema(f)
		if !f.Optional {
			required = append(required, f.Name)
		}
	}

	return &model.SchemaRef{
		InlineType:    "object",
		TypeUnion:     []string{"object"},
		Properties:    props,
		PropertyOrder: propOrder,
		Required:      required,
	}
}

// fieldSchema maps one Field back to the SchemaRef it was lowered from,
// mirroring codegen.cFieldType's cases in reverse.
func fieldSchema(f Field) *model.SchemaRef {
	scalar := func() *model.SchemaRef {
		switch f.BaseIdent {
		case "char":
			return &model.SchemaRef{InlineType: "string", TypeUnion: []string{"string"}}
		case "long":
			return &model.SchemaRef{InlineType: "integer", TypeUnion: []string{"integer"}, Format: "int64"}
		case "int":
			return &model.SchemaRef{InlineType: "integer", TypeUnion: []string{"integer"}}
		case "double":
			return &model.SchemaRef{InlineType: "number", TypeUnion: []string{"number"}}
		default:
			return &model.SchemaRef{InlineType: "string", TypeUnion: []string{"string"}}
		}
	}

	if !isArrayField(f) {
		switch {
		case f.IsStruct:
			return &model.SchemaRef{Ref: "#/components/schemas/" + f.BaseIdent, RefName: f.BaseIdent}
		case f.IsEnum:
			return &model.SchemaRef{Ref: "#/components/schemas/" + f.BaseIdent, RefName: f.BaseIdent}
		default:
			return scalar()
		}
	}

	var items *model.SchemaRef
	switch {
	case f.IsStruct:
		items = &model.SchemaRef{Ref: "#/components/schemas/" + f.BaseIdent, RefName: f.BaseIdent}
	case f.IsEnum:
		items = &model.SchemaRef{Ref: "#/components/schemas/" + f.BaseIdent, RefName: f.BaseIdent}
	default:
		items = scalar()
	}
	return &model.SchemaRef{
		InlineType: "array",
		TypeUnion:  []string{"array"},
		IsArray:    true,
		Items:      items,
	}
}

// isArrayField reports whether f's pointer depth indicates an array per
// cFieldType's table: struct refs are arrays at 2 stars (1 is a nested
// single object), enum refs and scalars are arrays at 1 star (0 is
// scalar), with "char" scalars (which are themselves 1-star strings)
// needing 2 stars to mean an array of strings.
func isArrayField(f Field) bool {
	switch {
	case f.IsStruct:
		return f.Stars >= 2
	case f.IsEnum:
		return f.Stars >= 1
	case f.BaseIdent == "char":
		return f.Stars >= 2
	default:
		return f.Stars >= 1
	}
}
