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

package codegen

import (
	"sort"
	"strconv"

	"ccdd.dev/ccdd/internal/model"
)

// lowered holds the emit-time shape of every named component, keyed by
// component name, plus the subset of components whose root schema is a
// bare array (§4.J "root-array types") which StructFields has no shape
// for and the emitter handles as a dedicated function triplet instead of
// a struct/enum/union definition.
type lowered struct {
	byName     map[string]*model.StructFields
	order      []string
	rootArrays map[string]*model.SchemaRef
}

// lower classifies every named component schema into a struct, enum, or
// union shape (model.StructFields), mirroring them onto
// spec.Components.StructComponents the way spec.go's doc comment promises
// ("the Code Emitter walks Components.Schemas once they have been lowered
// to StructFields"). Classification order doesn't matter for correctness:
// field types that reference another component by name are resolved by
// consulting the raw schema map directly, not the partially-built
// StructComponents map, so lowering has no ordering dependency on itself.
func lower(spec *model.Spec) *lowered {
	l := &lowered{
		byName:     make(map[string]*model.StructFields),
		rootArrays: make(map[string]*model.SchemaRef),
	}
	if spec.Components == nil {
		return l
	}
	names := sortedSchemaNames(spec.Components.Schemas)
	l.order = names
	for _, name := range names {
		s := spec.Components.Schemas[name]
		if s.IsArray && len(s.Properties) == 0 && len(s.OneOf) == 0 {
			l.rootArrays[name] = s
			continue
		}
		l.byName[name] = lowerSchema(spec.Components, name, s)
	}
	if spec.Components.StructComponents == nil {
		spec.Components.StructComponents = make(map[string]*model.StructFields, len(l.byName))
	}
	for name, sf := range l.byName {
		spec.Components.StructComponents[name] = sf
	}
	return l
}

func lowerSchema(comps *model.Components, name string, s *model.SchemaRef) *model.StructFields {
	switch {
	case isEnumSchema(s):
		return lowerEnum(name, s)
	case len(s.OneOf) > 0:
		return lowerUnion(comps, name, s)
	default:
		return lowerObject(comps, name, s)
	}
}

func isEnumSchema(s *model.SchemaRef) bool {
	if len(s.Enum) == 0 {
		return false
	}
	for _, v := range s.Enum {
		if v.Kind != model.AnyString {
			return false
		}
	}
	return true
}

func lowerEnum(name string, s *model.SchemaRef) *model.StructFields {
	members := make([]model.EnumMember, 0, len(s.Enum))
	for _, v := range s.Enum {
		members = append(members, model.EnumMember{Name: v.Str, Value: v})
	}
	return &model.StructFields{
		Name:        name,
		IsEnum:      true,
		EnumMembers: members,
		Description: s.Description,
	}
}

func lowerUnion(comps *model.Components, name string, s *model.SchemaRef) *model.StructFields {
	fields := make([]model.Field, 0, len(s.OneOf))
	for i, variant := range s.OneOf {
		variantName := variant.RefName
		if variantName == "" {
			variantName = sanitizeIdent(name) + "_Variant" + strconv.Itoa(i+1)
		}
		fields = append(fields, model.Field{
			Name: variantName,
			Type: refTargetKind(comps, variant),
			Ref:  variantName,
		})
	}
	return &model.StructFields{
		Name:          name,
		IsUnion:       true,
		Fields:        fields,
		Discriminator: s.Discriminator,
		Description:   s.Description,
	}
}

func lowerObject(comps *model.Components, name string, s *model.SchemaRef) *model.StructFields {
	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}
	order := s.PropertyOrder
	if len(order) == 0 {
		order = make([]string, 0, len(s.Properties))
		for p := range s.Properties {
			order = append(order, p)
		}
		sort.Strings(order)
	}
	fields := make([]model.Field, 0, len(order))
	for _, pname := range order {
		prop, ok := s.Properties[pname]
		if !ok {
			continue
		}
		fields = append(fields, schemaToField(comps, pname, prop, required[pname]))
	}
	return &model.StructFields{
		Name:        name,
		Fields:      fields,
		Description: s.Description,
	}
}

// schemaToField lowers one object property (or array item, recursively)
// into a Field, mirroring the constraint fields the code emitter inlines
// into _from_jsonObject validation.
func schemaToField(comps *model.Components, name string, s *model.SchemaRef, required bool) model.Field {
	f := model.Field{
		Name:     name,
		Required: required,
		Min:      s.Min,
		Max:      s.Max,
		MinLen:   s.MinLen,
		MaxLen:   s.MaxLen,
		Pattern:  s.Pattern,
		MinItems: s.MinItems,
		MaxItems: s.MaxItems,
		IsBinary: s.Format == "binary",
	}
	if s.Default != nil {
		f.DefaultVal = s.Default
	}
	if s.Format == "int64" {
		f.BitWidth = 64
	}

	target := s
	if s.IsArray {
		f.IsArray = true
		if s.Items != nil {
			target = s.Items
		} else {
			f.Type = "string"
			return f
		}
	}

	if target.Ref != "" {
		refName := target.RefName
		if refName == "" {
			refName = target.Ref
		}
		f.Ref = refName
		f.Type = refTargetKind(comps, target)
		return f
	}

	f.Type = target.Kind().String()
	return f
}

// refTargetKind classifies a $ref'd schema's target as "enum", "union" or
// "object" for cFieldType's C-type selection, consulting the raw
// components map (not the partially-built StructComponents map, which may
// not yet hold the target if it hasn't been lowered).
func refTargetKind(comps *model.Components, ref *model.SchemaRef) string {
	name := ref.RefName
	if name == "" {
		return "object"
	}
	target, ok := comps.Schemas[name]
	if !ok {
		return "object"
	}
	switch {
	case isEnumSchema(target):
		return "enum"
	case len(target.OneOf) > 0:
		return "union"
	default:
		return "object"
	}
}
