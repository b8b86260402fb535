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

package loader

import (
	"encoding/json"
	"fmt"
	"sort"

	"ccdd.dev/ccdd/internal/model"
)

// ParseSchema decodes a raw JSON Schema node (as produced by
// json.Unmarshal into `any`) into a *model.SchemaRef, recording
// ownerBaseURI for later $ref resolution and appending any $id/$anchor/
// $dynamicAnchor this node declares into the owning Spec's resolution
// tables at jsonPointer.
func (l *Loader) ParseSchema(raw any, ownerBaseURI, jsonPointer string) (*model.SchemaRef, error) {
	switch v := raw.(type) {
	case bool:
		return &model.SchemaRef{SchemaIsBoolean: true, SchemaIsBooleanV: v, SchemaIsBooleanSet: true, OwnerBaseURI: ownerBaseURI}, nil
	case nil:
		return &model.SchemaRef{OwnerBaseURI: ownerBaseURI}, nil
	case map[string]any:
		return l.parseSchemaObject(v, ownerBaseURI, jsonPointer)
	default:
		return nil, fmt.Errorf("schema node must be an object or boolean, got %T", raw)
	}
}

func (l *Loader) parseSchemaObject(m map[string]any, ownerBaseURI, jsonPointer string) (*model.SchemaRef, error) {
	s := &model.SchemaRef{OwnerBaseURI: ownerBaseURI}

	if ref, ok := str(m, "$ref"); ok {
		s.Ref = ref
	}
	if ref, ok := str(m, "$dynamicRef"); ok {
		s.Ref = ref
		s.RefIsDynamic = true
	}
	if id, ok := str(m, "$id"); ok && l.spec != nil {
		l.spec.DefinedSchemaIDs[id] = jsonPointer
	}
	if anchor, ok := str(m, "$anchor"); ok && l.spec != nil {
		l.spec.DefinedAnchors[anchor] = jsonPointer
	}
	if anchor, ok := str(m, "$dynamicAnchor"); ok && l.spec != nil {
		l.spec.DefinedDynamicAnchors[anchor] = jsonPointer
	}

	s.TypeUnion = typeUnion(m["type"])
	if len(s.TypeUnion) == 1 {
		s.InlineType = s.TypeUnion[0]
	}
	if s.InlineType == "array" {
		s.IsArray = true
	}

	s.Format, _ = str(m, "format")
	s.ContentMediaType, _ = str(m, "contentMediaType")
	s.ContentEncoding, _ = str(m, "contentEncoding")
	if cs, ok := m["contentSchema"]; ok {
		sub, err := l.ParseSchema(cs, ownerBaseURI, jsonPointer+"/contentSchema")
		if err != nil {
			return nil, err
		}
		s.ContentSchema = sub
	}

	s.Min, s.Max = boundsOf(m, "minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum")
	if mo, ok := numPtr(m, "multipleOf"); ok {
		s.MultipleOf = mo
	}
	s.MinLen = intPtr(m, "minLength")
	s.MaxLen = intPtr(m, "maxLength")
	s.Pattern, _ = str(m, "pattern")
	s.MinItems = intPtr(m, "minItems")
	s.MaxItems = intPtr(m, "maxItems")
	if b, ok := m["uniqueItems"].(bool); ok {
		s.UniqueItems = b
		s.UniqueItemsSet = true
	}
	s.MinProperties = intPtr(m, "minProperties")
	s.MaxProperties = intPtr(m, "maxProperties")

	if items, ok := m["items"]; ok {
		sub, err := l.ParseSchema(items, ownerBaseURI, jsonPointer+"/items")
		if err != nil {
			return nil, err
		}
		s.Items = sub
		s.IsArray = true
		s.ItemsRef = sub.Ref
		s.ItemsRefIsDynamic = sub.RefIsDynamic
		s.ItemsInlineType = sub.InlineType
		s.ItemsTypeUnion = sub.TypeUnion
		s.ItemsNullable = sub.Nullable()
		s.ItemsSchemaIsBoolean = sub.SchemaIsBoolean
		s.ItemsFormat = sub.Format
		s.ItemsContentMediaType = sub.ContentMediaType
		s.ItemsContentEncoding = sub.ContentEncoding
		s.ItemsContentSchema = sub.ContentSchema
		s.ItemsMin, s.ItemsMax = sub.Min, sub.Max
		s.ItemsMultipleOf = sub.MultipleOf
		s.ItemsMinLen, s.ItemsMaxLen, s.ItemsPattern = sub.MinLen, sub.MaxLen, sub.Pattern
		s.ItemsDefault = sub.Default
		s.ItemsExtraJSON = sub.SchemaExtraJSON
	}

	if props, ok := m["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*model.SchemaRef, len(props))
		keys := sortedKeys(props)
		s.PropertyOrder = keys
		for _, k := range keys {
			sub, err := l.ParseSchema(props[k], ownerBaseURI, jsonPointer+"/properties/"+k)
			if err != nil {
				return nil, err
			}
			s.Properties[k] = sub
		}
	}
	if req, ok := m["required"].([]any); ok {
		s.Required = toStrings(req)
	}
	if ap, ok := m["additionalProperties"]; ok {
		switch v := ap.(type) {
		case bool:
			s.AdditionalProps = &model.Additional{Allow: &v}
		default:
			sub, err := l.ParseSchema(ap, ownerBaseURI, jsonPointer+"/additionalProperties")
			if err != nil {
				return nil, err
			}
			s.AdditionalProps = model.AdditionalPropsSchema(sub)
		}
	}
	if pp, ok := m["patternProperties"].(map[string]any); ok {
		s.PatternProperties = make(map[string]*model.SchemaRef, len(pp))
		for k, v := range pp {
			sub, err := l.ParseSchema(v, ownerBaseURI, jsonPointer+"/patternProperties/"+k)
			if err != nil {
				return nil, err
			}
			s.PatternProperties[k] = sub
		}
	}

	for _, kw := range []struct {
		name string
		dst  *[]*model.SchemaRef
	}{{"allOf", &s.AllOf}, {"oneOf", &s.OneOf}, {"anyOf", &s.AnyOf}} {
		if list, ok := m[kw.name].([]any); ok {
			items := make([]*model.SchemaRef, len(list))
			for i, it := range list {
				sub, err := l.ParseSchema(it, ownerBaseURI, fmt.Sprintf("%s/%s/%d", jsonPointer, kw.name, i))
				if err != nil {
					return nil, err
				}
				items[i] = sub
			}
			*kw.dst = items
		}
	}
	if not, ok := m["not"]; ok {
		sub, err := l.ParseSchema(not, ownerBaseURI, jsonPointer+"/not")
		if err != nil {
			return nil, err
		}
		s.Not = sub
	}

	if enum, ok := m["enum"].([]any); ok {
		s.Enum = make([]model.Any, len(enum))
		for i, v := range enum {
			s.Enum[i] = toAny(v)
		}
	}
	if c, ok := m["const"]; ok {
		a := toAny(c)
		s.Const = &a
	}
	if d, ok := m["default"]; ok {
		a := toAny(d)
		s.Default = &a
	}

	s.Title, _ = str(m, "title")
	s.Summary, _ = str(m, "summary")
	s.Description, _ = str(m, "description")
	if b, ok := m["deprecated"].(bool); ok {
		s.Deprecated, s.DeprecatedSet = b, true
	}
	if b, ok := m["readOnly"].(bool); ok {
		s.ReadOnly, s.ReadOnlySet = b, true
	}
	if b, ok := m["writeOnly"].(bool); ok {
		s.WriteOnly, s.WriteOnlySet = b, true
	}
	if e, ok := m["example"]; ok {
		a := toAny(e)
		s.Example = &a
	}
	if ex, ok := m["examples"].([]any); ok {
		s.Examples = make([]model.Any, len(ex))
		for i, v := range ex {
			s.Examples[i] = toAny(v)
		}
	}

	if ed, ok := m["externalDocs"].(map[string]any); ok {
		s.ExternalDocs = &model.ExternalDocs{}
		s.ExternalDocs.Description, _ = str(ed, "description")
		s.ExternalDocs.URL, _ = str(ed, "url")
	}
	if disc, ok := m["discriminator"].(map[string]any); ok {
		d := &model.Discriminator{}
		d.PropertyName, _ = str(disc, "propertyName")
		if mapping, ok := disc["mapping"].(map[string]any); ok {
			d.Mapping = make(map[string]string, len(mapping))
			for k, v := range mapping {
				if sv, ok := v.(string); ok {
					d.Mapping[k] = sv
				}
			}
		}
		d.Default, _ = str(disc, "defaultMapping")
		s.Discriminator = d
	}
	if xml, ok := m["xml"].(map[string]any); ok {
		x := &model.XMLInfo{}
		x.Name, _ = str(xml, "name")
		x.Namespace, _ = str(xml, "namespace")
		x.Prefix, _ = str(xml, "prefix")
		x.NodeType, _ = str(xml, "nodeType")
		x.Attribute, _ = xml["attribute"].(bool)
		x.Wrapped, _ = xml["wrapped"].(bool)
		s.XML = x
	}

	known := schemaKnownKeys
	extra := make(map[string]any)
	for k, v := range m {
		if !known[k] {
			extra[k] = v
		}
	}
	if len(extra) > 0 {
		raw, err := json.Marshal(extra)
		if err == nil {
			s.SchemaExtraJSON = raw
		}
	}

	return s, nil
}

var schemaKnownKeys = map[string]bool{
	"$ref": true, "$dynamicRef": true, "$id": true, "$anchor": true, "$dynamicAnchor": true,
	"type": true, "format": true, "contentMediaType": true, "contentEncoding": true, "contentSchema": true,
	"minimum": true, "maximum": true, "exclusiveMinimum": true, "exclusiveMaximum": true, "multipleOf": true,
	"minLength": true, "maxLength": true, "pattern": true,
	"minItems": true, "maxItems": true, "uniqueItems": true, "items": true,
	"minProperties": true, "maxProperties": true, "properties": true, "required": true,
	"additionalProperties": true, "patternProperties": true,
	"allOf": true, "oneOf": true, "anyOf": true, "not": true,
	"enum": true, "const": true, "default": true,
	"title": true, "summary": true, "description": true, "deprecated": true, "readOnly": true, "writeOnly": true,
	"example": true, "examples": true,
	"externalDocs": true, "discriminator": true, "xml": true,
}

func str(m map[string]any, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

func numPtr(m map[string]any, key string) (*float64, bool) {
	v, ok := m[key].(float64)
	if !ok {
		return nil, false
	}
	return &v, true
}

func intPtr(m map[string]any, key string) *int {
	v, ok := m[key].(float64)
	if !ok {
		return nil
	}
	n := int(v)
	return &n
}

// boundsOf builds Min/Max Bound pointers handling both the 3.0 boolean-flag
// and 3.1 numeric-exclusive encodings of exclusivity.
func boundsOf(m map[string]any, minKey, maxKey, exclMinKey, exclMaxKey string) (*model.Bound, *model.Bound) {
	var minB, maxB *model.Bound
	if v, ok := m[minKey].(float64); ok {
		minB = &model.Bound{Value: v}
	}
	if v, ok := m[maxKey].(float64); ok {
		maxB = &model.Bound{Value: v}
	}
	switch v := m[exclMinKey].(type) {
	case bool:
		if v && minB != nil {
			minB.Exclusive = true
		}
	case float64:
		minB = &model.Bound{Value: v, Exclusive: true}
	}
	switch v := m[exclMaxKey].(type) {
	case bool:
		if v && maxB != nil {
			maxB.Exclusive = true
		}
	case float64:
		maxB = &model.Bound{Value: v, Exclusive: true}
	}
	return minB, maxB
}

func typeUnion(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		return toStrings(t)
	default:
		return nil
	}
}

func toStrings(list []any) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toAny(v any) model.Any {
	switch x := v.(type) {
	case nil:
		return model.NullAny()
	case bool:
		return model.BoolAny(x)
	case float64:
		return model.NumberAny(x)
	case string:
		return model.StringAny(x)
	default:
		raw, _ := json.Marshal(x)
		return model.FragmentAny(raw)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
