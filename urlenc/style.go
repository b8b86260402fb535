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

import "strings"

// ValueKind tells Expand how to interpret Value.
type ValueKind int

const (
	Primitive ValueKind = iota
	Array
	Object
)

// StyleValue is one parameter value to be expanded by the style matrix.
type StyleValue struct {
	Kind ValueKind
	// Scalar holds the stringified value for Primitive.
	Scalar string
	// Items holds stringified array members for Array.
	Items []string
	// Fields holds ordered object members for Object (order matters for
	// deterministic output and matches SchemaRef.PropertyOrder).
	Fields []KV
}

// Expand renders name/value per the OpenAPI style x explode x type matrix
// (§4.A). The returned fragment does not include a leading '?'/';'/'.' for
// simple/form-in-header contexts; callers composing a full query string
// add the separator appropriate to the parameter's `in`.
func Expand(name, style string, explode bool, v StyleValue, allowReserved bool) string {
	enc := Encode
	if allowReserved {
		enc = EncodeAllowReserved
	}

	switch style {
	case "simple":
		return expandSimple(name, explode, v, enc)
	case "matrix":
		return expandMatrix(name, explode, v, enc)
	case "label":
		return expandLabel(name, explode, v, enc)
	case "spaceDelimited":
		return expandDelimited(name, explode, v, "%20", enc)
	case "pipeDelimited":
		return expandDelimited(name, explode, v, "%7C", enc)
	case "deepObject":
		return expandDeepObject(name, v, enc)
	case "form":
		fallthrough
	default:
		return expandForm(name, explode, v, enc)
	}
}

func expandForm(name string, explode bool, v StyleValue, enc func(string) string) string {
	switch v.Kind {
	case Primitive:
		return enc(name) + "=" + enc(v.Scalar)
	case Array:
		if explode {
			parts := make([]string, len(v.Items))
			for i, it := range v.Items {
				parts[i] = enc(name) + "=" + enc(it)
			}
			return strings.Join(parts, "&")
		}
		parts := make([]string, len(v.Items))
		for i, it := range v.Items {
			parts[i] = enc(it)
		}
		return enc(name) + "=" + strings.Join(parts, ",")
	case Object:
		if explode {
			parts := make([]string, len(v.Fields))
			for i, f := range v.Fields {
				parts[i] = enc(f.Key) + "=" + enc(f.Value)
			}
			return strings.Join(parts, "&")
		}
		parts := make([]string, 0, len(v.Fields)*2)
		for _, f := range v.Fields {
			parts = append(parts, enc(f.Key), enc(f.Value))
		}
		return enc(name) + "=" + strings.Join(parts, ",")
	}
	return ""
}

func expandSimple(name string, explode bool, v StyleValue, enc func(string) string) string {
	switch v.Kind {
	case Primitive:
		return enc(v.Scalar)
	case Array:
		parts := make([]string, len(v.Items))
		for i, it := range v.Items {
			parts[i] = enc(it)
		}
		return strings.Join(parts, ",")
	case Object:
		if explode {
			parts := make([]string, len(v.Fields))
			for i, f := range v.Fields {
				parts[i] = enc(f.Key) + "=" + enc(f.Value)
			}
			return strings.Join(parts, ",")
		}
		parts := make([]string, 0, len(v.Fields)*2)
		for _, f := range v.Fields {
			parts = append(parts, enc(f.Key), enc(f.Value))
		}
		return strings.Join(parts, ",")
	}
	return ""
}

func expandMatrix(name string, explode bool, v StyleValue, enc func(string) string) string {
	switch v.Kind {
	case Primitive:
		return ";" + enc(name) + "=" + enc(v.Scalar)
	case Array:
		if explode {
			var b strings.Builder
			for _, it := range v.Items {
				b.WriteByte(';')
				b.WriteString(enc(name))
				b.WriteByte('=')
				b.WriteString(enc(it))
			}
			return b.String()
		}
		parts := make([]string, len(v.Items))
		for i, it := range v.Items {
			parts[i] = enc(it)
		}
		return ";" + enc(name) + "=" + strings.Join(parts, ",")
	case Object:
		if explode {
			var b strings.Builder
			for _, f := range v.Fields {
				b.WriteByte(';')
				b.WriteString(enc(f.Key))
				b.WriteByte('=')
				b.WriteString(enc(f.Value))
			}
			return b.String()
		}
		parts := make([]string, 0, len(v.Fields)*2)
		for _, f := range v.Fields {
			parts = append(parts, enc(f.Key), enc(f.Value))
		}
		return ";" + enc(name) + "=" + strings.Join(parts, ",")
	}
	return ""
}

func expandLabel(name string, explode bool, v StyleValue, enc func(string) string) string {
	switch v.Kind {
	case Primitive:
		return "." + enc(v.Scalar)
	case Array:
		sep := ","
		if explode {
			sep = "."
		}
		parts := make([]string, len(v.Items))
		for i, it := range v.Items {
			parts[i] = enc(it)
		}
		return "." + strings.Join(parts, sep)
	case Object:
		if explode {
			var b strings.Builder
			for _, f := range v.Fields {
				b.WriteByte('.')
				b.WriteString(enc(f.Key))
				b.WriteByte('=')
				b.WriteString(enc(f.Value))
			}
			return b.String()
		}
		parts := make([]string, 0, len(v.Fields)*2)
		for _, f := range v.Fields {
			parts = append(parts, enc(f.Key), enc(f.Value))
		}
		return "." + strings.Join(parts, ",")
	}
	return ""
}

func expandDelimited(name string, explode bool, v StyleValue, delim string, enc func(string) string) string {
	if v.Kind != Array {
		// spaceDelimited/pipeDelimited apply to arrays only (objects are
		// rejected by the loader before reaching here); fall back to form.
		return expandForm(name, explode, v, enc)
	}
	if explode {
		parts := make([]string, len(v.Items))
		for i, it := range v.Items {
			parts[i] = enc(name) + "=" + enc(it)
		}
		return strings.Join(parts, "&")
	}
	parts := make([]string, len(v.Items))
	for i, it := range v.Items {
		parts[i] = enc(it)
	}
	return enc(name) + "=" + strings.Join(parts, delim)
}

func expandDeepObject(name string, v StyleValue, enc func(string) string) string {
	if v.Kind != Object {
		return ""
	}
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = enc(name) + "[" + enc(f.Key) + "]=" + enc(f.Value)
	}
	return strings.Join(parts, "&")
}
