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
	"strings"
	"unicode"

	"ccdd.dev/ccdd/internal/model"
)

// sortedSchemaNames returns the components' schema names in a
// deterministic order. The loader decodes JSON through encoding/json's
// map[string]any, which does not preserve source key order, so "original
// document order" per §4.J Pass 2 is approximated here by name, the same
// substitute the loader itself uses (internal/loader's sortedKeys) when
// it walks components.schemas.
func sortedSchemaNames(schemas map[string]*model.SchemaRef) []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sanitizeIdent maps an arbitrary component name to a valid C identifier:
// non-alphanumeric runs become a single underscore, and a leading digit
// gets an underscore prefix.
func sanitizeIdent(name string) string {
	var b strings.Builder
	prevUnderscore := false
	for _, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevUnderscore = r == '_'
		default:
			if !prevUnderscore {
				b.WriteByte('_')
				prevUnderscore = true
			}
		}
	}
	out := b.String()
	if out == "" {
		return "_"
	}
	if unicode.IsDigit(rune(out[0])) {
		return "_" + out
	}
	return out
}

// upperSnake converts an identifier to SCREAMING_SNAKE_CASE for include
// guards and enum member names.
func upperSnake(name string) string {
	ident := sanitizeIdent(name)
	var b strings.Builder
	for i, r := range ident {
		if unicode.IsUpper(r) && i > 0 && !isUpperOrUnderscore(rune(ident[i-1])) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func isUpperOrUnderscore(r rune) bool {
	return unicode.IsUpper(r) || r == '_'
}

// enumMemberName renders "<TypeName>_<MEMBER>" for an enum value, upper-
// casing the member the same way upperSnake does for the type name.
func enumMemberName(typeName string, member string) string {
	return sanitizeIdent(typeName) + "_" + upperSnake(member)
}

// cFieldType maps a Field's resolved kind to the C type used for a struct
// member, per §4.J's Object Struct mapping table. countField is the
// companion `size_t n_<field>` member name for array-typed fields, or ""
// for non-arrays. Field.Type carries "enum"/"object"/"union" for
// ref-typed fields (set by the lowering pass, which has the full
// component map available to classify the ref's target) and the JSON
// Schema primitive name otherwise.
func cFieldType(f model.Field) (decl string, countField string) {
	if f.IsArray {
		countField = "n_" + f.Name
		if f.Ref != "" {
			if f.Type == "enum" {
				return "enum " + sanitizeIdent(f.Ref) + " *", countField
			}
			return "struct " + sanitizeIdent(f.Ref) + " **", countField
		}
		return scalarCType(f) + " *", countField
	}
	if f.Ref != "" {
		if f.Type == "enum" {
			return "enum " + sanitizeIdent(f.Ref), ""
		}
		return "struct " + sanitizeIdent(f.Ref) + " *", ""
	}
	return scalarCType(f), ""
}

// scalarCType maps a Field.Type primitive name to its C scalar type,
// honoring the int64 format hint that widens a plain integer to long.
func scalarCType(f model.Field) string {
	switch f.Type {
	case "string":
		return "const char *"
	case "integer":
		if f.BitWidth == 64 {
			return "long"
		}
		return "int"
	case "boolean":
		return "int"
	case "number":
		return "double"
	default:
		return "const char *" // raw schema fallback: preserved as opaque JSON text
	}
}
