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
	"io"

	"ccdd.dev/ccdd/internal/model"
)

// Emit walks spec's component schemas in the two passes §4.J describes
// and writes the resulting C header to headerW and the matching C source
// to sourceW. Iteration order is the name-sorted order lower() assigns,
// so re-emitting the same spec twice produces byte-identical output
// (§8's code-emission idempotence property).
func Emit(spec *model.Spec, opts Options, headerW, sourceW io.Writer) error {
	l := lower(spec)
	h := &checkedWriter{w: headerW}
	c := &checkedWriter{w: sourceW}

	writeHeaderPreamble(h, opts)
	writeForwardDecls(h, l)
	writeSourcePreamble(c, opts)

	for _, name := range l.order {
		if ra, ok := l.rootArrays[name]; ok {
			writeRootArray(h, c, opts, name, ra)
			continue
		}
		sf, ok := l.byName[name]
		if !ok {
			continue
		}
		switch {
		case sf.IsEnum:
			writeEnumHeader(h, opts, sf)
			writeEnumSource(c, opts, sf)
		case sf.IsUnion:
			writeUnionHeader(h, opts, sf)
			writeUnionSource(c, opts, sf)
		default:
			writeStructHeader(h, opts, sf)
			writeStructSource(c, opts, sf)
		}
	}

	writeHeaderEpilogue(h, opts)

	if h.err != nil {
		return h.err
	}
	return c.err
}

func writeHeaderPreamble(h *checkedWriter, opts Options) {
	guard := opts.headerGuard()
	h.printf("#ifndef %s\n#define %s\n\n", guard, guard)
	h.raw("#include <stddef.h>\n#include <stdio.h>\n")
	h.ifdef(opts.JSONGuard)
	h.raw("#include <parson.h>\n")
	h.endif(opts.JSONGuard)
	h.raw("\n")
}

func writeHeaderEpilogue(h *checkedWriter, opts Options) {
	h.printf("\n#endif /* %s */\n", opts.headerGuard())
}

func writeSourcePreamble(c *checkedWriter, opts Options) {
	c.printf("#include \"%s.h\"\n\n", opts.Basename)
	c.raw("#include <errno.h>\n#include <regex.h>\n#include <stdlib.h>\n#include <string.h>\n\n")
	c.ifdef(opts.UtilsGuard)
	c.raw("static int ends_with(const char *s, const char *suffix) {\n")
	c.raw("\tif (!s || !suffix) return 0;\n")
	c.raw("\tsize_t ls = strlen(s), lsuf = strlen(suffix);\n")
	c.raw("\tif (lsuf > ls) return 0;\n")
	c.raw("\treturn strcmp(s + (ls - lsuf), suffix) == 0;\n")
	c.raw("}\n\n")
	c.raw("static int regex_match(const char *s, const char *pattern) {\n")
	c.raw("\tif (!s || !pattern) return 0;\n")
	c.raw("\tregex_t re;\n")
	c.raw("\tif (regcomp(&re, pattern, REG_EXTENDED | REG_NOSUB) != 0) return 0;\n")
	c.raw("\tint rc = regexec(&re, s, 0, NULL, 0) == 0;\n")
	c.raw("\tregfree(&re);\n")
	c.raw("\treturn rc;\n")
	c.raw("}\n\n")
	c.endif(opts.UtilsGuard)
}

// writeRootArray handles §4.J's root-array types: schemas whose root is
// an array of <name>Item, which has no struct of its own to hang a
// definition off of. Only the three root-array lifecycle functions are
// emitted, not a full field/struct/lifecycle set.
func writeRootArray(h, c *checkedWriter, opts Options, name string, s *model.SchemaRef) {
	ident := sanitizeIdent(name)
	elem := "const char *"
	elemIsRef := s.Items != nil && s.Items.Ref != ""
	var elemIdent string
	if elemIsRef {
		elemIdent = sanitizeIdent(s.Items.RefName)
		elem = "struct " + elemIdent + " *"
	} else if s.Items != nil {
		switch s.Items.Kind() {
		case model.KindInteger:
			elem = "int "
		case model.KindNumber:
			elem = "double "
		case model.KindBoolean:
			elem = "int "
		}
	}

	h.ifdef(opts.JSONGuard)
	h.printf("int %s_from_json(const char *json, %s**out, size_t *len);\n", ident, elem)
	h.printf("int %s_to_json(%s*items, size_t len, char **out);\n", ident, elem)
	h.endif(opts.JSONGuard)
	h.ifdef(opts.UtilsGuard)
	h.printf("void %s_cleanup(%s*items, size_t len);\n\n", ident, elem)
	h.endif(opts.UtilsGuard)

	c.ifdef(opts.JSONGuard)
	c.printf("int %s_from_json(const char *json, %s**out, size_t *len) {\n", ident, elem)
	c.raw("\tif (!json || !out || !len) return EINVAL;\n")
	c.raw("\tJSON_Value *root = json_parse_string(json);\n")
	c.raw("\tif (!root) return EINVAL;\n")
	c.raw("\tJSON_Array *arr = json_value_get_array(root);\n")
	c.raw("\tif (!arr) { json_value_free(root); return EINVAL; }\n")
	c.raw("\t*len = json_array_get_count(arr);\n")
	c.printf("\t*out = calloc(*len, sizeof(**out));\n")
	c.raw("\tif (!*out && *len > 0) { json_value_free(root); return ENOMEM; }\n")
	c.raw("\tfor (size_t i = 0; i < *len; i++) {\n")
	switch {
	case elemIsRef:
		c.printf("\t\t(*out)[i] = calloc(1, sizeof(*(*out)[i]));\n")
		c.printf("\t\t%s_from_jsonObject(json_array_get_object(arr, i), (*out)[i]);\n", elemIdent)
	default:
		c.raw("\t\t(*out)[i] = json_array_get_number(arr, i);\n")
	}
	c.raw("\t}\n")
	c.raw("\tjson_value_free(root);\n")
	c.raw("\treturn 0;\n}\n\n")

	c.printf("int %s_to_json(%s*items, size_t len, char **out) {\n", ident, elem)
	c.raw("\tif (!out) return EINVAL;\n")
	c.raw("\tJSON_Value *root = json_value_init_array();\n")
	c.raw("\tJSON_Array *arr = json_value_get_array(root);\n")
	c.raw("\tfor (size_t i = 0; i < len; i++) {\n")
	switch {
	case elemIsRef:
		c.printf("\t\tchar *s = NULL; %s_to_json(items[i], &s);\n", elemIdent)
		c.raw("\t\tjson_array_append_value(arr, json_parse_string(s)); free(s);\n")
	default:
		c.raw("\t\tjson_array_append_number(arr, (double)items[i]);\n")
	}
	c.raw("\t}\n")
	c.raw("\t*out = json_serialize_to_string(root);\n")
	c.raw("\tjson_value_free(root);\n")
	c.raw("\treturn *out ? 0 : ENOMEM;\n}\n\n")
	c.endif(opts.JSONGuard)

	c.ifdef(opts.UtilsGuard)
	c.printf("void %s_cleanup(%s*items, size_t len) {\n", ident, elem)
	c.raw("\tif (!items) return;\n")
	if elemIsRef {
		c.raw("\tfor (size_t i = 0; i < len; i++) {\n")
		c.printf("\t\t%s_cleanup(items[i]);\n", elemIdent)
		c.raw("\t\tfree(items[i]);\n\t}\n")
	}
	c.raw("\tfree(items);\n")
	c.raw("}\n\n")
	c.endif(opts.UtilsGuard)
}
