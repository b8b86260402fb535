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

import "ccdd.dev/ccdd/internal/model"

// writeUnionHeader emits the tag enum, the tagged-union struct, and its
// lifecycle prototypes, per §4.J's "Union" rule.
func writeUnionHeader(h *checkedWriter, opts Options, sf *model.StructFields) {
	ident := sanitizeIdent(sf.Name)
	if sf.Description != "" {
		h.printf("/* %s */\n", sf.Description)
	}
	h.printf("enum %s_tag {\n", ident)
	h.printf("\t%s_UNKNOWN = 0,\n", ident)
	for _, v := range sf.Fields {
		h.printf("\t%s,\n", enumMemberName(sf.Name, v.Name))
	}
	h.printf("};\n\n")

	h.printf("struct %s {\n", ident)
	h.printf("\tenum %s_tag tag;\n", ident)
	h.raw("\tunion {\n")
	for _, v := range sf.Fields {
		decl, count := cFieldType(v)
		if count != "" {
			h.printf("\t\tstruct { size_t %s; %s %s; } %s;\n", count, decl, v.Name, v.Name)
		} else {
			h.printf("\t\t%s %s;\n", decl, v.Name)
		}
	}
	h.raw("\t} data;\n")
	h.printf("};\n\n")

	h.ifdef(opts.JSONGuard)
	h.printf("int %s_to_json(const struct %s *val, char **out);\n", ident, ident)
	h.printf("int %s_from_json(const char *json, struct %s *out);\n", ident, ident)
	h.printf("int %s_from_jsonObject(const JSON_Object *obj, struct %s *out);\n", ident, ident)
	h.endif(opts.JSONGuard)
	h.ifdef(opts.UtilsGuard)
	h.printf("void %s_cleanup(struct %s *val);\n\n", ident, ident)
	h.endif(opts.UtilsGuard)
}

// writeUnionSource emits _to_json/_from_json/_from_jsonObject/_cleanup,
// each switching on tag. _from_jsonObject prefers the discriminator when
// declared; otherwise it falls back to a deterministic shape match,
// trying each variant's own _from_jsonObject in declaration order and
// accepting the first one that succeeds (§9 open question: "prefer
// discriminator when available and fall back to a deterministic
// shape-match").
func writeUnionSource(c *checkedWriter, opts Options, sf *model.StructFields) {
	ident := sanitizeIdent(sf.Name)

	c.ifdef(opts.UtilsGuard)
	c.printf("void %s_cleanup(struct %s *val) {\n", ident, ident)
	c.raw("\tif (!val) return;\n")
	c.raw("\tswitch (val->tag) {\n")
	for _, v := range sf.Fields {
		if v.Type != "object" && v.Type != "union" {
			continue
		}
		c.printf("\tcase %s:\n", enumMemberName(sf.Name, v.Name))
		c.printf("\t\t%s_cleanup(val->data.%s);\n", sanitizeIdent(v.Ref), v.Name)
		c.raw("\t\tfree(val->data." + v.Name + ");\n")
		c.raw("\t\tbreak;\n")
	}
	c.raw("\tdefault: break;\n")
	c.raw("\t}\n")
	c.printf("\tval->tag = %s_UNKNOWN;\n", ident)
	c.raw("}\n\n")
	c.endif(opts.UtilsGuard)

	c.ifdef(opts.JSONGuard)
	c.printf("int %s_to_json(const struct %s *val, char **out) {\n", ident, ident)
	c.raw("\tif (!val || !out) return EINVAL;\n")
	c.raw("\tswitch (val->tag) {\n")
	for _, v := range sf.Fields {
		c.printf("\tcase %s: return %s_to_json(val->data.%s, out);\n", enumMemberName(sf.Name, v.Name), cRefFuncPrefix(v), v.Name)
	}
	c.raw("\tdefault: return EINVAL;\n")
	c.raw("\t}\n")
	c.raw("}\n\n")

	c.printf("int %s_from_jsonObject(const JSON_Object *obj, struct %s *out) {\n", ident, ident)
	c.raw("\tif (!obj || !out) return EINVAL;\n")
	if sf.Discriminator != nil && sf.Discriminator.PropertyName != "" {
		c.printf("\tconst char *disc = json_object_get_string(obj, %q);\n", sf.Discriminator.PropertyName)
		c.raw("\tif (!disc) return EINVAL;\n")
		for _, v := range sf.Fields {
			c.printf("\tif (strcmp(disc, %q) == 0) {\n", discriminatorValue(sf, v))
			c.printf("\t\tout->data.%s = calloc(1, sizeof(*out->data.%s));\n", v.Name, v.Name)
			c.printf("\t\tif (!out->data.%s) return ENOMEM;\n", v.Name)
			c.printf("\t\tint rc = %s_from_jsonObject(obj, out->data.%s);\n", cRefFuncPrefix(v), v.Name)
			c.raw("\t\tif (rc != 0) { free(out->data." + v.Name + "); return rc; }\n")
			c.printf("\t\tout->tag = %s;\n", enumMemberName(sf.Name, v.Name))
			c.raw("\t\treturn 0;\n")
			c.raw("\t}\n")
		}
		c.raw("\treturn EINVAL;\n")
	} else {
		for _, v := range sf.Fields {
			c.printf("\tout->data.%s = calloc(1, sizeof(*out->data.%s));\n", v.Name, v.Name)
			c.printf("\tif (out->data.%s && %s_from_jsonObject(obj, out->data.%s) == 0) {\n", v.Name, cRefFuncPrefix(v), v.Name)
			c.printf("\t\tout->tag = %s;\n", enumMemberName(sf.Name, v.Name))
			c.raw("\t\treturn 0;\n")
			c.raw("\t}\n")
			c.printf("\tfree(out->data.%s);\n", v.Name)
			c.printf("\tout->data.%s = NULL;\n", v.Name)
		}
		c.raw("\treturn EINVAL;\n")
	}
	c.raw("}\n\n")

	c.printf("int %s_from_json(const char *json, struct %s *out) {\n", ident, ident)
	c.raw("\tif (!json || !out) return EINVAL;\n")
	c.raw("\tJSON_Value *root = json_parse_string(json);\n")
	c.raw("\tif (!root) return EINVAL;\n")
	c.raw("\tint rc = " + ident + "_from_jsonObject(json_value_get_object(root), out);\n")
	c.raw("\tjson_value_free(root);\n")
	c.raw("\treturn rc;\n")
	c.raw("}\n\n")
	c.endif(opts.JSONGuard)
}

// cRefFuncPrefix returns the lifecycle-function prefix for a union
// variant: the referenced component's own sanitized name.
func cRefFuncPrefix(v model.Field) string {
	return sanitizeIdent(v.Ref)
}

// discriminatorValue returns the discriminator string the variant is
// keyed under: the explicit mapping entry if one names this variant's ref,
// otherwise the ref name itself (OpenAPI's default discriminator mapping).
func discriminatorValue(sf *model.StructFields, v model.Field) string {
	if sf.Discriminator != nil {
		for k, ref := range sf.Discriminator.Mapping {
			if ref == v.Ref || ref == "#/components/schemas/"+v.Ref {
				return k
			}
		}
	}
	return v.Ref
}
