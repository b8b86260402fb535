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

// writeStructHeader emits the field declarations (§4.J's Object Struct
// type-mapping table) and the nine lifecycle prototypes every object
// gets: _from_json, _from_jsonObject, _to_json, _cleanup, _eq, _default,
// _deepcopy, _display, _debug. Optional fields (not in the schema's
// `required` list) get a companion `int <field>_set`, this module's
// generalization of the source's tri-state flags-with-set-bits pattern
// (§9) to ordinary optional presence tracking.
func writeStructHeader(h *checkedWriter, opts Options, sf *model.StructFields) {
	ident := sanitizeIdent(sf.Name)
	if sf.Description != "" {
		h.printf("/* %s */\n", sf.Description)
	}
	h.printf("struct %s {\n", ident)
	for _, f := range sf.Fields {
		decl, count := cFieldType(f)
		if count != "" {
			h.printf("\tsize_t %s;\n", count)
		}
		h.printf("\t%s %s;\n", decl, f.Name)
		if !f.Required {
			h.printf("\tint %s_set;\n", f.Name)
		}
	}
	h.printf("};\n\n")

	h.ifdef(opts.JSONGuard)
	h.printf("int %s_from_json(const char *json, struct %s *out);\n", ident, ident)
	h.printf("int %s_from_jsonObject(const JSON_Object *obj, struct %s *out);\n", ident, ident)
	h.printf("int %s_to_json(const struct %s *val, char **out);\n", ident, ident)
	h.endif(opts.JSONGuard)
	h.ifdef(opts.UtilsGuard)
	h.printf("void %s_cleanup(struct %s *val);\n", ident, ident)
	h.printf("int %s_eq(const struct %s *a, const struct %s *b);\n", ident, ident, ident)
	h.printf("void %s_default(struct %s *out);\n", ident, ident)
	h.printf("int %s_deepcopy(const struct %s *src, struct %s *dst);\n", ident, ident, ident)
	h.printf("void %s_display(const struct %s *val, FILE *out);\n", ident, ident)
	h.printf("void %s_debug(const struct %s *val, FILE *out);\n\n", ident, ident)
	h.endif(opts.UtilsGuard)
}

// writeStructSource emits the nine lifecycle functions. Validation is
// inlined into _from_jsonObject per field (writeFieldValidation); on
// failure it calls this type's own _cleanup and returns the constraint's
// error code before any further field is parsed.
func writeStructSource(c *checkedWriter, opts Options, sf *model.StructFields) {
	ident := sanitizeIdent(sf.Name)

	c.ifdef(opts.UtilsGuard)
	writeCleanup(c, ident, sf)
	writeEq(c, ident, sf)
	writeDefault(c, ident, sf)
	writeDeepcopy(c, ident, sf)
	writeDisplay(c, ident, sf)
	writeDebug(c, ident, sf)
	c.endif(opts.UtilsGuard)

	c.ifdef(opts.JSONGuard)
	writeFromJSON(c, ident)
	writeFromJSONObject(c, ident, sf)
	writeToJSON(c, ident, sf)
	c.endif(opts.JSONGuard)
}

func writeCleanup(c *checkedWriter, ident string, sf *model.StructFields) {
	c.printf("void %s_cleanup(struct %s *val) {\n", ident, ident)
	c.raw("\tif (!val) return;\n")
	for _, f := range sf.Fields {
		_, count := cFieldType(f)
		switch {
		case count != "" && f.Ref != "" && f.Type != "enum":
			c.printf("\tfor (size_t i = 0; i < val->%s; i++) { %s_cleanup(val->%s[i]); free(val->%s[i]); }\n",
				count, sanitizeIdent(f.Ref), f.Name, f.Name)
			c.printf("\tfree(val->%s);\n", f.Name)
		case count != "":
			c.printf("\tfree(val->%s);\n", f.Name)
		case f.Type == "string":
			c.printf("\tfree((void *)val->%s);\n", f.Name)
		case f.Ref != "" && f.Type != "enum":
			c.printf("\tif (val->%s) { %s_cleanup(val->%s); free(val->%s); }\n",
				f.Name, sanitizeIdent(f.Ref), f.Name, f.Name)
		}
	}
	c.raw("\tmemset(val, 0, sizeof(*val));\n")
	c.raw("}\n\n")
}

func writeEq(c *checkedWriter, ident string, sf *model.StructFields) {
	c.printf("int %s_eq(const struct %s *a, const struct %s *b) {\n", ident, ident, ident)
	c.raw("\tif (a == b) return 1;\n\tif (!a || !b) return 0;\n")
	for _, f := range sf.Fields {
		_, count := cFieldType(f)
		switch {
		case count != "":
			c.printf("\tif (a->%s != b->%s) return 0;\n", count, count)
		case f.Type == "string":
			c.printf("\tif ((a->%s == NULL) != (b->%s == NULL)) return 0;\n", f.Name, f.Name)
			c.printf("\tif (a->%s && strcmp(a->%s, b->%s) != 0) return 0;\n", f.Name, f.Name, f.Name)
		case f.Ref != "" && f.Type != "enum":
			c.printf("\tif (!%s_eq(a->%s, b->%s)) return 0;\n", sanitizeIdent(f.Ref), f.Name, f.Name)
		default:
			c.printf("\tif (a->%s != b->%s) return 0;\n", f.Name, f.Name)
		}
	}
	c.raw("\treturn 1;\n}\n\n")
}

func writeDefault(c *checkedWriter, ident string, sf *model.StructFields) {
	c.printf("void %s_default(struct %s *out) {\n", ident, ident)
	c.raw("\tif (!out) return;\n\tmemset(out, 0, sizeof(*out));\n")
	for _, f := range sf.Fields {
		if f.DefaultVal == nil {
			continue
		}
		switch f.Type {
		case "string":
			c.printf("\tout->%s = strdup(%q);\n", f.Name, f.DefaultVal.Str)
		case "integer", "boolean":
			c.printf("\tout->%s = %d;\n", f.Name, int64(f.DefaultVal.Number))
		case "number":
			c.printf("\tout->%s = %s;\n", f.Name, formatFloat(f.DefaultVal.Number))
		}
	}
	c.raw("}\n\n")
}

func writeDeepcopy(c *checkedWriter, ident string, sf *model.StructFields) {
	c.printf("int %s_deepcopy(const struct %s *src, struct %s *dst) {\n", ident, ident, ident)
	c.raw("\tif (!src || !dst) return EINVAL;\n\tmemset(dst, 0, sizeof(*dst));\n")
	for _, f := range sf.Fields {
		_, count := cFieldType(f)
		switch {
		case count != "" && f.Ref != "" && f.Type != "enum":
			c.printf("\tdst->%s = src->%s;\n", count, count)
			c.printf("\tdst->%s = calloc(dst->%s, sizeof(*dst->%s));\n", f.Name, count, f.Name)
			c.printf("\tif (!dst->%s && dst->%s > 0) return ENOMEM;\n", f.Name, count)
			c.printf("\tfor (size_t i = 0; i < dst->%s; i++) {\n", count)
			c.printf("\t\tdst->%s[i] = calloc(1, sizeof(*dst->%s[i]));\n", f.Name, f.Name)
			c.printf("\t\tif (!dst->%s[i] || %s_deepcopy(src->%s[i], dst->%s[i]) != 0) return ENOMEM;\n",
				f.Name, sanitizeIdent(f.Ref), f.Name, f.Name)
			c.raw("\t}\n")
		case count != "":
			c.printf("\tdst->%s = src->%s;\n", count, count)
			c.printf("\tif (dst->%s > 0) {\n", count)
			c.printf("\t\tdst->%s = calloc(dst->%s, sizeof(*dst->%s));\n", f.Name, count, f.Name)
			c.printf("\t\tif (!dst->%s) return ENOMEM;\n", f.Name)
			c.printf("\t\tmemcpy((void *)dst->%s, src->%s, dst->%s * sizeof(*dst->%s));\n", f.Name, f.Name, count, f.Name)
			c.raw("\t}\n")
		case f.Type == "string":
			c.printf("\tdst->%s = src->%s ? strdup(src->%s) : NULL;\n", f.Name, f.Name, f.Name)
			c.printf("\tif (src->%s && !dst->%s) return ENOMEM;\n", f.Name, f.Name)
		case f.Ref != "" && f.Type != "enum":
			c.printf("\tif (src->%s) {\n", f.Name)
			c.printf("\t\tdst->%s = calloc(1, sizeof(*dst->%s));\n", f.Name, f.Name)
			c.printf("\t\tif (!dst->%s || %s_deepcopy(src->%s, dst->%s) != 0) return ENOMEM;\n",
				f.Name, sanitizeIdent(f.Ref), f.Name, f.Name)
			c.raw("\t}\n")
		default:
			c.printf("\tdst->%s = src->%s;\n", f.Name, f.Name)
		}
		if !f.Required {
			c.printf("\tdst->%s_set = src->%s_set;\n", f.Name, f.Name)
		}
	}
	c.raw("\treturn 0;\n}\n\n")
}

func writeDisplay(c *checkedWriter, ident string, sf *model.StructFields) {
	c.printf("void %s_display(const struct %s *val, FILE *out) {\n", ident, ident)
	c.raw("\tif (!val || !out) return;\n")
	c.printf("\tfprintf(out, \"%s{\");\n", ident)
	for i, f := range sf.Fields {
		sep := ", "
		if i == len(sf.Fields)-1 {
			sep = ""
		}
		if f.Type == "string" {
			c.printf("\tfprintf(out, \"%s=%%s%s\", val->%s ? val->%s : \"\");\n", f.Name, sep, f.Name, f.Name)
		} else {
			c.printf("\tfprintf(out, \"%s=...%s\");\n", f.Name, sep)
		}
	}
	c.raw("\tfprintf(out, \"}\");\n")
	c.raw("}\n\n")
}

func writeDebug(c *checkedWriter, ident string, sf *model.StructFields) {
	c.printf("void %s_debug(const struct %s *val, FILE *out) {\n", ident, ident)
	c.printf("\tfprintf(out, \"%s@%%p \", (const void *)val);\n", ident)
	c.printf("\t%s_display(val, out);\n", ident)
	c.raw("\tfprintf(out, \"\\n\");\n")
	c.raw("}\n\n")
}

func writeFromJSON(c *checkedWriter, ident string) {
	c.printf("int %s_from_json(const char *json, struct %s *out) {\n", ident, ident)
	c.raw("\tif (!json || !out) return EINVAL;\n")
	c.raw("\tJSON_Value *root = json_parse_string(json);\n")
	c.raw("\tif (!root) return EINVAL;\n")
	c.printf("\tint rc = %s_from_jsonObject(json_value_get_object(root), out);\n", ident)
	c.raw("\tjson_value_free(root);\n")
	c.raw("\treturn rc;\n")
	c.raw("}\n\n")
}

func writeFromJSONObject(c *checkedWriter, ident string, sf *model.StructFields) {
	c.printf("int %s_from_jsonObject(const JSON_Object *obj, struct %s *out) {\n", ident, ident)
	c.raw("\tif (!obj || !out) return EINVAL;\n")
	c.raw("\tmemset(out, 0, sizeof(*out));\n")
	for _, f := range sf.Fields {
		writeFieldParse(c, ident, f)
		writeFieldValidation(c, ident, f)
	}
	c.raw("\treturn 0;\n}\n\n")
}

func writeFieldParse(c *checkedWriter, ownerIdent string, f model.Field) {
	key := f.Name
	switch {
	case f.IsArray:
		c.printf("\t{\n\t\tJSON_Array *arr = json_object_get_array(obj, %q);\n", key)
		c.raw("\t\tif (arr) {\n")
		c.printf("\t\t\tout->n_%s = json_array_get_count(arr);\n", f.Name)
		c.printf("\t\t\tout->%s = calloc(out->n_%s, sizeof(*out->%s));\n", f.Name, f.Name, f.Name)
		c.printf("\t\t\tif (!out->%s && out->n_%s > 0) { %s_cleanup(out); return ENOMEM; }\n", f.Name, f.Name, ownerIdent)
		c.printf("\t\t\tfor (size_t i = 0; i < out->n_%s; i++) {\n", f.Name)
		switch {
		case f.Ref != "" && f.Type != "enum":
			c.printf("\t\t\t\tout->%s[i] = calloc(1, sizeof(*out->%s[i]));\n", f.Name, f.Name)
			c.printf("\t\t\t\tif (!out->%s[i] || %s_from_jsonObject(json_array_get_object(arr, i), out->%s[i]) != 0) { %s_cleanup(out); return EINVAL; }\n",
				f.Name, sanitizeIdent(f.Ref), f.Name, ownerIdent)
		case f.Type == "string":
			c.printf("\t\t\t\tout->%s[i] = strdup(json_array_get_string(arr, i));\n", f.Name)
		default:
			c.printf("\t\t\t\tout->%s[i] = (%s)json_array_get_number(arr, i);\n", f.Name, scalarElementCType(f))
		}
		c.raw("\t\t\t}\n")
		c.raw("\t\t}\n\t}\n")
		return
	case f.Ref != "" && f.Type == "enum":
		c.printf("\t{\n\t\tconst char *s = json_object_get_string(obj, %q);\n", key)
		c.printf("\t\tif (s) {\n\t\t\t%s_from_str(s, &out->%s);\n", sanitizeIdent(f.Ref), f.Name)
		c.printf("\t\t\tif (out->%s == %s_UNKNOWN) { %s_cleanup(out); return EINVAL; }\n\t\t}\n\t}\n", f.Name, sanitizeIdent(f.Ref), ownerIdent)
	case f.Ref != "":
		c.printf("\t{\n\t\tJSON_Object *sub = json_object_get_object(obj, %q);\n", key)
		c.raw("\t\tif (sub) {\n")
		c.printf("\t\t\tout->%s = calloc(1, sizeof(*out->%s));\n", f.Name, f.Name)
		c.printf("\t\t\tif (!out->%s) { %s_cleanup(out); return ENOMEM; }\n", f.Name, ownerIdent)
		c.printf("\t\t\tif (%s_from_jsonObject(sub, out->%s) != 0) { %s_cleanup(out); return EINVAL; }\n",
			sanitizeIdent(f.Ref), f.Name, ownerIdent)
		c.raw("\t\t}\n\t}\n")
	case f.Type == "string":
		c.printf("\tout->%s = json_object_has_value_of_type(obj, %q, JSONString) ? strdup(json_object_get_string(obj, %q)) : NULL;\n",
			f.Name, key, key)
	case f.Type == "boolean":
		c.printf("\tout->%s = (int)json_object_get_boolean(obj, %q);\n", f.Name, key)
	default:
		c.printf("\tout->%s = (%s)json_object_get_number(obj, %q);\n", f.Name, scalarCType(f), key)
	}
	if !f.Required {
		c.printf("\tout->%s_set = json_object_has_value(obj, %q);\n", f.Name, key)
	}
}

// scalarElementCType is scalarCType without the array indirection cFieldType
// adds for IsArray fields, used to cast one parsed array element.
func scalarElementCType(f model.Field) string {
	elem := f
	elem.IsArray = false
	return scalarCType(elem)
}

func writeToJSON(c *checkedWriter, ident string, sf *model.StructFields) {
	c.printf("int %s_to_json(const struct %s *val, char **out) {\n", ident, ident)
	c.raw("\tif (!val || !out) return EINVAL;\n")
	c.raw("\tJSON_Value *root = json_value_init_object();\n")
	c.raw("\tJSON_Object *obj = json_value_get_object(root);\n")
	for _, f := range sf.Fields {
		writeFieldSerialize(c, f)
	}
	c.raw("\t*out = json_serialize_to_string(root);\n")
	c.raw("\tjson_value_free(root);\n")
	c.raw("\treturn *out ? 0 : ENOMEM;\n")
	c.raw("}\n\n")
}

func writeFieldSerialize(c *checkedWriter, f model.Field) {
	key := f.Name
	switch {
	case f.IsArray:
		c.raw("\t{\n\t\tJSON_Value *arrv = json_value_init_array();\n\t\tJSON_Array *arr = json_value_get_array(arrv);\n")
		c.printf("\t\tfor (size_t i = 0; i < val->n_%s; i++) {\n", f.Name)
		switch {
		case f.Ref != "" && f.Type == "enum":
			c.printf("\t\t\tchar *s = NULL; %s_to_str(val->%s[i], &s);\n", sanitizeIdent(f.Ref), f.Name)
			c.raw("\t\t\tjson_array_append_string(arr, s); free(s);\n")
		case f.Ref != "":
			c.printf("\t\t\tchar *s = NULL; %s_to_json(val->%s[i], &s);\n", sanitizeIdent(f.Ref), f.Name)
			c.raw("\t\t\tjson_array_append_value(arr, json_parse_string(s)); free(s);\n")
		case f.Type == "string":
			c.printf("\t\t\tjson_array_append_string(arr, val->%s[i]);\n", f.Name)
		default:
			c.printf("\t\t\tjson_array_append_number(arr, (double)val->%s[i]);\n", f.Name)
		}
		c.raw("\t\t}\n")
		c.printf("\t\tjson_object_set_value(obj, %q, arrv);\n\t}\n", key)
	case f.Ref != "" && f.Type == "enum":
		c.printf("\t{\n\t\tchar *s = NULL; %s_to_str(val->%s, &s);\n", sanitizeIdent(f.Ref), f.Name)
		c.printf("\t\tjson_object_set_string(obj, %q, s); free(s);\n\t}\n", key)
	case f.Ref != "":
		c.printf("\tif (val->%s) {\n\t\tchar *s = NULL; %s_to_json(val->%s, &s);\n",
			f.Name, sanitizeIdent(f.Ref), f.Name)
		c.printf("\t\tjson_object_set_value(obj, %q, json_parse_string(s)); free(s);\n\t}\n", key)
	case f.Type == "string":
		c.printf("\tif (val->%s) json_object_set_string(obj, %q, val->%s);\n", f.Name, key, f.Name)
	case f.Type == "boolean":
		c.printf("\tjson_object_set_boolean(obj, %q, val->%s);\n", key, f.Name)
	default:
		c.printf("\tjson_object_set_number(obj, %q, (double)val->%s);\n", key, f.Name)
	}
}
