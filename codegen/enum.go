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

// writeEnumHeader emits the enum definition and its from_str/to_str
// prototypes, per §4.J: "plus prototypes for <Name>_from_str(str, enum*
// out) and <Name>_to_str(val, char** out)".
func writeEnumHeader(h *checkedWriter, opts Options, sf *model.StructFields) {
	ident := sanitizeIdent(sf.Name)
	h.ifdef(opts.EnumGuard)
	if sf.Description != "" {
		h.printf("/* %s */\n", sf.Description)
	}
	h.printf("enum %s {\n", ident)
	h.printf("\t%s_UNKNOWN = 0,\n", ident)
	for _, m := range sf.EnumMembers {
		h.printf("\t%s,\n", enumMemberName(sf.Name, m.Name))
	}
	h.printf("};\n\n")
	h.printf("int %s_from_str(const char *str, enum %s *out);\n", ident, ident)
	h.printf("int %s_to_str(enum %s val, char **out);\n\n", ident, ident)
	h.endif(opts.EnumGuard)
}

// writeEnumSource emits the switch-based from_str/to_str implementations.
// Both functions route unmatched input to <Name>_UNKNOWN rather than
// failing, per §4.J.
func writeEnumSource(c *checkedWriter, opts Options, sf *model.StructFields) {
	ident := sanitizeIdent(sf.Name)
	c.ifdef(opts.EnumGuard)
	c.printf("int %s_from_str(const char *str, enum %s *out) {\n", ident, ident)
	c.raw("\tif (!str || !out) return EINVAL;\n")
	for _, m := range sf.EnumMembers {
		c.printf("\tif (strcmp(str, %q) == 0) { *out = %s; return 0; }\n", m.Name, enumMemberName(sf.Name, m.Name))
	}
	c.printf("\t*out = %s_UNKNOWN;\n", ident)
	c.raw("\treturn 0;\n")
	c.raw("}\n\n")

	c.printf("int %s_to_str(enum %s val, char **out) {\n", ident, ident)
	c.raw("\tif (!out) return EINVAL;\n")
	c.raw("\tswitch (val) {\n")
	for _, m := range sf.EnumMembers {
		c.printf("\tcase %s: *out = strdup(%q); break;\n", enumMemberName(sf.Name, m.Name), m.Name)
	}
	c.printf("\tdefault: *out = strdup(\"%s_UNKNOWN\"); break;\n", ident)
	c.raw("\t}\n")
	c.raw("\treturn *out ? 0 : ENOMEM;\n")
	c.raw("}\n\n")
	c.endif(opts.EnumGuard)
}
