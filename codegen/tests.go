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

// WriteTests emits a generated C test suite exercising each struct's
// default/to_json/from_json/eq/cleanup round trip and each enum's
// from_str against an unknown value (asserting <Name>_UNKNOWN), the generated-test
// component spec.md §1 item (e) calls for. headerBasename is included
// verbatim (the schema2code output this suite is meant to compile
// against).
func WriteTests(spec *model.Spec, opts Options, headerBasename string, w io.Writer) error {
	l := lower(spec)
	c := &checkedWriter{w: w}

	c.printf("#include \"%s.h\"\n", headerBasename)
	c.raw("#include <assert.h>\n#include <stdio.h>\n#include <stdlib.h>\n\n")

	for _, name := range l.order {
		sf, ok := l.byName[name]
		if !ok {
			continue
		}
		switch {
		case sf.IsEnum:
			writeEnumTest(c, sf)
		case sf.IsUnion:
			// Unions have no _default/_eq; covered indirectly through
			// their owning struct's round trip, so no standalone test.
		default:
			writeStructTest(c, sf)
		}
	}

	c.raw("int main(void) {\n")
	for _, name := range l.order {
		sf, ok := l.byName[name]
		if !ok || sf.IsUnion {
			continue
		}
		ident := sanitizeIdent(sf.Name)
		if sf.IsEnum {
			c.printf("\ttest_%s_enum();\n", ident)
		} else {
			c.printf("\ttest_%s();\n", ident)
		}
	}
	c.raw("\tprintf(\"all tests passed\\n\");\n\treturn 0;\n}\n")

	return c.err
}

func writeStructTest(c *checkedWriter, sf *model.StructFields) {
	ident := sanitizeIdent(sf.Name)
	c.printf("static void test_%s(void) {\n", ident)
	c.printf("\tstruct %s a;\n", ident)
	c.printf("\t%s_default(&a);\n", ident)
	c.raw("\tchar *json = NULL;\n")
	c.printf("\tassert(%s_to_json(&a, &json) == 0);\n", ident)
	c.printf("\tstruct %s b;\n", ident)
	c.printf("\tassert(%s_from_json(json, &b) == 0);\n", ident)
	c.printf("\tassert(%s_eq(&a, &b));\n", ident)
	c.raw("\tfree(json);\n")
	c.printf("\t%s_cleanup(&a);\n", ident)
	c.printf("\t%s_cleanup(&b);\n", ident)
	c.raw("}\n\n")
}

func writeEnumTest(c *checkedWriter, sf *model.StructFields) {
	ident := sanitizeIdent(sf.Name)
	c.printf("static void test_%s_enum(void) {\n", ident)
	c.printf("\tenum %s v;\n", ident)
	c.printf("\tassert(%s_from_str(\"__not_a_real_value__\", &v) == 0);\n", ident)
	c.printf("\tassert(v == %s_UNKNOWN);\n", ident)
	c.raw("}\n\n")
}
