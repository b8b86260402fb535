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

// writeForwardDecls implements §4.J Pass 1: a `struct <Name>;` for every
// schema that will materialize as a struct or union, letting cyclic
// references (A->B, B->A) compile with no ordering requirement on the
// input schemas. Enums need no forward declaration since C never
// resolves an enum through a pointer indirection in this emitter's
// output.
func writeForwardDecls(h *checkedWriter, l *lowered) {
	any := false
	for _, name := range l.order {
		sf, ok := l.byName[name]
		if !ok || sf.IsEnum {
			continue
		}
		if !any {
			h.raw("/* Forward declarations: permits arbitrary reference cycles. */\n")
			any = true
		}
		h.printf("struct %s;\n", sanitizeIdent(name))
	}
	if any {
		h.raw("\n")
	}
}
