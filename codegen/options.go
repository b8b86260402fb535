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

// Package codegen implements the Code Emitter (§4.J): a two-pass walk over
// a loaded model.Spec's component schemas that produces a C header and a
// matching C source file. Pass 1 forward-declares every struct/union so
// schemas may reference each other in cycles with no ordering requirement;
// Pass 2 emits full definitions in a deterministic name order.
//
// Grounded on the teacher's internal/build traversal/naming conventions
// (operation-ID synthesis, deterministic sort-before-emit), repurposed
// here for C struct/enum/union names instead of Go identifiers, and on
// errcode's POSIX-code convention for the generated lifecycle functions'
// return values.
package codegen

import "fmt"

// Options configures one Emit call.
type Options struct {
	// Basename is the emitted files' base name: "<Basename>.h"/".c", and
	// the prefix included in include-guard and CMake target names.
	Basename string

	// EnumGuard, JSONGuard, UtilsGuard, when non-empty, wrap the
	// corresponding generated block in #ifdef <guard> ... #endif, so a
	// consumer can compile only the subset of generated functionality it
	// links against (e.g. omit the JSON layer if only struct definitions
	// are needed).
	EnumGuard  string
	JSONGuard  string
	UtilsGuard string
}

func (o Options) headerGuard() string {
	return fmt.Sprintf("%s_H", upperSnake(o.Basename))
}
