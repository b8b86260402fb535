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
	"strconv"

	"ccdd.dev/ccdd/internal/model"
)

// writeFieldValidation emits the constraint checks §4.J inlines into
// _from_jsonObject for one field, each calling the owning struct's
// _cleanup and returning on violation: numeric/length/items constraints
// return ERANGE, pattern mismatches return EINVAL. structIdent is the
// owning struct's C name, used to call its own _cleanup before returning.
func writeFieldValidation(c *checkedWriter, structIdent string, f model.Field) {
	expr := "out->" + f.Name
	if f.Min != nil {
		op := ">="
		if f.Min.Exclusive {
			op = ">"
		}
		c.printf("\tif (!(%s %s %s)) { %s_cleanup(out); return ERANGE; }\n",
			expr, op, formatFloat(f.Min.Value), structIdent)
	}
	if f.Max != nil {
		op := "<="
		if f.Max.Exclusive {
			op = "<"
		}
		c.printf("\tif (!(%s %s %s)) { %s_cleanup(out); return ERANGE; }\n",
			expr, op, formatFloat(f.Max.Value), structIdent)
	}
	if f.MinLen != nil {
		c.printf("\tif (%s && strlen(%s) < %d) { %s_cleanup(out); return ERANGE; }\n",
			expr, expr, *f.MinLen, structIdent)
	}
	if f.MaxLen != nil {
		c.printf("\tif (%s && strlen(%s) > %d) { %s_cleanup(out); return ERANGE; }\n",
			expr, expr, *f.MaxLen, structIdent)
	}
	if f.MinItems != nil {
		c.printf("\tif (out->n_%s < %d) { %s_cleanup(out); return ERANGE; }\n",
			f.Name, *f.MinItems, structIdent)
	}
	if f.MaxItems != nil {
		c.printf("\tif (out->n_%s > %d) { %s_cleanup(out); return ERANGE; }\n",
			f.Name, *f.MaxItems, structIdent)
	}
	if f.Pattern != "" {
		c.printf("\tif (%s && !(%s)) { %s_cleanup(out); return EINVAL; }\n",
			expr, patternCheck(expr, f.Pattern), structIdent)
	}
}

func formatFloat(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
