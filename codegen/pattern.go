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
	"strings"
)

// patternCheck compiles the common anchored-literal pattern subset
// (§4.J: "patterns matching ^literal, literal$, ^literal$, or bare
// literal compile to strncmp/strcmp/strstr") down to a C boolean
// expression testing whether val matches pattern. Any other pattern
// falls back to a runtime regex compile, delegated to the host's
// <regex.h> (POSIX extended regex), since this subset compiler makes no
// attempt to translate general regex syntax to C.
func patternCheck(val, pattern string) string {
	anchoredStart := strings.HasPrefix(pattern, "^")
	anchoredEnd := strings.HasSuffix(pattern, "$")
	lit := strings.TrimSuffix(strings.TrimPrefix(pattern, "^"), "$")
	if anchoredEnd {
		lit = strings.TrimSuffix(strings.TrimPrefix(pattern, "^"), "$")
	}
	if (anchoredStart || anchoredEnd) && !isLiteralPattern(lit) {
		return regexCheck(val, pattern)
	}

	switch {
	case anchoredStart && anchoredEnd:
		return "strcmp(" + val + ", " + quoteC(lit) + ") == 0"
	case anchoredStart:
		return "strncmp(" + val + ", " + quoteC(lit) + ", " + strconv.Itoa(len(lit)) + ") == 0"
	case anchoredEnd:
		return "ends_with(" + val + ", " + quoteC(lit) + ")"
	case isLiteralPattern(pattern):
		return "strstr(" + val + ", " + quoteC(pattern) + ") != NULL"
	default:
		return regexCheck(val, pattern)
	}
}

// isLiteralPattern reports whether pattern contains no regex
// metacharacters, i.e. it is a bare substring match.
func isLiteralPattern(pattern string) bool {
	return !strings.ContainsAny(pattern, `.*+?[](){}|\^$`)
}

// regexCheck emits a runtime POSIX regex match, the library-delegated
// fallback for any pattern this subset compiler doesn't recognize.
func regexCheck(val, pattern string) string {
	return "regex_match(" + val + ", " + quoteC(pattern) + ")"
}

func quoteC(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
