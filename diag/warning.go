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

// Package diag provides diagnostic types shared across the loader, resolver
// and writer: conditions that are silently normalized rather than treated
// as load failures are surfaced here instead, as values, never as errors.
package diag

import (
	"fmt"
	"strings"
)

// Warning represents an informational, non-fatal issue raised while
// loading, resolving or writing a spec.
//
// Warnings are ADVISORY ONLY and never abort the operation that raised
// them. Use errors (see package errcode) for conditions that must stop
// the pipeline.
type Warning interface {
	Code() WarningCode
	Path() string
	Message() string
	Category() WarningCategory
	String() string
}

// WarningCode identifies a specific warning type. Compare with the Warn*
// constants for type-safe checks.
type WarningCode string

func (c WarningCode) String() string { return string(c) }

// Category returns the code's category, derived from its name prefix.
func (c WarningCode) Category() WarningCategory {
	switch {
	case strings.HasPrefix(string(c), "NORMALIZED"):
		return CategoryNormalized
	case strings.HasPrefix(string(c), "DOWNLEVEL"):
		return CategoryDownlevel
	case strings.HasPrefix(string(c), "DEPRECATION"):
		return CategoryDeprecation
	default:
		return CategoryUnknown
	}
}

// Normalized Warnings (silently-corrected input, per spec invariants)
const (
	// WarnNormalizedReservedHeader indicates a reserved header parameter
	// (Accept, Content-Type, Authorization) was dropped on load.
	WarnNormalizedReservedHeader WarningCode = "NORMALIZED_RESERVED_HEADER"

	// WarnNormalizedContentTypeHeader indicates a response header named
	// Content-Type was dropped on load.
	WarnNormalizedContentTypeHeader WarningCode = "NORMALIZED_CONTENT_TYPE_HEADER"

	// WarnNormalizedDuplicateParameter indicates a path-level parameter was
	// shadowed by an operation-level parameter with the same {name,in}.
	WarnNormalizedDuplicateParameter WarningCode = "NORMALIZED_DUPLICATE_PARAMETER"
)

// Downlevel Warnings (3.2 -> 3.1 -> 3.0 feature losses on re-emission)
const (
	// WarnDownlevelWebhooks indicates webhooks were dropped (3.0 doesn't support them).
	WarnDownlevelWebhooks WarningCode = "DOWNLEVEL_WEBHOOKS"

	// WarnDownlevelInfoSummary indicates info.summary was dropped (3.0 doesn't support it).
	WarnDownlevelInfoSummary WarningCode = "DOWNLEVEL_INFO_SUMMARY"

	// WarnDownlevelLicenseIdentifier indicates license.identifier was dropped.
	WarnDownlevelLicenseIdentifier WarningCode = "DOWNLEVEL_LICENSE_IDENTIFIER"

	// WarnDownlevelMutualTLS indicates a mutualTLS security scheme was dropped.
	WarnDownlevelMutualTLS WarningCode = "DOWNLEVEL_MUTUAL_TLS"

	// WarnDownlevelDeviceAuthorization indicates a deviceAuthorization OAuth
	// flow (3.2) was dropped when re-emitting to an older target version.
	WarnDownlevelDeviceAuthorization WarningCode = "DOWNLEVEL_DEVICE_AUTHORIZATION"

	// WarnDownlevelConstToEnum indicates JSON Schema const was converted to a
	// single-member enum for a target that predates const support.
	WarnDownlevelConstToEnum WarningCode = "DOWNLEVEL_CONST_TO_ENUM"

	// WarnDownlevelConstToEnumConflict indicates const conflicted with an
	// existing enum during that conversion.
	WarnDownlevelConstToEnumConflict WarningCode = "DOWNLEVEL_CONST_TO_ENUM_CONFLICT"

	// WarnDownlevelPathItems indicates a path-item construct the target
	// cannot express: components.pathItems was dropped, a path item $ref
	// was left unexpanded for 3.0, or a QUERY operation was dropped.
	WarnDownlevelPathItems WarningCode = "DOWNLEVEL_PATH_ITEMS"

	// WarnDownlevelPatternProperties indicates patternProperties was dropped.
	WarnDownlevelPatternProperties WarningCode = "DOWNLEVEL_PATTERN_PROPERTIES"

	// WarnDownlevelUnevaluatedProperties indicates unevaluatedProperties was dropped.
	WarnDownlevelUnevaluatedProperties WarningCode = "DOWNLEVEL_UNEVALUATED_PROPERTIES"

	// WarnDownlevelContentEncoding indicates contentEncoding was dropped.
	WarnDownlevelContentEncoding WarningCode = "DOWNLEVEL_CONTENT_ENCODING"

	// WarnDownlevelContentMediaType indicates contentMediaType was dropped.
	WarnDownlevelContentMediaType WarningCode = "DOWNLEVEL_CONTENT_MEDIA_TYPE"

	// WarnDownlevelMultipleExamples indicates multiple examples were collapsed to one.
	WarnDownlevelMultipleExamples WarningCode = "DOWNLEVEL_MULTIPLE_EXAMPLES"
)

// Deprecation Warnings (using deprecated features)
const (
	// WarnDeprecationExampleSingular indicates use of the deprecated
	// singular `example` field alongside the `examples` map.
	WarnDeprecationExampleSingular WarningCode = "DEPRECATION_EXAMPLE_SINGULAR"
)

// WarningCategory groups related warning codes.
type WarningCategory string

const (
	CategoryUnknown WarningCategory = "unknown"

	// CategoryNormalized covers input silently corrected to satisfy a load
	// invariant; the loaded spec is valid, just not identical to the input.
	CategoryNormalized WarningCategory = "normalized"

	// CategoryDownlevel covers feature loss re-emitting to an older target version.
	CategoryDownlevel WarningCategory = "downlevel"

	// CategoryDeprecation covers deprecated feature usage.
	CategoryDeprecation WarningCategory = "deprecation"
)

func (c WarningCategory) String() string { return string(c) }

// Warnings is a collection of Warning with helper methods. Always
// informational; never breaks execution.
type Warnings []Warning

func (ws Warnings) Has(code WarningCode) bool {
	for _, w := range ws {
		if w.Code() == code {
			return true
		}
	}
	return false
}

func (ws Warnings) HasAny(codes ...WarningCode) bool {
	if len(codes) == 0 {
		return false
	}
	set := make(map[WarningCode]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	for _, w := range ws {
		if _, ok := set[w.Code()]; ok {
			return true
		}
	}
	return false
}

func (ws Warnings) HasCategory(cat WarningCategory) bool {
	for _, w := range ws {
		if w.Category() == cat {
			return true
		}
	}
	return false
}

func (ws Warnings) Filter(codes ...WarningCode) Warnings {
	if len(codes) == 0 {
		return nil
	}
	set := make(map[WarningCode]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	result := make(Warnings, 0, len(ws))
	for _, w := range ws {
		if _, ok := set[w.Code()]; ok {
			result = append(result, w)
		}
	}
	return result
}

func (ws Warnings) FilterCategory(cat WarningCategory) Warnings {
	result := make(Warnings, 0, len(ws))
	for _, w := range ws {
		if w.Category() == cat {
			result = append(result, w)
		}
	}
	return result
}

func (ws Warnings) Exclude(codes ...WarningCode) Warnings {
	if len(codes) == 0 {
		return ws
	}
	set := make(map[WarningCode]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	result := make(Warnings, 0, len(ws))
	for _, w := range ws {
		if _, ok := set[w.Code()]; !ok {
			result = append(result, w)
		}
	}
	return result
}

func (ws Warnings) Each(fn func(Warning)) {
	for _, w := range ws {
		fn(w)
	}
}

func (ws Warnings) Codes() []WarningCode {
	seen := make(map[WarningCode]struct{}, len(ws))
	codes := make([]WarningCode, 0, len(ws))
	for _, w := range ws {
		if _, ok := seen[w.Code()]; !ok {
			seen[w.Code()] = struct{}{}
			codes = append(codes, w.Code())
		}
	}
	return codes
}

func (ws Warnings) Counts() map[WarningCategory]int {
	counts := make(map[WarningCategory]int)
	for _, w := range ws {
		counts[w.Category()]++
	}
	return counts
}

func (ws Warnings) String() string {
	if len(ws) == 0 {
		return "no warnings"
	}
	var s strings.Builder
	fmt.Fprintf(&s, "%d warning(s):", len(ws))
	for i, w := range ws {
		fmt.Fprintf(&s, "\n  [%d] %s", i+1, w.String())
	}
	return s.String()
}

// warning is the concrete Warning implementation.
type warning struct {
	code    WarningCode
	path    string
	message string
}

func (w *warning) Code() WarningCode           { return w.code }
func (w *warning) Path() string                { return w.path }
func (w *warning) Message() string             { return w.message }
func (w *warning) Category() WarningCategory   { return w.code.Category() }
func (w *warning) String() string {
	return fmt.Sprintf("[%s] %s: %s", w.code.Category(), w.code, w.message)
}

// NewWarning creates a Warning. This is the primary way internal packages
// record diagnostics.
func NewWarning(code WarningCode, path, message string) Warning {
	return &warning{code: code, path: path, message: message}
}
