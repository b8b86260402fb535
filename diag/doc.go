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

/*
Package diag provides the warning types and codes shared by the loader
and the writer.

Warnings are informational, non-fatal issues: input that was silently
normalized while loading, or constructs dropped or rewritten while writing
a spec for an older OpenAPI version.

# Basic Usage

The loader (internal/loader) collects warnings during Load and returns
them from Loader.Warnings. export.Write and export.WriteYAML return the
warnings recorded while downleveling alongside the encoded document:

	data, warnings, err := export.Write(spec, export.Target30)
	if err == nil && len(warnings) > 0 {
	    fmt.Printf("written with %d warnings\n", len(warnings))
	}

# Type-Safe Warning Checks

Compare against the Warn* codes of this package:

	if warnings.Has(diag.WarnDownlevelWebhooks) {
	    log.Println("webhooks were dropped for OpenAPI 3.0")
	}

	// Filter by category
	downlevelWarnings := warnings.FilterCategory(diag.CategoryDownlevel)

# Warning Categories

Warnings are grouped into categories by their code's name prefix:

  - CategoryNormalized: input silently corrected while loading
  - CategoryDownlevel: features lost when writing 3.2 → 3.1 → 3.0
  - CategoryDeprecation: use of deprecated OpenAPI features

A code with none of these prefixes reports CategoryUnknown.

Validation issues are ERRORS (see package errcode), not warnings.
*/
package diag
