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

package urlenc

import "golang.org/x/net/idna"

// NormalizeHost punycode-normalizes a server URL hostname so that two
// servers entries differing only by Unicode representation of the same
// host (e.g. "café.example.com" vs its Punycode form) compare equal. Hosts
// that fail IDNA profile validation (template variables like "{env}.api.example.com")
// are returned unchanged — server URL hosts may be templated and are
// substituted before any network use, past the scope of this normalization.
func NormalizeHost(host string) string {
	out, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return host
	}
	return out
}
