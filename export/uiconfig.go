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

package export

import "encoding/json"

// UIConfig carries the handful of fields a documentation-serving layer
// needs to point at a generated spec: where the spec document lives and
// where its UI should be mounted. No HTTP serving happens here (out of
// scope); this is the data shape a caller like cmd/to_docs_json's
// consumer wires into its own server.
type UIConfig struct {
	SpecPath string `json:"specPath"`
	UIPath   string `json:"uiPath"`
	Title    string `json:"title,omitempty"`
}

// MarshalJSON emits UIConfig's fields directly, for the per-operation
// snippet envelope to_docs_json builds around it.
func (c UIConfig) MarshalJSON() ([]byte, error) {
	type alias UIConfig
	return json.Marshal(alias(c))
}
