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

package cmdutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalJSON = `{"openapi":"3.2.0","info":{"title":"Pets API","version":"1.0.0"}}`

const minimalYAML = "openapi: \"3.2.0\"\ninfo:\n  title: Pets API\n  version: 1.0.0\n"

func TestReadDocument_JSONPassesThrough(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "spec.json")
	require.NoError(t, os.WriteFile(path, []byte(minimalJSON), 0o644))

	data, err := ReadDocument(path)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "3.2.0", m["openapi"])
}

func TestReadDocument_YAMLConvertedToJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	data, err := ReadDocument(path)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "3.2.0", m["openapi"])
	info, ok := m["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pets API", info["title"])
}

func TestLoadSpec_JSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "spec.json")
	require.NoError(t, os.WriteFile(path, []byte(minimalJSON), 0o644))

	spec, err := LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "Pets API", spec.Info.Title)
	assert.Equal(t, "1.0.0", spec.Info.Version)
}

func TestLoadSpec_InvalidDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "spec.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"openapi":"3.2.0"}`), 0o644))

	_, err := LoadSpec(path)
	assert.Error(t, err)
}
