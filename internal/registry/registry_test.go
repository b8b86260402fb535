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

package registry

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccdd.dev/ccdd/internal/model"
)

func TestBaseURI(t *testing.T) {
	t.Parallel()

	t.Run("prefers self URI", func(t *testing.T) {
		t.Parallel()
		s := &model.Spec{SelfURI: "https://example.com/self.json", DocumentURI: "https://example.com/doc.json"}
		assert.Equal(t, "https://example.com/self.json", BaseURI(s))
	})

	t.Run("falls back to document URI", func(t *testing.T) {
		t.Parallel()
		s := &model.Spec{DocumentURI: "https://example.com/doc.json"}
		assert.Equal(t, "https://example.com/doc.json", BaseURI(s))
	})

	t.Run("mints a synthetic uuid URI when both are empty", func(t *testing.T) {
		t.Parallel()
		s := &model.Spec{}
		uri := BaseURI(s)
		assert.True(t, strings.HasPrefix(uri, "urn:uuid:"))
	})
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := New()
	spec := &model.Spec{SelfURI: "https://example.com/a.json"}

	uri := r.Register(spec, []byte(`{"a":1}`))
	assert.Equal(t, "https://example.com/a.json", uri)
	assert.Equal(t, uri, spec.SelfURI)

	got, ok := r.Lookup(uri)
	require.True(t, ok)
	assert.Same(t, spec, got)

	_, ok = r.Lookup("https://example.com/missing.json")
	assert.False(t, ok)

	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RegisterPreservesOrderOnReRegistration(t *testing.T) {
	t.Parallel()

	r := New()
	first := &model.Spec{SelfURI: "https://example.com/first.json"}
	second := &model.Spec{SelfURI: "https://example.com/second.json"}

	r.Register(first, []byte("v1"))
	r.Register(second, []byte("v1"))
	// Re-register "first" with different content: position must not move.
	updated := &model.Spec{SelfURI: "https://example.com/first.json"}
	r.Register(updated, []byte("v2"))

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "https://example.com/first.json", all[0].SelfURI)
	assert.Same(t, updated, all[0])
	assert.Equal(t, "https://example.com/second.json", all[1].SelfURI)
}

func TestRegistry_Unchanged(t *testing.T) {
	t.Parallel()

	r := New()
	spec := &model.Spec{SelfURI: "https://example.com/a.json"}
	uri := r.Register(spec, []byte(`{"a":1}`))

	assert.True(t, r.Unchanged(uri, []byte(`{"a":1}`)))
	assert.False(t, r.Unchanged(uri, []byte(`{"a":2}`)))
	assert.False(t, r.Unchanged("https://example.com/unknown.json", []byte(`{"a":1}`)))
}

func TestRegistry_ConcurrentRegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			uri := "https://example.com/" + string(rune('a'+i%26)) + ".json"
			spec := &model.Spec{SelfURI: uri}
			r.Register(spec, []byte{byte(i)})
			r.Lookup(uri)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, r.Len(), 26)
}
