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

// Package registry implements the Document Registry (§4.E): an ordered,
// base-URI-keyed map of loaded Specs, populated during load and consulted
// during reference resolution. A Registry outlives any single Spec it
// holds and is safe for concurrent registration/lookup, matching the
// locking discipline the teacher's Manager uses around its spec cache.
package registry

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"ccdd.dev/ccdd/internal/model"
)

// Registry is a concurrency-safe, insertion-ordered base_uri -> *Spec map.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	specs   map[string]*model.Spec
	digests map[string]string // base_uri -> sha256 digest of the registered document, for cache invalidation
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{specs: make(map[string]*model.Spec), digests: make(map[string]string)}
}

// BaseURI computes the base URI a Spec registers under: `$self` wins if
// present, else the retrieval (document) URI, else a synthetic uuid: URI
// minted for anonymous in-memory documents (e.g. schema fragments produced
// by the reverse C->JSON-Schema direction before they're written anywhere).
func BaseURI(s *model.Spec) string {
	if s.SelfURI != "" {
		return s.SelfURI
	}
	if s.DocumentURI != "" {
		return s.DocumentURI
	}
	return "urn:uuid:" + uuid.NewString()
}

// Register adds spec under its BaseURI. Registration is additive and
// idempotent: registering the same base URI again with byte-identical
// source replaces the existing entry in place without reordering it;
// registering it with different content updates the entry and its digest
// but likewise keeps its original position, so that resolution order
// (first-registered-wins for otherwise-ambiguous anchor lookups) stays
// stable across reloads. raw is the source document bytes, used only to
// detect whether this is truly a no-op re-registration.
func (r *Registry) Register(spec *model.Spec, raw []byte) string {
	uri := BaseURI(spec)
	spec.SelfURI = uri
	digest := fmt.Sprintf("%x", sha256.Sum256(raw))

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.specs[uri]; !exists {
		r.order = append(r.order, uri)
	}
	r.specs[uri] = spec
	r.digests[uri] = digest
	return uri
}

// Lookup returns the Spec registered under uri, or nil, false if absent.
func (r *Registry) Lookup(uri string) (*model.Spec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specs[uri]
	return s, ok
}

// Unchanged reports whether raw's digest matches the last-registered
// content for uri, letting a Loader skip re-parsing a document whose
// retrieval returned the same bytes as before (the registry's ETag-style
// caching, generalized from the teacher's Manager.GenerateSpec cache).
func (r *Registry) Unchanged(uri string, raw []byte) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	digest, ok := r.digests[uri]
	if !ok {
		return false
	}
	return digest == fmt.Sprintf("%x", sha256.Sum256(raw))
}

// All returns every registered Spec in registration order.
func (r *Registry) All() []*model.Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Spec, 0, len(r.order))
	for _, uri := range r.order {
		out = append(out, r.specs[uri])
	}
	return out
}

// Len reports the number of registered Specs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
