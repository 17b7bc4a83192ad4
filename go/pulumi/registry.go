// Copyright 2016-2025, Pulumi Corporation.
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

package pulumi

import (
	"sync"

	"github.com/blang/semver"

	"github.com/aichholzer/pulumi/go/common/resource/plugin"
	"github.com/aichholzer/pulumi/go/common/util/logging"
)

// ResourceModule constructs resource handles for a single (package, module) pair encountered while resolving a
// resource reference during deserialization.
type ResourceModule interface {
	Construct(ctx *Context, name, typ, urn string) (Resource, error)
}

// ResourcePackage constructs provider resource handles for a single package encountered while resolving a
// "pulumi:providers:<pkg>" reference during deserialization.
type ResourcePackage interface {
	ConstructProvider(ctx *Context, name, typ, urn string) (ProviderResource, error)
}

type registryEntry[T any] struct {
	version *semver.Version
	value   T
}

// versionedRegistry maps string keys to a list of (version, value) entries, tolerating the same key being
// registered more than once (as happens when a package is pulled in by multiple transitive dependencies) and
// resolving lookups to the entry with the greatest version compatible with a requested floor. It is owned by a
// Context rather than kept as a package global so that multiple embedders can coexist and tests can reset it
// deterministically.
type versionedRegistry[T any] struct {
	mu      sync.Mutex
	entries map[string][]registryEntry[T]
}

func newVersionedRegistry[T any]() *versionedRegistry[T] {
	return &versionedRegistry[T]{entries: make(map[string][]registryEntry[T])}
}

// register appends entry under key unless an existing entry already has an equal version (nil treated as a
// wildcard equal to anything), in which case it is a no-op. Returns true if the entry was inserted.
func (r *versionedRegistry[T]) register(kindLabel, key string, version *semver.Version, value T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries[key] {
		if versionsEqual(e.version, version) {
			logging.V(5).Infof("skipping duplicate %s registration for %s@%s", kindLabel, key, versionString(version))
			return false
		}
	}
	r.entries[key] = append(r.entries[key], registryEntry[T]{version: version, value: value})
	logging.V(5).Infof("registered %s %s@%s", kindLabel, key, versionString(version))
	return true
}

// lookup returns the entry registered under key with the greatest version compatible with want (same major, at
// least as new in minor and patch); a nil version on either side is a wildcard. Ties break toward whichever
// entry was registered first.
func (r *versionedRegistry[T]) lookup(key string, want *semver.Version) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var best *registryEntry[T]
	for i := range r.entries[key] {
		e := &r.entries[key][i]
		if !versionCompatible(e.version, want) {
			continue
		}
		if best == nil || versionGreater(e.version, best.version) {
			best = e
		}
	}
	if best == nil {
		var zero T
		return zero, false
	}
	return best.value, true
}

func versionsEqual(a, b *semver.Version) bool {
	if a == nil || b == nil {
		return true
	}
	return a.EQ(*b)
}

func versionCompatible(existing, want *semver.Version) bool {
	if existing == nil {
		return true
	}
	return plugin.IsCompatibleVersion(*existing, want)
}

// versionGreater reports whether a ranks above b; entries without a version rank below any entry that has one.
func versionGreater(a, b *semver.Version) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.GT(*b)
}

func versionString(v *semver.Version) string {
	if v == nil {
		return "*"
	}
	return v.String()
}

// ParseVersion parses s as a semantic version, returning nil (a wildcard) for an empty string.
func ParseVersion(s string) (*semver.Version, error) {
	if s == "" {
		return nil, nil
	}
	v, err := semver.ParseTolerant(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
