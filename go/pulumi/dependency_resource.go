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

// dependencyResource is a synthetic resource whose URN is known up front and whose only purpose is to carry a
// dependency edge; it is never registered with the engine. The reverse marshaler constructs one per URN listed
// in an output-value envelope's "dependencies" array.
type dependencyResource struct {
	ComponentResourceState
}

// newDependencyResource builds a dependency-only resource for the given URN.
func newDependencyResource(urn URN) Resource {
	r := &dependencyResource{}
	r.setURN(urn)
	return r
}

// newDependencyResources builds one dependency-only resource per URN, skipping duplicates.
func newDependencyResources(urns []URN) []Resource {
	seen := make(map[URN]struct{}, len(urns))
	result := make([]Resource, 0, len(urns))
	for _, u := range urns {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		result = append(result, newDependencyResource(u))
	}
	return result
}
