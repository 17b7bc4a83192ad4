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

import "github.com/aichholzer/pulumi/go/common/util/contract"

// URN is a globally unique, hierarchical identifier for a resource within a deployment, of the shape
// prefix::prefix::qualifiedType::name.
type URN string

// ID is a provider-assigned identifier for a custom resource.
type ID string

// URNOutput is an Output known to carry a URN once resolved.
type URNOutput struct{ Output }

// IDOutput is an Output known to carry an ID once resolved.
type IDOutput struct{ Output }

// Resource is the common interface implemented by every resource handle: custom resources (backed by a live
// cloud object) and component resources (a logical grouping with no cloud object of its own) alike.
type Resource interface {
	Input
	URN() URNOutput
}

// CustomResource is a Resource additionally backed by a provider-assigned ID.
type CustomResource interface {
	Resource
	ID() IDOutput
}

// ProviderResource is a CustomResource that implements a resource provider; the package registry resolves
// "pulumi:providers:<pkg>" references against constructors that yield one of these.
type ProviderResource interface {
	CustomResource
}

// ResourceState is the common base embedded by both CustomResourceState and ComponentResourceState. It owns the
// placeholder outputs installed by property transfer and guards against redundant property installation
// (invariant I5: each placeholder is resolved exactly once; see transferProperties).
type ResourceState struct {
	urn     URNOutput
	outputs map[string]*OutputState
}

func (s *ResourceState) isInput() {}

// URN returns the resource's URN output, installed once at registration time.
func (s *ResourceState) URN() URNOutput {
	return s.urn
}

func (s *ResourceState) setURN(urn URN) {
	o, state := newOutputState()
	state.resolve(string(urn), true, false, nil)
	s.urn = URNOutput{o}
}

func (s *ResourceState) outputState(key string) (*OutputState, bool) {
	state, ok := s.outputs[key]
	return state, ok
}

func (s *ResourceState) addOutput(key string, state *OutputState) {
	if s.outputs == nil {
		s.outputs = make(map[string]*OutputState)
	}
	s.outputs[key] = state
}

// Output returns the named property installed by transferProperties, if any.
func (s *ResourceState) Output(key string) (Output, bool) {
	state, ok := s.outputs[key]
	if !ok {
		return Output{}, false
	}
	return Output{state: state}, true
}

// CustomResourceState is the base embedded by generated custom-resource types.
type CustomResourceState struct {
	ResourceState
	id IDOutput
}

// ID returns the resource's provider-assigned ID output.
func (s *CustomResourceState) ID() IDOutput {
	return s.id
}

func (s *CustomResourceState) setID(id ID) {
	o, state := newOutputState()
	state.resolve(string(id), true, false, nil)
	s.id = IDOutput{o}
}

// ComponentResourceState is the base embedded by generated component-resource types. Component resources never
// expand their children during marshaling (the sole cycle-breaker for cyclic component graphs); they are always
// serialized as their URN alone.
type ComponentResourceState struct {
	ResourceState
}

var (
	_ Resource       = (*CustomResourceState)(nil)
	_ CustomResource = (*CustomResourceState)(nil)
	_ Resource       = (*ComponentResourceState)(nil)
)

// NewCustomResourceState builds a CustomResourceState with its URN and ID already known, for use by tests and by
// constructors that do not go through full property transfer.
func NewCustomResourceState(urn URN, id ID) *CustomResourceState {
	s := &CustomResourceState{}
	s.setURN(urn)
	s.setID(id)
	return s
}

// NewComponentResourceState builds a ComponentResourceState with its URN already known.
func NewComponentResourceState(urn URN) *ComponentResourceState {
	s := &ComponentResourceState{}
	s.setURN(urn)
	return s
}

// mustAwaitString awaits o and asserts the result is a known, non-error string; used for URN/ID reads in the
// marshaler, where the resource graph guarantees these are always resolved before being read.
func mustAwaitString(o Output) string {
	value, known, _, err := o.state.await(backgroundCtx)
	contract.AssertNoErrorf(err, "awaiting resource identifier")
	if !known {
		return ""
	}
	s, _ := value.(string)
	return s
}
