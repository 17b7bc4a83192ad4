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
	"context"
	"sync"

	"github.com/aichholzer/pulumi/go/common/util/contract"
)

var backgroundCtx = context.Background()

// OutputState is a lazy value: a cluster of co-resolved futures (value, isKnown, isSecret, and the set of
// resources that contributed to the value) collapsed into a single future yielding the tuple, guarded by a
// channel rather than a condition variable so awaiting can be interrupted by context cancellation.
type OutputState struct {
	mu     sync.Mutex
	done   chan struct{}
	value  interface{}
	known  bool
	secret bool
	err    error
	deps   []Resource
}

// newOutput creates a new, unresolved OutputState with the given contributing resources.
func newOutput(deps ...Resource) *OutputState {
	return &OutputState{done: make(chan struct{}), deps: deps}
}

// resolve fulfills the output exactly once. A second call is a contract violation: every placeholder installed
// by property transfer must be resolved exactly once.
func (o *OutputState) resolve(value interface{}, known, secret bool, deps []Resource) {
	o.mu.Lock()
	defer o.mu.Unlock()
	select {
	case <-o.done:
		contract.Failf("output resolved more than once")
	default:
	}
	o.value, o.known, o.secret = value, known, secret
	if len(deps) > 0 {
		o.deps = append(o.deps, deps...)
	}
	close(o.done)
}

// reject fulfills the output with an error exactly once.
func (o *OutputState) reject(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	select {
	case <-o.done:
		contract.Failf("output resolved more than once")
	default:
	}
	o.err = err
	close(o.done)
}

// await blocks until the output is resolved or ctx is done, whichever comes first.
func (o *OutputState) await(ctx context.Context) (value interface{}, known, secret bool, err error) {
	select {
	case <-o.done:
		return o.value, o.known, o.secret, o.err
	case <-ctx.Done():
		return nil, false, false, ctx.Err()
	}
}

// Output is the public handle to a lazy value.
type Output struct {
	state *OutputState
}

func (Output) isInput() {}

// String renders a fixed placeholder rather than blocking to await the underlying value; stringifying a lazy
// value for diagnostics must never itself suspend or fail.
func (Output) String() string {
	return "Output<T>"
}

// State exposes the underlying OutputState to the marshaling core.
func (o Output) State() *OutputState {
	return o.state
}

// newOutputState is a convenience for constructing an Output directly from an OutputState, used by the
// marshaler and property transfer where the state must be built up before it is exposed.
func newOutputState(deps ...Resource) (Output, *OutputState) {
	state := newOutput(deps...)
	return Output{state: state}, state
}

// ToOutput wraps an already-known, non-secret value in a resolved Output.
func ToOutput(v interface{}) Output {
	o, state := newOutputState()
	state.resolve(v, true, false, nil)
	return o
}

// ToOutputWithContext is the context-aware form of ToOutput; the core's marshaler has no cancellation primitive
// of its own, so context is accepted for API symmetry with blocking awaits elsewhere.
func ToOutputWithContext(_ context.Context, v interface{}) Output {
	return ToOutput(v)
}

// ToSecret wraps an already-known value in a resolved, secret Output.
func ToSecret(v interface{}) Output {
	o, state := newOutputState()
	state.resolve(v, true, true, nil)
	return o
}

// UnsafeUnknownOutput returns an already-resolved Output whose value is not known, optionally carrying
// dependencies. It exists so the reverse marshaler can hand back "unknown, but still tracks these dependencies"
// without a resolved value.
func UnsafeUnknownOutput(deps []Resource) Output {
	o, state := newOutputState(deps...)
	state.resolve(nil, false, false, nil)
	return o
}

// OutputWithDependencies returns an Output that resolves to the same tuple as o, once o resolves, but with extra
// dependencies appended to its contributing-resource set.
func OutputWithDependencies(ctx context.Context, o Output, deps ...Resource) Output {
	result, state := newOutputState(append(append([]Resource{}, o.state.deps...), deps...)...)
	go func() {
		value, known, secret, err := o.state.await(ctx)
		if err != nil {
			state.reject(err)
			return
		}
		state.resolve(value, known, secret, nil)
	}()
	return result
}
