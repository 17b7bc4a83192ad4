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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputStateResolveOnce(t *testing.T) {
	t.Parallel()

	state := newOutput()
	state.resolve("hi", true, false, nil)

	value, known, secret, err := state.await(backgroundCtx)
	require.NoError(t, err)
	assert.Equal(t, "hi", value)
	assert.True(t, known)
	assert.False(t, secret)
}

func TestOutputStateResolveTwicePanics(t *testing.T) {
	t.Parallel()

	state := newOutput()
	state.resolve("hi", true, false, nil)
	assert.Panics(t, func() { state.resolve("again", true, false, nil) })
}

func TestOutputStateAwaitRespectsContextCancellation(t *testing.T) {
	t.Parallel()

	state := newOutput()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, _, err := state.await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestToSecretIsKnownAndSecret(t *testing.T) {
	t.Parallel()

	o := ToSecret("shh")
	value, known, secret, err := o.state.await(backgroundCtx)
	require.NoError(t, err)
	assert.Equal(t, "shh", value)
	assert.True(t, known)
	assert.True(t, secret)
}

func TestUnsafeUnknownOutputIsUnknown(t *testing.T) {
	t.Parallel()

	o := UnsafeUnknownOutput(nil)
	_, known, _, err := o.state.await(backgroundCtx)
	require.NoError(t, err)
	assert.False(t, known)
}

func TestOutputStringIsFixedPlaceholder(t *testing.T) {
	t.Parallel()

	pending := Output{state: newOutput()}
	assert.Equal(t, "Output<T>", pending.String())

	resolved := ToOutput(42)
	assert.Equal(t, "Output<T>", resolved.String())
}

func TestOutputWithDependenciesPreservesValue(t *testing.T) {
	t.Parallel()

	base := ToOutput("x")
	dep := NewComponentResourceState("urn:pulumi:stack::proj::pkg:mod:Type::dep")

	withDeps := OutputWithDependencies(backgroundCtx, base, dep)
	value, known, _, err := withDeps.state.await(backgroundCtx)
	require.NoError(t, err)
	assert.True(t, known)
	assert.Equal(t, "x", value)
	assert.Contains(t, withDeps.state.deps, Resource(dep))
}

func TestOutputStateRejectPropagatesError(t *testing.T) {
	t.Parallel()

	state := newOutput()
	boom := errors.New("boom")
	state.reject(boom)

	_, _, _, err := state.await(backgroundCtx)
	assert.Same(t, boom, err)
}
