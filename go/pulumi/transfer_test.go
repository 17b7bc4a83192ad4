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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestTransferPropertiesRefusesDuplicateKey(t *testing.T) {
	t.Parallel()

	target := &ResourceState{}
	target.addOutput("name", newOutput())

	_, err := transferProperties(target, "pkg:mod:Type(r)", map[string]interface{}{"name": "x"})
	require.Error(t, err)
	assert.IsType(t, &PropertyConflictError{}, err)
}

func TestTransferPropertiesSkipsIDAndURN(t *testing.T) {
	t.Parallel()

	target := &ResourceState{}
	resolvers, err := transferProperties(target, "pkg:mod:Type(r)", map[string]interface{}{
		"id": "i", "urn": "u", "name": "n",
	})
	require.NoError(t, err)
	assert.Len(t, resolvers, 1)
	_, ok := resolvers["name"]
	assert.True(t, ok)
}

func TestResolverDropsGRPCErrorsAndRejectsOthers(t *testing.T) {
	t.Parallel()

	target := &ResourceState{}
	resolvers, err := transferProperties(target, "pkg:mod:Type(r)", map[string]interface{}{"a": "x", "b": "y"})
	require.NoError(t, err)

	resolvers["a"](nil, true, false, nil, status.Error(codes.Unavailable, "down"))
	stateA, _ := target.outputState("a")
	shortCtx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, _, _, errA := stateA.await(shortCtx)
	assert.ErrorIs(t, errA, context.DeadlineExceeded, "gRPC errors leave the placeholder unresolved, not rejected")

	boom := errors.New("boom")
	resolvers["b"](nil, true, false, nil, boom)
	stateB, _ := target.outputState("b")
	_, _, _, errB := stateB.await(backgroundCtx)
	assert.Same(t, boom, errB)
}

func TestResolvePropertiesRejectsAllOnRPCError(t *testing.T) {
	t.Parallel()

	target := &ResourceState{}
	resolvers, err := transferProperties(target, "pkg:mod:Type(r)", map[string]interface{}{"a": "x"})
	require.NoError(t, err)

	rpcErr := errors.New("call failed")
	err = resolveProperties(target, resolvers, "pkg:mod:Type", "r", nil, nil, rpcErr, false, false)
	require.NoError(t, err)

	state, _ := target.outputState("a")
	_, _, _, gotErr := state.await(backgroundCtx)
	assert.Same(t, rpcErr, gotErr)
}

func TestResolvePropertiesMatchesKeysAndLeavesUnmatchedUnknown(t *testing.T) {
	t.Parallel()

	target := &ResourceState{}
	resolvers, err := transferProperties(target, "pkg:mod:Type(r)", map[string]interface{}{"a": "x", "b": "y"})
	require.NoError(t, err)

	allProps := map[string]ResolvedProperty{"a": {Value: "resolved", Secret: true}}
	err = resolveProperties(target, resolvers, "pkg:mod:Type", "r", allProps, nil, nil, false, false)
	require.NoError(t, err)

	stateA, _ := target.outputState("a")
	valueA, knownA, secretA, errA := stateA.await(backgroundCtx)
	require.NoError(t, errA)
	assert.True(t, knownA)
	assert.True(t, secretA)
	assert.Equal(t, "resolved", valueA)

	stateB, _ := target.outputState("b")
	valueB, knownB, _, errB := stateB.await(backgroundCtx)
	require.NoError(t, errB)
	assert.True(t, knownB, "an update that omits a previously installed property resolves it to a known null")
	assert.Nil(t, valueB)
}

func TestResolvePropertiesUnmatchedKeepsUnknownSentinelWhenRequested(t *testing.T) {
	t.Parallel()

	target := &ResourceState{}
	resolvers, err := transferProperties(target, "pkg:mod:Type(r)", map[string]interface{}{"a": "x"})
	require.NoError(t, err)

	err = resolveProperties(target, resolvers, "pkg:mod:Type", "r", nil, nil, nil, false, true)
	require.NoError(t, err)

	state, _ := target.outputState("a")
	value, known, _, errA := state.await(backgroundCtx)
	require.NoError(t, errA)
	assert.True(t, known)
	assert.Same(t, Unknown, value)
}

func TestResolvePropertiesUnmatchedIsUnknownDuringPreview(t *testing.T) {
	t.Parallel()

	target := &ResourceState{}
	resolvers, err := transferProperties(target, "pkg:mod:Type(r)", map[string]interface{}{"a": "x"})
	require.NoError(t, err)

	err = resolveProperties(target, resolvers, "pkg:mod:Type", "r", nil, nil, nil, true, false)
	require.NoError(t, err)

	state, _ := target.outputState("a")
	value, known, _, errA := state.await(backgroundCtx)
	require.NoError(t, errA)
	assert.False(t, known)
	assert.Nil(t, value)
}

func TestResolvePropertiesWrapsPanicInResolverFailedError(t *testing.T) {
	t.Parallel()

	target := &ResourceState{}
	target.addOutput("a", newOutput())
	panicking := map[string]resolver{
		"a": func(value interface{}, known, secret bool, deps []Resource, err error) {
			panic("boom")
		},
	}

	allProps := map[string]ResolvedProperty{"a": {Value: "x"}}
	err := resolveProperties(target, panicking, "pkg:mod:Type", "r", allProps, nil, nil, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
