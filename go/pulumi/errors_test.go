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

func TestIsGRPCErrorClassifiesTransportFailures(t *testing.T) {
	t.Parallel()

	assert.True(t, isGRPCError(context.Canceled))
	assert.True(t, isGRPCError(context.DeadlineExceeded))
	assert.True(t, isGRPCError(status.Error(codes.Unavailable, "down")))
	assert.False(t, isGRPCError(status.Error(codes.Unknown, "mystery")))
	assert.False(t, isGRPCError(errors.New("boom")))
	assert.False(t, isGRPCError(nil))
}

func TestWatchForUnhandledRejectionDropsGRPCErrors(t *testing.T) {
	orig := UnhandledErrorHandler
	defer func() { UnhandledErrorHandler = orig }()

	called := make(chan error, 1)
	UnhandledErrorHandler = func(err error) { called <- err }

	state := newOutput()
	WatchForUnhandledRejection(Output{state: state})
	state.reject(status.Error(codes.Unavailable, "down"))

	select {
	case <-called:
		t.Fatal("handler should not be invoked for a transport error")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchForUnhandledRejectionReraisesRealErrors(t *testing.T) {
	orig := UnhandledErrorHandler
	defer func() { UnhandledErrorHandler = orig }()

	called := make(chan error, 1)
	UnhandledErrorHandler = func(err error) { called <- err }

	state := newOutput()
	boom := errors.New("boom")
	WatchForUnhandledRejection(Output{state: state})
	state.reject(boom)

	select {
	case err := <-called:
		assert.Same(t, boom, err)
	case <-time.After(time.Second):
		t.Fatal("handler was never invoked")
	}
}

func TestResolverFailedErrorUnwraps(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := &ResolverFailedError{Resource: "pkg:mod:Type(name)", Property: "prop", Cause: cause}
	require.ErrorIs(t, err, cause)
}
