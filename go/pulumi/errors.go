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
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aichholzer/pulumi/go/common/util/logging"
)

// PropertyConflictError is raised by transferProperties when a resource already owns a property of the name
// being installed.
type PropertyConflictError struct {
	Resource string
	Property string
}

func (e *PropertyConflictError) Error() string {
	return fmt.Sprintf("%s already has a property named %q", e.Resource, e.Property)
}

// MalformedWireError is raised by the reverse marshaler when it encounters a wire value that violates the
// protocol: a nil value, an asset/archive envelope missing every variant key, or an archive child that is
// neither an asset nor an archive.
type MalformedWireError struct {
	Reason string
}

func (e *MalformedWireError) Error() string {
	return "malformed wire value: " + e.Reason
}

// UnknownSignatureError is raised by the reverse marshaler when a tagged object carries a signature this SDK
// does not recognize.
type UnknownSignatureError struct {
	Signature string
}

func (e *UnknownSignatureError) Error() string {
	return fmt.Sprintf("unrecognized signature %q", e.Signature)
}

// ResolverFailedError wraps a panic recovered from a property resolver installed by transferProperties, adding
// the owning resource's type, name, and property for diagnosis.
type ResolverFailedError struct {
	Resource string
	Property string
	Cause    error
}

func (e *ResolverFailedError) Error() string {
	return fmt.Sprintf("resolving %s on %s: %v", e.Property, e.Resource, e.Cause)
}

func (e *ResolverFailedError) Unwrap() error {
	return e.Cause
}

// isGRPCError classifies err as one raised by the gRPC transport, as opposed to an application-level failure.
// transferProperties' resolvers drop these silently (the surrounding RPC call is expected to report the same
// failure on its own future); anything else is a real fault and must propagate.
func isGRPCError(err error) bool {
	if err == nil {
		return false
	}
	if err == context.Canceled || err == context.DeadlineExceeded {
		return true
	}
	_, ok := status.FromError(err)
	return ok && status.Code(err) != codes.Unknown
}

// UnhandledErrorHandler is invoked by WatchForUnhandledRejection when an Output resolves to a non-gRPC error
// that nothing else observed. Tests may replace it to capture the error instead of the default, which panics --
// mirroring the "unhandled rejection" signal this guards against.
var UnhandledErrorHandler = func(err error) {
	panic(err)
}

// WatchForUnhandledRejection attaches a background observer to o that consumes the rejection only if it is a
// recognized gRPC error; any other error is re-raised via UnhandledErrorHandler, so a fault that nothing else
// observes is never silently dropped. The passed-in Output is unaffected: downstream consumers still observe
// the original rejection through it.
func WatchForUnhandledRejection(o Output) {
	go func() {
		_, _, _, err := o.state.await(backgroundCtx)
		if err == nil {
			return
		}
		if isGRPCError(err) {
			logging.V(7).Infof("dropping transport error from unhandled-rejection watch: %v", err)
			return
		}
		logging.Warningf("unhandled rejection: %v", err)
		UnhandledErrorHandler(err)
	}()
}
