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
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/aichholzer/pulumi/go/common/util/logging"
)

// resolver is the closure installed by transferProperties for a single property: the RPC response handler calls
// it at most once with either a value or an error.
type resolver func(value interface{}, known, secret bool, deps []Resource, err error)

// transferProperties installs one unresolved placeholder Output per input key (other than "id" and "urn") on
// target, and returns a resolver closure for each. It refuses to overwrite a property the target already owns.
func transferProperties(target *ResourceState, label string, inputs map[string]interface{}) (map[string]resolver, error) {
	resolvers := make(map[string]resolver, len(inputs))
	for key := range inputs {
		if key == "id" || key == "urn" {
			continue
		}
		if _, exists := target.outputState(key); exists {
			return nil, &PropertyConflictError{Resource: label, Property: key}
		}

		state := newOutput()
		target.addOutput(key, state)

		k := key
		resolvers[k] = func(value interface{}, known, secret bool, deps []Resource, err error) {
			if err != nil {
				if isGRPCError(err) {
					logging.V(7).Infof("dropping resolution of %s.%s: transport error %v", label, k, err)
					return
				}
				state.reject(err)
				return
			}
			state.resolve(value, known, secret, deps)
		}
	}
	return resolvers, nil
}

// ResolvedProperty is a single property value returned by the engine for resolveProperties to distribute to the
// matching resolver.
type ResolvedProperty struct {
	Value  interface{}
	Secret bool
}

// resolveProperties drives every resolver in resolvers to completion from an engine response: allProps carries
// the engine's returned properties (secret envelopes already unwrapped into ResolvedProperty.Secret), deps
// carries the per-property dependency URNs, already resolved into Resource handles. If rpcErr is set, every
// resolver is rejected with it. A resolver with no matching key present in allProps resolves according to
// keepUnknowns and dryRun, exactly as spec'd for an engine response that omits a previously-installed property.
func resolveProperties(
	target *ResourceState,
	resolvers map[string]resolver,
	typ, name string,
	allProps map[string]ResolvedProperty,
	deps map[string][]Resource,
	rpcErr error,
	dryRun, keepUnknowns bool,
) error {
	if rpcErr != nil {
		for _, r := range resolvers {
			r(nil, true, false, nil, rpcErr)
		}
		return nil
	}

	var errs *multierror.Error
	seen := make(map[string]bool, len(allProps))
	for key, rp := range allProps {
		if key == "id" || key == "urn" {
			continue
		}
		r, ok := resolvers[key]
		if !ok {
			continue
		}
		seen[key] = true
		if err := invokeResolver(r, rp.Value, true, rp.Secret, deps[key], typ, name, key); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	for key, r := range resolvers {
		if seen[key] {
			continue
		}
		if !dryRun && keepUnknowns {
			r(Unknown, true, false, nil, nil)
		} else {
			r(nil, !dryRun && !keepUnknowns, false, nil, nil)
		}
	}
	return errs.ErrorOrNil()
}

// invokeResolver calls r, converting any panic (standing in for "any exception thrown by the resolver") into a
// ResolverFailedError naming the owning resource and property.
func invokeResolver(r resolver, value interface{}, known, secret bool, deps []Resource, typ, name, key string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &ResolverFailedError{
				Resource: fmt.Sprintf("%s(%s)", typ, name),
				Property: key,
				Cause:    errors.Errorf("%v", p),
			}
		}
	}()
	r(value, known, secret, deps, nil)
	return nil
}
