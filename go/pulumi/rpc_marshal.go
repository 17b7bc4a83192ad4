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
	"sort"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/aichholzer/pulumi/go/common/resource/asset"
	"github.com/aichholzer/pulumi/go/common/util/contract"
	"github.com/aichholzer/pulumi/go/common/util/logging"
)

// MarshalOptions controls the handful of encoding decisions the forward marshaler must feature-negotiate.
type MarshalOptions struct {
	// KeepOutputValues, if true and the peer advertises output-value support, causes lazy values to be emitted
	// as output-value envelopes (preserving known/secret/deps on the wire) instead of collapsing to their
	// resolved value or the unknown marker.
	KeepOutputValues bool
	// ExcludeResourceReferencesFromDependencies, if true and the peer supports resource references, causes a
	// resource reference to not contribute its target to the collected dependency set.
	ExcludeResourceReferencesFromDependencies bool
}

// dependencySet accumulates the resources contributing to a marshaled value, as a side output of marshaling.
type dependencySet map[URN]Resource

func (d dependencySet) add(r Resource) {
	if d == nil {
		return
	}
	d[URN(mustAwaitString(r.URN().Output))] = r
}

func (d dependencySet) union(other dependencySet) {
	if d == nil {
		return
	}
	for k, v := range other {
		d[k] = v
	}
}

func (d dependencySet) urns() []URN {
	urns := make([]URN, 0, len(d))
	for u := range d {
		urns = append(urns, u)
	}
	sort.Slice(urns, func(i, j int) bool { return urns[i] < urns[j] })
	return urns
}

// MarshalPropertyValue recursively serializes an Input tree into its wire representation. deps, if non-nil, is an
// output parameter: every resource contributing to the value is added to it. label is a human-readable path used
// only for diagnostics.
func MarshalPropertyValue(ctx *Context, label string, v interface{}, deps dependencySet, opts MarshalOptions) (*structpb.Value, error) {
	logging.V(9).Infof("marshaling property for RPC: %s=%v", label, v)

	switch t := v.(type) {
	case nil:
		return structpb.NewNullValue(), nil
	case *unknownType:
		return marshalUnknown(), nil
	case String:
		return structpb.NewStringValue(string(t)), nil
	case Bool:
		return structpb.NewBoolValue(bool(t)), nil
	case Float64:
		return structpb.NewNumberValue(float64(t)), nil
	case string:
		return structpb.NewStringValue(t), nil
	case bool:
		return structpb.NewBoolValue(t), nil
	case float64:
		return structpb.NewNumberValue(t), nil
	case AssetInput:
		return marshalAssetInput(t), nil
	case ArchiveInput:
		return marshalArchiveInput(t), nil
	case Output:
		return marshalOutput(ctx, label, t, deps, opts)
	case Array:
		elems := make([]*structpb.Value, len(t))
		for i, elem := range t {
			ev, err := MarshalPropertyValue(ctx, elemLabel(label, i), elem, deps, withoutOutputValues(opts))
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return structpb.NewListValue(&structpb.ListValue{Values: elems}), nil
	case Map:
		return marshalMap(ctx, label, t, deps, withoutOutputValues(opts))
	}

	if res, ok := v.(Resource); ok {
		return marshalResourceReference(ctx, res, deps, opts)
	}

	contract.Failf("unrecognized property value %v of type %T at %s", v, v, label)
	return nil, nil
}

func withoutOutputValues(opts MarshalOptions) MarshalOptions {
	opts.KeepOutputValues = false
	return opts
}

func elemLabel(label string, i int) string {
	return label + "[" + strconv.Itoa(i) + "]"
}

func marshalMap(ctx *Context, label string, m Map, deps dependencySet, opts MarshalOptions) (*structpb.Value, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(map[string]*structpb.Value, len(keys))
	for _, k := range keys {
		fv, err := MarshalPropertyValue(ctx, label+"."+k, m[k], deps, opts)
		if err != nil {
			return nil, err
		}
		fields[k] = fv
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
}

func marshalAssetInput(a AssetInput) *structpb.Value {
	fields := map[string]*structpb.Value{}
	switch {
	case a.Asset.IsPath():
		fields["path"] = structpb.NewStringValue(a.Asset.Path)
	case a.Asset.IsText():
		fields["text"] = structpb.NewStringValue(a.Asset.Text)
	case a.Asset.IsURI():
		fields["uri"] = structpb.NewStringValue(a.Asset.URI)
	}
	return taggedStruct(assetSig, fields)
}

func marshalArchiveInput(a ArchiveInput) *structpb.Value {
	fields := map[string]*structpb.Value{}
	switch {
	case a.Archive.IsAssets():
		nested := make(map[string]*structpb.Value, len(a.Archive.Assets))
		for name, v := range a.Archive.Assets {
			switch t := v.(type) {
			case *asset.Asset:
				nested[name] = marshalAssetInput(AssetInput{Asset: t})
			case *asset.Archive:
				nested[name] = marshalArchiveInput(ArchiveInput{Archive: t})
			}
		}
		fields["assets"] = structpb.NewStructValue(&structpb.Struct{Fields: nested})
	case a.Archive.IsPath():
		fields["path"] = structpb.NewStringValue(a.Archive.Path)
	case a.Archive.IsURI():
		fields["uri"] = structpb.NewStringValue(a.Archive.URI)
	}
	return taggedStruct(archiveSig, fields)
}

// marshalOutput implements the LazyValue branch of the forward marshaler (spec §4.2 rule 4): collect
// contributing resources, await known/secret, and encode according to feature negotiation.
func marshalOutput(ctx *Context, label string, o Output, deps dependencySet, opts MarshalOptions) (*structpb.Value, error) {
	value, known, secret, err := o.state.await(backgroundCtx)
	if err != nil {
		return nil, err
	}

	local := dependencySet{}
	for _, r := range o.state.deps {
		local.add(r)
	}

	if opts.KeepOutputValues && ctx.SupportsOutputValues() {
		fields := map[string]*structpb.Value{}
		if known {
			inner, err := MarshalPropertyValue(ctx, label, value, local, withoutOutputValues(opts))
			if err != nil {
				return nil, err
			}
			fields["value"] = inner
		}
		if secret {
			fields["secret"] = structpb.NewBoolValue(true)
		}
		deps.union(local)
		transitive := transitiveURNs(local)
		if len(transitive) > 0 {
			urnValues := make([]*structpb.Value, len(transitive))
			for i, u := range transitive {
				urnValues[i] = structpb.NewStringValue(string(u))
			}
			fields["dependencies"] = structpb.NewListValue(&structpb.ListValue{Values: urnValues})
		}
		return taggedStruct(outputValueSig, fields), nil
	}

	if !known {
		deps.union(local)
		return marshalUnknown(), nil
	}

	inner, err := MarshalPropertyValue(ctx, label, value, local, withoutOutputValues(opts))
	if err != nil {
		return nil, err
	}
	deps.union(local)
	if secret && ctx.SupportsSecrets() {
		return taggedStruct(secretSig, map[string]*structpb.Value{"value": inner}), nil
	}
	return inner, nil
}

// transitiveURNs computes the set of URNs reachable from the given resources. Component children are never
// walked (rule 4.2(7) is the sole cycle breaker), so this degenerates to each resource's own URN.
func transitiveURNs(resources dependencySet) []URN {
	return resources.urns()
}

func marshalResourceReference(ctx *Context, res Resource, deps dependencySet, opts MarshalOptions) (*structpb.Value, error) {
	suppressDep := opts.ExcludeResourceReferencesFromDependencies && ctx.SupportsResourceReferences()
	if !suppressDep {
		deps.add(res)
	}

	urn := mustAwaitString(res.URN().Output)

	if custom, ok := res.(CustomResource); ok {
		idv, err := MarshalPropertyValue(ctx, "id", custom.ID().Output, nil, withoutOutputValues(opts))
		if err != nil {
			return nil, err
		}
		if ctx.SupportsResourceReferences() {
			return taggedStruct(resourceRefSig, map[string]*structpb.Value{
				"urn": structpb.NewStringValue(urn),
				"id":  idv,
			}), nil
		}
		return idv, nil
	}

	if ctx.SupportsResourceReferences() {
		return taggedStruct(resourceRefSig, map[string]*structpb.Value{"urn": structpb.NewStringValue(urn)}), nil
	}
	return structpb.NewStringValue(urn), nil
}
