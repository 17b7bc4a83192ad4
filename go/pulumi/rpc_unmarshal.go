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
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/aichholzer/pulumi/go/common/resource/asset"
	"github.com/aichholzer/pulumi/go/common/util/logging"
)

// Secret is the generic secret envelope the reverse marshaler returns for a composite (array or object) value
// that contained a secret leaf somewhere within it: secret-ness is bubbled up to the outermost composite and the
// interior envelope is unwrapped (invariant I3).
type Secret struct {
	Element interface{}
}

// deserializeResult carries the tri-state a single wire value decodes to: a value, whether it is present at all
// (distinct from a present, explicit null), and whether it is secret.
type deserializeResult struct {
	value   interface{}
	present bool
	secret  bool
}

// DeserializeProperty reconstructs a rich value from a wire value. keepUnknowns controls whether the unknown
// marker decodes to the Unknown sentinel (true, or always during preview) or to an absent result (nil).
func DeserializeProperty(ctx *Context, v *structpb.Value) (interface{}, error) {
	r, err := deserializeProperty(ctx, v, false)
	if err != nil {
		return nil, err
	}
	return r.value, nil
}

// DeserializePropertyKeepingUnknowns is DeserializeProperty but always decodes the unknown marker to Unknown,
// regardless of dry-run state -- used by callers (such as provider Construct handlers) that must retain
// unknowns rather than let them collapse to absent.
func DeserializePropertyKeepingUnknowns(ctx *Context, v *structpb.Value) (interface{}, error) {
	r, err := deserializeProperty(ctx, v, true)
	if err != nil {
		return nil, err
	}
	return r.value, nil
}

func deserializeProperty(ctx *Context, v *structpb.Value, keepUnknowns bool) (deserializeResult, error) {
	if v == nil {
		return deserializeResult{}, &MalformedWireError{Reason: "wire value is nil"}
	}

	if isUnknownWireValue(v) {
		if ctx.DryRun() || keepUnknowns {
			return deserializeResult{value: Unknown, present: true}, nil
		}
		return deserializeResult{present: false}, nil
	}

	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return deserializeResult{value: nil, present: true}, nil
	case *structpb.Value_BoolValue:
		return deserializeResult{value: k.BoolValue, present: true}, nil
	case *structpb.Value_NumberValue:
		return deserializeResult{value: k.NumberValue, present: true}, nil
	case *structpb.Value_StringValue:
		return deserializeResult{value: k.StringValue, present: true}, nil
	case *structpb.Value_ListValue:
		return deserializeArray(ctx, k.ListValue.GetValues(), keepUnknowns)
	case *structpb.Value_StructValue:
		return deserializeStruct(ctx, k.StructValue, keepUnknowns)
	default:
		return deserializeResult{}, &MalformedWireError{Reason: "unrecognized wire value kind"}
	}
}

func deserializeArray(ctx *Context, elems []*structpb.Value, keepUnknowns bool) (deserializeResult, error) {
	values := make([]interface{}, 0, len(elems))
	anySecret := false
	for _, e := range elems {
		er, err := deserializeProperty(ctx, e, keepUnknowns)
		if err != nil {
			return deserializeResult{}, err
		}
		if !er.present {
			continue
		}
		anySecret = anySecret || er.secret
		values = append(values, er.value)
	}
	if anySecret {
		for i, v := range values {
			if s, ok := v.(Secret); ok {
				values[i] = s.Element
			}
		}
		return deserializeResult{value: Secret{Element: values}, present: true, secret: true}, nil
	}
	return deserializeResult{value: values, present: true}, nil
}

func deserializeStruct(ctx *Context, s *structpb.Struct, keepUnknowns bool) (deserializeResult, error) {
	if sig, ok := s.Fields[sigKey]; ok {
		switch sig.GetStringValue() {
		case assetSig:
			return deserializeAsset(s)
		case archiveSig:
			return deserializeArchive(ctx, s, keepUnknowns)
		case secretSig:
			return deserializeSecretEnvelope(ctx, s, keepUnknowns)
		case resourceRefSig:
			return deserializeResourceReference(ctx, s, keepUnknowns)
		case outputValueSig:
			return deserializeOutputValue(ctx, s, keepUnknowns)
		default:
			return deserializeResult{}, &UnknownSignatureError{Signature: sig.GetStringValue()}
		}
	}
	return deserializePlainObject(ctx, s, keepUnknowns)
}

func deserializePlainObject(ctx *Context, s *structpb.Struct, keepUnknowns bool) (deserializeResult, error) {
	keys := make([]string, 0, len(s.GetFields()))
	for k := range s.GetFields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	obj := make(map[string]interface{}, len(keys))
	anySecret := false
	for _, k := range keys {
		fr, err := deserializeProperty(ctx, s.Fields[k], keepUnknowns)
		if err != nil {
			return deserializeResult{}, err
		}
		if !fr.present {
			continue
		}
		anySecret = anySecret || fr.secret
		obj[k] = fr.value
		logging.V(9).Infof("unmarshaling property for RPC: %s=%v", k, fr.value)
	}
	if anySecret {
		for k, v := range obj {
			if sv, ok := v.(Secret); ok {
				obj[k] = sv.Element
			}
		}
		return deserializeResult{value: Secret{Element: obj}, present: true, secret: true}, nil
	}
	return deserializeResult{value: obj, present: true}, nil
}

func deserializeAsset(s *structpb.Struct) (deserializeResult, error) {
	switch {
	case s.Fields["path"] != nil:
		return deserializeResult{value: asset.NewFileAsset(s.Fields["path"].GetStringValue()), present: true}, nil
	case s.Fields["text"] != nil:
		return deserializeResult{value: asset.NewStringAsset(s.Fields["text"].GetStringValue()), present: true}, nil
	case s.Fields["uri"] != nil:
		return deserializeResult{value: asset.NewRemoteAsset(s.Fields["uri"].GetStringValue()), present: true}, nil
	default:
		return deserializeResult{}, &MalformedWireError{Reason: "asset envelope has no path, text, or uri"}
	}
}

func deserializeArchive(ctx *Context, s *structpb.Struct, keepUnknowns bool) (deserializeResult, error) {
	switch {
	case s.Fields["assets"] != nil:
		nested := s.Fields["assets"].GetStructValue()
		assets := make(map[string]interface{}, len(nested.GetFields()))
		for name, v := range nested.GetFields() {
			sv := v.GetStructValue()
			if sv == nil {
				return deserializeResult{}, &MalformedWireError{Reason: "archive child is not an asset or archive"}
			}
			switch sv.Fields[sigKey].GetStringValue() {
			case assetSig:
				r, err := deserializeAsset(sv)
				if err != nil {
					return deserializeResult{}, err
				}
				assets[name] = r.value
			case archiveSig:
				r, err := deserializeArchive(ctx, sv, keepUnknowns)
				if err != nil {
					return deserializeResult{}, err
				}
				assets[name] = r.value
			default:
				return deserializeResult{}, &MalformedWireError{Reason: "archive child is not an asset or archive"}
			}
		}
		return deserializeResult{value: asset.NewAssetArchive(assets), present: true}, nil
	case s.Fields["path"] != nil:
		return deserializeResult{value: asset.NewFileArchive(s.Fields["path"].GetStringValue()), present: true}, nil
	case s.Fields["uri"] != nil:
		return deserializeResult{value: asset.NewRemoteArchive(s.Fields["uri"].GetStringValue()), present: true}, nil
	default:
		return deserializeResult{}, &MalformedWireError{Reason: "archive envelope has no assets, path, or uri"}
	}
}

func deserializeSecretEnvelope(ctx *Context, s *structpb.Struct, keepUnknowns bool) (deserializeResult, error) {
	inner, err := deserializeProperty(ctx, s.Fields["value"], keepUnknowns)
	if err != nil {
		return deserializeResult{}, err
	}
	value := inner.value
	if sv, ok := value.(Secret); ok {
		value = sv.Element
	}
	return deserializeResult{value: Secret{Element: value}, present: true, secret: true}, nil
}

func deserializeOutputValue(ctx *Context, s *structpb.Struct, keepUnknowns bool) (deserializeResult, error) {
	depURNs := make([]URN, 0)
	if depsField := s.Fields["dependencies"]; depsField != nil {
		for _, u := range depsField.GetListValue().GetValues() {
			depURNs = append(depURNs, URN(u.GetStringValue()))
		}
	}
	deps := newDependencyResources(depURNs)

	secret := s.Fields["secret"].GetBoolValue()

	valueField, known := s.Fields["value"]
	if !known {
		// An unknown output can still carry secret=true: secretness must never be silently lost just because
		// no value accompanies it.
		o, state := newOutputState(deps...)
		state.resolve(nil, false, secret, nil)
		return deserializeResult{value: o, present: true}, nil
	}

	inner, err := deserializeProperty(ctx, valueField, keepUnknowns)
	if err != nil {
		return deserializeResult{}, err
	}

	o, state := newOutputState(deps...)
	state.resolve(inner.value, true, secret, nil)
	return deserializeResult{value: o, present: true}, nil
}

// deserializeResourceReference implements spec §4.3 rule 5's resource-reference case: parse the URN, resolve it
// against the module or package registry, and fall back to the bare id or URN when no constructor is found.
func deserializeResourceReference(ctx *Context, s *structpb.Struct, keepUnknowns bool) (deserializeResult, error) {
	urn := URN(s.Fields["urn"].GetStringValue())
	pkg, mod, typ, name := parseURN(urn)

	version := s.Fields["packageVersion"].GetStringValue()

	var (
		res Resource
		err error
	)
	if pkg == "pulumi" && mod == "providers" {
		if provider, ok, perr := ctx.lookupResourcePackage(typ, version); perr == nil && ok {
			res, err = provider.ConstructProvider(ctx, name, typ, string(urn))
		}
	} else {
		if module, ok, merr := ctx.lookupResourceModule(pkg, mod, version); merr == nil && ok {
			res, err = module.Construct(ctx, name, pkg+":"+mod+":"+typ, string(urn))
		}
	}
	if err != nil {
		return deserializeResult{}, err
	}
	if res != nil {
		return deserializeResult{value: res, present: true}, nil
	}

	idField, hasID := s.Fields["id"]
	if hasID {
		idStr := idField.GetStringValue()
		if idStr == "" {
			return deserializeProperty(ctx, marshalUnknown(), keepUnknowns)
		}
		return deserializeProperty(ctx, idField, keepUnknowns)
	}
	return deserializeResult{value: string(urn), present: true}, nil
}

// parseURN decomposes a URN of the shape prefix::prefix::qualifiedType::name into its package, module, type, and
// resource name. qualifiedType is [parentType$]*packageName:moduleName:typeName; only the last $-segment matters.
func parseURN(urn URN) (pkg, mod, typ, name string) {
	parts := strings.Split(string(urn), "::")
	if len(parts) != 4 {
		return "", "", "", ""
	}
	name = parts[3]
	qualifiedType := parts[2]
	segments := strings.Split(qualifiedType, "$")
	last := segments[len(segments)-1]
	tok := strings.Split(last, ":")
	if len(tok) != 3 {
		return "", "", "", name
	}
	return tok[0], tok[1], tok[2], name
}
