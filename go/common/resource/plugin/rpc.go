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

// Package plugin bridges between resource.PropertyMap, the rich in-process value model, and the "JSON-like"
// *structpb.Struct that crosses an RPC boundary to or from a resource provider. The wire encoding reserves a
// special "4dabf181..." signature key on any object that needs to carry more information than plain JSON allows --
// assets, archives, secrets, and resource references all ride inside such tagged objects.
package plugin

import (
	"reflect"
	"sort"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/aichholzer/pulumi/go/common/resource"
	"github.com/aichholzer/pulumi/go/common/resource/asset"
	"github.com/aichholzer/pulumi/go/common/util/contract"
	"github.com/aichholzer/pulumi/go/common/util/logging"
)

// SigKey is the well-known property used to tag object values with a special kind, so they can carry more
// information than the JSON-like protobuf Struct would otherwise allow.
const SigKey = "4dabf18193072939515e22adb298388d"

const (
	// AssetSig is the sig value for asset property values.
	AssetSig = "c44067f5952c0a294b673a41bacd8c17"
	// ArchiveSig is the sig value for archive property values.
	ArchiveSig = "0def7320c3a5731c473e5ecbe6d01bc7"
	// SecretSig is the sig value for secret property values.
	SecretSig = "1b47061264138c4ac30d75fd1eb44270"
	// ResourceRefSig is the sig value for resource reference property values.
	ResourceRefSig = "5cf8f73096256a8f31e491e813e4eb8e"
)

// MarshalOptions controls the marshaling of RPC structures.
type MarshalOptions struct {
	Label         string // an optional label, used only for diagnostics.
	SkipNulls     bool   // true to skip nulls altogether in the resulting map.
	RawResources  bool   // true to marshal resource references as "raw" URN/ID strings.
	KeepUnknowns  bool   // true to keep unknown values rather than erroring.
	KeepSecrets   bool   // true to retain the secret envelope rather than unwrapping its element.
	KeepResources bool   // true to marshal resource references using their tagged envelope.
}

// MarshalPropertiesWithUnknowns marshals a resource's property map as a "JSON-like" protobuf structure. A map of
// any unknown properties encountered during marshaling is returned on the side, keyed by property name; those
// values are marshaled using their best-known placeholder and so the side map is essential for interpreting them.
func MarshalPropertiesWithUnknowns(
	props resource.PropertyMap, opts MarshalOptions,
) (*structpb.Struct, map[string]bool) {
	var unk map[string]bool
	result := &structpb.Struct{Fields: make(map[string]*structpb.Value)}
	for _, key := range props.StableKeys() {
		v := props[key]
		logging.V(9).Infof("marshaling property for RPC: %v=%v", key, v)
		if opts.SkipNulls && v.IsNull() {
			continue
		}

		mv, known := MarshalPropertyValue(v, opts)
		result.Fields[string(key)] = mv
		if !known {
			if unk == nil {
				unk = make(map[string]bool)
			}
			unk[string(key)] = true
		}
	}
	return result, unk
}

// MarshalProperties performs ordinary marshaling of a resource's properties and asserts that the result contains
// no unknown values; callers that expect to encounter unknowns should call MarshalPropertiesWithUnknowns instead.
func MarshalProperties(props resource.PropertyMap, opts MarshalOptions) *structpb.Struct {
	pstr, unks := MarshalPropertiesWithUnknowns(props, opts)
	contract.Assertf(opts.KeepUnknowns || unks == nil, "unexpected unknown properties during final marshaling")
	return pstr
}

// MarshalPropertyValue marshals a single property value into its wire representation. The boolean result
// indicates whether the value was known (true) or unknown (false); an unknown value is still marshaled, using
// its most specific known placeholder, but callers must consult the boolean to interpret it correctly.
func MarshalPropertyValue(v resource.PropertyValue, opts MarshalOptions) (*structpb.Value, bool) {
	switch {
	case v.IsNull():
		return marshalNull(), true
	case v.IsBool():
		return structpb.NewBoolValue(v.BoolValue()), true
	case v.IsNumber():
		return structpb.NewNumberValue(v.NumberValue()), true
	case v.IsString():
		return structpb.NewStringValue(v.StringValue()), true
	case v.IsArray():
		outcome := true
		elems := make([]*structpb.Value, len(v.ArrayValue()))
		for i, elem := range v.ArrayValue() {
			ev, known := MarshalPropertyValue(elem, opts)
			outcome = outcome && known
			elems[i] = ev
		}
		return structpb.NewListValue(&structpb.ListValue{Values: elems}), outcome
	case v.IsObject():
		obj, unks := MarshalPropertiesWithUnknowns(v.ObjectValue(), opts)
		return structpb.NewStructValue(obj), unks == nil
	case v.IsAsset():
		return marshalAsset(v.AssetValue(), opts), true
	case v.IsArchive():
		return marshalArchive(v.ArchiveValue(), opts), true
	case v.IsComputed():
		return marshalUnknown(), false
	case v.IsOutput():
		o := v.OutputValue()
		if !o.Known {
			return marshalUnknown(), false
		}
		w, known := MarshalPropertyValue(o.Element, opts)
		contract.Assertf(known, "a known output's element must itself be known")
		return w, true
	case v.IsSecret():
		inner, known := MarshalPropertyValue(v.SecretValue().Element, opts)
		if !opts.KeepSecrets {
			return inner, known
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			SigKey: structpb.NewStringValue(SecretSig),
			"value": inner,
		}}), known
	case v.IsResourceReference():
		ref := v.ResourceReferenceValue()
		if opts.RawResources || !opts.KeepResources {
			return structpb.NewStringValue(string(ref.URN)), true
		}
		idv, known := MarshalPropertyValue(ref.ID, opts)
		return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			SigKey:           structpb.NewStringValue(ResourceRefSig),
			"urn":            structpb.NewStringValue(string(ref.URN)),
			"id":             idv,
			"packageVersion": structpb.NewStringValue(ref.PackageVersion),
		}}), known
	}

	contract.Failf("unrecognized property value %v (type=%v)", v.V, reflect.TypeOf(v.V))
	return nil, true
}

// UnmarshalProperties unmarshals a "JSON-like" protobuf structure into a new resource property map.
func UnmarshalProperties(props *structpb.Struct, opts MarshalOptions) resource.PropertyMap {
	result := make(resource.PropertyMap)
	if props == nil {
		return result
	}

	keys := make([]string, 0, len(props.Fields))
	for k := range props.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		pk := resource.PropertyKey(key)
		v := UnmarshalPropertyValue(props.Fields[key], opts)
		logging.V(9).Infof("unmarshaling property for RPC: %v=%v", key, v)
		if opts.SkipNulls && v.IsNull() {
			continue
		}
		result[pk] = v
	}
	return result
}

// UnmarshalPropertyValue unmarshals a single wire value into a resource property value, recognizing and
// decoding any of the tagged envelope shapes (assets, archives, secrets, resource references) along the way.
func UnmarshalPropertyValue(v *structpb.Value, opts MarshalOptions) resource.PropertyValue {
	contract.Assertf(v != nil, "UnmarshalPropertyValue requires a non-nil wire value")

	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return resource.NewNullProperty()
	case *structpb.Value_BoolValue:
		return resource.NewBoolProperty(k.BoolValue)
	case *structpb.Value_NumberValue:
		return resource.NewNumberProperty(k.NumberValue)
	case *structpb.Value_StringValue:
		if k.StringValue == unknownStringValue {
			return resource.NewComputedProperty(resource.Computed{})
		}
		return resource.NewStringProperty(k.StringValue)
	case *structpb.Value_ListValue:
		lst := k.ListValue.GetValues()
		elems := make([]resource.PropertyValue, len(lst))
		for i, elem := range lst {
			elems[i] = UnmarshalPropertyValue(elem, opts)
		}
		return resource.NewArrayProperty(elems)
	case *structpb.Value_StructValue:
		return unmarshalStruct(k.StructValue, opts)
	default:
		contract.Failf("unrecognized structpb value kind: %v", reflect.TypeOf(v.GetKind()))
		return resource.NewNullProperty()
	}
}

const unknownStringValue = "04da6b54-80e4-46f7-96ec-b56ff0331ba9"

// UnknownStringValue is the sentinel string placed on the wire in lieu of a value not yet known during preview.
const UnknownStringValue = unknownStringValue

func unmarshalStruct(s *structpb.Struct, opts MarshalOptions) resource.PropertyValue {
	if sig, ok := s.Fields[SigKey]; ok {
		switch sig.GetStringValue() {
		case AssetSig:
			return resource.NewAssetProperty(unmarshalAsset(s))
		case ArchiveSig:
			return resource.NewArchiveProperty(unmarshalArchive(s))
		case SecretSig:
			elem := UnmarshalPropertyValue(s.Fields["value"], opts)
			return resource.MakeSecret(elem)
		case ResourceRefSig:
			return resource.NewResourceReferenceProperty(resource.ResourceReference{
				URN:            resource.URN(s.Fields["urn"].GetStringValue()),
				ID:             UnmarshalPropertyValue(s.Fields["id"], opts),
				PackageVersion: s.Fields["packageVersion"].GetStringValue(),
			})
		}
	}
	return resource.NewObjectProperty(UnmarshalProperties(s, opts))
}

func marshalNull() *structpb.Value {
	return structpb.NewNullValue()
}

func marshalUnknown() *structpb.Value {
	return structpb.NewStringValue(unknownStringValue)
}

func marshalAsset(a *asset.Asset, opts MarshalOptions) *structpb.Value {
	fields := map[string]*structpb.Value{SigKey: structpb.NewStringValue(AssetSig)}
	switch {
	case a.IsPath():
		fields["path"] = structpb.NewStringValue(a.Path)
	case a.IsText():
		fields["text"] = structpb.NewStringValue(a.Text)
	case a.IsURI():
		fields["uri"] = structpb.NewStringValue(a.URI)
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: fields})
}

func unmarshalAsset(s *structpb.Struct) *asset.Asset {
	switch {
	case s.Fields["path"] != nil:
		return asset.NewFileAsset(s.Fields["path"].GetStringValue())
	case s.Fields["text"] != nil:
		return asset.NewStringAsset(s.Fields["text"].GetStringValue())
	case s.Fields["uri"] != nil:
		return asset.NewRemoteAsset(s.Fields["uri"].GetStringValue())
	default:
		return &asset.Asset{}
	}
}

func marshalArchive(a *asset.Archive, opts MarshalOptions) *structpb.Value {
	fields := map[string]*structpb.Value{SigKey: structpb.NewStringValue(ArchiveSig)}
	switch {
	case a.IsAssets():
		nested := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(a.Assets))}
		for name, v := range a.Assets {
			switch t := v.(type) {
			case *asset.Asset:
				nested.Fields[name] = marshalAsset(t, opts)
			case *asset.Archive:
				nested.Fields[name] = marshalArchive(t, opts)
			}
		}
		fields["assets"] = structpb.NewStructValue(nested)
	case a.IsPath():
		fields["path"] = structpb.NewStringValue(a.Path)
	case a.IsURI():
		fields["uri"] = structpb.NewStringValue(a.URI)
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: fields})
}

func unmarshalArchive(s *structpb.Struct) *asset.Archive {
	switch {
	case s.Fields["assets"] != nil:
		nested := s.Fields["assets"].GetStructValue()
		assets := make(map[string]interface{}, len(nested.GetFields()))
		for name, v := range nested.GetFields() {
			sv := v.GetStructValue()
			if sv == nil {
				continue
			}
			switch sv.Fields[SigKey].GetStringValue() {
			case AssetSig:
				assets[name] = unmarshalAsset(sv)
			case ArchiveSig:
				assets[name] = unmarshalArchive(sv)
			}
		}
		return asset.NewAssetArchive(assets)
	case s.Fields["path"] != nil:
		return asset.NewFileArchive(s.Fields["path"].GetStringValue())
	case s.Fields["uri"] != nil:
		return asset.NewRemoteArchive(s.Fields["uri"].GetStringValue())
	default:
		return &asset.Archive{}
	}
}
