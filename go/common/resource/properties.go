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

package resource

import (
	"sort"

	"github.com/aichholzer/pulumi/go/common/resource/asset"
	"github.com/aichholzer/pulumi/go/common/util/contract"
)

// PropertyKey is the name of a property in a PropertyMap.
type PropertyKey string

// PropertyValue is a discriminated union of the handful of shapes a resource property can take: the primitives,
// arrays and objects, assets and archives, and the three "deferred" shapes -- Computed, Output, and Secret -- that
// stand in for a value that was unresolved, partially resolved, or requires redaction at the point it was captured.
type PropertyValue struct {
	V interface{}
}

// Computed represents a value that is not yet known because it will be computed by some operation not yet
// performed. Computed values carry a type-carrying placeholder element so that downstream consumers can still
// reason about shape (is this an array? an object?) even though no concrete value exists yet.
type Computed struct {
	Element PropertyValue
}

// Output represents a value produced by Output<T> resolution after it has been observed at least once: it
// records whether it was known, whether it is secret, and which resources contributed to it, alongside its
// element value (or, if not known, a placeholder).
type Output struct {
	Element      PropertyValue
	Known        bool
	Secret       bool
	Dependencies []URN
}

// Secret wraps an element value to indicate it must be treated as sensitive -- redacted from logs and diffs.
type Secret struct {
	Element PropertyValue
}

// ResourceReference is a reference to another resource, carried by URN and, for custom resources, by ID.
type ResourceReference struct {
	URN            URN
	ID             PropertyValue
	PackageVersion string
}

// PropertyMap is a simple map keyed by property name with rich, discriminated-union values.
type PropertyMap map[PropertyKey]PropertyValue

// NewNullProperty creates a new null property value.
func NewNullProperty() PropertyValue { return PropertyValue{V: nil} }

// NewBoolProperty creates a new boolean property value.
func NewBoolProperty(v bool) PropertyValue { return PropertyValue{V: v} }

// NewNumberProperty creates a new number property value.
func NewNumberProperty(v float64) PropertyValue { return PropertyValue{V: v} }

// NewStringProperty creates a new string property value.
func NewStringProperty(v string) PropertyValue { return PropertyValue{V: v} }

// NewArrayProperty creates a new array property value out of an ordered slice of elements.
func NewArrayProperty(v []PropertyValue) PropertyValue { return PropertyValue{V: v} }

// NewObjectProperty creates a new object property value out of a nested property map.
func NewObjectProperty(v PropertyMap) PropertyValue { return PropertyValue{V: v} }

// NewAssetProperty creates a new asset property value.
func NewAssetProperty(v *asset.Asset) PropertyValue { return PropertyValue{V: v} }

// NewArchiveProperty creates a new archive property value.
func NewArchiveProperty(v *asset.Archive) PropertyValue { return PropertyValue{V: v} }

// NewComputedProperty creates a new computed (unknown-during-preview) property value.
func NewComputedProperty(v Computed) PropertyValue { return PropertyValue{V: v} }

// NewOutputProperty creates a new resolved-output property value.
func NewOutputProperty(v Output) PropertyValue { return PropertyValue{V: v} }

// NewSecretProperty creates a new secret-wrapped property value.
func NewSecretProperty(v *Secret) PropertyValue { return PropertyValue{V: v} }

// NewResourceReferenceProperty creates a new resource-reference property value.
func NewResourceReferenceProperty(v ResourceReference) PropertyValue { return PropertyValue{V: v} }

// MakeSecret wraps v in a secret envelope, unless it already is one.
func MakeSecret(v PropertyValue) PropertyValue {
	if v.IsSecret() {
		return v
	}
	return NewSecretProperty(&Secret{Element: v})
}

// IsNull returns true if this property value is a null.
func (v PropertyValue) IsNull() bool { return v.V == nil }

// IsBool returns true if this property value is a boolean.
func (v PropertyValue) IsBool() bool { _, ok := v.V.(bool); return ok }

// IsNumber returns true if this property value is a number.
func (v PropertyValue) IsNumber() bool { _, ok := v.V.(float64); return ok }

// IsString returns true if this property value is a string.
func (v PropertyValue) IsString() bool { _, ok := v.V.(string); return ok }

// IsArray returns true if this property value is an array.
func (v PropertyValue) IsArray() bool { _, ok := v.V.([]PropertyValue); return ok }

// IsObject returns true if this property value is an object.
func (v PropertyValue) IsObject() bool { _, ok := v.V.(PropertyMap); return ok }

// IsAsset returns true if this property value is an asset.
func (v PropertyValue) IsAsset() bool { _, ok := v.V.(*asset.Asset); return ok }

// IsArchive returns true if this property value is an archive.
func (v PropertyValue) IsArchive() bool { _, ok := v.V.(*asset.Archive); return ok }

// IsComputed returns true if this property value is a computed placeholder.
func (v PropertyValue) IsComputed() bool { _, ok := v.V.(Computed); return ok }

// IsOutput returns true if this property value is a resolved output.
func (v PropertyValue) IsOutput() bool { _, ok := v.V.(Output); return ok }

// IsSecret returns true if this property value is secret-wrapped.
func (v PropertyValue) IsSecret() bool { _, ok := v.V.(*Secret); return ok }

// IsResourceReference returns true if this property value is a resource reference.
func (v PropertyValue) IsResourceReference() bool { _, ok := v.V.(ResourceReference); return ok }

// BoolValue extracts the boolean value, panicking if this is not a boolean.
func (v PropertyValue) BoolValue() bool { return v.V.(bool) }

// NumberValue extracts the numeric value, panicking if this is not a number.
func (v PropertyValue) NumberValue() float64 { return v.V.(float64) }

// StringValue extracts the string value, panicking if this is not a string.
func (v PropertyValue) StringValue() string { return v.V.(string) }

// ArrayValue extracts the array value, panicking if this is not an array.
func (v PropertyValue) ArrayValue() []PropertyValue { return v.V.([]PropertyValue) }

// ObjectValue extracts the object value, panicking if this is not an object.
func (v PropertyValue) ObjectValue() PropertyMap { return v.V.(PropertyMap) }

// AssetValue extracts the asset value, panicking if this is not an asset.
func (v PropertyValue) AssetValue() *asset.Asset { return v.V.(*asset.Asset) }

// ArchiveValue extracts the archive value, panicking if this is not an archive.
func (v PropertyValue) ArchiveValue() *asset.Archive { return v.V.(*asset.Archive) }

// ComputedValue extracts the computed value, panicking if this is not computed.
func (v PropertyValue) ComputedValue() Computed { return v.V.(Computed) }

// OutputValue extracts the output value, panicking if this is not a resolved output.
func (v PropertyValue) OutputValue() Output { return v.V.(Output) }

// SecretValue extracts the secret wrapper, panicking if this is not secret-wrapped.
func (v PropertyValue) SecretValue() *Secret { return v.V.(*Secret) }

// ResourceReferenceValue extracts the resource reference, panicking if this is not one.
func (v PropertyValue) ResourceReferenceValue() ResourceReference { return v.V.(ResourceReference) }

// HasValue returns true unless this property is null, or an output/computed value known to be unresolved.
func (v PropertyValue) HasValue() bool {
	if v.IsNull() {
		return false
	}
	if v.IsOutput() {
		return v.OutputValue().Known
	}
	return true
}

// ContainsUnknowns returns true if v, or anything nested within it, is a Computed value or a not-yet-known Output.
func (v PropertyValue) ContainsUnknowns() bool {
	switch {
	case v.IsComputed():
		return true
	case v.IsOutput():
		return !v.OutputValue().Known
	case v.IsSecret():
		return v.SecretValue().Element.ContainsUnknowns()
	case v.IsArray():
		for _, e := range v.ArrayValue() {
			if e.ContainsUnknowns() {
				return true
			}
		}
		return false
	case v.IsObject():
		for _, e := range v.ObjectValue() {
			if e.ContainsUnknowns() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// StableKeys returns the keys of the map in a stable (sorted) order, used wherever marshaling must be
// deterministic.
func (m PropertyMap) StableKeys() []PropertyKey {
	keys := make([]PropertyKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// NewPropertyValue turns an arbitrary, weakly-typed Go value (the shapes produced by encoding/json, plus asset
// and archive pointers) into a PropertyValue, recursively.
func NewPropertyValue(v interface{}) PropertyValue {
	switch t := v.(type) {
	case nil:
		return NewNullProperty()
	case bool:
		return NewBoolProperty(t)
	case float64:
		return NewNumberProperty(t)
	case int:
		return NewNumberProperty(float64(t))
	case string:
		return NewStringProperty(t)
	case *asset.Asset:
		return NewAssetProperty(t)
	case *asset.Archive:
		return NewArchiveProperty(t)
	case []interface{}:
		elems := make([]PropertyValue, len(t))
		for i, e := range t {
			elems[i] = NewPropertyValue(e)
		}
		return NewArrayProperty(elems)
	case []PropertyValue:
		return NewArrayProperty(t)
	case map[string]interface{}:
		return NewObjectProperty(NewPropertyMapFromMap(t))
	case PropertyMap:
		return NewObjectProperty(t)
	case PropertyValue:
		return t
	default:
		contract.Failf("unexpected value of type %T passed to NewPropertyValue", t)
		return NewNullProperty()
	}
}

// NewPropertyMapFromMap converts a weakly-typed map (as produced by encoding/json or a provider RPC) into a
// PropertyMap.
func NewPropertyMapFromMap(m map[string]interface{}) PropertyMap {
	result := make(PropertyMap, len(m))
	for k, v := range m {
		result[PropertyKey(k)] = NewPropertyValue(v)
	}
	return result
}

// Mappable converts a PropertyMap back into a weakly-typed, JSON-like map, the inverse of
// NewPropertyMapFromMap for the subset of shapes that round-trip cleanly (primitives, arrays, objects).
func (m PropertyMap) Mappable() map[string]interface{} {
	return m.MapRepl(nil, nil)
}

// MapRepl converts a PropertyMap back into a weakly-typed map, optionally replacing keys and/or values along the
// way. replk, if non-nil, may rename (or, by returning false, drop) a key; replv, if non-nil, may substitute a
// whole-value replacement for any property value encountered, skipping the default conversion for that value.
func (m PropertyMap) MapRepl(
	replk func(string) (string, bool), replv func(PropertyValue) (interface{}, bool),
) map[string]interface{} {
	result := make(map[string]interface{})
	for _, k := range m.StableKeys() {
		key := string(k)
		if replk != nil {
			if nk, keep := replk(key); keep {
				key = nk
			} else {
				continue
			}
		}
		result[key] = m[k].MapReplValue(replv)
	}
	return result
}

// MapReplValue converts a single PropertyValue back into its weakly-typed equivalent, honoring an optional
// value replacer exactly as MapRepl does for every entry of a map.
func (v PropertyValue) MapReplValue(replv func(PropertyValue) (interface{}, bool)) interface{} {
	if replv != nil {
		if rv, use := replv(v); use {
			return rv
		}
	}
	switch {
	case v.IsNull():
		return nil
	case v.IsBool():
		return v.BoolValue()
	case v.IsNumber():
		return v.NumberValue()
	case v.IsString():
		return v.StringValue()
	case v.IsArray():
		arr := v.ArrayValue()
		result := make([]interface{}, len(arr))
		for i, e := range arr {
			result[i] = e.MapReplValue(replv)
		}
		return result
	case v.IsObject():
		return v.ObjectValue().MapRepl(nil, replv)
	case v.IsAsset():
		return v.AssetValue()
	case v.IsArchive():
		return v.ArchiveValue()
	case v.IsSecret():
		return v.SecretValue().Element.MapReplValue(replv)
	case v.IsComputed():
		return v.ComputedValue().Element.MapReplValue(replv)
	case v.IsOutput():
		return v.OutputValue().Element.MapReplValue(replv)
	case v.IsResourceReference():
		return v.ResourceReferenceValue().URN
	default:
		return v.V
	}
}
