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

// Package pulumi is the client-side SDK surface: the lazy-value primitive (Output), the resource hierarchy, and
// the marshaling core that moves values between the user's program and the engine.
package pulumi

import "github.com/aichholzer/pulumi/go/common/resource/asset"

// Input is any value a resource property can be set to: a plain leaf value, an Output, an Array, a Map, an
// asset/archive handle, or a Resource reference.
type Input interface {
	isInput()
}

// String is a plain string input.
type String string

func (String) isInput() {}

// Bool is a plain boolean input.
type Bool bool

func (Bool) isInput() {}

// Float64 is a plain numeric input.
type Float64 float64

func (Float64) isInput() {}

// Array is an ordered list of inputs.
type Array []Input

func (Array) isInput() {}

// Map is a string-keyed collection of inputs; the Go analogue of the Object value shape.
type Map map[string]Input

func (Map) isInput() {}

// AssetInput wraps a file/text/remote asset handle so it can be used as a property input.
type AssetInput struct {
	Asset *asset.Asset
}

func (AssetInput) isInput() {}

// ArchiveInput wraps a file/remote/composite archive handle so it can be used as a property input.
type ArchiveInput struct {
	Archive *asset.Archive
}

func (ArchiveInput) isInput() {}

// unknownType is the distinguished marker standing in for a value that will be computed at apply time. Its only
// instance is Unknown.
type unknownType struct{}

// Unknown is the sentinel value substituted for any property whose value cannot be known during preview.
var Unknown = &unknownType{}

func (*unknownType) isInput() {}

// IsUnknown reports whether v is the distinguished unknown sentinel.
func IsUnknown(v interface{}) bool {
	_, ok := v.(*unknownType)
	return ok
}
