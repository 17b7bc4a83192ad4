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
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/aichholzer/pulumi/go/common/resource/plugin"
)

// The five wire signature constants and the unknown marker are protocol-shared with every other language SDK;
// changing any of them breaks interop. They are re-exported here, rather than redefined, so the client-facing
// marshaler and the engine-facing plugin package can never drift out of sync.
const (
	sigKey         = plugin.SigKey
	assetSig       = plugin.AssetSig
	archiveSig     = plugin.ArchiveSig
	secretSig      = plugin.SecretSig
	resourceRefSig = plugin.ResourceRefSig
	outputValueSig = "d0e6a833031e9bbcd3f4e8bde6ca49a4"
	unknownMarker  = plugin.UnknownStringValue
)

func taggedStruct(sig string, fields map[string]*structpb.Value) *structpb.Value {
	f := make(map[string]*structpb.Value, len(fields)+1)
	f[sigKey] = structpb.NewStringValue(sig)
	for k, v := range fields {
		f[k] = v
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: f})
}

// isSecretEnvelope reports whether v is a tagged object carrying the secret signature.
func isSecretEnvelope(v *structpb.Value) bool {
	s := v.GetStructValue()
	if s == nil {
		return false
	}
	return s.Fields[sigKey].GetStringValue() == secretSig
}

// unwrapSecretEnvelope returns the "value" field of a secret envelope. The caller must first confirm v is a
// secret envelope via isSecretEnvelope.
func unwrapSecretEnvelope(v *structpb.Value) *structpb.Value {
	return v.GetStructValue().Fields["value"]
}

func marshalUnknown() *structpb.Value {
	return structpb.NewStringValue(unknownMarker)
}

func isUnknownWireValue(v *structpb.Value) bool {
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	return ok && sv.StringValue == unknownMarker
}
