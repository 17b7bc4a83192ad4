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

package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aichholzer/pulumi/go/common/resource"
	"github.com/aichholzer/pulumi/go/common/resource/asset"
)

func TestMarshalRoundTripsPrimitives(t *testing.T) {
	t.Parallel()

	props := resource.PropertyMap{
		"name":    resource.NewStringProperty("webserver"),
		"count":   resource.NewNumberProperty(3),
		"enabled": resource.NewBoolProperty(true),
		"none":    resource.NewNullProperty(),
		"tags":    resource.NewArrayProperty([]resource.PropertyValue{resource.NewStringProperty("a")}),
	}

	wire, unks := MarshalPropertiesWithUnknowns(props, MarshalOptions{})
	assert.Nil(t, unks)

	back := UnmarshalProperties(wire, MarshalOptions{})
	assert.Equal(t, props, back)
}

func TestMarshalSkipsNullsWhenRequested(t *testing.T) {
	t.Parallel()

	props := resource.PropertyMap{"none": resource.NewNullProperty(), "kept": resource.NewStringProperty("x")}
	wire, _ := MarshalPropertiesWithUnknowns(props, MarshalOptions{SkipNulls: true})
	_, hasNone := wire.Fields["none"]
	assert.False(t, hasNone)
	assert.Contains(t, wire.Fields, "kept")
}

func TestMarshalUnknownOutputReportedInSideMap(t *testing.T) {
	t.Parallel()

	props := resource.PropertyMap{
		"latent": resource.NewOutputProperty(resource.Output{Known: false}),
	}
	wire, unks := MarshalPropertiesWithUnknowns(props, MarshalOptions{})
	assert.True(t, unks["latent"])

	back := UnmarshalPropertyValue(wire.Fields["latent"], MarshalOptions{})
	assert.True(t, back.IsComputed())
}

func TestSecretRoundTripsWithKeepSecrets(t *testing.T) {
	t.Parallel()

	props := resource.PropertyMap{"password": resource.MakeSecret(resource.NewStringProperty("hunter2"))}

	wire, _ := MarshalPropertiesWithUnknowns(props, MarshalOptions{KeepSecrets: true})
	back := UnmarshalProperties(wire, MarshalOptions{})
	assert.True(t, back["password"].IsSecret())
	assert.Equal(t, "hunter2", back["password"].SecretValue().Element.StringValue())
}

func TestSecretUnwrapsWithoutKeepSecrets(t *testing.T) {
	t.Parallel()

	props := resource.PropertyMap{"password": resource.MakeSecret(resource.NewStringProperty("hunter2"))}
	wire, _ := MarshalPropertiesWithUnknowns(props, MarshalOptions{KeepSecrets: false})
	back := UnmarshalProperties(wire, MarshalOptions{})
	assert.False(t, back["password"].IsSecret())
	assert.Equal(t, "hunter2", back["password"].StringValue())
}

func TestAssetAndArchiveRoundTrip(t *testing.T) {
	t.Parallel()

	props := resource.PropertyMap{
		"file": resource.NewAssetProperty(asset.NewFileAsset("./index.html")),
		"bundle": resource.NewArchiveProperty(asset.NewAssetArchive(map[string]interface{}{
			"index.html": asset.NewFileAsset("./index.html"),
		})),
	}
	wire, _ := MarshalPropertiesWithUnknowns(props, MarshalOptions{})
	back := UnmarshalProperties(wire, MarshalOptions{})

	assert.True(t, back["file"].IsAsset())
	assert.Equal(t, "./index.html", back["file"].AssetValue().Path)
	assert.True(t, back["bundle"].IsArchive())
	assert.True(t, back["bundle"].ArchiveValue().IsAssets())
}

func TestResourceReferenceRoundTrip(t *testing.T) {
	t.Parallel()

	ref := resource.ResourceReference{
		URN:            "urn:pulumi:stack::proj::pkg:mod:Type::name",
		ID:             resource.NewStringProperty("i-1234"),
		PackageVersion: "1.2.3",
	}
	props := resource.PropertyMap{"ref": resource.NewResourceReferenceProperty(ref)}

	wire, _ := MarshalPropertiesWithUnknowns(props, MarshalOptions{KeepResources: true})
	back := UnmarshalProperties(wire, MarshalOptions{})

	assert.True(t, back["ref"].IsResourceReference())
	assert.Equal(t, ref, back["ref"].ResourceReferenceValue())
}

func TestResourceReferenceFallsBackToRawURN(t *testing.T) {
	t.Parallel()

	ref := resource.ResourceReference{URN: "urn:pulumi:stack::proj::pkg:mod:Type::name"}
	props := resource.PropertyMap{"ref": resource.NewResourceReferenceProperty(ref)}

	wire, _ := MarshalPropertiesWithUnknowns(props, MarshalOptions{KeepResources: false})
	assert.Equal(t, string(ref.URN), wire.Fields["ref"].GetStringValue())
}
