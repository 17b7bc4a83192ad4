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

	"github.com/blang/semver"
	"github.com/stretchr/testify/assert"
)

func TestIsCompatibleVersionNilWantIsAlwaysCompatible(t *testing.T) {
	t.Parallel()

	have := semver.MustParse("1.0.0")
	assert.True(t, IsCompatibleVersion(have, nil))
}

func TestIsCompatibleVersionRequiresExactMajor(t *testing.T) {
	t.Parallel()

	have := semver.MustParse("2.0.0")
	want := semver.MustParse("1.0.0")
	assert.False(t, IsCompatibleVersion(have, &want))
}

func TestIsCompatibleVersionRequiresAtLeastWant(t *testing.T) {
	t.Parallel()

	want := semver.MustParse("1.5.0")

	assert.True(t, IsCompatibleVersion(semver.MustParse("1.5.0"), &want))
	assert.True(t, IsCompatibleVersion(semver.MustParse("1.6.0"), &want))
	assert.False(t, IsCompatibleVersion(semver.MustParse("1.4.9"), &want))
}
