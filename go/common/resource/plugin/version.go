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

import "github.com/blang/semver"

// IsCompatibleVersion reports whether have satisfies a "floor" compatibility check against want: the major
// version must match exactly, and have must be greater than or equal to want. A nil want is always compatible.
func IsCompatibleVersion(have semver.Version, want *semver.Version) bool {
	if want == nil {
		return true
	}
	if have.Major != want.Major {
		return false
	}
	return !have.LT(*want)
}
