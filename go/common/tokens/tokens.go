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

// Package tokens defines the handful of string-newtype tokens used to address packages, modules, and resource
// types across the wire protocol. They carry no behavior of their own beyond decomposing a qualified type name.
package tokens

import "strings"

// QName is a qualified name, such as a resource's URN-local name.
type QName string

// Package is the name of a package, the first segment of a qualified type token.
type Package string

// ModuleName is the name of a module within a package; it may itself contain path-like segments.
type ModuleName string

// TypeName is the final, unqualified segment of a qualified type token.
type TypeName string

// Type is a fully qualified type token of the form "package:module:typeName".
type Type string

// QNameDelimiter separates a parent type from its child in a resource's qualified type, enabling the
// "parentType$childType" nesting used by component resources.
const QNameDelimiter = "$"

// Package returns the package segment of a qualified type token.
func (t Type) Package() Package {
	parts := strings.SplitN(string(t), ":", 2)
	return Package(parts[0])
}

// Module returns the module segment of a qualified type token. When the token has no module segment, Module
// returns the empty string.
func (t Type) Module() ModuleName {
	parts := strings.SplitN(string(t), ":", 3)
	if len(parts) < 3 {
		return ""
	}
	return ModuleName(parts[1])
}

// Name returns the unqualified type name, the final colon-delimited segment of the token.
func (t Type) Name() TypeName {
	parts := strings.Split(string(t), ":")
	return TypeName(parts[len(parts)-1])
}
