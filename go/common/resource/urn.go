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
	"strings"

	"github.com/aichholzer/pulumi/go/common/tokens"
)

// URN is a friendly, unique URN for a resource, most commonly used to identify resources in the wire protocol's
// resource-reference envelopes and in output-value dependency lists. Its shape is:
//
//	urn:pulumi:<stack>::<project>::<qualifiedType>::<name>
//
// where <qualifiedType> is itself "[parentType$]*package:module:typeName".
type URN string

// URNPrefix is the prefix every URN must carry.
const URNPrefix = "urn:pulumi:"

// ID is the unique ID of a resource assigned by its provider.
type ID string

// IsValid returns true if the URN is well-formed.
func (urn URN) IsValid() bool {
	return strings.HasPrefix(string(urn), URNPrefix) && len(strings.Split(string(urn), "::")) == 4
}

// QualifiedType returns the qualified type portion of the URN, e.g. "pkg:mod:Typ" or "parent$pkg:mod:Typ".
func (urn URN) QualifiedType() tokens.Type {
	parts := strings.Split(string(urn), "::")
	if len(parts) < 4 {
		return ""
	}
	return tokens.Type(parts[len(parts)-2])
}

// Type returns the URN's own type, stripping any parent-type qualification.
func (urn URN) Type() tokens.Type {
	qualified := urn.QualifiedType()
	components := strings.Split(string(qualified), tokens.QNameDelimiter)
	return tokens.Type(components[len(components)-1])
}

// Name returns the URN's unqualified name, the final "::"-delimited segment.
func (urn URN) Name() QName {
	parts := strings.Split(string(urn), "::")
	if len(parts) == 0 {
		return ""
	}
	return QName(parts[len(parts)-1])
}

// QName is re-exported at the resource level so callers needn't import tokens solely for URN names.
type QName = tokens.QName
