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
	"fmt"

	"github.com/aichholzer/pulumi/go/common/util/logging"
)

// featureSupport records which wire extensions the engine on the other end of this run has advertised support
// for. The marshaler consults it on every call rather than assuming a fixed protocol version.
type featureSupport struct {
	secrets            bool
	resourceReferences bool
	outputValues       bool
}

// Context owns everything a single SDK run needs that must not be a package global: the feature-negotiation
// cache, the dry-run flag, and the two versioned registries used to resolve resource references encountered
// during deserialization.
type Context struct {
	dryRun   bool
	features featureSupport

	modules  *versionedRegistry[ResourceModule]
	packages *versionedRegistry[ResourcePackage]
}

// NewContext creates a Context for a single run. dryRun is true during preview; the three feature flags record
// what the peer engine has advertised support for.
func NewContext(dryRun, supportsSecrets, supportsResourceReferences, supportsOutputValues bool) *Context {
	logging.Infof("starting run: dryRun=%t secrets=%t resourceReferences=%t outputValues=%t",
		dryRun, supportsSecrets, supportsResourceReferences, supportsOutputValues)
	return &Context{
		dryRun: dryRun,
		features: featureSupport{
			secrets:            supportsSecrets,
			resourceReferences: supportsResourceReferences,
			outputValues:       supportsOutputValues,
		},
		modules:  newVersionedRegistry[ResourceModule](),
		packages: newVersionedRegistry[ResourcePackage](),
	}
}

// DryRun reports whether this run is a preview.
func (ctx *Context) DryRun() bool {
	return ctx.dryRun
}

// SupportsSecrets reports whether the peer engine accepts the secret wire envelope.
func (ctx *Context) SupportsSecrets() bool {
	return ctx.features.secrets
}

// SupportsResourceReferences reports whether the peer engine accepts the resource-reference wire envelope.
func (ctx *Context) SupportsResourceReferences() bool {
	return ctx.features.resourceReferences
}

// SupportsOutputValues reports whether the peer engine accepts the output-value wire envelope.
func (ctx *Context) SupportsOutputValues() bool {
	return ctx.features.outputValues
}

// RegisterResourceModule registers a constructor for resources of the given package and module, tolerating the
// same (pkg, mod) pair being registered more than once by transitive dependencies pulling in the same package.
func (ctx *Context) RegisterResourceModule(pkg, mod, version string, module ResourceModule) error {
	v, err := ParseVersion(version)
	if err != nil {
		return fmt.Errorf("parsing module version %q: %w", version, err)
	}
	ctx.modules.register("resource module", pkg+":"+mod, v, module)
	return nil
}

// RegisterResourcePackage registers a constructor for providers of the given package.
func (ctx *Context) RegisterResourcePackage(pkg, version string, pack ResourcePackage) error {
	v, err := ParseVersion(version)
	if err != nil {
		return fmt.Errorf("parsing package version %q: %w", version, err)
	}
	ctx.packages.register("resource package", pkg, v, pack)
	return nil
}

func (ctx *Context) lookupResourceModule(pkg, mod, version string) (ResourceModule, bool, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return nil, false, err
	}
	m, ok := ctx.modules.lookup(pkg+":"+mod, v)
	return m, ok, nil
}

func (ctx *Context) lookupResourcePackage(pkg, version string) (ResourcePackage, bool, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return nil, false, err
	}
	p, ok := ctx.packages.lookup(pkg, v)
	return p, ok, nil
}
