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

// Package asset defines the opaque blob handles -- assets and archives -- that a resource's properties may
// reference, and their wire-tagged envelope shapes. Exactly one of an Asset's three fields, and exactly one of an
// Archive's three fields, is ever populated; the IsXxx predicates are how callers discover which.
package asset

// Asset is a reference to a single blob, identified in exactly one of three ways.
type Asset struct {
	Path string // a path to a local file.
	Text string // inline text content.
	URI  string // a URI pointing at a remote resource.
}

// NewFileAsset creates a new asset backed by a local file path.
func NewFileAsset(path string) *Asset { return &Asset{Path: path} }

// NewStringAsset creates a new asset backed by inline text.
func NewStringAsset(text string) *Asset { return &Asset{Text: text} }

// NewRemoteAsset creates a new asset backed by a remote URI.
func NewRemoteAsset(uri string) *Asset { return &Asset{URI: uri} }

// IsPath returns true if this is a file-path-backed asset.
func (a *Asset) IsPath() bool { return a != nil && a.Path != "" }

// IsText returns true if this is an inline-text-backed asset.
func (a *Asset) IsText() bool { return a != nil && a.Text != "" }

// IsURI returns true if this is a remote-URI-backed asset.
func (a *Asset) IsURI() bool { return a != nil && a.URI != "" }

// Archive is a reference to a bundle of assets and/or nested archives, identified in exactly one of three ways.
type Archive struct {
	Assets map[string]interface{} // a named map of *Asset and/or *Archive values, for composite archives.
	Path   string                 // a path to a local archive file.
	URI    string                 // a URI pointing at a remote archive.
}

// NewFileArchive creates a new archive backed by a local file path.
func NewFileArchive(path string) *Archive { return &Archive{Path: path} }

// NewRemoteArchive creates a new archive backed by a remote URI.
func NewRemoteArchive(uri string) *Archive { return &Archive{URI: uri} }

// NewAssetArchive creates a new composite archive out of a named map of assets and/or archives.
func NewAssetArchive(assets map[string]interface{}) *Archive { return &Archive{Assets: assets} }

// IsAssets returns true if this is a composite, named-map-backed archive.
func (a *Archive) IsAssets() bool { return a != nil && a.Assets != nil }

// IsPath returns true if this is a file-path-backed archive.
func (a *Archive) IsPath() bool { return a != nil && a.Path != "" }

// IsURI returns true if this is a remote-URI-backed archive.
func (a *Archive) IsURI() bool { return a != nil && a.URI != "" }
