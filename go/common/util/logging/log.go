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

// Package logging centralizes this module's glog verbosity conventions so callers don't have to agree on V-levels
// ad hoc. The conventions in use throughout this module:
//
//	V(5)  registry registrations and lookups
//	V(7)  dropped/suppressed transport errors
//	V(9)  per-property marshal/unmarshal tracing
package logging

import "github.com/golang/glog"

// Verbose is a re-export of glog.Level so callers don't need their own import of glog just to call V.
type Verbose = glog.Verbose

// V reports whether verbosity at the given level is enabled, matching glog.V's calling convention:
//
//	logging.V(9).Infof("marshaling %s=%v", key, value)
func V(level glog.Level) Verbose {
	return glog.V(level)
}

// Infof logs an unconditional informational message.
func Infof(format string, args ...interface{}) {
	glog.Infof(format, args...)
}

// Warningf logs an unconditional warning.
func Warningf(format string, args ...interface{}) {
	glog.Warningf(format, args...)
}
