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

// Package contract offers a handful of assertion helpers for invariants that the type system cannot express.
// A failed assertion indicates a bug in this module, not a user-correctable runtime error, and so panics rather
// than returning an error.
package contract

import "fmt"

// Assertf panics with the given formatted message if the condition is false.
func Assertf(cond bool, msg string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("contract assertion failed: "+msg, args...))
	}
}

// Failf unconditionally panics with the given formatted message, for code paths that should be unreachable.
func Failf(msg string, args ...interface{}) {
	panic(fmt.Sprintf("contract failure: "+msg, args...))
}

// AssertNoError panics if err is non-nil.
func AssertNoError(err error) {
	if err != nil {
		panic(fmt.Sprintf("contract assertion failed: unexpected error: %v", err))
	}
}

// AssertNoErrorf panics with the given formatted message (and the error) if err is non-nil.
func AssertNoErrorf(err error, msg string, args ...interface{}) {
	if err != nil {
		panic(fmt.Sprintf("contract assertion failed: "+msg+": %v", append(args, err)...))
	}
}
