// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package scope

// Shadowing looks for a variable of the same name in enclosing scopes. It
// doesn't cross function scopes.
//
// Parameters:
//   - inner: The variable that may be shadowing another
//
// Returns:
//   - outer: The outer variable being shadowed (nil if none found)
func Shadowing(inner *Variable) (outer *Variable) {
	scope := inner.Scope

	if scope.Type.IsFunction() {
		return nil // Declared at function top level - we don't cross them
	}

	for parent := scope.Upper; parent != nil; parent = parent.Upper {
		if shadowed, ok := parent.set[inner.Name]; ok {
			return shadowed
		}

		if parent.Type.IsFunction() {
			break // Don't cross function boundaries
		}
	}

	return nil
}
