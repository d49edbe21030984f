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

package ast

// KindSet is a set of node kinds.
type KindSet [(kindCount + 63) / 64]uint64

// KindsOf returns the set of the given kinds. An empty argument list
// yields the empty set.
func KindsOf(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s[k/64] |= 1 << (k % 64)
	}

	return s
}

// Has reports whether k is in the set.
func (s *KindSet) Has(k Kind) bool { return s[k/64]&(1<<(k%64)) != 0 }

// Empty reports whether the set has no members.
func (s *KindSet) Empty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}

	return true
}

// Union adds all members of o.
func (s *KindSet) Union(o KindSet) {
	for i := range s {
		s[i] |= o[i]
	}
}
