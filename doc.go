// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package listdiff computes the changes between two versions of an ordered list whose elements
// have a stable identity, for example the rows of a table that is displayed to a user.
//
// Unlike a line diff, elements are matched by identity instead of equality. Two elements with the
// same identity but different content are reported as a [Replace], and elements that changed
// their position are reported as a [Move]. The result can be used to update a displayed list
// incrementally instead of rebuilding it, see [znkr.io/listdiff/sections].
//
// The main functions are [Diff], for comparable elements that are their own identity, and
// [DiffFunc], which takes functions to access the identity and compare the content of elements.
//
// Performance: The implementation uses Heckel's algorithm. Time and space complexity is O(N) where
// N = len(old) + len(new). The result is not minimal: Moves are reported for every element that's
// not where it would be if only the insertions and deletions had been applied and repeated
// identities are always paired in order, which can report more moves than strictly necessary.
//
// [znkr.io/listdiff/sections]: https://pkg.go.dev/znkr.io/listdiff/sections
package listdiff
