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

package listdiff

import "fmt"

// Apply applies changes to old and returns the resulting list. old is not modified.
//
// If changes were computed by [Diff] or [DiffFunc] from old and new, the result is new. The changes
// are applied the same way a list view would apply them: Deletions use indices in old, insertions
// and moves place elements at their index in new and all other elements keep their relative
// order. Replacements are applied last.
//
// Apply panics if changes are inconsistent with old.
func Apply[T any](old []T, changes []Change[T]) []T {
	// Remove deleted and moved elements from old.
	removed := make([]bool, len(old))
	remove := func(i int) {
		if i < 0 || i >= len(old) {
			panic(fmt.Sprintf("index %d out of range [0:%d]", i, len(old)))
		}
		if removed[i] {
			panic(fmt.Sprintf("element %d removed twice", i))
		}
		removed[i] = true
	}
	n := len(old)
	for _, c := range changes {
		switch c := c.(type) {
		case Delete[T]:
			remove(c.Index)
			n--
		case Insert[T]:
			n++
		case Move[T]:
			remove(c.From)
		}
	}

	if n < 0 {
		panic("more deletions than elements")
	}

	// Place inserted and moved elements at their destination.
	out := make([]T, n)
	placed := make([]bool, n)
	place := func(j int, e T) {
		if j < 0 || j >= n {
			panic(fmt.Sprintf("index %d out of range [0:%d]", j, n))
		}
		if placed[j] {
			panic(fmt.Sprintf("element %d placed twice", j))
		}
		out[j] = e
		placed[j] = true
	}
	for _, c := range changes {
		switch c := c.(type) {
		case Insert[T]:
			place(c.Index, c.Item)
		case Move[T]:
			place(c.To, c.Item)
		}
	}

	// Fill the gaps with the remaining elements, they don't change their relative order.
	j := 0
	for i, e := range old {
		if removed[i] {
			continue
		}
		for j < n && placed[j] {
			j++
		}
		if j == n {
			panic("more elements left than free positions")
		}
		out[j] = e
		placed[j] = true
	}
	for ; j < n; j++ {
		if !placed[j] {
			panic(fmt.Sprintf("no element for position %d", j))
		}
	}

	for _, c := range changes {
		if c, ok := c.(Replace[T]); ok {
			if c.Index < 0 || c.Index >= n {
				panic(fmt.Sprintf("index %d out of range [0:%d]", c.Index, n))
			}
			out[c.Index] = c.NewItem
		}
	}
	return out
}
