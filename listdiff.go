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

import (
	"znkr.io/listdiff/internal/config"
	"znkr.io/listdiff/internal/heckel"
)

// Op describes a change operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op -trimprefix=Op
type Op int

const (
	OpDelete  Op = iota // An element is removed from the old list
	OpInsert            // An element is added to the new list
	OpReplace           // An element kept its identity but changed its content
	OpMove              // An element changed its position
)

// Change is a single change, it's one of [Delete], [Insert], [Replace], or [Move]. Use a type
// switch to access the change:
//
//	switch c := c.(type) {
//	case listdiff.Delete[T]:
//	case listdiff.Insert[T]:
//	case listdiff.Replace[T]:
//	case listdiff.Move[T]:
//	}
type Change[T any] interface {
	// Op returns the operation of the change.
	Op() Op

	change(T)
}

// Delete describes the removal of old[Index].
type Delete[T any] struct {
	Item  T
	Index int // Index in the old list
}

// Insert describes the addition of new[Index].
type Insert[T any] struct {
	Item  T
	Index int // Index in the new list
}

// Replace describes an element that's still present, but whose content changed. OldItem is the
// element from the old list and NewItem the element at Index in the new list.
type Replace[T any] struct {
	OldItem, NewItem T
	Index            int // Index in the new list
}

// Move describes an element that moved from old[From] to new[To]. Item is the element from the new
// list.
type Move[T any] struct {
	Item T
	From int // Index in the old list
	To   int // Index in the new list
}

func (Delete[T]) Op() Op  { return OpDelete }
func (Insert[T]) Op() Op  { return OpInsert }
func (Replace[T]) Op() Op { return OpReplace }
func (Move[T]) Op() Op    { return OpMove }

func (Delete[T]) change(T)  {}
func (Insert[T]) change(T)  {}
func (Replace[T]) change(T) {}
func (Move[T]) change(T)    {}

// Item returns the element a change refers to. That's the deleted element for [Delete] and the
// element from the new list for all other changes.
func Item[T any](c Change[T]) T {
	switch c := c.(type) {
	case Delete[T]:
		return c.Item
	case Insert[T]:
		return c.Item
	case Replace[T]:
		return c.NewItem
	case Move[T]:
		return c.Item
	default:
		panic("never reached")
	}
}

// Diff compares old and new and returns the changes necessary to convert from one to the other.
// Elements are their own identity, an element is never replaced, only inserted, deleted, or moved.
//
// The changes are ordered: All deletions come first, in order of old, followed by insertions,
// replacements and moves in order of new.
//
// If old and new are identical, the output has length zero.
func Diff[T comparable](old, new []T) []Change[T] {
	return DiffFunc(old, new, func(e T) T { return e }, func(a, b T) bool { return a == b })
}

// DiffFunc compares old and new and returns the changes necessary to convert from one to the
// other.
//
// Elements are matched by the identity returned by id. Matched elements that are not equal
// according to eq are reported as [Replace]. Both functions must be consistent: id must return the
// same identity for the same logical element in both lists and eq must be reflexive and symmetric.
// These preconditions are not checked, violating them results in spurious changes, not in an error.
//
// The changes are ordered: All deletions come first, in order of old, followed by insertions,
// replacements and moves in order of new.
//
// If old and new are identical, the output has length zero.
func DiffFunc[T any, K comparable](old, new []T, id func(T) K, eq func(a, b T) bool) []Change[T] {
	edits := heckel.Diff(old, new, id, eq, config.Default)
	if len(edits) == 0 {
		return nil
	}
	out := make([]Change[T], len(edits))
	for i, e := range edits {
		switch e.Op {
		case heckel.Delete:
			out[i] = Delete[T]{Item: old[e.From], Index: e.From}
		case heckel.Insert:
			out[i] = Insert[T]{Item: new[e.To], Index: e.To}
		case heckel.Replace:
			out[i] = Replace[T]{OldItem: old[e.From], NewItem: new[e.To], Index: e.To}
		case heckel.Move:
			out[i] = Move[T]{Item: new[e.To], From: e.From, To: e.To}
		default:
			panic("never reached")
		}
	}
	return out
}
