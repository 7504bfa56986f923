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

// Package heckel contains the diff algorithm used to compare slices of elements with a stable
// identity.
//
// The algorithm is described in Paul Heckel, "A Technique for Isolating Differences Between
// Files", Communications of the ACM 21(4), 1978. It finds all elements that occur exactly once in
// both inputs, uses them as anchors and then pairs up the remaining occurrences of every identity
// in order. This runs in O(N) time and space, where N = len(x) + len(y), but unlike Myers' algorithm
// it doesn't find a minimal diff. In particular, moves are reported whenever an element doesn't end
// up at the position it would have if only the deletions and insertions had been applied.
//
// The names below follow the paper: x is the old input, y the new one, a symbol table entry holds
// the counters OC and NC and the list of line numbers in x (OLNO) and the two slot arrays are OA
// and NA.
package heckel

import (
	"slices"

	"znkr.io/listdiff/internal/config"
)

// Op describes the kind of an edit.
type Op int

const (
	Delete  Op = iota // x[From] is deleted
	Insert            // y[To] is inserted
	Replace           // x[From] and y[To] have the same identity but different content
	Move              // x[From] moved to y[To]
)

// Edit is the internal, index only representation of a change. Indices that are not used by an
// Op are set to -1.
type Edit struct {
	Op       Op
	From, To int
}

// counter counts occurrences of an identity, saturating at many. The algorithm only needs to
// know if an element appears exactly once.
type counter uint8

const (
	zero counter = iota
	one
	many
)

func (c counter) inc() counter {
	if c == many {
		return many
	}
	return c + 1
}

// entry is a symbol table entry. There is one entry for every identity in x or y.
type entry struct {
	oc, nc counter
	olno   []int // positions in x, in order
	head   int   // olno[head:] haven't been paired yet
}

// pending returns the positions in x that haven't been paired yet, oldest first.
func (e *entry) pending() []int { return e.olno[e.head:] }

// slot is an element of OA or NA. An unmatched slot references a symbol table entry, a matched slot
// holds the position of its counterpart in the other input.
type slot struct {
	matched bool
	ref     int
}

// table is the symbol table. Entries are stored in an arena and addressed by their index, the map
// is only used to find the entry for an identity.
type table[K comparable] struct {
	idx     map[K]int
	entries []entry
}

func (t *table[K]) lookup(k K) int {
	ref, ok := t.idx[k]
	if !ok {
		ref = len(t.entries)
		t.idx[k] = ref
		t.entries = append(t.entries, entry{})
	}
	return ref
}

// same reports whether two slots are equal. Matched slots are equal if they point to the same
// position, unmatched slots are equal if they reference entries in the same state.
//
// Entries are compared by value, two different identities with the same counters and the same
// remaining positions are considered equal. same is only called for slots that share an identity.
func (t *table[K]) same(a, b slot) bool {
	switch {
	case a.matched != b.matched:
		return false
	case a.matched, a.ref == b.ref:
		return a.ref == b.ref
	}
	ea, eb := &t.entries[a.ref], &t.entries[b.ref]
	return ea.oc == eb.oc && ea.nc == eb.nc && slices.Equal(ea.pending(), eb.pending())
}

// Diff compares x and y and returns the edits necessary to convert from one to the other. Elements
// are paired up by id, eq is only used to decide whether a pair is a replacement.
//
// The edits are ordered: First all deletions in order of x, then insertions, replacements and
// moves in order of y.
func Diff[T any, K comparable](x, y []T, id func(T) K, eq func(a, b T) bool, cfg config.Config) []Edit {
	if !cfg.SkipTrivial {
		if edits, ok := trivial(len(x), len(y)); ok {
			return edits
		}
	}

	t := table[K]{
		idx:     make(map[K]int, len(y)),
		entries: make([]entry, 0, len(y)),
	}

	// Pass 1: Create an entry for every element in y and count occurrences.
	na := make([]slot, len(y))
	for j, e := range y {
		ref := t.lookup(id(e))
		t.entries[ref].nc = t.entries[ref].nc.inc()
		na[j] = slot{ref: ref}
	}

	// Pass 2: Do the same for x, but also record where each identity occurs.
	oa := make([]slot, len(x))
	for i, e := range x {
		ref := t.lookup(id(e))
		ent := &t.entries[ref]
		ent.oc = ent.oc.inc()
		ent.olno = append(ent.olno, i)
		oa[i] = slot{ref: ref}
	}

	// Pass 3: Pair up slots.
	match(&t, oa, na)

	// Pass 4: Translate the slots into edits.
	return emit(x, y, oa, na, eq)
}

// match pairs every slot in na with the oldest unpaired occurrence of the same identity in oa.
//
// A pair is accepted if the identity is unique in both inputs (observation 1 in the paper) or if
// both slots are still equal (observation 2, used to extend matches to repeated elements). A
// rejected position is dropped, it's never considered again.
func match[K comparable](t *table[K], oa, na []slot) {
	for j, s := range na {
		if s.matched {
			continue
		}
		ent := &t.entries[s.ref]
		if ent.head == len(ent.olno) {
			continue
		}
		i := ent.olno[ent.head]
		ent.head++

		unique := ent.oc == one && ent.nc == one
		extends := ent.oc != zero && ent.nc != zero && t.same(na[j], oa[i])
		if !unique && !extends {
			continue
		}
		na[j] = slot{matched: true, ref: i}
		oa[i] = slot{matched: true, ref: j}
	}
}

func emit[T any](x, y []T, oa, na []slot, eq func(a, b T) bool) []Edit {
	var edits []Edit

	// Deletions. Record the number of deletions before every position in x, this is used to
	// figure out where an element of x would end up if nothing had moved.
	deleted := make([]int, len(x))
	d := 0
	for i, s := range oa {
		deleted[i] = d
		if !s.matched {
			edits = append(edits, Edit{Delete, i, -1})
			d++
		}
	}

	// Insertions, replacements, and moves.
	inserted := 0
	for j, s := range na {
		if !s.matched {
			edits = append(edits, Edit{Insert, -1, j})
			inserted++
			continue
		}
		i := s.ref
		if !eq(x[i], y[j]) {
			edits = append(edits, Edit{Replace, i, j})
		}
		if i-deleted[i]+inserted != j {
			edits = append(edits, Edit{Move, i, j})
		}
	}
	return edits
}

// trivial handles inputs where at least one side is empty. It returns true if the inputs are
// trivial. The result is identical to running the full algorithm.
func trivial(n, m int) ([]Edit, bool) {
	switch {
	case n == 0 && m == 0:
		return nil, true
	case m == 0:
		edits := make([]Edit, n)
		for i := range edits {
			edits[i] = Edit{Delete, i, -1}
		}
		return edits, true
	case n == 0:
		edits := make([]Edit, m)
		for j := range edits {
			edits[j] = Edit{Insert, -1, j}
		}
		return edits, true
	default:
		return nil, false
	}
}
