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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		old, new []int
		want     []Change[int]
	}{
		{
			name: "identical",
			old:  []int{1, 2, 3},
			new:  []int{1, 2, 3},
			want: nil,
		},
		{
			name: "empty",
			want: nil,
		},
		{
			name: "old-empty",
			new:  []int{1, 2, 3},
			want: []Change[int]{
				Insert[int]{Item: 1, Index: 0},
				Insert[int]{Item: 2, Index: 1},
				Insert[int]{Item: 3, Index: 2},
			},
		},
		{
			name: "new-empty",
			old:  []int{1, 2, 3},
			want: []Change[int]{
				Delete[int]{Item: 1, Index: 0},
				Delete[int]{Item: 2, Index: 1},
				Delete[int]{Item: 3, Index: 2},
			},
		},
		{
			name: "delete",
			old:  []int{1, 2, 3},
			new:  []int{1, 3},
			want: []Change[int]{
				Delete[int]{Item: 2, Index: 1},
			},
		},
		{
			name: "insert",
			old:  []int{1, 2},
			new:  []int{1, 2, 3},
			want: []Change[int]{
				Insert[int]{Item: 3, Index: 2},
			},
		},
		{
			name: "rotation",
			old:  []int{1, 2, 3},
			new:  []int{3, 1, 2},
			want: []Change[int]{
				Move[int]{Item: 3, From: 2, To: 0},
				Move[int]{Item: 1, From: 0, To: 1},
				Move[int]{Item: 2, From: 1, To: 2},
			},
		},
		{
			name: "deletions-before-insertions",
			old:  []int{1, 2, 3, 4},
			new:  []int{5, 2, 4, 6},
			want: []Change[int]{
				Delete[int]{Item: 1, Index: 0},
				Delete[int]{Item: 3, Index: 2},
				Insert[int]{Item: 5, Index: 0},
				Insert[int]{Item: 6, Index: 3},
			},
		},
		{
			name: "disjoint",
			old:  []int{1, 2},
			new:  []int{3, 4, 5},
			want: []Change[int]{
				Delete[int]{Item: 1, Index: 0},
				Delete[int]{Item: 2, Index: 1},
				Insert[int]{Item: 3, Index: 0},
				Insert[int]{Item: 4, Index: 1},
				Insert[int]{Item: 5, Index: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.old, tt.new)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

type row struct {
	ID    string
	Title string
}

func rowID(r row) string     { return r.ID }
func rowEqual(a, b row) bool { return a == b }

func r(id, title string) row                  { return row{id, title} }
func rows(rs ...row) []row                    { return rs }
func noRows() []row                           { return nil }
func changes(cs ...Change[row]) []Change[row] { return cs }

func TestDiffFunc(t *testing.T) {
	tests := []struct {
		name     string
		old, new []row
		want     []Change[row]
	}{
		{
			name: "identical",
			old:  rows(r("a", "A"), r("b", "B")),
			new:  rows(r("a", "A"), r("b", "B")),
			want: nil,
		},
		{
			name: "replace-in-place",
			old:  rows(r("a", "A"), r("b", "B")),
			new:  rows(r("a", "A"), r("b", "B'")),
			want: changes(
				Replace[row]{OldItem: r("b", "B"), NewItem: r("b", "B'"), Index: 1},
			),
		},
		{
			name: "replace-after-deletion",
			old:  rows(r("a", "A"), r("b", "B"), r("c", "C")),
			new:  rows(r("b", "B"), r("c", "C'")),
			want: changes(
				Delete[row]{Item: r("a", "A"), Index: 0},
				Replace[row]{OldItem: r("c", "C"), NewItem: r("c", "C'"), Index: 1},
			),
		},
		{
			name: "replace-and-move",
			old:  rows(r("a", "A"), r("b", "B")),
			new:  rows(r("b", "B'"), r("a", "A")),
			want: changes(
				Replace[row]{OldItem: r("b", "B"), NewItem: r("b", "B'"), Index: 0},
				Move[row]{Item: r("b", "B'"), From: 1, To: 0},
				Move[row]{Item: r("a", "A"), From: 0, To: 1},
			),
		},
		{
			name: "new-identity-same-content",
			old:  rows(r("a", "A")),
			new:  rows(r("b", "A")),
			want: changes(
				Delete[row]{Item: r("a", "A"), Index: 0},
				Insert[row]{Item: r("b", "A"), Index: 0},
			),
		},
		{
			name: "old-empty",
			old:  noRows(),
			new:  rows(r("a", "A")),
			want: changes(
				Insert[row]{Item: r("a", "A"), Index: 0},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffFunc(tt.old, tt.new, rowID, rowEqual)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DiffFunc(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpDelete, "Delete"},
		{OpInsert, "Insert"},
		{OpReplace, "Replace"},
		{OpMove, "Move"},
		{Op(42), "Op(42)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", int(tt.op), got, tt.want)
		}
	}
}

func TestItem(t *testing.T) {
	tests := []struct {
		name   string
		change Change[string]
		want   string
	}{
		{"delete", Delete[string]{Item: "a", Index: 0}, "a"},
		{"insert", Insert[string]{Item: "b", Index: 1}, "b"},
		{"replace", Replace[string]{OldItem: "c", NewItem: "C", Index: 2}, "C"},
		{"move", Move[string]{Item: "d", From: 3, To: 0}, "d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Item(tt.change); got != tt.want {
				t.Errorf("Item(%+v) = %q, want %q", tt.change, got, tt.want)
			}
		})
	}
}

// randomInputs returns two random lists with ids from a small range, so that both lists contain
// repeated ids and ids that only appear in one of them.
func randomInputs(rng *rand.Rand, n, m, ids int) (old, new []row) {
	old = make([]row, n)
	for i := range old {
		old[i] = row{fmt.Sprint(rng.IntN(ids)), fmt.Sprint(rng.IntN(3))}
	}
	new = make([]row, m)
	for j := range new {
		new[j] = row{fmt.Sprint(rng.IntN(ids)), fmt.Sprint(rng.IntN(3))}
	}
	return old, new
}

func TestProperties(t *testing.T) {
	params := []struct {
		N, M, IDs int
	}{
		{0, 0, 1},
		{0, 10, 5},
		{10, 0, 5},
		{5, 5, 2},
		{20, 20, 5},
		{50, 40, 100},
		{100, 120, 30},
		{300, 300, 1000},
	}

	for _, p := range params {
		name := fmt.Sprintf("N=%d_M=%d_IDs=%d", p.N, p.M, p.IDs)
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			for range 20 {
				old, new := randomInputs(rng, p.N, p.M, p.IDs)

				cs := DiffFunc(old, new, rowID, rowEqual)

				got := Apply(old, cs)
				if diff := cmp.Diff(new, got, cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("Apply(old, DiffFunc(old, new)) != new [-want,+got]:\n%s", diff)
				}

				seenOther := false
				for _, c := range cs {
					if c.Op() != OpDelete {
						seenOther = true
					} else if seenOther {
						t.Fatalf("deletion after other change: %+v", c)
					}
				}
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(t.Name()))))
	for _, n := range []int{0, 1, 10, 100} {
		x := rng.Perm(n)
		if got := Diff(x, x); len(got) != 0 {
			t.Errorf("Diff(x, x) = %v, want no changes", got)
		}
	}
}

func TestDisjointIdentities(t *testing.T) {
	old := []int{1, 2, 3, 4}
	new := []int{10, 20, 30}
	got := Diff(old, new)
	var want []Change[int]
	for i, e := range old {
		want = append(want, Delete[int]{Item: e, Index: i})
	}
	for j, e := range new {
		want = append(want, Insert[int]{Item: e, Index: j})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff(...) result is different [-want,+got]:\n%s", diff)
	}
}

func BenchmarkDiffFunc(b *testing.B) {
	params := []struct {
		N, M, IDs int
	}{
		{50, 50, 50},
		{500, 500, 100},
		{5000, 5500, 5000},
	}

	for _, p := range params {
		name := fmt.Sprintf("N=%d_M=%d_IDs=%d", p.N, p.M, p.IDs)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			old, new := randomInputs(rng, p.N, p.M, p.IDs)
			for b.Loop() {
				_ = DiffFunc(old, new, rowID, rowEqual)
			}
		})
	}
}
