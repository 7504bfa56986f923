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

// Package benchmarks compares listdiff with line based diff libraries.
//
// Line diffs don't know about moves, a moved line is a deletion and an insertion. The comparison
// counts the number of operations every implementation needs to update a list, which is what
// matters when the result is used to update a view.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/diff"
	"znkr.io/listdiff"
)

type Impl struct {
	Name string
	// Ops returns the number of operations necessary to convert x into y.
	Ops func(x, y []string) int
}

var Impls = []Impl{
	{
		Name: "listdiff",
		Ops: func(x, y []string) int {
			return len(listdiff.Diff(x, y))
		},
	},
	{
		Name: "znkr",
		Ops: func(x, y []string) int {
			n := 0
			for _, edit := range diff.Edits(x, y) {
				if edit.Op != diff.Match {
					n++
				}
			}
			return n
		},
	},
	{
		Name: "diffmatchpatch",
		Ops: func(x, y []string) int {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(join(x), join(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)
			n := 0
			for _, d := range diffs {
				if d.Type != diffmatchpatch.DiffEqual {
					n += strings.Count(d.Text, "\n")
				}
			}
			return n
		},
	},
	{
		Name: "godebug",
		Ops: func(x, y []string) int {
			return countUnified([]byte(godebug.Diff(join(x), join(y))))
		},
	},
	{
		Name: "mb0",
		Ops: func(x, y []string) int {
			n := 0
			for _, ch := range mb0.Diff(len(x), len(y), mb0lines{x, y}) {
				n += ch.Del + ch.Ins
			}
			return n
		},
	},
	{
		Name: "go-internal",
		Ops: func(x, y []string) int {
			return countUnified(gointernal.Diff("x", []byte(join(x)), "y", []byte(join(y))))
		},
	},
	{
		Name: "udiff",
		Ops: func(x, y []string) int {
			return countUnified([]byte(udiff.Unified("x", "y", join(x), join(y))))
		},
	},
}

func join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// countUnified counts the deleted and inserted lines in a unified diff.
func countUnified(out []byte) int {
	n := 0
	for line := range bytes.SplitSeq(out, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("---")) || bytes.HasPrefix(line, []byte("+++")) {
			continue
		}
		if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
			n++
		}
	}
	return n
}

type mb0lines struct {
	x, y []string
}

func (d mb0lines) Equal(i, j int) bool { return d.x[i] == d.y[j] }
