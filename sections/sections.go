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

// Package sections applies changes computed by [znkr.io/listdiff] to a view that displays a list
// in sections, like a table or a grid.
//
// Views typically support batching structural updates (deletions, insertions, and moves) into one
// transaction, but can't reload items that take part in the same transaction. [Reload] takes care
// of that ordering.
//
// [znkr.io/listdiff]: https://pkg.go.dev/znkr.io/listdiff
package sections

import (
	"fmt"

	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/config"
)

// IndexPath is the position of an item in a view with sections.
type IndexPath struct {
	Section, Item int
}

func (p IndexPath) String() string {
	return fmt.Sprintf("%d:%d", p.Section, p.Item)
}

// MovePath describes an item that moves from one position to another.
type MovePath struct {
	From, To IndexPath
}

// Batch is a set of changes converted to index paths and grouped by operation.
type Batch struct {
	Deletes  []IndexPath // Positions before the update
	Inserts  []IndexPath // Positions after the update
	Replaces []IndexPath // Positions after the update
	Moves    []MovePath
}

// Convert converts changes into index paths in a single section.
//
// The following option is supported: [Section]
func Convert[T any](changes []listdiff.Change[T], opts ...listdiff.Option) Batch {
	cfg := config.FromOptions(opts, config.Section)
	path := func(i int) IndexPath {
		return IndexPath{Section: cfg.Section, Item: i}
	}

	var b Batch
	for _, c := range changes {
		switch c := c.(type) {
		case listdiff.Delete[T]:
			b.Deletes = append(b.Deletes, path(c.Index))
		case listdiff.Insert[T]:
			b.Inserts = append(b.Inserts, path(c.Index))
		case listdiff.Replace[T]:
			b.Replaces = append(b.Replaces, path(c.Index))
		case listdiff.Move[T]:
			b.Moves = append(b.Moves, MovePath{From: path(c.From), To: path(c.To)})
		default:
			panic("never reached")
		}
	}
	return b
}

// View is a view that displays items in sections.
type View interface {
	// PerformBatchUpdates runs updates as a single transaction. completion, if not nil, is called
	// when the transaction is done, finished reports whether it ran to completion.
	PerformBatchUpdates(updates func(), completion func(finished bool))

	DeleteItems(paths []IndexPath)
	InsertItems(paths []IndexPath)
	MoveItem(from, to IndexPath)
	ReloadItems(paths []IndexPath)
}

// Reload updates v with changes.
//
// Within a single batch transaction, updateData is called first to update the data source backing
// the view, followed by deletions, insertions and moves. Replaced items are reloaded after the
// transaction. completion is passed on to [View.PerformBatchUpdates]. Both updateData and
// completion may be nil.
//
// The following option is supported: [Section]
func Reload[T any](v View, changes []listdiff.Change[T], updateData func(), completion func(finished bool), opts ...Option) {
	b := Convert(changes, opts...)

	v.PerformBatchUpdates(func() {
		if updateData != nil {
			updateData()
		}
		if len(b.Deletes) > 0 {
			v.DeleteItems(b.Deletes)
		}
		if len(b.Inserts) > 0 {
			v.InsertItems(b.Inserts)
		}
		for _, m := range b.Moves {
			v.MoveItem(m.From, m.To)
		}
	}, completion)

	// Reloading items needs to happen outside of the batch.
	if len(b.Replaces) > 0 {
		v.ReloadItems(b.Replaces)
	}
}
