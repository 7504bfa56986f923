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

package sections

import (
	"fmt"
	"strings"
)

// Call is a single call recorded by a [Recorder].
type Call struct {
	Method string
	Paths  []IndexPath
}

func (c Call) String() string {
	if len(c.Paths) == 0 {
		return c.Method
	}
	var sb strings.Builder
	sb.WriteString(c.Method)
	for _, p := range c.Paths {
		fmt.Fprintf(&sb, " %v", p)
	}
	return sb.String()
}

// Recorder is a [View] that records all calls. The beginning and end of a batch are recorded as
// the methods "BeginBatch" and "EndBatch". Batches always finish, completion is called right after
// the batch ends.
type Recorder struct {
	Calls   []Call
	inBatch bool
}

func (r *Recorder) PerformBatchUpdates(updates func(), completion func(finished bool)) {
	if r.inBatch {
		panic("nested batch updates")
	}
	r.inBatch = true
	r.record("BeginBatch")
	updates()
	r.record("EndBatch")
	r.inBatch = false
	if completion != nil {
		completion(true)
	}
}

func (r *Recorder) DeleteItems(paths []IndexPath) { r.record("DeleteItems", paths...) }
func (r *Recorder) InsertItems(paths []IndexPath) { r.record("InsertItems", paths...) }
func (r *Recorder) MoveItem(from, to IndexPath)   { r.record("MoveItem", from, to) }
func (r *Recorder) ReloadItems(paths []IndexPath) { r.record("ReloadItems", paths...) }

func (r *Recorder) record(method string, paths ...IndexPath) {
	r.Calls = append(r.Calls, Call{Method: method, Paths: paths})
}
