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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/google/go-cmp/cmp"
	"znkr.io/listdiff/internal/records"
)

func TestTrackerLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list")
	versions := []string{
		"a\nb\nc\n",
		"a\nb\nc\n", // unchanged, skipped
		"c\na\nb\n",
		"a\nb\n",
	}
	want := `@@ version 1 @@
insert 0 a
insert 1 b
insert 2 c
@@ version 3 @@
move 2 -> 0 c
move 0 -> 1 a
move 1 -> 2 b
@@ version 4 @@
delete 0 c
`

	var out bytes.Buffer
	opts := &options{format: "lines", section: -1}
	tr := &tracker{format: records.Lines}
	for _, v := range versions {
		if err := os.WriteFile(path, []byte(v), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := tr.load(path, opts, &out); err != nil {
			t.Fatalf("load(...) failed: %v", err)
		}
	}
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("load(...) output is different [-want,+got]:\n%s", diff)
	}
}

func TestTrackerLoadMissingFile(t *testing.T) {
	tr := &tracker{format: records.Lines}
	var out bytes.Buffer
	err := tr.load(filepath.Join(t.TempDir(), "missing"), &options{section: -1}, &out)
	if err == nil {
		t.Fatalf("load(...) succeeded, want error")
	}
	if tr.version != 0 {
		t.Errorf("version = %d after failed load, want 0", tr.version)
	}
}

func TestTrackerWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list")
	if err := os.WriteFile(path, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	opts := &options{format: "lines", section: -1}
	tr := &tracker{format: records.Lines}
	if err := tr.load(path, opts, &out); err != nil {
		t.Fatalf("load(...) failed: %v", err)
	}

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	stop := make(chan os.Signal)
	done := make(chan error)
	go func() { done <- tr.watch(path, opts, &out, events, errs, stop) }()

	if err := os.WriteFile(path, []byte("b\na\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	events <- fsnotify.Event{Name: filepath.Join(dir, "other"), Op: fsnotify.Write}
	events <- fsnotify.Event{Name: path, Op: fsnotify.Chmod}
	events <- fsnotify.Event{Name: path, Op: fsnotify.Write}
	stop <- os.Interrupt
	if err := <-done; err != nil {
		t.Fatalf("watch(...) failed: %v", err)
	}

	want := `@@ version 1 @@
insert 0 a
insert 1 b
@@ version 2 @@
move 1 -> 0 b
move 0 -> 1 a
` + "\r"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("watch(...) output is different [-want,+got]:\n%s", diff)
	}
}
