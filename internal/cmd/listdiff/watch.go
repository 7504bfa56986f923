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
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/records"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Print the changes every time a file is written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := records.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			path := filepath.Clean(args[0])
			out := cmd.OutOrStdout()
			t := &tracker{format: format, sep: opts.sep}

			// Print the initial version, that's everything inserted.
			if err := t.load(path, opts, out); err != nil {
				return err
			}

			// Watch the directory instead of the file. Many editors replace a file instead of
			// writing to it, which would end a watch on the file itself.
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting watcher: %v", err)
			}
			defer watcher.Close()
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("starting watch: %v", err)
			}
			log.Printf("Watching %s, press Ctrl-C to stop", path)

			// Setup signals to react to Ctrl-C.
			sigint := make(chan os.Signal, 1)
			signal.Notify(sigint, os.Interrupt)
			defer signal.Stop(sigint)

			return t.watch(path, opts, out, watcher.Events, watcher.Errors, sigint)
		},
	}
}

// watch reloads path for every write or create event until stop receives a signal.
func (t *tracker) watch(path string, opts *options, out io.Writer, events <-chan fsnotify.Event, errs <-chan error, stop <-chan os.Signal) error {
	for {
		select {
		case event := <-events:
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := t.load(path, opts, out); err != nil {
				log.Printf("failed to update: %v", err)
			}
		case err := <-errs:
			return fmt.Errorf("watching: %v", err)
		case <-stop:
			fmt.Fprint(out, "\r") // remove Ctrl-C output characters
			log.Printf("Received Ctrl-C, shutting down")
			return nil
		}
	}
}

// tracker keeps the last version of a list and computes the changes to the next version.
type tracker struct {
	format  records.Format
	sep     string
	prev    []records.Record
	version int
}

// update parses data as the next version and returns the changes to the previous version.
func (t *tracker) update(data []byte) ([]listdiff.Change[records.Record], error) {
	next, err := records.Parse(data, t.format, t.sep)
	if err != nil {
		return nil, err
	}
	changes := listdiff.DiffFunc(t.prev, next, records.ID, records.Equal)
	t.prev = next
	t.version++
	return changes, nil
}

// load reads path and writes the changes to the previous version. Versions without changes are
// skipped.
func (t *tracker) load(path string, opts *options, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %v", path, err)
	}
	changes, err := t.update(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %v", path, err)
	}
	if len(changes) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(out, "@@ version %d @@\n", t.version); err != nil {
		return fmt.Errorf("writing output: %v", err)
	}
	return opts.write(out, changes)
}
