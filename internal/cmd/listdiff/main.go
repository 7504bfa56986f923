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

// listdiff prints the changes between two versions of a list of records.
//
// Records are read from text files, either one record per line or one JSON object per line. Two
// commands are supported:
//
//	listdiff diff OLD NEW   prints the changes between two files
//	listdiff watch FILE     prints the changes every time FILE is written
//
// This is mostly useful to explore how the algorithm behaves for a given input.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/records"
	"znkr.io/listdiff/sections"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	format  string
	sep     string
	section int
	color   bool
}

func newRootCmd() *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:          "listdiff [command]",
		Short:        "Compare lists of records by identity",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.format, "format", "lines", "input format, lines or jsonl")
	flags.StringVar(&opts.sep, "sep", "", "separator between identity and content for the lines format (default: the whole line is the identity)")
	flags.IntVar(&opts.section, "sections", -1, "if >=0, print view updates for this section instead of changes")
	flags.BoolVar(&opts.color, "color", false, "colorize output")

	rootCmd.AddCommand(newDiffCmd(&opts))
	rootCmd.AddCommand(newWatchCmd(&opts))
	return rootCmd
}

func newDiffCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Print the changes between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := records.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			old, err := readRecords(args[0], format, opts.sep)
			if err != nil {
				return err
			}
			new, err := readRecords(args[1], format, opts.sep)
			if err != nil {
				return err
			}
			changes := listdiff.DiffFunc(old, new, records.ID, records.Equal)
			return opts.write(cmd.OutOrStdout(), changes)
		},
	}
}

func readRecords(path string, format records.Format, sep string) ([]records.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}
	recs, err := records.Parse(data, format, sep)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %v", path, err)
	}
	return recs, nil
}

// write writes changes to w, either as a list of changes or as view updates.
func (opts *options) write(w io.Writer, changes []listdiff.Change[records.Record]) error {
	if opts.section < 0 {
		return newPrinter(w, opts.color).print(changes)
	}

	var rec sections.Recorder
	sections.Reload(&rec, changes, nil, nil, sections.Section(opts.section))
	for _, call := range rec.Calls {
		if _, err := fmt.Fprintln(w, call); err != nil {
			return fmt.Errorf("writing output: %v", err)
		}
	}
	return nil
}
