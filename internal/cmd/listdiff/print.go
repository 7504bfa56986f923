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

	"github.com/fatih/color"
	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/records"
)

type printer struct {
	w                  io.Writer
	del, ins, rep, mov *color.Color
}

func newPrinter(w io.Writer, colored bool) *printer {
	p := &printer{
		w:   w,
		del: color.New(color.FgRed),
		ins: color.New(color.FgGreen),
		rep: color.New(color.FgYellow),
		mov: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.del, p.ins, p.rep, p.mov} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) print(changes []listdiff.Change[records.Record]) error {
	for _, c := range changes {
		var err error
		switch c := c.(type) {
		case listdiff.Delete[records.Record]:
			_, err = p.del.Fprintf(p.w, "delete %d %v\n", c.Index, c.Item)
		case listdiff.Insert[records.Record]:
			_, err = p.ins.Fprintf(p.w, "insert %d %v\n", c.Index, c.Item)
		case listdiff.Replace[records.Record]:
			_, err = p.rep.Fprintf(p.w, "replace %d %v -> %v\n", c.Index, c.OldItem, c.NewItem)
		case listdiff.Move[records.Record]:
			_, err = p.mov.Fprintf(p.w, "move %d -> %d %v\n", c.From, c.To, c.Item)
		default:
			panic("never reached")
		}
		if err != nil {
			return fmt.Errorf("writing output: %v", err)
		}
	}
	return nil
}
