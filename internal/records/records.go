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

// Package records parses text into a list of records with an identity.
package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Format is an input format.
type Format int

const (
	// Lines treats every line as a record. The identity is the part of the line before a
	// separator or the whole line if there is no separator.
	Lines Format = iota

	// JSONLines treats every non-empty line as a JSON object. The identity is the value of the
	// "id" field, a string id never matches a number id.
	JSONLines
)

func (f Format) String() string {
	switch f {
	case Lines:
		return "lines"
	case JSONLines:
		return "jsonl"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "lines":
		return Lines, nil
	case "jsonl":
		return JSONLines, nil
	default:
		return 0, fmt.Errorf("unknown format %q, want lines or jsonl", name)
	}
}

// Record is an element of a list.
type Record struct {
	ID      string
	Content string
}

func (r Record) String() string { return r.Content }

// ID returns the identity of a record.
func ID(r Record) string { return r.ID }

// Equal reports whether two records have the same content.
func Equal(a, b Record) bool { return a.Content == b.Content }

// Parse parses data in the given format. For [Lines], sep separates the identity from the rest of
// the line, an empty sep uses the whole line as identity.
func Parse(data []byte, format Format, sep string) ([]Record, error) {
	lines := splitLines(data)
	out := make([]Record, 0, len(lines))
	for i, line := range lines {
		switch format {
		case Lines:
			id := line
			if sep != "" {
				id, _, _ = strings.Cut(line, sep)
			}
			out = append(out, Record{ID: id, Content: line})

		case JSONLines:
			if strings.TrimSpace(line) == "" {
				continue
			}
			r, err := parseJSON(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", i+1, err)
			}
			out = append(out, r)

		default:
			panic("never reached")
		}
	}
	return out, nil
}

func parseJSON(line string) (Record, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		return Record{}, fmt.Errorf("parsing JSON object: %v", err)
	}
	raw, ok := obj["id"]
	if !ok {
		return Record{}, fmt.Errorf("missing id field")
	}

	// String ids are kept quoted, numbers are kept as written. That way, the string "1" and the
	// number 1 are different identities, while different escapes of the same string are not.
	var id string
	switch {
	case len(raw) > 0 && raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Record{}, fmt.Errorf("parsing id: %v", err)
		}
		id = strconv.Quote(s)
	case len(raw) > 0 && (raw[0] == '-' || '0' <= raw[0] && raw[0] <= '9'):
		id = string(raw)
	default:
		return Record{}, fmt.Errorf("id must be a string or a number, got %s", raw)
	}

	// Use the compact representation as content, whitespace changes don't count as changes.
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(line)); err != nil {
		return Record{}, fmt.Errorf("compacting JSON: %v", err)
	}
	return Record{ID: id, Content: buf.String()}, nil
}

// splitLines splits data on '\n' and returns the lines without line endings. A missing newline at
// the end of the input doesn't add an extra line.
func splitLines(data []byte) []string {
	s := string(data)
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	lines := make([]string, 0, n)
	for len(s) > 0 {
		line, rest, _ := strings.Cut(s, "\n")
		lines = append(lines, strings.TrimSuffix(line, "\r"))
		s = rest
	}
	return lines
}
