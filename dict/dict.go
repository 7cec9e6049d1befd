// Package dict holds the mutation dictionary: an ordered list of byte
// strings spliced into candidate inputs, typically magic tokens
// extracted from the fuzzing target.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dictionary is an ordered, positionally indexed list of byte strings.
// It is read-only once handed to the mutation engine and may be shared
// across concurrent runs.
type Dictionary struct {
	entries [][]byte
}

// New creates a dictionary from the given entries.
func New(entries ...[]byte) *Dictionary {
	d := &Dictionary{}
	for _, e := range entries {
		d.Add(e)
	}
	return d
}

// Add appends a copy of entry. Empty entries are ignored.
func (d *Dictionary) Add(entry []byte) {
	if len(entry) == 0 {
		return
	}
	cp := make([]byte, len(entry))
	copy(cp, entry)
	d.entries = append(d.entries, cp)
}

// Len returns the number of entries. A nil dictionary is empty.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entry returns the entry at index i. The caller must not modify it.
func (d *Dictionary) Entry(i int) []byte {
	return d.entries[i]
}

// Load reads an AFL-style token file from path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dictionary file %s: %w", path, err)
	}
	return d, nil
}

// Parse reads an AFL-style token list: one entry per line, the value
// double-quoted with an optional name= prefix, supporting \\, \" and
// \xNN escapes. Blank lines and lines starting with # are skipped.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		start := strings.IndexByte(line, '"')
		end := strings.LastIndexByte(line, '"')
		if start < 0 || end <= start {
			return nil, fmt.Errorf("line %d: missing quoted value", lineNo)
		}

		entry, err := unescape(line[start+1 : end])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		d.Add(entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func unescape(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(s) {
			return nil, fmt.Errorf("trailing backslash in %q", s)
		}
		switch s[i] {
		case '\\', '"':
			out = append(out, s[i])
		case 'x':
			if i+2 >= len(s) {
				return nil, fmt.Errorf("truncated \\x escape in %q", s)
			}
			hi, ok1 := hexDigit(s[i+1])
			lo, ok2 := hexDigit(s[i+2])
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("invalid \\x escape in %q", s)
			}
			out = append(out, hi<<4|lo)
			i += 2
		default:
			return nil, fmt.Errorf("unsupported escape \\%c in %q", s[i], s)
		}
	}
	return out, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
