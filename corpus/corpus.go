// Copyright 2024 Fudong and Hosen
// This file is part of the MangleFuzz library.
//
// The MangleFuzz library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The MangleFuzz library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the MangleFuzz library. If not, see <http://www.gnu.org/licenses/>.

// Package corpus stores candidate inputs for the mutation engine:
// an ordered in-memory set, optionally mirrored to a directory where
// entries are content-addressed by hash.
package corpus

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/natefinch/atomic"
	"golang.org/x/crypto/sha3"

	"MangleFuzz/mangle"
)

// Corpus holds the candidate inputs of one fuzzing session. It is not
// safe for concurrent use.
type Corpus struct {
	dir       string
	maxFileSz int
	entries   [][]byte
	seen      map[string]struct{}
}

// New creates a corpus. dir may be empty for a purely in-memory corpus;
// entries larger than maxFileSz are truncated on insert.
func New(dir string, maxFileSz int) *Corpus {
	return &Corpus{
		dir:       dir,
		maxFileSz: maxFileSz,
		seen:      make(map[string]struct{}),
	}
}

// Load reads every regular file in the corpus directory, in name order
// so the in-memory ordering is stable across sessions.
func (c *Corpus) Load() error {
	if c.dir == "" {
		return nil
	}
	dirEntries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("failed to read corpus directory: %w", err)
	}
	names := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.Type().IsRegular() {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(c.dir, name))
		if err != nil {
			return fmt.Errorf("failed to read corpus entry %s: %w", name, err)
		}
		c.insert(data)
	}
	return nil
}

// Add inserts data, deduplicating by content hash. When the corpus is
// backed by a directory the entry is also persisted there. Reports
// whether the entry was new.
func (c *Corpus) Add(data []byte) (bool, error) {
	name, fresh := c.insert(data)
	if !fresh || c.dir == "" {
		return fresh, nil
	}
	entry := c.entries[len(c.entries)-1]
	if err := atomic.WriteFile(filepath.Join(c.dir, name), bytes.NewReader(entry)); err != nil {
		return true, fmt.Errorf("failed to persist corpus entry %s: %w", name, err)
	}
	return true, nil
}

func (c *Corpus) insert(data []byte) (string, bool) {
	if len(data) > c.maxFileSz {
		data = data[:c.maxFileSz]
	}
	name := entryName(data)
	if _, ok := c.seen[name]; ok {
		return name, false
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	c.entries = append(c.entries, cp)
	c.seen[name] = struct{}{}
	return name, true
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Entry returns the entry at index i. The caller must not modify it.
func (c *Corpus) Entry(i int) []byte {
	return c.entries[i]
}

// Choose picks a uniformly random entry, or nil if the corpus is empty.
func (c *Corpus) Choose(rnd mangle.RNG) []byte {
	if len(c.entries) == 0 {
		return nil
	}
	return c.entries[rnd.Get(0, uint64(len(c.entries)-1))]
}

// entryName derives the content-addressed file name of an entry.
func entryName(data []byte) string {
	sum := sha3.Sum256(data)
	return hexutil.Encode(sum[:])
}
