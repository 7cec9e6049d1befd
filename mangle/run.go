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

// Package mangle implements the byte-buffer mutation engine: a set of
// randomized, bounds-checked operators stacked over a single candidate
// input by MangleContent.
package mangle

import (
	"fmt"

	"MangleFuzz/dict"
)

// Run holds the mutable state of one candidate input between mutations.
// The buffer is borrowed by the operators for the duration of a
// MangleContent call; a Run must not be mutated concurrently.
type Run struct {
	// MaxSize is the hard ceiling on the buffer size. Growth operators
	// clamp against it and never exceed it.
	MaxSize int

	// MutationsPerRun caps the number of stacked operator applications
	// per MangleContent call. Zero disables mutation entirely.
	MutationsPerRun int

	// OnlyPrintable constrains every byte written by an operator to the
	// printable ASCII range [0x20, 0x7E]. Bytes the operators never
	// touch are left as-is, so a printable seed is the caller's job.
	OnlyPrintable bool

	// Dict is the splice/insert material. May be nil or empty, in which
	// case the dictionary operators fall back to a bit flip.
	Dict *dict.Dictionary

	// Rnd drives every random decision. Same seed, same mutations.
	Rnd RNG

	// data is the backing store. It only ever grows; shrinking the
	// logical size keeps the old tail in place, so a later growth
	// re-exposes the old bytes.
	data []byte
	size int
}

// NewRun copies seed into a fresh run state. An empty seed becomes a
// single zero byte, an oversized one is truncated to maxSize.
func NewRun(seed []byte, maxSize int) *Run {
	if maxSize < 1 {
		panic(fmt.Sprintf("mangle: invalid max size %d", maxSize))
	}
	if len(seed) > maxSize {
		seed = seed[:maxSize]
	}
	n := len(seed)
	if n == 0 {
		n = 1
	}
	r := &Run{
		MaxSize:         maxSize,
		MutationsPerRun: DefaultMutationsPerRun,
		data:            make([]byte, n),
	}
	r.size = len(r.data)
	copy(r.data, seed)
	return r
}

// DefaultMutationsPerRun is the default ceiling on stacked mutations.
const DefaultMutationsPerRun = 6

// Size returns the current logical size of the buffer.
func (r *Run) Size() int {
	return r.size
}

// Input returns the current candidate input. The slice aliases the run
// buffer and is invalidated by the next mutation.
func (r *Run) Input() []byte {
	return r.data[:r.size]
}

// SetSize resizes the buffer so indices [0, n) are addressable. It is
// the single allocation point of the engine. Newly exposed bytes keep
// whatever the backing store held there before; fresh backing bytes
// start as spaces so printable mode survives growth past the high-water
// mark.
func (r *Run) SetSize(n int) {
	if n < 1 || n > r.MaxSize {
		panic(fmt.Sprintf("mangle: SetSize(%d) outside [1, %d]", n, r.MaxSize))
	}
	if n > len(r.data) {
		ext := make([]byte, n-len(r.data))
		for i := range ext {
			ext[i] = printableMin
		}
		r.data = append(r.data, ext...)
	}
	r.size = n
}
