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

package mangle

import (
	"fmt"
	"math/rand"
	"time"
)

// Printable ASCII covers [0x20, 0x7E], 95 values.
const (
	printableMin   = 0x20
	printableMax   = 0x7E
	printableRange = printableMax - printableMin + 1
)

// RNG is the random source driving all mutation decisions. It is not
// required to be safe for concurrent use; each Run owns its own.
type RNG interface {
	// Get returns a uniform value in the inclusive range [lo, hi].
	Get(lo, hi uint64) uint64
	// Uint64 returns a uniform 64-bit value.
	Uint64() uint64
	// Buf fills dst with random bytes.
	Buf(dst []byte)
	// BufPrintable fills dst with random printable bytes.
	BufPrintable(dst []byte)
	// Printable returns one random printable byte.
	Printable() byte
}

// Rand is the default seeded RNG.
type Rand struct {
	src *rand.Rand
}

// NewRand creates a deterministic random source. A zero seed means use
// the current time.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// Get returns a uniform value in the inclusive range [lo, hi].
func (r *Rand) Get(lo, hi uint64) uint64 {
	if lo > hi {
		panic(fmt.Sprintf("mangle: invalid random range [%d, %d]", lo, hi))
	}
	return lo + r.src.Uint64()%(hi-lo+1)
}

// Uint64 returns a uniform 64-bit value.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// Buf fills dst with random bytes.
func (r *Rand) Buf(dst []byte) {
	r.src.Read(dst)
}

// BufPrintable fills dst with random printable bytes.
func (r *Rand) BufPrintable(dst []byte) {
	for i := range dst {
		dst[i] = r.Printable()
	}
}

// Printable returns one random printable byte.
func (r *Rand) Printable() byte {
	return byte(r.Get(printableMin, printableMax))
}

// ToPrintable projects every byte of buf onto the printable range via
// b mod 95 + 32.
func ToPrintable(buf []byte) {
	for i, b := range buf {
		buf[i] = b%printableRange + printableMin
	}
}
