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
	"encoding/binary"
	"fmt"
	"math/bits"
	"strconv"
)

// mangleOverwrite copies up to sz bytes of src into the buffer at off,
// clamped to the buffer tail. It never grows the buffer.
func mangleOverwrite(r *Run, src []byte, off, sz int) {
	if maxToCopy := r.size - off; sz > maxToCopy {
		sz = maxToCopy
	}
	copy(r.data[off:off+sz], src[:sz])
}

// mangleMove copies length bytes from offFrom to offTo in place,
// overlap-safe. The copy is clamped so the final tail byte of the
// buffer is never read or written, which lets growth operators shift
// content rightward without spilling past the end.
func mangleMove(r *Run, offFrom, offTo, length int) {
	if offFrom >= r.size {
		return
	}
	if offTo >= r.size {
		return
	}

	lenFrom := r.size - offFrom - 1
	lenTo := r.size - offTo - 1

	if length > lenFrom {
		length = lenFrom
	}
	if length > lenTo {
		length = lenTo
	}
	if length <= 0 {
		return
	}

	copy(r.data[offTo:offTo+length], r.data[offFrom:offFrom+length])
}

// mangleInflate grows the buffer by up to length bytes (clamped to
// MaxSize), shifts the content at off rightward and fills the gap with
// random bytes. No-op when already at MaxSize.
func mangleInflate(r *Run, off, length int, printable bool) {
	if r.size >= r.MaxSize {
		return
	}
	if length > r.MaxSize-r.size {
		length = r.MaxSize - r.size
	}

	r.SetSize(r.size + length)
	mangleMove(r, off, off+length, r.size)
	if printable {
		r.Rnd.BufPrintable(r.data[off : off+length])
	} else {
		r.Rnd.Buf(r.data[off : off+length])
	}
}

func mangleMemMove(r *Run, printable bool) {
	offFrom := int(r.Rnd.Get(0, uint64(r.size-1)))
	offTo := int(r.Rnd.Get(0, uint64(r.size-1)))
	// Deliberately drawn from [0, size]; mangleMove clamps.
	length := int(r.Rnd.Get(0, uint64(r.size)))

	mangleMove(r, offFrom, offTo, length)
}

func mangleBytes(r *Run, printable bool) {
	off := int(r.Rnd.Get(0, uint64(r.size-1)))

	var buf [8]byte
	if printable {
		r.Rnd.BufPrintable(buf[:])
	} else {
		r.Rnd.Buf(buf[:])
	}

	// Overwrite with random 1-8-byte values
	toCopy := int(r.Rnd.Get(1, 8))
	mangleOverwrite(r, buf[:], off, toCopy)
}

func mangleBit(r *Run, printable bool) {
	off := int(r.Rnd.Get(0, uint64(r.size-1)))
	r.data[off] ^= byte(1) << r.Rnd.Get(0, 7)
	if printable {
		ToPrintable(r.data[off : off+1])
	}
}

func mangleDictionaryInsert(r *Run, printable bool) {
	if r.Dict.Len() == 0 {
		mangleBit(r, printable)
		return
	}

	entry := r.Dict.Entry(int(r.Rnd.Get(0, uint64(r.Dict.Len()-1))))
	off := int(r.Rnd.Get(0, uint64(r.size-1)))
	mangleInflate(r, off, len(entry), printable)
	mangleOverwrite(r, entry, off, len(entry))
}

func mangleDictionary(r *Run, printable bool) {
	if r.Dict.Len() == 0 {
		mangleBit(r, printable)
		return
	}

	off := int(r.Rnd.Get(0, uint64(r.size-1)))
	entry := r.Dict.Entry(int(r.Rnd.Get(0, uint64(r.Dict.Len()-1))))
	mangleOverwrite(r, entry, off, len(entry))
}

func mangleMagic(r *Run, printable bool) {
	off := int(r.Rnd.Get(0, uint64(r.size-1)))
	choice := r.Rnd.Get(0, uint64(len(magicTable)-1))
	m := magicTable[choice]
	mangleOverwrite(r, []byte(m.val), off, m.size)

	if printable {
		end := off + m.size
		if end > r.size {
			end = r.size
		}
		ToPrintable(r.data[off:end])
	}
}

func mangleMemSet(r *Run, printable bool) {
	var val byte
	if printable {
		val = r.Rnd.Printable()
	} else {
		val = byte(r.Rnd.Get(0, 255))
	}

	off := int(r.Rnd.Get(0, uint64(r.size-1)))
	sz := int(r.Rnd.Get(1, uint64(r.size-off)))
	for i := off; i < off+sz; i++ {
		r.data[i] = val
	}
}

func mangleRandom(r *Run, printable bool) {
	off := int(r.Rnd.Get(0, uint64(r.size-1)))
	length := int(r.Rnd.Get(1, uint64(r.size-off)))
	if printable {
		r.Rnd.BufPrintable(r.data[off : off+length])
	} else {
		r.Rnd.Buf(r.data[off : off+length])
	}
}

// mangleAddSubWithRange perturbs a varLen-wide little-endian integer at
// off by a random delta in [-4096, 4096], half the time through a
// byte-swap so the value is treated as foreign-endian.
func mangleAddSubWithRange(r *Run, off, varLen int) {
	delta := int(r.Rnd.Get(0, 8192)) - 4096

	switch varLen {
	case 1:
		r.data[off] = byte(int(r.data[off]) + delta)
	case 2:
		val := int16(binary.LittleEndian.Uint16(r.data[off:]))
		if r.Rnd.Uint64()&0x1 == 1 {
			val += int16(delta)
		} else {
			// Foreign endianess
			val = int16(bits.ReverseBytes16(uint16(val)))
			val += int16(delta)
			val = int16(bits.ReverseBytes16(uint16(val)))
		}
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(val))
		mangleOverwrite(r, buf[:], off, varLen)
	case 4:
		val := int32(binary.LittleEndian.Uint32(r.data[off:]))
		if r.Rnd.Uint64()&0x1 == 1 {
			val += int32(delta)
		} else {
			// Foreign endianess
			val = int32(bits.ReverseBytes32(uint32(val)))
			val += int32(delta)
			val = int32(bits.ReverseBytes32(uint32(val)))
		}
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(val))
		mangleOverwrite(r, buf[:], off, varLen)
	case 8:
		val := int64(binary.LittleEndian.Uint64(r.data[off:]))
		if r.Rnd.Uint64()&0x1 == 1 {
			val += int64(delta)
		} else {
			// Foreign endianess
			val = int64(bits.ReverseBytes64(uint64(val)))
			val += int64(delta)
			val = int64(bits.ReverseBytes64(uint64(val)))
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(val))
		mangleOverwrite(r, buf[:], off, varLen)
	default:
		panic(fmt.Sprintf("mangle: AddSub: unknown variable length size: %d", varLen))
	}
}

func mangleAddSub(r *Run, printable bool) {
	off := int(r.Rnd.Get(0, uint64(r.size-1)))

	// 1,2,4,8
	varLen := 1 << r.Rnd.Get(0, 3)
	if r.size-off < varLen {
		varLen = 1
	}

	mangleAddSubWithRange(r, off, varLen)
	if printable {
		ToPrintable(r.data[off : off+varLen])
	}
}

func mangleIncByte(r *Run, printable bool) {
	off := int(r.Rnd.Get(0, uint64(r.size-1)))
	if printable {
		r.data[off] = byte((int(r.data[off])-32+1)%95 + 32)
	} else {
		r.data[off]++
	}
}

func mangleDecByte(r *Run, printable bool) {
	off := int(r.Rnd.Get(0, uint64(r.size-1)))
	if printable {
		r.data[off] = byte((int(r.data[off])-32+94)%95 + 32)
	} else {
		r.data[off]--
	}
}

func mangleNegByte(r *Run, printable bool) {
	off := int(r.Rnd.Get(0, uint64(r.size-1)))
	if printable {
		r.data[off] = byte(94 - (int(r.data[off]) - 32) + 32)
	} else {
		r.data[off] = ^r.data[off]
	}
}

func mangleCloneByte(r *Run, printable bool) {
	off1 := int(r.Rnd.Get(0, uint64(r.size-1)))
	off2 := int(r.Rnd.Get(0, uint64(r.size-1)))

	r.data[off1], r.data[off2] = r.data[off2], r.data[off1]
}

func mangleExpand(r *Run, printable bool) {
	off := int(r.Rnd.Get(0, uint64(r.size-1)))
	length := int(r.Rnd.Get(1, uint64(r.size-off)))

	mangleInflate(r, off, length, printable)
}

func mangleShrink(r *Run, printable bool) {
	if r.size <= 1 {
		return
	}

	length := int(r.Rnd.Get(1, uint64(r.size-1)))
	off := int(r.Rnd.Get(0, uint64(length)))

	r.SetSize(r.size - length)
	mangleMove(r, off+length, off, r.size)
}

func mangleResize(r *Run, printable bool) {
	oldsz := r.size
	v := r.Rnd.Get(0, 16)
	newsz := 0

	switch {
	case v == 0:
		newsz = int(r.Rnd.Get(1, uint64(r.MaxSize)))
	case v >= 1 && v <= 8:
		newsz = oldsz + int(v)
	case v >= 9 && v <= 16:
		newsz = oldsz + 8 - int(v)
	default:
		panic(fmt.Sprintf("mangle: Resize: illegal random value: %d", v))
	}
	if newsz < 1 {
		newsz = 1
	}
	if newsz > r.MaxSize {
		newsz = r.MaxSize
	}

	r.SetSize(newsz)
	if newsz > oldsz {
		if printable {
			r.Rnd.BufPrintable(r.data[oldsz:newsz])
		} else {
			r.Rnd.Buf(r.data[oldsz:newsz])
		}
	}
}

func mangleASCIIVal(r *Run, printable bool) {
	buf := strconv.AppendInt(nil, int64(r.Rnd.Uint64()), 10)
	off := int(r.Rnd.Get(0, uint64(r.size-1)))

	mangleOverwrite(r, buf, off, len(buf))
}

// mangleFunc is a single mutation operator. Every operator re-checks
// bounds against the current buffer size, so operators compose in any
// order.
type mangleFunc func(r *Run, printable bool)

// mangleFuncs is the operator table MangleContent draws from uniformly.
// Resize is driver-only and deliberately absent.
var mangleFuncs = []mangleFunc{
	mangleBit,
	mangleBytes,
	mangleMagic,
	mangleIncByte,
	mangleDecByte,
	mangleNegByte,
	mangleAddSub,
	mangleDictionary,
	mangleDictionaryInsert,
	mangleMemMove,
	mangleMemSet,
	mangleRandom,
	mangleCloneByte,
	mangleExpand,
	mangleShrink,
	mangleASCIIVal,
}

// MangleContent mutates the run buffer in place: one whole-buffer
// resize, then a uniform draw of 1..MutationsPerRun stacked operators.
// A zero MutationsPerRun leaves the buffer untouched.
func MangleContent(r *Run) {
	if r.MutationsPerRun == 0 {
		return
	}

	mangleResize(r, r.OnlyPrintable)

	changesCnt := r.Rnd.Get(1, uint64(r.MutationsPerRun))
	for x := uint64(0); x < changesCnt; x++ {
		choice := r.Rnd.Get(0, uint64(len(mangleFuncs)-1))
		mangleFuncs[choice](r, r.OnlyPrintable)
	}
}
