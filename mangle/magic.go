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

// magicVal is one entry of the built-in constants table: an 8-byte
// pattern of which the first size bytes are spliced into the buffer.
type magicVal struct {
	val  string
	size int
}

// magicTable holds boundary and signed-extremum constants of widths
// 1, 2, 4 and 8, each in neutral, big-endian and little-endian form.
var magicTable = []magicVal{
	// 1B - No endianness
	{"\x00\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x01\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x02\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x03\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x04\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x05\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x06\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x07\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x08\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x09\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x0A\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x0B\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x0C\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x0D\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x0E\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x0F\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x10\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x20\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x40\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x7E\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x7F\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x80\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\x81\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\xC0\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\xFE\x00\x00\x00\x00\x00\x00\x00", 1},
	{"\xFF\x00\x00\x00\x00\x00\x00\x00", 1},
	// 2B - NE
	{"\x00\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x01\x01\x00\x00\x00\x00\x00\x00", 2},
	{"\x80\x80\x00\x00\x00\x00\x00\x00", 2},
	{"\xFF\xFF\x00\x00\x00\x00\x00\x00", 2},
	// 2B - BE
	{"\x00\x01\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x02\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x03\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x04\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x05\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x06\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x07\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x08\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x09\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x0A\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x0B\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x0C\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x0D\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x0E\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x0F\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x10\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x20\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x40\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x7E\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x7F\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x80\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x81\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\xC0\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\xFE\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\xFF\x00\x00\x00\x00\x00\x00", 2},
	{"\x7E\xFF\x00\x00\x00\x00\x00\x00", 2},
	{"\x7F\xFF\x00\x00\x00\x00\x00\x00", 2},
	{"\x80\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x80\x01\x00\x00\x00\x00\x00\x00", 2},
	{"\xFF\xFE\x00\x00\x00\x00\x00\x00", 2},
	// 2B - LE
	{"\x00\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x01\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x02\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x03\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x04\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x05\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x06\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x07\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x08\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x09\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x0A\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x0B\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x0C\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x0D\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x0E\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x0F\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x10\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x20\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x40\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x7E\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x7F\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x80\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\x81\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\xC0\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\xFE\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\xFF\x00\x00\x00\x00\x00\x00\x00", 2},
	{"\xFF\x7E\x00\x00\x00\x00\x00\x00", 2},
	{"\xFF\x7F\x00\x00\x00\x00\x00\x00", 2},
	{"\x00\x80\x00\x00\x00\x00\x00\x00", 2},
	{"\x01\x80\x00\x00\x00\x00\x00\x00", 2},
	{"\xFE\xFF\x00\x00\x00\x00\x00\x00", 2},
	// 4B - NE
	{"\x00\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x01\x01\x01\x01\x00\x00\x00\x00", 4},
	{"\x80\x80\x80\x80\x00\x00\x00\x00", 4},
	{"\xFF\xFF\xFF\xFF\x00\x00\x00\x00", 4},
	// 4B - BE
	{"\x00\x00\x00\x01\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x02\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x03\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x04\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x05\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x06\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x07\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x08\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x09\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x0A\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x0B\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x0C\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x0D\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x0E\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x0F\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x10\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x20\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x40\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x7E\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x7F\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x80\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x81\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\xC0\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\xFE\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\xFF\x00\x00\x00\x00", 4},
	{"\x7E\xFF\xFF\xFF\x00\x00\x00\x00", 4},
	{"\x7F\xFF\xFF\xFF\x00\x00\x00\x00", 4},
	{"\x80\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x80\x00\x00\x01\x00\x00\x00\x00", 4},
	{"\xFF\xFF\xFF\xFE\x00\x00\x00\x00", 4},
	// 4B - LE
	{"\x00\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x01\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x02\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x03\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x04\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x05\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x06\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x07\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x08\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x09\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x0A\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x0B\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x0C\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x0D\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x0E\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x0F\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x10\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x20\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x40\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x7E\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x7F\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x80\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\x81\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\xC0\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\xFE\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\xFF\x00\x00\x00\x00\x00\x00\x00", 4},
	{"\xFF\xFF\xFF\x7E\x00\x00\x00\x00", 4},
	{"\xFF\xFF\xFF\x7F\x00\x00\x00\x00", 4},
	{"\x00\x00\x00\x80\x00\x00\x00\x00", 4},
	{"\x01\x00\x00\x80\x00\x00\x00\x00", 4},
	{"\xFE\xFF\xFF\xFF\x00\x00\x00\x00", 4},
	// 8B - NE
	{"\x00\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x01\x01\x01\x01\x01\x01\x01\x01", 8},
	{"\x80\x80\x80\x80\x80\x80\x80\x80", 8},
	{"\xFF\xFF\xFF\xFF\xFF\xFF\xFF\xFF", 8},
	// 8B - BE
	{"\x00\x00\x00\x00\x00\x00\x00\x01", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x02", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x03", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x04", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x05", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x06", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x07", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x08", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x09", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x0A", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x0B", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x0C", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x0D", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x0E", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x0F", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x10", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x20", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x40", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x7E", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x7F", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x80", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x81", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\xC0", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\xFE", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\xFF", 8},
	{"\x7E\xFF\xFF\xFF\xFF\xFF\xFF\xFF", 8},
	{"\x7F\xFF\xFF\xFF\xFF\xFF\xFF\xFF", 8},
	{"\x80\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x80\x00\x00\x00\x00\x00\x00\x01", 8},
	{"\xFF\xFF\xFF\xFF\xFF\xFF\xFF\xFE", 8},
	// 8B - LE
	{"\x00\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x01\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x02\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x03\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x04\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x05\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x06\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x07\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x08\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x09\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x0A\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x0B\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x0C\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x0D\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x0E\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x0F\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x10\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x20\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x40\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x7E\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x7F\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x80\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\x81\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\xC0\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\xFE\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\xFF\x00\x00\x00\x00\x00\x00\x00", 8},
	{"\xFF\xFF\xFF\xFF\xFF\xFF\xFF\x7E", 8},
	{"\xFF\xFF\xFF\xFF\xFF\xFF\xFF\x7F", 8},
	{"\x00\x00\x00\x00\x00\x00\x00\x80", 8},
	{"\x01\x00\x00\x00\x00\x00\x00\x80", 8},
	{"\xFE\xFF\xFF\xFF\xFF\xFF\xFF\xFF", 8},
}
