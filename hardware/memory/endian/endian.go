// This file is part of Saroo.
//
// Saroo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Saroo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Saroo.  If not, see <https://www.gnu.org/licenses/>.

// Package endian packs and unpacks 32-bit words to and from byte buffers. The
// console CPU is big-endian but the companion controller's shared windows
// hold little-endian fields, so both orders are needed when marshalling.
//
// The functions panic if the buffer is shorter than four bytes, in the same
// way that slicing would.
package endian

import "encoding/binary"

// BE32 returns the big-endian word at the start of b.
func BE32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// LE32 returns the little-endian word at the start of b.
func LE32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// PutBE32 writes v to the start of b in big-endian order.
func PutBE32(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// PutLE32 writes v to the start of b in little-endian order.
func PutLE32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// BE16 returns the big-endian half-word at the start of b.
func BE16(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}

// PutBE16 writes v to the start of b in big-endian order.
func PutBE16(b []byte, v uint16) {
	binary.BigEndian.PutUint16(b, v)
}
