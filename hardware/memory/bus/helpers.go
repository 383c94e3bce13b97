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

package bus

import "github.com/satflash/saroo/hardware/memory/endian"

// ReadLE32 reads a little-endian word through four byte-wide accesses.
func ReadLE32(b Bus, address uint32) uint32 {
	var w [4]byte
	ReadBytes(b, address, w[:])
	return endian.LE32(w[:])
}

// WriteLE32 writes a little-endian word through four byte-wide accesses.
func WriteLE32(b Bus, address uint32, data uint32) {
	var w [4]byte
	endian.PutLE32(w[:], data)
	WriteBytes(b, address, w[:])
}

// ReadBytes fills p with bytes read from consecutive addresses.
func ReadBytes(b Bus, address uint32, p []byte) {
	for i := range p {
		p[i] = b.Read8(address + uint32(i))
	}
}

// WriteBytes writes p to consecutive addresses.
func WriteBytes(b Bus, address uint32, p []byte) {
	for i, v := range p {
		b.Write8(address+uint32(i), v)
	}
}

// WriteString writes s followed by a NUL byte.
func WriteString(b Bus, address uint32, s string) {
	WriteBytes(b, address, []byte(s))
	b.Write8(address+uint32(len(s)), 0x00)
}

// ReadString reads a NUL terminated string of at most max bytes. The string is
// truncated at max bytes if no terminator is found.
func ReadString(b Bus, address uint32, max int) string {
	s := make([]byte, 0, 32)
	for i := 0; i < max; i++ {
		v := b.Read8(address + uint32(i))
		if v == 0x00 {
			break
		}
		s = append(s, v)
	}
	return string(s)
}
