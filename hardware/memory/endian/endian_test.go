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

package endian_test

import (
	"testing"

	"github.com/satflash/saroo/hardware/memory/endian"
	"github.com/satflash/saroo/test"
)

func TestEndian(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04}
	test.ExpectEquality(t, endian.BE32(b), uint32(0x01020304))
	test.ExpectEquality(t, endian.LE32(b), uint32(0x04030201))
	test.ExpectEquality(t, endian.BE16(b), uint16(0x0102))

	endian.PutLE32(b, 0xdeadbeef)
	test.ExpectEquality(t, b[0], uint8(0xef))
	test.ExpectEquality(t, b[3], uint8(0xde))
	test.ExpectEquality(t, endian.LE32(b), uint32(0xdeadbeef))

	endian.PutBE32(b, 0xdeadbeef)
	test.ExpectEquality(t, b[0], uint8(0xde))
	test.ExpectEquality(t, endian.BE32(b), uint32(0xdeadbeef))

	// unaligned access within a larger buffer
	w := make([]byte, 9)
	endian.PutLE32(w[5:], 23)
	test.ExpectEquality(t, endian.LE32(w[5:]), uint32(23))

	endian.PutBE16(w, 0x1234)
	test.ExpectEquality(t, w[0], uint8(0x12))
	test.ExpectEquality(t, w[1], uint8(0x34))
}
