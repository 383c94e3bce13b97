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

package bus_test

import (
	"testing"

	"github.com/satflash/saroo/curated"
	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/test"
)

// flat is a minimal Bus over a byte slice starting at address zero.
type flat []byte

func (f flat) Read8(a uint32) uint8     { return f[a] }
func (f flat) Write8(a uint32, d uint8) { f[a] = d }
func (f flat) Read16(a uint32) uint16   { return uint16(f[a])<<8 | uint16(f[a+1]) }
func (f flat) Write16(a uint32, d uint16) {
	f[a] = uint8(d >> 8)
	f[a+1] = uint8(d)
}

func TestLE32(t *testing.T) {
	f := make(flat, 16)
	bus.WriteLE32(f, 4, 0x00000102)
	test.ExpectEquality(t, f[4], uint8(0x02))
	test.ExpectEquality(t, f[5], uint8(0x01))
	test.ExpectEquality(t, bus.ReadLE32(f, 4), uint32(0x102))
}

func TestStrings(t *testing.T) {
	f := make(flat, 32)
	for i := range f {
		f[i] = 0xff
	}
	bus.WriteString(f, 0x10, "/SAROO/ISO")
	test.ExpectEquality(t, f[0x1a], uint8(0x00))
	test.ExpectEquality(t, bus.ReadString(f, 0x10, 16), "/SAROO/ISO")

	// no terminator within max
	test.ExpectEquality(t, bus.ReadString(f, 0x10, 3), "/SA")
}

func TestSpin(t *testing.T) {
	n := 0
	s := &bus.Spin{}
	s.Wait(func() bool {
		n++
		return n > 5
	})
	test.ExpectEquality(t, s.Polls, 5)
}

func TestSpinLimit(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		test.DemandSuccess(t, ok)
		test.ExpectSuccess(t, curated.Is(err, bus.SpinLimitExceeded))
	}()

	s := &bus.Spin{Limit: 10}
	s.Wait(func() bool { return false })
	t.Fatalf("limited spin did not panic")
}
