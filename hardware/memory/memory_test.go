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

package memory_test

import (
	"strings"
	"testing"

	"github.com/satflash/saroo/curated"
	"github.com/satflash/saroo/hardware/memory"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/test"
)

func TestMapping(t *testing.T) {
	mem := memory.NewMemory()

	a := memory.NewRAM("A", addresses.Window{Origin: 0x1000, Memtop: 0x10ff})
	b := memory.NewRAM("B", addresses.Window{Origin: 0x2000, Memtop: 0x20ff})
	test.DemandSuccess(t, mem.Map(addresses.Window{Origin: 0x2000, Memtop: 0x20ff}, b))
	test.DemandSuccess(t, mem.Map(addresses.Window{Origin: 0x1000, Memtop: 0x10ff}, a))

	mem.Write8(0x1000, 0x12)
	mem.Write8(0x20ff, 0x34)
	test.ExpectEquality(t, a.Bytes()[0], uint8(0x12))
	test.ExpectEquality(t, b.Bytes()[0xff], uint8(0x34))
	test.ExpectEquality(t, mem.Read8(0x1000), uint8(0x12))

	// half-words are big-endian
	mem.Write16(0x1010, 0xabcd)
	test.ExpectEquality(t, a.Bytes()[0x10], uint8(0xab))
	test.ExpectEquality(t, mem.Read16(0x1010), uint16(0xabcd))

	// open bus
	test.ExpectEquality(t, mem.Read8(0x3000), uint8(0xff))
	test.ExpectEquality(t, mem.Read16(0x0000), uint16(0xffff))

	// overlapping area
	c := memory.NewRAM("C", addresses.Window{Origin: 0x10f0, Memtop: 0x1100})
	err := mem.Map(addresses.Window{Origin: 0x10f0, Memtop: 0x1100}, c)
	test.ExpectSuccess(t, curated.Is(err, memory.OverlappingArea))

	s := &strings.Builder{}
	mem.Summary(s)
	test.ExpectEquality(t, s.String(), "00001000-000010ff A\n00002000-000020ff B\n")
}

func TestBusHelpersThroughMemory(t *testing.T) {
	mem := memory.NewMemory()
	w := addresses.Saturn.Param
	test.DemandSuccess(t, mem.Map(w, memory.NewRAM("param", w)))

	bus.WriteLE32(mem, w.Origin+addresses.ParamSize, 512)
	bus.WriteString(mem, w.Origin+addresses.ParamPath, "/SAROO/update/SSMaster.bin")
	test.ExpectEquality(t, bus.ReadLE32(mem, w.Origin+addresses.ParamSize), uint32(512))
	test.ExpectEquality(t, bus.ReadString(mem, w.Origin+addresses.ParamPath, addresses.MaxPath), "/SAROO/update/SSMaster.bin")
}
