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

package addresses

import "fmt"

// Window is a contiguous block of byte-addressable shared memory.
type Window struct {
	Origin uint32
	Memtop uint32
}

// Size of the window in bytes.
func (w Window) Size() int {
	return int(w.Memtop-w.Origin) + 1
}

// Contains returns true if the address is inside the window.
func (w Window) Contains(address uint32) bool {
	return address >= w.Origin && address <= w.Memtop
}

func (w Window) String() string {
	return fmt.Sprintf("%08x-%08x", w.Origin, w.Memtop)
}

// SMPC is the register block of the console's system manager. All registers
// are byte wide.
type SMPC struct {
	IREG   [7]uint32
	COMREG uint32
	OREG   [32]uint32
	SR     uint32
	SF     uint32
	PDR1   uint32
	DDR1   uint32
	IOSEL  uint32
	EXLE   uint32
}

// Block returns the address range covered by the register block.
func (s SMPC) Block() Window {
	return Window{Origin: s.IREG[0] &^ 0xff, Memtop: s.EXLE}
}

// Companion is the register block of the storage companion controller. All
// registers are 16 bits wide.
type Companion struct {
	VER  uint32
	CTRL uint32

	// the timer is a 32-bit big-endian counter made of two registers
	TIMER uint32

	CMD uint32
	ARG uint32
}

// Block returns the address range covered by the register block.
func (c Companion) Block() Window {
	return Window{Origin: c.VER, Memtop: c.ARG + 1}
}

// Map is the complete register map.
type Map struct {
	SMPC      SMPC
	Companion Companion

	// Catalog is the window the companion writes the disc catalog to
	Catalog Window

	// Param is the window for storage command parameters and payloads. See
	// the Param* offsets for the layout
	Param Window

	// CartRAM is the adapter's general purpose RAM
	CartRAM Window
}

// Offsets into the parameter window.
const (
	ParamOffset  = 0x00
	ParamSize    = 0x04
	ParamPath    = 0x10
	ParamPayload = 0x100
)

// MaxPath is the longest path, not including the NUL terminator, that fits
// between ParamPath and ParamPayload.
const MaxPath = ParamPayload - ParamPath - 1

// PayloadCapacity is the number of payload bytes the parameter window can
// carry in a single command.
func (m Map) PayloadCapacity() int {
	return m.Param.Size() - ParamPayload
}

// Saturn is the register map of the console and the cartridge adapter.
var Saturn = newSaturn()

func newSaturn() Map {
	const smpc = 0x20100000

	var m Map

	for i := range m.SMPC.IREG {
		m.SMPC.IREG[i] = smpc + 0x01 + uint32(i)*2
	}
	m.SMPC.COMREG = smpc + 0x1f
	for i := range m.SMPC.OREG {
		m.SMPC.OREG[i] = smpc + 0x21 + uint32(i)*2
	}
	m.SMPC.SR = smpc + 0x61
	m.SMPC.SF = smpc + 0x63
	m.SMPC.PDR1 = smpc + 0x75
	m.SMPC.DDR1 = smpc + 0x79
	m.SMPC.IOSEL = smpc + 0x7d
	m.SMPC.EXLE = smpc + 0x7f

	const companion = 0x24000000

	m.Companion.VER = companion + 0x00
	m.Companion.CTRL = companion + 0x02
	m.Companion.TIMER = companion + 0x04
	m.Companion.CMD = companion + 0x10
	m.Companion.ARG = companion + 0x12

	m.Catalog = Window{Origin: 0x22800000, Memtop: 0x2281ffff}
	m.Param = Window{Origin: 0x22820000, Memtop: 0x2282ffff}
	m.CartRAM = Window{Origin: 0x22400000, Memtop: 0x227fffff}

	return m
}
