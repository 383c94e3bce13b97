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

package memory

import (
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/endian"
)

// RAM is a plain, byte-addressable memory area. Half-word accesses are
// big-endian, as seen by the console CPU.
type RAM struct {
	label  string
	origin uint32
	data   []byte
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(label string, window addresses.Window) *RAM {
	return &RAM{
		label:  label,
		origin: window.Origin,
		data:   make([]byte, window.Size()),
	}
}

// Label implements the bus.Device interface.
func (ram *RAM) Label() string {
	return ram.label
}

// Read8 implements the bus.Device interface.
func (ram *RAM) Read8(address uint32) uint8 {
	return ram.data[address-ram.origin]
}

// Write8 implements the bus.Device interface.
func (ram *RAM) Write8(address uint32, data uint8) {
	ram.data[address-ram.origin] = data
}

// Read16 implements the bus.Device interface.
func (ram *RAM) Read16(address uint32) uint16 {
	return endian.BE16(ram.data[address-ram.origin:])
}

// Write16 implements the bus.Device interface.
func (ram *RAM) Write16(address uint32, data uint16) {
	endian.PutBE16(ram.data[address-ram.origin:], data)
}

// Bytes returns the underlying memory. Changes to the slice are visible on
// the bus.
func (ram *RAM) Bytes() []byte {
	return ram.data
}

// Clear sets all bytes to zero.
func (ram *RAM) Clear() {
	clear(ram.data)
}

// Window returns the address range covered by the RAM.
func (ram *RAM) Window() addresses.Window {
	return addresses.Window{
		Origin: ram.origin,
		Memtop: ram.origin + uint32(len(ram.data)) - 1,
	}
}
