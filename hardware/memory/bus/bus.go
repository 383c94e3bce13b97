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

// Bus is the primitive read/write access to fixed hardware addresses. The
// access width is significant. Command and status registers must be accessed
// with the width the peripheral expects.
type Bus interface {
	Read8(address uint32) uint8
	Write8(address uint32, data uint8)
	Read16(address uint32) uint16
	Write16(address uint32, data uint16)
}

// Device is a peripheral or memory area that can be mapped onto a Bus. The
// address passed to the access functions is the full bus address and not an
// offset into the device.
type Device interface {
	Bus

	// Label is a short name for the device used in the memory map summary
	// and in log entries.
	Label() string
}
