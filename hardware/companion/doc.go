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

// Package companion simulates the storage companion controller on the
// cartridge adapter. The controller owns the SD card, which is represented by
// an afero.Fs, and services the storage commands the firmware writes to the
// CMD register.
//
// The controller exposes three things on the bus: a block of 16-bit
// registers, the parameter window and the catalog window. Use Attach() to map
// all three onto a memory.Memory.
//
// Commands complete after Latency reads of the CMD register. Results are
// written to ARG as a signed 16-bit value. Errors are negated FatFs result
// codes, which is what the real controller reports.
package companion
