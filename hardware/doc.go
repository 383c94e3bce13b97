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

// Package hardware assembles the simulated console and cartridge adapter that
// the firmware runs against when hosted. The Saturn type maps every simulated
// peripheral onto a single memory.Memory, which is the bus.Bus given to the
// firmware.
//
// The sub-packages contain the individual parts: memory (the register
// transport), smpc (system manager), companion (storage controller), bios
// (disc player BIOS) and input (pad sources).
package hardware
