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

// Package addresses is the register map of the cartridge adapter and the
// parts of the console it talks to. The map is a value rather than a set of
// constants so that it can be injected into the channels and the simulated
// peripherals. Saturn is the map of the real hardware.
//
// The command codes shared by the firmware and the peripherals are also
// defined here because they are as much a part of the hardware contract as
// the addresses.
package addresses
