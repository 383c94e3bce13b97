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

// Package bios simulates the parts of the console's disc-player BIOS that the
// cartridge firmware hands control to: booting the mounted disc, the CD player
// and executing a loaded binary.
//
// The BIOS is a black box to the firmware. On the console a successful boot or
// exec never returns. The simulation logs what would have happened and
// returns zero, leaving the firmware to decide what that means.
package bios
