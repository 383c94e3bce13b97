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

// Package smpc simulates the console's system manager as seen through its
// register block. Only the parts of the system manager used by the cartridge
// firmware are simulated: the SF/COMREG handshake, the INTBACK peripheral
// data for a single digital pad on port one and the CD block power commands.
//
// The simulated system manager is busy for a number of SF reads after a
// command is written to COMREG. The command takes effect when the busy
// period expires, which is when the firmware sees the SF busy bit clear.
package smpc
