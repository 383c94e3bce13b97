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

// Package shell is the serial diagnostic console. It is reached from the
// Serial Console item of the boot menu and reads commands from a
// terminal.Terminal until the user returns to the menu or quits.
//
// Addresses given to PEEK and POKE can be numeric (decimal, 0x prefixed hex or
// $ prefixed hex) or the name of a register. Register names are those of the
// system manager (IREG0, COMREG, SF, etc.) and of the companion controller
// (VER, CTRL, TIMER, CMD, ARG). Registers of the system manager are byte wide
// and registers of the companion controller are 16 bits wide. The default
// width for numeric addresses is 8 bits.
package shell
