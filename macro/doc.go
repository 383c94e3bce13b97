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

// Package macro drives the controller pad from a Lua script. A macro is
// compiled into a sequence of pad samples when it is loaded; the firmware
// then consumes one sample every time it polls the pad.
//
// The following functions are available to the script:
//
//	press(buttons [, samples])  hold buttons for samples (default 2) then release for one sample
//	hold(buttons, samples)      hold buttons for samples with no release
//	wait(samples)               no buttons for samples
//	log(message)                add an entry to the central log
//
// Buttons are named as in input.ParseButtons(), eg. "DOWN" or "UP+A".
//
// When the macro runs out of samples the pad reads as released and the
// optional Finished callback is called, once.
package macro
