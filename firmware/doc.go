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

// Package firmware is the main loop of the cartridge firmware. Boot() brings
// the hardware into a known state and Run() presents the boot menu until a
// disc is launched, the firmware is updated or the context is cancelled.
//
// The firmware runs on a single goroutine. All waiting is done by polling the
// peripherals through the bus.Waiter given to NewFirmware().
package firmware
