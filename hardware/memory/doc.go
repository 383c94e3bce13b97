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

// Package memory implements the address decoder that sits between the
// firmware and the devices when the firmware is hosted. Devices are mapped to
// non-overlapping address ranges and every access is routed to the device
// covering the address.
//
// Reads from unmapped addresses return all bits set, as an open bus would.
// Writes to unmapped addresses are logged and otherwise ignored.
package memory
