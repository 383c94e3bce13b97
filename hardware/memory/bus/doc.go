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

// Package bus defines the register transport between the firmware and the
// peripherals. The firmware only ever sees the Bus interface. On the console
// that would be the CPU's view of memory-mapped registers; when hosted it is
// the memory package's address decoder with simulated peripherals behind it.
//
// Bus accesses cannot fail. A peripheral that misbehaves shows itself as a
// Waiter that never returns.
package bus
