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

// Package channel implements the register-level handshakes between the
// firmware and the peripherals. Each channel is bound to a bus.Bus, the
// register map and a bus.Waiter when it is created. Nothing else in the
// firmware touches a register address directly.
//
// Every channel follows the same pattern: write the request registers, write
// the trigger register, wait for the completion flag to clear and then read
// the result registers. The write of the trigger always happens after the
// request registers have been written and the results are never read before
// the completion flag is seen to clear. There is no timeout and no way to
// abandon a command once it has been triggered.
//
// Channels are not safe for concurrent use.
package channel
