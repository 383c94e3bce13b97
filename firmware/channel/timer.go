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

package channel

import (
	"time"

	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/bus"
)

// Timer is the companion's free running microsecond counter.
type Timer struct {
	mem  bus.Bus
	regs addresses.Companion
	wait bus.Waiter
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(mem bus.Bus, regs addresses.Companion, wait bus.Waiter) *Timer {
	return &Timer{
		mem:  mem,
		regs: regs,
		wait: wait,
	}
}

// Reset the counter to zero.
func (t *Timer) Reset() {
	t.mem.Write16(t.regs.TIMER, 0)
}

// Now returns the number of microseconds since the last reset. The high half
// must be read first.
func (t *Timer) Now() uint32 {
	hi := uint32(t.mem.Read16(t.regs.TIMER))
	lo := uint32(t.mem.Read16(t.regs.TIMER + 2))
	return hi<<16 | lo
}

// Sleep busy-waits for the duration. Durations longer than the counter's range
// are truncated.
func (t *Timer) Sleep(d time.Duration) {
	target := uint32(d.Microseconds())
	t.Reset()
	t.wait.Wait(func() bool {
		return t.Now() >= target
	})
}
