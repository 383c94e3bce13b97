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
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/logger"
)

// System issues commands to the system manager.
type System struct {
	mem  bus.Bus
	regs addresses.SMPC
	wait bus.Waiter
}

// NewSystem is the preferred method of initialisation for the System type.
func NewSystem(mem bus.Bus, regs addresses.SMPC, wait bus.Waiter) *System {
	return &System{
		mem:  mem,
		regs: regs,
		wait: wait,
	}
}

func (s *System) idle() bool {
	return s.mem.Read8(s.regs.SF)&addresses.SMPCBusy == 0
}

// Invoke the command and return the value of SR once the command has
// completed.
func (s *System) Invoke(cmd uint8) uint8 {
	logger.Logf(logger.Allow, "smpc", "cmd %02x ...", cmd)

	s.wait.Wait(s.idle)
	s.mem.Write8(s.regs.SF, addresses.SMPCBusy)
	s.mem.Write8(s.regs.COMREG, cmd)
	s.wait.Wait(s.idle)

	sr := s.mem.Read8(s.regs.SR)
	logger.Logf(logger.Allow, "smpc", "done. SR=%02x", sr)
	return sr
}
