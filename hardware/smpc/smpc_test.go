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

package smpc_test

import (
	"testing"

	"github.com/satflash/saroo/hardware/input"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/smpc"
	"github.com/satflash/saroo/test"
)

var regs = addresses.Saturn.SMPC

func command(s *smpc.SMPC, cmd uint8) int {
	s.Write8(regs.SF, addresses.SMPCBusy)
	s.Write8(regs.COMREG, cmd)
	polls := 0
	for s.Read8(regs.SF)&addresses.SMPCBusy != 0 {
		polls++
		if polls > 100 {
			panic("smpc never completed")
		}
	}
	return polls
}

func TestLatency(t *testing.T) {
	s := smpc.NewSMPC(regs, nil)
	s.Latency = 3
	polls := command(s, addresses.SMPCCDOff)

	// the third read of SF sees the command completed
	test.ExpectEquality(t, polls, 2)
	test.ExpectEquality(t, s.Read8(regs.SR), uint8(smpc.StatusDone))
	test.ExpectEquality(t, s.Commands, 1)
}

func TestCDPower(t *testing.T) {
	s := smpc.NewSMPC(regs, nil)
	command(s, addresses.SMPCCDOn)
	test.ExpectSuccess(t, s.CDEnabled())
	command(s, addresses.SMPCCDOff)
	test.ExpectFailure(t, s.CDEnabled())
}

func TestIntBack(t *testing.T) {
	var pad input.Pad
	s := smpc.NewSMPC(regs, &pad)
	s.Latency = 1

	s.Write8(regs.IREG[1], addresses.SMPCPeripheralData)
	s.Write8(regs.IREG[2], addresses.SMPCIntBackMagic)

	pad.Press(input.Start | input.A)
	command(s, addresses.SMPCIntBack)

	test.ExpectEquality(t, s.Read8(regs.SR), uint8(smpc.StatusPadData))
	test.ExpectEquality(t, s.Read8(regs.OREG[1]), uint8(0x02))

	bits := uint16(s.Read8(regs.OREG[2]))<<8 | uint16(s.Read8(regs.OREG[3]))
	test.ExpectEquality(t, bits^0xffff, uint16(input.Start|input.A))

	// release everything
	pad.Set(0)
	command(s, addresses.SMPCIntBack)
	bits = uint16(s.Read8(regs.OREG[2]))<<8 | uint16(s.Read8(regs.OREG[3]))
	test.ExpectEquality(t, bits^0xffff, uint16(0))
}

func TestIntBackNotConfigured(t *testing.T) {
	var pad input.Pad
	pad.Press(input.Up)
	s := smpc.NewSMPC(regs, &pad)

	command(s, addresses.SMPCIntBack)
	test.ExpectEquality(t, s.Read8(regs.SR), uint8(smpc.StatusDone))
	test.ExpectEquality(t, s.Read8(regs.OREG[2]), uint8(0x00))
}

func TestStatusReadOnly(t *testing.T) {
	s := smpc.NewSMPC(regs, nil)
	s.Write8(regs.SR, 0x12)
	test.ExpectEquality(t, s.Read8(regs.SR), uint8(0x00))
}
