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

package smpc

import (
	"github.com/satflash/saroo/hardware/input"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/logger"
)

// Values in SR after a command has completed.
const (
	StatusDone     = 0x80
	StatusPadData  = 0xc0
	statusNoDevice = 0xf0
)

// the peripheral ID of the standard digital pad. the low nibble is the
// number of data bytes that follow
const digitalPad = 0x02

// SMPC is the simulated system manager. It implements the bus.Device
// interface.
type SMPC struct {
	regs addresses.SMPC
	pad  input.Source

	// byte registers by address
	mem map[uint32]*uint8

	ireg   [7]uint8
	oreg   [32]uint8
	comreg uint8
	sr     uint8
	sf     uint8
	pdr1   uint8
	ddr1   uint8
	iosel  uint8
	exle   uint8

	// number of SF reads a command stays busy for
	Latency int
	busy    int

	cdEnabled bool

	// number of commands executed
	Commands int

	Trace logger.Trace
}

// NewSMPC is the preferred method of initialisation for the SMPC type. The pad
// argument can be nil, in which case the controller port is empty.
func NewSMPC(regs addresses.SMPC, pad input.Source) *SMPC {
	s := &SMPC{
		regs: regs,
		pad:  pad,
		mem:  make(map[uint32]*uint8),

		// the CD block is on at power on
		cdEnabled: true,
	}

	for i := range regs.IREG {
		s.mem[regs.IREG[i]] = &s.ireg[i]
	}
	for i := range regs.OREG {
		s.mem[regs.OREG[i]] = &s.oreg[i]
	}
	s.mem[regs.COMREG] = &s.comreg
	s.mem[regs.SR] = &s.sr
	s.mem[regs.SF] = &s.sf
	s.mem[regs.PDR1] = &s.pdr1
	s.mem[regs.DDR1] = &s.ddr1
	s.mem[regs.IOSEL] = &s.iosel
	s.mem[regs.EXLE] = &s.exle

	return s
}

// Label implements the bus.Device interface.
func (s *SMPC) Label() string {
	return "SMPC"
}

// AttachPad plugs a pad into port one. A nil pad unplugs the port.
func (s *SMPC) AttachPad(pad input.Source) {
	s.pad = pad
}

// CDEnabled returns true if the CD block has been switched on.
func (s *SMPC) CDEnabled() bool {
	return s.cdEnabled
}

// Read8 implements the bus.Device interface.
func (s *SMPC) Read8(address uint32) uint8 {
	if address == s.regs.SF && s.busy > 0 {
		s.busy--
		if s.busy == 0 {
			s.execute()
		}
	}

	r, ok := s.mem[address]
	if !ok {
		logger.Logf(&s.Trace, "smpc", "read from unused address %08x", address)
		return 0x00
	}
	return *r
}

// Write8 implements the bus.Device interface.
func (s *SMPC) Write8(address uint32, data uint8) {
	r, ok := s.mem[address]
	if !ok {
		logger.Logf(&s.Trace, "smpc", "write to unused address %08x", address)
		return
	}

	switch address {
	case s.regs.SR:
		// read only
		return
	case s.regs.COMREG:
		if s.busy > 0 {
			logger.Logf(logger.Allow, "smpc", "command %02x written while busy with %02x", data, s.comreg)
			return
		}
		*r = data
		s.sf |= addresses.SMPCBusy
		s.busy = s.Latency
		if s.busy == 0 {
			s.execute()
		}
		return
	case s.regs.IREG[0]:
		if data == addresses.SMPCContinue {
			logger.Log(&s.Trace, "smpc", "peripheral data acknowledged")
		}
	}

	*r = data
}

// Read16 implements the bus.Device interface. The system manager's registers
// are on odd addresses so the low byte of a 16-bit access is the register.
func (s *SMPC) Read16(address uint32) uint16 {
	return uint16(s.Read8(address))<<8 | uint16(s.Read8(address+1))
}

// Write16 implements the bus.Device interface.
func (s *SMPC) Write16(address uint32, data uint16) {
	s.Write8(address, uint8(data>>8))
	s.Write8(address+1, uint8(data))
}

func (s *SMPC) execute() {
	s.Commands++
	logger.Logf(&s.Trace, "smpc", "executing %02x", s.comreg)

	switch s.comreg {
	case addresses.SMPCIntBack:
		s.intback()
	case addresses.SMPCCDOn:
		s.cdEnabled = true
		s.sr = StatusDone
	case addresses.SMPCCDOff:
		s.cdEnabled = false
		s.sr = StatusDone
	case addresses.SMPCMasterOn, addresses.SMPCSlaveOn, addresses.SMPCSlaveOff,
		addresses.SMPCSoundOn, addresses.SMPCSoundOff, addresses.SMPCSysReset,
		addresses.SMPCResEnable, addresses.SMPCResDisable:
		s.sr = StatusDone
	default:
		logger.Logf(logger.Allow, "smpc", "unsupported command %02x", s.comreg)
		s.sr = StatusDone
	}

	s.sf &^= addresses.SMPCBusy
}

func (s *SMPC) intback() {
	s.sr = StatusDone

	if s.ireg[1]&0x08 == 0x00 {
		// status data only. the firmware never asks for this
		return
	}

	if s.ireg[2] != addresses.SMPCIntBackMagic {
		logger.Logf(logger.Allow, "smpc", "INTBACK with IREG2 of %02x", s.ireg[2])
		return
	}

	if s.pad == nil {
		s.oreg[0] = statusNoDevice
		s.oreg[1] = 0xff
		s.oreg[2] = 0xff
		s.oreg[3] = 0xff
		s.sr = StatusPadData
		return
	}

	// pad data is active-low. the three unused bits of the second byte always
	// read as one
	state := ^s.pad.PadState() | 0x0007
	s.oreg[0] = 0xf1
	s.oreg[1] = digitalPad
	s.oreg[2] = uint8(state >> 8)
	s.oreg[3] = uint8(state)
	s.sr = StatusPadData
}
