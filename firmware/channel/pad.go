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
	"github.com/satflash/saroo/curated"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/logger"
)

// Sentinel errors for the pad channel.
const (
	PadAlreadyInitialised = "pad: already initialised"
	PadNotInitialised     = "pad: not initialised"
)

// PadState is the state of the pad channel.
type PadState int

// List of valid PadState values.
const (
	PadIdle PadState = iota
	PadAwaitingCompletion
)

func (s PadState) String() string {
	switch s {
	case PadIdle:
		return "idle"
	case PadAwaitingCompletion:
		return "awaiting completion"
	}
	return "unknown"
}

// Pad samples the controller pad through the system manager.
type Pad struct {
	mem  bus.Bus
	regs addresses.SMPC
	wait bus.Waiter

	initialised bool
	state       PadState

	Trace logger.Trace
}

// NewPad is the preferred method of initialisation for the Pad type.
func NewPad(mem bus.Bus, regs addresses.SMPC, wait bus.Waiter) *Pad {
	return &Pad{
		mem:  mem,
		regs: regs,
		wait: wait,
	}
}

// State returns the current state of the channel.
func (p *Pad) State() PadState {
	return p.state
}

// Init configures the port for direct peripheral data. It must be called
// exactly once and before the first call to Poll().
func (p *Pad) Init() error {
	if p.initialised {
		return curated.Errorf(PadAlreadyInitialised)
	}

	p.mem.Write8(p.regs.DDR1, 0x00)
	p.mem.Write8(p.regs.EXLE, 0x00)
	p.mem.Write8(p.regs.IOSEL, 0x00)

	p.mem.Write8(p.regs.IREG[0], 0x00)
	p.mem.Write8(p.regs.IREG[1], addresses.SMPCPeripheralData)
	p.mem.Write8(p.regs.IREG[2], addresses.SMPCIntBackMagic)

	p.initialised = true
	logger.Log(logger.Allow, "pad", "initialised")
	return nil
}

func (p *Pad) idle() bool {
	return p.mem.Read8(p.regs.SF)&addresses.SMPCBusy == 0
}

// Poll samples the pad. The returned bits are active-high. See the
// hardware/input package for the meaning of each bit.
func (p *Pad) Poll() (uint16, error) {
	if !p.initialised {
		return 0, curated.Errorf(PadNotInitialised)
	}

	p.wait.Wait(p.idle)

	p.state = PadAwaitingCompletion
	p.mem.Write8(p.regs.SF, addresses.SMPCBusy)
	p.mem.Write8(p.regs.COMREG, addresses.SMPCIntBack)
	p.wait.Wait(p.idle)

	bits := uint16(p.mem.Read8(p.regs.OREG[2]))<<8 | uint16(p.mem.Read8(p.regs.OREG[3]))
	p.mem.Write8(p.regs.IREG[0], addresses.SMPCContinue)
	p.state = PadIdle

	bits ^= 0xffff
	logger.Logf(&p.Trace, "pad", "%04x", bits)
	return bits, nil
}
