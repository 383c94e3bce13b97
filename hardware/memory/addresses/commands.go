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

package addresses

// System manager commands written to COMREG.
const (
	SMPCMasterOn   = 0x00
	SMPCSlaveOn    = 0x02
	SMPCSlaveOff   = 0x03
	SMPCSoundOn    = 0x06
	SMPCSoundOff   = 0x07
	SMPCCDOn       = 0x08
	SMPCCDOff      = 0x09
	SMPCSysReset   = 0x0d
	SMPCIntBack    = 0x10
	SMPCResEnable  = 0x19
	SMPCResDisable = 0x1a
)

// SF bit that is set while a system manager command is in progress.
const SMPCBusy = 0x01

// Pad sampling configuration written by the pad channel.
const (
	// IREG0 value that asks the system manager to continue (acknowledge) a
	// peripheral data transfer
	SMPCContinue = 0x40

	// IREG1 value that requests peripheral data with 15-byte mode
	SMPCPeripheralData = 0x0a

	// IREG2 value required by INTBACK
	SMPCIntBackMagic = 0xf0
)

// Opcode is a storage command written to the companion's CMD register. A
// CMD value of zero means the companion is idle.
type Opcode uint16

// List of valid Opcode values.
const (
	OpIdle      Opcode = 0
	OpPuts      Opcode = 1
	OpLoadDisc  Opcode = 2
	OpCheck     Opcode = 3
	OpUpdate    Opcode = 4
	OpFileRead  Opcode = 5
	OpFileWrite Opcode = 6
	OpListDisc  Opcode = 7
)

func (op Opcode) String() string {
	switch op {
	case OpIdle:
		return "IDLE"
	case OpPuts:
		return "PUTS"
	case OpLoadDisc:
		return "LOADDISC"
	case OpCheck:
		return "CHECK"
	case OpUpdate:
		return "UPDATE"
	case OpFileRead:
		return "FILERD"
	case OpFileWrite:
		return "FILEWR"
	case OpListDisc:
		return "LISTDISC"
	}
	return "UNKNOWN"
}

// Bits of the companion's CTRL register.
const (
	CtrlCS0RAM4M = 0x0002
	CtrlEnable   = 0x8000
)
