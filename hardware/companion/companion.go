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

package companion

import (
	"io"
	"time"

	"github.com/spf13/afero"

	"github.com/satflash/saroo/hardware/memory"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/logger"
)

// DefaultVersion is the value of the VER register. The firmware shows the low
// byte in the boot menu title.
const DefaultVersion = 0x0027

// Companion is the simulated storage companion controller. It implements the
// bus.Device interface for its register block.
type Companion struct {
	regs addresses.Companion
	fs   afero.Fs

	catalog *memory.RAM
	param   *memory.RAM

	ver  uint16
	ctrl uint16
	cmd  uint16
	arg  uint16

	// number of CMD reads a command stays busy for
	Latency int
	busy    int

	// Clock drives the TIMER register. Defaults to time.Now
	Clock      func() time.Time
	timerBase  time.Time
	timerLatch uint32

	// Console receives the text of PUTS commands. Text is always logged
	Console io.Writer

	// disc list from the most recent scan of the card. a nil list means the
	// card has not been scanned
	discs   []string
	mounted int

	// number of commands executed
	Commands int

	// number of firmware images written by the UPDATE command
	Flashed int

	Trace logger.Trace
}

// NewCompanion is the preferred method of initialisation for the Companion
// type.
func NewCompanion(m addresses.Map, fsys afero.Fs) *Companion {
	c := &Companion{
		regs:    m.Companion,
		fs:      fsys,
		catalog: memory.NewRAM("catalog", m.Catalog),
		param:   memory.NewRAM("param", m.Param),
		ver:     DefaultVersion,
		Clock:   time.Now,
		mounted: -1,
	}
	c.timerBase = c.Clock()
	return c
}

// Attach maps the register block, the parameter window and the catalog window
// onto the memory.
func (c *Companion) Attach(mem *memory.Memory) error {
	if err := mem.Map(c.regs.Block(), c); err != nil {
		return err
	}
	if err := mem.Map(c.param.Window(), c.param); err != nil {
		return err
	}
	if err := mem.Map(c.catalog.Window(), c.catalog); err != nil {
		return err
	}
	return nil
}

// SetVersion changes the value of the VER register.
func (c *Companion) SetVersion(ver uint16) {
	c.ver = ver
}

// FS returns the filesystem representing the SD card.
func (c *Companion) FS() afero.Fs {
	return c.fs
}

// Enabled returns true if the firmware has switched the adapter on.
func (c *Companion) Enabled() bool {
	return c.ctrl&addresses.CtrlEnable == addresses.CtrlEnable
}

// Ctrl returns the value of the CTRL register.
func (c *Companion) Ctrl() uint16 {
	return c.ctrl
}

// Mounted returns the path of the disc image selected by the most recent
// LOADDISC command.
func (c *Companion) Mounted() (string, bool) {
	if c.mounted < 0 || c.mounted >= len(c.discs) {
		return "", false
	}
	return c.discs[c.mounted], true
}

// Label implements the bus.Device interface.
func (c *Companion) Label() string {
	return "companion"
}

// Read16 implements the bus.Device interface.
func (c *Companion) Read16(address uint32) uint16 {
	switch address {
	case c.regs.VER:
		return c.ver
	case c.regs.CTRL:
		return c.ctrl
	case c.regs.TIMER:
		c.timerLatch = uint32(c.Clock().Sub(c.timerBase).Microseconds())
		return uint16(c.timerLatch >> 16)
	case c.regs.TIMER + 2:
		return uint16(c.timerLatch)
	case c.regs.CMD:
		if c.busy > 0 {
			c.busy--
			if c.busy == 0 {
				c.execute()
			}
		}
		return c.cmd
	case c.regs.ARG:
		return c.arg
	}

	logger.Logf(&c.Trace, "companion", "read from unused register %08x", address)
	return 0x0000
}

// Write16 implements the bus.Device interface.
func (c *Companion) Write16(address uint32, data uint16) {
	switch address {
	case c.regs.VER:
		// read only
	case c.regs.CTRL:
		c.ctrl = data
		logger.Logf(&c.Trace, "companion", "CTRL=%04x", data)
	case c.regs.TIMER, c.regs.TIMER + 2:
		// any write resets the counter
		c.timerBase = c.Clock()
		c.timerLatch = 0
	case c.regs.CMD:
		if c.cmd != 0 {
			logger.Logf(logger.Allow, "companion", "%v written while busy with %v",
				addresses.Opcode(data), addresses.Opcode(c.cmd))
			return
		}
		if data == 0 {
			return
		}
		c.cmd = data
		c.busy = c.Latency
		if c.busy == 0 {
			c.execute()
		}
	case c.regs.ARG:
		c.arg = data
	default:
		logger.Logf(&c.Trace, "companion", "write to unused register %08x", address)
	}
}

// Read8 implements the bus.Device interface. The registers are 16 bits wide.
// A byte read returns one half of the register.
func (c *Companion) Read8(address uint32) uint8 {
	v := c.Read16(address &^ 1)
	if address&1 == 0 {
		return uint8(v >> 8)
	}
	return uint8(v)
}

// Write8 implements the bus.Device interface. Byte writes are not supported
// by the controller and are dropped.
func (c *Companion) Write8(address uint32, data uint8) {
	logger.Logf(logger.Allow, "companion", "byte write to 16-bit register %08x dropped", address)
}
