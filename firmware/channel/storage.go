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

// Sentinel errors for the storage channel. Both are detected before any
// register is written.
const (
	PathTooLong     = "storage channel: path is %d bytes (max %d)"
	PayloadTooLarge = "storage channel: payload is %d bytes (max %d)"
)

// Command is a request to the storage companion.
type Command struct {
	Op addresses.Opcode

	// the parameter block is only written if HasParams is true
	HasParams bool
	Offset    uint32
	Size      uint32
	Path      string

	// Payload is copied to the payload area of the parameter window
	Payload []byte

	// value written to ARG before the command is triggered
	Arg uint16
}

// Result of a command.
type Result struct {
	// ARG after completion as a signed value. negative values are
	// peripheral error codes
	Arg int16

	// the size field of the parameter window after completion. only read
	// for commands with parameters
	Size uint32
}

// Storage issues commands to the storage companion.
type Storage struct {
	mem  bus.Bus
	m    addresses.Map
	wait bus.Waiter
}

// NewStorage is the preferred method of initialisation for the Storage type.
func NewStorage(mem bus.Bus, m addresses.Map, wait bus.Waiter) *Storage {
	return &Storage{
		mem:  mem,
		m:    m,
		wait: wait,
	}
}

// PayloadCapacity is the largest payload that can be sent or received with
// one command.
func (s *Storage) PayloadCapacity() int {
	return s.m.PayloadCapacity()
}

// Enable writes the CTRL register.
func (s *Storage) Enable(ctrl uint16) {
	s.mem.Write16(s.m.Companion.CTRL, ctrl)
	logger.Logf(logger.Allow, "storage", "CTRL=%04x", ctrl)
}

// Version returns the value of the VER register.
func (s *Storage) Version() uint16 {
	return s.mem.Read16(s.m.Companion.VER)
}

func (s *Storage) idle() bool {
	return s.mem.Read16(s.m.Companion.CMD) == uint16(addresses.OpIdle)
}

// Invoke the command. The returned error is only ever one of the sentinel
// errors for an invalid command. A negative Result.Arg is not an error at this
// level.
func (s *Storage) Invoke(cmd Command) (Result, error) {
	if cmd.HasParams {
		if len(cmd.Path) > addresses.MaxPath {
			return Result{}, curated.Errorf(PathTooLong, len(cmd.Path), addresses.MaxPath)
		}
		if len(cmd.Payload) > s.PayloadCapacity() {
			return Result{}, curated.Errorf(PayloadTooLarge, len(cmd.Payload), s.PayloadCapacity())
		}
	}

	logger.Logf(logger.Allow, "storage", "%v %s ...", cmd.Op, cmd.Path)

	param := s.m.Param.Origin
	if cmd.HasParams {
		bus.WriteLE32(s.mem, param+addresses.ParamOffset, cmd.Offset)
		bus.WriteLE32(s.mem, param+addresses.ParamSize, cmd.Size)
		bus.WriteString(s.mem, param+addresses.ParamPath, cmd.Path)
		bus.WriteBytes(s.mem, param+addresses.ParamPayload, cmd.Payload)
	}

	s.mem.Write16(s.m.Companion.ARG, cmd.Arg)
	s.mem.Write16(s.m.Companion.CMD, uint16(cmd.Op))
	s.wait.Wait(s.idle)

	var res Result
	res.Arg = int16(s.mem.Read16(s.m.Companion.ARG))
	if cmd.HasParams {
		res.Size = bus.ReadLE32(s.mem, param+addresses.ParamSize)
	}

	logger.Logf(logger.Allow, "storage", "done. ARG=%d", res.Arg)
	return res, nil
}

// ReadPayload copies len(p) bytes from the payload area of the parameter
// window.
func (s *Storage) ReadPayload(p []byte) {
	bus.ReadBytes(s.mem, s.m.Param.Origin+addresses.ParamPayload, p)
}

// CatalogSize is the size of the catalog window.
func (s *Storage) CatalogSize() int {
	return s.m.Catalog.Size()
}

// CatalogWord reads a little-endian word at the offset into the catalog
// window.
func (s *Storage) CatalogWord(offset uint32) uint32 {
	return bus.ReadLE32(s.mem, s.m.Catalog.Origin+offset)
}

// CatalogString reads a NUL terminated string at the offset into the catalog
// window. The string is truncated at max bytes or at the end of the window,
// whichever comes first.
func (s *Storage) CatalogString(offset uint32, max int) string {
	if rem := s.CatalogSize() - int(offset); rem < max {
		max = rem
	}
	return bus.ReadString(s.mem, s.m.Catalog.Origin+offset, max)
}
