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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/endian"
	"github.com/satflash/saroo/logger"
)

func (c *Companion) execute() {
	c.Commands++

	op := addresses.Opcode(c.cmd)
	var res int16

	switch op {
	case addresses.OpPuts:
		res = c.puts()
	case addresses.OpLoadDisc:
		res = c.loadDisc(int16(c.arg))
	case addresses.OpCheck:
		res = c.check()
	case addresses.OpUpdate:
		res = c.update()
	case addresses.OpFileRead:
		res = c.fileRead()
	case addresses.OpFileWrite:
		res = c.fileWrite()
	case addresses.OpListDisc:
		res = c.listDisc()
	default:
		logger.Logf(logger.Allow, "companion", "unknown command %04x", c.cmd)
		res = ResultInvalidArgument
	}

	logger.Logf(&c.Trace, "companion", "%v: ARG=%d", op, res)

	c.arg = uint16(res)
	c.cmd = 0
}

// the fields of the parameter window
func (c *Companion) params() (offset uint32, size uint32, name string) {
	p := c.param.Bytes()
	offset = endian.LE32(p[addresses.ParamOffset:])
	size = endian.LE32(p[addresses.ParamSize:])

	s := p[addresses.ParamPath:addresses.ParamPayload]
	for i, v := range s {
		if v == 0x00 {
			s = s[:i]
			break
		}
	}
	return offset, size, string(s)
}

func (c *Companion) payload() []byte {
	return c.param.Bytes()[addresses.ParamPayload:]
}

func (c *Companion) setSize(size uint32) {
	endian.PutLE32(c.param.Bytes()[addresses.ParamSize:], size)
}

func (c *Companion) puts() int16 {
	_, size, _ := c.params()
	p := c.payload()
	if int(size) > len(p) {
		size = uint32(len(p))
	}
	s := string(p[:size])

	logger.Log(logger.Allow, "companion", s)
	if c.Console != nil {
		io.WriteString(c.Console, s)
	}
	return ResultOK
}

func (c *Companion) fileRead() int16 {
	offset, size, name := c.params()
	if err := validPath(name); err != nil {
		return ResultInvalidName
	}

	p := c.payload()
	if int(size) > len(p) {
		size = uint32(len(p))
	}

	f, err := c.fs.Open(name)
	if err != nil {
		return resultFromError(c.fs, name, err)
	}
	defer f.Close()

	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		return resultFromError(c.fs, name, err)
	}

	n, err := io.ReadFull(f, p[:size])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return resultFromError(c.fs, name, err)
	}

	logger.Logf(&c.Trace, "companion", "read %d bytes from %s at %d", n, name, offset)
	c.setSize(uint32(n))
	return ResultOK
}

func (c *Companion) fileWrite() int16 {
	offset, size, name := c.params()
	if err := validPath(name); err != nil {
		return ResultInvalidName
	}

	p := c.payload()
	if int(size) > len(p) {
		return ResultInvalidArgument
	}

	f, err := c.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return resultFromError(c.fs, name, err)
	}
	defer f.Close()

	n, err := f.WriteAt(p[:size], int64(offset))
	if err != nil {
		return resultFromError(c.fs, name, err)
	}

	logger.Logf(&c.Trace, "companion", "wrote %d bytes to %s at %d", n, name, offset)
	c.setSize(uint32(n))
	return ResultOK
}

func (c *Companion) loadDisc(index int16) int16 {
	if c.discs == nil {
		if err := c.scanDiscs(); err != nil {
			logger.Log(logger.Allow, "companion", err)
			return ResultDiskError
		}
	}

	if index < 0 || int(index) >= len(c.discs) {
		logger.Logf(logger.Allow, "companion", "no disc with index %d", index)
		return ResultBadIndex
	}

	c.mounted = int(index)
	logger.Logf(logger.Allow, "companion", "mounted %s", c.discs[index])
	return ResultOK
}

func (c *Companion) listDisc() int16 {
	if err := c.scanDiscs(); err != nil {
		logger.Log(logger.Allow, "companion", err)
		return ResultDiskError
	}

	if err := writeCatalog(c.catalog.Bytes(), c.discs); err != nil {
		logger.Log(logger.Allow, "companion", err)
		return ResultNotEnoughCore
	}

	logger.Logf(logger.Allow, "companion", "%d discs listed", len(c.discs))
	return ResultOK
}

func (c *Companion) check() int16 {
	if _, ok := findUpdate(c.fs); ok {
		return 1
	}
	return 0
}

// UPDATE reports success with zero and failure with one. The firmware only
// distinguishes between zero and non-zero.
func (c *Companion) update() int16 {
	name, ok := findUpdate(c.fs)
	if !ok {
		logger.Log(logger.Allow, "companion", "no update package")
		return 1
	}

	data, err := loadUpdate(c.fs, name)
	if err != nil {
		logger.Log(logger.Allow, "companion", err)
		return 1
	}

	if err := c.flash(data); err != nil {
		logger.Log(logger.Allow, "companion", err)
		return 1
	}

	if err := c.fs.Remove(name); err != nil {
		logger.Log(logger.Allow, "companion", fmt.Errorf("removing %s: %w", name, err))
	}

	logger.Logf(logger.Allow, "companion", "flashed %d bytes from %s", len(data), name)
	return 0
}
