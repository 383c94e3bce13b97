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

package bios

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/logger"
)

// Disc is the source of the mounted disc image. The companion controller
// satisfies this interface.
type Disc interface {
	Mounted() (string, bool)
	FS() afero.Fs
}

// Values returned by BootDisc() and Exec().
const (
	BootOK        = 0
	BootNoDisc    = 1
	BootReadError = 2
	BootNotSaturn = 3
	ExecNoCode    = 4
)

// the system ID at the start of every disc's first data sector
var systemID = []byte("SEGA SEGASATURN ")

// size of the sync and header fields at the start of a raw 2352 byte sector
const rawSectorHeader = 16

// BIOS is the simulated disc-player BIOS.
type BIOS struct {
	disc Disc
	mem  bus.Bus

	// the most recent successful boot or exec
	Booted   string
	Executed uint32
}

// NewBIOS is the preferred method of initialisation for the BIOS type.
func NewBIOS(disc Disc, mem bus.Bus) *BIOS {
	return &BIOS{
		disc: disc,
		mem:  mem,
	}
}

// BootDisc checks that the mounted disc is a console disc and boots it. A
// non-zero return value means the disc was not booted.
func (b *BIOS) BootDisc() int {
	p, ok := b.disc.Mounted()
	if !ok {
		logger.Log(logger.Allow, "bios", "boot: no disc mounted")
		return BootNoDisc
	}

	hdr, err := b.header(p)
	if err != nil {
		logger.Logf(logger.Allow, "bios", "boot: %v", err)
		return BootReadError
	}

	if !bytes.HasPrefix(hdr, systemID) {
		logger.Logf(logger.Allow, "bios", "boot: %s is not a saturn disc", path.Base(p))
		return BootNotSaturn
	}

	title := strings.TrimSpace(string(hdr[0x60:0x80]))
	logger.Logf(logger.Allow, "bios", "booting %s (%s)", title, path.Base(p))
	b.Booted = p
	return BootOK
}

// header returns the first 0x100 bytes of user data on the disc. The format of
// the image determines where that is.
func (b *BIOS) header(image string) ([]byte, error) {
	fsys := b.disc.FS()

	var name string
	var offset int64

	switch strings.ToLower(path.Ext(image)) {
	case ".cue":
		track, raw, err := firstTrack(fsys, image)
		if err != nil {
			return nil, err
		}
		name = track
		if raw {
			offset = rawSectorHeader
		}
	case ".ccd":
		// clone CD images keep raw sectors in a .img file alongside
		name = strings.TrimSuffix(image, path.Ext(image)) + ".img"
		offset = rawSectorHeader
	case ".mds":
		name = strings.TrimSuffix(image, path.Ext(image)) + ".mdf"
		offset = rawSectorHeader
	default:
		name = image
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hdr := make([]byte, 0x100)
	if _, err := f.ReadAt(hdr, offset); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: %w", path.Base(name), err)
	}
	return hdr, nil
}

// Exec hands control to code previously loaded at the address. The simulation
// only checks that there is something at the address.
func (b *BIOS) Exec(address uint32) int {
	var head [4]byte
	bus.ReadBytes(b.mem, address, head[:])
	if head == [4]byte{} || head == [4]byte{0xff, 0xff, 0xff, 0xff} {
		logger.Logf(logger.Allow, "bios", "exec: no code at %08x", address)
		return ExecNoCode
	}

	logger.Logf(logger.Allow, "bios", "exec: jumping to %08x", address)
	b.Executed = address
	return BootOK
}
