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

package memory

import (
	"fmt"
	"io"
	"sort"

	"github.com/satflash/saroo/curated"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/logger"
)

// OverlappingArea is returned by Map() if the new area overlaps an existing
// area.
const OverlappingArea = "memory: %s (%s) overlaps %s (%s)"

type area struct {
	window addresses.Window
	dev    bus.Device
}

// Memory is the address decoder. It implements the bus.Bus interface.
type Memory struct {
	areas []area

	// the most recently used area. the firmware tends to hammer the same
	// register while busy-waiting so this saves a search
	last int

	// log unmapped accesses. unmapped writes are always logged
	Trace logger.Trace
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{last: -1}
}

// Map a device onto the address range described by the window.
func (mem *Memory) Map(window addresses.Window, dev bus.Device) error {
	for _, a := range mem.areas {
		if window.Origin <= a.window.Memtop && a.window.Origin <= window.Memtop {
			return curated.Errorf(OverlappingArea, dev.Label(), window, a.dev.Label(), a.window)
		}
	}

	mem.areas = append(mem.areas, area{window: window, dev: dev})
	sort.Slice(mem.areas, func(i, j int) bool {
		return mem.areas[i].window.Origin < mem.areas[j].window.Origin
	})
	mem.last = -1

	return nil
}

func (mem *Memory) find(address uint32) bus.Device {
	if mem.last >= 0 && mem.areas[mem.last].window.Contains(address) {
		return mem.areas[mem.last].dev
	}

	i := sort.Search(len(mem.areas), func(i int) bool {
		return mem.areas[i].window.Memtop >= address
	})
	if i < len(mem.areas) && mem.areas[i].window.Contains(address) {
		mem.last = i
		return mem.areas[i].dev
	}

	return nil
}

// Read8 implements the bus.Bus interface.
func (mem *Memory) Read8(address uint32) uint8 {
	if dev := mem.find(address); dev != nil {
		return dev.Read8(address)
	}
	logger.Logf(&mem.Trace, "memory", "unmapped read8 %08x", address)
	return 0xff
}

// Write8 implements the bus.Bus interface.
func (mem *Memory) Write8(address uint32, data uint8) {
	if dev := mem.find(address); dev != nil {
		dev.Write8(address, data)
		return
	}
	logger.Logf(logger.Allow, "memory", "unmapped write8 %08x <- %02x", address, data)
}

// Read16 implements the bus.Bus interface.
func (mem *Memory) Read16(address uint32) uint16 {
	if dev := mem.find(address); dev != nil {
		return dev.Read16(address)
	}
	logger.Logf(&mem.Trace, "memory", "unmapped read16 %08x", address)
	return 0xffff
}

// Write16 implements the bus.Bus interface.
func (mem *Memory) Write16(address uint32, data uint16) {
	if dev := mem.find(address); dev != nil {
		dev.Write16(address, data)
		return
	}
	logger.Logf(logger.Allow, "memory", "unmapped write16 %08x <- %04x", address, data)
}

// Summary writes the memory map to io.Writer.
func (mem *Memory) Summary(w io.Writer) {
	for _, a := range mem.areas {
		fmt.Fprintf(w, "%s %s\n", a.window, a.dev.Label())
	}
}
