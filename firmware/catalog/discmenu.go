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

package catalog

import (
	"fmt"

	"github.com/satflash/saroo/firmware/menu"
	"github.com/satflash/saroo/firmware/storage"
	"github.com/satflash/saroo/hardware/input"
	"github.com/satflash/saroo/logger"
)

// Storage is the set of storage operations used by the disc menu.
type Storage interface {
	FetchCatalog() (*storage.Catalog, error)
	LoadDisc(index int) error
}

// BIOS is the disc player BIOS.
type BIOS interface {
	BootDisc() int
	RunCDPlayer()
}

// DiscMenu is the menu.Handler for the disc selection menu.
type DiscMenu struct {
	Pager

	st   Storage
	bios BIOS
	cat  *storage.Catalog

	// path of the disc that was booted. only valid after Tick() has returned
	// menu.Halt
	Launched string
}

// NewDiscMenu is the preferred method of initialisation for the DiscMenu type.
func NewDiscMenu(st Storage, bios BIOS) *DiscMenu {
	return &DiscMenu{
		st:   st,
		bios: bios,
	}
}

// Open fetches the catalog and fills the menu with the first page. The catalog
// is fetched once per DiscMenu.
func (d *DiscMenu) Open(m *menu.Menu) error {
	if d.cat == nil {
		cat, err := d.st.FetchCatalog()
		if err != nil {
			return err
		}
		d.cat = cat
		logger.Logf(logger.Allow, "catalog", "%d discs", cat.Len())
	}

	d.Page = 0
	d.Refresh(m, d.cat)
	return nil
}

// Catalog returns the catalog fetched by Open().
func (d *DiscMenu) Catalog() *storage.Catalog {
	return d.cat
}

// Tick implements the menu.Handler interface.
func (d *DiscMenu) Tick(m *menu.Menu, in menu.Input) menu.Transition {
	switch {
	case in.Pressed(input.Up):
		if m.Current > 0 {
			m.Current--
		} else if d.Page > 0 {
			d.ChangePage(m, d.cat, -1, true)
		}

	case in.Pressed(input.Down):
		if m.Current < m.Num()-1 {
			m.Current++
		} else if d.Page+1 < d.Total {
			d.ChangePage(m, d.cat, 1, false)
		}

	case in.Pressed(input.LT | input.Left):
		d.ChangePage(m, d.cat, -1, false)

	case in.Pressed(input.RT | input.Right):
		d.ChangePage(m, d.cat, 1, false)

	case in.Pressed(input.A):
		if m.Num() == 0 {
			break
		}
		idx := d.Index(m)
		m.SetStatus("Booting...")

		if err := d.st.LoadDisc(idx); err != nil {
			logger.Log(logger.Allow, "catalog", err)
			m.SetStatus(fmt.Sprintf("Load failed! %v", err))
			break
		}

		if ret := d.bios.BootDisc(); ret != 0 {
			m.SetStatus(fmt.Sprintf("Boot failed! %d", ret))
			break
		}

		d.Launched = d.cat.Path(idx)
		return menu.Halt

	case in.Pressed(input.Z):
		if m.Num() == 0 {
			break
		}
		if err := d.st.LoadDisc(d.Index(m)); err != nil {
			logger.Log(logger.Allow, "catalog", err)
			m.SetStatus(fmt.Sprintf("Load failed! %v", err))
			break
		}
		d.bios.RunCDPlayer()

	case in.Pressed(menu.Cancel):
		return menu.Exit
	}

	return menu.Continue
}
