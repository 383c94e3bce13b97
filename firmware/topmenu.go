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

package firmware

import (
	"context"
	"fmt"

	"github.com/satflash/saroo/firmware/catalog"
	"github.com/satflash/saroo/firmware/menu"
	"github.com/satflash/saroo/hardware/input"
	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/logger"
)

// items of the top-level menu
const (
	itemSelectGame = iota
	itemCDPlayer
	itemSerialConsole
	itemRunBinary
	itemUpdate
)

var topItems = []string{
	"Select Game",
	"System CD Player",
	"Serial Console",
	"Run Binary",
}

const updateItem = "Firmware Update"

// topMenu is the menu.Handler for the boot menu.
type topMenu struct {
	fw   *Firmware
	ctx  context.Context
	menu *menu.Menu

	hasUpdate bool

	// set before returning menu.Halt
	result Result
	err    error
}

func (fw *Firmware) newTopMenu(ctx context.Context) (*topMenu, error) {
	title := fmt.Sprintf("SAROO Boot Menu V%02x0000", fw.storage.Channel().Version()&0xff)
	top := &topMenu{
		fw:   fw,
		ctx:  ctx,
		menu: menu.New(title),
	}

	for _, s := range topItems {
		top.menu.Add(s)
	}

	hasUpdate, err := fw.storage.CheckUpdate()
	if err != nil {
		logger.Log(logger.Allow, "firmware", err)
	}
	if hasUpdate {
		top.menu.Add(updateItem)
		top.hasUpdate = true
	}

	fw.top = top.menu
	return top, nil
}

func (top *topMenu) halt(err error) menu.Transition {
	top.err = err
	return menu.Halt
}

// Tick implements the menu.Handler interface.
func (top *topMenu) Tick(m *menu.Menu, in menu.Input) menu.Transition {
	if ok, tr := menu.Default(m, in); ok {
		return tr
	}

	if !in.Pressed(input.A) {
		return menu.Continue
	}

	switch m.Current {
	case itemSelectGame:
		return top.selectGame(m)

	case itemCDPlayer:
		top.fw.bios.RunCDPlayer()
		return menu.Restart

	case itemSerialConsole:
		m.SetStatus("")
		return menu.Exit

	case itemRunBinary:
		return top.runBinary(m)

	case itemUpdate:
		if top.hasUpdate {
			return top.update(m)
		}
	}

	return menu.Continue
}

func (top *topMenu) selectGame(m *menu.Menu) menu.Transition {
	d := catalog.NewDiscMenu(top.fw.storage, top.fw.bios)
	sel := menu.New("")
	if err := d.Open(sel); err != nil {
		m.SetStatus(fmt.Sprintf("Catalog failed! %v", err))
		return menu.Continue
	}

	tr, err := top.fw.loop().Run(top.ctx, sel, d)
	if err != nil {
		return top.halt(err)
	}

	if tr == menu.Halt {
		top.result = Result{Outcome: Launched, Message: d.Launched}
		return menu.Halt
	}

	return menu.Restart
}

func (top *topMenu) runBinary(m *menu.Menu) menu.Transition {
	m.SetStatus("Loading...")

	data, err := top.fw.storage.ReadAll(RunBinary)
	if err != nil {
		logger.Log(logger.Allow, "firmware", err)
		m.SetStatus(fmt.Sprintf("Load failed! %v", err))
		return menu.Continue
	}

	ram := top.fw.m.CartRAM
	if len(data) == 0 || len(data) > ram.Size() {
		m.SetStatus(fmt.Sprintf("Bad run.bin size! %d", len(data)))
		return menu.Continue
	}

	bus.WriteBytes(top.fw.mem, ram.Origin, data)
	logger.Logf(logger.Allow, "firmware", "loaded %d bytes to %08x", len(data), ram.Origin)

	if ret := top.fw.bios.Exec(ram.Origin); ret != 0 {
		m.SetStatus(fmt.Sprintf("Exec failed! %d", ret))
		return menu.Continue
	}

	top.result = Result{Outcome: Launched, Message: RunBinary}
	return menu.Halt
}

// update never returns to the menu. The flash can't be trusted whatever the
// result so the only thing left to do is halt.
func (top *topMenu) update(m *menu.Menu) menu.Transition {
	m.SetStatus("Updating, do not power off...")

	ok, err := top.fw.storage.Update()
	if err != nil {
		logger.Log(logger.Allow, "firmware", err)
	}

	if ok {
		top.result = Result{Outcome: Halted, Message: "Update complete, please power cycle!"}
	} else {
		top.result = Result{Outcome: Halted, Message: "Update failed!"}
	}
	m.SetStatus(top.result.Message)

	return menu.Halt
}
