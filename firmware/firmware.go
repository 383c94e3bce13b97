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
	"time"

	"github.com/satflash/saroo/firmware/channel"
	"github.com/satflash/saroo/firmware/menu"
	"github.com/satflash/saroo/firmware/storage"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/logger"
)

// BIOS is the disc player BIOS the firmware hands control to.
type BIOS interface {
	BootDisc() int
	RunCDPlayer()
	Exec(address uint32) int
}

// Shell is the serial diagnostic shell. It is run whenever the boot menu
// exits. The menu that exited is passed to the shell for inspection.
type Shell interface {
	// Run returns true if the firmware should stop
	Run(ctx context.Context, m *menu.Menu) bool
}

// Outcome describes why Run() returned.
type Outcome int

// List of valid Outcome values.
const (
	// the firmware has been updated, or the update failed. either way the
	// console must be power cycled
	Halted Outcome = iota

	// a disc was booted or a binary executed
	Launched

	// the context was cancelled or the shell asked to stop
	Stopped
)

func (o Outcome) String() string {
	switch o {
	case Halted:
		return "halted"
	case Launched:
		return "launched"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Result is returned by Run().
type Result struct {
	Outcome Outcome
	Message string
}

func (r Result) String() string {
	if r.Message == "" {
		return r.Outcome.String()
	}
	return r.Outcome.String() + ": " + r.Message
}

// RunBinary is the file loaded by the Run Binary menu item.
const RunBinary = "/SAROO/run.bin"

// DefaultInterval is the time between pad samples.
const DefaultInterval = 16 * time.Millisecond

// Firmware is the cartridge firmware.
type Firmware struct {
	mem bus.Bus
	m   addresses.Map

	pad     *channel.Pad
	system  *channel.System
	storage *storage.Storage
	timer   *channel.Timer

	bios     BIOS
	renderer menu.Renderer
	shell    Shell

	// Interval is the time between pad samples
	Interval time.Duration

	// the most recent top-level menu
	top *menu.Menu
}

// NewFirmware is the preferred method of initialisation for the Firmware
// type. All channels share the bus and the waiter.
func NewFirmware(mem bus.Bus, m addresses.Map, wait bus.Waiter, bios BIOS, renderer menu.Renderer) *Firmware {
	return &Firmware{
		mem:      mem,
		m:        m,
		pad:      channel.NewPad(mem, m.SMPC, wait),
		system:   channel.NewSystem(mem, m.SMPC, wait),
		storage:  storage.NewStorage(channel.NewStorage(mem, m, wait)),
		timer:    channel.NewTimer(mem, m.Companion, wait),
		bios:     bios,
		renderer: renderer,
		Interval: DefaultInterval,
	}
}

// AttachShell sets the shell that is run when the boot menu exits. Without a
// shell the boot menu is rebuilt immediately.
func (fw *Firmware) AttachShell(sh Shell) {
	fw.shell = sh
}

// Storage returns the storage operations used by the firmware.
func (fw *Firmware) Storage() *storage.Storage {
	return fw.storage
}

// Menu returns the most recent top-level menu. Returns nil if Run() has not
// built a menu yet.
func (fw *Firmware) Menu() *menu.Menu {
	return fw.top
}

// Boot initialises the pad, switches the CD block off and enables the
// cartridge adapter.
func (fw *Firmware) Boot() error {
	logger.Log(logger.Allow, "firmware", "boot")

	if err := fw.pad.Init(); err != nil {
		return err
	}
	fw.system.Invoke(addresses.SMPCCDOff)
	fw.storage.Channel().Enable(addresses.CtrlEnable | addresses.CtrlCS0RAM4M)

	return nil
}

func (fw *Firmware) loop() menu.Loop {
	return menu.Loop{
		Pad:      fw.pad,
		Renderer: fw.renderer,
		Pacer:    fw.timer,
		Interval: fw.Interval,
	}
}

// Run the boot menu. Run only returns once the firmware has nothing more to
// do. Boot() must have been called first.
//
// Cancelling the context is reported as the Stopped outcome and not as an
// error.
func (fw *Firmware) Run(ctx context.Context) (Result, error) {
	for {
		top, err := fw.newTopMenu(ctx)
		if err != nil {
			return Result{}, err
		}

		tr, err := fw.loop().Run(ctx, top.menu, top)
		if err != nil {
			if ctx.Err() != nil {
				return Result{Outcome: Stopped}, nil
			}
			return Result{}, err
		}

		switch tr {
		case menu.Halt:
			if top.err != nil {
				if ctx.Err() != nil {
					return Result{Outcome: Stopped}, nil
				}
				return Result{}, top.err
			}
			logger.Logf(logger.Allow, "firmware", "%v", top.result)
			return top.result, nil

		case menu.Exit:
			if fw.shell == nil {
				logger.Log(logger.Allow, "firmware", "no serial console")
				continue
			}
			if fw.shell.Run(ctx, top.menu) {
				return Result{Outcome: Stopped, Message: "serial console"}, nil
			}

		case menu.Restart:
		}
	}
}
