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

package hardware

import (
	"github.com/spf13/afero"

	"github.com/satflash/saroo/hardware/bios"
	"github.com/satflash/saroo/hardware/companion"
	"github.com/satflash/saroo/hardware/input"
	"github.com/satflash/saroo/hardware/memory"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/smpc"
)

// Saturn is the simulated console with the cartridge adapter plugged in.
type Saturn struct {
	Map addresses.Map

	Mem       *memory.Memory
	SMPC      *smpc.SMPC
	Companion *companion.Companion
	CartRAM   *memory.RAM
	BIOS      *bios.BIOS
}

// NewSaturn creates the simulated console. The filesystem is the adapter's SD
// card and the pad is the source for the controller in port one.
func NewSaturn(m addresses.Map, card afero.Fs, pad input.Source) (*Saturn, error) {
	sat := &Saturn{
		Map: m,
		Mem: memory.NewMemory(),
	}

	sat.SMPC = smpc.NewSMPC(m.SMPC, pad)
	if err := sat.Mem.Map(m.SMPC.Block(), sat.SMPC); err != nil {
		return nil, err
	}

	sat.Companion = companion.NewCompanion(m, card)
	if err := sat.Companion.Attach(sat.Mem); err != nil {
		return nil, err
	}

	sat.CartRAM = memory.NewRAM("cart RAM", m.CartRAM)
	if err := sat.Mem.Map(m.CartRAM, sat.CartRAM); err != nil {
		return nil, err
	}

	sat.BIOS = bios.NewBIOS(sat.Companion, sat.Mem)

	return sat, nil
}

// SetLatency changes the number of status polls the simulated peripherals
// stay busy for after a command.
func (sat *Saturn) SetLatency(polls int) {
	sat.SMPC.Latency = polls
	sat.Companion.Latency = polls
}
