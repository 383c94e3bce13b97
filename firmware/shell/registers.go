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

package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/satflash/saroo/hardware/memory/addresses"
)

type register struct {
	address uint32
	width   int
}

func registerNames(m addresses.Map) map[string]register {
	regs := make(map[string]register)

	for i, a := range m.SMPC.IREG {
		regs[fmt.Sprintf("IREG%d", i)] = register{a, 8}
	}
	for i, a := range m.SMPC.OREG {
		regs[fmt.Sprintf("OREG%d", i)] = register{a, 8}
	}
	regs["COMREG"] = register{m.SMPC.COMREG, 8}
	regs["SR"] = register{m.SMPC.SR, 8}
	regs["SF"] = register{m.SMPC.SF, 8}
	regs["PDR1"] = register{m.SMPC.PDR1, 8}
	regs["DDR1"] = register{m.SMPC.DDR1, 8}
	regs["IOSEL"] = register{m.SMPC.IOSEL, 8}
	regs["EXLE"] = register{m.SMPC.EXLE, 8}

	regs["VER"] = register{m.Companion.VER, 16}
	regs["CTRL"] = register{m.Companion.CTRL, 16}
	regs["TIMER"] = register{m.Companion.TIMER, 16}
	regs["CMD"] = register{m.Companion.CMD, 16}
	regs["ARG"] = register{m.Companion.ARG, 16}

	return regs
}

// resolve a register name or a numeric address.
func (sh *Shell) resolve(s string) (register, error) {
	if r, ok := sh.regs[strings.ToUpper(s)]; ok {
		return r, nil
	}
	a, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return register{}, fmt.Errorf("unrecognised address or register: %s", s)
	}
	return register{address: uint32(a), width: 8}, nil
}

// the optional width argument of PEEK and POKE.
func width(s string) (int, error) {
	switch s {
	case "8":
		return 8, nil
	case "16":
		return 16, nil
	}
	return 0, fmt.Errorf("width must be 8 or 16: %s", s)
}

func value(s string, width int) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, width)
	if err != nil {
		return 0, fmt.Errorf("value is not a %d bit number: %s", width, s)
	}
	return uint16(v), nil
}
