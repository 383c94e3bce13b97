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

package macro

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/satflash/saroo/hardware/input"
	"github.com/satflash/saroo/logger"
)

// MaxSamples is the largest number of samples a macro can generate.
const MaxSamples = 1 << 20

// the default number of samples a button is held by press()
const pressSamples = 2

// Macro is a sequence of pad samples. It implements the input.Source
// interface.
type Macro struct {
	name    string
	samples []uint16
	pos     int

	// Finished is called the first time the pad is sampled after the macro
	// has run out
	Finished func()
	finished bool
}

// NewMacro loads and compiles the macro file.
func NewMacro(filename string) (*Macro, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("macro: %w", err)
	}
	return Compile(filename, string(b))
}

// Compile the lua source into a Macro. The name is used in log entries and
// error messages.
func Compile(name string, source string) (*Macro, error) {
	mcr := &Macro{
		name:    name,
		samples: make([]uint16, 0, 256),
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
		{lua.TabLibName, lua.OpenTable},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	L.SetGlobal("press", L.NewFunction(mcr.press))
	L.SetGlobal("hold", L.NewFunction(mcr.hold))
	L.SetGlobal("wait", L.NewFunction(mcr.wait))
	L.SetGlobal("log", L.NewFunction(mcr.log))

	if err := L.DoString(source); err != nil {
		return nil, fmt.Errorf("macro: %s: %w", name, err)
	}

	logger.Logf(logger.Allow, "macro", "%s: %d samples", name, len(mcr.samples))
	return mcr, nil
}

func (mcr *Macro) add(L *lua.LState, b input.Button, n int) {
	if n < 0 {
		L.ArgError(2, "negative sample count")
	}
	if len(mcr.samples)+n > MaxSamples {
		L.RaiseError("macro is longer than %d samples", MaxSamples)
	}
	for i := 0; i < n; i++ {
		mcr.samples = append(mcr.samples, uint16(b))
	}
}

func buttons(L *lua.LState) input.Button {
	b, err := input.ParseButtons(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	return b
}

func (mcr *Macro) press(L *lua.LState) int {
	b := buttons(L)
	mcr.add(L, b, L.OptInt(2, pressSamples))
	mcr.add(L, 0, 1)
	return 0
}

func (mcr *Macro) hold(L *lua.LState) int {
	b := buttons(L)
	mcr.add(L, b, L.CheckInt(2))
	return 0
}

func (mcr *Macro) wait(L *lua.LState) int {
	mcr.add(L, 0, L.CheckInt(1))
	return 0
}

func (mcr *Macro) log(L *lua.LState) int {
	logger.Logf(logger.Allow, "macro", "%s: %s", mcr.name, L.CheckString(1))
	return 0
}

// Len returns the number of samples in the macro.
func (mcr *Macro) Len() int {
	return len(mcr.samples)
}

// Remaining returns the number of samples that have not yet been consumed.
func (mcr *Macro) Remaining() int {
	return len(mcr.samples) - mcr.pos
}

// PadState implements the input.Source interface.
func (mcr *Macro) PadState() uint16 {
	if mcr.pos < len(mcr.samples) {
		s := mcr.samples[mcr.pos]
		mcr.pos++
		return s
	}

	if !mcr.finished {
		mcr.finished = true
		logger.Logf(logger.Allow, "macro", "%s: finished", mcr.name)
		if mcr.Finished != nil {
			mcr.Finished()
		}
	}
	return 0
}
