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
	"context"
	"strings"

	"github.com/satflash/saroo/curated"
	"github.com/satflash/saroo/firmware/menu"
	"github.com/satflash/saroo/firmware/storage"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/logger"
	"github.com/satflash/saroo/terminal"
)

// DefaultPrompt is the prompt shown before reading a command.
const DefaultPrompt = terminal.Prompt("saroo> ")

// Shell is the serial diagnostic console.
type Shell struct {
	term terminal.Terminal
	mem  bus.Bus
	st   *storage.Storage
	regs map[string]register

	Prompt terminal.Prompt

	// the menu that was active when the shell was entered
	menu *menu.Menu
}

// NewShell is the preferred method of initialisation for the Shell type.
func NewShell(term terminal.Terminal, mem bus.Bus, m addresses.Map, st *storage.Storage) *Shell {
	return &Shell{
		term:   term,
		mem:    mem,
		st:     st,
		regs:   registerNames(m),
		Prompt: DefaultPrompt,
	}
}

// Run reads and executes commands until MENU or QUIT is entered, or until the
// context is cancelled. It returns true if the firmware should stop. The end
// of input is the same as QUIT.
func (sh *Shell) Run(ctx context.Context, m *menu.Menu) bool {
	sh.menu = m

	if err := sh.term.Initialise(); err != nil {
		logger.Log(logger.Allow, "shell", err)
		return true
	}
	defer sh.term.CleanUp()

	sh.term.TermPrintLine(terminal.StyleFeedback, "serial console. HELP for commands")

	for ctx.Err() == nil {
		input, err := sh.term.TermRead(sh.Prompt)
		if err != nil {
			if !curated.Is(err, terminal.UserQuit) {
				sh.term.TermPrintLine(terminal.StyleError, err.Error())
			}
			return true
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		sh.term.TermPrintLine(terminal.StyleEcho, input)

		done, quit, err := sh.process(input)
		if err != nil {
			sh.term.TermPrintLine(terminal.StyleError, err.Error())
		}
		if done {
			return quit
		}
	}

	return true
}

// termWriter sends each line written to it to the terminal.
type termWriter struct {
	term  terminal.Output
	style terminal.Style
}

func (tw termWriter) Write(p []byte) (int, error) {
	for _, s := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tw.term.TermPrintLine(tw.style, s)
	}
	return len(p), nil
}
