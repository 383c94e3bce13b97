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
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/satflash/saroo/firmware/catalog"
	"github.com/satflash/saroo/logger"
	"github.com/satflash/saroo/terminal"
)

// shell keywords
const (
	cmdHelp = "HELP"
	cmdLog  = "LOG"
	cmdPeek = "PEEK"
	cmdPoke = "POKE"
	cmdCat  = "CAT"
	cmdRead = "READ"
	cmdPuts = "PUTS"
	cmdViz  = "VIZ"
	cmdMenu = "MENU"
	cmdExit = "EXIT"
	cmdQuit = "QUIT"
)

var help = map[string]string{
	cmdHelp: "Lists commands and provides help for individual commands",
	cmdLog:  "Print the most recent log entries. Optional argument is the number of entries",
	cmdPeek: "Read a register or memory address. Optional width argument is 8 or 16",
	cmdPoke: "Write a value to a register or memory address. Optional width argument is 8 or 16",
	cmdCat:  "List the discs found on the card",
	cmdRead: "Hex dump of a file on the card. Optional arguments are offset and size",
	cmdPuts: "Print text on the companion controller's console",
	cmdViz:  "Write a graph of the boot menu state to a file on the card",
	cmdMenu: "Return to the boot menu",
	cmdExit: "Return to the boot menu",
	cmdQuit: "Stop the firmware",
}

var usage = map[string]string{
	cmdLog:  "LOG [n]",
	cmdPeek: "PEEK address [8|16]",
	cmdPoke: "POKE address value [8|16]",
	cmdRead: "READ path [offset [size]]",
	cmdPuts: "PUTS text",
	cmdViz:  "VIZ path",
}

// the default number of bytes dumped by READ
const defaultReadSize = 256

// the default number of log entries printed by LOG
const defaultLogEntries = 10

func (sh *Shell) print(s string, a ...any) {
	sh.term.TermPrintLine(terminal.StyleInstrument, fmt.Sprintf(s, a...))
}

func (sh *Shell) feedback(s string, a ...any) {
	sh.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf(s, a...))
}

func usageError(cmd string) error {
	return fmt.Errorf("usage: %s", usage[cmd])
}

// process a single line of input. done is true if the shell should return
// to the caller, in which case quit indicates whether the firmware should
// stop.
func (sh *Shell) process(input string) (done bool, quit bool, err error) {
	tokens := tokeniseInput(input)

	command, ok := tokens.get()
	if !ok {
		return false, false, nil
	}
	command = strings.ToUpper(command)

	switch command {
	case cmdHelp:
		sh.help(tokens)

	case cmdLog:
		n := defaultLogEntries
		if arg, ok := tokens.get(); ok {
			n, err = strconv.Atoi(arg)
			if err != nil || n < 0 {
				return false, false, usageError(cmdLog)
			}
		}
		logger.Tail(termWriter{term: sh.term, style: terminal.StyleInstrument}, n)

	case cmdPeek:
		return false, false, sh.peek(tokens)

	case cmdPoke:
		return false, false, sh.poke(tokens)

	case cmdCat:
		cat, err := sh.st.FetchCatalog()
		if err != nil {
			return false, false, err
		}
		if cat.Len() == 0 {
			sh.feedback("no discs")
		}
		for i := 0; i < cat.Len(); i++ {
			sh.print("%s", catalog.Label(i, cat.Path(i)))
		}

	case cmdRead:
		return false, false, sh.read(tokens)

	case cmdPuts:
		if tokens.remaining() == 0 {
			return false, false, usageError(cmdPuts)
		}
		return false, false, sh.st.Puts(tokens.remainder() + "\n")

	case cmdViz:
		path, ok := tokens.get()
		if !ok {
			return false, false, usageError(cmdViz)
		}
		if sh.menu == nil {
			return false, false, fmt.Errorf("no menu to graph")
		}
		var b bytes.Buffer
		memviz.Map(&b, sh.menu)
		n, err := sh.st.WriteFile(path, 0, b.Bytes())
		if err != nil {
			return false, false, err
		}
		sh.feedback("%d bytes written to %s", n, path)

	case cmdMenu, cmdExit:
		return true, false, nil

	case cmdQuit:
		return true, true, nil

	default:
		return false, false, fmt.Errorf("%s is not a command", command)
	}

	return false, false, nil
}

func (sh *Shell) help(tokens *tokens) {
	if cmd, ok := tokens.get(); ok {
		cmd = strings.ToUpper(cmd)
		h, ok := help[cmd]
		if !ok {
			sh.term.TermPrintLine(terminal.StyleError, fmt.Sprintf("no help for %s", cmd))
			return
		}
		sh.term.TermPrintLine(terminal.StyleHelp, h)
		if u, ok := usage[cmd]; ok {
			sh.term.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("usage: %s", u))
		}
		return
	}

	cmds := make([]string, 0, len(help))
	for k := range help {
		cmds = append(cmds, k)
	}
	sort.Strings(cmds)
	sh.term.TermPrintLine(terminal.StyleHelp, strings.Join(cmds, " "))
}

func (sh *Shell) peek(tokens *tokens) error {
	a, ok := tokens.get()
	if !ok {
		return usageError(cmdPeek)
	}
	r, err := sh.resolve(a)
	if err != nil {
		return err
	}
	if w, ok := tokens.get(); ok {
		if r.width, err = width(w); err != nil {
			return err
		}
	}

	if r.width == 16 {
		sh.print("%08x: %04x", r.address, sh.mem.Read16(r.address))
	} else {
		sh.print("%08x: %02x", r.address, sh.mem.Read8(r.address))
	}
	return nil
}

func (sh *Shell) poke(tokens *tokens) error {
	a, ok := tokens.get()
	if !ok {
		return usageError(cmdPoke)
	}
	v, ok := tokens.get()
	if !ok {
		return usageError(cmdPoke)
	}
	r, err := sh.resolve(a)
	if err != nil {
		return err
	}
	if w, ok := tokens.get(); ok {
		if r.width, err = width(w); err != nil {
			return err
		}
	}

	d, err := value(v, r.width)
	if err != nil {
		return err
	}

	if r.width == 16 {
		sh.mem.Write16(r.address, d)
	} else {
		sh.mem.Write8(r.address, uint8(d))
	}
	logger.Logf(logger.Allow, "shell", "poke %08x = %x", r.address, d)
	return nil
}

func (sh *Shell) read(tokens *tokens) error {
	path, ok := tokens.get()
	if !ok {
		return usageError(cmdRead)
	}

	offset := 0
	size := defaultReadSize

	if arg, ok := tokens.get(); ok {
		v, err := strconv.ParseUint(arg, 0, 31)
		if err != nil {
			return usageError(cmdRead)
		}
		offset = int(v)
	}
	if arg, ok := tokens.get(); ok {
		v, err := strconv.ParseUint(arg, 0, 31)
		if err != nil || v == 0 {
			return usageError(cmdRead)
		}
		size = int(v)
	}

	buf := make([]byte, size)
	n, err := sh.st.ReadFile(path, offset, buf)
	if err != nil {
		return err
	}
	if n == 0 {
		sh.feedback("no data")
		return nil
	}

	termWriter{term: sh.term, style: terminal.StyleInstrument}.Write([]byte(hex.Dump(buf[:n])))
	return nil
}
