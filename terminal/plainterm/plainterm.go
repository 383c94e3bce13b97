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

// Package plainterm implements the Terminal interface for the shell. It
// doesn't do anything fancy. For the input it simply reads lines and for
// output it writes plain strings with a prefix for errors.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/satflash/saroo/curated"
	"github.com/satflash/saroo/terminal"
)

// PlainTerminal is the default, most basic terminal interface.
type PlainTerminal struct {
	input      *bufio.Reader
	output     io.Writer
	realInput  bool
	realOutput bool
	silenced   bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. The terminal is interactive if the input is a real
// terminal.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	pt := &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
	}
	if f, ok := input.(*os.File); ok {
		pt.realInput = term.IsTerminal(int(f.Fd()))
	}
	if f, ok := output.(*os.File); ok {
		pt.realOutput = term.IsTerminal(int(f.Fd()))
	}
	return pt
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	// insert prompt into output stream
	if pt.realInput && !pt.silenced {
		io.WriteString(pt.output, prompt.String())
	}

	s, err := pt.input.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(s) == 0 {
			return "", curated.Errorf(terminal.UserQuit)
		}
		if err != io.EOF {
			return "", err
		}
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}

// IsRealTerminal returns true if both input and output are a real terminal.
func (pt *PlainTerminal) IsRealTerminal() bool {
	return pt.realInput && pt.realOutput
}
