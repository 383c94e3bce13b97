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

package plainterm_test

import (
	"strings"
	"testing"

	"github.com/satflash/saroo/curated"
	"github.com/satflash/saroo/terminal"
	"github.com/satflash/saroo/terminal/plainterm"
	"github.com/satflash/saroo/test"
)

func TestPlainTerminal(t *testing.T) {
	w := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("peek sf\r\nquit"), w)
	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "peek sf")

	// final line has no line ending
	s, err = pt.TermRead("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead("> ")
	test.ExpectSuccess(t, curated.Is(err, terminal.UserQuit))

	// prompt is not written to non-interactive output
	test.ExpectEquality(t, w.String(), "")

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, w.String(), "hello\n* bad\n")

	w.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, w.String(), "* bad\n")
}
