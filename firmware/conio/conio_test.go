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

package conio_test

import (
	"strings"
	"testing"

	"github.com/satflash/saroo/firmware/conio"
	"github.com/satflash/saroo/firmware/menu"
	"github.com/satflash/saroo/terminal/easyterm/ansi"
	"github.com/satflash/saroo/test"
)

func TestPlain(t *testing.T) {
	w := &test.Writer{}
	con := conio.NewConsole(w)
	con.Plain = true

	m := menu.New("Title")
	m.Add("one")
	m.Add("two")
	con.DrawFrame(m)
	test.ExpectEquality(t, w.String(), "== Title ==\n> one\n  two\n")

	w.Clear()
	m.Current = 1
	con.Update(m)
	m.Status = "busy"
	con.Status(m)
	test.ExpectEquality(t, w.String(), "> two\n[busy]\n")
}

func TestANSI(t *testing.T) {
	w := &test.Writer{}
	con := conio.NewConsole(w)

	m := menu.New("Title")
	m.Add("one")
	m.Add("two")
	con.DrawFrame(m)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), ansi.CursorHide+ansi.ClearScreen))
	test.ExpectSuccess(t, strings.Contains(w.String(), ansi.InversePen+"one"))

	// moving the selection redraws exactly two lines
	w.Clear()
	m.Current = 1
	con.Update(m)
	test.ExpectEquality(t, strings.Count(w.String(), ansi.ClearLine), 2)
	test.ExpectSuccess(t, strings.Contains(w.String(), ansi.InversePen+"two"))
	test.ExpectFailure(t, strings.Contains(w.String(), ansi.InversePen+"one"))
}
