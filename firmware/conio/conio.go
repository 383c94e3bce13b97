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

// Package conio draws menus as text. The Console renderer uses ANSI escape
// sequences to draw a full screen menu on a terminal. With Plain set it writes
// one line per change instead, which is suitable for logs and for output that
// is not a terminal.
package conio

import (
	"fmt"
	"io"
	"strings"

	"github.com/satflash/saroo/firmware/menu"
	"github.com/satflash/saroo/terminal/easyterm/ansi"
)

// screen layout. rows count from zero
const (
	titleRow  = 1
	itemsRow  = 3
	leftCol   = 2
	maxItems  = 11
	statusGap = 1
)

// Console is a menu.Renderer.
type Console struct {
	w io.Writer

	// write plain lines rather than drawing the screen
	Plain bool

	// the number of items drawn by the most recent DrawFrame()
	drawn int

	// the selection drawn most recently
	current int
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (con *Console) statusRow() int {
	return itemsRow + max(con.drawn, maxItems) + statusGap
}

func (con *Console) item(m *menu.Menu, i int) {
	io.WriteString(con.w, ansi.CursorMove(itemsRow+i, 0))
	io.WriteString(con.w, ansi.ClearLine)
	if i >= m.Num() {
		return
	}
	if i == m.Current {
		fmt.Fprintf(con.w, "%s%s%s%s", strings.Repeat(" ", leftCol), ansi.InversePen, m.Items[i], ansi.NormalPen)
	} else {
		fmt.Fprintf(con.w, "%s%s", strings.Repeat(" ", leftCol), m.Items[i])
	}
}

// DrawFrame implements the menu.Renderer interface.
func (con *Console) DrawFrame(m *menu.Menu) {
	con.drawn = m.Num()
	con.current = m.Current

	if con.Plain {
		fmt.Fprintf(con.w, "== %s ==\n", m.Title)
		for i, s := range m.Items {
			if i == m.Current {
				fmt.Fprintf(con.w, "> %s\n", s)
			} else {
				fmt.Fprintf(con.w, "  %s\n", s)
			}
		}
		if m.Status != "" {
			fmt.Fprintf(con.w, "[%s]\n", m.Status)
		}
		return
	}

	io.WriteString(con.w, ansi.CursorHide)
	io.WriteString(con.w, ansi.ClearScreen)
	io.WriteString(con.w, ansi.CursorMove(titleRow, leftCol))
	fmt.Fprintf(con.w, "%s%s%s", ansi.Pens["yellow"], m.Title, ansi.NormalPen)
	for i := range m.Items {
		con.item(m, i)
	}
	con.Status(m)
}

// Update implements the menu.Renderer interface.
func (con *Console) Update(m *menu.Menu) {
	if con.Plain {
		fmt.Fprintf(con.w, "> %s\n", m.Selected())
		con.current = m.Current
		return
	}

	// only the previous and new selections need redrawing
	con.item(m, con.current)
	con.item(m, m.Current)
	con.current = m.Current
}

// Status implements the menu.Renderer interface.
func (con *Console) Status(m *menu.Menu) {
	if con.Plain {
		if m.Status != "" {
			fmt.Fprintf(con.w, "[%s]\n", m.Status)
		}
		return
	}

	io.WriteString(con.w, ansi.CursorMove(con.statusRow(), 0))
	io.WriteString(con.w, ansi.ClearLine)
	if m.Status != "" {
		fmt.Fprintf(con.w, "%s%s%s%s", strings.Repeat(" ", leftCol), ansi.Pens["cyan"], m.Status, ansi.NormalPen)
	}
}

// CleanUp leaves the terminal in a usable state once the menus are no longer
// being drawn.
func (con *Console) CleanUp() {
	if con.Plain {
		return
	}
	io.WriteString(con.w, ansi.CursorMove(con.statusRow()+2, 0))
	io.WriteString(con.w, ansi.CursorShow)
}
