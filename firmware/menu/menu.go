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

package menu

import (
	"github.com/satflash/saroo/hardware/input"
)

// Transition is the result of handling one pad sample.
type Transition int

// List of valid Transition values.
const (
	// stay in the menu
	Continue Transition = iota

	// leave the menu. the caller decides what happens next
	Exit

	// leave the menu and build it again from scratch
	Restart

	// leave the menu and stop running altogether
	Halt
)

// Cancel is the button that leaves a menu.
const Cancel = input.C

func (t Transition) String() string {
	switch t {
	case Continue:
		return "continue"
	case Exit:
		return "exit"
	case Restart:
		return "restart"
	case Halt:
		return "halt"
	}
	return "unknown"
}

// Menu is a titled list of items with a selection and a status line.
type Menu struct {
	Title   string
	Items   []string
	Current int
	Status  string

	// incremented whenever the list of items changes
	generation int

	// the renderer of the loop currently running the menu. status changes
	// are drawn immediately because the handler may be about to start
	// something that takes a long time
	renderer Renderer
}

// New is the preferred method of initialisation for the Menu type.
func New(title string) *Menu {
	return &Menu{
		Title: title,
		Items: make([]string, 0, 11),
	}
}

// Add an item to the end of the list.
func (m *Menu) Add(item string) {
	m.Items = append(m.Items, item)
	m.generation++
}

// Clear removes all items and resets the selection.
func (m *Menu) Clear() {
	m.Items = m.Items[:0]
	m.Current = 0
	m.generation++
}

// Num returns the number of items.
func (m *Menu) Num() int {
	return len(m.Items)
}

// SetStatus changes the status line. An empty string clears it.
func (m *Menu) SetStatus(s string) {
	m.Status = s
	if m.renderer != nil {
		m.renderer.Status(m)
	}
}

// Selected returns the label of the current item.
func (m *Menu) Selected() string {
	if m.Current < 0 || m.Current >= len(m.Items) {
		return ""
	}
	return m.Items[m.Current]
}

// Input is one pad sample and the sample before it.
type Input struct {
	Now  uint16
	Prev uint16
}

// Pressed returns true if any of the buttons has been pressed since the
// previous sample.
func (in Input) Pressed(b input.Button) bool {
	return in.Now&^in.Prev&uint16(b) != 0
}

// Handler implementations process a pad sample for a menu.
type Handler interface {
	Tick(m *Menu, in Input) Transition
}

// HandlerFunc allows an ordinary function to be used as a Handler.
type HandlerFunc func(m *Menu, in Input) Transition

// Tick implements the Handler interface.
func (fn HandlerFunc) Tick(m *Menu, in Input) Transition {
	return fn(m, in)
}

// Default handles the buttons common to simple list menus. Up and Down move
// the selection, stopping at either end of the list. Cancel exits the menu.
//
// Returns true if the input was consumed, in which case the caller should
// return the Transition without further processing.
func Default(m *Menu, in Input) (bool, Transition) {
	switch {
	case in.Pressed(input.Up):
		if m.Current > 0 {
			m.Current--
		}
		return true, Continue
	case in.Pressed(input.Down):
		if m.Current < m.Num()-1 {
			m.Current++
		}
		return true, Continue
	case in.Pressed(Cancel):
		return true, Exit
	}
	return false, Continue
}
