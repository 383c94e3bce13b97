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

package input

import (
	"bufio"
	"io"

	"github.com/satflash/saroo/terminal/easyterm"
)

// Keyboard converts key presses read from a terminal into pad state. Each key
// press holds the mapped button for a number of samples, after which the
// button is released. Keyboards don't report key releases so this is the best
// we can do.
//
//	arrow keys   d-pad
//	a b c        A B C
//	x y z        X Y Z
//	q e          LT RT
//	enter        START
type Keyboard struct {
	// number of samples a key press holds a button
	Hold int

	events chan Button
	held   map[Button]int
}

// DefaultHold is the number of samples a key press holds a button for.
const DefaultHold = 4

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		Hold:   DefaultHold,
		events: make(chan Button, 64),
		held:   make(map[Button]int),
	}
}

var keys = map[byte]Button{
	'a': A, 'b': B, 'c': C,
	'x': X, 'y': Y, 'z': Z,
	'q': LT, 'e': RT,
	easyterm.KeyCarriageReturn: Start,
	easyterm.KeyLineFeed:       Start,
}

// the final byte of an ANSI cursor key sequence (ESC [ x)
var cursorKeys = map[byte]Button{
	easyterm.CursorUp:       Up,
	easyterm.CursorDown:     Down,
	easyterm.CursorForward:  Right,
	easyterm.CursorBackward: Left,
}

// Service reads keys from the reader until it returns an error. It should be
// run in its own goroutine. The reader will usually be a terminal in cbreak
// mode.
func (kb *Keyboard) Service(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		c, err := br.ReadByte()
		if err != nil {
			return err
		}

		if c == easyterm.KeyEsc {
			if n, err := br.ReadByte(); err != nil {
				return err
			} else if n != easyterm.EscCursor {
				continue
			}
			n, err := br.ReadByte()
			if err != nil {
				return err
			}
			if b, ok := cursorKeys[n]; ok {
				kb.events <- b
			}
			continue
		}

		if b, ok := keys[c]; ok {
			kb.events <- b
		}
	}
}

// Push a button press directly, as if the mapped key had been pressed.
func (kb *Keyboard) Push(b Button) {
	kb.events <- b
}

// PadState implements the Source interface.
func (kb *Keyboard) PadState() uint16 {
	for done := false; !done; {
		select {
		case b := <-kb.events:
			kb.held[b] = kb.Hold
		default:
			done = true
		}
	}

	var state Button
	for b, n := range kb.held {
		state |= b
		if n <= 1 {
			delete(kb.held, b)
		} else {
			kb.held[b] = n - 1
		}
	}
	return uint16(state)
}
