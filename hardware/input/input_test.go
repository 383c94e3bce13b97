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

package input_test

import (
	"io"
	"strings"
	"testing"

	"github.com/satflash/saroo/hardware/input"
	"github.com/satflash/saroo/test"
)

func TestParseButtons(t *testing.T) {
	b, err := input.ParseButtons("up+a")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, input.Up|input.A)
	test.ExpectEquality(t, b.String(), "UP+A")

	b, err = input.ParseButtons("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, input.Button(0))
	test.ExpectEquality(t, b.String(), "NONE")

	_, err = input.ParseButtons("UP+W")
	test.ExpectFailure(t, err)
}

func TestPad(t *testing.T) {
	var p input.Pad
	p.Press(input.A)
	p.Press(input.Down)
	test.ExpectEquality(t, p.PadState(), uint16(input.A|input.Down))
	p.Release(input.A)
	test.ExpectEquality(t, p.PadState(), uint16(input.Down))
	p.Set(0)
	test.ExpectEquality(t, p.PadState(), uint16(0))
}

func TestKeyboard(t *testing.T) {
	kb := input.NewKeyboard()
	kb.Hold = 2

	err := kb.Service(strings.NewReader("a\x1b[B"))
	test.ExpectEquality(t, err, io.EOF)

	test.ExpectEquality(t, kb.PadState(), uint16(input.A|input.Down))
	test.ExpectEquality(t, kb.PadState(), uint16(input.A|input.Down))
	test.ExpectEquality(t, kb.PadState(), uint16(0))

	kb.Push(input.Start)
	test.ExpectEquality(t, kb.PadState(), uint16(input.Start))
}
