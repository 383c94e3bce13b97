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

// Package input defines the controller pad's buttons and the host-side
// sources of pad state. The button bits are the layout the firmware sees
// after the pad channel has inverted the system manager's active-low data.
package input

import (
	"fmt"
	"strings"
)

// Button is a bit in the pad state.
type Button uint16

// List of valid Button values.
const (
	Right Button = 0x8000
	Left  Button = 0x4000
	Down  Button = 0x2000
	Up    Button = 0x1000
	Start Button = 0x0800
	A     Button = 0x0400
	C     Button = 0x0200
	B     Button = 0x0100
	RT    Button = 0x0080
	X     Button = 0x0040
	Y     Button = 0x0020
	Z     Button = 0x0010
	LT    Button = 0x0008
)

// AllButtons is the mask of every defined button.
const AllButtons = Right | Left | Down | Up | Start | A | C | B | RT | X | Y | Z | LT

var names = []struct {
	b    Button
	name string
}{
	{Right, "RIGHT"}, {Left, "LEFT"}, {Down, "DOWN"}, {Up, "UP"},
	{Start, "START"}, {A, "A"}, {C, "C"}, {B, "B"},
	{RT, "RT"}, {X, "X"}, {Y, "Y"}, {Z, "Z"}, {LT, "LT"},
}

func (b Button) String() string {
	s := make([]string, 0, 2)
	for _, n := range names {
		if b&n.b == n.b {
			s = append(s, n.name)
		}
	}
	if len(s) == 0 {
		return "NONE"
	}
	return strings.Join(s, "+")
}

// ParseButtons converts a string of button names joined by plus signs (eg.
// "UP+A") to a Button mask. Names are case insensitive.
func ParseButtons(s string) (Button, error) {
	var b Button
	for _, p := range strings.Split(s, "+") {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p == "NONE" {
			continue
		}
		found := false
		for _, n := range names {
			if n.name == p {
				b |= n.b
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("input: unknown button %q", p)
		}
	}
	return b, nil
}
