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

package menu_test

import (
	"context"
	"errors"
	"testing"

	"github.com/satflash/saroo/firmware/menu"
	"github.com/satflash/saroo/hardware/input"
	"github.com/satflash/saroo/test"
)

// samples is a pad that returns a fixed sequence of samples and then all
// buttons released
type samples []uint16

func (s *samples) Poll() (uint16, error) {
	if len(*s) == 0 {
		return 0, nil
	}
	v := (*s)[0]
	*s = (*s)[1:]
	return v, nil
}

// presses converts buttons to samples. every press is preceded by a release
func presses(b ...input.Button) *samples {
	s := make(samples, 0, len(b)*2+1)
	s = append(s, 0)
	for _, v := range b {
		s = append(s, uint16(v), 0)
	}
	return &s
}

type recorder struct {
	frames, updates, statuses int
}

func (r *recorder) DrawFrame(*menu.Menu) { r.frames++ }
func (r *recorder) Update(*menu.Menu)    { r.updates++ }
func (r *recorder) Status(*menu.Menu)    { r.statuses++ }

func list(n int) *menu.Menu {
	m := menu.New("test")
	for i := 0; i < n; i++ {
		m.Add("item")
	}
	return m
}

func TestPressed(t *testing.T) {
	in := menu.Input{Now: uint16(input.A | input.B), Prev: uint16(input.B)}
	test.ExpectSuccess(t, in.Pressed(input.A))
	test.ExpectFailure(t, in.Pressed(input.B))
	test.ExpectSuccess(t, in.Pressed(input.A|input.B))
	test.ExpectFailure(t, in.Pressed(input.C))
}

func TestDefaultBounds(t *testing.T) {
	m := list(3)

	up := menu.Input{Now: uint16(input.Up)}
	down := menu.Input{Now: uint16(input.Down)}

	ok, tr := menu.Default(m, up)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, tr, menu.Continue)
	test.ExpectEquality(t, m.Current, 0)

	for i := 0; i < 10; i++ {
		menu.Default(m, down)
		test.ExpectSuccess(t, m.Current >= 0 && m.Current < m.Num())
	}
	test.ExpectEquality(t, m.Current, 2)

	ok, tr = menu.Default(m, menu.Input{Now: uint16(input.C)})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, tr, menu.Exit)

	ok, _ = menu.Default(m, menu.Input{Now: uint16(input.A)})
	test.ExpectFailure(t, ok)

	// only C cancels
	ok, _ = menu.Default(m, menu.Input{Now: uint16(input.B)})
	test.ExpectFailure(t, ok)
}

func TestRun(t *testing.T) {
	m := list(4)
	r := &recorder{}

	var confirmed int
	h := menu.HandlerFunc(func(m *menu.Menu, in menu.Input) menu.Transition {
		if ok, tr := menu.Default(m, in); ok {
			return tr
		}
		if in.Pressed(input.A) {
			confirmed = m.Current
			m.SetStatus("confirmed")
			return menu.Restart
		}
		return menu.Continue
	})

	pad := presses(input.Down, input.Down, input.Up, input.Down, input.A)
	loop := menu.Loop{Pad: pad, Renderer: r}
	tr, err := loop.Run(context.Background(), m, h)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tr, menu.Restart)
	test.ExpectEquality(t, confirmed, 2)
	test.ExpectEquality(t, r.frames, 1)
	test.ExpectEquality(t, r.updates, 4)
	test.ExpectEquality(t, r.statuses, 1)
}

func TestHeldOnEntry(t *testing.T) {
	m := list(2)

	// A is held when the menu starts and must be released before it counts
	s := samples{uint16(input.A), uint16(input.A), 0, uint16(input.A)}
	var ticks int
	h := menu.HandlerFunc(func(m *menu.Menu, in menu.Input) menu.Transition {
		ticks++
		return menu.Exit
	})

	loop := menu.Loop{Pad: &s, Renderer: &recorder{}}
	tr, err := loop.Run(context.Background(), m, h)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tr, menu.Exit)
	test.ExpectEquality(t, ticks, 1)
	test.ExpectEquality(t, len(s), 0)
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := menu.Loop{Pad: &samples{}, Renderer: &recorder{}}
	_, err := loop.Run(ctx, list(1), menu.HandlerFunc(func(*menu.Menu, menu.Input) menu.Transition {
		return menu.Continue
	}))
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
}
