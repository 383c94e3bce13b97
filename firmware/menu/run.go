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
	"context"
	"time"

	"github.com/satflash/saroo/logger"
)

// Renderer draws menus.
type Renderer interface {
	// draw the entire menu
	DrawFrame(m *Menu)

	// the selection has changed
	Update(m *Menu)

	// the status line has changed
	Status(m *Menu)
}

// Pad is the source of pad samples.
type Pad interface {
	Poll() (uint16, error)
}

// Pacer spaces out pad samples.
type Pacer interface {
	Sleep(time.Duration)
}

// Loop is the environment a menu runs in.
type Loop struct {
	Pad      Pad
	Renderer Renderer

	// Pacer can be nil, in which case the pad is polled continuously
	Pacer    Pacer
	Interval time.Duration
}

// Run the menu until the handler returns a Transition other than Continue, or
// until the context is cancelled. The context is checked once per pad sample.
func (l Loop) Run(ctx context.Context, m *Menu, h Handler) (Transition, error) {
	outer := m.renderer
	m.renderer = l.Renderer
	defer func() {
		m.renderer = outer
	}()

	l.Renderer.DrawFrame(m)

	// buttons held on entry must be released before they count as pressed
	prev := uint16(0xffff)

	for {
		if err := ctx.Err(); err != nil {
			return Exit, err
		}

		now, err := l.Pad.Poll()
		if err != nil {
			return Exit, err
		}
		in := Input{Now: now, Prev: prev}
		prev = now

		if in.Now&^in.Prev != 0 {
			gen := m.generation
			title := m.Title
			current := m.Current

			tr := h.Tick(m, in)

			if m.generation != gen || m.Title != title {
				l.Renderer.DrawFrame(m)
			} else if m.Current != current {
				l.Renderer.Update(m)
			}

			if tr != Continue {
				logger.Logf(logger.Allow, "menu", "%s: %v", m.Title, tr)
				return tr, nil
			}
		}

		if l.Pacer != nil {
			l.Pacer.Sleep(l.Interval)
		}
	}
}
