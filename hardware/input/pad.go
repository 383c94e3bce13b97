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

import "sync/atomic"

// Source is anything that can report the pad state when the system manager
// samples the controller port. Buttons that are pressed are set (active-high).
//
// PadState() is called exactly once per sample.
type Source interface {
	PadState() uint16
}

// Pad is a Source whose state is set directly. It is safe to change the state
// from a different goroutine to the one sampling the pad.
type Pad struct {
	state atomic.Uint32
}

// PadState implements the Source interface.
func (p *Pad) PadState() uint16 {
	return uint16(p.state.Load())
}

// Press sets the button(s) as held.
func (p *Pad) Press(b Button) {
	for {
		o := p.state.Load()
		if p.state.CompareAndSwap(o, o|uint32(b)) {
			return
		}
	}
}

// Release clears the button(s).
func (p *Pad) Release(b Button) {
	for {
		o := p.state.Load()
		if p.state.CompareAndSwap(o, o&^uint32(b)) {
			return
		}
	}
}

// Set replaces the entire pad state.
func (p *Pad) Set(b Button) {
	p.state.Store(uint32(b))
}
