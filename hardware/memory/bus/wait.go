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

package bus

import "github.com/satflash/saroo/curated"

// Waiter is the only way a channel busy-waits on a completion flag. Wait()
// returns once done() returns true. There is no timeout and no way of
// abandoning a wait.
type Waiter interface {
	Wait(done func() bool)
}

// SpinLimitExceeded is the panic value of a limited Spin.
const SpinLimitExceeded = "spin: completion flag not cleared after %d polls"

// Spin is the standard implementation of Waiter. It polls done() in a tight
// loop.
//
// A non-zero Limit will cause a panic after that many unsuccessful polls. It
// is intended for test harnesses, where a peripheral that never completes
// should fail the test rather than hang it.
type Spin struct {
	Limit int

	// the number of polls made in the most recent call to Wait()
	Polls int
}

// Wait implements the Waiter interface.
func (s *Spin) Wait(done func() bool) {
	s.Polls = 0
	for !done() {
		s.Polls++
		if s.Limit > 0 && s.Polls >= s.Limit {
			panic(curated.Errorf(SpinLimitExceeded, s.Polls))
		}
	}
}
