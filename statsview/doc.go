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

// Package statsview offers runtime statistics for the host runner. The real
// implementation is only built when the statsview build tag is present.
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// After launch, graphical statistics are viewable at:
//
//	localhost:12800/debug/statsview
//
// This is mostly useful for watching the cost of the busy-wait loops when the
// simulated peripherals are given a high latency.
package statsview
