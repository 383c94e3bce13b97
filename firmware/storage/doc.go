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

// Package storage implements the typed storage operations of the firmware on
// top of the storage command channel: file reads and writes, the disc
// catalog, disc loading, the firmware update and printing to the companion's
// console.
//
// A negative result from the companion is returned as an error that wraps a
// Code. The Code is never decoded by the firmware. It is shown to the user or
// passed up to the caller. Use errors.As() to recover it.
//
//	n, err := st.ReadFile("/SAROO/run.bin", 0, buf)
//	var code storage.Code
//	if errors.As(err, &code) {
//		...
//	}
package storage
