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

//go:build windows

package easyterm

import (
	"fmt"
	"os"
)

// Terminal is not supported on windows. Initialise() always fails and the
// host runner falls back to line input.
type Terminal struct{}

// Initialise always returns an error on windows.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return fmt.Errorf("easyterm: not supported on windows")
}

// CleanUp does nothing on windows.
func (pt *Terminal) CleanUp() {}

// Print does nothing on windows.
func (pt *Terminal) Print(s string, a ...any) {}

// CanonicalMode does nothing on windows.
func (pt *Terminal) CanonicalMode() {}

// RawMode does nothing on windows.
func (pt *Terminal) RawMode() {}

// CBreakMode does nothing on windows.
func (pt *Terminal) CBreakMode() {}

// Flush does nothing on windows.
func (pt *Terminal) Flush() error { return nil }
