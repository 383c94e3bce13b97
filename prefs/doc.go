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

// Package prefs persists the few host-side settings of the firmware runner:
// where the simulated SD card lives, how slow the simulated peripherals are
// and whether the log is echoed.
//
// Values are registered with a Disk instance and saved as "key :: value"
// lines. Keys present in the file but not registered with the Disk are kept
// and written back unchanged on Save().
//
// Values can be overridden for the duration of a run with the command line
// stack. For example:
//
//	prefs.PushCommandLineStack("companion.latency::0; firmware.echo::true")
//
// The stack is consulted by Disk.Load().
package prefs
