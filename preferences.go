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

package main

import (
	"github.com/satflash/saroo/hardware/input"
	"github.com/satflash/saroo/paths"
	"github.com/satflash/saroo/prefs"
)

// preferences of the host runner. values are loaded from the prefs file in
// the resource directory and can be overridden on the command line.
type preferences struct {
	dsk *prefs.Disk

	// host directory used as the adapter's SD card
	root prefs.String

	// busy polls for each simulated peripheral command
	latency prefs.Int

	// echo the log to stdout
	echo prefs.Bool

	// samples a key press holds a pad button
	hold prefs.Int
}

const prefsFile = "preferences"

func newPreferences() (*preferences, error) {
	p := &preferences{}
	p.root.Set(paths.ResourcePath("sd"))
	p.latency.Set(0)
	p.echo.Set(false)
	p.hold.Set(input.DefaultHold)

	pth, err := paths.EnsureResourcePath(prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key  string
		pref interface {
			String() string
			Set(prefs.Value) error
			Get() prefs.Value
		}
	}{
		{"companion.root", &p.root},
		{"companion.latency", &p.latency},
		{"firmware.echo", &p.echo},
		{"pad.hold", &p.hold},
	} {
		if err := p.dsk.Add(e.key, e.pref); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
