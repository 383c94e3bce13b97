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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is written to the top of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand while the firmware runner is running ***"

// the separator between key and value in the prefs file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// values in the file that have not been registered with Add()
	unknown map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for prefs file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		unknown: make(map[string]string),
	}, nil
}

// Add preference value to the Disk. The key must be unique.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: %s already added", key)
	}
	dsk.entries[key] = p
	return nil
}

// Load values from disk. A missing file is not an error. Values on the
// command line stack take precedence over the values in the file.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("prefs: %w", err)
		}
	} else {
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			if line == WarningBoilerPlate {
				continue
			}

			kv := strings.SplitN(line, separator, 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.TrimSpace(kv[0])

			if p, ok := dsk.entries[key]; ok {
				if err := p.Set(kv[1]); err != nil {
					return fmt.Errorf("prefs: %s: %w", key, err)
				}
			} else {
				dsk.unknown[key] = kv[1]
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	for key, p := range dsk.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}

	return nil
}

// Save current values to disk. Keys are written in sorted order.
func (dsk *Disk) Save() error {
	lines := make(map[string]string, len(dsk.entries)+len(dsk.unknown))
	for k, v := range dsk.unknown {
		lines[k] = v
	}
	for k, p := range dsk.entries {
		lines[k] = p.String()
	}

	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, lines[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}
