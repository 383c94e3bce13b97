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

package companion

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/satflash/saroo/hardware/memory/endian"
)

// DiscDir is the directory on the card containing one sub-directory per disc.
const DiscDir = "/SAROO/ISO"

// extensions of files recognised as disc images
var discImages = []string{".cue", ".iso", ".ccd", ".mds"}

func isDiscImage(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range discImages {
		if ext == e {
			return true
		}
	}
	return false
}

// scanDiscs builds the disc list. Every sub-directory of DiscDir that
// contains a disc image contributes one entry, the first image in name order.
// A missing DiscDir is an empty list.
func (c *Companion) scanDiscs() error {
	c.discs = c.discs[:0]
	if c.discs == nil {
		c.discs = make([]string, 0, 16)
	}
	c.mounted = -1

	if ok, _ := afero.DirExists(c.fs, DiscDir); !ok {
		return nil
	}

	dirs, err := afero.ReadDir(c.fs, DiscDir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", DiscDir, err)
	}

	// ReadDir() returns entries sorted by name
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		dir := path.Join(DiscDir, d.Name())
		files, err := afero.ReadDir(c.fs, dir)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", dir, err)
		}
		for _, f := range files {
			if !f.IsDir() && isDiscImage(f.Name()) {
				c.discs = append(c.discs, path.Join(dir, f.Name()))
				break
			}
		}
	}

	sort.Strings(c.discs)
	return nil
}

// writeCatalog lays out the disc list in the catalog window: the number of
// discs, a table of offsets to the path strings and then the NUL terminated
// strings. All words are little-endian and offsets are from the start of the
// window.
func writeCatalog(win []byte, discs []string) error {
	need := 4 + 4*len(discs)
	for _, d := range discs {
		need += len(d) + 1
	}
	if need > len(win) {
		return fmt.Errorf("catalog of %d discs needs %d bytes; window is %d bytes", len(discs), need, len(win))
	}

	endian.PutLE32(win, uint32(len(discs)))
	str := 4 + 4*len(discs)
	for i, d := range discs {
		endian.PutLE32(win[4+4*i:], uint32(str))
		str += copy(win[str:], d)
		win[str] = 0x00
		str++
	}

	return nil
}
