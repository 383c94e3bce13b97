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

package storage

import (
	"github.com/satflash/saroo/curated"
	"github.com/satflash/saroo/firmware/channel"
	"github.com/satflash/saroo/hardware/memory/addresses"
)

// MalformedCatalog is returned by FetchCatalog() if the contents of the
// catalog window cannot be parsed.
const MalformedCatalog = "storage: malformed catalog: %s"

// maximum length of a path in the catalog
const maxCatalogPath = 256

// Catalog is the list of disc images on the card, in the order the companion
// reported them.
type Catalog struct {
	paths []string
}

// Len returns the number of discs in the catalog.
func (cat *Catalog) Len() int {
	if cat == nil {
		return 0
	}
	return len(cat.paths)
}

// Path returns the full path of the disc image with the index.
func (cat *Catalog) Path(i int) string {
	return cat.paths[i]
}

// FetchCatalog asks the companion to list the disc images on the card and
// parses the result from the catalog window.
func (st *Storage) FetchCatalog() (*Catalog, error) {
	res, err := st.ch.Invoke(channel.Command{Op: addresses.OpListDisc})
	if err != nil {
		return nil, err
	}
	if res.Arg < 0 {
		return nil, failed(addresses.OpListDisc, "catalog", res.Arg)
	}

	size := uint64(st.ch.CatalogSize())

	count := uint64(st.ch.CatalogWord(0))
	table := 4 + count*4
	if table > size {
		return nil, curated.Errorf(MalformedCatalog, "count does not fit in window")
	}

	cat := &Catalog{paths: make([]string, 0, count)}
	for i := uint64(0); i < count; i++ {
		offset := uint64(st.ch.CatalogWord(uint32(4 + i*4)))
		if offset < table || offset >= size {
			return nil, curated.Errorf(MalformedCatalog, "offset out of range")
		}
		cat.paths = append(cat.paths, st.ch.CatalogString(uint32(offset), maxCatalogPath))
	}

	return cat, nil
}
