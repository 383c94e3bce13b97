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

package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/satflash/saroo/firmware/menu"
)

// PageSize is the number of discs on a page.
const PageSize = 11

// PathPrefix is the length of the directory prefix shared by every path in
// the catalog ("/SAROO/ISO/").
const PathPrefix = len("/SAROO/ISO/")

// maximum length of a label
const maxLabel = 127

// TotalPages returns the number of pages needed for count discs.
func TotalPages(count int) int {
	return (count + PageSize - 1) / PageSize
}

// Label returns the menu label for a disc.
func Label(index int, path string) string {
	var name string
	if len(path) > PathPrefix {
		name = path[PathPrefix:]
	}

	s := fmt.Sprintf("%2d: %s", index, name)
	if len(s) > maxLabel {
		// cut at the start of a character
		n := maxLabel
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	return s
}

// List is the part of the catalog the pager needs.
type List interface {
	Len() int
	Path(i int) string
}

// Pager fills a menu with one page of the catalog.
type Pager struct {
	Page  int
	Total int
}

// Refresh clamps the page to the catalog and fills the menu with the items for
// the page. The selection is reset.
func (p *Pager) Refresh(m *menu.Menu, cat List) {
	p.Total = TotalPages(cat.Len())
	if p.Page >= p.Total {
		p.Page = p.Total - 1
	}
	if p.Page < 0 {
		p.Page = 0
	}

	m.Clear()
	for i := 0; i < PageSize; i++ {
		idx := p.Page*PageSize + i
		if idx >= cat.Len() {
			break
		}
		m.Add(Label(idx, cat.Path(idx)))
	}

	if p.Total == 0 {
		m.Title = "Select Game (0/0)"
	} else {
		m.Title = fmt.Sprintf("Select Game (%d/%d)", p.Page+1, p.Total)
	}
}

// ChangePage moves by delta pages, wrapping around at either end, and refills
// the menu. The selection is put on the last item of the new page if toLast
// is true, otherwise on the first.
func (p *Pager) ChangePage(m *menu.Menu, cat List, delta int, toLast bool) {
	if p.Total == 0 {
		return
	}
	p.Page = ((p.Page+delta)%p.Total + p.Total) % p.Total
	p.Refresh(m, cat)
	if toLast {
		m.Current = m.Num() - 1
	}
}

// Index returns the catalog index of the current menu selection.
func (p *Pager) Index(m *menu.Menu) int {
	return p.Page*PageSize + m.Current
}
