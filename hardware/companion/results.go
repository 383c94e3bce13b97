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
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// Result values written to ARG. Negative values are errors.
const (
	ResultOK              int16 = 0
	ResultDiskError       int16 = -1
	ResultBadIndex        int16 = -2
	ResultNotReady        int16 = -3
	ResultNoFile          int16 = -4
	ResultNoPath          int16 = -5
	ResultInvalidName     int16 = -6
	ResultDenied          int16 = -7
	ResultNotEnoughCore   int16 = -17
	ResultInvalidArgument int16 = -19
)

var errInvalidName = errors.New("invalid name")

// paths must be absolute and must not climb out of the card
func validPath(p string) error {
	if !strings.HasPrefix(p, "/") || len(p) < 2 {
		return errInvalidName
	}
	for _, e := range strings.Split(p[1:], "/") {
		if e == "" || e == "." || e == ".." {
			return errInvalidName
		}
	}
	return nil
}

// resultFromError converts a filesystem error to an ARG value.
func resultFromError(fsys afero.Fs, name string, err error) int16 {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, errInvalidName):
		return ResultInvalidName
	case errors.Is(err, fs.ErrNotExist):
		// distinguish between a missing file and a missing directory
		if ok, _ := afero.DirExists(fsys, path.Dir(name)); ok {
			return ResultNoFile
		}
		return ResultNoPath
	case errors.Is(err, fs.ErrPermission):
		return ResultDenied
	case errors.Is(err, fs.ErrInvalid):
		return ResultInvalidArgument
	}
	return ResultDiskError
}
