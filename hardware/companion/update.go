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
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
	"github.com/spf13/afero"
)

// UpdateDir is the directory on the card searched for an update package.
const UpdateDir = "/SAROO/update"

// FlashImage is where a successful update writes the new firmware image.
const FlashImage = "/SAROO/flash.bin"

// MaxFirmwareSize is the size of the flash area reserved for the firmware.
const MaxFirmwareSize = 0x100000

// update packages in order of preference. the compressed packages contain the
// firmware image as the first .bin file in the archive
var updatePackages = []string{
	"SSMaster.bin",
	"SSMaster.zip",
	"SSMaster.gz",
	"SSMaster.7z",
	"SSMaster.rar",
}

var errNoImage = errors.New("no firmware image in package")

func findUpdate(fsys afero.Fs) (string, bool) {
	for _, p := range updatePackages {
		name := path.Join(UpdateDir, p)
		if ok, _ := afero.Exists(fsys, name); ok {
			return name, true
		}
	}
	return "", false
}

func isImage(name string) bool {
	return strings.EqualFold(path.Ext(name), ".bin")
}

// read no more than one byte over the size of the flash so that an oversized
// image can be detected without reading all of it
func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFirmwareSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxFirmwareSize {
		return nil, fmt.Errorf("firmware image larger than %d bytes", MaxFirmwareSize)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("firmware image is empty")
	}
	return data, nil
}

// loadUpdate returns the firmware image contained in the named package.
func loadUpdate(fsys afero.Fs, name string) ([]byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}

	var data []byte
	switch strings.ToLower(path.Ext(name)) {
	case ".bin":
		data, err = limitedRead(f)
	case ".zip":
		data, err = fromZip(f, st.Size())
	case ".gz":
		data, err = fromGzip(f)
	case ".7z":
		data, err = from7z(f, st.Size())
	case ".rar":
		data, err = fromRar(f)
	default:
		err = fmt.Errorf("unsupported package type")
	}
	if err != nil {
		return nil, fmt.Errorf("update: %s: %w", path.Base(name), err)
	}

	return data, nil
}

func fromZip(r io.ReaderAt, size int64) ([]byte, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !isImage(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return limitedRead(rc)
	}
	return nil, errNoImage
}

// a gzip package is the compressed image with no archive structure
func fromGzip(r io.Reader) ([]byte, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gr.Close()
	return limitedRead(gr)
}

func from7z(r io.ReaderAt, size int64) ([]byte, error) {
	zr, err := sevenzip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !isImage(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return limitedRead(rc)
	}
	return nil, errNoImage
}

func fromRar(r io.Reader) ([]byte, error) {
	rr, err := rardecode.NewReader(r)
	if err != nil {
		return nil, err
	}
	for {
		hdr, err := rr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if hdr.IsDir || !isImage(hdr.Name) {
			continue
		}
		return limitedRead(rr)
	}
	return nil, errNoImage
}

// flash writes the image to the card. The controller's bootloader picks it up
// on the next power cycle.
func (c *Companion) flash(data []byte) error {
	if err := c.fs.MkdirAll(path.Dir(FlashImage), 0o755); err != nil {
		return fmt.Errorf("flash: %w", err)
	}
	if err := afero.WriteFile(c.fs, FlashImage, data, 0o644); err != nil {
		return fmt.Errorf("flash: %w", err)
	}
	c.Flashed++
	return nil
}
