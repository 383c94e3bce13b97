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

package companion_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"testing"
	"unicode/utf16"

	"github.com/spf13/afero"

	"github.com/satflash/saroo/hardware/companion"
	"github.com/satflash/saroo/test"
)

// number7z encodes a 7z variable length integer. the test archives are small
// so only the one and two byte forms are needed
func number7z(t *testing.T, v int) []byte {
	t.Helper()
	switch {
	case v < 0x80:
		return []byte{byte(v)}
	case v < 0x4000:
		return []byte{0x80 | byte(v>>8), byte(v)}
	}
	t.Fatalf("7z number too large: %d", v)
	return nil
}

// stored7z returns a 7z archive holding one file stored with the copy method
func stored7z(t *testing.T, name string, data []byte) []byte {
	t.Helper()

	var hdr bytes.Buffer

	// header, main streams info, pack info with one stream at position zero
	hdr.Write([]byte{0x01, 0x04, 0x06, 0x00, 0x01, 0x09})
	hdr.Write(number7z(t, len(data)))
	hdr.WriteByte(0x00)

	// unpack info with one folder using the copy coder
	hdr.Write([]byte{0x07, 0x0b, 0x01, 0x00, 0x01, 0x01, 0x00, 0x0c})
	hdr.Write(number7z(t, len(data)))
	hdr.WriteByte(0x00)

	// empty substreams info and end of streams info
	hdr.Write([]byte{0x08, 0x00, 0x00})

	// files info with the name property
	utf := utf16.Encode([]rune(name + "\x00"))
	hdr.Write([]byte{0x05, 0x01, 0x11})
	hdr.Write(number7z(t, 1+len(utf)*2))
	hdr.WriteByte(0x00)
	for _, c := range utf {
		hdr.Write([]byte{byte(c), byte(c >> 8)})
	}
	hdr.Write([]byte{0x00, 0x00})

	var start [20]byte
	binary.LittleEndian.PutUint64(start[0:], uint64(len(data)))
	binary.LittleEndian.PutUint64(start[8:], uint64(hdr.Len()))
	binary.LittleEndian.PutUint32(start[16:], crc32.ChecksumIEEE(hdr.Bytes()))

	var b bytes.Buffer
	b.Write([]byte{'7', 'z', 0xbc, 0xaf, 0x27, 0x1c, 0x00, 0x04})
	test.DemandSuccess(t, binary.Write(&b, binary.LittleEndian, crc32.ChecksumIEEE(start[:])))
	b.Write(start[:])
	b.Write(data)
	b.Write(hdr.Bytes())
	return b.Bytes()
}

// rarBlock returns a RAR 4 block with the header checksum filled in
func rarBlock(htype byte, flags uint16, body []byte) []byte {
	b := make([]byte, 7, 7+len(body))
	b[2] = htype
	binary.LittleEndian.PutUint16(b[3:], flags)
	binary.LittleEndian.PutUint16(b[5:], uint16(7+len(body)))
	b = append(b, body...)
	binary.LittleEndian.PutUint16(b[0:], uint16(crc32.ChecksumIEEE(b[2:])))
	return b
}

// storedRar returns a RAR 4 archive holding one file with no compression
func storedRar(name string, data []byte) []byte {
	var b bytes.Buffer
	b.WriteString("Rar!\x1a\x07\x00")
	b.Write(rarBlock(0x73, 0, make([]byte, 6)))

	file := make([]byte, 25, 25+len(name))
	binary.LittleEndian.PutUint32(file[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(file[4:], uint32(len(data)))
	binary.LittleEndian.PutUint32(file[9:], crc32.ChecksumIEEE(data))
	file[17] = 20
	file[18] = 0x30
	binary.LittleEndian.PutUint16(file[19:], uint16(len(name)))
	file = append(file, name...)

	b.Write(rarBlock(0x74, 0x8000, file))
	b.Write(data)
	b.Write(rarBlock(0x7b, 0, nil))
	return b.Bytes()
}

func TestLoadUpdate(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
		err  error
	}{
		{name: "SSMaster.7z", data: stored7z(t, "SSMaster.bin", image)},
		{name: "SSMaster.rar", data: storedRar("SSMaster.bin", image)},
		{name: "SSMaster.7z", data: stored7z(t, "readme.txt", image), err: companion.ErrNoImage},
		{name: "SSMaster.rar", data: storedRar("readme.txt", image), err: companion.ErrNoImage},
	} {
		fsys := afero.NewMemMapFs()
		pkg := companion.UpdateDir + "/" + tc.name
		test.DemandSuccess(t, afero.WriteFile(fsys, pkg, tc.data, 0o644))

		data, err := companion.LoadUpdate(fsys, pkg)
		if tc.err != nil {
			test.ExpectSuccess(t, errors.Is(err, tc.err), tc.name)
			continue
		}
		test.ExpectSuccess(t, err, tc.name)
		test.ExpectSuccess(t, bytes.Equal(data, image), tc.name)
	}
}

func TestLoadUpdateCorrupt(t *testing.T) {
	for _, name := range []string{"SSMaster.7z", "SSMaster.rar"} {
		fsys := afero.NewMemMapFs()
		pkg := companion.UpdateDir + "/" + name
		test.DemandSuccess(t, afero.WriteFile(fsys, pkg, []byte("not an archive"), 0o644))
		_, err := companion.LoadUpdate(fsys, pkg)
		test.ExpectFailure(t, err, name)
	}
}
