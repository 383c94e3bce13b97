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
	"github.com/satflash/saroo/logger"
)

// Sentinel errors for storage operations.
const (
	// the companion reported a negative result. the Code is in the values of
	// the error
	Failed = "storage: %v: %s: %v"

	// the companion reported more data than was asked for
	PayloadOverrun = "storage: %s: companion returned %d bytes for a request of %d bytes"
)

// Storage is the set of storage operations.
type Storage struct {
	ch *channel.Storage
}

// NewStorage is the preferred method of initialisation for the Storage type.
func NewStorage(ch *channel.Storage) *Storage {
	return &Storage{ch: ch}
}

// Channel returns the underlying storage channel.
func (st *Storage) Channel() *channel.Storage {
	return st.ch
}

func failed(op addresses.Opcode, what string, arg int16) error {
	return curated.Errorf(Failed, op, what, Code(arg))
}

// ReadFile reads into buf from the file, starting at offset. It returns the
// number of bytes read, which will be less than len(buf) if the end of the
// file was reached. Reads larger than the payload capacity are made with
// several commands.
func (st *Storage) ReadFile(path string, offset int, buf []byte) (int, error) {
	capacity := st.ch.PayloadCapacity()

	var total int
	for total < len(buf) {
		want := min(capacity, len(buf)-total)

		res, err := st.ch.Invoke(channel.Command{
			Op:        addresses.OpFileRead,
			HasParams: true,
			Offset:    uint32(offset + total),
			Size:      uint32(want),
			Path:      path,
		})
		if err != nil {
			return total, err
		}
		if res.Arg < 0 {
			return total, failed(addresses.OpFileRead, path, res.Arg)
		}

		// the size is only used as a length once it is known to fit
		if int(res.Size) > want {
			return total, curated.Errorf(PayloadOverrun, path, res.Size, want)
		}

		st.ch.ReadPayload(buf[total : total+int(res.Size)])
		total += int(res.Size)

		if int(res.Size) < want {
			break
		}
	}

	return total, nil
}

// ReadAll reads the entire file.
func (st *Storage) ReadAll(path string) ([]byte, error) {
	var data []byte
	chunk := make([]byte, st.ch.PayloadCapacity())
	for {
		n, err := st.ReadFile(path, len(data), chunk)
		if err != nil {
			return nil, err
		}
		data = append(data, chunk[:n]...)
		if n < len(chunk) {
			return data, nil
		}
	}
}

// WriteFile writes data to the file, starting at offset. The file is created
// if it doesn't exist. It returns the number of bytes written.
func (st *Storage) WriteFile(path string, offset int, data []byte) (int, error) {
	capacity := st.ch.PayloadCapacity()

	var total int
	for total < len(data) {
		n := min(capacity, len(data)-total)

		res, err := st.ch.Invoke(channel.Command{
			Op:        addresses.OpFileWrite,
			HasParams: true,
			Offset:    uint32(offset + total),
			Size:      uint32(n),
			Path:      path,
			Payload:   data[total : total+n],
		})
		if err != nil {
			return total, err
		}
		if res.Arg < 0 {
			return total, failed(addresses.OpFileWrite, path, res.Arg)
		}
		if int(res.Size) > n {
			return total, curated.Errorf(PayloadOverrun, path, res.Size, n)
		}

		total += int(res.Size)
		if int(res.Size) < n {
			break
		}
	}

	return total, nil
}

// LoadDisc mounts the disc with the catalog index.
func (st *Storage) LoadDisc(index int) error {
	res, err := st.ch.Invoke(channel.Command{
		Op:  addresses.OpLoadDisc,
		Arg: uint16(index),
	})
	if err != nil {
		return err
	}
	if res.Arg < 0 {
		return failed(addresses.OpLoadDisc, "disc", res.Arg)
	}
	return nil
}

// CheckUpdate returns true if the companion has found a firmware update
// package. Any non-zero result counts, including a negative one.
func (st *Storage) CheckUpdate() (bool, error) {
	res, err := st.ch.Invoke(channel.Command{Op: addresses.OpCheck})
	if err != nil {
		return false, err
	}
	if res.Arg < 0 {
		logger.Logf(logger.Allow, "storage", "CHECK: unexpected result %v", Code(res.Arg))
	}
	return res.Arg != 0, nil
}

// Update flashes the firmware update package and returns true if the update
// was successful. Whatever the result, the firmware in the adapter can no
// longer be trusted and the caller must halt.
func (st *Storage) Update() (bool, error) {
	res, err := st.ch.Invoke(channel.Command{Op: addresses.OpUpdate})
	if err != nil {
		return false, err
	}
	return res.Arg == 0, nil
}

// Puts prints the string on the companion's console. Long strings are sent
// with several commands.
func (st *Storage) Puts(s string) error {
	capacity := st.ch.PayloadCapacity()
	p := []byte(s)
	for len(p) > 0 {
		n := min(capacity, len(p))
		res, err := st.ch.Invoke(channel.Command{
			Op:        addresses.OpPuts,
			HasParams: true,
			Size:      uint32(n),
			Payload:   p[:n],
		})
		if err != nil {
			return err
		}
		if res.Arg < 0 {
			return failed(addresses.OpPuts, "console", res.Arg)
		}
		p = p[n:]
	}
	return nil
}
