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

package bios_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/afero"

	"github.com/satflash/saroo/hardware/bios"
	"github.com/satflash/saroo/hardware/memory"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/test"
)

type disc struct {
	fs      afero.Fs
	mounted string
}

func (d *disc) Mounted() (string, bool) {
	return d.mounted, d.mounted != ""
}

func (d *disc) FS() afero.Fs {
	return d.fs
}

func header(title string) []byte {
	h := make([]byte, 0x100)
	copy(h, "SEGA SEGASATURN ")
	copy(h[0x60:], title)
	return h
}

func TestBootDisc(t *testing.T) {
	d := &disc{fs: afero.NewMemMapFs()}
	b := bios.NewBIOS(d, nil)

	test.ExpectEquality(t, b.BootDisc(), bios.BootNoDisc)

	test.DemandSuccess(t, afero.WriteFile(d.fs, "/SAROO/ISO/Nights/nights.iso", header("NIGHTS"), 0o644))
	d.mounted = "/SAROO/ISO/Nights/nights.iso"
	test.ExpectEquality(t, b.BootDisc(), bios.BootOK)
	test.ExpectEquality(t, b.Booted, d.mounted)

	test.DemandSuccess(t, afero.WriteFile(d.fs, "/SAROO/ISO/Other/other.iso", make([]byte, 0x100), 0o644))
	d.mounted = "/SAROO/ISO/Other/other.iso"
	test.ExpectEquality(t, b.BootDisc(), bios.BootNotSaturn)

	d.mounted = "/SAROO/ISO/Missing/missing.iso"
	test.ExpectEquality(t, b.BootDisc(), bios.BootReadError)
}

func TestBootCue(t *testing.T) {
	d := &disc{fs: afero.NewMemMapFs()}
	b := bios.NewBIOS(d, nil)

	cue := "FILE \"Panzer Dragoon (Track 1).bin\" BINARY\n  TRACK 01 MODE1/2352\n    INDEX 01 00:00:00\n"
	test.DemandSuccess(t, afero.WriteFile(d.fs, "/SAROO/ISO/PD/pd.cue", []byte(cue), 0o644))

	raw := append(bytes.Repeat([]byte{0xff}, 16), header("PANZER DRAGOON")...)
	test.DemandSuccess(t, afero.WriteFile(d.fs, "/SAROO/ISO/PD/Panzer Dragoon (Track 1).bin", raw, 0o644))

	d.mounted = "/SAROO/ISO/PD/pd.cue"
	test.ExpectEquality(t, b.BootDisc(), bios.BootOK)

	// cue sheet with no tracks
	test.DemandSuccess(t, afero.WriteFile(d.fs, "/SAROO/ISO/PD/pd.cue", []byte("REM nothing\n"), 0o644))
	test.ExpectEquality(t, b.BootDisc(), bios.BootReadError)
}

func TestExec(t *testing.T) {
	mem := memory.NewMemory()
	ram := memory.NewRAM("cart", addresses.Saturn.CartRAM)
	test.DemandSuccess(t, mem.Map(ram.Window(), ram))

	b := bios.NewBIOS(&disc{fs: afero.NewMemMapFs()}, mem)
	addr := addresses.Saturn.CartRAM.Origin
	test.ExpectEquality(t, b.Exec(addr), bios.ExecNoCode)

	bus.WriteBytes(mem, addr, []byte{0xd0, 0x01, 0x40, 0x2b})
	test.ExpectEquality(t, b.Exec(addr), bios.BootOK)
	test.ExpectEquality(t, b.Executed, addr)
}

func writeWav(t *testing.T, fsys afero.Fs, name string, seconds int) {
	t.Helper()
	const rate = 8000

	f, err := fsys.Create(name)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           make([]int, rate*seconds),
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestTracks(t *testing.T) {
	d := &disc{fs: afero.NewMemMapFs()}
	b := bios.NewBIOS(d, nil)

	_, err := b.Tracks()
	test.ExpectFailure(t, err)

	cue := `FILE "game.bin" BINARY
  TRACK 01 MODE1/2352
    INDEX 01 00:00:00
FILE "track02.wav" WAVE
  TRACK 02 AUDIO
    INDEX 01 00:00:00
FILE "track03.wav" WAVE
  TRACK 03 AUDIO
    INDEX 01 00:00:00
`
	test.DemandSuccess(t, afero.WriteFile(d.fs, "/SAROO/ISO/G/game.cue", []byte(cue), 0o644))
	writeWav(t, d.fs, "/SAROO/ISO/G/track02.wav", 1)
	writeWav(t, d.fs, "/SAROO/ISO/G/track03.wav", 3)
	d.mounted = "/SAROO/ISO/G/game.cue"

	tracks, err := b.Tracks()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(tracks), 2)

	test.ExpectEquality(t, tracks[0].Number, 2)
	test.ExpectEquality(t, tracks[0].Name, "track02.wav")
	test.ExpectApproximate(t, tracks[0].Duration, time.Second, 0.05)
	test.ExpectEquality(t, tracks[1].Number, 3)
	test.ExpectApproximate(t, tracks[1].Duration, 3*time.Second, 0.05)
	test.ExpectEquality(t, tracks[1].String(), "03 track03.wav 0:03")
}

// writeMp3 writes a stream of silent MPEG-1 layer III frames. each frame is
// 128kbps at 44.1kHz and holds 1152 samples.
func writeMp3(t *testing.T, fsys afero.Fs, name string, frames int) {
	t.Helper()
	const frameSize = 417

	frame := make([]byte, frameSize)
	copy(frame, []byte{0xff, 0xfb, 0x90, 0x00})
	test.DemandSuccess(t, afero.WriteFile(fsys, name, bytes.Repeat(frame, frames), 0o644))
}

func TestTracksFromDirectory(t *testing.T) {
	d := &disc{fs: afero.NewMemMapFs()}
	b := bios.NewBIOS(d, nil)

	test.DemandSuccess(t, afero.WriteFile(d.fs, "/SAROO/ISO/G/game.iso", header("G"), 0o644))
	writeMp3(t, d.fs, "/SAROO/ISO/G/track02.mp3", 441)
	writeWav(t, d.fs, "/SAROO/ISO/G/track03.wav", 2)
	test.DemandSuccess(t, afero.WriteFile(d.fs, "/SAROO/ISO/G/track04.mp3", []byte("not audio"), 0o644))
	d.mounted = "/SAROO/ISO/G/game.iso"

	tracks, err := b.Tracks()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(tracks), 2)

	test.ExpectEquality(t, tracks[0].Name, "track02.mp3")
	test.ExpectEquality(t, tracks[0].Duration, 11520*time.Millisecond)
	test.ExpectEquality(t, tracks[0].String(), "02 track02.mp3 0:12")
	test.ExpectEquality(t, tracks[1].Name, "track03.wav")
	test.ExpectApproximate(t, tracks[1].Duration, 2*time.Second, 0.05)
}
