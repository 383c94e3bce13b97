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

package shell_test

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/satflash/saroo/firmware/channel"
	"github.com/satflash/saroo/firmware/menu"
	"github.com/satflash/saroo/firmware/shell"
	"github.com/satflash/saroo/firmware/storage"
	"github.com/satflash/saroo/hardware"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/logger"
	"github.com/satflash/saroo/terminal/plainterm"
	"github.com/satflash/saroo/test"
)

const banner = "serial console. HELP for commands\n"

type rig struct {
	card    afero.Fs
	sat     *hardware.Saturn
	out     *test.Writer
	console *test.Writer
	st      *storage.Storage
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		card:    afero.NewMemMapFs(),
		out:     &test.Writer{},
		console: &test.Writer{},
	}

	var err error
	r.sat, err = hardware.NewSaturn(addresses.Saturn, r.card, nil)
	test.DemandSuccess(t, err)
	r.sat.Companion.Console = r.console

	r.st = storage.NewStorage(channel.NewStorage(r.sat.Mem, addresses.Saturn, &bus.Spin{Limit: 100}))
	return r
}

func (r *rig) run(input string, m *menu.Menu) bool {
	term := plainterm.NewPlainTerminal(strings.NewReader(input), r.out)
	sh := shell.NewShell(term, r.sat.Mem, addresses.Saturn, r.st)
	return sh.Run(context.Background(), m)
}

func TestQuitAndMenu(t *testing.T) {
	r := newRig(t)
	test.ExpectSuccess(t, r.run("QUIT\n", nil))
	test.ExpectSuccess(t, r.out.Compare(banner))

	r.out.Clear()
	test.ExpectFailure(t, r.run("menu\nQUIT\n", nil))
	r.out.Clear()
	test.ExpectFailure(t, r.run("\n  \nexit\n", nil))
	test.ExpectSuccess(t, r.out.Compare(banner))

	// end of input
	r.out.Clear()
	test.ExpectSuccess(t, r.run("", nil))
	test.ExpectSuccess(t, r.out.Compare(banner))
}

func TestCancelled(t *testing.T) {
	r := newRig(t)
	term := plainterm.NewPlainTerminal(strings.NewReader("MENU\n"), r.out)
	sh := shell.NewShell(term, r.sat.Mem, addresses.Saturn, r.st)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectSuccess(t, sh.Run(ctx, nil))
}

func TestHelp(t *testing.T) {
	r := newRig(t)
	r.run("HELP\nhelp peek\nHELP FOO\n", nil)
	test.ExpectEquality(t, r.out.String(), banner+
		"CAT EXIT HELP LOG MENU PEEK POKE PUTS QUIT READ VIZ\n"+
		"Read a register or memory address. Optional width argument is 8 or 16\n"+
		"usage: PEEK address [8|16]\n"+
		"* no help for FOO\n")
}

func TestUnknownCommand(t *testing.T) {
	r := newRig(t)
	r.run("FROB 1 2\n", nil)
	test.ExpectEquality(t, r.out.String(), banner+"* FROB is not a command\n")
}

func TestPeekPoke(t *testing.T) {
	r := newRig(t)
	input := `POKE IREG1 0x0a
PEEK ireg1
PEEK VER
PEEK 0x24000000 16
POKE $20100005 $f0
PEEK 0x20100005
POKE CMD 0x1ffff
PEEK nothing
PEEK VER 32
POKE
`
	r.run(input, nil)
	test.ExpectEquality(t, r.out.String(), banner+
		"20100003: 0a\n"+
		"24000000: 0027\n"+
		"24000000: 0027\n"+
		"20100005: f0\n"+
		"* value is not a 16 bit number: 0x1ffff\n"+
		"* unrecognised address or register: nothing\n"+
		"* width must be 8 or 16: 32\n"+
		"* usage: POKE address value [8|16]\n")
}

func TestCat(t *testing.T) {
	r := newRig(t)
	r.run("CAT\n", nil)
	test.ExpectEquality(t, r.out.String(), banner+"no discs\n")

	for i := 0; i < 3; i++ {
		p := fmt.Sprintf("/SAROO/ISO/Disc %d/disc.iso", i)
		test.DemandSuccess(t, afero.WriteFile(r.card, p, []byte{0}, 0o644))
	}
	r.out.Clear()
	r.run("CAT\n", nil)
	test.ExpectEquality(t, r.out.String(), banner+" 0: Disc 0\n 1: Disc 1\n 2: Disc 2\n")
}

func TestRead(t *testing.T) {
	r := newRig(t)
	test.DemandSuccess(t, afero.WriteFile(r.card, "/SAROO/hello.txt", []byte("hello world"), 0o644))

	r.run("READ /SAROO/hello.txt\n", nil)
	test.ExpectEquality(t, r.out.String(), banner+hex.Dump([]byte("hello world")))

	r.out.Clear()
	r.run("READ /SAROO/hello.txt 6 3\n", nil)
	test.ExpectEquality(t, r.out.String(), banner+hex.Dump([]byte("wor")))

	r.out.Clear()
	r.run("READ /SAROO/hello.txt 100\n", nil)
	test.ExpectEquality(t, r.out.String(), banner+"no data\n")

	r.out.Clear()
	r.run("READ /SAROO/missing.txt\nREAD /SAROO/hello.txt -1\n", nil)
	lines := strings.Split(strings.TrimSpace(r.out.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "* storage: "))
	test.ExpectEquality(t, lines[2], "* usage: READ path [offset [size]]")
}

func TestPuts(t *testing.T) {
	r := newRig(t)
	r.run("PUTS hello   there\nPUTS\n", nil)
	test.ExpectEquality(t, r.console.String(), "hello there\n")
	test.ExpectEquality(t, r.out.String(), banner+"* usage: PUTS text\n")
}

func TestLog(t *testing.T) {
	r := newRig(t)
	logger.Clear()
	logger.Log(logger.Allow, "test", "one")
	logger.Log(logger.Allow, "test", "two")

	r.run("LOG 1\nLOG\nLOG x\n", nil)
	test.ExpectEquality(t, r.out.String(), banner+
		"test: two\n"+
		"test: one\n"+
		"test: two\n"+
		"* usage: LOG [n]\n")
}

func TestViz(t *testing.T) {
	r := newRig(t)
	r.run("VIZ /SAROO/menu.dot\n", nil)
	test.ExpectEquality(t, r.out.String(), banner+"* no menu to graph\n")

	m := menu.New("SAROO Boot Menu V270000")
	m.Add("Select Game")
	m.Add("Serial Console")

	r.out.Clear()
	r.run("VIZ /SAROO/menu.dot\n", m)
	test.ExpectSuccess(t, strings.HasSuffix(r.out.String(), " bytes written to /SAROO/menu.dot\n"))

	dot, err := afero.ReadFile(r.card, "/SAROO/menu.dot")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(dot), "digraph"))
}
