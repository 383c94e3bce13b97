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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/satflash/saroo/firmware"
	"github.com/satflash/saroo/firmware/catalog"
	"github.com/satflash/saroo/firmware/channel"
	"github.com/satflash/saroo/firmware/conio"
	"github.com/satflash/saroo/firmware/shell"
	"github.com/satflash/saroo/firmware/storage"
	"github.com/satflash/saroo/hardware"
	"github.com/satflash/saroo/hardware/input"
	"github.com/satflash/saroo/hardware/memory/addresses"
	"github.com/satflash/saroo/hardware/memory/bus"
	"github.com/satflash/saroo/logger"
	"github.com/satflash/saroo/macro"
	"github.com/satflash/saroo/modalflag"
	"github.com/satflash/saroo/prefs"
	"github.com/satflash/saroo/statsview"
	"github.com/satflash/saroo/terminal/easyterm"
	"github.com/satflash/saroo/terminal/plainterm"
	"github.com/satflash/saroo/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode.
func launch(ctx context.Context, args []string, stdin *os.File, stdout *os.File) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "CATALOG", "SHELL")
	md.AdditionalHelp(version.Banner())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stdout, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, stdin, stdout)

	case "CATALOG":
		err = listCatalog(md, stdout)

	case "SHELL":
		err = serialConsole(ctx, md, stdin, stdout)
	}

	if err != nil {
		fmt.Fprintf(stdout, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// options common to all modes.
type options struct {
	prefs   *string
	root    *string
	latency *int
	echo    *bool
}

func addOptions(md *modalflag.Modes) options {
	return options{
		prefs:   md.AddString("prefs", "", "preferences to override for this session (eg. \"pad.hold::8; firmware.echo::true\")"),
		root:    md.AddString("root", "", "host directory to use as the SD card"),
		latency: md.AddInt("latency", -1, "busy polls for each peripheral command"),
		echo:    md.AddBool("echo", false, "echo log to stdout"),
	}
}

// console is the simulated console with the firmware's storage operations.
type console struct {
	prefs *preferences
	sat   *hardware.Saturn
	wait  bus.Waiter
}

// newConsole prepares the simulated console according to the preferences and
// the command line options. The pad can be nil.
func newConsole(opts options, pad input.Source) (*console, error) {
	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		defer prefs.PopCommandLineStack()
	}

	p, err := newPreferences()
	if err != nil {
		return nil, err
	}
	if *opts.root != "" {
		p.root.Set(*opts.root)
	}
	if *opts.latency >= 0 {
		p.latency.Set(*opts.latency)
	}
	if *opts.echo {
		p.echo.Set(true)
	}

	if p.echo.Get().(bool) {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	root := p.root.Get().(string)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	card := afero.NewBasePathFs(afero.NewOsFs(), root)
	logger.Logf(logger.Allow, "saroo", "SD card is %s", root)

	sat, err := hardware.NewSaturn(addresses.Saturn, card, pad)
	if err != nil {
		return nil, err
	}
	sat.SetLatency(p.latency.Get().(int))

	return &console{
		prefs: p,
		sat:   sat,
		wait:  &bus.Spin{},
	}, nil
}

func (con *console) storage() *storage.Storage {
	ch := channel.NewStorage(con.sat.Mem, con.sat.Map, con.wait)
	ch.Enable(addresses.CtrlEnable | addresses.CtrlCS0RAM4M)
	return storage.NewStorage(ch)
}

func run(ctx context.Context, md *modalflag.Modes, stdin *os.File, stdout *os.File) error {
	md.NewMode()

	opts := addOptions(md)
	script := md.AddString("script", "", "lua macro to use as the pad input")
	plain := md.AddBool("plain", false, "draw menus as plain lines")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	save := md.AddBool("saveprefs", false, "save preferences when the firmware stops")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(stdout)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var pad input.Source
	var shellInput io.Reader = stdin
	var rt *router
	var cbterm *easyterm.Terminal

	if *script != "" {
		mcr, err := macro.NewMacro(*script)
		if err != nil {
			return err
		}
		mcr.Finished = cancel
		pad = mcr
	}

	con, err := newConsole(opts, pad)
	if err != nil {
		return err
	}

	if pad == nil {
		var padInput io.Reader
		rt, padInput, shellInput = newRouter(stdin)
		cbterm = cbreak(stdin, stdout)
		if cbterm != nil {
			defer cbterm.CleanUp()
		}
		kb := startKeyboard(padInput, con.prefs.hold.Get().(int))
		con.sat.SMPC.AttachPad(kb)
	}

	renderer := conio.NewConsole(stdout)
	renderer.Plain = *plain || !term.IsTerminal(int(stdout.Fd()))
	defer renderer.CleanUp()

	fw := firmware.NewFirmware(con.sat.Mem, con.sat.Map, con.wait, con.sat.BIOS, renderer)
	con.sat.Companion.Console = stdout

	sh := shell.NewShell(plainterm.NewPlainTerminal(shellInput, stdout), con.sat.Mem, con.sat.Map, fw.Storage())
	if rt != nil {
		fw.AttachShell(keyboardShell{shell: sh, rt: rt, term: cbterm})
	} else {
		fw.AttachShell(sh)
	}

	if err := fw.Boot(); err != nil {
		return err
	}

	res, err := fw.Run(ctx)
	if err != nil {
		return err
	}
	renderer.CleanUp()
	fmt.Fprintf(stdout, "! firmware %s\n", res)

	if *save {
		return con.prefs.save()
	}
	return nil
}

func listCatalog(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	con, err := newConsole(opts, nil)
	if err != nil {
		return err
	}

	cat, err := con.storage().FetchCatalog()
	if err != nil {
		return err
	}

	if cat.Len() == 0 {
		fmt.Fprintln(stdout, "no discs")
		return nil
	}
	for i := 0; i < cat.Len(); i++ {
		fmt.Fprintln(stdout, catalog.Label(i, cat.Path(i)))
	}

	return nil
}

func serialConsole(ctx context.Context, md *modalflag.Modes, stdin *os.File, stdout *os.File) error {
	md.NewMode()

	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	con, err := newConsole(opts, nil)
	if err != nil {
		return err
	}
	con.sat.Companion.Console = stdout

	sh := shell.NewShell(plainterm.NewPlainTerminal(stdin, stdout), con.sat.Mem, con.sat.Map, con.storage())
	sh.Run(ctx, nil)

	return nil
}
