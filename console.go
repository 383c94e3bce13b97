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
	"bytes"
	"context"
	"io"
	"os"
	"sync/atomic"

	"github.com/satflash/saroo/firmware/menu"
	"github.com/satflash/saroo/hardware/input"
	"github.com/satflash/saroo/logger"
	"github.com/satflash/saroo/terminal/easyterm"
)

// shellQueue is the number of reads held for the serial console before input
// is dropped.
const shellQueue = 16

// router shares the host's input between the keyboard pad and the serial
// console. Key presses go to the keyboard while the menus are running and
// whole lines go to the serial console while it is running.
type router struct {
	pad   *io.PipeWriter
	shell *shellInput

	toShell atomic.Bool
}

// newRouter starts a goroutine that reads from the input until it fails. The
// returned readers are for the keyboard and the serial console.
func newRouter(in io.Reader) (*router, io.Reader, io.Reader) {
	padR, padW := io.Pipe()

	rt := &router{
		pad: padW,
		shell: &shellInput{
			queue: make(chan []byte, shellQueue),
		},
	}

	go func() {
		buf := make([]byte, 64)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				rt.route(buf[:n])
			}
			if err != nil {
				padW.CloseWithError(err)
				rt.shell.err = err
				close(rt.shell.queue)
				return
			}
		}
	}()

	return rt, padR, rt.shell
}

// route sends input to the keyboard or queues it for the serial console.
// queueing never blocks and input is dropped when the queue is full.
func (rt *router) route(b []byte) {
	if !rt.toShell.Load() {
		if _, err := rt.pad.Write(b); err != nil {
			logger.Log(logger.Allow, "router", err)
		}
		return
	}

	select {
	case rt.shell.queue <- bytes.Clone(b):
	default:
		logger.Logf(logger.Allow, "router", "serial console input dropped: %q", b)
	}
}

// shellInput is the serial console's side of the router.
type shellInput struct {
	queue   chan []byte
	pending []byte

	// set before queue is closed
	err error
}

// Read implements the io.Reader interface.
func (si *shellInput) Read(p []byte) (int, error) {
	if len(si.pending) == 0 {
		b, ok := <-si.queue
		if !ok {
			return 0, si.err
		}
		si.pending = b
	}
	n := copy(p, si.pending)
	si.pending = si.pending[n:]
	return n, nil
}

// discard drops input that was sent to the serial console but not read.
func (si *shellInput) discard() {
	si.pending = nil
	for {
		select {
		case _, ok := <-si.queue:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// keyboardShell switches the terminal into line mode for the duration of the
// serial console.
type keyboardShell struct {
	shell interface {
		Run(ctx context.Context, m *menu.Menu) bool
	}
	rt   *router
	term *easyterm.Terminal
}

func (ks keyboardShell) Run(ctx context.Context, m *menu.Menu) bool {
	ks.rt.toShell.Store(true)
	if ks.term != nil {
		ks.term.CanonicalMode()
	}

	defer func() {
		if ks.term != nil {
			ks.term.CBreakMode()
		}
		ks.rt.toShell.Store(false)
		ks.rt.shell.discard()
	}()

	return ks.shell.Run(ctx, m)
}

// startKeyboard begins servicing the keyboard from the reader.
func startKeyboard(r io.Reader, hold int) *input.Keyboard {
	kb := input.NewKeyboard()
	kb.Hold = hold
	go func() {
		err := kb.Service(r)
		logger.Logf(logger.Allow, "keyboard", "stopped: %v", err)
	}()
	return kb
}

// cbreak puts the terminal into cbreak mode if the input is a real terminal.
// returns nil if the terminal can't be used.
func cbreak(in *os.File, out *os.File) *easyterm.Terminal {
	term := &easyterm.Terminal{}
	if err := term.Initialise(in, out); err != nil {
		logger.Log(logger.Allow, "terminal", err)
		return nil
	}
	term.CBreakMode()
	return term
}
