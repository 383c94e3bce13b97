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
	"errors"
	"io"
	"testing"

	"github.com/satflash/saroo/firmware/menu"
	"github.com/satflash/saroo/test"
)

func readString(t *testing.T, r io.Reader, size int) string {
	t.Helper()
	b := make([]byte, size)
	n, err := r.Read(b)
	test.DemandSuccess(t, err)
	return string(b[:n])
}

func TestRouter(t *testing.T) {
	in, feed := io.Pipe()
	rt, pad, sh := newRouter(in)

	// keys go to the pad while the menus are running
	go rt.route([]byte("a"))
	test.ExpectEquality(t, readString(t, pad, 8), "a")

	rt.toShell.Store(true)
	rt.route([]byte("PEEK SF\n"))
	test.ExpectEquality(t, readString(t, sh, 64), "PEEK SF\n")

	// input not read by the serial console is dropped when it stops
	rt.route([]byte("MENU\n"))
	rt.route([]byte("CAT\n"))
	test.ExpectEquality(t, readString(t, sh, 2), "ME")
	rt.toShell.Store(false)
	rt.shell.discard()
	test.ExpectEquality(t, len(rt.shell.queue), 0)

	go rt.route([]byte("b"))
	test.ExpectEquality(t, readString(t, pad, 8), "b")

	// a full queue doesn't hold up the router
	rt.toShell.Store(true)
	for i := 0; i < shellQueue*2; i++ {
		rt.route([]byte("x"))
	}
	test.ExpectEquality(t, len(rt.shell.queue), shellQueue)
	rt.shell.discard()

	// the end of the input reaches both sides
	test.DemandSuccess(t, feed.Close())
	_, err := sh.Read(make([]byte, 8))
	test.ExpectSuccess(t, errors.Is(err, io.EOF))
	_, err = pad.Read(make([]byte, 8))
	test.ExpectSuccess(t, errors.Is(err, io.EOF))
}

type shellFunc func(ctx context.Context, m *menu.Menu) bool

func (fn shellFunc) Run(ctx context.Context, m *menu.Menu) bool {
	return fn(ctx, m)
}

func TestKeyboardShell(t *testing.T) {
	in, feed := io.Pipe()
	defer feed.Close()
	rt, _, _ := newRouter(in)

	ks := keyboardShell{
		rt: rt,
		shell: shellFunc(func(_ context.Context, _ *menu.Menu) bool {
			test.ExpectSuccess(t, rt.toShell.Load())

			// pasted after the command that leaves the console
			rt.route([]byte("PEEK SF\n"))
			return false
		}),
	}

	test.ExpectFailure(t, ks.Run(context.Background(), nil))
	test.ExpectFailure(t, rt.toShell.Load())
	test.ExpectEquality(t, len(rt.shell.queue), 0)
}
