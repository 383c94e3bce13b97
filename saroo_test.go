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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/satflash/saroo/test"
)

// isolate the resource directory and prepare an SD card directory
func setup(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	root := filepath.Join(home, "sd")
	for _, d := range []string{"Alpha", "Beta"} {
		dir := filepath.Join(root, "SAROO", "ISO", d)
		test.DemandSuccess(t, os.MkdirAll(dir, 0o755))
		test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, strings.ToLower(d)+".iso"), []byte("SEGA SEGASATURN "), 0o644))
	}
	return root
}

func tempFile(t *testing.T, name string, content string) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), name))
	test.DemandSuccess(t, err)
	_, err = f.WriteString(content)
	test.DemandSuccess(t, err)
	_, err = f.Seek(0, 0)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func output(t *testing.T, f *os.File) string {
	t.Helper()
	b, err := os.ReadFile(f.Name())
	test.DemandSuccess(t, err)
	return string(b)
}

func TestCatalogMode(t *testing.T) {
	root := setup(t)
	stdin := tempFile(t, "stdin", "")
	stdout := tempFile(t, "stdout", "")

	exit := launch(context.Background(), []string{"CATALOG", "-root", root}, stdin, stdout)
	test.ExpectEquality(t, exit, exitOK)
	test.ExpectEquality(t, output(t, stdout), " 0: Alpha\n 1: Beta\n")
}

func TestShellMode(t *testing.T) {
	root := setup(t)
	stdin := tempFile(t, "stdin", "PEEK VER\nCAT\nQUIT\n")
	stdout := tempFile(t, "stdout", "")

	exit := launch(context.Background(), []string{"shell", "-root", root}, stdin, stdout)
	test.ExpectEquality(t, exit, exitOK)
	test.ExpectSuccess(t, strings.Contains(output(t, stdout), "24000000: 0027\n 0: Alpha\n 1: Beta\n"))
}

func TestRunScript(t *testing.T) {
	root := setup(t)
	test.DemandSuccess(t, os.WriteFile(filepath.Join(root, "SAROO", "run.bin"), []byte{0x12, 0x34, 0x56, 0x78}, 0o644))

	script := tempFile(t, "run.lua", `wait(1) press("DOWN") press("DOWN") press("DOWN") press("A")`)
	stdin := tempFile(t, "stdin", "")
	stdout := tempFile(t, "stdout", "")

	exit := launch(context.Background(), []string{"RUN", "-plain", "-root", root, "-script", script.Name()}, stdin, stdout)
	test.ExpectEquality(t, exit, exitOK)
	test.ExpectSuccess(t, strings.HasSuffix(output(t, stdout), "! firmware launched: /SAROO/run.bin\n"))
}

func TestRunScriptFinishes(t *testing.T) {
	root := setup(t)
	script := tempFile(t, "wait.lua", `wait(3)`)
	stdin := tempFile(t, "stdin", "")
	stdout := tempFile(t, "stdout", "")

	exit := launch(context.Background(), []string{"RUN", "-root", root, "-script", script.Name(), "-plain"}, stdin, stdout)
	test.ExpectEquality(t, exit, exitOK)
	test.ExpectSuccess(t, strings.Contains(output(t, stdout), "== SAROO Boot Menu V270000 =="))
	test.ExpectSuccess(t, strings.HasSuffix(output(t, stdout), "! firmware stopped\n"))
}

func TestBadArguments(t *testing.T) {
	setup(t)
	stdin := tempFile(t, "stdin", "")
	stdout := tempFile(t, "stdout", "")

	test.ExpectEquality(t, launch(context.Background(), []string{"-frob"}, stdin, stdout), exitParseError)
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "-script", "missing.lua"}, stdin, stdout), exitModeError)
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "extra"}, stdin, stdout), exitModeError)
}

func TestPreferences(t *testing.T) {
	setup(t)

	p, err := newPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.hold.Get().(int), 4)
	test.ExpectEquality(t, p.latency.Get().(int), 0)

	p.latency.Set(7)
	test.DemandSuccess(t, p.save())

	p, err = newPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.latency.Get().(int), 7)
}
