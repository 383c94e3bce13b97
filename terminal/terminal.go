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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit - the most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input has
	// been "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the shell itself
	StyleFeedback

	// help messages
	StyleHelp

	// information about the firmware state (log entries, register values)
	StyleInstrument

	// errors
	StyleError
)

// Prompt is shown before reading a line of input.
type Prompt string

func (p Prompt) String() string {
	return string(p)
}

// UserQuit is returned by TermRead() when the input has been closed.
const UserQuit = "user quit"

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns one line of input without the line ending.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction. Instances that don't expect user intervention should
	// return false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the shell's command line
// interface to the user.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
