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

// Package ansi defines the ANSI escape sequences used by the text renderer
// for the firmware menus.
package ansi

import (
	"fmt"
	"strings"
)

const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
	attrStrike    = 8
)

var colors = map[string]int{
	"BLACK":   colBlack,
	"RED":     colRed,
	"GREEN":   colGreen,
	"YELLOW":  colYellow,
	"BLUE":    colBlue,
	"MAGENTA": colMagenta,
	"CYAN":    colCyan,
	"WHITE":   colWhite,
	"NORMAL":  colDefault,
}

// Pens is the list of bright foreground colours. Keyed by lower-case colour
// name.
var Pens map[string]string

// DimPens is the list of normal foreground colours.
var DimPens map[string]string

// PenStyles is the list of text attributes.
var PenStyles map[string]string

// NormalPen resets colour and attributes.
var NormalPen string

// InversePen swaps foreground and background colours.
var InversePen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", "", false, false)
	InversePen, _ = ColorBuild("", "", "inverse", false, false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "normal", "", true, false)
		DimPens[c], _ = ColorBuild(c, "normal", "", false, false)
	}

	PenStyles["bold"], _ = ColorBuild("", "", "bold", false, false)
	PenStyles["underline"], _ = ColorBuild("", "", "underline", false, false)
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		s.WriteString(fmt.Sprintf("%d%d", target, c))
	}

	if paper != "" {
		c, ok := colors[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown paper (%s)", paper)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		s.WriteString(fmt.Sprintf("%d%d", target, c))
	}

	if attribute != "" {
		var a int
		switch strings.ToUpper(attribute) {
		case "BOLD":
			a = attrBold
		case "UNDERLINE":
			a = attrUnderline
		case "INVERSE":
			a = attrInverse
		case "STRIKE":
			a = attrStrike
		case "NORMAL":
			a = -1
		default:
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		if a >= 0 {
			if s.Len() > 2 {
				s.WriteString(";")
			}
			s.WriteString(fmt.Sprintf("%d", a))
		}
	}

	s.WriteString("m")
	return s.String(), nil
}

// ClearScreen is the CSI sequence to clear the entire screen.
const ClearScreen = "\033[2J"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorHome moves the cursor to the top left of the screen.
const CursorHome = "\033[H"

// CursorHide and CursorShow change the visibility of the cursor.
const (
	CursorHide = "\033[?25l"
	CursorShow = "\033[?25h"
)

// CursorMove returns the CSI sequence to move the cursor to the row and
// column. Rows and columns count from zero.
func CursorMove(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row+1, col+1)
}
