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

// Package menu is the menu state machine shared by every menu in the
// firmware. A menu alternates between rendering (the frame has been drawn and
// the pad is being polled) and handling (one pad sample is being processed by
// a Handler). The Handler's Transition decides whether the menu carries on or
// whether Run() returns to the caller.
//
// Buttons are edge detected. A button is pressed in a sample if it is set in
// that sample and was not set in the previous one. Buttons held when the menu
// is entered do not count as pressed until they have been released.
package menu
