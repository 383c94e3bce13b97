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

// Package paths resolves the location of the host runner's resources, such as
// the preferences file and the default simulated SD card directory.
package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".saroo"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// EnsureResourcePath creates the base resource directory if it doesn't
// already exist and returns the full path of the resource.
func EnsureResourcePath(resource ...string) (string, error) {
	if err := os.MkdirAll(getBasePath(), 0o700); err != nil {
		return "", err
	}
	return ResourcePath(resource...), nil
}

// getBasePath() returns baseResourcePath with the user's configuration
// directory prepended if the unadorned baseResourcePath cannot be found in the
// current directory.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(home, baseResourcePath[1:])
}
