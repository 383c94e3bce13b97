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

package bios

import (
	"bufio"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// firstTrack returns the file containing the first track of a cue sheet and
// whether that file contains raw sectors.
func firstTrack(fsys afero.Fs, cue string) (string, bool, error) {
	f, err := fsys.Open(cue)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	var file string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := cueFields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		switch strings.ToUpper(fields[0]) {
		case "FILE":
			if file == "" {
				file = fields[1]
			}
		case "TRACK":
			if file == "" {
				return "", false, fmt.Errorf("%s: TRACK before FILE", path.Base(cue))
			}
			if len(fields) < 3 {
				return "", false, fmt.Errorf("%s: malformed TRACK", path.Base(cue))
			}
			raw := strings.EqualFold(fields[2], "MODE1/2352") || strings.EqualFold(fields[2], "MODE2/2352")
			return path.Join(path.Dir(cue), file), raw, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", false, err
	}

	return "", false, fmt.Errorf("%s: no tracks", path.Base(cue))
}

// cueFields splits a line of a cue sheet into fields. Quoted fields can
// contain spaces.
func cueFields(line string) []string {
	var fields []string
	line = strings.TrimSpace(line)
	for len(line) > 0 {
		if line[0] == '"' {
			end := strings.IndexByte(line[1:], '"')
			if end < 0 {
				fields = append(fields, line[1:])
				break
			}
			fields = append(fields, line[1:end+1])
			line = strings.TrimSpace(line[end+2:])
			continue
		}
		end := strings.IndexAny(line, " \t")
		if end < 0 {
			fields = append(fields, line)
			break
		}
		fields = append(fields, line[:end])
		line = strings.TrimSpace(line[end:])
	}
	return fields
}

// audioTracks lists the tracks of a cue sheet that are audio files rather than
// binary tracks.
func audioTracks(fsys afero.Fs, cue string) ([]string, error) {
	f, err := fsys.Open(cue)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tracks []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := cueFields(scanner.Text())
		if len(fields) < 3 || !strings.EqualFold(fields[0], "FILE") {
			continue
		}
		switch strings.ToUpper(fields[2]) {
		case "WAVE", "MP3":
			tracks = append(tracks, path.Join(path.Dir(cue), fields[1]))
		}
	}
	return tracks, scanner.Err()
}
