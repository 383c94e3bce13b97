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
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/spf13/afero"

	"github.com/satflash/saroo/logger"
)

// Track is an audio track on the mounted disc.
type Track struct {
	Number   int
	Name     string
	Duration time.Duration
}

func (t Track) String() string {
	d := t.Duration.Round(time.Second)
	return fmt.Sprintf("%02d %s %d:%02d", t.Number, t.Name, int(d.Minutes()), int(d.Seconds())%60)
}

// RunCDPlayer starts the BIOS CD player. The simulation lists the audio
// tracks of the mounted disc.
func (b *BIOS) RunCDPlayer() {
	tracks, err := b.Tracks()
	if err != nil {
		logger.Logf(logger.Allow, "bios", "cd player: %v", err)
		return
	}

	logger.Logf(logger.Allow, "bios", "cd player: %d tracks", len(tracks))
	for _, t := range tracks {
		logger.Logf(logger.Allow, "bios", "cd player: %v", t)
	}
}

// Tracks returns the audio tracks of the mounted disc. Audio tracks are the
// WAVE and MP3 files of a cue sheet, or for other image types, any wav or mp3
// files in the same directory as the image.
func (b *BIOS) Tracks() ([]Track, error) {
	image, ok := b.disc.Mounted()
	if !ok {
		return nil, fmt.Errorf("no disc mounted")
	}
	fsys := b.disc.FS()

	var files []string
	if strings.EqualFold(path.Ext(image), ".cue") {
		var err error
		files, err = audioTracks(fsys, image)
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := afero.ReadDir(fsys, path.Dir(image))
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			switch strings.ToLower(path.Ext(e.Name())) {
			case ".wav", ".mp3":
				files = append(files, path.Join(path.Dir(image), e.Name()))
			}
		}
	}

	// track one is always the data track
	tracks := make([]Track, 0, len(files))
	for i, f := range files {
		d, err := duration(fsys, f)
		if err != nil {
			logger.Logf(logger.Allow, "bios", "cd player: %s: %v", path.Base(f), err)
			continue
		}
		tracks = append(tracks, Track{Number: i + 2, Name: path.Base(f), Duration: d})
	}

	return tracks, nil
}

func duration(fsys afero.Fs, name string) (time.Duration, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	switch strings.ToLower(path.Ext(name)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if !dec.IsValidFile() {
			return 0, fmt.Errorf("not a valid wav file")
		}
		return dec.Duration()

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return 0, err
		}
		// the decoded stream is always 16bit stereo so one sample is four bytes
		samples := dec.Length() / 4
		if samples < 0 {
			return 0, fmt.Errorf("unknown length")
		}
		return time.Duration(samples) * time.Second / time.Duration(dec.SampleRate()), nil
	}

	return 0, fmt.Errorf("unsupported audio format")
}
