// This file is part of nxwindow.
//
// nxwindow is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nxwindow is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nxwindow.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/hid/joydev"
	"github.com/jetsetilly/nxwindow/hid/sdlpad"
	"github.com/jetsetilly/nxwindow/hid/termkeys"
	"github.com/jetsetilly/nxwindow/recorder"
)

// names of the input sources that can be selected with the -input flag
var sourceNames = []string{"sdl", "joydev", "term", "playback"}

// openSource opens the named input source. The device argument is the joystick
// device for the joydev source and the recording file for the playback source.
// The returned function closes the source.
func openSource(name string, device string) (hid.Source, func() error, error) {
	var src interface {
		hid.Source
		hid.Closer
	}
	var err error

	switch name {
	case "sdl":
		src, err = sdlpad.Open()
	case "joydev":
		src, err = joydev.Open(device, joydev.DefaultMapping)
	case "term":
		src, err = termkeys.Open(os.Stdin)
	case "playback":
		// the recording is read in its entirety by Open() so there is nothing
		// to close
		plb, err := recorder.Open(device)
		if err != nil {
			return nil, nil, err
		}
		return plb, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown input source (%s)", name)
	}

	if err != nil {
		return nil, nil, err
	}

	return src, src.Close, nil
}
