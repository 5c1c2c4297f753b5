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

package recorder

import (
	"github.com/jetsetilly/nxwindow/hid"
)

// Magic string at the start of every recording.
const Magic = "nxwindow/recording"

// Version of the recording format.
const Version = 1

// Sentinal error patterns.
const (
	RecordingError     = "recorder: %v"
	PlaybackError      = "playback: %v"
	NotRecording       = "playback: not a recording"
	UnsupportedVersion = "playback: unsupported version (%d)"
	BadSequence        = "playback: tick %d follows tick %d"
)

type header struct {
	Magic   string   `cbor:"1,keyasint"`
	Version int      `cbor:"2,keyasint"`
	Slot    hid.Slot `cbor:"3,keyasint"`
}

type kind int

const (
	kindTick kind = iota
	kindEnd
)

// record is used for both tick entries and the trailer. for the trailer N is
// the total number of refreshes.
type record struct {
	Kind  kind     `cbor:"1,keyasint"`
	N     uint64   `cbor:"2,keyasint"`
	Masks hid.Tick `cbor:"3,keyasint"`
}
