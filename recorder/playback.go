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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/logger"
	"github.com/jetsetilly/nxwindow/userinput"
)

// Playback implements the hid.Source interface by replaying a recording.
type Playback struct {
	// the slot the recording was made from
	Slot hid.Slot

	sequence []record
	seqCt    int

	// total number of refreshes in the recording
	total uint64

	// number of calls to Refresh()
	n uint64

	current hid.Tick
}

// NewPlayback reads an entire recording from r.
func NewPlayback(r io.Reader) (*Playback, error) {
	dec := cbor.NewDecoder(r)

	var hdr header
	err := dec.Decode(&hdr)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, curated.Errorf(NotRecording)
		}
		return nil, curated.Errorf(PlaybackError, err)
	}
	if hdr.Magic != Magic {
		return nil, curated.Errorf(NotRecording)
	}
	if hdr.Version != Version {
		return nil, curated.Errorf(UnsupportedVersion, hdr.Version)
	}

	plb := &Playback{
		Slot: hdr.Slot,
	}

	var trailer bool
	var last uint64

	for !trailer {
		var rec record
		err := dec.Decode(&rec)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break // for loop
			}
			return nil, curated.Errorf(PlaybackError, err)
		}

		switch rec.Kind {
		case kindTick:
			if rec.N <= last {
				return nil, curated.Errorf(BadSequence, rec.N, last)
			}
			last = rec.N
			plb.sequence = append(plb.sequence, rec)
		case kindEnd:
			if rec.N < last {
				return nil, curated.Errorf(BadSequence, rec.N, last)
			}
			plb.total = rec.N
			trailer = true
		default:
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("unknown record kind (%d)", rec.Kind))
		}
	}

	if !trailer {
		logger.Log(logger.Allow, "playback", "recording has no trailer")
		plb.total = last
	}

	return plb, nil
}

// Open the recording file at path.
func Open(path string) (*Playback, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}
	defer f.Close()

	return NewPlayback(f)
}

func (plb *Playback) String() string {
	if plb.total == 0 {
		return "0/0"
	}
	n := min(plb.n, plb.total)
	return fmt.Sprintf("%d/%d (%.1f%%)", n, plb.total, 100*(float64(n)/float64(plb.total)))
}

// Refresh implements the hid.Source interface.
func (plb *Playback) Refresh() {
	plb.n++
	plb.current = hid.Tick{}

	if plb.seqCt < len(plb.sequence) && plb.sequence[plb.seqCt].N == plb.n {
		plb.current = plb.sequence[plb.seqCt].Masks
		plb.seqCt++
	}
}

// ReadMask implements the hid.Source interface. The recorded masks are
// reported for the recorded slot and, if that slot is player one, for any
// other slot that reads player one.
func (plb *Playback) ReadMask(state userinput.KeyState, slot hid.Slot) uint32 {
	if slot != plb.Slot && !(slot.IsPlayerOne() && plb.Slot.IsPlayerOne()) {
		return 0
	}
	return plb.current.Mask(state)
}

// Ticks returns the total number of refreshes in the recording.
func (plb *Playback) Ticks() uint64 {
	return plb.total
}

// Finished returns true once every refresh in the recording has been
// replayed.
func (plb *Playback) Finished() bool {
	return plb.n >= plb.total
}
