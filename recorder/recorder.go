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
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/logger"
	"github.com/jetsetilly/nxwindow/userinput"
)

// Recorder implements the hid.Source interface. It passes every call through
// to the wrapped source and records the masks for the slot.
type Recorder struct {
	src  hid.Source
	slot hid.Slot
	enc  *cbor.Encoder

	// number of refreshes
	n uint64

	// number of ticks written
	written int

	// the first error encountered while writing. once an error has occurred
	// no further ticks are written
	err error

	ended bool
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The header is written immediately.
func NewRecorder(w io.Writer, src hid.Source, slot hid.Slot) (*Recorder, error) {
	rec := &Recorder{
		src:  src,
		slot: slot,
		enc:  cbor.NewEncoder(w),
	}

	err := rec.enc.Encode(header{
		Magic:   Magic,
		Version: Version,
		Slot:    slot,
	})
	if err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	return rec, nil
}

// Refresh implements the hid.Source interface.
func (rec *Recorder) Refresh() {
	rec.src.Refresh()
	rec.n++

	if rec.ended || rec.err != nil {
		return
	}

	t := hid.ReadTick(rec.src, rec.slot)
	if t.IsZero() {
		return
	}

	err := rec.enc.Encode(record{Kind: kindTick, N: rec.n, Masks: t})
	if err != nil {
		rec.err = curated.Errorf(RecordingError, err)
		logger.Log(logger.Allow, "recorder", rec.err)
		return
	}
	rec.written++
}

// ReadMask implements the hid.Source interface.
func (rec *Recorder) ReadMask(state userinput.KeyState, slot hid.Slot) uint32 {
	return rec.src.ReadMask(state, slot)
}

// Refreshes returns the number of calls to Refresh().
func (rec *Recorder) Refreshes() uint64 {
	return rec.n
}

// Written returns the number of ticks written to the recording.
func (rec *Recorder) Written() int {
	return rec.written
}

// End writes the trailer. The wrapped source continues to work but no more
// ticks are recorded. Returns the first error that occurred while recording.
func (rec *Recorder) End() error {
	if rec.ended {
		return rec.err
	}
	rec.ended = true

	if rec.err != nil {
		return rec.err
	}

	err := rec.enc.Encode(record{Kind: kindEnd, N: rec.n})
	if err != nil {
		rec.err = curated.Errorf(RecordingError, err)
		return rec.err
	}

	logger.Logf(logger.Allow, "recorder", "%d ticks written from %d refreshes", rec.written, rec.n)

	return nil
}
