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

package joydev

import (
	"encoding/binary"
)

// size of the js_event structure in bytes.
const eventSize = 8

// type values of the js_event structure.
const (
	eventButton uint8 = 0x01
	eventAxis   uint8 = 0x02

	// set on the synthetic events sent when the device is opened
	eventInit uint8 = 0x80
)

// the number of buttons and axes tracked. events for indices outside of this
// range are ignored.
const (
	maxButtons = 32
	maxAxes    = 16
)

// event is a decoded js_event.
type event struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// decodeEvent decodes a js_event from the buffer. The buffer must be at least
// eventSize bytes long.
func decodeEvent(b []byte) event {
	return event{
		Time:   binary.NativeEndian.Uint32(b[0:4]),
		Value:  int16(binary.NativeEndian.Uint16(b[4:6])),
		Type:   b[6],
		Number: b[7],
	}
}

// State is the button and axis state of the device.
type State struct {
	Buttons [maxButtons]bool
	Axes    [maxAxes]int16
}

// apply the event to the state.
func (st *State) apply(ev event) {
	switch ev.Type &^ eventInit {
	case eventButton:
		if int(ev.Number) < len(st.Buttons) {
			st.Buttons[ev.Number] = ev.Value != 0
		}
	case eventAxis:
		if int(ev.Number) < len(st.Axes) {
			st.Axes[ev.Number] = ev.Value
		}
	}
}
