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

package hid

import (
	"fmt"

	"github.com/jetsetilly/nxwindow/userinput"
)

// Source is the input capability. Refresh() latches the hardware state and
// ReadMask() reports the masks of the latched state.
//
// Errors encountered by a Source while refreshing should be logged and the
// masks reported as empty. Polling has no failure mode.
type Source interface {
	Refresh()
	ReadMask(state userinput.KeyState, slot Slot) uint32
}

// Closer is implemented by sources that hold resources that should be released
// when the source is no longer required.
type Closer interface {
	Close() error
}

// Slot identifies the controller being read.
type Slot int

// List of valid Slot values.
const (
	SlotP1 Slot = iota
	SlotP2
	SlotP3
	SlotP4
	SlotP5
	SlotP6
	SlotP7
	SlotP8
	SlotHandheld
	SlotUnknown

	// SlotP1Auto is player 1 if a controller is connected as player 1 and the
	// handheld controller otherwise.
	SlotP1Auto
)

func (s Slot) String() string {
	switch s {
	case SlotHandheld:
		return "handheld"
	case SlotUnknown:
		return "unknown"
	case SlotP1Auto:
		return "P1 auto"
	}
	if s >= SlotP1 && s <= SlotP8 {
		return fmt.Sprintf("P%d", int(s-SlotP1)+1)
	}
	return "invalid"
}

// IsPlayerOne returns true if the slot reads the first player. Sources with
// only one controller report empty masks for every other slot.
func (s Slot) IsPlayerOne() bool {
	return s == SlotP1 || s == SlotP1Auto || s == SlotHandheld
}

// StickDeadzone is the magnitude an analogue axis must exceed before the
// stick is considered to be pushed in that direction. Axis values are in the
// range -32768 to 32767.
const StickDeadzone = 10000

// Tick is the latched state of a Source for one refresh.
type Tick struct {
	Pressed  uint32 `json:"pressed" cbor:"1,keyasint,omitempty"`
	Released uint32 `json:"released" cbor:"2,keyasint,omitempty"`
	Held     uint32 `json:"held" cbor:"3,keyasint,omitempty"`
}

// Mask returns the mask for the transition state.
func (t Tick) Mask(state userinput.KeyState) uint32 {
	switch state {
	case userinput.Pressed:
		return t.Pressed
	case userinput.Released:
		return t.Released
	case userinput.Held:
		return t.Held
	}
	return 0
}

// IsZero returns true if all masks in the tick are empty.
func (t Tick) IsZero() bool {
	return t.Pressed == 0 && t.Released == 0 && t.Held == 0
}

// ReadTick reads all three masks from a Source for the slot.
func ReadTick(src Source, slot Slot) Tick {
	return Tick{
		Pressed:  src.ReadMask(userinput.Pressed, slot),
		Released: src.ReadMask(userinput.Released, slot),
		Held:     src.ReadMask(userinput.Held, slot),
	}
}
