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

package userinput

import "fmt"

// ControllerID identifies the physical controller an event came from.
type ControllerID int

// Only one controller is supported. All events carry this ID.
const ControllerP1 ControllerID = 1

// Event represents all the different types of input event that can be
// produced by Decode().
type Event interface{}

// EventGamepadButton is an ordinary button going down or coming up.
type EventGamepadButton struct {
	ID     ControllerID `json:"controller" cbor:"1,keyasint"`
	Button ButtonID     `json:"button" cbor:"2,keyasint"`
	Down   bool         `json:"down" cbor:"3,keyasint"`
}

func (ev EventGamepadButton) String() string {
	return fmt.Sprintf("controller %d: button %s %s", ev.ID, ev.Button, updown(ev.Down))
}

// EventGamepadHat is a directional input going down or coming up. The Hat
// field is the key identifier of the input and is the only way of telling the
// d-pad from the two sticks.
type EventGamepadHat struct {
	ID        ControllerID `json:"controller" cbor:"1,keyasint"`
	Hat       ButtonID     `json:"hat" cbor:"2,keyasint"`
	Direction HatDirection `json:"direction" cbor:"3,keyasint"`
	Down      bool         `json:"down" cbor:"4,keyasint"`
}

func (ev EventGamepadHat) String() string {
	return fmt.Sprintf("controller %d: hat %s %s %s", ev.ID, ev.Hat, ev.Direction, updown(ev.Down))
}

func updown(down bool) string {
	if down {
		return "press"
	}
	return "release"
}

// HatDirection is the direction of an EventGamepadHat.
type HatDirection int

// List of valid HatDirection values. The order is significant: the value of
// a direction is the key identifier modulo four.
const (
	HatDown HatDirection = iota
	HatLeft
	HatUp
	HatRight
)

func (d HatDirection) String() string {
	switch d {
	case HatDown:
		return "down"
	case HatLeft:
		return "left"
	case HatUp:
		return "up"
	case HatRight:
		return "right"
	}
	return "unknown"
}

// KeyState is the transition a key mask describes.
type KeyState int

// List of valid KeyState values.
const (
	Pressed KeyState = iota
	Released
	Held
)

func (s KeyState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	case Held:
		return "held"
	}
	return "unknown"
}
