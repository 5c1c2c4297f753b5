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

// direction of a hat identifier is the identifier modulo four
var hatDirections = [4]HatDirection{HatDown, HatLeft, HatUp, HatRight}

// Decode converts a key mask into a list of events, one for each bit set in
// the mask, in order of increasing bit position.
//
// A state of Held always results in an empty list.
func Decode(id ControllerID, state KeyState, keys uint32) []Event {
	if state == Held || keys == 0 {
		return nil
	}

	down := state == Pressed

	var evs []Event
	for idx := 0; idx < 32; idx++ {
		if keys&(1<<idx) == 0 {
			continue
		}
		evs = append(evs, decodeButton(id, ButtonID(idx+1), down))
	}

	return evs
}

func decodeButton(id ControllerID, button ButtonID, down bool) Event {
	if button.IsHat() {
		return EventGamepadHat{
			ID:        id,
			Hat:       button,
			Direction: hatDirections[button%4],
			Down:      down,
		}
	}
	return EventGamepadButton{
		ID:     id,
		Button: button,
		Down:   down,
	}
}
