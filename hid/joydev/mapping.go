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
	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/userinput"
)

// AxisPair maps a pair of axes to four key identifiers.
type AxisPair struct {
	X, Y                  int
	Left, Up, Right, Down userinput.ButtonID
}

// Mapping converts the State of a joystick device to a held mask.
type Mapping struct {
	// joystick button index to key identifier
	Buttons map[int]userinput.ButtonID

	// pairs of axes treated as digital pads
	Pads []AxisPair

	// axes treated as buttons when pushed beyond the dead zone in the
	// positive direction
	Triggers map[int]userinput.ButtonID

	Deadzone int16
}

// DefaultMapping is the layout of the xpad driver. The face buttons are
// mapped by position.
var DefaultMapping = Mapping{
	Buttons: map[int]userinput.ButtonID{
		0:  userinput.ButtonB,
		1:  userinput.ButtonA,
		2:  userinput.ButtonY,
		3:  userinput.ButtonX,
		4:  userinput.ButtonL,
		5:  userinput.ButtonR,
		6:  userinput.ButtonMinus,
		7:  userinput.ButtonPlus,
		9:  userinput.ButtonLStick,
		10: userinput.ButtonRStick,
	},
	Pads: []AxisPair{
		{X: 0, Y: 1,
			Left: userinput.ButtonLStickLeft, Up: userinput.ButtonLStickUp,
			Right: userinput.ButtonLStickRight, Down: userinput.ButtonLStickDown},
		{X: 3, Y: 4,
			Left: userinput.ButtonRStickLeft, Up: userinput.ButtonRStickUp,
			Right: userinput.ButtonRStickRight, Down: userinput.ButtonRStickDown},

		// the d-pad is reported as a pair of axes by xpad
		{X: 6, Y: 7,
			Left: userinput.ButtonDLeft, Up: userinput.ButtonDUp,
			Right: userinput.ButtonDRight, Down: userinput.ButtonDDown},
	},
	Triggers: map[int]userinput.ButtonID{
		2: userinput.ButtonZL,
		5: userinput.ButtonZR,
	},
	Deadzone: hid.StickDeadzone,
}

func axis(st *State, i int) int16 {
	if i < 0 || i >= len(st.Axes) {
		return 0
	}
	return st.Axes[i]
}

// Held returns the held mask for the state.
func (m Mapping) Held(st *State) uint32 {
	var held uint32

	for i, id := range m.Buttons {
		if i >= 0 && i < len(st.Buttons) && st.Buttons[i] {
			held |= id.Mask()
		}
	}

	for _, p := range m.Pads {
		x := axis(st, p.X)
		y := axis(st, p.Y)
		if x < -m.Deadzone {
			held |= p.Left.Mask()
		} else if x > m.Deadzone {
			held |= p.Right.Mask()
		}
		if y < -m.Deadzone {
			held |= p.Up.Mask()
		} else if y > m.Deadzone {
			held |= p.Down.Mask()
		}
	}

	for i, id := range m.Triggers {
		if axis(st, i) > m.Deadzone {
			held |= id.Mask()
		}
	}

	return held
}
