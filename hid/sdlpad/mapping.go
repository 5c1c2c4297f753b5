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

package sdlpad

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/nxwindow/userinput"
)

// controllerState is the part of the SDL game controller that is used to build
// the held mask.
type controllerState interface {
	Button(sdl.GameControllerButton) bool
	Axis(sdl.GameControllerAxis) int16
}

// SDL names the face buttons by their position on an Xbox controller. The
// mapping here is positional, so the button at the bottom of the diamond is B
// and the button on the right is A.
var buttonMap = map[sdl.GameControllerButton]userinput.ButtonID{
	sdl.CONTROLLER_BUTTON_A:             userinput.ButtonB,
	sdl.CONTROLLER_BUTTON_B:             userinput.ButtonA,
	sdl.CONTROLLER_BUTTON_X:             userinput.ButtonY,
	sdl.CONTROLLER_BUTTON_Y:             userinput.ButtonX,
	sdl.CONTROLLER_BUTTON_LEFTSTICK:     userinput.ButtonLStick,
	sdl.CONTROLLER_BUTTON_RIGHTSTICK:    userinput.ButtonRStick,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  userinput.ButtonL,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: userinput.ButtonR,
	sdl.CONTROLLER_BUTTON_START:         userinput.ButtonPlus,
	sdl.CONTROLLER_BUTTON_BACK:          userinput.ButtonMinus,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     userinput.ButtonDLeft,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       userinput.ButtonDUp,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    userinput.ButtonDRight,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     userinput.ButtonDDown,
}

type stick struct {
	x, y                  sdl.GameControllerAxis
	left, up, right, down userinput.ButtonID
}

var sticks = []stick{
	{
		x: sdl.CONTROLLER_AXIS_LEFTX, y: sdl.CONTROLLER_AXIS_LEFTY,
		left: userinput.ButtonLStickLeft, up: userinput.ButtonLStickUp,
		right: userinput.ButtonLStickRight, down: userinput.ButtonLStickDown,
	},
	{
		x: sdl.CONTROLLER_AXIS_RIGHTX, y: sdl.CONTROLLER_AXIS_RIGHTY,
		left: userinput.ButtonRStickLeft, up: userinput.ButtonRStickUp,
		right: userinput.ButtonRStickRight, down: userinput.ButtonRStickDown,
	},
}

// heldMask builds the mask of held keys from the controller state. Sticks are
// treated as digital pads and the triggers as buttons.
func heldMask(ctrl controllerState, deadzone int16) uint32 {
	var held uint32

	for btn, id := range buttonMap {
		if ctrl.Button(btn) {
			held |= id.Mask()
		}
	}

	for _, s := range sticks {
		x := ctrl.Axis(s.x)
		y := ctrl.Axis(s.y)
		if x < -deadzone {
			held |= s.left.Mask()
		} else if x > deadzone {
			held |= s.right.Mask()
		}

		// the y axis is positive in the down direction
		if y < -deadzone {
			held |= s.up.Mask()
		} else if y > deadzone {
			held |= s.down.Mask()
		}
	}

	if ctrl.Axis(sdl.CONTROLLER_AXIS_TRIGGERLEFT) > deadzone {
		held |= userinput.ButtonZL.Mask()
	}
	if ctrl.Axis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT) > deadzone {
		held |= userinput.ButtonZR.Mask()
	}

	return held
}
