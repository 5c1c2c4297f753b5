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
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/test"
	"github.com/jetsetilly/nxwindow/userinput"
)

type fakeController struct {
	buttons map[sdl.GameControllerButton]bool
	axes    map[sdl.GameControllerAxis]int16
}

func (c fakeController) Button(btn sdl.GameControllerButton) bool {
	return c.buttons[btn]
}

func (c fakeController) Axis(axis sdl.GameControllerAxis) int16 {
	return c.axes[axis]
}

func TestHeldMaskNothing(t *testing.T) {
	test.ExpectEquality(t, heldMask(fakeController{}, hid.StickDeadzone), 0)
}

func TestHeldMaskButtons(t *testing.T) {
	ctrl := fakeController{
		buttons: map[sdl.GameControllerButton]bool{
			sdl.CONTROLLER_BUTTON_B:         true,
			sdl.CONTROLLER_BUTTON_START:     true,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN: true,
		},
	}
	m := hid.Mask(heldMask(ctrl, hid.StickDeadzone))
	test.ExpectEquality(t, m.String(), "A+Plus+DDown")
}

func TestHeldMaskSticks(t *testing.T) {
	ctrl := fakeController{
		axes: map[sdl.GameControllerAxis]int16{
			sdl.CONTROLLER_AXIS_LEFTX:        -32768,
			sdl.CONTROLLER_AXIS_LEFTY:        hid.StickDeadzone,
			sdl.CONTROLLER_AXIS_RIGHTY:       32767,
			sdl.CONTROLLER_AXIS_TRIGGERRIGHT: 20000,
		},
	}

	// LEFTY is exactly on the dead zone and is not considered held
	m := hid.Mask(heldMask(ctrl, hid.StickDeadzone))
	test.ExpectSuccess(t, m.Has(userinput.ButtonLStickLeft))
	test.ExpectFailure(t, m.Has(userinput.ButtonLStickDown))
	test.ExpectSuccess(t, m.Has(userinput.ButtonRStickDown))
	test.ExpectSuccess(t, m.Has(userinput.ButtonZR))
	test.ExpectFailure(t, m.Has(userinput.ButtonZL))
	test.ExpectEquality(t, len(m.Buttons()), 3)
}
