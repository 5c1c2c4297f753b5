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

// QuitCombination is the set of buttons that, when all held together, cause
// the Quit field of the Controllers type to be set.
var QuitCombination = []ButtonID{ButtonPlus, ButtonMinus}

// Controllers keeps track of the state of the controller as seen through the
// events passed to HandleUserInput().
type Controllers struct {
	// the buttons currently down according to the events seen so far. this
	// is a mask in the same format as the driver's held mask
	down uint32

	// is true if last event was passed on to a HandleInput implementation
	LastEventHandled bool

	// is true if the most recent event completed the QuitCombination
	Quit bool
}

// Down returns true if the button is down according to the events seen so
// far.
func (c *Controllers) Down(button ButtonID) bool {
	return c.down&button.Mask() != 0
}

// DownMask returns the state of all buttons as a key mask.
func (c *Controllers) DownMask() uint32 {
	return c.down
}

func (c *Controllers) track(button ButtonID, down bool) {
	if down {
		c.down |= button.Mask()
	} else {
		c.down &^= button.Mask()
	}
}

func (c *Controllers) quitCombination() bool {
	if len(QuitCombination) == 0 {
		return false
	}
	for _, b := range QuitCombination {
		if !c.Down(b) {
			return false
		}
	}
	return true
}

// HandleUserInput deciphers the Event and forwards it to the HandleInput
// implementation. The handle argument can be nil, in which case the event only
// updates the state of the Controllers type.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) error {
	c.Quit = false
	c.LastEventHandled = false

	var err error

	switch ev := ev.(type) {
	case EventGamepadButton:
		c.track(ev.Button, ev.Down)
		if handle != nil {
			err = handle.HandleButton(ev.ID, ev.Button, ev.Down)
			c.LastEventHandled = true
		}
	case EventGamepadHat:
		c.track(ev.Hat, ev.Down)
		if handle != nil {
			err = handle.HandleHat(ev.ID, ev.Hat, ev.Direction, ev.Down)
			c.LastEventHandled = true
		}
	default:
	}

	c.Quit = c.quitCombination()

	return err
}
