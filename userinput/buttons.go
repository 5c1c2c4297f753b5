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

// ButtonID is a key identifier. It is one more than the bit position of the
// key in the driver's key mask.
//
// Note that the values are NOT the same as the driver's own key constants,
// which are the mask values themselves.
type ButtonID uint8

// List of named key identifiers. Identifiers 27 to 32 are valid but have no
// name.
const (
	ButtonNone ButtonID = iota

	ButtonA
	ButtonB
	ButtonX
	ButtonY

	ButtonLStick
	ButtonRStick

	ButtonL
	ButtonR
	ButtonZL
	ButtonZR

	ButtonPlus
	ButtonMinus

	ButtonDLeft
	ButtonDUp
	ButtonDRight
	ButtonDDown

	// the sticks are treated as more d-pads
	ButtonLStickLeft
	ButtonLStickUp
	ButtonLStickRight
	ButtonLStickDown

	ButtonRStickLeft
	ButtonRStickUp
	ButtonRStickRight
	ButtonRStickDown

	ButtonSL
	ButtonSR
)

// MaxButtonID is the largest identifier that can be found in a 32 bit mask.
const MaxButtonID ButtonID = 32

// the range of identifiers that decode as hat events
const (
	hatFirst = ButtonDLeft
	hatLast  = ButtonRStickDown
)

var buttonNames = map[ButtonID]string{
	ButtonA:           "A",
	ButtonB:           "B",
	ButtonX:           "X",
	ButtonY:           "Y",
	ButtonLStick:      "LStick",
	ButtonRStick:      "RStick",
	ButtonL:           "L",
	ButtonR:           "R",
	ButtonZL:          "ZL",
	ButtonZR:          "ZR",
	ButtonPlus:        "Plus",
	ButtonMinus:       "Minus",
	ButtonDLeft:       "DLeft",
	ButtonDUp:         "DUp",
	ButtonDRight:      "DRight",
	ButtonDDown:       "DDown",
	ButtonLStickLeft:  "LStickLeft",
	ButtonLStickUp:    "LStickUp",
	ButtonLStickRight: "LStickRight",
	ButtonLStickDown:  "LStickDown",
	ButtonRStickLeft:  "RStickLeft",
	ButtonRStickUp:    "RStickUp",
	ButtonRStickRight: "RStickRight",
	ButtonRStickDown:  "RStickDown",
	ButtonSL:          "SL",
	ButtonSR:          "SR",
}

func (b ButtonID) String() string {
	if s, ok := buttonNames[b]; ok {
		return s
	}
	return fmt.Sprintf("#%d", uint8(b))
}

// IsHat returns true if the identifier decodes to an EventGamepadHat.
func (b ButtonID) IsHat() bool {
	return b >= hatFirst && b <= hatLast
}

// Mask returns the key mask with only the bit for the identifier set. Returns
// zero for ButtonNone or for identifiers larger than MaxButtonID.
func (b ButtonID) Mask() uint32 {
	if b == ButtonNone || b > MaxButtonID {
		return 0
	}
	return 1 << (b - 1)
}

// ButtonFromName returns the identifier for the name as returned by
// ButtonID.String(). The comparison is case sensitive.
func ButtonFromName(name string) (ButtonID, bool) {
	for b, s := range buttonNames {
		if s == name {
			return b, true
		}
	}
	return ButtonNone, false
}
