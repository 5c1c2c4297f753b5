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

package termkeys

import (
	"github.com/jetsetilly/nxwindow/userinput"
)

// Keymap is the list of single byte keys and the key identifiers they produce.
// The face buttons are on the bottom row of a qwerty keyboard, the shoulder
// buttons above them. The right stick is on IJKL.
var Keymap = map[byte]userinput.ButtonID{
	'x':  userinput.ButtonA,
	'z':  userinput.ButtonB,
	's':  userinput.ButtonX,
	'a':  userinput.ButtonY,
	'q':  userinput.ButtonL,
	'w':  userinput.ButtonR,
	'1':  userinput.ButtonZL,
	'2':  userinput.ButtonZR,
	'\r': userinput.ButtonPlus,
	'\n': userinput.ButtonPlus,
	0x7f: userinput.ButtonMinus,
	'j':  userinput.ButtonRStickLeft,
	'i':  userinput.ButtonRStickUp,
	'l':  userinput.ButtonRStickRight,
	'k':  userinput.ButtonRStickDown,
}

// the final byte of the cursor key escape sequences
var cursorKeys = map[byte]userinput.ButtonID{
	'A': userinput.ButtonDUp,
	'B': userinput.ButtonDDown,
	'C': userinput.ButtonDRight,
	'D': userinput.ButtonDLeft,
}

const esc = 0x1b

// parseKeys returns the mask of keys found in the bytes read from the
// terminal. Unrecognised bytes and escape sequences are ignored.
func parseKeys(b []byte) uint32 {
	var held uint32

	for i := 0; i < len(b); i++ {
		if b[i] == esc {
			// cursor keys are either ESC [ x or ESC O x
			if i+2 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
				if id, ok := cursorKeys[b[i+2]]; ok {
					held |= id.Mask()
				}
				i += 2
			}
			continue
		}

		if id, ok := Keymap[b[i]]; ok {
			held |= id.Mask()
		}
	}

	return held
}
