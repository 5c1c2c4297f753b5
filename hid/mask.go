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
	"strings"

	"github.com/jetsetilly/nxwindow/userinput"
)

// Mask is a 32 bit key mask as returned by Source.ReadMask().
type Mask uint32

// Bit returns the mask with only the bit for the key identifier set.
func Bit(id userinput.ButtonID) Mask {
	return Mask(id.Mask())
}

// Has returns true if the bit for the key identifier is set.
func (m Mask) Has(id userinput.ButtonID) bool {
	return m&Bit(id) != 0
}

// Buttons returns the key identifiers set in the mask, in increasing order.
func (m Mask) Buttons() []userinput.ButtonID {
	var ids []userinput.ButtonID
	for i := range 32 {
		if m&(1<<i) != 0 {
			ids = append(ids, userinput.ButtonID(i+1))
		}
	}
	return ids
}

// String lists the names of the key identifiers set in the mask.
func (m Mask) String() string {
	ids := m.Buttons()
	if len(ids) == 0 {
		return "none"
	}
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = id.String()
	}
	return strings.Join(s, "+")
}
