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
	"github.com/jetsetilly/nxwindow/userinput"
)

// Edges derives the pressed and released masks from successive held masks.
// Sources that can only observe which keys are held embed Edges and call
// Latch() once per refresh. The embedded ReadMask() then satisfies the
// Source interface.
//
// The zero value is ready to use and assumes no keys were held before the
// first call to Latch().
type Edges struct {
	tick Tick
}

// Latch the held mask for this refresh.
func (e *Edges) Latch(held uint32) {
	last := e.tick.Held
	e.tick = Tick{
		Pressed:  held &^ last,
		Released: last &^ held,
		Held:     held,
	}
}

// Tick returns the latched tick.
func (e *Edges) Tick() Tick {
	return e.tick
}

// ReadMask implements the Source interface. Only the player one slots report
// any input.
func (e *Edges) ReadMask(state userinput.KeyState, slot Slot) uint32 {
	if !slot.IsPlayerOne() {
		return 0
	}
	return e.tick.Mask(state)
}
