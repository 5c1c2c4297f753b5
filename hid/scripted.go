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

// Scripted is a Source that replays a list of ticks, one per refresh. Once
// the list is exhausted every refresh latches an empty tick.
type Scripted struct {
	ticks     []Tick
	current   Tick
	refreshes int
}

// NewScripted is the preferred method of initialisation for the Scripted type.
func NewScripted(ticks ...Tick) *Scripted {
	return &Scripted{ticks: ticks}
}

// Refresh implements the Source interface.
func (s *Scripted) Refresh() {
	if s.refreshes < len(s.ticks) {
		s.current = s.ticks[s.refreshes]
	} else {
		s.current = Tick{}
	}
	s.refreshes++
}

// ReadMask implements the Source interface. The slot is ignored.
func (s *Scripted) ReadMask(state userinput.KeyState, _ Slot) uint32 {
	return s.current.Mask(state)
}

// Refreshes returns the number of times Refresh() has been called.
func (s *Scripted) Refreshes() int {
	return s.refreshes
}

// Exhausted returns true if every tick has been latched.
func (s *Scripted) Exhausted() bool {
	return s.refreshes >= len(s.ticks)
}
