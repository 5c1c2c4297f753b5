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

// HandleInput conceptualises an application that consumes decoded events.
type HandleInput interface {
	// HandleButton is called for every EventGamepadButton.
	HandleButton(id ControllerID, button ButtonID, down bool) error

	// HandleHat is called for every EventGamepadHat.
	HandleHat(id ControllerID, hat ButtonID, dir HatDirection, down bool) error
}
