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

// Package joydev is an input source for the linux joystick interface
// (/dev/input/jsN).
//
// The device is opened non-blocking and every refresh drains the events that
// have arrived since the previous refresh. Button and axis state is then
// converted to a held mask with a Mapping. The DefaultMapping suits the xpad
// driver layout used by most XInput style controllers.
//
// On platforms other than linux Open() always fails.
package joydev
