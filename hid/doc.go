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

// Package hid defines the input capability used by the window package and
// provides the pieces shared by the concrete input sources.
//
// A Source is polled. Each call to Refresh() latches the state of the
// hardware and subsequent calls to ReadMask() report one of three masks for
// that latched state: the keys pressed since the previous refresh, the keys
// released since the previous refresh and the keys currently held. Bit i of a
// mask corresponds to key identifier i+1 (see the userinput package).
//
// Hardware that only reports which keys are held (most of it) can derive the
// pressed and released masks with the Edges type. The Scripted type is a
// Source that replays a fixed list of ticks and is useful for testing.
//
// Implementations in the sub-packages:
//
//	sdlpad		game controllers via SDL
//	joydev		linux joystick devices (/dev/input/js*)
//	termkeys	terminal keyboard
//
// The recorder package also provides a Source, for the playback of recorded
// input.
package hid
