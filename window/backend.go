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

package window

import "unsafe"

// Backend is the presentation capability of a window.
type Backend interface {
	// size of the window in screen coordinates
	Size() (int, int)

	// size of the drawable area in pixels. this can differ from Size() on
	// high DPI displays
	DrawSize() (int, int)

	SwapBuffers() error
	Destroy() error
}

// GLBackend is implemented by backends that present with an OpenGL context.
type GLBackend interface {
	Backend
	GetProcAddress(name string) unsafe.Pointer
	IsCurrent() bool
	MakeCurrent() error
}

// CloseRequester is implemented by backends that can report a request from
// the user to close the window.
type CloseRequester interface {
	CloseRequested() bool
}
