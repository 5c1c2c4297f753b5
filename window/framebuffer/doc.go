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

// Package framebuffer implements a window backend that presents a CPU side
// pixel buffer. The buffer is uploaded to a streaming SDL texture on every
// call to SwapBuffers().
//
// Pixels are stored four bytes per pixel in RGBA order, which is the memory
// layout of SDL's ABGR8888 format on little-endian machines.
//
// The package registers itself with the window package when imported.
package framebuffer
