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

// Package headless implements a window backend with no display. It is useful
// for driving the input side of a window, for example when recording input
// from a controller, and for testing.
//
// The package registers itself with the window package when imported.
package headless

import (
	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/window"
)

// Name of the backend as registered with the window package.
const Name = "headless"

// Sentinal error patterns.
const (
	Destroyed = "headless: backend has been destroyed"
)

func init() {
	window.RegisterBackend(Name, func(settings window.Settings) (window.Backend, error) {
		return New(settings.Width, settings.Height), nil
	})
}

// Headless implements the window.Backend interface.
type Headless struct {
	width  int
	height int

	swaps     int
	destroyed bool
}

// New is the preferred method of initialisation for the Headless type.
func New(width, height int) *Headless {
	return &Headless{
		width:  width,
		height: height,
	}
}

// Size implements the window.Backend interface.
func (h *Headless) Size() (int, int) {
	return h.width, h.height
}

// DrawSize implements the window.Backend interface. The drawable area of a
// headless window is always the same as its size.
func (h *Headless) DrawSize() (int, int) {
	return h.width, h.height
}

// SwapBuffers implements the window.Backend interface.
func (h *Headless) SwapBuffers() error {
	if h.destroyed {
		return curated.Errorf(Destroyed)
	}
	h.swaps++
	return nil
}

// Swaps returns the number of successful calls to SwapBuffers().
func (h *Headless) Swaps() int {
	return h.swaps
}

// Destroy implements the window.Backend interface.
func (h *Headless) Destroy() error {
	if h.destroyed {
		return curated.Errorf(Destroyed)
	}
	h.destroyed = true
	return nil
}
