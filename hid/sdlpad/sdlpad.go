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

// Package sdlpad is an input source for game controllers supported by SDL.
//
// The SDL functions used by this package must be called from the same
// goroutine as the rest of the program's SDL functions. In practice this means
// the goroutine that owns the window.
package sdlpad

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/logger"
)

// Sentinal error patterns.
const (
	SDLError     = "sdlpad: sdl: %v"
	NoController = "sdlpad: no game controller found"
)

// Pad is an implementation of the hid.Source interface.
type Pad struct {
	hid.Edges

	pad  *sdl.GameController
	name string

	// axes must move beyond the dead zone before a direction is considered
	// to be held
	Deadzone int16

	// the controller has been disconnected. logged once
	detached bool
}

// Open the first available game controller.
func Open() (*Pad, error) {
	err := sdl.InitSubSystem(sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		pad := sdl.GameControllerOpen(i)
		if pad == nil || !pad.Attached() {
			continue
		}

		p := &Pad{
			pad:      pad,
			name:     pad.Name(),
			Deadzone: hid.StickDeadzone,
		}
		logger.Logf(logger.Allow, "sdlpad", "gamepad: %s", p.name)
		return p, nil
	}

	sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER)
	return nil, curated.Errorf(NoController)
}

// Name returns the name of the controller as reported by SDL.
func (p *Pad) Name() string {
	return p.name
}

// Refresh implements the hid.Source interface.
func (p *Pad) Refresh() {
	sdl.GameControllerUpdate()

	if !p.pad.Attached() {
		if !p.detached {
			logger.Logf(logger.Allow, "sdlpad", "gamepad detached: %s", p.name)
			p.detached = true
		}
		p.Latch(0)
		return
	}

	if p.detached {
		logger.Logf(logger.Allow, "sdlpad", "gamepad reattached: %s", p.name)
		p.detached = false
	}

	p.Latch(heldMask(p, p.Deadzone))
}

// Button implements the controllerState interface.
func (p *Pad) Button(btn sdl.GameControllerButton) bool {
	return p.pad.Button(btn) != 0
}

// Axis implements the controllerState interface.
func (p *Pad) Axis(axis sdl.GameControllerAxis) int16 {
	return p.pad.Axis(axis)
}

// Close implements the hid.Closer interface.
func (p *Pad) Close() error {
	p.pad.Close()
	sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER)
	return nil
}
