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

import (
	"fmt"
	"time"

	"github.com/jetsetilly/nxwindow/hid"
)

// Settings used to build a Window.
type Settings struct {
	// name of the backend as registered with RegisterBackend()
	Backend string

	Title  string
	Width  int
	Height int
	VSync  bool

	// the time to sleep between unsuccessful polls in WaitEvent() and
	// WaitEventTimeout(). a value of zero yields the goroutine instead of
	// sleeping
	PollInterval time.Duration

	BacklogOrder BacklogOrder

	// the controller slot read from the input source
	Slot hid.Slot
}

// DefaultSettings returns the settings used when nothing else has been
// specified.
func DefaultSettings() Settings {
	return Settings{
		Backend:      "headless",
		Title:        "nxwindow",
		Width:        1280,
		Height:       720,
		VSync:        true,
		PollInterval: 0,
		BacklogOrder: FIFO,
		Slot:         hid.SlotP1Auto,
	}
}

// Validate returns an error if the settings cannot be used.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("window size must be positive (%dx%d)", s.Width, s.Height)
	}
	if s.PollInterval < 0 {
		return fmt.Errorf("poll interval must not be negative (%v)", s.PollInterval)
	}
	if s.BacklogOrder != FIFO && s.BacklogOrder != LIFO {
		return fmt.Errorf("unknown backlog order (%v)", s.BacklogOrder)
	}
	return nil
}
