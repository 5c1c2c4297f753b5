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
	"context"
	"time"

	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/paths"
	"github.com/jetsetilly/nxwindow/prefs"
)

// Preferences defines and collates all the preference values used by the
// window package.
type Preferences struct {
	dsk *prefs.Disk

	PollInterval prefs.Duration
	BacklogLIFO  prefs.Bool
	VSync        prefs.Bool
	Width        prefs.Int
	Height       prefs.Int
	Title        prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If path is empty the default preferences file is used. Values are
// loaded from the file if it exists.
func NewPreferences(path string) (*Preferences, error) {
	if path == "" {
		var err error
		path, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p := &Preferences{}
	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("window.pollinterval", &p.PollInterval)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.backlog.lifo", &p.BacklogLIFO)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.vsync", &p.VSync)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.width", &p.Width)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.height", &p.Height)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.title", &p.Title)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	def := DefaultSettings()
	if err := p.PollInterval.Set(def.PollInterval); err != nil {
		return err
	}
	if err := p.BacklogLIFO.Set(def.BacklogOrder == LIFO); err != nil {
		return err
	}
	if err := p.VSync.Set(def.VSync); err != nil {
		return err
	}
	if err := p.Width.Set(def.Width); err != nil {
		return err
	}
	if err := p.Height.Set(def.Height); err != nil {
		return err
	}
	return p.Title.Set(def.Title)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Watch the preferences file and reload the values when it changes. Watching
// stops when the context is cancelled.
func (p *Preferences) Watch(ctx context.Context) error {
	return p.dsk.Watch(ctx, nil)
}

// Apply the preference values to the settings. Fields that have no preference
// are left unchanged.
func (p *Preferences) Apply(s Settings) Settings {
	s.PollInterval = p.PollInterval.Get().(time.Duration)
	s.BacklogOrder = FIFO
	if p.BacklogLIFO.Get().(bool) {
		s.BacklogOrder = LIFO
	}
	s.VSync = p.VSync.Get().(bool)
	s.Width = p.Width.Get().(int)
	s.Height = p.Height.Get().(int)
	s.Title = p.Title.String()
	return s
}

// Attach the preferences to a window so that changes to the poll interval and
// the backlog order take effect immediately.
func (p *Preferences) Attach(w *Window) {
	p.PollInterval.SetHookPost(func(v prefs.Value) error {
		w.SetPollInterval(v.(time.Duration))
		return nil
	})
	p.BacklogLIFO.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			w.SetBacklogOrder(LIFO)
		} else {
			w.SetBacklogOrder(FIFO)
		}
		return nil
	})
}
