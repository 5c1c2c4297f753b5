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

package window_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/test"
	"github.com/jetsetilly/nxwindow/window"
)

func TestPreferencesDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences.toml")
	p, err := window.NewPreferences(pth)
	test.DemandSuccess(t, err)

	s := p.Apply(window.DefaultSettings())
	test.ExpectEquality(t, s, window.DefaultSettings())
}

func TestPreferencesLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences.toml")
	err := os.WriteFile(pth, []byte(`
[window]
pollinterval = "5ms"
vsync = false
width = 640
height = 480
title = "test"

[window.backlog]
lifo = true
`), 0o600)
	test.DemandSuccess(t, err)

	p, err := window.NewPreferences(pth)
	test.DemandSuccess(t, err)

	s := p.Apply(window.DefaultSettings())
	test.ExpectEquality(t, s.PollInterval, 5*time.Millisecond)
	test.ExpectEquality(t, s.BacklogOrder, window.LIFO)
	test.ExpectFailure(t, s.VSync)
	test.ExpectEquality(t, s.Width, 640)
	test.ExpectEquality(t, s.Height, 480)
	test.ExpectEquality(t, s.Title, "test")

	// fields without a preference are unchanged
	test.ExpectEquality(t, s.Backend, "headless")
}

func TestPreferencesSaveAndReload(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences.toml")
	p, err := window.NewPreferences(pth)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.Width.Set(800))
	test.DemandSuccess(t, p.PollInterval.Set("2ms"))
	test.DemandSuccess(t, p.Save())

	q, err := window.NewPreferences(pth)
	test.DemandSuccess(t, err)
	s := q.Apply(window.DefaultSettings())
	test.ExpectEquality(t, s.Width, 800)
	test.ExpectEquality(t, s.PollInterval, 2*time.Millisecond)
}

func TestPreferencesAttach(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences.toml")
	p, err := window.NewPreferences(pth)
	test.DemandSuccess(t, err)

	w := window.New(&fakeBackend{}, hid.NewScripted(), p.Apply(window.DefaultSettings()))
	p.Attach(w)

	test.DemandSuccess(t, p.PollInterval.Set(time.Millisecond))
	test.ExpectEquality(t, w.PollInterval(), time.Millisecond)

	test.DemandSuccess(t, p.BacklogLIFO.Set(true))
	test.ExpectEquality(t, w.BacklogOrder(), window.LIFO)
	test.DemandSuccess(t, p.BacklogLIFO.Set(false))
	test.ExpectEquality(t, w.BacklogOrder(), window.FIFO)

	// negative poll intervals are rejected by the preference and the window
	// is unchanged
	test.ExpectFailure(t, p.PollInterval.Set(-time.Second))
	test.ExpectEquality(t, w.PollInterval(), time.Millisecond)
}
