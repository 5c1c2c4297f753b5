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

// Package window bridges a polled input source to an event queue and pairs it
// with a presentation backend.
//
// A Window owns an event backlog and an injected hid.Source. Every call to
// PollEvent() refreshes the source, reads the pressed, released and held masks
// (in that order), decodes each of them into the backlog and then removes a
// single event from the backlog. The source is always refreshed, even when the
// backlog already has events waiting.
//
// WaitEvent() and WaitEventTimeout() are built on PollEvent(). Between polls
// that produce nothing they either yield the goroutine or, if a poll interval
// has been set, sleep for that interval. A timed wait never sleeps beyond its
// deadline.
//
// The input handling is the same for every presentation backend. Backends are
// registered by name with RegisterBackend(), usually from the init() function
// of the backend's package, and a window is created with Build():
//
//	import _ "github.com/jetsetilly/nxwindow/window/headless"
//
//	settings := window.DefaultSettings()
//	settings.Backend = "headless"
//	win, err := window.Build(settings, source)
//
// A Window must only be used by one goroutine. Building with the assertions
// tag causes the window to panic if it is used by more than one goroutine.
package window
