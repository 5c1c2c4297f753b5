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
	"runtime"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/nxwindow/assert"
	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/logger"
	"github.com/jetsetilly/nxwindow/userinput"
)

// Window is a presentation backend paired with an input source and an event
// backlog.
type Window struct {
	owner assert.Owner

	backend Backend
	source  hid.Source
	slot    hid.Slot
	clock   Clock

	backlog Backlog

	// these values can be changed by the preferences system from another
	// goroutine
	pollInterval atomic.Int64 // time.Duration
	backlogOrder atomic.Int32 // BacklogOrder

	shouldClose bool

	// number of calls to PollEvent()
	polls uint64
}

// New is the preferred method of initialisation for the Window type. Use
// Build() to create a Window with a registered backend.
func New(backend Backend, source hid.Source, settings Settings) *Window {
	w := &Window{
		backend: backend,
		source:  source,
		slot:    settings.Slot,
		clock:   systemClock{},
	}
	w.SetPollInterval(settings.PollInterval)
	w.SetBacklogOrder(settings.BacklogOrder)
	return w
}

// SetClock changes the source of time used by WaitEventTimeout(). Intended for
// testing.
func (w *Window) SetClock(c Clock) {
	w.owner.Claim()
	w.clock = c
}

// SetPollInterval changes the time slept between unsuccessful polls. A value of
// zero or less yields the goroutine instead. Safe to call from any goroutine.
func (w *Window) SetPollInterval(d time.Duration) {
	w.pollInterval.Store(int64(max(d, 0)))
}

// PollInterval returns the current poll interval.
func (w *Window) PollInterval() time.Duration {
	return time.Duration(w.pollInterval.Load())
}

// SetBacklogOrder changes the order in which events are delivered. Safe to
// call from any goroutine.
func (w *Window) SetBacklogOrder(order BacklogOrder) {
	w.backlogOrder.Store(int32(order))
}

// BacklogOrder returns the current backlog order.
func (w *Window) BacklogOrder() BacklogOrder {
	return BacklogOrder(w.backlogOrder.Load())
}

// PollEvent refreshes the input source, adds any new events to the backlog
// and returns a single event from the backlog. Returns false if there are no
// events waiting.
func (w *Window) PollEvent() (userinput.Event, bool) {
	w.owner.Claim()

	w.polls++
	w.source.Refresh()

	for _, state := range []userinput.KeyState{userinput.Pressed, userinput.Released, userinput.Held} {
		keys := w.source.ReadMask(state, w.slot)
		w.backlog.Push(userinput.Decode(userinput.ControllerP1, state, keys)...)
	}

	w.backlog.Order = w.BacklogOrder()
	return w.backlog.Pop()
}

// WaitEvent polls until an event is available. There is no way to cancel the
// wait other than by providing input.
func (w *Window) WaitEvent() userinput.Event {
	for {
		if ev, ok := w.PollEvent(); ok {
			return ev
		}
		w.idle(false, 0)
	}
}

// WaitEventTimeout polls until an event is available or until the timeout has
// elapsed. A timeout of zero or less polls exactly once. Returns false if the
// timeout elapsed without an event.
func (w *Window) WaitEventTimeout(timeout time.Duration) (userinput.Event, bool) {
	start := w.clock.Now()

	for {
		if ev, ok := w.PollEvent(); ok {
			return ev, true
		}

		if timeout <= 0 {
			return nil, false
		}

		// polling continues while the elapsed time is less than or equal to
		// the timeout
		remaining := timeout - w.clock.Now().Sub(start)
		if remaining < 0 {
			return nil, false
		}

		w.idle(true, remaining)
	}
}

// idle between polls. if there is a deadline the sleep never extends beyond
// the remaining duration.
func (w *Window) idle(deadline bool, remaining time.Duration) {
	d := w.PollInterval()
	if deadline {
		d = min(d, remaining)
	}
	if d <= 0 {
		runtime.Gosched()
		return
	}
	w.clock.Sleep(d)
}

// Backlog returns the number of events waiting to be delivered.
func (w *Window) Backlog() int {
	w.owner.Claim()
	return w.backlog.Len()
}

// Polls returns the number of calls to PollEvent() since the window was
// created.
func (w *Window) Polls() uint64 {
	w.owner.Claim()
	return w.polls
}

// ShouldClose returns true if SetShouldClose(true) has been called or if the
// backend reports that the user has asked for the window to close.
func (w *Window) ShouldClose() bool {
	w.owner.Claim()
	if w.shouldClose {
		return true
	}
	if cr, ok := w.backend.(CloseRequester); ok && cr.CloseRequested() {
		logger.Log(logger.Allow, "window", "close requested")
		w.shouldClose = true
	}
	return w.shouldClose
}

// SetShouldClose sets or clears the close flag.
func (w *Window) SetShouldClose(v bool) {
	w.owner.Claim()
	w.shouldClose = v
}

// Size returns the size of the window in screen coordinates.
func (w *Window) Size() (int, int) {
	w.owner.Claim()
	return w.backend.Size()
}

// DrawSize returns the size of the drawable area in pixels.
func (w *Window) DrawSize() (int, int) {
	w.owner.Claim()
	return w.backend.DrawSize()
}

// SwapBuffers presents the most recent frame.
func (w *Window) SwapBuffers() error {
	w.owner.Claim()
	return w.backend.SwapBuffers()
}

// GL returns the backend as a GLBackend if it presents with OpenGL.
func (w *Window) GL() (GLBackend, bool) {
	w.owner.Claim()
	gl, ok := w.backend.(GLBackend)
	return gl, ok
}

// Backend returns the presentation backend of the window.
func (w *Window) Backend() Backend {
	return w.backend
}

// Source returns the input source of the window.
func (w *Window) Source() hid.Source {
	return w.source
}

// Destroy the window. The input source is not closed.
func (w *Window) Destroy() error {
	w.owner.Claim()
	defer w.owner.Release()
	if w.backlog.Len() > 0 {
		logger.Logf(logger.Allow, "window", "destroyed with %d undelivered events", w.backlog.Len())
	}
	return w.backend.Destroy()
}
