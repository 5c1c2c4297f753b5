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
	"errors"
	"testing"
	"time"
	"unsafe"

	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/test"
	"github.com/jetsetilly/nxwindow/userinput"
	"github.com/jetsetilly/nxwindow/window"
)

// recordingSource is a hid.Source that records the order of calls made to it
type recordingSource struct {
	hid.Scripted
	calls []string
	slots []hid.Slot
}

func newRecordingSource(ticks ...hid.Tick) *recordingSource {
	return &recordingSource{Scripted: *hid.NewScripted(ticks...)}
}

func (src *recordingSource) Refresh() {
	src.calls = append(src.calls, "refresh")
	src.Scripted.Refresh()
}

func (src *recordingSource) ReadMask(state userinput.KeyState, slot hid.Slot) uint32 {
	src.calls = append(src.calls, state.String())
	src.slots = append(src.slots, slot)
	return src.Scripted.ReadMask(state, slot)
}

type fakeBackend struct {
	swaps          int
	destroyed      bool
	closeRequested bool
	swapErr        error
}

func (b *fakeBackend) Size() (int, int)     { return 640, 480 }
func (b *fakeBackend) DrawSize() (int, int) { return 1280, 960 }
func (b *fakeBackend) SwapBuffers() error {
	b.swaps++
	return b.swapErr
}
func (b *fakeBackend) Destroy() error {
	b.destroyed = true
	return nil
}

type closingBackend struct {
	fakeBackend
}

func (b *closingBackend) CloseRequested() bool {
	return b.closeRequested
}

type glBackend struct {
	fakeBackend
}

func (b *glBackend) GetProcAddress(string) unsafe.Pointer { return nil }
func (b *glBackend) IsCurrent() bool                      { return true }
func (b *glBackend) MakeCurrent() error                   { return nil }

// fakeClock advances by step every time Now() is called and by the requested
// duration every time Sleep() is called
type fakeClock struct {
	now    time.Time
	step   time.Duration
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func newWindow(src hid.Source, settings window.Settings) (*window.Window, *fakeBackend) {
	b := &fakeBackend{}
	return window.New(b, src, settings), b
}

func TestPollRefreshesBeforePop(t *testing.T) {
	src := newRecordingSource()
	w, _ := newWindow(src, window.DefaultSettings())

	_, ok := w.PollEvent()
	test.ExpectFailure(t, ok)

	test.DemandEquality(t, len(src.calls), 4)
	test.ExpectEquality(t, src.calls[0], "refresh")
	test.ExpectEquality(t, src.calls[1], "pressed")
	test.ExpectEquality(t, src.calls[2], "released")
	test.ExpectEquality(t, src.calls[3], "held")

	for _, s := range src.slots {
		test.ExpectEquality(t, s, hid.SlotP1Auto)
	}
}

func TestPollRefreshesWithNonEmptyBacklog(t *testing.T) {
	src := newRecordingSource(hid.Tick{Pressed: 0x3})
	w, _ := newWindow(src, window.DefaultSettings())

	_, ok := w.PollEvent()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w.Backlog(), 1)

	// the second event is already in the backlog but the source is still
	// refreshed
	_, ok = w.PollEvent()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, src.Refreshes(), 2)
	test.ExpectEquality(t, w.Polls(), 2)
}

func TestEndToEnd(t *testing.T) {
	src := newRecordingSource(hid.Tick{Pressed: 0x1, Held: 0x1})
	w, _ := newWindow(src, window.DefaultSettings())

	ev, ok := w.PollEvent()
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventGamepadButton{
		ID:     userinput.ControllerP1,
		Button: userinput.ButtonA,
		Down:   true,
	})

	// held keys do not produce events
	_, ok = w.PollEvent()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, w.Backlog(), 0)
}

func TestFIFO(t *testing.T) {
	src := newRecordingSource(hid.Tick{Pressed: 0x1, Released: 0x2})
	w, _ := newWindow(src, window.DefaultSettings())

	ev, _ := w.PollEvent()
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventGamepadButton{ID: 1, Button: userinput.ButtonA, Down: true})
	ev, _ = w.PollEvent()
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventGamepadButton{ID: 1, Button: userinput.ButtonB, Down: false})
	_, ok := w.PollEvent()
	test.ExpectFailure(t, ok)
}

func TestLIFO(t *testing.T) {
	src := newRecordingSource(hid.Tick{Pressed: 0x1, Released: 0x2})
	settings := window.DefaultSettings()
	settings.BacklogOrder = window.LIFO
	w, _ := newWindow(src, settings)

	ev, _ := w.PollEvent()
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventGamepadButton{ID: 1, Button: userinput.ButtonB, Down: false})
	ev, _ = w.PollEvent()
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventGamepadButton{ID: 1, Button: userinput.ButtonA, Down: true})
}

func TestHatEvent(t *testing.T) {
	src := newRecordingSource(hid.Tick{Released: userinput.ButtonLStickUp.Mask()})
	w, _ := newWindow(src, window.DefaultSettings())

	ev, ok := w.PollEvent()
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventGamepadHat{
		ID:        userinput.ControllerP1,
		Hat:       userinput.ButtonLStickUp,
		Direction: userinput.HatUp,
		Down:      false,
	})
}

func TestWaitEvent(t *testing.T) {
	src := newRecordingSource(hid.Tick{}, hid.Tick{}, hid.Tick{Pressed: 0x4})
	w, _ := newWindow(src, window.DefaultSettings())

	ev := w.WaitEvent()
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventGamepadButton{ID: 1, Button: userinput.ButtonX, Down: true})
	test.ExpectEquality(t, src.Refreshes(), 3)
}

func TestWaitEventSleeps(t *testing.T) {
	src := newRecordingSource(hid.Tick{}, hid.Tick{Pressed: 0x4})
	settings := window.DefaultSettings()
	settings.PollInterval = time.Millisecond
	w, _ := newWindow(src, settings)

	clk := &fakeClock{}
	w.SetClock(clk)

	_ = w.WaitEvent()
	test.DemandEquality(t, len(clk.sleeps), 1)
	test.ExpectEquality(t, clk.sleeps[0], time.Millisecond)
}

func TestZeroTimeoutPollsOnce(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		src := newRecordingSource(hid.Tick{}, hid.Tick{Pressed: 0x1})
		w, _ := newWindow(src, window.DefaultSettings())
		w.SetClock(&fakeClock{})

		_, ok := w.WaitEventTimeout(d)
		test.ExpectFailure(t, ok, d)
		test.ExpectEquality(t, src.Refreshes(), 1, d)
	}
}

func TestZeroTimeoutWithEvent(t *testing.T) {
	src := newRecordingSource(hid.Tick{Pressed: 0x1})
	w, _ := newWindow(src, window.DefaultSettings())

	ev, ok := w.WaitEventTimeout(0)
	test.ExpectSuccess(t, ok)
	test.ExpectInequality[userinput.Event](t, ev, nil)
}

func TestTimeoutExpires(t *testing.T) {
	src := newRecordingSource()
	settings := window.DefaultSettings()
	settings.PollInterval = 3 * time.Millisecond
	w, _ := newWindow(src, settings)

	clk := &fakeClock{step: time.Microsecond}
	w.SetClock(clk)

	_, ok := w.WaitEventTimeout(10 * time.Millisecond)
	test.ExpectFailure(t, ok)

	// sleeps never extend beyond the deadline
	var total time.Duration
	for _, d := range clk.sleeps {
		total += d
		test.ExpectSuccess(t, d <= 3*time.Millisecond)
	}
	test.ExpectSuccess(t, total <= 10*time.Millisecond)

	// polls at roughly 0, 3, 6, 9 and 10ms
	test.ExpectEquality(t, src.Refreshes(), 5)
}

// seqClock returns the listed times, relative to the zero time, in order. the
// last time is repeated once the list is exhausted
type seqClock struct {
	times []time.Duration
	calls int
}

func (c *seqClock) Now() time.Time {
	i := min(c.calls, len(c.times)-1)
	c.calls++
	return time.Time{}.Add(c.times[i])
}

func (c *seqClock) Sleep(time.Duration) {}

func TestTimeoutBoundary(t *testing.T) {
	src := newRecordingSource()
	w, _ := newWindow(src, window.DefaultSettings())

	// an elapsed time equal to the timeout continues polling. an elapsed
	// time greater than the timeout ends it
	w.SetClock(&seqClock{times: []time.Duration{0, 5 * time.Millisecond, 5*time.Millisecond + 1}})

	_, ok := w.WaitEventTimeout(5 * time.Millisecond)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, src.Refreshes(), 2)
}

func TestTimeoutBoundaryEvent(t *testing.T) {
	src := newRecordingSource(hid.Tick{}, hid.Tick{Pressed: 0x1})
	w, _ := newWindow(src, window.DefaultSettings())
	w.SetClock(&seqClock{times: []time.Duration{0, 5 * time.Millisecond, 5*time.Millisecond + 1}})

	_, ok := w.WaitEventTimeout(5 * time.Millisecond)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, src.Refreshes(), 2)
}

func TestTimeoutYields(t *testing.T) {
	src := newRecordingSource()
	w, _ := newWindow(src, window.DefaultSettings())

	clk := &fakeClock{step: time.Millisecond}
	w.SetClock(clk)

	_, ok := w.WaitEventTimeout(5 * time.Millisecond)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, len(clk.sleeps), 0)
	test.ExpectSuccess(t, src.Refreshes() > 1)
}

func TestTimeoutEventArrives(t *testing.T) {
	src := newRecordingSource(hid.Tick{}, hid.Tick{}, hid.Tick{Released: 0x1})
	settings := window.DefaultSettings()
	settings.PollInterval = time.Millisecond
	w, _ := newWindow(src, settings)
	w.SetClock(&fakeClock{})

	ev, ok := w.WaitEventTimeout(time.Second)
	test.DemandSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventGamepadButton{ID: 1, Button: userinput.ButtonA, Down: false})
	test.ExpectEquality(t, src.Refreshes(), 3)
}

func TestLiveSettings(t *testing.T) {
	w, _ := newWindow(newRecordingSource(), window.DefaultSettings())

	w.SetPollInterval(-time.Second)
	test.ExpectEquality(t, w.PollInterval(), 0)
	w.SetPollInterval(time.Second)
	test.ExpectEquality(t, w.PollInterval(), time.Second)

	w.SetBacklogOrder(window.LIFO)
	test.ExpectEquality(t, w.BacklogOrder(), window.LIFO)
}

func TestSurface(t *testing.T) {
	w, b := newWindow(newRecordingSource(), window.DefaultSettings())

	width, height := w.Size()
	test.ExpectEquality(t, width, 640)
	test.ExpectEquality(t, height, 480)
	width, height = w.DrawSize()
	test.ExpectEquality(t, width, 1280)
	test.ExpectEquality(t, height, 960)

	test.ExpectSuccess(t, w.SwapBuffers())
	test.ExpectEquality(t, b.swaps, 1)

	b.swapErr = errors.New("swap")
	test.ExpectFailure(t, w.SwapBuffers())

	_, ok := w.GL()
	test.ExpectFailure(t, ok)

	test.ExpectFailure(t, w.ShouldClose())
	w.SetShouldClose(true)
	test.ExpectSuccess(t, w.ShouldClose())
	w.SetShouldClose(false)
	test.ExpectFailure(t, w.ShouldClose())

	test.ExpectSuccess(t, w.Destroy())
	test.ExpectSuccess(t, b.destroyed)
}

func TestCloseRequested(t *testing.T) {
	b := &closingBackend{}
	w := window.New(b, newRecordingSource(), window.DefaultSettings())

	test.ExpectFailure(t, w.ShouldClose())
	b.closeRequested = true
	test.ExpectSuccess(t, w.ShouldClose())

	// the request is latched
	b.closeRequested = false
	test.ExpectSuccess(t, w.ShouldClose())
}

func TestGLBackend(t *testing.T) {
	w := window.New(&glBackend{}, newRecordingSource(), window.DefaultSettings())
	gl, ok := w.GL()
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, gl.IsCurrent())
	test.ExpectSuccess(t, gl.MakeCurrent())
}

func TestBuild(t *testing.T) {
	window.RegisterBackend("Fake", func(s window.Settings) (window.Backend, error) {
		return &fakeBackend{}, nil
	})
	window.RegisterBackend("broken", func(s window.Settings) (window.Backend, error) {
		return nil, errors.New("no display")
	})

	settings := window.DefaultSettings()
	settings.Backend = "fake"
	w, err := window.Build(settings, newRecordingSource())
	test.DemandSuccess(t, err)
	_, ok := w.Backend().(*fakeBackend)
	test.ExpectSuccess(t, ok)

	settings.Backend = "missing"
	_, err = window.Build(settings, newRecordingSource())
	test.ExpectSuccess(t, curated.Is(err, window.UnknownBackend))

	settings.Backend = "broken"
	_, err = window.Build(settings, newRecordingSource())
	test.ExpectSuccess(t, curated.Is(err, window.BackendError))

	settings.Backend = "fake"
	_, err = window.Build(settings, nil)
	test.ExpectSuccess(t, curated.Is(err, window.NoSource))

	settings.Width = 0
	_, err = window.Build(settings, newRecordingSource())
	test.ExpectSuccess(t, curated.Is(err, window.InvalidSettings))

	names := window.Backends()
	test.ExpectSuccess(t, len(names) >= 2)
}
