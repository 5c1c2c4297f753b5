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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/modalflag"
	"github.com/jetsetilly/nxwindow/recorder"
	"github.com/jetsetilly/nxwindow/test"
	"github.com/jetsetilly/nxwindow/userinput"
	"github.com/jetsetilly/nxwindow/window"
	"github.com/jetsetilly/nxwindow/window/headless"
)

func TestParseMask(t *testing.T) {
	m, err := parseMask("0x2001")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, 0x2001)

	m, err = parseMask("3")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, 3)

	m, err = parseMask("A+DUp")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, userinput.ButtonA.Mask()|userinput.ButtonDUp.Mask())

	_, err = parseMask("A+Start")
	test.ExpectFailure(t, err)
}

func TestDecodeMode(t *testing.T) {
	tw := &test.CompareWriter{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-state", "released", "0x1", "DUp"})

	test.DemandSuccess(t, decode(md))
	test.ExpectSuccess(t, tw.Compare("controller 1: button A release\ncontroller 1: hat DUp up release\n"), tw.String())
}

func TestDecodeModeHeld(t *testing.T) {
	tw := &test.CompareWriter{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-state", "held", "0xffffffff"})

	test.DemandSuccess(t, decode(md))
	test.ExpectSuccess(t, tw.Compare(""), tw.String())
}

func TestDecodeModeNoMasks(t *testing.T) {
	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})
	test.ExpectFailure(t, decode(md))
}

func TestJSON(t *testing.T) {
	tw := &test.CompareWriter{}
	out := &eventWriter{output: tw, json: true}

	test.DemandSuccess(t, out.HandleButton(1, userinput.ButtonB, true))
	test.DemandSuccess(t, out.HandleHat(1, userinput.ButtonRStickLeft, userinput.HatLeft, false))

	test.ExpectSuccess(t, tw.Compare(
		`{"type":"button","controller":1,"button":"B","id":2,"down":true}`+"\n"+
			`{"type":"hat","controller":1,"button":"RStickLeft","id":21,"direction":"left","down":false}`+"\n"),
		tw.String())
}

func TestEventLoopQuit(t *testing.T) {
	quit := userinput.ButtonPlus.Mask() | userinput.ButtonMinus.Mask()
	src := hid.NewScripted(hid.Tick{}, hid.Tick{Pressed: quit, Held: quit})

	settings := window.DefaultSettings()
	settings.Backend = headless.Name
	w, err := window.Build(settings, src)
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	err = eventLoop(context.Background(), w, &eventWriter{output: tw}, 0, nil, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, w.ShouldClose())
	test.ExpectSuccess(t, tw.Compare("controller 1: button Plus press\ncontroller 1: button Minus press\n"), tw.String())
}

func TestEventLoopCancelled(t *testing.T) {
	settings := window.DefaultSettings()
	w, err := window.Build(settings, hid.NewScripted())
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = eventLoop(ctx, w, &eventWriter{output: &test.CompareWriter{}}, 0, nil, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.Polls(), 0)
}

func TestEventLoopPlayback(t *testing.T) {
	var buf bytes.Buffer
	rec, err := recorder.NewRecorder(&buf, hid.NewScripted(
		hid.Tick{Pressed: 0x1, Held: 0x1},
		hid.Tick{Held: 0x1},
		hid.Tick{Released: 0x1},
		hid.Tick{},
	), hid.SlotP1Auto)
	test.DemandSuccess(t, err)
	for range 4 {
		rec.Refresh()
	}
	test.DemandSuccess(t, rec.End())

	plb, err := recorder.NewPlayback(&buf)
	test.DemandSuccess(t, err)

	w, err := window.Build(window.DefaultSettings(), plb)
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	err = eventLoop(context.Background(), w, &eventWriter{output: tw}, 0, nil, plb.Finished)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, plb.Finished())
	test.ExpectSuccess(t, tw.Compare("controller 1: button A press\ncontroller 1: button A release\n"), tw.String())
}

func TestOpenPlaybackSource(t *testing.T) {
	var buf bytes.Buffer
	rec, err := recorder.NewRecorder(&buf, hid.NewScripted(
		hid.Tick{},
		hid.Tick{Pressed: 0x2, Held: 0x2},
	), hid.SlotP1Auto)
	test.DemandSuccess(t, err)
	rec.Refresh()
	rec.Refresh()
	test.DemandSuccess(t, rec.End())

	fn := filepath.Join(t.TempDir(), "test.nxr")
	test.DemandSuccess(t, os.WriteFile(fn, buf.Bytes(), 0o644))

	src, closeSource, err := openSource("playback", fn)
	test.DemandSuccess(t, err)
	defer func() {
		test.ExpectSuccess(t, closeSource())
	}()

	src.Refresh()
	test.ExpectEquality(t, src.ReadMask(userinput.Pressed, hid.SlotP1Auto), uint32(0))
	src.Refresh()
	test.ExpectEquality(t, src.ReadMask(userinput.Pressed, hid.SlotP1Auto), uint32(0x2))
	test.ExpectEquality(t, src.ReadMask(userinput.Held, hid.SlotP1Auto), uint32(0x2))

	// a missing recording is an error
	_, _, err = openSource("playback", filepath.Join(t.TempDir(), "missing.nxr"))
	test.ExpectFailure(t, err)
}
