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
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/hid/joydev"
	"github.com/jetsetilly/nxwindow/limiter"
	"github.com/jetsetilly/nxwindow/logger"
	"github.com/jetsetilly/nxwindow/modalflag"
	"github.com/jetsetilly/nxwindow/paths"
	"github.com/jetsetilly/nxwindow/prefs"
	"github.com/jetsetilly/nxwindow/recorder"
	"github.com/jetsetilly/nxwindow/statsview"
	"github.com/jetsetilly/nxwindow/userinput"
	"github.com/jetsetilly/nxwindow/version"
	"github.com/jetsetilly/nxwindow/window"

	// presentation backends register themselves with the window package
	_ "github.com/jetsetilly/nxwindow/window/framebuffer"
	_ "github.com/jetsetilly/nxwindow/window/glcontext"
	"github.com/jetsetilly/nxwindow/window/headless"
)

// file extension for input recordings
const recordingExt = ".nxr"

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

// SDL requires that window and event functions are called from the main
// thread. locking the main goroutine to its thread during initialisation
// guarantees that main() runs on the main thread.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	// #ctrlc cancels the context. the event loops check the context between
	// waits
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	exitVal := launch(ctx, os.Args[1:])
	stop()

	os.Exit(exitVal)
}

func launch(ctx context.Context, args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "RECORD", "PLAYBACK", "DECODE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, false)

	case "RECORD":
		err = run(ctx, md, true)

	case "PLAYBACK":
		err = playback(ctx, md)

	case "DECODE":
		err = decode(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.Get())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return 0
}

// flags shared by the modes that open a window.
type windowFlags struct {
	backend   *string
	fps       *int
	json      *bool
	log       *bool
	prefs     *string
	statsview *bool
}

func addWindowFlags(md *modalflag.Modes, defaultBackend string) windowFlags {
	return windowFlags{
		backend:   md.AddChoice("backend", defaultBackend, window.Backends(), "presentation backend"),
		fps:       md.AddInt("fps", 0, "limit the rate of buffer swaps (0 for no limit)"),
		json:      md.AddBool("json", false, "print events as JSON"),
		log:       md.AddBool("log", false, "echo debugging log to stderr"),
		prefs:     md.AddString("prefs", "", "preferences to apply (eg. \"window.pollinterval::1ms; window.backlog.lifo::true\")"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
	}
}

// limiter returns nil if the rate of buffer swaps is not limited.
func (flgs windowFlags) limiter() (*limiter.Limiter, error) {
	if *flgs.fps == 0 {
		return nil, nil
	}
	return limiter.New(*flgs.fps)
}

// apply the flags that do not depend on the window being created.
func (flgs windowFlags) apply(ctx context.Context, md *modalflag.Modes) {
	if *flgs.log {
		logger.SetEcho(os.Stderr, true)
	} else {
		logger.SetEcho(nil, false)
	}

	logger.Logf(logger.Allow, "nxwindow", "%s (%s)", version.Get(), runtime.Version())

	if *flgs.prefs != "" {
		prefs.PushCommandLineStack(*flgs.prefs)
	}

	if *flgs.statsview {
		statsview.Launch(ctx, md.Output, "")
	}
}

// open a window with the backend named in the flags. the window preferences
// are loaded and attached to the window so that changes to the preferences
// file take effect immediately.
func openWindow(ctx context.Context, flgs windowFlags, src hid.Source) (*window.Window, error) {
	prf, err := window.NewPreferences("")
	if err != nil {
		return nil, err
	}

	settings := prf.Apply(window.DefaultSettings())
	settings.Backend = *flgs.backend

	w, err := window.Build(settings, src)
	if err != nil {
		return nil, err
	}

	prf.Attach(w)

	// a failure to watch the preferences file is not fatal
	err = prf.Watch(ctx)
	if err != nil {
		logger.Log(logger.Allow, "nxwindow", err)
	}

	return w, nil
}

func run(ctx context.Context, md *modalflag.Modes, record bool) error {
	md.NewMode()

	flgs := addWindowFlags(md, headless.Name)
	input := md.AddChoice("input", "sdl", sourceNames, "input source")
	device := md.AddString("device", joydev.DefaultPath, "joystick device (joydev input) or recording file (playback input)")
	wait := md.AddDuration("wait", 100*time.Millisecond, "longest wait for an event before checking for a close request")

	var output *string
	if record {
		output = md.AddString("output", "", "recording file (default: a unique filename)")
		md.AdditionalHelp("Every input tick with a non-empty mask is written to the recording.")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	flgs.apply(ctx, md)

	lim, err := flgs.limiter()
	if err != nil {
		return err
	}
	if lim != nil {
		defer lim.Stop()
	}

	src, closeSource, err := openSource(*input, *device)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeSource(); err != nil {
			logger.Log(logger.Allow, "nxwindow", err)
		}
	}()

	var rec *recorder.Recorder
	if record {
		fn := *output
		if fn == "" {
			fn = paths.UniqueFilename("recording", *input) + recordingExt
		}

		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()

		rec, err = recorder.NewRecorder(f, src, hid.SlotP1Auto)
		if err != nil {
			return err
		}
		src = rec

		fmt.Fprintf(md.Output, "recording to %s\n", fn)
	}

	w, err := openWindow(ctx, flgs, src)
	if err != nil {
		return err
	}

	out := &eventWriter{output: md.Output, json: *flgs.json}
	err = eventLoop(ctx, w, out, *wait, lim, nil)

	if rec != nil {
		if endErr := rec.End(); err == nil {
			err = endErr
		}
	}

	if destroyErr := w.Destroy(); err == nil {
		err = destroyErr
	}

	return err
}

func playback(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	flgs := addWindowFlags(md, headless.Name)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires exactly one recording file", md)
	}

	flgs.apply(ctx, md)

	lim, err := flgs.limiter()
	if err != nil {
		return err
	}
	if lim != nil {
		defer lim.Stop()
	}

	plb, err := recorder.Open(md.GetArg(0))
	if err != nil {
		return err
	}

	w, err := openWindow(ctx, flgs, plb)
	if err != nil {
		return err
	}

	// the recording is replayed as quickly as possible. the loop ends when
	// every tick has been replayed and the backlog is empty
	out := &eventWriter{output: md.Output, json: *flgs.json}
	err = eventLoop(ctx, w, out, 0, lim, plb.Finished)

	logger.Logf(logger.Allow, "nxwindow", "playback: %s", plb)

	if destroyErr := w.Destroy(); err == nil {
		err = destroyErr
	}

	return err
}

// eventLoop prints every event delivered by the window until the window
// should close or the context is cancelled. The quit combination sets the
// close flag of the window.
//
// The loop also ends if the done function returns true. The done function is
// only consulted when there are no events waiting.
//
// Buffers are swapped on every iteration unless a limiter is given, in which
// case they are swapped only when the limiter has triggered.
func eventLoop(ctx context.Context, w *window.Window, out *eventWriter, wait time.Duration, lim *limiter.Limiter, done func() bool) error {
	var ctrl userinput.Controllers

	for ctx.Err() == nil && !w.ShouldClose() {
		ev, ok := w.WaitEventTimeout(wait)
		if ok {
			err := ctrl.HandleUserInput(ev, out)
			if err != nil {
				return err
			}
			if ctrl.Quit {
				logger.Log(logger.Allow, "nxwindow", "quit combination")
				w.SetShouldClose(true)
			}
		} else if done != nil && done() {
			return nil
		}

		if lim == nil || lim.HasWaited() {
			err := w.SwapBuffers()
			if err != nil {
				return err
			}
		}
	}

	return nil
}
