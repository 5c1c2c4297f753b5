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

// Package glcontext implements a window backend with an OpenGL 3.2 core
// profile context. The context is made current on the calling goroutine,
// which is locked to its OS thread, and the GL function pointers are loaded
// before Open() returns.
//
// The package registers itself with the window package when imported.
package glcontext

import (
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/logger"
	"github.com/jetsetilly/nxwindow/window"
	"github.com/veandco/go-sdl2/sdl"
)

// Name of the backend as registered with the window package.
const Name = "gl"

// Sentinal error patterns.
const (
	SDLError = "glcontext: sdl: %v"
	GLError  = "glcontext: gl: %v"
)

// removes the next event from the SDL event queue. returns nil if the queue
// is empty
var pollEvent = sdl.PollEvent

// the context most recently made current. every context is created and made
// current on the main thread so there is only ever one current context
var current *Context

func init() {
	window.RegisterBackend(Name, func(settings window.Settings) (window.Backend, error) {
		return Open(settings)
	})
}

// list of swap interval values expected by sdl.GLSetSwapInterval()
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

// Context implements the window.GLBackend and window.CloseRequester
// interfaces.
type Context struct {
	window  *sdl.Window
	context sdl.GLContext

	// a quit or window close event has been seen
	closeRequested bool
}

// Open a new SDL window with an OpenGL context.
func Open(settings window.Settings) (*Context, error) {
	runtime.LockOSThread()

	err := sdl.InitSubSystem(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	ctx := &Context{}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		_ = ctx.destroy()
		return nil, curated.Errorf(SDLError, err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		_ = ctx.destroy()
		return nil, curated.Errorf(SDLError, err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		_ = ctx.destroy()
		return nil, curated.Errorf(SDLError, err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		_ = ctx.destroy()
		return nil, curated.Errorf(SDLError, err)
	}
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	ctx.window, err = sdl.CreateWindow(settings.Title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(settings.Width), int32(settings.Height),
		uint32(sdl.WINDOW_OPENGL)|uint32(sdl.WINDOW_ALLOW_HIGHDPI)|uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		_ = ctx.destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	ctx.context, err = ctx.window.GLCreateContext()
	if err != nil {
		_ = ctx.destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	err = ctx.MakeCurrent()
	if err != nil {
		_ = ctx.destroy()
		return nil, err
	}

	err = gl.Init()
	if err != nil {
		_ = ctx.destroy()
		return nil, curated.Errorf(GLError, err)
	}

	interval := syncImmediateUpdate
	if settings.VSync {
		interval = syncWithVerticalRetrace
	}
	err = sdl.GLSetSwapInterval(interval)
	if err != nil {
		logger.Logf(logger.Allow, "glcontext", "GLSetSwapInterval(%d): %v", interval, err)
	}

	logger.Logf(logger.Allow, "glcontext", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "glcontext", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "glcontext", "version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return ctx, nil
}

// Size implements the window.Backend interface.
func (ctx *Context) Size() (int, int) {
	w, h := ctx.window.GetSize()
	return int(w), int(h)
}

// DrawSize implements the window.Backend interface.
func (ctx *Context) DrawSize() (int, int) {
	w, h := ctx.window.GLGetDrawableSize()
	return int(w), int(h)
}

// SwapBuffers implements the window.Backend interface.
func (ctx *Context) SwapBuffers() error {
	ctx.window.GLSwap()
	return nil
}

// GetProcAddress implements the window.GLBackend interface.
func (ctx *Context) GetProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

// IsCurrent implements the window.GLBackend interface.
func (ctx *Context) IsCurrent() bool {
	return ctx.context != nil && current == ctx
}

// MakeCurrent implements the window.GLBackend interface.
func (ctx *Context) MakeCurrent() error {
	err := ctx.window.GLMakeCurrent(ctx.context)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	current = ctx
	return nil
}

// CloseRequested implements the window.CloseRequester interface. The SDL event
// queue is emptied on every call and a close request, once seen, is
// remembered.
func (ctx *Context) CloseRequested() bool {
	for ev := pollEvent(); ev != nil; ev = pollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			ctx.closeRequested = true
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				ctx.closeRequested = true
			}
		}
	}
	return ctx.closeRequested
}

// Destroy implements the window.Backend interface.
func (ctx *Context) Destroy() error {
	return ctx.destroy()
}

func (ctx *Context) destroy() error {
	var err error

	if ctx.context != nil {
		sdl.GLDeleteContext(ctx.context)
		ctx.context = nil
	}
	if current == ctx {
		current = nil
	}
	if ctx.window != nil {
		err = ctx.window.Destroy()
		ctx.window = nil
	}

	sdl.QuitSubSystem(sdl.INIT_VIDEO)

	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}
