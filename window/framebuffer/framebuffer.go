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

package framebuffer

import (
	"runtime"

	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/logger"
	"github.com/jetsetilly/nxwindow/window"
	"github.com/veandco/go-sdl2/sdl"
)

// Name of the backend as registered with the window package.
const Name = "framebuffer"

// Sentinal error patterns.
const (
	SDLError = "framebuffer: sdl: %v"
)

// number of bytes per pixel
const Depth = 4

// removes the next event from the SDL event queue. returns nil if the queue
// is empty
var pollEvent = sdl.PollEvent

func init() {
	window.RegisterBackend(Name, func(settings window.Settings) (window.Backend, error) {
		return Open(settings)
	})
}

// Framebuffer implements the window.Backend and window.CloseRequester
// interfaces.
type Framebuffer struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32

	pixels []byte

	// a quit or window close event has been seen
	closeRequested bool
}

// Open a new SDL window with a framebuffer the size of the window.
func Open(settings window.Settings) (*Framebuffer, error) {
	// SDL video functions must be called from the main thread
	runtime.LockOSThread()

	err := sdl.InitSubSystem(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	fb := &Framebuffer{
		width:  int32(settings.Width),
		height: int32(settings.Height),
	}

	fb.window, err = sdl.CreateWindow(settings.Title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		fb.width, fb.height,
		uint32(sdl.WINDOW_SHOWN)|uint32(sdl.WINDOW_ALLOW_HIGHDPI))
	if err != nil {
		_ = fb.destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if settings.VSync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}

	fb.renderer, err = sdl.CreateRenderer(fb.window, -1, flags)
	if err != nil {
		_ = fb.destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	fb.texture, err = fb.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), fb.width, fb.height)
	if err != nil {
		_ = fb.destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	fb.pixels = make([]byte, fb.width*fb.height*Depth)

	logger.Logf(logger.Allow, "framebuffer", "%dx%d (vsync %v)", fb.width, fb.height, settings.VSync)

	return fb, nil
}

// Framebuffer returns the pixel buffer. Changes to the buffer are presented
// on the next call to SwapBuffers().
func (fb *Framebuffer) Framebuffer() []byte {
	return fb.pixels
}

// Pitch returns the number of bytes in a row of the pixel buffer.
func (fb *Framebuffer) Pitch() int {
	return int(fb.width) * Depth
}

// SetPixel is a convenience function for setting a single pixel in the
// buffer. Coordinates outside of the buffer are ignored.
func (fb *Framebuffer) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= int(fb.width) || y >= int(fb.height) {
		return
	}
	i := y*fb.Pitch() + x*Depth
	fb.pixels[i] = r
	fb.pixels[i+1] = g
	fb.pixels[i+2] = b
	fb.pixels[i+3] = a
}

// Size implements the window.Backend interface.
func (fb *Framebuffer) Size() (int, int) {
	w, h := fb.window.GetSize()
	return int(w), int(h)
}

// DrawSize implements the window.Backend interface.
func (fb *Framebuffer) DrawSize() (int, int) {
	w, h, err := fb.renderer.GetOutputSize()
	if err != nil {
		logger.Log(logger.Allow, "framebuffer", err)
		return fb.Size()
	}
	return int(w), int(h)
}

// SwapBuffers implements the window.Backend interface.
func (fb *Framebuffer) SwapBuffers() error {
	dst, pitch, err := fb.texture.Lock(nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	// the pitch of the texture may be wider than the pitch of the buffer
	src := fb.Pitch()
	for y := 0; y < int(fb.height); y++ {
		copy(dst[y*pitch:y*pitch+src], fb.pixels[y*src:(y+1)*src])
	}
	fb.texture.Unlock()

	err = fb.renderer.Clear()
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	err = fb.renderer.Copy(fb.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	fb.renderer.Present()

	return nil
}

// CloseRequested implements the window.CloseRequester interface. The SDL event
// queue is emptied on every call and a close request, once seen, is
// remembered.
func (fb *Framebuffer) CloseRequested() bool {
	for ev := pollEvent(); ev != nil; ev = pollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			fb.closeRequested = true
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				fb.closeRequested = true
			}
		}
	}
	return fb.closeRequested
}

// Destroy implements the window.Backend interface.
func (fb *Framebuffer) Destroy() error {
	return fb.destroy()
}

func (fb *Framebuffer) destroy() error {
	var err error

	if fb.texture != nil {
		err = fb.texture.Destroy()
		fb.texture = nil
	}
	if fb.renderer != nil {
		if e := fb.renderer.Destroy(); err == nil {
			err = e
		}
		fb.renderer = nil
	}
	if fb.window != nil {
		if e := fb.window.Destroy(); err == nil {
			err = e
		}
		fb.window = nil
	}

	sdl.QuitSubSystem(sdl.INIT_VIDEO)

	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}
