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

//go:build linux

package joydev

import (
	"bytes"
	"errors"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/logger"
)

// ioctl request numbers from linux/joystick.h
const (
	jsiocgAxes    = 0x80016a11
	jsiocgButtons = 0x80016a12
	jsiocgName    = 0x80006a13 + (128 << 16)
)

// Device is an implementation of the hid.Source interface.
type Device struct {
	hid.Edges

	fd      int
	path    string
	name    string
	mapping Mapping

	state State
	buf   [eventSize * 64]byte

	// device has returned an error other than EAGAIN. logged once
	failed bool
}

// Open the joystick device at path. If the path is empty then
// "/dev/input/js0" is used.
func Open(path string, mapping Mapping) (*Device, error) {
	if path == "" {
		path = DefaultPath
	}

	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, curated.Errorf(DeviceError, path, err)
	}

	dev := &Device{
		fd:      fd,
		path:    path,
		mapping: mapping,
	}

	var name [128]byte
	if err := ioctl(fd, jsiocgName, unsafe.Pointer(&name[0])); err == nil {
		dev.name = string(bytes.TrimRight(name[:], "\x00"))
	}

	var axes, buttons uint8
	_ = ioctl(fd, jsiocgAxes, unsafe.Pointer(&axes))
	_ = ioctl(fd, jsiocgButtons, unsafe.Pointer(&buttons))

	logger.Logf(logger.Allow, "joydev", "%s: %s (%d axes, %d buttons)", path, dev.name, axes, buttons)

	return dev, nil
}

func ioctl(fd int, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Name returns the name of the device as reported by the driver.
func (dev *Device) Name() string {
	return dev.name
}

// Refresh implements the hid.Source interface.
func (dev *Device) Refresh() {
	for {
		n, err := unix.Read(dev.fd, dev.buf[:])
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
				break // for loop
			}
			if !dev.failed {
				logger.Log(logger.Allow, "joydev", curated.Errorf(DeviceError, dev.path, err))
				dev.failed = true
			}
			dev.state = State{}
			break // for loop
		}
		if n == 0 {
			break // for loop
		}
		dev.failed = false
		for i := 0; i+eventSize <= n; i += eventSize {
			dev.state.apply(decodeEvent(dev.buf[i : i+eventSize]))
		}
	}

	dev.Latch(dev.mapping.Held(&dev.state))
}

// Close implements the hid.Closer interface.
func (dev *Device) Close() error {
	if err := unix.Close(dev.fd); err != nil {
		return curated.Errorf(DeviceError, dev.path, err)
	}
	return nil
}
