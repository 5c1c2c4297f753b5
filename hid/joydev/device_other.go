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

//go:build !linux

package joydev

import (
	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/hid"
)

// Device is an implementation of the hid.Source interface. On this platform
// it can never be opened.
type Device struct {
	hid.Edges
}

// Open always fails on this platform.
func Open(_ string, _ Mapping) (*Device, error) {
	return nil, curated.Errorf(Unsupported)
}

// Name returns the name of the device.
func (dev *Device) Name() string {
	return ""
}

// Refresh implements the hid.Source interface.
func (dev *Device) Refresh() {
	dev.Latch(0)
}

// Close implements the hid.Closer interface.
func (dev *Device) Close() error {
	return nil
}
