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

// Package termkeys is an input source that uses the keyboard of a posix
// terminal as a controller.
//
// Terminals do not report key releases. A key is reported as held for the
// refresh in which it arrives and released on the next refresh unless it
// arrives again, which is what happens with key repeat.
package termkeys

import (
	"errors"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/logger"
)

// Sentinal error patterns.
const (
	TerminalError = "termkeys: %v"
)

// Keys is an implementation of the hid.Source interface.
type Keys struct {
	hid.Edges

	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	buf [64]byte
}

// Open puts the terminal connected to input into cbreak mode. The terminal is
// restored by Close().
func Open(input *os.File) (*Keys, error) {
	if input == nil {
		return nil, curated.Errorf(TerminalError, "no input file")
	}

	k := &Keys{input: input}

	fd := input.Fd()
	if err := termios.Tcgetattr(fd, &k.canAttr); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	k.cbreakAttr = k.canAttr
	termios.Cfmakecbreak(&k.cbreakAttr)
	if err := termios.Tcsetattr(fd, termios.TCIFLUSH, &k.cbreakAttr); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	if err := unix.SetNonblock(int(fd), true); err != nil {
		_ = termios.Tcsetattr(fd, termios.TCIFLUSH, &k.canAttr)
		return nil, curated.Errorf(TerminalError, err)
	}

	logger.Log(logger.Allow, "termkeys", "keyboard input in cbreak mode")

	return k, nil
}

// Refresh implements the hid.Source interface.
func (k *Keys) Refresh() {
	var held uint32

	for {
		n, err := unix.Read(int(k.input.Fd()), k.buf[:])
		if err != nil {
			if !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EINTR) {
				logger.Log(logger.Allow, "termkeys", curated.Errorf(TerminalError, err))
			}
			break // for loop
		}
		if n <= 0 {
			break // for loop
		}
		held |= parseKeys(k.buf[:n])
	}

	k.Latch(held)
}

// Close implements the hid.Closer interface. The terminal is returned to the
// mode it was in before Open().
func (k *Keys) Close() error {
	fd := k.input.Fd()
	_ = unix.SetNonblock(int(fd), false)
	if err := termios.Tcsetattr(fd, termios.TCIFLUSH, &k.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
