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
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/jetsetilly/nxwindow/userinput"
)

// eventWriter implements the userinput.HandleInput interface by writing every
// event to an io.Writer, either as text or as a line of JSON.
type eventWriter struct {
	output io.Writer
	json   bool
}

// jsonEvent is the JSON representation of an event. Button names are used
// rather than identifiers.
type jsonEvent struct {
	Type       string `json:"type"`
	Controller int    `json:"controller"`
	Button     string `json:"button"`
	ID         int    `json:"id"`
	Direction  string `json:"direction,omitempty"`
	Down       bool   `json:"down"`
}

func (w *eventWriter) write(text fmt.Stringer, ev jsonEvent) error {
	if !w.json {
		_, err := fmt.Fprintln(w.output, text)
		return err
	}

	b, err := sonic.Marshal(ev)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.output.Write(b)
	return err
}

// HandleButton implements the userinput.HandleInput interface.
func (w *eventWriter) HandleButton(id userinput.ControllerID, button userinput.ButtonID, down bool) error {
	return w.write(userinput.EventGamepadButton{ID: id, Button: button, Down: down}, jsonEvent{
		Type:       "button",
		Controller: int(id),
		Button:     button.String(),
		ID:         int(button),
		Down:       down,
	})
}

// HandleHat implements the userinput.HandleInput interface.
func (w *eventWriter) HandleHat(id userinput.ControllerID, hat userinput.ButtonID, dir userinput.HatDirection, down bool) error {
	return w.write(userinput.EventGamepadHat{ID: id, Hat: hat, Direction: dir, Down: down}, jsonEvent{
		Type:       "hat",
		Controller: int(id),
		Button:     hat.String(),
		ID:         int(hat),
		Direction:  dir.String(),
		Down:       down,
	})
}
