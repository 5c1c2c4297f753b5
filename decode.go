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
	"strconv"
	"strings"

	"github.com/jetsetilly/nxwindow/modalflag"
	"github.com/jetsetilly/nxwindow/userinput"
)

// decode the masks given on the command line and print the resulting events.
func decode(md *modalflag.Modes) error {
	md.NewMode()

	state := md.AddChoice("state", "pressed", []string{"pressed", "released", "held"}, "transition state of the masks")
	controller := md.AddInt("controller", int(userinput.ControllerP1), "controller number")
	json := md.AddBool("json", false, "print events as JSON")

	md.AdditionalHelp(`Masks can be numbers (eg. 0x2001) or button names joined with a plus
sign (eg. A+DUp).`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("%s mode requires at least one mask", md)
	}

	var ks userinput.KeyState
	switch *state {
	case "pressed":
		ks = userinput.Pressed
	case "released":
		ks = userinput.Released
	case "held":
		ks = userinput.Held
	}

	var ctrl userinput.Controllers
	out := &eventWriter{output: md.Output, json: *json}

	for _, arg := range md.RemainingArgs() {
		mask, err := parseMask(arg)
		if err != nil {
			return err
		}
		for _, ev := range userinput.Decode(userinput.ControllerID(*controller), ks, mask) {
			err := ctrl.HandleUserInput(ev, out)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// parseMask accepts a number in any base understood by strconv.ParseUint()
// or a list of button names separated by '+'.
func parseMask(s string) (uint32, error) {
	s = strings.TrimSpace(s)

	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return uint32(v), nil
	}

	var mask uint32
	for _, n := range strings.Split(s, "+") {
		id, ok := userinput.ButtonFromName(strings.TrimSpace(n))
		if !ok {
			return 0, fmt.Errorf("unrecognised mask (%s)", s)
		}
		mask |= id.Mask()
	}

	return mask, nil
}
