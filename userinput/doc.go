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

// Package userinput translates the raw button masks reported by the console
// input driver into events that a windowing layer can hand to an application.
//
// The driver reports three 32 bit masks every time it is scanned: the keys
// that went down since the last scan, the keys that came up since the last
// scan and the keys that are currently held. The Decode() function turns one
// of those masks into a list of Event values.
//
// Bit n of a mask corresponds to the key identifier n+1. Identifiers are used
// rather than bit positions because the event model wants small values
// starting at one. Identifiers 13 to 24 are the d-pad and the two analogue
// sticks. The sticks are treated as additional d-pads and so all twelve of
// those identifiers decode to EventGamepadHat. Everything else decodes to
// EventGamepadButton.
//
// Held keys never produce events. There is no notion of key repeat in the
// event model and so the held mask is only of interest to code that wants to
// know the current state of the controller (see the Controllers type).
package userinput
