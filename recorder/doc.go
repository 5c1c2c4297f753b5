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

// Package recorder records the input from a hid.Source and plays it back. A
// Recorder wraps a source and writes every refresh that has a non-empty mask
// to an io.Writer. A Playback reads the recording and is itself a hid.Source,
// so a recording can be passed to a window in place of real hardware.
//
// Recordings are a sequence of CBOR items. The first item is a header
// containing a magic string, the format version and the controller slot that
// was recorded. The header is followed by one item for every recorded tick,
// each with the number of the refresh it occurred on. Refreshes with empty
// masks are not written but are reproduced on playback from the gaps between
// tick numbers. The final item is a trailer containing the total number of
// refreshes.
package recorder
