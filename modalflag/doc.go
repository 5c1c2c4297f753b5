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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "RECORD", "PLAYBACK", "DECODE")
//	_, _ = md.Parse()
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode
// given to AddSubModes() is the default and is selected if the next argument
// is not a sub-mode name. Sub-mode comparisons are case insensitive.
//
// Each sub-mode can then call NewMode(), add its own flags and call Parse()
// again. Path() returns all the modes selected so far, separated by a slash.
//
// Flags are added with the AddBool(), AddString(), etc. functions, which
// return a pointer to the flag value in the same way as the flag package.
// AddChoice() adds a string flag that only accepts values from a fixed list.
//
// Help is handled automatically. If the -help flag is given then Parse()
// writes a help message to the Output field and returns ParseHelp.
package modalflag
