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

// Package paths contains functions to prepare paths to nxwindow resources.
//
// The ResourcePath() function returns the supplied resource string prepended
// with the appropriate config directory, creating the directory if necessary.
// For example, the following returns the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the config directory is ".nxwindow" in the current
// working directory. For release builds (built with the release tag) the
// config directory is "nxwindow" in the user's config directory, as reported
// by os.UserConfigDir().
package paths
