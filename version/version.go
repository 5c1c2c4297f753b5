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

// Package version reports the version of the nxwindow build. Release builds
// set the version number with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/nxwindow/version.number=v0.1.0"
//
// Other builds report "unreleased" if vcs information is present in the
// binary and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "nxwindow"

// if number is empty then the project was not built for release
var number string

// Info describes a build.
type Info struct {
	Version string

	// the vcs revision. suffixed with "+dirty" if the source had been
	// modified but not committed
	Revision string

	// true if Version is a release number
	Release bool

	GoVersion string
}

var info Info

func init() {
	bi, ok := debug.ReadBuildInfo()
	info = fromBuildInfo(bi, ok, number)
}

// Get returns the build information for the running program.
func Get() Info {
	return info
}

func (i Info) String() string {
	if i.Release || i.Revision == "" {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Version, i.Revision)
}

func fromBuildInfo(bi *debug.BuildInfo, ok bool, number string) Info {
	var i Info
	var vcs bool
	var modified bool

	if ok && bi != nil {
		i.GoVersion = bi.GoVersion
		for _, v := range bi.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				i.Revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if i.Revision != "" && modified {
		i.Revision = fmt.Sprintf("%s+dirty", i.Revision)
	}

	switch {
	case number != "":
		i.Version = number
		i.Release = true
	case vcs:
		i.Version = "unreleased"
	default:
		i.Version = "local"
	}

	return i
}
