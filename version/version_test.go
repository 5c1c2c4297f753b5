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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/nxwindow/test"
)

func TestLocal(t *testing.T) {
	i := fromBuildInfo(nil, false, "")
	test.ExpectEquality(t, i.Version, "local")
	test.ExpectFailure(t, i.Release)
	test.ExpectEquality(t, i.String(), "nxwindow local")
}

func TestUnreleased(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.24.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	i := fromBuildInfo(bi, true, "")
	test.ExpectEquality(t, i.Version, "unreleased")
	test.ExpectEquality(t, i.Revision, "abc123+dirty")
	test.ExpectEquality(t, i.GoVersion, "go1.24.0")
	test.ExpectEquality(t, i.String(), "nxwindow unreleased (abc123+dirty)")
}

func TestRelease(t *testing.T) {
	bi := &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "false"},
		},
	}
	i := fromBuildInfo(bi, true, "v0.1.0")
	test.ExpectSuccess(t, i.Release)
	test.ExpectEquality(t, i.Revision, "abc123")
	test.ExpectEquality(t, i.String(), "nxwindow v0.1.0")
}
