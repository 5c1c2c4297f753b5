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

package assert

import (
	"fmt"
	"sync/atomic"
)

// Owner records the first goroutine to claim it. Subsequent claims from a
// different goroutine panic when the assertions build tag is present and are
// ignored otherwise.
//
// Types that are documented as being owned by a single goroutine embed an
// Owner and call Claim() at the top of each method.
type Owner struct {
	id atomic.Uint64
}

// Claim the Owner for the calling goroutine.
func (o *Owner) Claim() {
	if !enabled {
		return
	}
	g := GetGoRoutineID()
	if o.id.CompareAndSwap(0, g) {
		return
	}
	if cur := o.id.Load(); cur != g {
		panic(fmt.Sprintf("assert: owned by goroutine %d, claimed by goroutine %d", cur, g))
	}
}

// Release the Owner so that another goroutine may claim it.
func (o *Owner) Release() {
	o.id.Store(0)
}
