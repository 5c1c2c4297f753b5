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

package window

import (
	"fmt"

	"github.com/jetsetilly/nxwindow/userinput"
)

// BacklogOrder specifies the order in which events are removed from the
// backlog.
type BacklogOrder int

// List of valid BacklogOrder values.
const (
	// events are delivered in the order they were decoded
	FIFO BacklogOrder = iota

	// the most recently decoded event is delivered first
	LIFO
)

func (o BacklogOrder) String() string {
	switch o {
	case FIFO:
		return "FIFO"
	case LIFO:
		return "LIFO"
	}
	return fmt.Sprintf("BacklogOrder(%d)", int(o))
}

// Backlog is the list of events waiting to be delivered. The zero value is an
// empty FIFO backlog.
type Backlog struct {
	Order BacklogOrder

	events []userinput.Event

	// index of the oldest event in the events slice
	head int
}

// Push events onto the backlog.
func (b *Backlog) Push(evs ...userinput.Event) {
	b.events = append(b.events, evs...)
}

// Pop removes one event from the backlog. Returns false if the backlog is
// empty.
func (b *Backlog) Pop() (userinput.Event, bool) {
	if b.Len() == 0 {
		return nil, false
	}

	var ev userinput.Event
	if b.Order == LIFO {
		last := len(b.events) - 1
		ev = b.events[last]
		b.events[last] = nil
		b.events = b.events[:last]
	} else {
		ev = b.events[b.head]
		b.events[b.head] = nil
		b.head++
	}

	// reuse the slice once it has been drained. if the backlog never drains
	// then the waiting events are moved to the front of the slice once more
	// than half of it has been delivered
	if b.head == len(b.events) {
		b.events = b.events[:0]
		b.head = 0
	} else if b.head > len(b.events)/2 {
		n := copy(b.events, b.events[b.head:])
		clear(b.events[n:])
		b.events = b.events[:n]
		b.head = 0
	}

	return ev, true
}

// Len returns the number of events in the backlog.
func (b *Backlog) Len() int {
	return len(b.events) - b.head
}
