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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. It is used to pace the presentation of frames when the window backend
// is not synchronised to the display.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.New(60)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		renderImage()
//	}
//
// Or skipped if the time has not yet come with the HasWaited() function.
package limiter

import (
	"time"

	"github.com/jetsetilly/nxwindow/curated"
)

// Sentinal error patterns.
const (
	InvalidRate = "limiter: invalid rate (%d per second)"
)

// Limiter will trigger at a fixed number of times per second.
type Limiter struct {
	rate   int
	ticker *time.Ticker
}

// New is the preferred method of initialisation for the Limiter type.
func New(perSecond int) (*Limiter, error) {
	if perSecond <= 0 {
		return nil, curated.Errorf(InvalidRate, perSecond)
	}
	return &Limiter{
		rate:   perSecond,
		ticker: time.NewTicker(period(perSecond)),
	}, nil
}

func period(perSecond int) time.Duration {
	return time.Second / time.Duration(perSecond)
}

// Rate returns the current limit.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(perSecond int) error {
	if perSecond <= 0 {
		return curated.Errorf(InvalidRate, perSecond)
	}
	lim.rate = perSecond
	lim.ticker.Reset(period(perSecond))
	return nil
}

// Wait will block until the next trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if the trigger time has passed and false if it
// is still yet to happen. A trigger is consumed by a true result.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. The limiter should not be used after Stop() has been
// called.
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
