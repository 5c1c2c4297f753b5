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

package statsview

import (
	"context"
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/nxwindow/logger"
)

// Address used by Launch() if no other address is given.
const Address = "localhost:12600"

const url = "/debug/statsview"

// sample interval in milliseconds
const interval = 500

// Launch a new goroutine running the statsview. The server stops when the
// context is cancelled.
func Launch(ctx context.Context, output io.Writer, addr string) {
	if addr == "" {
		addr = Address
	}

	viewer.SetConfiguration(viewer.WithAddr(addr), viewer.WithInterval(interval))
	mgr := statsview.New()

	go func() {
		mgr.Start()
	}()

	go func() {
		<-ctx.Done()
		mgr.Stop()
		logger.Log(logger.Allow, "statsview", "stopped")
	}()

	logger.Logf(logger.Allow, "statsview", "listening on %s", addr)
	fmt.Fprintf(output, "stats server available at %s%s\n", addr, url)
}
