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

package prefs

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/logger"
)

// Watch the prefs file for changes made by other programs. When the file
// changes the values are reloaded and the onReload function, if not nil, is
// called with the result of the load.
//
// The directory containing the file is watched rather than the file itself
// because many editors replace a file rather than write to it.
//
// Watching stops when the context is cancelled. The function returns once the
// watcher has been started.
func (dsk *Disk) Watch(ctx context.Context, onReload func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return curated.Errorf(PrefsFileErr, err)
	}

	dir := filepath.Dir(dsk.path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return curated.Errorf(PrefsFileErr, err)
	}

	target := filepath.Clean(dsk.path)

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				err := dsk.Load()
				if err != nil {
					logger.Log(logger.Allow, "prefs", err)
				} else {
					logger.Logf(logger.Allow, "prefs", "reloaded %s", dsk.path)
				}
				if onReload != nil {
					onReload(err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Log(logger.Allow, "prefs", err)
			}
		}
	}()

	return nil
}
