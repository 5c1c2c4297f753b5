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
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/hid"
	"github.com/jetsetilly/nxwindow/logger"
)

// Sentinal error patterns.
const (
	UnknownBackend  = "window: unknown backend (%s)"
	InvalidSettings = "window: invalid settings: %v"
	BackendError    = "window: %s: %v"
	NoSource        = "window: no input source"
)

// Creator functions create a Backend from the window settings.
type Creator func(settings Settings) (Backend, error)

var (
	registryCrit sync.Mutex
	registry     = make(map[string]Creator)
)

// RegisterBackend makes a backend available to Build() by name. Registering a
// name twice replaces the earlier creator. Names are case insensitive.
func RegisterBackend(name string, create Creator) {
	registryCrit.Lock()
	defer registryCrit.Unlock()
	registry[strings.ToLower(name)] = create
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryCrit.Lock()
	defer registryCrit.Unlock()

	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build a window with the backend named in the settings.
func Build(settings Settings, source hid.Source) (*Window, error) {
	if source == nil {
		return nil, curated.Errorf(NoSource)
	}

	if err := settings.Validate(); err != nil {
		return nil, curated.Errorf(InvalidSettings, err)
	}

	name := strings.ToLower(settings.Backend)

	registryCrit.Lock()
	create, ok := registry[name]
	registryCrit.Unlock()

	if !ok {
		return nil, curated.Errorf(UnknownBackend, settings.Backend)
	}

	backend, err := create(settings)
	if err != nil {
		return nil, curated.Errorf(BackendError, name, err)
	}

	w, h := backend.Size()
	logger.Logf(logger.Allow, "window", "%s backend: %dx%d", name, w, h)

	return New(backend, source, settings), nil
}
