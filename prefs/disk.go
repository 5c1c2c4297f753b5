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
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jetsetilly/nxwindow/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.toml"

// Sentinal error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%v)"
	PrefsFileErr = "prefs: %v"
)

// Disk represents preference values as stored on disk. Preference keys are
// dotted paths and are stored as nested TOML tables. For example, the keys
// "window.vsync" and "window.backlog.lifo" are stored as:
//
//	[window]
//	vsync = true
//
//	[window.backlog]
//	lifo = false
//
// Entries in the file that have not been added to the Disk instance are
// preserved when the file is saved.
type Disk struct {
	crit sync.Mutex

	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the file path used by the Disk instance.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk. If a value
// for the key is waiting on the command line stack then it is applied
// immediately.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return curated.Errorf(PrefsFileErr, fmt.Sprintf("illegal key (%q)", key))
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(PrefsFileErr, err)
		}
	}

	return nil
}

// Keys returns a sorted list of keys added to the Disk instance.
func (dsk *Disk) Keys() []string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all prefs values to their default value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(PrefsFileErr, err)
		}
	}

	return nil
}

// Save current preference values to disk. Values in the file that are not
// known to the Disk instance are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	// start with the values currently on disk so that they are not clobbered
	values, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}
	if values == nil {
		values = make(map[string]Value)
	}

	for k, p := range dsk.entries {
		values[k] = tomlValue(p)
	}

	tree := make(map[string]any)
	for k, v := range values {
		if err := insert(tree, strings.Split(k, "."), v); err != nil {
			return curated.Errorf(PrefsFileErr, err)
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tree); err != nil {
		return curated.Errorf(PrefsFileErr, err)
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(PrefsFileErr, err)
	}

	if err := os.WriteFile(dsk.path, buf.Bytes(), 0o600); err != nil {
		return curated.Errorf(PrefsFileErr, err)
	}

	return nil
}

// Load preference values from disk. Values in the file that have not been
// added to the Disk instance are ignored. Once the file has been loaded any
// values waiting on the command line stack are applied, taking priority over
// the values from the file.
//
// Returns a curated NoPrefsFile error if the file does not exist. Callers will
// usually want to ignore that error.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range values {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileErr, fmt.Errorf("%s: %w", k, err))
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileErr, fmt.Errorf("%s: %w", k, err))
			}
		}
	}

	return nil
}

// read the prefs file and flatten the TOML tables into dotted keys.
func (dsk *Disk) read() (map[string]Value, error) {
	tree := make(map[string]any)
	if _, err := toml.DecodeFile(dsk.path, &tree); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(PrefsFileErr, err)
	}

	values := make(map[string]Value)
	flatten(values, "", tree)
	return values, nil
}

func flatten(values map[string]Value, prefix string, tree map[string]any) {
	for k, v := range tree {
		if prefix != "" {
			k = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(values, k, sub)
			continue
		}
		values[k] = v
	}
}

func insert(tree map[string]any, path []string, v Value) error {
	if len(path) == 1 {
		if _, ok := tree[path[0]].(map[string]any); ok {
			return fmt.Errorf("key %q is also a table", path[0])
		}
		tree[path[0]] = v
		return nil
	}

	sub, ok := tree[path[0]]
	if !ok {
		sub = make(map[string]any)
		tree[path[0]] = sub
	}

	m, ok := sub.(map[string]any)
	if !ok {
		return fmt.Errorf("key %q is also a value", path[0])
	}

	return insert(m, path[1:], v)
}

// tomlValue converts the value of a pref to a type that can be represented
// natively in a TOML file.
func tomlValue(p pref) Value {
	switch v := p.Get().(type) {
	case bool, int, float64, string:
		return v
	case time.Duration:
		return v.String()
	}
	return p.String()
}

// String returns the keys and current values of the prefs added to the Disk
// instance, one per line.
func (dsk *Disk) String() string {
	keys := dsk.Keys()

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}
