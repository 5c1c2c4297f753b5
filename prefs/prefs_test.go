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

package prefs_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/nxwindow/curated"
	"github.com/jetsetilly/nxwindow/prefs"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func TestBool(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	require.NoError(t, err)

	var v, w, x prefs.Bool
	require.NoError(t, dsk.Add("test", &v))
	require.NoError(t, dsk.Add("testB", &w))
	require.NoError(t, dsk.Add("testC", &x))

	require.NoError(t, v.Set(true))
	require.NoError(t, w.Set("foo"))
	require.NoError(t, x.Set("TRUE"))
	require.NoError(t, dsk.Save())

	require.NoError(t, dsk.Reset())
	assert.Equal(t, false, v.Get())
	assert.Equal(t, false, x.Get())

	require.NoError(t, dsk.Load())
	assert.Equal(t, true, v.Get())
	assert.Equal(t, false, w.Get())
	assert.Equal(t, true, x.Get())

	assert.Error(t, v.Set(10))
}

func TestString(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	require.NoError(t, err)

	var v prefs.String
	require.NoError(t, dsk.Add("window.title", &v))
	require.NoError(t, v.Set("bar"))
	require.NoError(t, dsk.Save())

	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[window]")
	assert.Contains(t, string(data), `title = "bar"`)

	require.NoError(t, v.Reset())
	require.NoError(t, dsk.Load())
	assert.Equal(t, "bar", v.String())
}

func TestInt(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	require.NoError(t, err)

	var v, w prefs.Int
	require.NoError(t, dsk.Add("window.width", &v))
	require.NoError(t, dsk.Add("window.height", &w))

	require.NoError(t, v.Set(1280))

	// test string conversion to int
	require.NoError(t, w.Set("720"))
	require.NoError(t, dsk.Save())

	require.NoError(t, dsk.Reset())
	require.NoError(t, dsk.Load())
	assert.Equal(t, 1280, v.Get())
	assert.Equal(t, 720, w.Get())

	// while we have a prefs.Int instance set up we'll test some
	// failure conditions
	assert.Error(t, v.Set("---"))
	assert.Error(t, v.Set(1.0))
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	require.NoError(t, v.Set("0.5"))
	assert.Equal(t, 0.5, v.Get())
	require.NoError(t, v.Set(int64(2)))
	assert.Equal(t, "2.000", v.String())
	assert.Error(t, v.Set(true))
}

func TestDuration(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	require.NoError(t, err)

	var v prefs.Duration
	require.NoError(t, dsk.Add("window.pollinterval", &v))
	assert.Equal(t, time.Duration(0), v.Get())

	require.NoError(t, v.Set("5ms"))
	assert.Equal(t, 5*time.Millisecond, v.Get())
	require.NoError(t, dsk.Save())

	require.NoError(t, v.Reset())
	require.NoError(t, dsk.Load())
	assert.Equal(t, 5*time.Millisecond, v.Get())

	assert.Error(t, v.Set("-1s"))
	assert.Error(t, v.Set("soon"))
	assert.Equal(t, 5*time.Millisecond, v.Get())
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	require.NoError(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	require.NoError(t, dsk.Add("window.size", v))

	w = 1
	h = 2
	require.NoError(t, dsk.Save())

	w = 0
	h = 0
	require.NoError(t, dsk.Load())

	assert.Equal(t, 1, w)
	assert.Equal(t, 2, h)
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post []prefs.Value
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) > 100 {
			return errors.New("too large")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = append(post, value)
		return nil
	})

	require.NoError(t, v.Set(10))
	assert.Error(t, v.Set(1000))
	assert.Equal(t, 10, v.Get())
	assert.Equal(t, []prefs.Value{10}, post)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestPreserveUnknownEntries(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	require.NoError(t, err)

	var v prefs.Bool
	require.NoError(t, dsk.Add("window.vsync", &v))
	require.NoError(t, v.Set(true))
	require.NoError(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	require.NoError(t, err)

	var s prefs.String
	require.NoError(t, dsk.Add("window.title", &s))
	require.NoError(t, s.Set("bar"))
	require.NoError(t, dsk.Save())

	// a third instance sees the values written by both
	dsk, err = prefs.NewDisk(fn)
	require.NoError(t, err)

	var vv prefs.Bool
	var ss prefs.String
	require.NoError(t, dsk.Add("window.vsync", &vv))
	require.NoError(t, dsk.Add("window.title", &ss))
	require.NoError(t, dsk.Load())
	assert.Equal(t, true, vv.Get())
	assert.Equal(t, "bar", ss.String())
}

func TestNoPrefsFile(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	require.NoError(t, err)

	err = dsk.Load()
	require.Error(t, err)
	assert.True(t, curated.Is(err, prefs.NoPrefsFile))
}

func TestMalformedPrefsFile(t *testing.T) {
	fn := tmpPrefsFile(t)
	require.NoError(t, os.WriteFile(fn, []byte("window = [\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	require.NoError(t, err)

	err = dsk.Load()
	require.Error(t, err)
	assert.True(t, curated.Is(err, prefs.PrefsFileErr))
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	require.NoError(t, err)

	var v prefs.Bool
	assert.Error(t, dsk.Add("", &v))
	assert.Error(t, dsk.Add("window.", &v))
	assert.Empty(t, dsk.Keys())
}

func TestKeyConflict(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	require.NoError(t, err)

	// a key cannot be both a value and a table
	var v, w prefs.Bool
	require.NoError(t, dsk.Add("window.backlog", &v))
	require.NoError(t, dsk.Add("window.backlog.lifo", &w))
	assert.Error(t, dsk.Save())
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	require.NoError(t, s.Set("123456789"))
	assert.Equal(t, "123456789", s.String())

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	assert.Equal(t, "12345", s.String())

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	assert.Equal(t, "12345", s.String())

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	require.NoError(t, s.Set("abcdefghi"))
	assert.Equal(t, "abc", s.String())
}

func TestWatch(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	require.NoError(t, err)

	var v prefs.Int
	require.NoError(t, dsk.Add("window.width", &v))
	require.NoError(t, v.Set(640))
	require.NoError(t, dsk.Save())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan error, 16)
	require.NoError(t, dsk.Watch(ctx, func(err error) {
		reloaded <- err
	}))

	require.NoError(t, os.WriteFile(fn, []byte("[window]\nwidth = 800\n"), 0o600))

	assert.Eventually(t, func() bool {
		return v.Get() == 800
	}, 5*time.Second, 10*time.Millisecond)
}

func TestDiskString(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	require.NoError(t, err)

	var v prefs.Bool
	var w prefs.Int
	require.NoError(t, dsk.Add("window.vsync", &v))
	require.NoError(t, dsk.Add("window.height", &w))
	require.NoError(t, w.Set(720))

	assert.Equal(t, "window.height :: 720\nwindow.vsync :: false\n", dsk.String())
}
