// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cables

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/styles"
	"cogentcore.org/cables/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSaveOpen(t *testing.T) {
	dir := t.TempDir()
	set := DefaultSettings()
	set.PlugSize = 16
	set.Theme = "dark"
	for _, name := range []string{"settings.toml", "settings.yaml"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, SaveSettings(set, fn))
		got, err := OpenSettings(fn)
		require.NoError(t, err)
		assert.Equal(t, set, got, name)
	}
	assert.Error(t, SaveSettings(set, filepath.Join(dir, "settings.json")))
	_, err := OpenSettings(filepath.Join(dir, "settings.json"))
	assert.Error(t, err)
}

func TestSettingsPartial(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(fn, []byte("port_size = 20\n"), 0666))
	set, err := OpenSettings(fn)
	require.NoError(t, err)
	want := DefaultSettings()
	want.PortSize = 20
	assert.Equal(t, want, set)

	require.NoError(t, os.WriteFile(fn, []byte("port_size = -1\ntheme = \"blue\"\n"), 0666))
	_, err = OpenSettings(fn)
	assert.ErrorContains(t, err, "port_size")
	assert.ErrorContains(t, err, "blue")
}

func TestSettingsOverlay(t *testing.T) {
	set := DefaultSettings()
	require.NoError(t, set.Overlay(&Settings{ControlSize: 30, Theme: "dark"}))
	assert.Equal(t, float32(30), set.ControlSize)
	assert.Equal(t, "dark", set.Theme)
	assert.Equal(t, float32(12), set.PortSize, "zero fields are kept")
	assert.NoError(t, set.Validate())
}

func TestSettingsApply(t *testing.T) {
	ctx := ui.NewContext(math32.Vec2(10, 10))
	set := DefaultSettings()
	set.Theme = "dark"
	set.DragThreshold = 8
	require.NoError(t, set.Apply(ctx))
	assert.Equal(t, styles.Dark(), ctx.Theme)
	assert.Equal(t, float32(8), ctx.DragThreshold)
	set.Theme = "nope"
	assert.Error(t, set.Apply(ctx))
}
