// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sizes struct {
	Port  float32
	Plug  float32
	Theme string
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sizes.toml")
	in := sizes{Port: 12, Plug: 14, Theme: "dark"}
	require.NoError(t, Save(&in, fn))

	var out sizes
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)

	_, err := WriteBytes(&in)
	assert.NoError(t, err)
	assert.Error(t, Open(&out, filepath.Join(t.TempDir(), "missing.toml")))
}
