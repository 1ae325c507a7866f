// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("tif")
	assert.NoError(t, err)
	assert.Equal(t, TIFF, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("svg")
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 2, color.RGBA{255, 0, 0, 255})
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		fn := filepath.Join(t.TempDir(), "img"+ext)
		require.NoError(t, Save(img, fn))
		got, _, err := Open(fn)
		require.NoError(t, err)
		r, g, b, a := got.At(1, 2).RGBA()
		assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a}, ext)
	}
}

func TestCompareColors(t *testing.T) {
	assert.True(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{12, 8, 10, 255}, 2))
	assert.False(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{13, 10, 10, 255}, 2))

	a := image.NewRGBA(image.Rect(0, 0, 1, 1))
	a.Set(0, 0, color.RGBA{10, 0, 0, 255})
	b := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b.Set(0, 0, color.RGBA{4, 0, 0, 255})
	assert.Equal(t, color.RGBA{6, 0, 0, 255}, DiffImage(a, b).At(0, 0))
}
