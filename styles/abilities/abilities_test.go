// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbilities(t *testing.T) {
	ab := New(Hoverable, Draggable)
	assert.True(t, ab.Is(Hoverable))
	assert.True(t, ab.HasFlag(Draggable))
	assert.False(t, ab.HasFlag(Clickable))
	assert.True(t, ab.IsPressable())
	assert.Equal(t, "Hoverable|Draggable", ab.String())

	ab.SetFlag(false, Draggable)
	assert.False(t, ab.IsPressable())
	assert.True(t, ab.IsInteractive())
	assert.Equal(t, "None", Abilities(0).String())
	assert.False(t, Abilities(0).IsInteractive())
}
