// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"testing"

	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/styles"
	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	st := styles.Stroke{Width: 2}
	assert.Equal(t, math32.B2(4, 4, 16, 16), Circle{Center: math32.Vec2(10, 10), Radius: 5, Stroke: st}.Bounds())
	assert.Equal(t, math32.B2(-1, -1, 11, 6), Line{Start: math32.Vec2(10, 0), End: math32.Vec2(0, 5), Stroke: st}.Bounds())
	q := QuadraticBezier{Curve: math32.NewQuadraticBezier(math32.Vec2(0, 0), math32.Vec2(0, 20), math32.Vec2(20, 20))}
	assert.Equal(t, math32.B2(0, 0, 20, 20), q.Bounds())
	assert.Equal(t, math32.B2(-1, -1, 3, 3), Rect{Rect: math32.B2(0, 0, 2, 2), Stroke: st}.Bounds())
}

func TestList(t *testing.T) {
	l := &List{}
	l.Add(Circle{Radius: 1})
	Arrow(l, math32.Vec2(0, 0), math32.Vec2(8, 0), styles.Stroke{Width: 1})
	assert.Equal(t, 4, l.Len())
	assert.Len(t, Of[Circle](l), 1)
	lines := Of[Line](l)
	assert.Len(t, lines, 3)
	assert.Equal(t, math32.Vec2(8, 0), lines[0].End)
	// both head lines go back from the tip
	assert.Less(t, lines[1].End.X, float32(8))
	assert.Less(t, lines[2].End.X, float32(8))
	assert.InDelta(t, -lines[1].End.Y, lines[2].End.Y, 1e-5)

	other := &List{}
	l.ReplayTo(other)
	assert.Equal(t, l.Shapes, other.Shapes)
	l.Reset()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 4, other.Len())
}
