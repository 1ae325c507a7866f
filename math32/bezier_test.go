// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadraticBezierSample(t *testing.T) {
	b := NewQuadraticBezier(Vec2(0, 0), Vec2(0, 20), Vec2(20, 20))
	assert.Equal(t, Vec2(0, 0), b.Sample(0))
	assert.Equal(t, Vec2(20, 20), b.Sample(1))
	tolAssertEqualVector(t, Vec2(5, 15), b.Sample(0.5))
	assert.Equal(t, float32(40), b.ApproxLength())
	assert.Equal(t, 40, b.SampleCount())
	assert.Equal(t, [3]Vector2{{0, 0}, {0, 20}, {20, 20}}, b.Points())
	assert.Equal(t, B2(0, 0, 20, 20), b.Bounds())
}

func TestQuadraticBezierIsNear(t *testing.T) {
	b := NewQuadraticBezier(Vec2(0, 0), Vec2(0, 20), Vec2(20, 20))
	assert.False(t, b.IsNear(Vec2(10, 10), 5))
	assert.True(t, b.IsNear(Vec2(10, 18), 5))
	assert.True(t, b.IsNear(Vec2(10, 10), 300))
	assert.True(t, b.IsNear(Vec2(20, 20), 0.01))
	assert.False(t, b.IsNear(Vec2(100, 100), 300))
}

func TestQuadraticBezierDegenerate(t *testing.T) {
	b := NewQuadraticBezier(Vec2(3, 3), Vec2(3, 3), Vec2(3, 3))
	assert.Equal(t, 0, b.SampleCount())
	assert.True(t, b.IsNear(Vec2(4, 3), 2))
	assert.False(t, b.IsNear(Vec2(5, 3), 2))
}

func TestQuadraticBezierLoop(t *testing.T) {
	b := NewQuadraticBezier(Vec2(10, 10), Vec2(10, 30), Vec2(10, 10))
	assert.True(t, b.IsLoop())
	c, r := b.LoopCircle()
	assert.Equal(t, Vec2(10, 20), c)
	assert.Equal(t, float32(10), r)

	assert.False(t, NewQuadraticBezier(Vec2(0, 0), Vec2(1, 1), Vec2(2, 0)).IsLoop())
}
