// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"testing"

	"cogentcore.org/cables/base/iox/imagex"
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/paint"
	"cogentcore.org/cables/styles"
	"github.com/stretchr/testify/assert"
)

var (
	red  = styles.Hex("#ff0000")
	blue = styles.Hex("#0000ff")
)

func alphaAt(p *Painter, x, y int) uint8 {
	return p.Image().RGBAAt(x, y).A
}

func TestCircle(t *testing.T) {
	p := New(image.Pt(20, 20))
	p.Add(paint.Circle{Center: math32.Vec2(10, 10), Radius: 5, Fill: red})
	assert.Equal(t, red.RGBA(), p.Image().RGBAAt(10, 10))
	assert.Zero(t, alphaAt(p, 1, 1))
	assert.Zero(t, alphaAt(p, 18, 10))
}

func TestCircleStroke(t *testing.T) {
	p := New(image.Pt(20, 20))
	p.Add(paint.Circle{Center: math32.Vec2(10, 10), Radius: 8, Stroke: styles.Stroke{Width: 2, Color: blue}})
	assert.Zero(t, alphaAt(p, 10, 10), "the inside of a stroked circle is not filled")
	assert.Greater(t, alphaAt(p, 17, 10), uint8(200))
}

func TestLine(t *testing.T) {
	p := New(image.Pt(20, 20))
	p.Add(paint.Line{Start: math32.Vec2(2, 10), End: math32.Vec2(18, 10), Stroke: styles.Stroke{Width: 4, Color: red}})
	assert.Equal(t, uint8(255), alphaAt(p, 10, 10))
	assert.Equal(t, uint8(255), alphaAt(p, 10, 8))
	assert.Zero(t, alphaAt(p, 10, 2))
	assert.Zero(t, alphaAt(p, 0, 10))
}

func TestQuadraticBezier(t *testing.T) {
	p := New(image.Pt(24, 24))
	b := math32.NewQuadraticBezier(math32.Vec2(0, 0), math32.Vec2(0, 20), math32.Vec2(20, 20))
	p.Add(paint.QuadraticBezier{Curve: b, Stroke: styles.Stroke{Width: 3, Color: red}})
	mid := b.Sample(0.5).ToPointFloor()
	assert.Greater(t, alphaAt(p, mid.X, mid.Y), uint8(128))
	assert.Zero(t, alphaAt(p, 20, 2), "the curve does not pass near its control polygon corner")
}

func TestFlatten(t *testing.T) {
	p := New(image.Pt(1, 1))
	straight := math32.NewQuadraticBezier(math32.Vec2(0, 0), math32.Vec2(5, 0), math32.Vec2(10, 0))
	assert.Len(t, p.flatten(straight), 2)
	curved := math32.NewQuadraticBezier(math32.Vec2(0, 0), math32.Vec2(0, 100), math32.Vec2(100, 100))
	pts := p.flatten(curved)
	assert.Greater(t, len(pts), 10)
	assert.Equal(t, curved.Start, pts[0])
	assert.Equal(t, curved.End, pts[len(pts)-1])
}

func TestRect(t *testing.T) {
	p := New(image.Pt(20, 20))
	p.Add(paint.Rect{Rect: math32.B2(2, 2, 18, 18), Rounding: 6, Fill: blue, Stroke: styles.Stroke{Width: 2, Color: red}})
	assert.Equal(t, blue.RGBA(), p.Image().RGBAAt(10, 10))
	assert.Equal(t, red.RGBA(), p.Image().RGBAAt(10, 2))
	assert.Zero(t, alphaAt(p, 2, 2), "corners are rounded")
}

func TestOutside(t *testing.T) {
	p := New(image.Pt(10, 10))
	p.Add(paint.Circle{Center: math32.Vec2(-50, -50), Radius: 5, Fill: red})
	for y := range 10 {
		for x := range 10 {
			assert.Zero(t, alphaAt(p, x, y))
		}
	}
}

func TestSnapshot(t *testing.T) {
	p := New(image.Pt(8, 8))
	p.Fill(styles.Hex("#ffffff"))
	snap := p.Snapshot()
	p.Add(paint.Rect{Rect: math32.B2(0, 0, 8, 8), Fill: red})
	assert.Equal(t, styles.Hex("#ffffff").RGBA(), snap.RGBAAt(4, 4))
	assert.Equal(t, red.RGBA(), p.Image().RGBAAt(4, 4))
}

func TestRender(t *testing.T) {
	p := New(image.Pt(120, 80))
	p.Fill(styles.Light().Background)
	list := &paint.List{}
	w := styles.Light().Widgets
	list.Add(paint.Rect{Rect: math32.B2(10, 30, 30, 50), Rounding: w.Inactive.Rounding, Fill: w.Inactive.BgFill, Stroke: w.Inactive.FgStroke})
	list.Add(paint.Rect{Rect: math32.B2(90, 30, 110, 50), Rounding: w.Hovered.Rounding, Fill: w.Hovered.BgFill, Stroke: w.Hovered.FgStroke})
	list.Add(paint.QuadraticBezier{Curve: math32.NewQuadraticBezier(math32.Vec2(20, 40), math32.Vec2(60, 75), math32.Vec2(100, 40)), Stroke: w.Active.FgStroke})
	list.Add(paint.Circle{Center: math32.Vec2(60, 57.5), Radius: 4, Fill: w.Active.BgFill, Stroke: w.Active.FgStroke})
	paint.Arrow(list, math32.Vec2(60, 15), math32.Vec2(20, 0), w.Inactive.FgStroke)
	list.ReplayTo(p)
	imagex.Assert(t, p.Image(), "cable")
}
