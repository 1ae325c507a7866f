// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the primitive shapes that widgets paint
// and the [Painter] interface that receives them.
package paint

import (
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/styles"
)

// Painter receives the shapes painted by widgets.
type Painter interface {
	// Add adds the given shape, painted over anything added before it.
	Add(s Shape)
}

// Shape is a primitive shape: one of [Circle], [Line], [QuadraticBezier] or [Rect].
type Shape interface {
	// Bounds returns the bounding box of the shape, including its stroke.
	Bounds() math32.Box2

	isShape()
}

// Circle is a filled and stroked circle.
type Circle struct {
	Center math32.Vector2
	Radius float32

	// Fill is the fill color; a zero alpha means no fill.
	Fill styles.Color

	// Stroke is the outline; a zero width means no outline.
	Stroke styles.Stroke
}

func (c Circle) isShape() {}

func (c Circle) Bounds() math32.Box2 {
	r := c.Radius + c.Stroke.Width/2
	return math32.B2FromCenterSize(c.Center, math32.Vector2Scalar(2*r))
}

// Line is a stroked line segment.
type Line struct {
	Start  math32.Vector2
	End    math32.Vector2
	Stroke styles.Stroke
}

func (l Line) isShape() {}

func (l Line) Bounds() math32.Box2 {
	b := math32.B2FromTwoPos(l.Start, l.End)
	b.ExpandByScalar(l.Stroke.Width / 2)
	return b
}

// QuadraticBezier is a stroked quadratic bezier curve.
type QuadraticBezier struct {
	Curve  math32.QuadraticBezier
	Stroke styles.Stroke
}

func (q QuadraticBezier) isShape() {}

func (q QuadraticBezier) Bounds() math32.Box2 {
	b := q.Curve.Bounds()
	b.ExpandByScalar(q.Stroke.Width / 2)
	return b
}

// Rect is a filled and stroked rectangle with rounded corners.
type Rect struct {
	Rect     math32.Box2
	Rounding float32
	Fill     styles.Color
	Stroke   styles.Stroke
}

func (r Rect) isShape() {}

func (r Rect) Bounds() math32.Box2 {
	b := r.Rect
	b.ExpandByScalar(r.Stroke.Width / 2)
	return b
}

// Arrow adds an arrow from origin along vec to the given painter,
// made of a shaft and two head lines.
func Arrow(p Painter, origin, vec math32.Vector2, stroke styles.Stroke) {
	tip := origin.Add(vec)
	p.Add(Line{Start: origin, End: tip, Stroke: stroke})
	head := vec.MulScalar(-0.25)
	const c, s = 0.8660254, 0.5 // cos and sin of 30 degrees
	left := math32.Vec2(head.X*c-head.Y*s, head.X*s+head.Y*c)
	right := math32.Vec2(head.X*c+head.Y*s, -head.X*s+head.Y*c)
	p.Add(Line{Start: tip, End: tip.Add(left), Stroke: stroke})
	p.Add(Line{Start: tip, End: tip.Add(right), Stroke: stroke})
}
