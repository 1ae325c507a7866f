// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// QuadraticBezier is a quadratic bezier curve through a start point,
// a single control point, and an end point.
type QuadraticBezier struct {
	Start   Vector2
	Control Vector2
	End     Vector2
}

// NewQuadraticBezier returns a new [QuadraticBezier] with the given points.
func NewQuadraticBezier(start, control, end Vector2) QuadraticBezier {
	return QuadraticBezier{start, control, end}
}

// Points returns the three points of the curve in order.
func (b QuadraticBezier) Points() [3]Vector2 {
	return [3]Vector2{b.Start, b.Control, b.End}
}

// Sample returns the point on the curve at parameter t in [0, 1].
func (b QuadraticBezier) Sample(t float32) Vector2 {
	mt := 1 - t
	p := b.Start.MulScalar(mt * mt)
	p = p.Add(b.Control.MulScalar(2 * mt * t))
	return p.Add(b.End.MulScalar(t * t))
}

// ApproxLength approximates the length of the curve by the length of its
// control polygon: |Start-Control| + |Control-End|.
func (b QuadraticBezier) ApproxLength() float32 {
	return NewLine2(b.Start, b.Control).Length() + NewLine2(b.Control, b.End).Length()
}

// SampleCount is the number of evenly spaced intervals used by [QuadraticBezier.IsNear],
// which is [QuadraticBezier.ApproxLength] rounded to the nearest integer.
func (b QuadraticBezier) SampleCount() int {
	return int(Round(b.ApproxLength()))
}

// IsNear returns whether any of the sampled points of the curve lies strictly
// within the given squared distance of pt. The curve is sampled at
// [QuadraticBezier.SampleCount]+1 evenly spaced parameters including both ends,
// so the cost is linear in the curve length.
func (b QuadraticBezier) IsNear(pt Vector2, distSquared float32) bool {
	n := b.SampleCount()
	if n <= 0 {
		return b.Start.DistanceToSquared(pt) < distSquared
	}
	fn := float32(n)
	for i := 0; i <= n; i++ {
		if b.Sample(float32(i)/fn).DistanceToSquared(pt) < distSquared {
			return true
		}
	}
	return false
}

// IsLoop returns whether the curve starts and ends at the same point.
func (b QuadraticBezier) IsLoop() bool {
	return b.Start == b.End
}

// LoopCircle returns the circle used to draw a looped curve (see
// [QuadraticBezier.IsLoop]): its center is halfway between the start and
// the control point, and its diameter is their distance.
func (b QuadraticBezier) LoopCircle() (center Vector2, radius float32) {
	center = B2FromTwoPos(b.Start, b.Control).Center()
	radius = b.Control.DistanceTo(b.Start) / 2
	return
}

// Bounds returns the bounding box of the three points of the curve,
// which always contains the curve itself.
func (b QuadraticBezier) Bounds() Box2 {
	bb := B2FromTwoPos(b.Start, b.End)
	bb.ExpandByPoint(b.Control)
	return bb
}
