// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Line2 represents a 2D line segment defined by a start and an end point.
type Line2 struct {
	Start Vector2
	End   Vector2
}

// NewLine2 creates and returns a new Line2 with the
// specified start and end points.
func NewLine2(start, end Vector2) Line2 {
	return Line2{start, end}
}

// Center calculates this line segment center point.
func (l Line2) Center() Vector2 {
	return l.Start.Add(l.End).MulScalar(0.5)
}

// Delta calculates the vector from the start to end point of this line segment.
func (l Line2) Delta() Vector2 {
	return l.End.Sub(l.Start)
}

// LengthSquared returns the square of the distance from the start point to the end point.
func (l Line2) LengthSquared() float32 {
	return l.Start.DistanceToSquared(l.End)
}

// Length returns the length from the start point to the end point.
func (l Line2) Length() float32 {
	return l.Start.DistanceTo(l.End)
}
