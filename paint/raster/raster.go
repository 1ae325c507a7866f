// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a [paint.Painter] that rasterizes shapes
// into an [image.RGBA] using golang.org/x/image/vector.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/paint"
	"cogentcore.org/cables/styles"
	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/vector"
)

// Painter rasterizes the shapes added to it into an image.
// Shapes are anti-aliased and composited with the Over operator
// in the order they are added.
type Painter struct {
	// Tolerance is the maximum distance in pixels between a flattened
	// curve and the true curve.
	Tolerance float32

	img *image.RGBA
	z   vector.Rasterizer
}

// New returns a new [Painter] onto a new transparent image of the given size.
func New(size image.Point) *Painter {
	return NewFor(image.NewRGBA(image.Rectangle{Max: size}))
}

// NewFor returns a new [Painter] onto the given image.
func NewFor(img *image.RGBA) *Painter {
	return &Painter{Tolerance: 0.25, img: img}
}

// Image returns the image being painted onto.
func (p *Painter) Image() *image.RGBA {
	return p.img
}

// Snapshot returns a copy of the current image.
func (p *Painter) Snapshot() *image.RGBA {
	return clone.AsRGBA(p.img)
}

// Fill fills the whole image with the given color, replacing its contents.
func (p *Painter) Fill(c styles.Color) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(color.NRGBA(c)), image.Point{}, draw.Src)
}

// Add rasterizes the given shape onto the image.
func (p *Painter) Add(s paint.Shape) {
	bb := s.Bounds()
	if !bb.ToRect().Overlaps(p.img.Bounds()) {
		return
	}
	switch s := s.(type) {
	case paint.Circle:
		p.circle(s)
	case paint.Line:
		p.polyline([]math32.Vector2{s.Start, s.End}, s.Stroke)
	case paint.QuadraticBezier:
		p.polyline(p.flatten(s.Curve), s.Stroke)
	case paint.Rect:
		p.rect(s)
	}
}

func (p *Painter) circle(c paint.Circle) {
	if c.Fill.A > 0 {
		p.begin()
		p.polygon(circlePoints(c.Center, c.Radius), false)
		p.draw(c.Fill)
	}
	if !visible(c.Stroke) {
		return
	}
	hw := c.Stroke.Width / 2
	p.begin()
	p.polygon(circlePoints(c.Center, c.Radius+hw), false)
	if c.Radius > hw {
		p.polygon(circlePoints(c.Center, c.Radius-hw), true)
	}
	p.draw(c.Stroke.Color)
}

func (p *Painter) rect(r paint.Rect) {
	if r.Fill.A > 0 {
		p.begin()
		p.polygon(roundedRectPoints(r.Rect, r.Rounding), false)
		p.draw(r.Fill)
	}
	if !visible(r.Stroke) {
		return
	}
	hw := r.Stroke.Width / 2
	outer := r.Rect
	outer.ExpandByScalar(hw)
	inner := r.Rect
	inner.ExpandByScalar(-hw)
	p.begin()
	p.polygon(roundedRectPoints(outer, r.Rounding+hw), false)
	if !inner.IsEmpty() {
		p.polygon(roundedRectPoints(inner, math32.Max(r.Rounding-hw, 0)), true)
	}
	p.draw(r.Stroke.Color)
}

// polyline strokes the given points as the union of one quad per
// segment and a round join at each inner point.
func (p *Painter) polyline(pts []math32.Vector2, st styles.Stroke) {
	if !visible(st) || len(pts) < 2 {
		return
	}
	hw := st.Width / 2
	p.begin()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a).Normal()
		if d.IsZero() {
			continue
		}
		n := math32.Vec2(-d.Y, d.X).MulScalar(hw)
		p.polygon([]math32.Vector2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, false)
		if i < len(pts)-1 {
			p.polygon(circlePoints(b, hw), false)
		}
	}
	p.draw(st.Color)
}

// flatten returns the points of a polyline approximating the curve
// within [Painter.Tolerance].
func (p *Painter) flatten(b math32.QuadraticBezier) []math32.Vector2 {
	// the second difference of a quadratic is constant, so the
	// deviation of a chord spanning dt is at most |P0-2C+P2|*dt²/4.
	dd := b.Start.Sub(b.Control.MulScalar(2)).Add(b.End).Length()
	n := 1
	if dd > 0 {
		tol := math32.Max(p.Tolerance, 0.01)
		n = int(math32.Ceil(math32.Sqrt(dd / (4 * tol))))
		n = min(max(n, 1), 1000)
	}
	pts := make([]math32.Vector2, n+1)
	for i := range pts {
		pts[i] = b.Sample(float32(i) / float32(n))
	}
	return pts
}

func (p *Painter) begin() {
	sz := p.img.Bounds().Size()
	p.z.Reset(sz.X, sz.Y)
}

// polygon adds a closed polygon to the current path. All polygons are
// normalized to the same winding, unless hole is set, in which case the
// opposite winding is used to cut them out of the others.
func (p *Painter) polygon(pts []math32.Vector2, hole bool) {
	if len(pts) < 3 {
		return
	}
	if (signedArea(pts) > 0) != hole {
		// reverse to the normalized winding
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	off := math32.Vector2FromPoint(p.img.Bounds().Min)
	first := pts[0].Sub(off)
	p.z.MoveTo(first.X, first.Y)
	for _, pt := range pts[1:] {
		pt = pt.Sub(off)
		p.z.LineTo(pt.X, pt.Y)
	}
	p.z.ClosePath()
}

func (p *Painter) draw(c styles.Color) {
	b := p.img.Bounds()
	p.z.Draw(p.img, b, image.NewUniform(color.NRGBA(c)), image.Point{})
}

func visible(st styles.Stroke) bool {
	return st.Width > 0 && st.Color.A > 0
}

func signedArea(pts []math32.Vector2) float32 {
	var a float32
	for i, pt := range pts {
		nx := pts[(i+1)%len(pts)]
		a += pt.X*nx.Y - nx.X*pt.Y
	}
	return a / 2
}

// circlePoints returns a polygon approximating the given circle, with
// segments about two pixels long.
func circlePoints(c math32.Vector2, r float32) []math32.Vector2 {
	n := max(int(math32.Ceil(math32.Pi*r)), 12)
	pts := make([]math32.Vector2, n)
	for i := range pts {
		a := 2 * math32.Pi * float32(i) / float32(n)
		pts[i] = c.Add(math32.Vec2(r*math32.Cos(a), r*math32.Sin(a)))
	}
	return pts
}

// roundedRectPoints returns a polygon for the given box with corners
// rounded by the given radius, clamped to half the smaller side.
func roundedRectPoints(b math32.Box2, r float32) []math32.Vector2 {
	sz := b.Size()
	r = math32.Clamp(r, 0, math32.Min(sz.X, sz.Y)/2)
	if r < 0.5 {
		return []math32.Vector2{b.Min, math32.Vec2(b.Max.X, b.Min.Y), b.Max, math32.Vec2(b.Min.X, b.Max.Y)}
	}
	corners := []struct {
		c     math32.Vector2
		start float32
	}{
		{math32.Vec2(b.Max.X-r, b.Min.Y+r), -math32.Pi / 2},
		{math32.Vec2(b.Max.X-r, b.Max.Y-r), 0},
		{math32.Vec2(b.Min.X+r, b.Max.Y-r), math32.Pi / 2},
		{math32.Vec2(b.Min.X+r, b.Min.Y+r), math32.Pi},
	}
	steps := max(int(math32.Ceil(r/2)), 2)
	pts := make([]math32.Vector2, 0, 4*(steps+1))
	for _, cn := range corners {
		for i := 0; i <= steps; i++ {
			a := cn.start + (math32.Pi/2)*float32(i)/float32(steps)
			pts = append(pts, cn.c.Add(math32.Vec2(r*math32.Cos(a), r*math32.Sin(a))))
		}
	}
	return pts
}
