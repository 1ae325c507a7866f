// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"testing"

	"cogentcore.org/cables/ident"
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/paint"
	"cogentcore.org/cables/styles/abilities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	drag  = abilities.New(abilities.Hoverable, abilities.Clickable, abilities.Draggable)
	click = abilities.New(abilities.Hoverable, abilities.Clickable)
	boxID = ident.New("box")
	topID = ident.New("top")
)

// frame runs one frame showing a draggable box, returning its response.
func frame(c *Context) Response {
	var resp Response
	c.RunFrame(func(u Ui) {
		resp = u.Allocate(boxID, math32.B2(0, 0, 10, 10), drag)
	})
	return resp
}

func TestHover(t *testing.T) {
	c := NewContext(math32.Vec2(100, 100))
	assert.False(t, frame(c).Hovered)
	c.MoveTo(math32.Vec2(5, 5))
	assert.True(t, frame(c).Hovered)
	c.MoveTo(math32.Vec2(50, 5))
	assert.False(t, frame(c).Hovered)
	c.MoveTo(math32.Vec2(5, 5))
	c.Leave()
	assert.False(t, frame(c).Hovered)
}

func TestOcclusion(t *testing.T) {
	c := NewContext(math32.Vec2(100, 100))
	c.MoveTo(math32.Vec2(5, 5))
	var box, top Response
	show := func() {
		c.RunFrame(func(u Ui) {
			box = u.Allocate(boxID, math32.B2(0, 0, 10, 10), drag)
			u.WithLayer(Top, func() {
				top = u.Allocate(topID, math32.B2(2, 2, 8, 8), click)
			})
			assert.Equal(t, Middle, u.Layer())
		})
	}
	show()
	show()
	assert.False(t, box.Hovered)
	assert.True(t, top.Hovered)
	assert.Equal(t, Top, top.Layer)

	c.Press()
	c.Release()
	show()
	assert.True(t, top.Clicked)
	assert.False(t, box.Clicked)
	assert.True(t, box.ClickedElsewhere)
}

func TestClick(t *testing.T) {
	c := NewContext(math32.Vec2(100, 100))
	c.MoveTo(math32.Vec2(5, 5))
	frame(c)
	c.Press()
	resp := frame(c)
	assert.False(t, resp.Clicked)
	assert.Equal(t, boxID, c.Active())
	c.Release()
	resp = frame(c)
	assert.True(t, resp.Clicked)
	assert.False(t, resp.DragReleased)
	pos, ok := c.Click()
	assert.True(t, ok)
	assert.Equal(t, math32.Vec2(5, 5), pos)
	assert.False(t, c.Active().IsValid())

	resp = frame(c)
	assert.False(t, resp.Clicked)
	_, ok = c.Click()
	assert.False(t, ok)

	// click outside
	c.MoveTo(math32.Vec2(50, 50))
	c.Press()
	c.Release()
	resp = frame(c)
	assert.False(t, resp.Clicked)
	assert.True(t, resp.ClickedElsewhere)
}

func TestDrag(t *testing.T) {
	c := NewContext(math32.Vec2(100, 100))
	c.MoveTo(math32.Vec2(5, 5))
	frame(c)
	c.Press()
	frame(c)

	c.MoveTo(math32.Vec2(6, 5))
	resp := frame(c)
	assert.False(t, resp.Dragged, "below the drag threshold")

	c.MoveTo(math32.Vec2(20, 5))
	resp = frame(c)
	require.True(t, resp.Dragged)
	assert.True(t, resp.DragStarted)
	assert.Equal(t, math32.Vec2(14, 0), resp.DragDelta)
	assert.True(t, c.Dragging())

	c.MoveTo(math32.Vec2(30, 8))
	resp = frame(c)
	assert.True(t, resp.Dragged)
	assert.False(t, resp.DragStarted)
	assert.Equal(t, math32.Vec2(10, 3), resp.DragDelta)

	c.Release()
	resp = frame(c)
	assert.False(t, resp.Dragged)
	assert.True(t, resp.DragReleased)
	assert.False(t, resp.Clicked, "a drag is not a click")
	_, ok := c.Click()
	assert.False(t, ok)
	assert.False(t, c.Dragging())
}

func TestDragHidesHover(t *testing.T) {
	c := NewContext(math32.Vec2(100, 100))
	other := ident.New(2)
	var box, rest Response
	show := func() {
		c.RunFrame(func(u Ui) {
			box = u.Allocate(boxID, math32.B2(0, 0, 10, 10), drag)
			rest = u.Allocate(other, math32.B2(40, 0, 60, 20), click)
		})
	}
	c.MoveTo(math32.Vec2(5, 5))
	show()
	c.Press()
	show()
	c.MoveTo(math32.Vec2(50, 10))
	show()
	assert.True(t, box.Dragged)
	assert.False(t, rest.Hovered, "only the dragged region is hovered during a drag")
}

func TestLayout(t *testing.T) {
	c := NewContext(math32.Vec2(100, 100))
	c.Spacing = 2
	c.RunFrame(func(u Ui) {
		a := u.AllocateSize(ident.New(1), math32.Vec2(10, 10), click)
		b := u.AllocateSize(ident.New(2), math32.Vec2(10, 10), click)
		assert.Equal(t, math32.B2(0, 0, 10, 10), a.Rect)
		assert.Equal(t, math32.B2(0, 12, 10, 22), b.Rect)
		u.SetNextWidgetPos(math32.Vec2(50, 50))
		assert.Equal(t, math32.Vec2(50, 50), u.NextWidgetPos())
		assert.True(t, u.IsRectVisible(math32.B2(90, 90, 110, 110)))
		assert.False(t, u.IsRectVisible(math32.B2(190, 90, 210, 110)))
		assert.Equal(t, uint64(1), u.FrameNumber())
	})
}

func TestPaintLayers(t *testing.T) {
	c := NewContext(math32.Vec2(100, 100))
	c.RunFrame(func(u Ui) {
		u.WithLayer(Top, func() {
			u.Painter().Add(paint.Circle{Radius: 3})
		})
		u.Painter().Add(paint.Circle{Radius: 2})
		u.WithLayer(Background, func() {
			u.Painter().Add(paint.Circle{Radius: 1})
		})
	})
	all := &paint.List{}
	c.RenderTo(all)
	circles := paint.Of[paint.Circle](all)
	require.Len(t, circles, 3)
	assert.Equal(t, float32(1), circles[0].Radius)
	assert.Equal(t, float32(2), circles[1].Radius)
	assert.Equal(t, float32(3), circles[2].Radius)
	assert.Equal(t, 1, c.Shapes(Top).Len())
}

func TestData(t *testing.T) {
	d := &Data{}
	n := DataGetOrInsert(d, ident.New("n"), func() *int { v := 3; return &v })
	*n = 4
	got, ok := DataGet[*int](d, ident.New("n"))
	assert.True(t, ok)
	assert.Equal(t, 4, *got)
	assert.Panics(t, func() { DataGet[string](d, ident.New("n")) })
	d.Remove(ident.New("n"))
	assert.Equal(t, 0, d.Len())
}
