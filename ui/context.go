// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"log/slog"

	"cogentcore.org/cables/events"
	"cogentcore.org/cables/ident"
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/paint"
	"cogentcore.org/cables/styles"
	"cogentcore.org/cables/styles/abilities"
)

// Context is a headless [Ui] host. It receives [events.Mouse] events,
// runs frames, hit tests allocated rectangles against those of the
// previous frame, and records the painted shapes of each layer.
type Context struct {
	// Theme is the current theme.
	Theme styles.Visuals

	// Viewport is the visible area.
	Viewport math32.Box2

	// DragThreshold is how far the pointer has to move while pressed
	// before a drag starts.
	DragThreshold float32

	// Spacing is the gap left between laid out widgets.
	Spacing float32

	frame   uint64
	queue   events.Queue
	pointer events.Pointer
	data    Data

	layers [layersN]paint.List
	layer  Layer
	cursor math32.Vector2

	// regions are the rectangles allocated in this frame, and
	// prevRegions those of the previous frame, in allocation order.
	regions     []region
	prevRegions []region

	// hoverTop is the topmost sensing region of the previous frame
	// under the pointer.
	hoverTop ident.ID

	// active is the region the primary button was pressed on.
	active   ident.ID
	dragging bool

	// dragStart is the frame the current drag started in.
	dragStart uint64
	click     bool
}

type region struct {
	id    ident.ID
	rect  math32.Box2
	sense abilities.Abilities
	layer Layer
}

// NewContext returns a new headless [Context] with the given viewport size.
func NewContext(size math32.Vector2) *Context {
	return &Context{
		Theme:         styles.Light(),
		Viewport:      math32.B2FromPosSize(math32.Vector2{}, size),
		DragThreshold: 3,
		Spacing:       4,
		layer:         Middle,
	}
}

// Send queues the given event for the next frame.
func (c *Context) Send(ev *events.Mouse) {
	c.queue.Send(ev)
}

// MoveTo queues a move of the pointer to the given position,
// which is a drag if the primary button is down.
func (c *Context) MoveTo(pos math32.Vector2) {
	if c.pointer.Down || c.pendingDown() {
		c.Send(events.NewMouseDrag(events.Left, pos, c.lastPos(), c.pointer.PressOrigin))
		return
	}
	c.Send(events.NewMouseMove(pos, c.lastPos()))
}

// Press queues a press of the primary button at the current position.
func (c *Context) Press() {
	c.Send(events.NewMouse(events.MouseDown, events.Left, c.lastPos()))
}

// Release queues a release of the primary button at the current position.
func (c *Context) Release() {
	c.Send(events.NewMouse(events.MouseUp, events.Left, c.lastPos()))
}

// Leave queues the pointer leaving the window.
func (c *Context) Leave() {
	c.Send(events.NewMouse(events.MouseLeave, events.NoButton, c.lastPos()))
}

// lastPos returns the position of the pointer after the queued events.
func (c *Context) lastPos() math32.Vector2 {
	for i := c.queue.Len() - 1; i >= 0; i-- {
		if ev := c.queue.At(i); ev.Typ != events.MouseLeave {
			return ev.Where
		}
	}
	return c.pointer.Pos
}

// pendingDown returns whether the primary button is down after the queued events.
func (c *Context) pendingDown() bool {
	for i := c.queue.Len() - 1; i >= 0; i-- {
		ev := c.queue.At(i)
		if ev.Button != events.Left {
			continue
		}
		switch ev.Typ {
		case events.MouseDown:
			return true
		case events.MouseUp:
			return false
		}
	}
	return c.pointer.Down
}

// RunFrame runs one frame, calling the given function to show the widgets.
func (c *Context) RunFrame(f func(u Ui)) {
	c.BeginFrame()
	f(c)
	c.EndFrame()
}

// BeginFrame starts a new frame, applying the queued events.
func (c *Context) BeginFrame() {
	c.frame++
	c.pointer.BeginFrame()
	for ev := c.queue.NextEvent(); ev != nil; ev = c.queue.NextEvent() {
		c.pointer.Handle(ev)
	}
	c.prevRegions, c.regions = c.regions, c.prevRegions[:0]
	for i := range c.layers {
		c.layers[i].Reset()
	}
	c.layer = Middle
	c.cursor = c.Viewport.Min

	c.hoverTop = ident.ID{}
	if c.pointer.HasPos {
		if r, ok := c.topAt(c.pointer.Pos, abilities.Hoverable|abilities.Clickable|abilities.Draggable); ok {
			c.hoverTop = r.id
		}
	}
	if c.pointer.Pressed {
		c.active = ident.ID{}
		c.dragging = false
		if r, ok := c.topAt(c.pointer.PressOrigin, abilities.Clickable|abilities.Draggable); ok {
			c.active = r.id
		}
	}
	if c.active.IsValid() && !c.dragging && c.pointer.DragDistance() >= c.DragThreshold {
		if c.pointer.Down || c.pointer.Released {
			c.dragging = true
			c.dragStart = c.frame
			slog.Debug("ui: drag started", "id", c.active)
		}
	}
	c.click = c.pointer.Released && !c.dragging && c.pointer.HasPos
}

// EndFrame ends the current frame.
func (c *Context) EndFrame() {
	if c.pointer.Released {
		c.active = ident.ID{}
		c.dragging = false
	}
}

// topAt returns the topmost region of the previous frame containing
// pos and sensing any of the given abilities.
func (c *Context) topAt(pos math32.Vector2, sense abilities.Abilities) (region, bool) {
	var top region
	found := false
	for _, r := range c.prevRegions {
		if r.sense&sense == 0 || !r.rect.ContainsPoint(pos) {
			continue
		}
		if !found || r.layer >= top.layer {
			top = r
			found = true
		}
	}
	return top, found
}

// RenderTo paints the shapes of the last frame onto the given painter,
// layer by layer.
func (c *Context) RenderTo(p paint.Painter) {
	for i := range c.layers {
		c.layers[i].ReplayTo(p)
	}
}

// Shapes returns the shapes painted on the given layer in the last frame.
func (c *Context) Shapes(l Layer) *paint.List {
	return &c.layers[l]
}

// Active returns the identity of the region the primary button
// is held on, which is invalid if there is none.
func (c *Context) Active() ident.ID {
	return c.active
}

// Dragging returns whether the active region is being dragged.
func (c *Context) Dragging() bool {
	return c.dragging
}

func (c *Context) FrameNumber() uint64 {
	return c.frame
}

func (c *Context) Allocate(id ident.ID, rect math32.Box2, sense abilities.Abilities) Response {
	c.regions = append(c.regions, region{id: id, rect: rect, sense: sense, layer: c.layer})
	resp := Response{ID: id, Rect: rect, Sense: sense, Layer: c.layer}
	if sense == 0 {
		return resp
	}
	p := &c.pointer
	isActive := c.active.IsValid() && c.active == id
	if p.HasPos && rect.ContainsPoint(p.Pos) {
		switch {
		case c.dragging:
			resp.Hovered = isActive
		default:
			resp.Hovered = !c.hoverTop.IsValid() || c.hoverTop == id
		}
	}
	if c.click {
		if isActive && sense.HasFlag(abilities.Clickable) && rect.ContainsPoint(p.Pos) {
			resp.Clicked = true
		} else {
			resp.ClickedElsewhere = true
		}
	}
	if isActive && c.dragging && sense.HasFlag(abilities.Draggable) {
		switch {
		case p.Released:
			resp.DragReleased = true
		default:
			resp.Dragged = true
			resp.DragStarted = c.dragStart == c.frame
			resp.DragDelta = p.Delta
		}
	}
	return resp
}

func (c *Context) AllocateSize(id ident.ID, size math32.Vector2, sense abilities.Abilities) Response {
	rect := math32.B2FromPosSize(c.cursor, size)
	c.cursor.Y += size.Y + c.Spacing
	return c.Allocate(id, rect, sense)
}

func (c *Context) NextWidgetPos() math32.Vector2 {
	return c.cursor
}

func (c *Context) SetNextWidgetPos(pos math32.Vector2) {
	c.cursor = pos
}

func (c *Context) Pointer() *events.Pointer {
	return &c.pointer
}

func (c *Context) Click() (math32.Vector2, bool) {
	return c.pointer.Pos, c.click
}

func (c *Context) Painter() paint.Painter {
	return &c.layers[c.layer]
}

func (c *Context) Layer() Layer {
	return c.layer
}

func (c *Context) WithLayer(l Layer, f func()) {
	prev := c.layer
	c.layer = l
	defer func() { c.layer = prev }()
	f()
}

func (c *Context) Data() *Data {
	return &c.data
}

func (c *Context) IsRectVisible(r math32.Box2) bool {
	return c.Viewport.IntersectsBox(r)
}

func (c *Context) Visuals() *styles.Visuals {
	return &c.Theme
}
