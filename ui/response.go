// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"fmt"

	"cogentcore.org/cables/ident"
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/styles/abilities"
)

// Response is the result of allocating a rectangle: how the pointer
// interacted with it in this frame.
type Response struct {
	// ID is the identity the rectangle was allocated for.
	ID ident.ID

	// Rect is the allocated rectangle.
	Rect math32.Box2

	// Sense is the abilities that were sensed.
	Sense abilities.Abilities

	// Layer is the layer the rectangle was allocated on.
	Layer Layer

	// Hovered is whether the pointer is over the rectangle and not over
	// anything above it.
	Hovered bool

	// Clicked is whether the rectangle was clicked in this frame.
	Clicked bool

	// ClickedElsewhere is whether something other than the rectangle
	// was clicked in this frame.
	ClickedElsewhere bool

	// DragStarted is whether a drag of the rectangle started in this frame.
	DragStarted bool

	// Dragged is whether the rectangle is being dragged.
	Dragged bool

	// DragReleased is whether a drag of the rectangle ended in this frame.
	DragReleased bool

	// DragDelta is how far the pointer moved during the drag in this frame.
	DragDelta math32.Vector2
}

// Interacted returns whether the rectangle is hovered or dragged,
// or its drag ended in this frame.
func (r Response) Interacted() bool {
	return r.Hovered || r.Dragged || r.DragStarted || r.DragReleased
}

// Union returns a response for the union of both rectangles that
// is hovered, clicked or dragged if either one is. Its identity,
// sense and layer are those of r.
func (r Response) Union(o Response) Response {
	r.Rect = r.Rect.Union(o.Rect)
	r.Hovered = r.Hovered || o.Hovered
	r.Clicked = r.Clicked || o.Clicked
	r.ClickedElsewhere = r.ClickedElsewhere && o.ClickedElsewhere
	r.DragStarted = r.DragStarted || o.DragStarted
	r.Dragged = r.Dragged || o.Dragged
	r.DragReleased = r.DragReleased || o.DragReleased
	r.DragDelta = r.DragDelta.Add(o.DragDelta)
	return r
}

func (r Response) String() string {
	return fmt.Sprintf("Response{%v %v %v hovered=%t dragged=%t}", r.ID, r.Rect, r.Sense, r.Hovered, r.Dragged)
}
