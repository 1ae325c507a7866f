// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ui defines [Ui], the capabilities that an immediate-mode host
// toolkit provides to widgets, and [Context], a headless implementation
// of it that runs frames from synthetic pointer events.
package ui

import (
	"cogentcore.org/cables/events"
	"cogentcore.org/cables/ident"
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/paint"
	"cogentcore.org/cables/styles"
	"cogentcore.org/cables/styles/abilities"
)

// Ui is the host toolkit as seen by widgets during one frame.
// Widgets are shown by calling their methods with a Ui every frame.
type Ui interface {
	// FrameNumber returns the number of the current frame,
	// which increases by one every frame.
	FrameNumber() uint64

	// Allocate allocates the given rectangle for the widget with the
	// given identity, sensing the given abilities, and returns how the
	// pointer interacted with it.
	Allocate(id ident.ID, rect math32.Box2, sense abilities.Abilities) Response

	// AllocateSize allocates a rectangle of the given size at
	// [Ui.NextWidgetPos] and advances the layout past it.
	AllocateSize(id ident.ID, size math32.Vector2, sense abilities.Abilities) Response

	// NextWidgetPos returns where the next laid out widget will be placed.
	NextWidgetPos() math32.Vector2

	// SetNextWidgetPos sets where the next laid out widget will be placed.
	SetNextWidgetPos(pos math32.Vector2)

	// Pointer returns the state of the pointer in this frame.
	Pointer() *events.Pointer

	// Click returns where the primary button was clicked in this frame,
	// if it was released without dragging.
	Click() (math32.Vector2, bool)

	// Painter returns the painter for the current [Layer].
	Painter() paint.Painter

	// Layer returns the current layer.
	Layer() Layer

	// WithLayer calls the given function with the current layer set to
	// the given layer, and restores it afterward.
	WithLayer(l Layer, f func())

	// Data returns the data map persisted across frames.
	Data() *Data

	// IsRectVisible returns whether any part of the given rectangle is visible.
	IsRectVisible(r math32.Box2) bool

	// Visuals returns the current theme.
	Visuals() *styles.Visuals
}

// Layer is a painting and hit testing layer. Shapes and rectangles of
// a higher layer are painted over and take the pointer from lower ones.
type Layer int32

const (
	// Background is the lowest layer.
	Background Layer = iota

	// Middle is the default layer.
	Middle

	// Foreground is for widgets that can be dragged over others.
	Foreground

	// Top is the highest layer, used for handles.
	Top

	layersN
)

func (l Layer) String() string {
	switch l {
	case Background:
		return "Background"
	case Middle:
		return "Middle"
	case Foreground:
		return "Foreground"
	case Top:
		return "Top"
	}
	return "Layer(?)"
}
