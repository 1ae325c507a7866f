// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cables

import (
	"cogentcore.org/cables/ident"
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/state"
	"cogentcore.org/cables/ui"
)

// kinds of values kept in the [state.Store].
const (
	// kindPortPos is the center of a port, keyed by PortID.
	kindPortPos state.Kind = iota

	// kindPlug is a plugState, keyed by PlugID.
	kindPlug

	// kindCable is a cableState, keyed by CableID.
	kindCable

	// kindControlSize is the size of the control of a cable, keyed by CableID.
	kindControlSize

	// kindHoveredPort is the singleton PortID of the port hovered by
	// the dragged plug.
	kindHoveredPort

	// kindDraggedPlug is the singleton draggedPlug.
	kindDraggedPlug
)

// plugState is the state of a plug that persists across frames.
type plugState struct {
	// Pos is the center of the plug.
	Pos math32.Vector2

	// Requested is the last position set by the caller with [Plug.SetPos].
	Requested math32.Vector2

	// HasRequested is whether Requested is set.
	HasRequested bool

	// Dragged is whether the plug is being dragged.
	Dragged bool

	// Offset is the vector from the plug center to where it was grabbed.
	Offset math32.Vector2
}

// cableState is the state of a cable that persists across frames.
type cableState struct {
	// ControlOffset is the offset of the bezier control point from
	// the midpoint of the plugs.
	ControlOffset math32.Vector2

	// Active is whether the cable was last clicked on.
	Active bool

	// ControlDragged is whether the control is being dragged.
	ControlDragged bool

	// ControlHovered is whether the control was hovered in the last frame.
	ControlHovered bool

	// GrabOffset is the vector from the control point to where the
	// control was grabbed.
	GrabOffset math32.Vector2
}

// draggedPlug is the geometry of the plug being dragged.
type draggedPlug struct {
	Plug PlugID
	Pos  math32.Vector2
	Size math32.Vector2
}

type storeKey struct{}

// storeOf returns the store of the cable widgets shown in the given [ui.Ui].
func storeOf(u ui.Ui) *state.Store {
	return ui.DataGetOrInsert(u.Data(), ident.New(storeKey{}), state.NewStore)
}

// PortPos returns the center of the given port when it was last shown,
// if it was shown in the current or previous generation.
func PortPos(u ui.Ui, id PortID) (math32.Vector2, bool) {
	return state.Get[math32.Vector2](storeOf(u), kindPortPos, id.ID)
}

// Generation returns the number of times the state of the cable
// widgets shown in the given [ui.Ui] rolled over to a new generation.
func Generation(u ui.Ui) uint64 {
	return storeOf(u).Generation()
}
