// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cables

import (
	"fmt"

	"cogentcore.org/cables/ident"
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/styles/abilities"
	"cogentcore.org/cables/ui"
)

// PortParams are the parameters of the port being rendered.
type PortParams struct {
	// ID is the identity to allocate the port region with.
	ID ident.ID

	// Size is the size of the port.
	Size math32.Vector2

	// Hovered is whether a dragged plug is over the port.
	Hovered bool
}

// PlugParams are the parameters of the plug being rendered.
type PlugParams struct {
	// ID is the identity to allocate the plug region with.
	ID ident.ID

	// Rect is the region of the plug.
	Rect math32.Box2

	// Vector is the unit vector from the plugged port to the plug
	// while it is dragged away from it, and zero otherwise.
	Vector math32.Vector2

	// Active is whether the cable of the plug is active.
	Active bool

	// Plugged is whether the plug is plugged to a port.
	Plugged bool

	// Locked is whether the plug can not be dragged.
	Locked bool
}

// Sense returns what the plug region should sense: plugs can be dragged
// unless they are locked, or plugged to a port while their cable is inactive.
func (p *PlugParams) Sense() abilities.Abilities {
	if (p.Active || !p.Plugged) && !p.Locked {
		return abilities.New(abilities.Hoverable, abilities.Draggable)
	}
	return abilities.New(abilities.Hoverable)
}

// CableParams are the parameters of the cable being rendered.
type CableParams struct {
	// Active is whether the cable was last clicked on.
	Active bool

	// LineHovered is whether the pointer is near the cable.
	LineHovered bool

	// ControlHeld is whether the control was hovered in the last frame
	// or is being dragged, so it has to stay shown.
	ControlHeld bool

	// PlugsInteracted is whether either plug is hovered or dragged.
	PlugsInteracted bool

	// Bezier is the curve of the cable.
	Bezier math32.QuadraticBezier

	// Control is the control of the cable, to be shown with
	// [Control.Show] or [Control.Placeholder].
	Control *Control
}

// ShowControl returns whether the control should be shown: when the
// cable is hovered and neither plug is interacted with.
func (p *CableParams) ShowControl() bool {
	return (p.LineHovered || p.ControlHeld) && !p.PlugsInteracted
}

// ControlParams are the parameters of the cable control being rendered.
type ControlParams struct {
	// ID is the identity to allocate the control region with.
	ID ident.ID

	// Size is the default size of the control.
	Size math32.Vector2
}

type paramsKey[P any] struct{}

func setParams[P any](u ui.Ui, p *P) {
	u.Data().Set(ident.New(paramsKey[P]{}), p)
}

func clearParams[P any](u ui.Ui) {
	u.Data().Remove(ident.New(paramsKey[P]{}))
}

// withParams calls the given function with the given params published.
func withParams[P any](u ui.Ui, p *P, f func() ui.Response) ui.Response {
	setParams(u, p)
	defer clearParams[P](u)
	return f()
}

func getParams[P any](u ui.Ui) *P {
	p, ok := ui.DataGet[*P](u.Data(), ident.New(paramsKey[P]{}))
	if !ok {
		var zero P
		panic(fmt.Sprintf("cables: no %T available; it can only be used while rendering", zero))
	}
	return p
}

// GetPortParams returns the parameters of the port being rendered.
// It panics if no port is being rendered.
func GetPortParams(u ui.Ui) *PortParams {
	return getParams[PortParams](u)
}

// GetPlugParams returns the parameters of the plug being rendered.
// It panics if no plug is being rendered.
func GetPlugParams(u ui.Ui) *PlugParams {
	return getParams[PlugParams](u)
}

// GetCableParams returns the parameters of the cable being rendered.
// It panics if no cable is being rendered.
func GetCableParams(u ui.Ui) *CableParams {
	return getParams[CableParams](u)
}

// GetControlParams returns the parameters of the cable control being rendered.
// It panics if no cable control is being rendered.
func GetControlParams(u ui.Ui) *ControlParams {
	return getParams[ControlParams](u)
}
