// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cables

import (
	"cogentcore.org/cables/paint"
	"cogentcore.org/cables/styles"
	"cogentcore.org/cables/styles/abilities"
	"cogentcore.org/cables/ui"
)

// defaultPort is a circle.
func defaultPort(u ui.Ui) ui.Response {
	p := GetPortParams(u)
	resp := u.AllocateSize(p.ID, p.Size, abilities.New(abilities.Hoverable, abilities.Clickable))
	if !u.IsRectVisible(resp.Rect) {
		return resp
	}
	w := &u.Visuals().Widgets
	vis := w.For(styles.StateOf(p.Hovered || resp.Hovered, false))
	u.Painter().Add(paint.Circle{
		Center: resp.Rect.Center(),
		Radius: resp.Rect.Size().Y / 2,
		Fill:   vis.BgFill,
		Stroke: vis.FgStroke,
	})
	return resp
}

// defaultPlug is a dot that grows while its cable is active, with an
// arrow away from its port while dragged.
func defaultPlug(u ui.Ui) ui.Response {
	p := GetPlugParams(u)
	resp := u.Allocate(p.ID, p.Rect, p.Sense())
	if !u.IsRectVisible(resp.Rect) {
		return resp
	}
	w := &u.Visuals().Widgets
	vis := w.For(styles.StateOf(resp.Hovered, resp.Dragged))
	if p.Locked {
		vis = w.Noninteractive
	}
	center := resp.Rect.Center()
	radius := resp.Rect.Size().X / 2
	if resp.Dragged && !p.Vector.IsZero() {
		paint.Arrow(u.Painter(), center, p.Vector.MulScalar(radius*1.5), styles.Stroke{Width: 2, Color: vis.FgStroke.Color})
	}
	scale := float32(0.2)
	if p.Active {
		scale = 0.7
	}
	u.Painter().Add(paint.Circle{
		Center: center,
		Radius: radius * scale,
		Fill:   vis.FgStroke.Color,
		Stroke: vis.FgStroke,
	})
	return resp
}

// defaultCable is the curve, or a circle for a loop, with the control
// shown while the curve is hovered.
func defaultCable(u ui.Ui) ui.Response {
	p := GetCableParams(u)
	var resp ui.Response
	if p.ShowControl() {
		resp = p.Control.Show(u)
	} else {
		resp = p.Control.Placeholder(u)
	}
	if !u.IsRectVisible(p.Bezier.Bounds()) {
		return resp
	}
	w := &u.Visuals().Widgets
	vis := w.For(styles.StateOf(p.LineHovered || resp.Hovered, p.Active || resp.Dragged))
	if p.Bezier.IsLoop() {
		center, radius := p.Bezier.LoopCircle()
		u.Painter().Add(paint.Circle{Center: center, Radius: radius, Stroke: vis.FgStroke})
		return resp
	}
	u.Painter().Add(paint.QuadraticBezier{Curve: p.Bezier, Stroke: vis.FgStroke})
	return resp
}

// defaultControl is a rounded square.
func defaultControl(u ui.Ui) ui.Response {
	p := GetControlParams(u)
	resp := u.AllocateSize(p.ID, p.Size, abilities.New(abilities.Hoverable, abilities.Clickable, abilities.Draggable))
	if !u.IsRectVisible(resp.Rect) {
		return resp
	}
	vis := u.Visuals().Widgets.For(styles.StateOf(resp.Hovered, resp.Dragged))
	u.Painter().Add(paint.Rect{Rect: resp.Rect, Rounding: vis.Rounding, Fill: vis.BgFill, Stroke: vis.FgStroke})
	return resp
}
