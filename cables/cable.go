// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cables

import (
	"log/slog"

	"cogentcore.org/cables/ident"
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/state"
	"cogentcore.org/cables/ui"
)

// Cable is a widget that connects two plugs with a quadratic bezier
// curve. Hovering the curve shows a [Control] to reshape it, and
// clicking the curve, its control or its plugs makes it active, which
// makes its plugs draggable even when they are plugged.
// Ports should be shown before the cables in each frame.
type Cable struct {
	id      CableID
	in, out *Plug
	widget  Widget
	control Widget
}

// NewCable returns a new cable with the given identity and plugs.
func NewCable(id CableID, in, out *Plug) *Cable {
	return &Cable{id: id, in: in, out: out}
}

// SetWidget sets a custom look for the cable. It should show the
// control given by [GetCableParams] and paint the curve.
func (c *Cable) SetWidget(w Widget) *Cable {
	c.widget = w
	return c
}

// SetControl sets a custom look for the control of the cable. It should
// allocate a region of [ControlParams.Size] at [ui.Ui.NextWidgetPos].
func (c *Cable) SetControl(w Widget) *Cable {
	c.control = w
	return c
}

// ID returns the identity of the cable.
func (c *Cable) ID() CableID {
	return c.id
}

// Show shows the cable and its plugs in the given [ui.Ui].
func (c *Cable) Show(u ui.Ui) CableResponse {
	st := storeOf(u)
	set := SettingsOf(u)
	ptr := u.Pointer()
	cs := state.GetOr(st, kindCable, c.id.ID, cableState{})

	def := u.NextWidgetPos()
	in := c.in.show(u, PlugID{c.id, In}, cs.Active, def)
	out := c.out.show(u, PlugID{c.id, Out}, cs.Active, def)

	mid := in.NextPosition().Add(out.NextPosition()).MulScalar(0.5)
	bez := math32.NewQuadraticBezier(in.NextPosition(), mid.Add(cs.ControlOffset), out.NextPosition())

	params := &CableParams{
		Active:          cs.Active,
		LineHovered:     ptr.HasPos && nearCurve(bez, ptr.Pos, set.CableHoverDistance2),
		ControlHeld:     cs.ControlHovered || cs.ControlDragged,
		PlugsInteracted: in.Interacted() || out.Interacted(),
		Bezier:          bez,
		Control:         &Control{cable: c.id, pos: bez.Control, widget: c.control},
	}
	resp := withParams(u, params, func() ui.Response {
		return widgetOr(c.widget, defaultCable).Render(u)
	})

	if resp.DragStarted {
		cs.GrabOffset = ptr.PressOrigin.Sub(bez.Control)
		cs.ControlDragged = true
	}
	if cs.ControlDragged && (resp.Dragged || resp.DragReleased) {
		cs.ControlOffset = ptr.Pos.Sub(cs.GrabOffset).Sub(mid)
	}
	if !resp.Dragged {
		cs.ControlDragged = false
	}
	cs.ControlHovered = resp.Hovered

	if pos, ok := u.Click(); ok {
		active := resp.Clicked || resp.Hovered || in.Hovered || out.Hovered || nearCurve(bez, pos, set.CableHoverDistance2)
		if active != cs.Active {
			slog.Debug("cables: cable activation changed", "cable", c.id.ID, "active", active)
		}
		cs.Active = active
	}
	st.Set(kindCable, c.id.ID, cs)

	eph := st.Ephemeral(u.FrameNumber())
	for _, id := range []ident.ID{resp.ID, in.ID, out.ID} {
		eph.SetCable(id, c.id.ID)
	}
	eph.SetPlugs(resp.ID, in.ID, out.ID)
	return CableResponse{Response: resp, In: in, Out: out, eph: eph, active: cs.Active}
}

// nearCurve returns whether pt is within the squared distance of the
// curve, or of the circle it is drawn as if it is a loop.
func nearCurve(b math32.QuadraticBezier, pt math32.Vector2, dist2 float32) bool {
	if !b.IsLoop() {
		return b.IsNear(pt, dist2)
	}
	center, radius := b.LoopCircle()
	d := pt.DistanceTo(center) - radius
	return d*d < dist2
}
