// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cables

import (
	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/state"
	"cogentcore.org/cables/styles/abilities"
	"cogentcore.org/cables/ui"
)

// far is where regions that must not be interacted with are placed.
var far = math32.Vec2(-10, -10)

// Control is the handle that reshapes a cable, shown over the control
// point of its curve. Clicking it makes the cable active, and dragging
// it moves the control point.
type Control struct {
	cable  CableID
	pos    math32.Vector2
	widget Widget
}

// Pos returns the position of the control: the control point of the curve.
func (c *Control) Pos() math32.Vector2 {
	return c.pos
}

// Show shows the control centered on its position, on the [ui.Top] layer.
func (c *Control) Show(u ui.Ui) ui.Response {
	st := storeOf(u)
	topLeft := far
	if size, ok := state.Get[math32.Vector2](st, kindControlSize, c.cable.ID); ok {
		topLeft = c.pos.Sub(size.MulScalar(0.5))
	}
	var resp ui.Response
	u.WithLayer(ui.Top, func() {
		withCursor(u, topLeft, func() {
			params := &ControlParams{ID: controlRegionID(c.cable), Size: SettingsOf(u).controlSize()}
			resp = withParams(u, params, func() ui.Response {
				return widgetOr(c.widget, defaultControl).Render(u)
			})
		})
	})
	st.Set(kindControlSize, c.cable.ID, resp.Rect.Size())
	return resp
}

// Placeholder allocates an empty region that senses nothing in place of
// the control, for when it is not shown.
func (c *Control) Placeholder(u ui.Ui) ui.Response {
	return u.Allocate(controlRegionID(c.cable), math32.B2FromTwoPos(far, far), abilities.New())
}

// withCursor calls the given function with the layout cursor at the
// given position, and restores it afterward.
func withCursor(u ui.Ui, pos math32.Vector2, f func()) {
	prev := u.NextWidgetPos()
	u.SetNextWidgetPos(pos)
	defer u.SetNextWidgetPos(prev)
	f()
}
