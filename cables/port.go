// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cables

import (
	"log/slog"

	"cogentcore.org/cables/math32"
	"cogentcore.org/cables/state"
	"cogentcore.org/cables/ui"
)

// Port is a widget that plugs can be plugged to. It is laid out
// at [ui.Ui.NextWidgetPos] like any other widget.
type Port struct {
	id     PortID
	widget Widget
}

// NewPort returns a new port with the given identity.
func NewPort(id PortID) *Port {
	return &Port{id: id}
}

// SetWidget sets a custom look for the port. It should allocate the
// region given by [GetPortParams].
func (p *Port) SetWidget(w Widget) *Port {
	p.widget = w
	return p
}

// ID returns the identity of the port.
func (p *Port) ID() PortID {
	return p.id
}

// Show shows the port in the given [ui.Ui] and returns its response.
func (p *Port) Show(u ui.Ui) ui.Response {
	st := storeOf(u)
	set := SettingsOf(u)
	size := set.portSize()
	center := math32.B2FromPosSize(u.NextWidgetPos(), size).Center()

	dp, dragging := state.GetSingleton[draggedPlug](st, kindDraggedPlug)
	plugHovered := dragging && dp.Pos.DistanceTo(center) < (size.X+dp.Size.X)/2

	params := &PortParams{ID: portRegionID(p.id), Size: size, Hovered: plugHovered}
	resp := withParams(u, params, func() ui.Response {
		return widgetOr(p.widget, defaultPort).Render(u)
	})
	resp.Hovered = resp.Hovered || plugHovered

	st.AdvanceIfTwice(kindPortPos, p.id.ID)
	st.Set(kindPortPos, p.id.ID, resp.Rect.Center())

	hovered, ok := state.GetSingleton[PortID](st, kindHoveredPort)
	wasHovered := ok && hovered == p.id
	switch {
	case plugHovered:
		if !wasHovered {
			slog.Debug("cables: plug over port", "plug", dp.Plug, "port", p.id.ID)
		}
		st.SetSingleton(kindHoveredPort, p.id)
		eph := st.Ephemeral(u.FrameNumber())
		eph.SetEvent(plugRegionID(dp.Plug), Event{Type: HoveredOn, End: dp.Plug.End, Port: p.id})
	case wasHovered:
		st.ClearSingleton(kindHoveredPort)
	}
	return resp
}

func widgetOr(w Widget, def WidgetFunc) Widget {
	if w != nil {
		return w
	}
	return def
}
