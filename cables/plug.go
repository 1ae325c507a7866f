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

// Plug is one end of a [Cable]. It is either plugged to a port, in which
// case it follows the port, or unplugged at a free position. Dragging it
// onto a port and dropping it there emits a [Connected] event; dropping a
// plugged plug away from any port emits a [Disconnected] event. The caller
// is responsible for updating what the plug is plugged to in response.
type Plug struct {
	to     PortID
	pos    math32.Vector2
	hasPos bool
	locked bool
	widget Widget
}

// PlugTo returns a new plug plugged to the port with the given identity value.
func PlugTo[T comparable](port T) *Plug {
	return PlugToID(NewPortID(port))
}

// PlugToID returns a new plug plugged to the given port.
func PlugToID(port PortID) *Plug {
	return &Plug{to: port}
}

// Unplugged returns a new plug that is not plugged to any port.
func Unplugged() *Plug {
	return &Plug{}
}

// SetPos sets the position of the plug when it is not plugged or its
// port is not shown. It is used initially, and again whenever it changes.
func (p *Plug) SetPos(pos math32.Vector2) *Plug {
	p.pos = pos
	p.hasPos = true
	return p
}

// Lock makes the plug impossible to drag.
func (p *Plug) Lock() *Plug {
	p.locked = true
	return p
}

// SetWidget sets a custom look for the plug. It should allocate the
// region given by [GetPlugParams] with the sense of [PlugParams.Sense].
func (p *Plug) SetWidget(w Widget) *Plug {
	p.widget = w
	return p
}

// To returns the port the plug is plugged to, which is invalid if it is unplugged.
func (p *Plug) To() PortID {
	return p.to
}

// Plugged returns whether the plug is plugged to a port.
func (p *Plug) Plugged() bool {
	return p.to.IsValid()
}

// Locked returns whether the plug is locked.
func (p *Plug) Locked() bool {
	return p.locked
}

// show shows the plug as the given end of a cable, at the given
// default position if it has no other.
func (p *Plug) show(u ui.Ui, id PlugID, cableActive bool, def math32.Vector2) PlugResponse {
	st := storeOf(u)
	set := SettingsOf(u)
	ptr := u.Pointer()

	ps, ok := state.Get[plugState](st, kindPlug, id.key())
	switch {
	case !ok:
		ps.Pos = def
		if p.hasPos {
			ps.Pos = p.pos
		}
	case p.hasPos && (!ps.HasRequested || ps.Requested != p.pos):
		ps.Pos = p.pos
	}
	ps.Requested, ps.HasRequested = p.pos, p.hasPos

	var portPos math32.Vector2
	portKnown := false
	if p.Plugged() {
		portPos, portKnown = state.Get[math32.Vector2](st, kindPortPos, p.to.ID)
	}
	switch {
	case ps.Dragged:
		if ptr.HasPos {
			ps.Pos = ptr.Pos.Sub(ps.Offset)
		}
	case portKnown:
		ps.Pos = portPos
	}

	size := set.plugSize()
	params := &PlugParams{
		ID:      plugRegionID(id),
		Rect:    math32.B2FromCenterSize(ps.Pos, size),
		Active:  cableActive,
		Plugged: p.Plugged(),
		Locked:  p.locked,
	}
	if ps.Dragged && portKnown {
		params.Vector = ps.Pos.Sub(portPos).Normal()
	}
	layer := ui.Middle
	if params.Sense().IsPressable() {
		layer = ui.Foreground
	}

	var resp ui.Response
	u.WithLayer(layer, func() {
		resp = withParams(u, params, func() ui.Response {
			return widgetOr(p.widget, defaultPlug).Render(u)
		})
	})

	if resp.DragStarted {
		ps.Offset = ptr.PressOrigin.Sub(ps.Pos)
		ps.Dragged = true
		ps.Pos = ptr.Pos.Sub(ps.Offset)
	}
	if ps.Dragged && resp.Dragged {
		st.SetSingleton(kindDraggedPlug, draggedPlug{Plug: id, Pos: ps.Pos, Size: resp.Rect.Size()})
	}

	eph := st.Ephemeral(u.FrameNumber())
	if resp.DragReleased {
		ps.Pos = ptr.Pos.Sub(ps.Offset)
		ps.Dragged = false
		ps.Offset = math32.Vector2{}
		hovered, over := state.GetSingleton[PortID](st, kindHoveredPort)
		switch {
		case over:
			slog.Debug("cables: plug connected", "plug", id, "port", hovered.ID)
			eph.SetEvent(resp.ID, Event{Type: Connected, End: id.End, Port: hovered})
		case p.Plugged():
			slog.Debug("cables: plug disconnected", "plug", id, "port", p.to.ID)
			eph.SetEvent(resp.ID, Event{Type: Disconnected, End: id.End})
		}
		st.ClearSingleton(kindDraggedPlug)
		st.ClearSingleton(kindHoveredPort)
	} else if ps.Dragged && !resp.Dragged {
		// the drag ended without a release, such as when the plug
		// became locked while dragged
		ps.Dragged = false
		st.ClearSingleton(kindDraggedPlug)
	}
	st.Set(kindPlug, id.key(), ps)

	return PlugResponse{Response: resp, eph: eph, end: id.End, next: ps.Pos}
}
