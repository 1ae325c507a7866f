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

// PlugResponse is the response of a plug in a frame.
type PlugResponse struct {
	ui.Response

	eph  *state.Ephemeral
	end  PlugEnd
	next math32.Vector2
}

// End returns which end of its cable the plug is.
func (r PlugResponse) End() PlugEnd {
	return r.end
}

// Event returns the event that happened to the plug in the frame, if any.
func (r PlugResponse) Event() (Event, bool) {
	return eventOf(r.eph, r.ID)
}

// ConnectedTo returns the port the plug was dropped on in the frame, if any.
func (r PlugResponse) ConnectedTo() (PortID, bool) {
	ev, ok := r.Event()
	if !ok || ev.Type != Connected {
		return PortID{}, false
	}
	return ev.Port, true
}

// Disconnected returns whether the plug was dropped away from its port in the frame.
func (r PlugResponse) Disconnected() bool {
	ev, ok := r.Event()
	return ok && ev.Type == Disconnected
}

// HoveredOn returns the port the plug is dragged over in the frame, if any.
func (r PlugResponse) HoveredOn() (PortID, bool) {
	ev, ok := r.Event()
	if !ok || ev.Type != HoveredOn {
		return PortID{}, false
	}
	return ev.Port, true
}

// NextPosition returns the position of the plug at the end of the frame,
// which the caller can pass to [Plug.SetPos] in the next frame to keep
// an unplugged plug where it was dropped.
func (r PlugResponse) NextPosition() math32.Vector2 {
	return r.next
}

// CableResponse is the response of a cable in a frame. Its embedded
// [ui.Response] is that of the cable control.
type CableResponse struct {
	ui.Response

	// In is the response of the in-plug.
	In PlugResponse

	// Out is the response of the out-plug.
	Out PlugResponse

	eph    *state.Ephemeral
	active bool
}

// InPlug returns the response of the in-plug.
func (r CableResponse) InPlug() PlugResponse {
	return r.In
}

// OutPlug returns the response of the out-plug.
func (r CableResponse) OutPlug() PlugResponse {
	return r.Out
}

// Cable returns the cable the response belongs to.
func (r CableResponse) Cable() (CableID, bool) {
	if r.eph == nil {
		return CableID{}, false
	}
	id, ok := r.eph.Cable(r.ID)
	return CableID{id}, ok
}

// Active returns whether the cable is active.
func (r CableResponse) Active() bool {
	return r.active
}

// Event returns the event that happened to either plug of the cable in
// the frame, if any. A connect or disconnect takes precedence over a
// hover, and the in-plug takes precedence over the out-plug.
func (r CableResponse) Event() (Event, bool) {
	in, out, ok := r.eph.Plugs(r.ID)
	if !ok {
		return Event{}, false
	}
	inEv, inOk := eventOf(r.eph, in)
	outEv, outOk := eventOf(r.eph, out)
	switch {
	case inOk && inEv.Type != HoveredOn:
		return inEv, true
	case outOk && outEv.Type != HoveredOn:
		return outEv, true
	case inOk:
		return inEv, true
	}
	return outEv, outOk
}

// ConnectedTo returns the port either plug was dropped on in the frame, if any.
func (r CableResponse) ConnectedTo() (PortID, bool) {
	ev, ok := r.Event()
	if !ok || ev.Type != Connected {
		return PortID{}, false
	}
	return ev.Port, true
}

// InConnectedTo returns the port the in-plug was dropped on in the frame, if any.
func (r CableResponse) InConnectedTo() (PortID, bool) {
	return r.In.ConnectedTo()
}

// OutConnectedTo returns the port the out-plug was dropped on in the frame, if any.
func (r CableResponse) OutConnectedTo() (PortID, bool) {
	return r.Out.ConnectedTo()
}

// Disconnected returns whether either plug was dropped away from its port in the frame.
func (r CableResponse) Disconnected() bool {
	ev, ok := r.Event()
	return ok && ev.Type == Disconnected
}

// InDisconnected returns whether the in-plug was dropped away from its port in the frame.
func (r CableResponse) InDisconnected() bool {
	return r.In.Disconnected()
}

// OutDisconnected returns whether the out-plug was dropped away from its port in the frame.
func (r CableResponse) OutDisconnected() bool {
	return r.Out.Disconnected()
}

func eventOf(eph *state.Ephemeral, id ident.ID) (Event, bool) {
	if eph == nil {
		return Event{}, false
	}
	return state.EventOf[Event](eph, id)
}
