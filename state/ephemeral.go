// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "cogentcore.org/cables/ident"

// Ephemeral is per-frame scratch space, keyed by the identity of the
// responses of the widgets rendered in the frame. It is rebuilt every
// frame and never consulted across frames.
type Ephemeral struct {
	frame uint64

	// cableOf maps a response to the cable it belongs to.
	cableOf map[ident.ID]ident.ID

	// events maps a response to the event that happened to it.
	events map[ident.ID]any

	// plugsOf maps the response of a cable to the responses of its
	// in-plug and out-plug.
	plugsOf map[ident.ID][2]ident.ID
}

func newEphemeral(frame uint64) *Ephemeral {
	return &Ephemeral{
		frame:   frame,
		cableOf: map[ident.ID]ident.ID{},
		events:  map[ident.ID]any{},
		plugsOf: map[ident.ID][2]ident.ID{},
	}
}

// Frame returns the frame number the scratch space belongs to.
func (e *Ephemeral) Frame() uint64 {
	return e.frame
}

// SetCable records that the given response belongs to the given cable.
func (e *Ephemeral) SetCable(response, cable ident.ID) {
	e.cableOf[response] = cable
}

// Cable returns the cable the given response belongs to.
func (e *Ephemeral) Cable(response ident.ID) (ident.ID, bool) {
	c, ok := e.cableOf[response]
	return c, ok
}

// SetEvent records the event that happened to the given response this frame,
// replacing any previous one.
func (e *Ephemeral) SetEvent(response ident.ID, event any) {
	e.events[response] = event
}

// SetPlugs records the in-plug and out-plug responses of the given cable response.
func (e *Ephemeral) SetPlugs(cable, in, out ident.ID) {
	e.plugsOf[cable] = [2]ident.ID{in, out}
}

// Plugs returns the in-plug and out-plug responses of the given cable response.
func (e *Ephemeral) Plugs(cable ident.ID) (in, out ident.ID, ok bool) {
	p, ok := e.plugsOf[cable]
	return p[0], p[1], ok
}

// EventOf returns the event of type E recorded for the given response this frame.
// It panics if an event of a different type was recorded.
func EventOf[E any](e *Ephemeral, response ident.ID) (E, bool) {
	ev, ok := e.events[response]
	if !ok {
		var zero E
		return zero, false
	}
	return mustType[E](ev, -1, response.String())
}
