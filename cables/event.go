// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cables

import "fmt"

// EventTypes are the types of [Event].
type EventTypes int32

const (
	// Connected is when a plug is dropped on a port.
	Connected EventTypes = iota + 1

	// Disconnected is when a plug that was plugged to a port is dropped
	// away from any port.
	Disconnected

	// HoveredOn is when a dragged plug is over a port.
	HoveredOn
)

func (t EventTypes) String() string {
	switch t {
	case Connected:
		return "Connected"
	case Disconnected:
		return "Disconnected"
	case HoveredOn:
		return "HoveredOn"
	}
	return "EventTypes(?)"
}

// Event is something that happened to a plug in a frame.
type Event struct {
	// Type is the type of event.
	Type EventTypes

	// End is the end of the cable of the plug.
	End PlugEnd

	// Port is the port for [Connected] and [HoveredOn].
	Port PortID
}

func (ev Event) String() string {
	if ev.Type == Disconnected {
		return fmt.Sprintf("%v{%v}", ev.Type, ev.End)
	}
	return fmt.Sprintf("%v{%v %v}", ev.Type, ev.End, ev.Port.ID)
}
