// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of low-level pointer event delivered by the
// host toolkit. Higher-level interactions (hover, click, drag start,
// drag release) are derived from these by the ui package every frame.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button for which.
	MouseUp

	// MouseMove is sent when the mouse is moving but no button is down.
	// Not unique, and Prev position is updated during compression.
	MouseMove

	// MouseDrag is sent when the mouse is moving and there
	// is a button down. The start pos indicates where the button
	// was first pressed. Not unique and Prev position is updated
	// during compression.
	MouseDrag

	// MouseLeave is when the mouse leaves the window, after which
	// there is no pointer position until the next move.
	MouseLeave
)

var typesNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "MouseDrag", "MouseLeave"}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typesNames) {
		return "Types(" + strconv.Itoa(int(tp)) + ")"
	}
	return typesNames[tp]
}

// IsMotion returns whether the event type moves the pointer.
func (tp Types) IsMotion() bool {
	return tp == MouseMove || tp == MouseDrag
}
