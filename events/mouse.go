// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"time"

	"cogentcore.org/cables/math32"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonsNames = [...]string{"NoButton", "Left", "Middle", "Right"}

// String returns the name of the button.
func (bt Buttons) String() string {
	if bt < 0 || int(bt) >= len(buttonsNames) {
		return fmt.Sprintf("Buttons(%d)", int32(bt))
	}
	return buttonsNames[bt]
}

// Mouse is a basic mouse event.
type Mouse struct {
	// Typ is the type of event.
	Typ Types

	// Button is the mouse button being pressed or released, if relevant.
	Button Buttons

	// Where is the position of the pointer in window coordinates.
	Where math32.Vector2

	// Prev is the previous position of the pointer, for motion events.
	Prev math32.Vector2

	// Start is where the button was first pressed, for drag events.
	Start math32.Vector2

	// GenTime is when the event was generated.
	GenTime time.Time
}

// NewMouse returns a new [Mouse] event of the given type, for the given
// button, at the given position.
func NewMouse(typ Types, but Buttons, where math32.Vector2) *Mouse {
	return &Mouse{Typ: typ, Button: but, Where: where, GenTime: time.Now()}
}

// NewMouseMove returns a new [MouseMove] event.
func NewMouseMove(where, prev math32.Vector2) *Mouse {
	ev := NewMouse(MouseMove, NoButton, where)
	ev.Prev = prev
	return ev
}

// NewMouseDrag returns a new [MouseDrag] event for the given held button.
func NewMouseDrag(but Buttons, where, prev, start math32.Vector2) *Mouse {
	ev := NewMouse(MouseDrag, but, where)
	ev.Prev = prev
	ev.Start = start
	return ev
}

// Type returns the type of event.
func (ev *Mouse) Type() Types {
	return ev.Typ
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Time: %v}", ev.Typ, ev.Button, ev.Where, ev.GenTime.Format("04:05"))
}
