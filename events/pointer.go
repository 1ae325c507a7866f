// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "cogentcore.org/cables/math32"

// Pointer is the state of the primary pointer during one frame,
// accumulated from the low-level [Mouse] events received since the
// last frame.
type Pointer struct {
	// Pos is the latest known position of the pointer.
	Pos math32.Vector2

	// HasPos is whether Pos is valid, which is false before the first
	// event and after the pointer left the window.
	HasPos bool

	// Down is whether the primary button is held down at the end of the frame.
	Down bool

	// PressOrigin is where the primary button was last pressed.
	PressOrigin math32.Vector2

	// Pressed is whether the primary button went down during the frame.
	Pressed bool

	// Released is whether the primary button went up during the frame.
	Released bool

	// Delta is the total movement of the pointer during the frame.
	Delta math32.Vector2
}

// BeginFrame resets the per-frame fields of the pointer, keeping
// its position and button state.
func (p *Pointer) BeginFrame() {
	p.Pressed = false
	p.Released = false
	p.Delta = math32.Vector2{}
}

// Handle updates the pointer state from the given event.
// Only the [Left] button is treated as the primary button.
func (p *Pointer) Handle(ev *Mouse) {
	switch ev.Typ {
	case MouseMove, MouseDrag:
		if p.HasPos {
			p.Delta = p.Delta.Add(ev.Where.Sub(p.Pos))
		}
		p.Pos = ev.Where
		p.HasPos = true
	case MouseDown:
		p.setPos(ev.Where)
		if ev.Button == Left {
			p.Down = true
			p.Pressed = true
			p.PressOrigin = ev.Where
		}
	case MouseUp:
		p.setPos(ev.Where)
		if ev.Button == Left {
			p.Down = false
			p.Released = true
		}
	case MouseLeave:
		p.HasPos = false
	}
}

func (p *Pointer) setPos(where math32.Vector2) {
	if p.HasPos {
		p.Delta = p.Delta.Add(where.Sub(p.Pos))
	}
	p.Pos = where
	p.HasPos = true
}

// PressedAndReleased returns whether the primary button was both pressed
// and released within the frame, as for a quick click.
func (p *Pointer) PressedAndReleased() bool {
	return p.Pressed && p.Released
}

// DragDistance returns the distance from where the primary button was
// pressed to the current position.
func (p *Pointer) DragDistance() float32 {
	return p.Pos.DistanceTo(p.PressOrigin)
}
