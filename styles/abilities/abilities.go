// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abilities defines the interactive abilities that a region
// allocated by a widget can have, which determine the pointer
// interactions that are sensed for it.
package abilities

import "strings"

// Abilities represent abilities of an allocated region to sense
// different pointer interactions, as bit flags.
type Abilities int64

const (
	// Hoverable means it senses the pointer being over it.
	Hoverable Abilities = iota

	// Clickable means it can be Clicked, receiving a click when
	// the user presses and releases the pointer on it without dragging.
	Clickable

	// Draggable means it can be Dragged, receiving drag start, drag
	// movement and drag release interactions.
	Draggable

	abilitiesN
)

var abilitiesNames = [...]string{"Hoverable", "Clickable", "Draggable"}

// New returns the [Abilities] with the given flags set.
func New(flags ...Abilities) Abilities {
	var ab Abilities
	ab.SetFlag(true, flags...)
	return ab
}

// HasFlag returns whether the given flag is set.
func (ab Abilities) HasFlag(flag Abilities) bool {
	return ab&(1<<flag) != 0
}

// Is is a shortcut for HasFlag for Abilities
func (ab Abilities) Is(flag Abilities) bool {
	return ab.HasFlag(flag)
}

// SetFlag sets the given flags to the given value.
func (ab *Abilities) SetFlag(on bool, flags ...Abilities) {
	for _, f := range flags {
		if on {
			*ab |= 1 << f
		} else {
			*ab &^= 1 << f
		}
	}
}

// IsPressable returns true when a region is Clickable or Draggable,
// which means that a press on it makes it the active region.
func (ab Abilities) IsPressable() bool {
	return ab.HasFlag(Clickable) || ab.HasFlag(Draggable)
}

// IsInteractive returns whether the region senses anything at all.
func (ab Abilities) IsInteractive() bool {
	return ab != 0
}

// String returns the names of the set flags joined with |.
func (ab Abilities) String() string {
	var names []string
	for f := Abilities(0); f < abilitiesN; f++ {
		if ab.HasFlag(f) {
			names = append(names, abilitiesNames[f])
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}
