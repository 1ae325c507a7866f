// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cables

import (
	"fmt"

	"cogentcore.org/cables/ident"
)

// PortID is the identity of a [Port], made from any comparable value.
type PortID struct {
	ident.ID
}

// NewPortID returns a new [PortID] for the given value.
func NewPortID[T comparable](v T) PortID {
	return PortID{ident.New(v)}
}

// CableID is the identity of a [Cable], made from any comparable value.
type CableID struct {
	ident.ID
}

// NewCableID returns a new [CableID] for the given value.
func NewCableID[T comparable](v T) CableID {
	return CableID{ident.New(v)}
}

// PlugEnd is which end of its cable a plug is.
type PlugEnd int32

const (
	// In is the input end of a cable.
	In PlugEnd = iota

	// Out is the output end of a cable.
	Out
)

func (e PlugEnd) String() string {
	if e == Out {
		return "Out"
	}
	return "In"
}

// PlugID is the identity of a plug: its cable and its end.
type PlugID struct {
	Cable CableID
	End   PlugEnd
}

func (p PlugID) String() string {
	return fmt.Sprintf("%v/%v", p.Cable.ID, p.End)
}

// region identities, kept distinct from the caller's own identities
// even when made from the same values.
type (
	portRegion    struct{ Port PortID }
	plugRegion    struct{ Plug PlugID }
	controlRegion struct{ Cable CableID }
)

func portRegionID(id PortID) ident.ID {
	return ident.New(portRegion{id})
}

func plugRegionID(id PlugID) ident.ID {
	return ident.New(plugRegion{id})
}

func controlRegionID(id CableID) ident.ID {
	return ident.New(controlRegion{id})
}

// key returns the identity the state of the plug is stored under.
func (p PlugID) key() ident.ID {
	return ident.New(p)
}
