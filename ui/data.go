// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"fmt"

	"cogentcore.org/cables/ident"
)

// Data is a map of values keyed by identity that persists across
// frames, for widgets that need memory.
type Data struct {
	values map[ident.ID]any
}

// Get returns the value for the given identity.
func (d *Data) Get(id ident.ID) (any, bool) {
	v, ok := d.values[id]
	return v, ok
}

// Set sets the value for the given identity.
func (d *Data) Set(id ident.ID, v any) {
	if d.values == nil {
		d.values = map[ident.ID]any{}
	}
	d.values[id] = v
}

// Remove removes the value for the given identity.
func (d *Data) Remove(id ident.ID) {
	delete(d.values, id)
}

// Len returns the number of values.
func (d *Data) Len() int {
	return len(d.values)
}

// DataGet returns the value of type T for the given identity.
// It panics if the value is of a different type.
func DataGet[T any](d *Data, id ident.ID) (T, bool) {
	v, ok := d.Get(id)
	if !ok {
		var zero T
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("ui.DataGet: value for %v is %T, not %T", id, v, tv))
	}
	return tv, true
}

// DataGetOrInsert returns the value of type T for the given identity,
// setting it to the result of the given function first if there is none.
func DataGetOrInsert[T any](d *Data, id ident.ID, fun func() T) T {
	if v, ok := DataGet[T](d, id); ok {
		return v
	}
	v := fun()
	d.Set(id, v)
	return v
}
