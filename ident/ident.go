// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ident provides [ID], a type-erased identity that wraps
// any comparable caller value (integers, strings, structs) so that
// it can be used as a key for persistent widget state.
package ident

import (
	"fmt"
	"hash/maphash"
	"reflect"
)

// seed is shared by all identities so that hashes are stable within a process.
var seed = maphash.MakeSeed()

// ID is an opaque identity wrapping an arbitrary comparable value.
// Two IDs are equal (with == or [ID.Equal]) if and only if their wrapped
// values have the same dynamic type and are equal, so IDs of different
// wrapped types never match, even if their hash or string form coincide.
// The zero ID wraps nothing and is only equal to itself.
// ID is a small value that is cheap to copy, and it can be used
// directly as a map key.
type ID struct {
	value any
}

// New returns a new [ID] wrapping the given value.
// It panics if the dynamic type of the value is not comparable,
// which can only happen when T is itself an interface type.
func New[T comparable](value T) ID {
	v := any(value)
	if v == nil {
		panic("ident.New: cannot make an ID from a nil value")
	}
	if !reflect.TypeOf(v).Comparable() {
		panic(fmt.Sprintf("ident.New: value of type %T is not comparable", v))
	}
	return ID{value: v}
}

// IsValid returns whether the ID wraps a value.
func (id ID) IsValid() bool {
	return id.value != nil
}

// Value returns the wrapped value.
func (id ID) Value() any {
	return id.value
}

// Type returns the [reflect.Type] of the wrapped value,
// or nil for the zero ID.
func (id ID) Type() reflect.Type {
	if id.value == nil {
		return nil
	}
	return reflect.TypeOf(id.value)
}

// Equal returns whether the two IDs wrap equal values of the same type.
func (id ID) Equal(other ID) bool {
	return id.value == other.value
}

// Hash returns a hash of the ID that is consistent with [ID.Equal]:
// equal IDs always have equal hashes.
func (id ID) Hash() uint64 {
	return maphash.Comparable(seed, id.value)
}

// String returns a debug representation of the ID, such as ID(42).
func (id ID) String() string {
	if id.value == nil {
		return "ID(<nil>)"
	}
	if s, ok := id.value.(string); ok {
		return fmt.Sprintf("ID(%q)", s)
	}
	return fmt.Sprintf("ID(%v)", id.value)
}

// GoString returns the wrapped value together with its type, for %#v.
func (id ID) GoString() string {
	return fmt.Sprintf("ident.ID{%T(%#v)}", id.value, id.value)
}

// As returns the value wrapped by the given ID as type T,
// and whether it actually has that type.
func As[T any](id ID) (T, bool) {
	v, ok := id.value.(T)
	return v, ok
}

// MustAs returns the value wrapped by the given ID as type T.
// It panics if the wrapped value is not of type T: asking for the
// wrong type means that keys of incompatible types are being mixed,
// which is a programmer error.
func MustAs[T any](id ID) T {
	v, ok := id.value.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("ident.MustAs: cannot convert %v of type %T to %T; check your key type", id, id.value, zero))
	}
	return v
}
