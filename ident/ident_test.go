// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type portKey struct {
	Node string
	Slot int
}

func TestAs(t *testing.T) {
	id := New(42)
	v, ok := As[int](id)
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = As[uint8](id)
	assert.False(t, ok)

	assert.Equal(t, 42, MustAs[int](id))
	assert.Panics(t, func() { MustAs[string](id) })
}

func TestEqual(t *testing.T) {
	id1 := New(uint(42))
	id2 := New(uint(42))
	id3 := New(uint(43))
	id4 := New(uint8(42))
	assert.Equal(t, id1, id2)
	assert.True(t, id1 == id2)
	assert.True(t, id1.Equal(id2))
	assert.NotEqual(t, id1, id3)
	assert.False(t, id1.Equal(id4))
	assert.False(t, New("42").Equal(New(42)))

	assert.True(t, New(portKey{"osc", 1}).Equal(New(portKey{"osc", 1})))
	assert.False(t, New(portKey{"osc", 1}).Equal(New(portKey{"osc", 2})))
}

func TestHash(t *testing.T) {
	id1 := New(uint(42))
	id2 := New(uint(42))
	assert.Equal(t, id1.Hash(), id2.Hash())
	assert.Equal(t, New("out").Hash(), New("out").Hash())

	set := map[ID]struct{}{}
	set[id1] = struct{}{}
	set[id2] = struct{}{}
	assert.Len(t, set, 1)
	set[New(uint(43))] = struct{}{}
	assert.Len(t, set, 2)
	set[New(uint8(42))] = struct{}{}
	assert.Len(t, set, 3)
}

func TestInterfaceTypeParameter(t *testing.T) {
	var v any = 7
	assert.True(t, New(v).Equal(New(7)))
	assert.Equal(t, New(v).Hash(), New(7).Hash())
	assert.Panics(t, func() { New[any]([]int{1}) })
	assert.Panics(t, func() { New[any](nil) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "ID(42)", New(42).String())
	assert.Equal(t, `ID("in")`, New("in").String())
	assert.Equal(t, "ID({osc 1})", New(portKey{"osc", 1}).String())
	assert.Equal(t, "ID(<nil>)", ID{}.String())
	assert.False(t, ID{}.IsValid())
	assert.True(t, New(0).IsValid())
	assert.Equal(t, "int", New(0).Type().String())
}
