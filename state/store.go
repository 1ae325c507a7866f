// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state provides a generational key-value [Store] that keeps
// widget state alive across the frames of an immediate-mode GUI,
// along with a per-frame [Ephemeral] scratch space.
//
// The store keeps two generations: current, which is written during
// the current frame, and previous, the final snapshot of the last one.
// Reads fall back from current to previous, so a value that is not
// rewritten survives exactly one extra generation before it expires.
package state

import (
	"fmt"
	"log/slog"

	"cogentcore.org/cables/ident"
)

// Kind distinguishes the different kinds of values stored under the
// same [ident.ID], such as the position of a port and the state of a plug.
// Kinds are defined by the users of the store.
type Kind int32

// key is the key of a keyed value in a generation.
type key struct {
	kind Kind
	id   ident.ID
}

// tombstone marks a value deleted in the current generation,
// which shadows any value in the previous generation.
type tombstone struct{}

// generation is one full snapshot of keyed and singleton values.
type generation struct {
	values     map[key]any
	singletons map[Kind]any
}

func newGeneration() *generation {
	return &generation{values: map[key]any{}, singletons: map[Kind]any{}}
}

func (g *generation) clone() *generation {
	c := &generation{values: make(map[key]any, len(g.values)), singletons: make(map[Kind]any, len(g.singletons))}
	for k, v := range g.values {
		c.values[k] = v
	}
	for k, v := range g.singletons {
		c.singletons[k] = v
	}
	return c
}

// Store is a generational key-value store. The zero value is not usable;
// use [NewStore]. It is meant to be used from a single goroutine, which is
// always the case for the render loop of an immediate-mode GUI.
type Store struct {
	current  *generation
	previous *generation

	// generation is the number of times [Store.Advance] has been called.
	generation uint64

	ephemeral *Ephemeral
}

// NewStore returns a new empty [Store].
func NewStore() *Store {
	return &Store{
		current:   newGeneration(),
		previous:  newGeneration(),
		ephemeral: newEphemeral(0),
	}
}

// Generation returns the number of generations that have been advanced so far.
func (s *Store) Generation() uint64 {
	return s.generation
}

// Advance makes the current generation the previous one, and starts
// a new empty current generation along with an empty [Ephemeral].
// Anything that was only in the previous generation is dropped.
func (s *Store) Advance() {
	s.previous = s.current
	s.current = newGeneration()
	s.ephemeral = newEphemeral(s.ephemeral.frame)
	s.generation++
	slog.Debug("state: advanced generation", "generation", s.generation, "carried", len(s.previous.values))
}

// AdvanceIfTwice calls [Store.Advance] if a value of the given kind
// already exists for the given id in the current generation. Widgets call
// it before writing a value that is expected to be written once per frame,
// so that a second write (either from the next frame, or from the same
// widget being rendered twice in one frame) rolls the generation over
// instead of overwriting the first value. It returns whether it advanced.
func (s *Store) AdvanceIfTwice(kind Kind, id ident.ID) bool {
	v, ok := s.current.values[key{kind, id}]
	if !ok {
		return false
	}
	if _, dead := v.(tombstone); dead {
		return false
	}
	s.Advance()
	return true
}

// Has returns whether a value of the given kind exists for the given id
// in either generation.
func (s *Store) Has(kind Kind, id ident.ID) bool {
	_, ok := s.lookup(kind, id)
	return ok
}

// HasCurrent returns whether a value of the given kind exists for the
// given id in the current generation.
func (s *Store) HasCurrent(kind Kind, id ident.ID) bool {
	v, ok := s.current.values[key{kind, id}]
	if !ok {
		return false
	}
	_, dead := v.(tombstone)
	return !dead
}

func (s *Store) lookup(kind Kind, id ident.ID) (any, bool) {
	k := key{kind, id}
	v, ok := s.current.values[k]
	if !ok {
		v, ok = s.previous.values[k]
	}
	if !ok {
		return nil, false
	}
	if _, dead := v.(tombstone); dead {
		return nil, false
	}
	return v, true
}

// Set sets the value of the given kind for the given id in the current generation.
func (s *Store) Set(kind Kind, id ident.ID, value any) {
	s.current.values[key{kind, id}] = value
}

// Delete removes the value of the given kind for the given id, such that
// it is not found in either generation until it is set again.
func (s *Store) Delete(kind Kind, id ident.ID) {
	s.current.values[key{kind, id}] = tombstone{}
}

// Get returns the value of the given kind for the given id, looking first
// in the current generation and then in the previous one. It returns false
// if the value has never been seen, in which case the caller supplies a
// default. It panics if the stored value is not of type V, which means
// that two different types were stored under the same kind.
func Get[V any](s *Store, kind Kind, id ident.ID) (V, bool) {
	v, ok := s.lookup(kind, id)
	if !ok {
		var zero V
		return zero, false
	}
	return mustType[V](v, kind, id.String())
}

// GetOr is like [Get], but it returns def if the value is not found.
func GetOr[V any](s *Store, kind Kind, id ident.ID, def V) V {
	if v, ok := Get[V](s, kind, id); ok {
		return v
	}
	return def
}

// SetSingleton sets the non-keyed value of the given kind in the current generation.
func (s *Store) SetSingleton(kind Kind, value any) {
	s.current.singletons[kind] = value
}

// ClearSingleton removes the non-keyed value of the given kind, such that
// it is not found in either generation until it is set again.
func (s *Store) ClearSingleton(kind Kind) {
	s.current.singletons[kind] = tombstone{}
}

// GetSingleton returns the non-keyed value of the given kind, looking first
// in the current generation and then in the previous one. It panics if the
// stored value is not of type V.
func GetSingleton[V any](s *Store, kind Kind) (V, bool) {
	v, ok := s.current.singletons[kind]
	if !ok {
		v, ok = s.previous.singletons[kind]
	}
	if ok {
		if _, dead := v.(tombstone); dead {
			ok = false
		}
	}
	if !ok {
		var zero V
		return zero, false
	}
	return mustType[V](v, kind, "singleton")
}

func mustType[V any](v any, kind Kind, what string) (V, bool) {
	tv, ok := v.(V)
	if !ok {
		var zero V
		panic(fmt.Sprintf("state: value of kind %d for %s has type %T, not %T", kind, what, v, zero))
	}
	return tv, true
}

// Len returns the number of live keyed values visible through the store,
// counting a key present in both generations once.
func (s *Store) Len() int {
	n := 0
	for _, v := range s.current.values {
		if _, dead := v.(tombstone); !dead {
			n++
		}
	}
	for k := range s.previous.values {
		if _, inCur := s.current.values[k]; inCur {
			continue
		}
		if _, dead := s.previous.values[k].(tombstone); !dead {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the generations of the store. The values
// themselves are copied as-is, so they should be value types. The ephemeral
// state is shared with the clone, since it only exists for the current frame.
func (s *Store) Clone() *Store {
	return &Store{
		current:    s.current.clone(),
		previous:   s.previous.clone(),
		generation: s.generation,
		ephemeral:  s.ephemeral,
	}
}

// Ephemeral returns the per-frame scratch space for the given frame number.
// If the frame differs from the frame of the existing scratch space, it is
// reset first, so it is never consulted across frames.
func (s *Store) Ephemeral(frame uint64) *Ephemeral {
	if s.ephemeral.frame != frame {
		s.ephemeral = newEphemeral(frame)
	}
	return s.ephemeral
}
