// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

// List is a [Painter] that records the shapes added to it in order,
// to be replayed onto another painter later or inspected in tests.
type List struct {
	Shapes []Shape
}

// Add adds the given shape to the list.
func (l *List) Add(s Shape) {
	l.Shapes = append(l.Shapes, s)
}

// Reset removes all shapes from the list, keeping its storage.
func (l *List) Reset() {
	clear(l.Shapes)
	l.Shapes = l.Shapes[:0]
}

// Len returns the number of recorded shapes.
func (l *List) Len() int {
	return len(l.Shapes)
}

// ReplayTo adds all the recorded shapes to the given painter, in order.
func (l *List) ReplayTo(p Painter) {
	for _, s := range l.Shapes {
		p.Add(s)
	}
}

// Of returns all the recorded shapes of type S, in order.
func Of[S Shape](l *List) []S {
	var res []S
	for _, s := range l.Shapes {
		if ts, ok := s.(S); ok {
			res = append(res, ts)
		}
	}
	return res
}
