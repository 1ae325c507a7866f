// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Queue is a FIFO of pointer events received from the host between two
// frames. Consecutive motion events of the same type are compressed into
// one, keeping the Prev position of the first, since only the pointer
// state at the end of the frame and the total movement matter.
// The zero value is an empty queue ready to use.
type Queue struct {
	events []*Mouse
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev *Mouse) {
	if n := len(q.events); n > 0 && ev.Typ.IsMotion() {
		last := q.events[n-1]
		if last.Typ == ev.Typ && last.Button == ev.Button {
			prev := last.Prev
			*last = *ev
			last.Prev = prev
			return
		}
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() *Mouse {
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	return len(q.events)
}

// At returns the event at the given index in the queue, without removing it.
func (q *Queue) At(i int) *Mouse {
	return q.events[i]
}
