// seehuhn.de/go/tessellate - exact polygon tessellation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tessellate

import (
	"cmp"

	"github.com/google/btree"
)

// eventKind is the type of a sweep event.  The numeric order is the
// processing order of events at the same point: an edge ending at a point
// is removed before crossings at that point are handled, and edges
// starting there are inserted last.
type eventKind uint8

const (
	eventStop eventKind = iota
	eventIntersection
	eventStart
)

func (k eventKind) String() string {
	switch k {
	case eventStop:
		return "stop"
	case eventIntersection:
		return "intersection"
	case eventStart:
		return "start"
	}
	return "unknown"
}

// event is a point where the active edge list changes.
//
// For start and stop events e1 is the edge and e2 is noEdge.  For
// intersection events e1 and e2 are the left and right edge, in the order
// they had before the crossing.
type event struct {
	kind   eventKind
	pt     point
	e1, e2 int
}

// compareEvents defines the total order in which events are processed.
// Two events compare equal only if they have the same kind, point and
// edges.
func compareEvents(edges []edge, a, b *event) int {
	if c := comparePoints(a.pt, b.pt); c != 0 {
		return c
	}
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}

	a1, b1 := &edges[a.e1], &edges[b.e1]

	// Same kind at the same point.  The shortening rule needs opposite
	// senses for edges starting and edges ending here.
	if c := slopeCompare(a1, b1); c != 0 {
		if a.kind == eventStart {
			return c
		}
		return -c
	}

	// Collinear at a common point: look at the opposite end.
	switch a.kind {
	case eventStart:
		if c := comparePoints(b1.bottom, a1.bottom); c != 0 {
			return c
		}
	case eventStop:
		if c := comparePoints(a1.top, b1.top); c != 0 {
			return c
		}
	case eventIntersection:
		a2, b2 := &edges[a.e2], &edges[b.e2]
		if c := comparePoints(a2.top, b2.top); c != 0 {
			return c
		}
		if c := comparePoints(a2.bottom, b2.bottom); c != 0 {
			return c
		}
		if c := comparePoints(a1.top, b1.top); c != 0 {
			return c
		}
		if c := comparePoints(a1.bottom, b1.bottom); c != 0 {
			return c
		}
	}

	// Congruent edges: fall back to the position in the input.
	if c := cmp.Compare(a.e1, b.e1); c != 0 {
		return c
	}
	return cmp.Compare(a.e2, b.e2)
}

// eventQueue is an ordered multiset of pending events.
type eventQueue struct {
	tree *btree.BTreeG[*event]
}

// btreeDegree is the degree of the B-trees used for the event queue and
// the active edge set.
const btreeDegree = 16

func newEventQueue(less btree.LessFunc[*event], free *btree.FreeListG[*event]) *eventQueue {
	return &eventQueue{
		tree: btree.NewWithFreeListG(btreeDegree, less, free),
	}
}

// insert adds ev to the queue.  Intersection events which are already
// queued are not added a second time; in this case insert returns false.
func (q *eventQueue) insert(ev *event) bool {
	if ev.kind == eventIntersection && q.tree.Has(ev) {
		return false
	}
	q.tree.ReplaceOrInsert(ev)
	return true
}

// delete removes ev from the queue.
func (q *eventQueue) delete(ev *event) bool {
	_, ok := q.tree.Delete(ev)
	return ok
}

// peekMin returns the next event without removing it.
func (q *eventQueue) peekMin() (*event, bool) {
	return q.tree.Min()
}

func (q *eventQueue) len() int {
	return q.tree.Len()
}

// clear removes all events, returning the tree nodes to the free list.
func (q *eventQueue) clear() {
	q.tree.Clear(true)
}
