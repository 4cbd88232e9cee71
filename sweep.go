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
	"math"

	"github.com/google/btree"
	"github.com/pkg/errors"
)

// activeSlot is a node of the ordered active edge set.  A slot does not
// belong to a particular edge: swapping two adjacent edges exchanges the
// contents of their slots, which leaves the tree structure untouched.
type activeSlot struct {
	edge int
	key  int64 // position key, increasing from left to right
}

// sweepLine holds the edges crossing the current scanline, in two
// representations: a B-tree ordered by position keys, and a doubly linked
// list for constant time neighbour access.  Both always describe the same
// sequence.
//
// Intersection points are rounded down, so directly after a swap the
// stored order can disagree with the exact order at currentY.  For this
// reason the tree is not keyed by the geometric comparator.  The
// comparator is only used to find where a new edge goes, and it reads
// currentY on every call; the order of two edges must never be cached.
type sweepLine struct {
	edges    []edge
	tree     *btree.BTreeG[*activeSlot]
	head     int
	tail     int
	currentY int32

	// byEdge switches the tree comparator to the geometric order at
	// currentY, while searching for the position of a new edge.
	byEdge bool
	probe  activeSlot

	slots []*activeSlot // unused slots
}

func newSweepLine() *sweepLine {
	s := &sweepLine{}
	s.tree = btree.NewG(btreeDegree, s.less)
	s.reset(nil)
	return s
}

// reset empties the sweep line and attaches it to a new edge slice.
func (s *sweepLine) reset(edges []edge) {
	s.tree.Clear(true)
	s.edges = edges
	s.head = noEdge
	s.tail = noEdge
	s.currentY = math.MinInt32
	s.byEdge = false
}

func (s *sweepLine) less(a, b *activeSlot) bool {
	if s.byEdge {
		return s.compareEdges(a.edge, b.edge) < 0
	}
	return a.key < b.key
}

// compareEdges orders two edges by their x position at currentY.  Ties
// are broken by slope, so that edges meeting at a point are ordered as
// they will be just below the scanline.  If one of the edges ends on the
// scanline, there is no "below" and the order from above is kept.
func (s *sweepLine) compareEdges(i, j int) int {
	if i == j {
		return 0
	}
	a, b := &s.edges[i], &s.edges[j]

	if c := compareXAt(a, b, s.currentY); c != 0 {
		return c
	}
	if c := slopeCompare(a, b); c != 0 {
		if a.bottom.y == s.currentY || b.bottom.y == s.currentY {
			return -c
		}
		return c
	}

	// collinear edges
	if c := comparePoints(a.top, b.top); c != 0 {
		return c
	}
	if c := comparePoints(a.bottom, b.bottom); c != 0 {
		return c
	}

	// Only congruent edges get here.
	return cmp.Compare(i, j)
}

func (s *sweepLine) newSlot(i int) *activeSlot {
	var slot *activeSlot
	if n := len(s.slots); n > 0 {
		slot = s.slots[n-1]
		s.slots = s.slots[:n-1]
	} else {
		slot = &activeSlot{}
	}
	slot.edge = i
	return slot
}

// insert adds edge i to the sweep line, at the position given by the
// comparator at currentY.
func (s *sweepLine) insert(i int) {
	// The tree search gives a nearby edge.  Where the stored order is
	// out of step with the comparator, the search can land a few places
	// off, and the list walk below corrects this.
	left := noEdge
	s.probe.edge = i
	s.byEdge = true
	s.tree.DescendLessOrEqual(&s.probe, func(it *activeSlot) bool {
		left = it.edge
		return false
	})
	s.byEdge = false

	for left != noEdge && s.compareEdges(left, i) > 0 {
		left = s.edges[left].prev
	}
	right := s.head
	if left != noEdge {
		right = s.edges[left].next
	}
	for right != noEdge && s.compareEdges(right, i) < 0 {
		left = right
		right = s.edges[right].next
	}

	// Both representations are updated from the same decision.
	e := &s.edges[i]
	slot := s.newSlot(i)
	slot.key = s.keyBetween(left, right)
	e.slot = slot
	s.tree.ReplaceOrInsert(slot)

	e.prev = left
	e.next = right
	if left == noEdge {
		s.head = i
	} else {
		s.edges[left].next = i
	}
	if right == noEdge {
		s.tail = i
	} else {
		s.edges[right].prev = i
	}
}

// keySpacing is the distance between neighbouring keys after renumbering.
const keySpacing = 1 << 32

// keyBetween returns an unused position key for a new edge between the
// adjacent active edges left and right.  Either of them may be noEdge.
func (s *sweepLine) keyBetween(left, right int) int64 {
	for {
		switch {
		case left == noEdge && right == noEdge:
			return 0
		case left == noEdge:
			if k := s.edges[right].slot.key; k >= math.MinInt64+keySpacing {
				return k - keySpacing
			}
		case right == noEdge:
			if k := s.edges[left].slot.key; k <= math.MaxInt64-keySpacing {
				return k + keySpacing
			}
		default:
			lo, hi := s.edges[left].slot.key, s.edges[right].slot.key
			if d := uint64(hi) - uint64(lo); d > 1 {
				return lo + int64(d/2)
			}
		}
		s.renumber()
	}
}

// renumber spreads the keys of the active edges evenly.  The order of the
// keys is unchanged, so the tree stays valid.
func (s *sweepLine) renumber() {
	var k int64
	for i := s.head; i != noEdge; i = s.edges[i].next {
		s.edges[i].slot.key = k
		k += keySpacing
	}
}

// delete removes edge i from the sweep line.
func (s *sweepLine) delete(i int) {
	e := &s.edges[i]
	slot := e.slot

	if _, ok := s.tree.Delete(slot); !ok {
		panic(errors.Errorf("sweep line: edge %d not found", i))
	}

	if e.prev == noEdge {
		s.head = e.next
	} else {
		s.edges[e.prev].next = e.next
	}
	if e.next == noEdge {
		s.tail = e.prev
	} else {
		s.edges[e.next].prev = e.prev
	}
	e.prev = noEdge
	e.next = noEdge
	e.slot = nil
	s.slots = append(s.slots, slot)
}

// swap exchanges the adjacent active edges l and r, where r must
// directly follow l.
func (s *sweepLine) swap(l, r int) {
	el, er := &s.edges[l], &s.edges[r]

	ls, rs := el.slot, er.slot
	ls.edge, rs.edge = r, l
	el.slot, er.slot = rs, ls

	p, n := el.prev, er.next
	if p == noEdge {
		s.head = r
	} else {
		s.edges[p].next = r
	}
	if n == noEdge {
		s.tail = l
	} else {
		s.edges[n].prev = l
	}
	er.prev, er.next = p, l
	el.prev, el.next = r, n
}

// validate checks that the tree and the linked list describe the same
// sequence of edges.
func (s *sweepLine) validate() error {
	var err error
	pos := 0
	cur := s.head
	prev := noEdge
	var lastKey int64
	s.tree.Ascend(func(slot *activeSlot) bool {
		switch {
		case pos > 0 && slot.key <= lastKey:
			err = errors.Errorf("position %d: key %d not increasing", pos, slot.key)
		case cur == noEdge:
			err = errors.Errorf("position %d: edge %d in tree but list ended", pos, slot.edge)
		case slot.edge != cur:
			err = errors.Errorf("position %d: tree has edge %d, list has edge %d", pos, slot.edge, cur)
		case s.edges[cur].slot != slot:
			err = errors.Errorf("position %d: edge %d has a stale slot", pos, cur)
		case s.edges[cur].prev != prev:
			err = errors.Errorf("position %d: edge %d has prev %d, want %d", pos, cur, s.edges[cur].prev, prev)
		}
		if err != nil {
			return false
		}
		lastKey = slot.key
		prev = cur
		cur = s.edges[cur].next
		pos++
		return true
	})
	if err != nil {
		return err
	}
	if cur != noEdge {
		return errors.Errorf("position %d: edge %d in list but tree ended", pos, cur)
	}
	if s.tail != prev {
		return errors.Errorf("tail is %d, want %d", s.tail, prev)
	}
	return nil
}
