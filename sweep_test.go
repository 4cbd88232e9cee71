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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listOrder returns the active edges from left to right.
func listOrder(s *sweepLine) []int {
	var res []int
	for i := s.head; i != noEdge; i = s.edges[i].next {
		res = append(res, i)
	}
	return res
}

func TestSweepInsert(t *testing.T) {
	edges := []edge{
		testEdge(10, 0, 10, 20),
		testEdge(0, 0, 0, 20),
		testEdge(20, 0, 20, 20),
		testEdge(10, 0, 0, 20), // same x as edge 0, leans left
		testEdge(10, 0, 20, 20),
	}
	s := newSweepLine()
	s.reset(edges)
	s.currentY = 0

	for i := range edges {
		s.insert(i)
		require.NoError(t, s.validate())
	}
	assert.Equal(t, []int{1, 3, 0, 4, 2}, listOrder(s))
	assert.Equal(t, 1, s.head)
	assert.Equal(t, 2, s.tail)
}

func TestSweepInsertCongruent(t *testing.T) {
	edges := []edge{
		testEdge(0, 0, 8, 8),
		testEdge(0, 0, 8, 8),
		testEdge(0, 0, 8, 8),
	}
	s := newSweepLine()
	s.reset(edges)
	s.currentY = 0
	s.insert(2)
	s.insert(0)
	s.insert(1)
	require.NoError(t, s.validate())
	assert.Equal(t, []int{0, 1, 2}, listOrder(s))
}

func TestSweepDelete(t *testing.T) {
	edges := []edge{
		testEdge(0, 0, 0, 20),
		testEdge(10, 0, 10, 20),
		testEdge(20, 0, 20, 20),
	}
	s := newSweepLine()
	s.reset(edges)
	s.currentY = 0
	for i := range edges {
		s.insert(i)
	}

	s.delete(1)
	require.NoError(t, s.validate())
	assert.Equal(t, []int{0, 2}, listOrder(s))
	assert.Nil(t, edges[1].slot)

	s.delete(0)
	require.NoError(t, s.validate())
	assert.Equal(t, []int{2}, listOrder(s))

	s.delete(2)
	require.NoError(t, s.validate())
	assert.Equal(t, noEdge, s.head)
	assert.Equal(t, noEdge, s.tail)

	// slots are recycled
	assert.Len(t, s.slots, 3)
	s.insert(1)
	assert.Len(t, s.slots, 2)
}

func TestSweepSwap(t *testing.T) {
	edges := []edge{
		testEdge(0, 0, 0, 40),
		testEdge(10, 0, 30, 40),
		testEdge(30, 0, 10, 40),
		testEdge(40, 0, 40, 40),
	}
	s := newSweepLine()
	s.reset(edges)
	s.currentY = 0
	for i := range edges {
		s.insert(i)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, listOrder(s))

	// edges 1 and 2 cross at (20, 20)
	s.currentY = 20
	s.swap(1, 2)
	require.NoError(t, s.validate())
	assert.Equal(t, []int{0, 2, 1, 3}, listOrder(s))
	assert.Equal(t, 2, edges[1].prev)
	assert.Equal(t, 3, edges[1].next)

	// the tree agrees with the comparator below the crossing
	s.currentY = 30
	s.delete(2)
	s.delete(1)
	require.NoError(t, s.validate())
	assert.Equal(t, []int{0, 3}, listOrder(s))
}

func TestSweepSwapEnds(t *testing.T) {
	edges := []edge{
		testEdge(0, 0, 20, 20),
		testEdge(20, 0, 0, 20),
	}
	s := newSweepLine()
	s.reset(edges)
	s.currentY = 0
	s.insert(0)
	s.insert(1)

	s.currentY = 10
	s.swap(0, 1)
	require.NoError(t, s.validate())
	assert.Equal(t, 1, s.head)
	assert.Equal(t, 0, s.tail)
	assert.Equal(t, []int{1, 0}, listOrder(s))
}

// TestSweepDeleteStale removes an edge after the tree order has stopped
// agreeing with the comparator.
func TestSweepDeleteStale(t *testing.T) {
	edges := []edge{
		testEdge(0, 0, 8, 8),
		testEdge(8, 0, 0, 8),
	}
	s := newSweepLine()
	s.reset(edges)
	s.currentY = 0
	s.insert(0)
	s.insert(1)

	// Below the crossing, but without the swap.
	s.currentY = 6
	s.delete(0)

	require.NoError(t, s.validate())
	assert.Equal(t, []int{1}, listOrder(s))
}

// TestSweepInsertStale inserts an edge between two edges which have been
// swapped at the rounded y coordinate of their crossing, but which still
// have the old order at this y coordinate.
func TestSweepInsertStale(t *testing.T) {
	edges := []edge{
		testEdge(0, 0, 40, 40),
		testEdge(356, 0, -44, 20), // crosses edge 0 at y = 356/21
		testEdge(24, 16, 64, 56),
		testEdge(28, 16, 28, 40),
	}
	s := newSweepLine()
	s.reset(edges)
	s.currentY = 0
	s.insert(0)
	s.insert(1)

	s.currentY = 16
	s.swap(0, 1)
	require.Equal(t, []int{1, 0}, listOrder(s))

	s.insert(2)
	require.NoError(t, s.validate())
	s.insert(3)
	require.NoError(t, s.validate())

	// Edges 2 and 3 are between edges 0 and 1 at y=16.  Whatever the
	// position of the stale pair, the new edges are in order.
	order := listOrder(s)
	require.Len(t, order, 4)
	assert.Less(t, slices.Index(order, 2), slices.Index(order, 3))

	for _, i := range []int{3, 1, 2, 0} {
		s.delete(i)
		require.NoError(t, s.validate())
	}
	assert.Equal(t, noEdge, s.head)
}

// TestSweepRenumber fills the key gap between two edges, until the keys
// need to be spread out again.
func TestSweepRenumber(t *testing.T) {
	const n = 100
	edges := []edge{
		testEdge(0, 0, 0, 10),
		testEdge(4*n+4, 0, 4*n+4, 10),
	}
	for k := range n {
		x := int32(4 * (n - k))
		edges = append(edges, testEdge(x, 0, x, 10))
	}
	s := newSweepLine()
	s.reset(edges)
	s.currentY = 0
	for i := range edges {
		s.insert(i)
		require.NoError(t, s.validate())
	}

	want := []int{0}
	for i := len(edges) - 1; i >= 2; i-- {
		want = append(want, i)
	}
	want = append(want, 1)
	assert.Equal(t, want, listOrder(s))
}

// TestSweepDeleteConverging removes edges which end at a common point.
// The tree must keep them in their order from above.
func TestSweepDeleteConverging(t *testing.T) {
	edges := []edge{
		testEdge(0, 0, 8, 8),
		testEdge(8, 0, 8, 8),
		testEdge(16, 0, 8, 8),
		testEdge(4, 0, 12, 16), // passes through (8, 8)
	}
	s := newSweepLine()
	s.reset(edges)
	s.currentY = 0
	for i := range edges {
		s.insert(i)
	}
	assert.Equal(t, []int{0, 3, 1, 2}, listOrder(s))

	s.currentY = 8
	s.delete(1)
	s.delete(0)
	s.delete(2)
	require.NoError(t, s.validate())
	assert.Equal(t, []int{3}, listOrder(s))
}

func TestSweepValidate(t *testing.T) {
	edges := []edge{
		testEdge(0, 0, 0, 20),
		testEdge(10, 0, 10, 20),
		testEdge(20, 0, 20, 20),
	}

	setup := func() *sweepLine {
		s := newSweepLine()
		s.reset(edges)
		s.currentY = 0
		for i := range edges {
			s.insert(i)
		}
		return s
	}

	s := setup()
	assert.NoError(t, s.validate())

	s.edges[2].prev = 0
	assert.Error(t, s.validate())

	s = setup()
	s.edges[0].next = 2
	assert.Error(t, s.validate())

	s = setup()
	s.tail = 1
	assert.Error(t, s.validate())

	s = setup()
	s.edges[1].slot = s.edges[0].slot
	assert.Error(t, s.validate())
}
