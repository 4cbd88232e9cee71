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

	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/tessellate/internal/exact"
)

// guardBits is the number of extra low-order bits added to all input
// coordinates.  Intersection points are rounded to this finer grid, which
// keeps them distinct from the input vertices in most practical cases.
const guardBits = 2

// MaxCoord is the largest magnitude of an input coordinate, in 26.6 fixed
// point units.  With the guard bits added, coordinates of this size keep
// all edge deltas within 32 bits, all cross products within 64 bits and
// all intersection numerators within 128 bits.
const MaxCoord = 1<<28 - 1

// noEdge marks the absence of a neighbour in the active edge list.
const noEdge = -1

// point is a vertex in internal coordinates, i.e. 26.6 fixed point
// shifted left by guardBits.
type point struct {
	x, y int32
}

func toInternal(p fixed.Point26_6) point {
	return point{x: int32(p.X) << guardBits, y: int32(p.Y) << guardBits}
}

func (p point) fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(p.x >> guardBits),
		Y: fixed.Int26_6(p.y >> guardBits),
	}
}

// comparePoints orders points first by y, then by x.  This is the sweep
// order: the sweep line moves down, and within a scanline from left to
// right.
func comparePoints(a, b point) int {
	if c := cmp.Compare(a.y, b.y); c != 0 {
		return c
	}
	return cmp.Compare(a.x, b.x)
}

// edge is a polygon edge in internal coordinates.
//
// The prev and next fields link the active edges from left to right.  They
// are indices into the edge slice of the Tessellator, so that the slice may
// be reused or grown between runs without invalidating anything.
type edge struct {
	top, bottom point
	middle      point // last verified intersection point, initially top
	reversed    bool  // the original edge pointed upwards

	prev, next int         // neighbours in the active edge list
	slot       *activeSlot // node in the ordered active set, nil if inactive
}

// slopeCompare compares the directions of two edges.  The result is
// positive if a leans further to the right than b, i.e. if just below a
// common point, a lies to the right of b.
//
// The dy of every edge is positive, so no sign correction is needed.
func slopeCompare(a, b *edge) int {
	adx := a.bottom.x - a.top.x
	bdx := b.bottom.x - b.top.x

	// opposite directions in x can be decided without multiplying
	if (adx ^ bdx) < 0 {
		if adx < 0 {
			return -1
		}
		return 1
	}

	ady := a.bottom.y - a.top.y
	bdy := b.bottom.y - b.top.y
	return cmp.Compare(exact.Mul32(adx, bdy), exact.Mul32(bdx, ady))
}

// xForY returns the exact x coordinate of the line through e at height y,
// as x = quo + rem/den with 0 <= rem < den.
func (e *edge) xForY(y int32) (quo, rem, den int64) {
	if y == e.top.y {
		return int64(e.top.x), 0, 1
	}
	if y == e.bottom.y {
		return int64(e.bottom.x), 0, 1
	}

	dx := e.bottom.x - e.top.x
	dy := e.bottom.y - e.top.y
	q, r := exact.DivRem(exact.FromInt64(exact.Mul32(y-e.top.y, dx)), int64(dy))

	// |q| <= |dx| for top.y <= y <= bottom.y
	quo, _ = q.Int64()
	return quo + int64(e.top.x), r, int64(dy)
}

// compareXAt compares the exact x positions of a and b at height y.
func compareXAt(a, b *edge, y int32) int {
	aq, ar, ad := a.xForY(y)
	bq, br, bd := b.xForY(y)
	if c := cmp.Compare(aq, bq); c != 0 {
		return c
	}
	if ar == 0 && br == 0 {
		return 0
	}
	// ar/ad and br/bd are in [0, 1), with numerators and denominators
	// below 2^32.
	return exact.Mul64(ar, bd).Cmp(exact.Mul64(br, ad))
}
