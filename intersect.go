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
	"seehuhn.de/go/tessellate/internal/exact"
)

// intersectStatus is the outcome of intersecting two edges.
type intersectStatus int

const (
	intersectFound intersectStatus = iota
	intersectParallel
	intersectNone
)

// ordinate is an exact rational coordinate quo + rem/den with
// 0 <= rem < den.  Only the remainder's sign matters once the quotient
// is known, so den is not stored.
type ordinate struct {
	quo exact.Int128
	rem int64
}

// compareInt compares the ordinate to the integer v.
func (o ordinate) compareInt(v int32) int {
	if c := o.quo.Cmp(exact.FromInt64(int64(v))); c != 0 {
		return c
	}
	if o.rem != 0 {
		return 1
	}
	return 0
}

// round returns the ordinate rounded towards negative infinity.  The
// caller must have checked that the value lies within the coordinate
// range.
func (o ordinate) round() int32 {
	v, _ := o.quo.Int64()
	return int32(v)
}

// intersection is the exact intersection point of two lines.
type intersection struct {
	x, y ordinate
}

// det32 returns a*d - b*c.
func det32(a, b, c, d int32) int64 {
	return exact.Mul32(a, d) - exact.Mul32(b, c)
}

// det64x32 returns a*d - b*c.
func det64x32(a int64, b int32, c int64, d int32) exact.Int128 {
	return exact.Mul64(a, int64(d)).Sub(exact.Mul64(int64(b), c))
}

// intersectLines computes the intersection of the infinite lines through a
// and b, using Cramer's rule.  The result is exact.
func intersectLines(a, b *edge) (intersection, intersectStatus) {
	dx1 := a.top.x - a.bottom.x
	dy1 := a.top.y - a.bottom.y
	dx2 := b.top.x - b.bottom.x
	dy2 := b.top.y - b.bottom.y

	den := det32(dx1, dy1, dx2, dy2)
	if den == 0 {
		return intersection{}, intersectParallel
	}

	aDet := det32(a.top.x, a.top.y, a.bottom.x, a.bottom.y)
	bDet := det32(b.top.x, b.top.y, b.bottom.x, b.bottom.y)

	var res intersection
	res.x.quo, res.x.rem = exact.DivRem(det64x32(aDet, dx1, bDet, dx2), den)
	res.y.quo, res.y.rem = exact.DivRem(det64x32(aDet, dy1, bDet, dy2), den)
	return res, intersectFound
}

// edgeContainsPoint reports whether p lies on the interior of e.
//
// Points strictly between the top and bottom scanlines of e are inside.
// On the top scanline a point must lie strictly right of e.top, on the
// bottom scanline strictly left of e.bottom.  This treats the edge as
// infinitesimally shortened, so that an edge never intersects a neighbour
// at its own end point.
func edgeContainsPoint(e *edge, p intersection) bool {
	cmpTop := p.y.compareInt(e.top.y)
	cmpBottom := p.y.compareInt(e.bottom.y)
	if cmpTop < 0 || cmpBottom > 0 {
		return false
	}
	if cmpTop > 0 && cmpBottom < 0 {
		return true
	}

	if cmpTop == 0 {
		return p.x.compareInt(e.top.x) > 0
	}
	return p.x.compareInt(e.bottom.x) < 0
}

// edgeIntersect finds the intersection point of the edges a and b.
// The point is rounded to the internal grid only after containment in
// both edges has been established on the exact value.
func edgeIntersect(a, b *edge) (point, intersectStatus) {
	p, status := intersectLines(a, b)
	if status != intersectFound {
		return point{}, status
	}
	if !edgeContainsPoint(a, p) || !edgeContainsPoint(b, p) {
		return point{}, intersectNone
	}
	return point{x: p.x.round(), y: p.y.round()}, intersectFound
}
