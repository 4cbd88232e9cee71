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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

// sweepCases are polygons which exercise the special cases of the sweep:
// crossings at shared vertices, collinear and congruent edges, and many
// edges meeting in a single point.
var sweepCases = []TestCase{
	{
		Name:   "bowtie",
		Path:   polygon(pt(8, 8), pt(56, 56), pt(56, 8), pt(8, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "bowtie_tiny",
		Path:   polygon(pt(0, 0), pt(1.0/64, 1.0/64), pt(1.0/64, 0), pt(0, 1.0/64)),
		Width:  8,
		Height: 8,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "identical_rect_nonzero",
		Path:   appendPath(rectangle(16, 16, 32, 32), rectangle(16, 16, 32, 32)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "identical_rect_evenodd",
		Path:   appendPath(rectangle(16, 16, 32, 32), rectangle(16, 16, 32, 32)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "shared_edge",
		Path:   appendPath(rectangle(8, 8, 24, 48), rectangle(32, 8, 24, 48)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "collinear_overlap",
		Path:   appendPath(rectangle(8, 8, 24, 48), rectangle(32, 20, 24, 20)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "fan",
		Path:   fan(32, 32, 28, 16),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_11_nonzero",
		Path:   starPolygon(32, 32, 30, 11, 4),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_11_evenodd",
		Path:   starPolygon(32, 32, 30, 11, 4),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "zigzag_crossings",
		Path:   zigzagCrossings(4, 60, 8, 56, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
}

// fan builds n thin triangles which all share the vertex (cx, cy).
func fan(cx, cy, r float64, n int) *path.Data {
	p := &path.Data{}
	for i := range n {
		a0 := float64(2*i) * math.Pi / float64(n)
		a1 := a0 + math.Pi/float64(n)
		appendPath(p, polygon(
			pt(cx, cy),
			pt(cx+r*math.Cos(a0), cy+r*math.Sin(a0)),
			pt(cx+r*math.Cos(a1), cy+r*math.Sin(a1))))
	}
	return p
}

// zigzagCrossings builds a closed polygon whose two long sides zigzag
// across each other n times.
func zigzagCrossings(x0, x1, y0, y1 float64, n int) *path.Data {
	p := (&path.Data{}).MoveTo(pt(x0, y0))
	dx := (x1 - x0) / float64(n)
	for i := 1; i <= n; i++ {
		y := y1
		if i%2 == 0 {
			y = y0
		}
		p = p.LineTo(pt(x0+float64(i)*dx, y))
	}
	for i := n - 1; i >= 0; i-- {
		y := y0
		if i%2 == 0 {
			y = y1
		}
		p = p.LineTo(pt(x0+float64(i)*dx, y))
	}
	return p.Close()
}
