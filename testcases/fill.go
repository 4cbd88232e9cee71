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
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "triangle_evenodd",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "rectangle_subpixel",
		Path:   rectangle(10.25, 9.75, 33.5, 20.125),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_nonzero",
		Path:   starPolygon(32, 32, 25, 5, 2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_evenodd",
		Path:   starPolygon(32, 32, 25, 5, 2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "overlapping_rect_nonzero",
		Path:   appendPath(rectangle(8, 8, 32, 32), rectangle(24, 24, 32, 32)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   appendPath(rectangle(8, 8, 32, 32), rectangle(24, 24, 32, 32)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "ring_nonzero",
		Path:   appendPath(rectangle(8, 8, 48, 48), rectangleReversed(20, 20, 24, 24)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring_evenodd",
		Path:   appendPath(rectangle(8, 8, 48, 48), rectangle(20, 20, 24, 24)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "diamond",
		Path:   polygon(pt(32, 4), pt(60, 32), pt(32, 60), pt(4, 32)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "grid",
		Path:   rectangleGrid(6, 6, 64, 64, 2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "large_concentric_nonzero",
		Path:   concentricSquares(256, 256, 8, 24),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "large_concentric_evenodd",
		Path:   concentricSquares(256, 256, 8, 24),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: EvenOdd},
	},
}

// rectangle builds a closed rectangle, counter-clockwise in device space.
func rectangle(x, y, w, h float64) *path.Data {
	return polygon(pt(x, y), pt(x, y+h), pt(x+w, y+h), pt(x+w, y))
}

// rectangleReversed builds a rectangle with the opposite orientation.
func rectangleReversed(x, y, w, h float64) *path.Data {
	return polygon(pt(x, y), pt(x+w, y), pt(x+w, y+h), pt(x, y+h))
}

// starPolygon builds the regular star polygon {n/k}: n points on a circle,
// connecting every k-th point.
func starPolygon(cx, cy, r float64, n, k int) *path.Data {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i*k)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}

// rectangleGrid builds rows×cols separate rectangles filling the given
// area, separated by gap.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)
	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x := float64(col)*cellW + gap/2
			y := float64(row)*cellH + gap/2
			appendPath(p, rectangle(x, y, cellW-gap, cellH-gap))
		}
	}
	return p
}

// concentricSquares builds n nested squares around (cx, cy), all with the
// same orientation.
func concentricSquares(cx, cy, step float64, n int) *path.Data {
	p := &path.Data{}
	for i := 1; i <= n; i++ {
		d := float64(i) * step
		appendPath(p, rectangle(cx-d, cy-d, 2*d, 2*d))
	}
	return p
}
