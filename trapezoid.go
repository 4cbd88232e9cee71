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
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/rect"
)

// Line is a line through two points.  For the boundaries of a trapezoid,
// P1 is the upper point.
type Line struct {
	P1, P2 fixed.Point26_6
}

// XAt returns the x coordinate of the line at height y, in 26.6 units.
// For a horizontal line, the x coordinate of P1 is returned.
func (l Line) XAt(y fixed.Int26_6) float64 {
	dy := l.P2.Y - l.P1.Y
	if dy == 0 {
		return float64(l.P1.X)
	}
	t := float64(y-l.P1.Y) / float64(dy)
	return float64(l.P1.X) + t*float64(l.P2.X-l.P1.X)
}

// Trapezoid is the region between the horizontal lines y = Top and
// y = Bottom, bounded by Left and Right.  The boundary lines may extend
// beyond the band between Top and Bottom; only the part inside the band
// belongs to the trapezoid.
type Trapezoid struct {
	Top, Bottom fixed.Int26_6
	Left, Right Line
}

// Area returns the area of the trapezoid in square pixels.  The area is
// negative if the boundaries cross inside the band, which only happens
// for trapezoids affected by rounding.
func (t Trapezoid) Area() float64 {
	wTop := t.Right.XAt(t.Top) - t.Left.XAt(t.Top)
	wBottom := t.Right.XAt(t.Bottom) - t.Left.XAt(t.Bottom)
	h := float64(t.Bottom - t.Top)
	return (wTop + wBottom) / 2 * h / (64 * 64)
}

// Extents returns the smallest rectangle, in pixel units, which contains
// all the given trapezoids.  The zero rectangle is returned for an empty
// slice.
func Extents(traps []Trapezoid) rect.Rect {
	var res rect.Rect
	for i, t := range traps {
		xMin := min(t.Left.XAt(t.Top), t.Left.XAt(t.Bottom)) / 64
		xMax := max(t.Right.XAt(t.Top), t.Right.XAt(t.Bottom)) / 64
		yMin := float64(t.Top) / 64
		yMax := float64(t.Bottom) / 64
		if i == 0 {
			res = rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}
			continue
		}
		res.LLx = min(res.LLx, xMin)
		res.LLy = min(res.LLy, yMin)
		res.URx = max(res.URx, xMax)
		res.URy = max(res.URy, yMax)
	}
	return res
}

// emitTrapezoids reports the filled regions between consecutive active
// edges for the band [y0, y1), in internal coordinates.
func (r *Tessellator) emitTrapezoids(y0, y1 int32, rule FillRule, emit func(Trapezoid)) {
	top := fixed.Int26_6(y0 >> guardBits)
	bottom := fixed.Int26_6(y1 >> guardBits)
	if top >= bottom {
		return
	}

	edges := r.sweep.edges
	winding := 0
	for i := r.sweep.head; i != noEdge; i = edges[i].next {
		left := &edges[i]
		if left.reversed {
			winding++
		} else {
			winding--
		}

		j := left.next
		if j == noEdge || !rule.Fills(winding) {
			continue
		}
		right := &edges[j]

		emit(Trapezoid{
			Top:    top,
			Bottom: bottom,
			Left:   Line{P1: left.middle.fixed(), P2: left.bottom.fixed()},
			Right:  Line{P1: right.middle.fixed(), P2: right.bottom.fixed()},
		})
		r.stats.Trapezoids++
	}
}
