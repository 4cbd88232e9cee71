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
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Polygon collects the edges of a polygon.  Horizontal edges are dropped
// and all other edges are oriented from top to bottom.
// The zero value is an empty polygon.
type Polygon struct {
	edges []Edge
}

// AddLine adds the edge from p0 to p1.
func (p *Polygon) AddLine(p0, p1 fixed.Point26_6) {
	switch {
	case p0.Y < p1.Y:
		p.edges = append(p.edges, Edge{Top: p0, Bottom: p1})
	case p0.Y > p1.Y:
		p.edges = append(p.edges, Edge{Top: p1, Bottom: p0, Reversed: true})
	}
}

// AddPolygon adds the closed polygon with the given vertices.
func (p *Polygon) AddPolygon(vertices ...fixed.Point26_6) {
	n := len(vertices)
	for i := range n {
		p.AddLine(vertices[i], vertices[(i+1)%n])
	}
}

// Edges returns the edges collected so far.  The returned slice is only
// valid until the next call to a method of p.
func (p *Polygon) Edges() []Edge {
	return p.edges
}

// Reset removes all edges, keeping the allocated memory.
func (p *Polygon) Reset() {
	p.edges = p.edges[:0]
}

// FillNonZero tessellates the path using the nonzero winding rule.
// Trapezoids are delivered in device space via the emit callback.
func (r *Tessellator) FillNonZero(p *path.Data, emit func(Trapezoid)) error {
	return r.fill(p, NonZero, emit)
}

// FillEvenOdd tessellates the path using the even-odd fill rule.
// Trapezoids are delivered in device space via the emit callback.
func (r *Tessellator) FillEvenOdd(p *path.Data, emit func(Trapezoid)) error {
	return r.fill(p, EvenOdd, emit)
}

func (r *Tessellator) fill(p *path.Data, rule FillRule, emit func(Trapezoid)) error {
	if err := r.collectPathEdges(p); err != nil {
		return err
	}
	return r.TessellateEdges(r.poly.Edges(), rule, emit)
}

// collectPathEdges walks the path, transforms to device space, and builds
// the polygon in r.poly.  Open subpaths are closed implicitly.
func (r *Tessellator) collectPathEdges(p *path.Data) error {
	r.poly.Reset()
	r.pathErr = nil
	if !(r.Flatness > 0) {
		return errors.Errorf("invalid flatness %g", r.Flatness)
	}

	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != subpath {
				r.addEdge(current, subpath)
			}
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			r.addEdge(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], r.addEdge)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], r.addEdge)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				r.addEdge(current, subpath)
			}
			current = subpath
		}
	}
	if current != subpath {
		r.addEdge(current, subpath)
	}

	return r.pathErr
}

// addEdge adds an edge from user space coordinates, transforming to
// device space.  The first conversion error is kept in r.pathErr.
func (r *Tessellator) addEdge(p0, p1 vec.Vec2) {
	a, err := r.toDevice(p0)
	if err != nil {
		r.setPathErr(err)
		return
	}
	b, err := r.toDevice(p1)
	if err != nil {
		r.setPathErr(err)
		return
	}
	r.poly.AddLine(a, b)
}

func (r *Tessellator) setPathErr(err error) {
	if r.pathErr == nil {
		r.pathErr = err
	}
}

// toDevice transforms a point from user space to 26.6 device coordinates.
func (r *Tessellator) toDevice(p vec.Vec2) (fixed.Point26_6, error) {
	x := r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4]
	y := r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5]
	fx, err := toFixed(x)
	if err != nil {
		return fixed.Point26_6{}, errors.Wrapf(err, "point (%g, %g)", p.X, p.Y)
	}
	fy, err := toFixed(y)
	if err != nil {
		return fixed.Point26_6{}, errors.Wrapf(err, "point (%g, %g)", p.X, p.Y)
	}
	return fixed.Point26_6{X: fx, Y: fy}, nil
}

// toFixed rounds a device coordinate to 26.6 fixed point.
func toFixed(v float64) (fixed.Int26_6, error) {
	if !isFinite(v) {
		return 0, ErrNonFinite
	}
	v = math.Round(v * 64)
	if v < -MaxCoord || v > MaxCoord {
		return 0, ErrCoordinateRange
	}
	return fixed.Int26_6(v), nil
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (r *Tessellator) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line
// segment.  All points are in user space; the number of segments is chosen
// so that the error in device space stays below r.Flatness.
func (r *Tessellator) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 is the maximal deviation from the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	if !isFinite(errDev) {
		// toDevice reports the offending point
		emit(p0, p1)
		emit(p1, p2)
		return
	}

	n := 1
	if errDev > r.Flatness {
		n = int(min(math.Ceil(math.Sqrt(errDev/r.Flatness)), maxCurveSegments))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		if i == n {
			pt = p2
		}
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier, using Wang's formula for the
// number of segments.
func (r *Tessellator) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	mDev := max(d1.Length(), d2.Length())
	if !isFinite(mDev) {
		emit(p0, p1)
		emit(p1, p2)
		emit(p2, p3)
		return
	}

	n := 1
	if mDev > 0 {
		// n = ceil(sqrt(3 * mDev / (4 * ε)))
		nFloat := math.Sqrt(3 * mDev / (4 * r.Flatness))
		if nFloat > 1 {
			n = int(min(math.Ceil(nFloat), maxCurveSegments))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		if i == n {
			pt = p3
		}
		emit(prev, pt)
		prev = pt
	}
}

// maxCurveSegments bounds the number of line segments per curve.  With the
// default flatness, a curve needs this many segments only when its
// deviation from the chord exceeds the coordinate range.
const maxCurveSegments = 1 << 12

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
