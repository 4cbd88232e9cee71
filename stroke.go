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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// The stroker decomposes the outline of a stroked path into simple pieces:
// one quadrilateral per segment, plus polygons for joins and caps.  All
// pieces are oriented the same way and tessellated together using the
// nonzero winding rule, which gives their union.  Overlaps between the
// pieces are resolved exactly by the sweep, so no offset curve
// intersections need to be computed here.

// strokeSegment is a line segment in user coordinates.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints in user space
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// at returns the point at distance s from A.
func (seg *strokeSegment) at(s float64) vec.Vec2 {
	return seg.A.Add(seg.T.Mul(s))
}

// subpathRange locates the segments of one subpath in a segment buffer.
type subpathRange struct {
	start, end int
	closed     bool
}

// strokeDot is a subpath or dash of length zero.  Only dots with an
// orientation can get a square cap.
type strokeDot struct {
	P, T     vec.Vec2
	oriented bool
}

// Stroke tessellates the outline of the stroked path, using Width, Cap,
// Join, MiterLimit, Dash and DashPhase.  Trapezoids are delivered in
// device space via the emit callback.
func (r *Tessellator) Stroke(p *path.Data, emit func(Trapezoid)) error {
	switch {
	case !(r.Width > 0):
		return errors.Errorf("invalid line width %g", r.Width)
	case !(r.MiterLimit >= 1):
		return errors.Errorf("invalid miter limit %g", r.MiterLimit)
	case !(r.Flatness > 0):
		return errors.Errorf("invalid flatness %g", r.Flatness)
	}
	for _, v := range r.Dash {
		if v < 0 || math.IsNaN(v) {
			return errors.Errorf("invalid dash pattern %v", r.Dash)
		}
	}

	r.poly.Reset()
	r.pathErr = nil
	r.flattenStroke(p)

	segs, subpaths := r.segs, r.subpaths
	if r.applyDash() {
		segs, subpaths = r.dashSegs, r.dashSubpaths
	}

	d := r.Width / 2
	for _, sp := range subpaths {
		if sp.start < sp.end {
			r.strokeSubpath(segs[sp.start:sp.end], sp.closed, d)
		}
	}
	for _, dot := range r.dots {
		r.addDot(dot, d)
	}

	if r.pathErr != nil {
		return r.pathErr
	}
	return r.TessellateEdges(r.poly.Edges(), NonZero, emit)
}

// flattenStroke walks the path, flattens curves, and fills r.segs,
// r.subpaths and r.dots.
func (r *Tessellator) flattenStroke(p *path.Data) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	startIdx := 0
	inSubpath := false
	drawn := false // saw LineTo/QuadTo/CubeTo in the current subpath

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath && drawn {
				r.endSubpath(startIdx, start, false)
			}
			current = p.Coords[coordIdx]
			start = current
			startIdx = len(r.segs)
			inSubpath = true
			drawn = false
			coordIdx++

		case path.CmdLineTo:
			if inSubpath {
				drawn = true
				r.addStrokeSegment(current, p.Coords[coordIdx])
			}
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			if inSubpath {
				drawn = true
				r.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], r.addStrokeSegment)
			}
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			if inSubpath {
				drawn = true
				r.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], r.addStrokeSegment)
			}
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if inSubpath {
				if current != start {
					r.addStrokeSegment(current, start)
				}
				r.endSubpath(startIdx, start, true)
				current = start
				startIdx = len(r.segs)
				inSubpath = false
				drawn = false
			}
		}
	}
	if inSubpath && drawn {
		r.endSubpath(startIdx, start, false)
	}
}

// endSubpath records the segments from startIdx onwards as one subpath.
// A subpath without segments becomes a dot.
func (r *Tessellator) endSubpath(startIdx int, start vec.Vec2, closed bool) {
	if len(r.segs) == startIdx {
		r.dots = append(r.dots, strokeDot{P: start})
		return
	}
	r.subpaths = append(r.subpaths, subpathRange{start: startIdx, end: len(r.segs), closed: closed})
}

// addStrokeSegment adds a line segment to the flattening buffer.
func (r *Tessellator) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// strokeSubpath adds the pieces for a single subpath to r.poly.
func (r *Tessellator) strokeSubpath(segs []strokeSegment, closed bool, d float64) {
	for i := range segs {
		seg := &segs[i]
		r.piece = append(r.piece[:0],
			seg.A.Add(seg.N.Mul(d)),
			seg.B.Add(seg.N.Mul(d)),
			seg.B.Sub(seg.N.Mul(d)),
			seg.A.Sub(seg.N.Mul(d)))
		r.addPiece()

		if i+1 < len(segs) {
			r.addJoin(seg.B, seg.T, segs[i+1].T, d)
		}
	}

	first := &segs[0]
	last := &segs[len(segs)-1]
	if closed {
		r.addJoin(first.A, last.T, first.T, d)
	} else {
		r.addCap(first.A, first.T.Mul(-1), d)
		r.addCap(last.B, last.T, d)
	}
}

// addJoin adds a line join at point P where the tangent changes from T1
// to T2.  Only the outer side of the corner needs to be filled; the inner
// side is covered by the segment pieces.
func (r *Tessellator) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X

	if sinTheta > -collinearityThreshold && sinTheta < collinearityThreshold {
		if cosTheta > 0 {
			return
		}
		// The path doubles back.  Only a round join has a well-defined
		// shape in this case.
		if r.Join == graphics.LineJoinRound {
			r.addCircle(P, d)
		}
		return
	}

	// offsets towards the outer side of the corner
	s := -d
	if sinTheta < 0 {
		s = d
	}
	o1 := vec.Vec2{X: -T1.Y, Y: T1.X}.Mul(s)
	o2 := vec.Vec2{X: -T2.Y, Y: T2.X}.Mul(s)

	switch r.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if sinTheta < 0 {
			angle = -angle
		}
		r.piece = append(r.piece[:0], P)
		r.addArc(P, d, o1.Mul(1/d), angle)
		r.addPiece()
		return

	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/sin(φ/2),
		// where φ = π - θ is the angle between the segments.
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
			tip := P.Add(o1.Add(o2).Mul(1 / (1 + cosTheta)))
			r.piece = append(r.piece[:0], P, P.Add(o1), tip, P.Add(o2))
			r.addPiece()
			return
		}
	}

	// bevel, and miter beyond the limit
	r.piece = append(r.piece[:0], P, P.Add(o1), P.Add(o2))
	r.addPiece()
}

// addCap adds a line cap at point P.  T is the outward tangent direction.
func (r *Tessellator) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := T.Mul(d)
		r.piece = append(r.piece[:0],
			P.Add(N.Mul(d)),
			P.Add(N.Mul(d)).Add(ext),
			P.Sub(N.Mul(d)).Add(ext),
			P.Sub(N.Mul(d)))
		r.addPiece()

	case graphics.LineCapRound:
		// half disc from +N through T to -N
		r.piece = r.piece[:0]
		r.addArc(P, d, N, -math.Pi)
		r.addPiece()
	}
}

// addDot adds the shape for a subpath or dash of length zero.
func (r *Tessellator) addDot(dot strokeDot, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(dot.P, d)
	case graphics.LineCapSquare:
		if !dot.oriented {
			return
		}
		r.addCap(dot.P, dot.T, d)
		r.addCap(dot.P, dot.T.Mul(-1), d)
	}
}

func (r *Tessellator) addCircle(center vec.Vec2, radius float64) {
	r.piece = r.piece[:0]
	r.addArc(center, radius, vec.Vec2{X: 1, Y: 0}, 2*math.Pi)
	r.addPiece()
}

// addArc appends arc vertices to r.piece, including both end points.
// startDir is the unit vector from center to the arc start, sweep is the
// sweep angle in radians (positive = CCW).
func (r *Tessellator) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	// use the device-space radius for the segment count
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius, Y: 0}).Length(),
		r.transformLinear(vec.Vec2{X: 0, Y: radius}).Length())

	// A chord subtending angle θ deviates by r*(1 - cos(θ/2)) from the
	// circle.
	n := 1
	if devRadius > r.Flatness {
		angleStep := 2 * math.Acos(1-r.Flatness/devRadius)
		if angleStep <= 0 || math.IsNaN(angleStep) {
			angleStep = math.Pi / 4
		}
		n = int(min(math.Ceil(math.Abs(sweep)/angleStep), maxCurveSegments))
	}
	n = max(n, 4)

	dt := sweep / float64(n)
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.piece = append(r.piece, center.Add(dir.Mul(radius)))
	}
}

// addPiece converts the polygon in r.piece to device space and adds its
// edges to r.poly, oriented so that the polygon has positive area.
// Pieces which collapse to zero area are dropped.
func (r *Tessellator) addPiece() {
	r.devPiece = r.devPiece[:0]
	for _, p := range r.piece {
		q, err := r.toDevice(p)
		if err != nil {
			r.setPathErr(err)
			return
		}
		r.devPiece = append(r.devPiece, q)
	}

	n := len(r.devPiece)
	area := 0.0
	for i, a := range r.devPiece {
		b := r.devPiece[(i+1)%n]
		area += float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
	}
	if area == 0 {
		return
	}

	for i, a := range r.devPiece {
		b := r.devPiece[(i+1)%n]
		if area > 0 {
			r.poly.AddLine(a, b)
		} else {
			r.poly.AddLine(b, a)
		}
	}
}

// applyDash splits the subpaths in r.segs according to the dash pattern.
// The result is stored in r.dashSegs and r.dashSubpaths; dashes of length
// zero are appended to r.dots.  If no dashing is required, applyDash
// returns false.
func (r *Tessellator) applyDash() bool {
	total := 0.0
	for _, v := range r.Dash {
		total += v
	}
	if len(r.Dash)%2 == 1 {
		total *= 2
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return false
	}

	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}

	r.dashSegs = r.dashSegs[:0]
	r.dashSubpaths = r.dashSubpaths[:0]
	for _, sp := range r.subpaths {
		r.dashSubpath(r.segs[sp.start:sp.end], sp.closed, phase)
	}
	return true
}

func (r *Tessellator) dashSubpath(segs []strokeSegment, closed bool, phase float64) {
	n := len(r.Dash)

	// find the dash element containing the phase
	idx := 0
	for {
		l := r.Dash[idx%n]
		if phase < l || l == 0 && phase == 0 {
			break
		}
		phase -= l
		idx++
	}
	remaining := r.Dash[idx%n] - phase
	on := idx%2 == 0
	firstIdx := idx
	firstRange := -1 // entry in r.dashSubpaths for the dash at the start

	dashStart := len(r.dashSegs)
	finish := func(seg *strokeSegment, end vec.Vec2) {
		if len(r.dashSegs) > dashStart {
			if idx == firstIdx {
				firstRange = len(r.dashSubpaths)
			}
			r.dashSubpaths = append(r.dashSubpaths, subpathRange{start: dashStart, end: len(r.dashSegs)})
		} else {
			r.dots = append(r.dots, strokeDot{P: end, T: seg.T, oriented: true})
		}
		dashStart = len(r.dashSegs)
	}

	for i := range segs {
		seg := &segs[i]
		segLen := seg.B.Sub(seg.A).Length()
		pos := 0.0
		for remaining <= segLen-pos {
			end := pos + remaining
			if on {
				if end > pos {
					r.dashSegs = append(r.dashSegs, strokeSegment{A: seg.at(pos), B: seg.at(end), T: seg.T, N: seg.N})
				}
				finish(seg, seg.at(end))
			}
			pos = end
			idx++
			remaining = r.Dash[idx%n]
			on = idx%2 == 0
		}
		if on && pos < segLen {
			r.dashSegs = append(r.dashSegs, strokeSegment{A: seg.at(pos), B: seg.B, T: seg.T, N: seg.N})
		}
		remaining -= segLen - pos
	}

	if !on || len(r.dashSegs) == dashStart {
		return
	}
	if closed && idx == firstIdx {
		// a single dash covers the whole subpath
		r.dashSubpaths = append(r.dashSubpaths, subpathRange{start: dashStart, end: len(r.dashSegs), closed: true})
		return
	}
	if closed && firstRange >= 0 {
		// the last dash continues into the first one
		first := &r.dashSubpaths[firstRange]
		r.dashSegs = append(r.dashSegs, r.dashSegs[first.start:first.end]...)
		first.end = first.start
	}
	r.dashSubpaths = append(r.dashSubpaths, subpathRange{start: dashStart, end: len(r.dashSegs)})
}

// Numerical tolerances for the stroker.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	// Segments shorter than this are skipped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6
)
