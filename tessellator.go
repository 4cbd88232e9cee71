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
	"context"
	"log/slog"

	"github.com/google/btree"
	"github.com/pkg/errors"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Tessellator converts polygons into trapezoids.
// The caller creates one instance and reuses it for multiple polygons.
// Internal buffers grow as needed but never shrink.
//
// A Tessellator is not safe for concurrent use.
type Tessellator struct {
	// CTM is the current transformation matrix (user space to device
	// space), used by the path methods.  Device space is measured in
	// pixels.  Must be a non-singular matrix.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in device pixels.
	// Must be > 0.
	Flatness float64

	// Width is the stroke line width in user-space units.
	// Must be > 0 for stroke operations.
	Width float64

	// Cap is the line cap style for stroke endpoints.
	Cap graphics.LineCapStyle

	// Join is the line join style for stroke corners.
	Join graphics.LineJoinStyle

	// MiterLimit is the miter limit for miter joins.
	// Must be >= 1.0.
	MiterLimit float64

	// Dash is the dash pattern in user-space units.
	// Nil means solid line (no dashing).
	Dash []float64

	// DashPhase is the offset into the dash pattern.
	DashPhase float64

	// Validate enables a consistency check of the sweep line after every
	// event.  A failed check causes a panic.  This is slow and only
	// useful for debugging.
	Validate bool

	// Internal buffers (reused across calls)
	edges   []edge   // edge arena for the current run
	events  []event  // start and stop events, two per edge
	xevents []*event // intersection events, allocated on demand
	nextX   int      // number of xevents in use
	poly    Polygon  // edges collected from a path
	pathErr error    // first error seen while collecting path edges

	queue     *eventQueue
	sweep     *sweepLine
	stats     Stats
	reordered int // order corrections in the current run

	// stroke buffers
	segs         []strokeSegment   // all segments from all subpaths, contiguous
	subpaths     []subpathRange    // subpaths in segs
	dots         []strokeDot       // subpaths and dashes of length zero
	dashSegs     []strokeSegment   // segments of all dashes
	dashSubpaths []subpathRange    // dashes in dashSegs
	piece        []vec.Vec2        // outline of the current stroke piece
	devPiece     []fixed.Point26_6 // piece in device space
}

// Stats describes the work done by the most recent tessellation run.
type Stats struct {
	Edges         int // number of input edges
	Events        int // number of events taken from the queue
	Intersections int // number of intersection events which swapped two edges
	Trapezoids    int // number of trapezoids emitted
}

// NewTessellator creates a new Tessellator with PDF default values for
// all parameters.
func NewTessellator() *Tessellator {
	r := &Tessellator{
		CTM:        matrix.Identity,
		Flatness:   defaultFlatness,
		Width:      1.0,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
	free := btree.NewFreeListG[*event](btree.DefaultFreeListSize)
	r.queue = newEventQueue(func(a, b *event) bool {
		return compareEvents(r.edges, a, b) < 0
	}, free)
	r.sweep = newSweepLine()
	return r
}

// Reset restores the default values of all parameters, preserving
// internal buffer capacity for reuse.
func (r *Tessellator) Reset() {
	r.CTM = matrix.Identity
	r.Flatness = defaultFlatness
	r.Width = 1.0
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
	r.Validate = false

	r.edges = r.edges[:0]
	r.events = r.events[:0]
	r.nextX = 0
	r.poly.Reset()
	r.pathErr = nil
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]
	r.dashSegs = r.dashSegs[:0]
	r.dashSubpaths = r.dashSubpaths[:0]
	r.piece = r.piece[:0]
	r.devPiece = r.devPiece[:0]
	r.queue.clear()
	r.sweep.reset(nil)
	r.stats = Stats{}
}

// Stats returns statistics about the most recent tessellation run.
func (r *Tessellator) Stats() Stats {
	return r.stats
}

// run performs the sweep over r.edges.
func (r *Tessellator) run(rule FillRule, emit func(Trapezoid)) {
	r.stats = Stats{Edges: len(r.edges)}
	r.reordered = 0
	r.nextX = 0
	r.queue.clear()
	r.sweep.reset(r.edges)

	// The queue stores pointers into r.events, so the slice must not
	// grow once the first event has been inserted.
	n := len(r.edges)
	if cap(r.events) < 2*n {
		r.events = make([]event, 2*n)
	}
	r.events = r.events[:2*n]
	for i := range r.edges {
		e := &r.edges[i]
		r.events[2*i] = event{kind: eventStart, pt: e.top, e1: i, e2: noEdge}
		r.events[2*i+1] = event{kind: eventStop, pt: e.bottom, e1: i, e2: noEdge}
		r.queue.insert(&r.events[2*i])
		r.queue.insert(&r.events[2*i+1])
	}

	s := r.sweep
	for r.queue.len() > 0 {
		ev, _ := r.queue.peekMin()
		if ev.pt.y != s.currentY {
			r.emitTrapezoids(s.currentY, ev.pt.y, rule, emit)
			s.currentY = ev.pt.y
		}
		r.queue.delete(ev)
		r.stats.Events++

		switch ev.kind {
		case eventStart:
			s.insert(ev.e1)
			e := &r.edges[ev.e1]
			r.checkIntersection(e.prev, ev.e1)
			r.checkIntersection(ev.e1, e.next)

		case eventStop:
			e := &r.edges[ev.e1]
			left, right := e.prev, e.next
			s.delete(ev.e1)
			r.checkIntersection(left, right)

		case eventIntersection:
			e1, e2 := &r.edges[ev.e1], &r.edges[ev.e2]
			if e1.next != ev.e2 {
				// the edges have been separated since the event was queued
				continue
			}
			r.stats.Intersections++

			e1.middle = ev.pt
			e2.middle = ev.pt
			left, right := e1.prev, e2.next
			s.swap(ev.e1, ev.e2)
			r.checkIntersection(left, ev.e2)
			r.checkIntersection(ev.e1, right)
		}

		if r.Validate {
			if err := s.validate(); err != nil {
				panic(errors.Wrapf(err, "sweep line invalid after %s event at y=%d", ev.kind, ev.pt.y))
			}
		}
	}

	if s.head != noEdge {
		panic(errors.New("sweep line not empty after the last event"))
	}
	if r.reordered > 0 {
		Logger().Warn("sweep line order restored after rounding",
			slog.Int("edges", n),
			slog.Int("swaps", r.reordered))
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("tessellate",
			slog.String("rule", rule.String()),
			slog.Int("edges", r.stats.Edges),
			slog.Int("events", r.stats.Events),
			slog.Int("intersections", r.stats.Intersections),
			slog.Int("trapezoids", r.stats.Trapezoids))
	}
}

// checkIntersection schedules an intersection event for the adjacent
// active edges left and right, if they cross at or below the current
// scanline.
//
// A pair which is out of order at the current scanline is swapped back,
// unless the edges cross before the next scanline.  Such pairs are left
// behind when a new edge is placed next to edges whose crossing point was
// rounded down onto the current scanline.  Edges ending on the scanline
// are left alone; they are removed before the sweep moves on.
func (r *Tessellator) checkIntersection(left, right int) {
	if left == noEdge || right == noEdge || r.edges[left].next != right {
		return
	}
	a, b := &r.edges[left], &r.edges[right]
	s := r.sweep

	ending := a.bottom.y == s.currentY || b.bottom.y == s.currentY
	if !ending && s.compareEdges(left, right) > 0 {
		pt, status := edgeIntersect(a, b)
		if status != intersectFound || pt.y != s.currentY {
			r.restoreOrder(left, right)
		}
		return
	}

	// Edges which diverge below the sweep line cannot meet again.
	if slopeCompare(a, b) <= 0 {
		return
	}

	pt, status := edgeIntersect(a, b)
	if status != intersectFound || pt.y < s.currentY {
		return
	}

	ev := r.newIntersectionEvent()
	*ev = event{kind: eventIntersection, pt: pt, e1: left, e2: right}
	if !r.queue.insert(ev) {
		r.nextX--
	}
}

// restoreOrder swaps the adjacent edges left and right, and checks the
// new neighbours.
func (r *Tessellator) restoreOrder(left, right int) {
	prev, next := r.edges[left].prev, r.edges[right].next
	r.sweep.swap(left, right)
	r.reordered++
	r.checkIntersection(prev, right)
	r.checkIntersection(left, next)
}

func (r *Tessellator) newIntersectionEvent() *event {
	if r.nextX == len(r.xevents) {
		r.xevents = append(r.xevents, &event{})
	}
	ev := r.xevents[r.nextX]
	r.nextX++
	return ev
}

// Default values for tessellator parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit is the default miter limit, matching PDF/PostScript.
	defaultMiterLimit = 10.0
)
