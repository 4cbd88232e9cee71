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

// Package tessellate converts polygons into sets of non-overlapping
// trapezoids, using the Bentley-Ottmann sweep line algorithm.
//
// All decisions about the order of edges and the location of edge
// crossings are made with exact integer arithmetic.  Input coordinates are
// 26.6 fixed point numbers.  Intersection points are rounded to a grid
// four times finer than the input grid; only the trapezoid boundaries seen
// by the caller are rounded back to 26.6.
//
// The trapezoids are meant to be consumed by a scan converter.  For
// convenience, the package also includes adapters which tessellate filled
// and stroked PDF paths.
package tessellate

import (
	"github.com/pkg/errors"
	"golang.org/x/image/math/fixed"
)

// Edge is a directed polygon edge.  Top must lie strictly above Bottom,
// i.e. Top.Y < Bottom.Y.  Reversed records whether the edge of the
// original polygon pointed upwards, from Bottom to Top.
//
// All coordinates must lie in the range [-MaxCoord, MaxCoord].
type Edge struct {
	Top, Bottom fixed.Point26_6
	Reversed    bool
}

// Tessellate converts the polygon given by edges into trapezoids, using
// the given fill rule.  The union of the trapezoids is the filled region
// of the polygon; different trapezoids do not overlap.
//
// On error, no trapezoids are returned.
func Tessellate(edges []Edge, rule FillRule) ([]Trapezoid, error) {
	var res []Trapezoid
	err := NewTessellator().TessellateEdges(edges, rule, func(t Trapezoid) {
		res = append(res, t)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// TessellateEdges converts the polygon given by edges into trapezoids, and
// calls emit for each trapezoid.  All edges are checked before the first
// call to emit.
func (r *Tessellator) TessellateEdges(edges []Edge, rule FillRule, emit func(Trapezoid)) error {
	if err := r.loadEdges(edges); err != nil {
		r.edges = r.edges[:0]
		return err
	}
	r.run(rule, emit)
	return nil
}

// loadEdges validates the input and fills the edge arena.
func (r *Tessellator) loadEdges(edges []Edge) error {
	r.edges = r.edges[:0]
	for i, in := range edges {
		if !inRange(in.Top) || !inRange(in.Bottom) {
			return errors.Wrapf(ErrCoordinateRange, "edge %d: %v-%v", i, in.Top, in.Bottom)
		}
		if in.Top.Y == in.Bottom.Y {
			return errors.Wrapf(ErrHorizontalEdge, "edge %d: %v-%v", i, in.Top, in.Bottom)
		}
		if in.Top.Y > in.Bottom.Y {
			return errors.Wrapf(ErrEdgeOrder, "edge %d: %v-%v", i, in.Top, in.Bottom)
		}

		top := toInternal(in.Top)
		r.edges = append(r.edges, edge{
			top:      top,
			bottom:   toInternal(in.Bottom),
			middle:   top,
			reversed: in.Reversed,
			prev:     noEdge,
			next:     noEdge,
		})
	}
	return nil
}

func inRange(p fixed.Point26_6) bool {
	return p.X >= -MaxCoord && p.X <= MaxCoord && p.Y >= -MaxCoord && p.Y <= MaxCoord
}
