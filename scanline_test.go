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
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

// scanlineCoverage returns the length of the filled part of the horizontal
// line at height y, computed directly from the edges.
func scanlineCoverage(edges []Edge, rule FillRule, y float64) float64 {
	type crossing struct {
		x   float64
		dir int
	}
	var xs []crossing
	for _, e := range edges {
		y0, y1 := float64(e.Top.Y), float64(e.Bottom.Y)
		if y < y0 || y >= y1 {
			continue
		}
		x0, x1 := float64(e.Top.X), float64(e.Bottom.X)
		dir := -1
		if e.Reversed {
			dir = 1
		}
		xs = append(xs, crossing{x: x0 + (y-y0)*(x1-x0)/(y1-y0), dir: dir})
	}
	slices.SortFunc(xs, func(a, b crossing) int {
		return cmp.Compare(a.x, b.x)
	})

	var length float64
	winding := 0
	for i, c := range xs {
		winding += c.dir
		if i+1 < len(xs) && rule.Fills(winding) {
			length += xs[i+1].x - c.x
		}
	}
	return length
}

// trapezoidCoverage returns the total width of the trapezoids at height y.
func trapezoidCoverage(traps []Trapezoid, y float64) float64 {
	var length float64
	for _, t := range traps {
		if y < float64(t.Top) || y >= float64(t.Bottom) {
			continue
		}
		length += lineX(t.Right, y) - lineX(t.Left, y)
	}
	return length
}

func lineX(l Line, y float64) float64 {
	x1, y1 := float64(l.P1.X), float64(l.P1.Y)
	x2, y2 := float64(l.P2.X), float64(l.P2.Y)
	return x1 + (y-y1)*(x2-x1)/(y2-y1)
}

// roundingSlack bounds the coverage error at height y.  A rounded
// intersection point is less than one unit away from the exact one in
// both coordinates, which moves the edge by at most 1+|dx/dy| units.
func roundingSlack(edges []Edge, y float64) float64 {
	slack := 1.0
	for _, e := range edges {
		if y < float64(e.Top.Y) || y >= float64(e.Bottom.Y) {
			continue
		}
		dx := math.Abs(float64(e.Bottom.X - e.Top.X))
		dy := float64(e.Bottom.Y - e.Top.Y)
		slack += 2 * (1 + dx/dy)
	}
	return slack
}

// checkCoverage runs the tessellator with validation enabled and compares
// the result with the scanline reference on every row of the 26.6 grid.
func checkCoverage(t *testing.T, edges []Edge, rule FillRule, desc string) {
	t.Helper()

	r := NewTessellator()
	r.Validate = true
	var traps []Trapezoid
	var err error
	require.NotPanics(t, func() {
		err = r.TessellateEdges(edges, rule, collect(&traps))
	}, desc)
	require.NoError(t, err, desc)

	if len(edges) == 0 {
		return
	}
	yMin, yMax := edges[0].Top.Y, edges[0].Bottom.Y
	for _, e := range edges[1:] {
		yMin = min(yMin, e.Top.Y)
		yMax = max(yMax, e.Bottom.Y)
	}
	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5
		want := scanlineCoverage(edges, rule, yc)
		got := trapezoidCoverage(traps, yc)
		if d := math.Abs(got - want); d > roundingSlack(edges, yc) {
			t.Fatalf("%s: %s, y=%g: coverage %g, want %g", desc, rule, yc, got, want)
		}
	}
}

// TestRoundedCrossings tessellates a polygon where new edges start next to
// edges which have just been swapped at a rounded intersection point.
func TestRoundedCrossings(t *testing.T) {
	vertices := []fixed.Point26_6{
		{X: 160, Y: 109}, {X: 243, Y: 116}, {X: 228, Y: 130},
		{X: 156, Y: 77}, {X: 205, Y: 116}, {X: 40, Y: 33},
		{X: 164, Y: 247}, {X: 153, Y: 12}, {X: 149, Y: 211},
	}
	var poly Polygon
	poly.AddPolygon(vertices...)

	for _, rule := range []FillRule{NonZero, EvenOdd} {
		checkCoverage(t, poly.Edges(), rule, "polygon")

		r := NewTessellator()
		require.NotPanics(t, func() {
			require.NoError(t, r.TessellateEdges(poly.Edges(), rule, func(Trapezoid) {}))
		})
	}
}

// TestRandomPolygons checks the sweep line invariants and the coverage for
// random polygons on small grids, where many vertices coincide and many
// crossings are rounded.
func TestRandomPolygons(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	count := 300
	if testing.Short() {
		count = 30
	}
	for _, scale := range []int{4, 16, 64, 256} {
		t.Run(fmt.Sprintf("scale=%d", scale), func(t *testing.T) {
			for range count {
				n := 3 + rng.IntN(12)
				vertices := make([]fixed.Point26_6, n)
				for i := range vertices {
					vertices[i] = fixed.Point26_6{
						X: fixed.Int26_6(rng.IntN(scale + 1)),
						Y: fixed.Int26_6(rng.IntN(scale + 1)),
					}
				}
				var poly Polygon
				poly.AddPolygon(vertices...)

				desc := fmt.Sprint(vertices)
				for _, rule := range []FillRule{NonZero, EvenOdd} {
					checkCoverage(t, poly.Edges(), rule, desc)
				}
			}
		})
	}
}

// TestRestoreOrder places a new edge next to a pair of edges which have
// been swapped at the rounded y coordinate of their crossing.  The new
// edge ends up on the wrong side of one of them, and the order must be
// repaired before the edges separate.
func TestRestoreOrder(t *testing.T) {
	edges := []Edge{
		{Top: fixed.Point26_6{X: -20, Y: 0}, Bottom: fixed.Point26_6{X: -20, Y: 20}},
		{Top: fixed.Point26_6{X: 0, Y: 0}, Bottom: fixed.Point26_6{X: 10, Y: 10}},
		{Top: fixed.Point26_6{X: 89, Y: 0}, Bottom: fixed.Point26_6{X: -11, Y: 5}},
		{Top: fixed.Point26_6{X: 6, Y: 4}, Bottom: fixed.Point26_6{X: 16, Y: 14}},
	}

	r := NewTessellator()
	r.Validate = true
	var traps []Trapezoid
	require.NoError(t, r.TessellateEdges(edges, NonZero, collect(&traps)))

	assert.Equal(t, 2, r.Stats().Intersections)
	assert.Equal(t, 1, r.reordered)

	// Below the first edge end, the order is -20, 0 and 6 at the top.
	type pair struct{ left, right fixed.Point26_6 }
	var got []pair
	for _, trap := range traps {
		if trap.Top == 5 {
			got = append(got, pair{trap.Left.P2, trap.Right.P2})
		}
	}
	want := []pair{
		{edges[0].Bottom, edges[1].Bottom},
		{edges[1].Bottom, edges[3].Bottom},
	}
	assert.Equal(t, want, got)

	checkCoverage(t, edges, NonZero, "restore order")
}
