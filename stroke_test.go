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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func TestStrokeArea(t *testing.T) {
	type testCase struct {
		category, name string
		area           float64
	}
	cases := []testCase{
		{"stroke", "line_butt", 44 * 8},
		{"stroke", "line_square", 52 * 8},
		{"stroke", "line_round", 44*8 + 16*math.Pi},
		{"stroke", "closed_square", 46*46 - 34*34},
		{"stroke", "dot_round", 36 * math.Pi},
		{"dash", "dash_equal", 30 * 4},
		{"dash", "dash_single_element", 30 * 4},
		{"dash", "dash_phase", 35 * 4},
		{"dash", "dash_phase_negative", 34 * 4},
		{"dash", "dash_zero_round", 5 * 9 * math.Pi},
		{"ctm", "round_cap_nonuniform", 2 * (40*8 + 16*math.Pi)},
		{"ctm", "dash_scaled", 2 * 32 * 4},
	}
	for _, c := range cases {
		t.Run(c.category+"/"+c.name, func(t *testing.T) {
			tc := findCase(t, c.category, c.name)
			r := NewTessellator()
			r.Flatness = 0.01
			var traps []Trapezoid
			require.NoError(t, runCase(r, tc, collect(&traps)))
			assert.InDelta(t, c.area, totalArea(traps), 5e-3*c.area)
		})
	}
}

// TestStrokeJoins compares the areas of the different join styles on the
// same corner.
func TestStrokeJoins(t *testing.T) {
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 50}).
		LineTo(vec.Vec2{X: 32, Y: 14}).
		LineTo(vec.Vec2{X: 54, Y: 50})

	area := func(join graphics.LineJoinStyle, miterLimit float64) float64 {
		r := NewTessellator()
		r.Width = 6
		r.Join = join
		r.MiterLimit = miterLimit
		var traps []Trapezoid
		require.NoError(t, r.Stroke(corner, collect(&traps)))
		return totalArea(traps)
	}

	miter := area(graphics.LineJoinMiter, 10)
	round := area(graphics.LineJoinRound, 10)
	bevel := area(graphics.LineJoinBevel, 10)
	limited := area(graphics.LineJoinMiter, 1)

	assert.Greater(t, miter, round)
	assert.Greater(t, round, bevel)
	assert.InDelta(t, bevel, limited, 1e-9)

	// The two legs, without the wedge on the outside of the corner.
	legs := 2 * math.Hypot(22, 36) * 6
	assert.Greater(t, bevel, legs-20)
	assert.Less(t, miter, legs+20)
}

func TestStrokeDashSolid(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 25, Y: 5})

	r := NewTessellator()
	r.Width = 2
	var solid, zero []Trapezoid
	require.NoError(t, r.Stroke(line, collect(&solid)))

	// a pattern of zero total length draws a solid line
	r.Dash = []float64{0, 0}
	require.NoError(t, r.Stroke(line, collect(&zero)))
	assert.Equal(t, solid, zero)
	assert.InDelta(t, 40.0, totalArea(solid), 1e-9)
}

// TestStrokeDashClosed checks that a dash running through the start of a
// closed subpath is drawn as one piece, with a join at the start vertex.
func TestStrokeDashClosed(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 30}).
		LineTo(vec.Vec2{X: 30, Y: 30}).
		LineTo(vec.Vec2{X: 30, Y: 10}).
		Close()

	r := NewTessellator()
	r.Width = 4
	r.Dash = []float64{30, 10}
	var traps []Trapezoid
	require.NoError(t, r.Stroke(square, collect(&traps)))

	// Dashes cover [0, 30] and [40, 70], each with one corner.  At a
	// right angle the miter square outside the corner has the same area
	// as the overlap inside, so the area is length times width.
	want := 60 * 4.0
	assert.InDelta(t, want, totalArea(traps), 1e-6)

	// with the phase shifted by 15, the last dash wraps around the start
	// vertex and gets a miter join there
	r.DashPhase = 15
	traps = traps[:0]
	require.NoError(t, r.Stroke(square, collect(&traps)))
	assert.InDelta(t, want, totalArea(traps), 1e-6)
}

func TestStrokeDots(t *testing.T) {
	dots := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).Close().
		MoveTo(vec.Vec2{X: 30, Y: 10}).LineTo(vec.Vec2{X: 30, Y: 10})

	r := NewTessellator()
	r.Width = 4
	r.Flatness = 0.01

	r.Cap = graphics.LineCapButt
	var traps []Trapezoid
	require.NoError(t, r.Stroke(dots, collect(&traps)))
	assert.Empty(t, traps)

	r.Cap = graphics.LineCapRound
	require.NoError(t, r.Stroke(dots, collect(&traps)))
	assert.InDelta(t, 2*4*math.Pi, totalArea(traps), 0.02*4*math.Pi)

	// subpaths of length zero have no direction, so they get no square
	traps = traps[:0]
	r.Cap = graphics.LineCapSquare
	require.NoError(t, r.Stroke(dots, collect(&traps)))
	assert.Empty(t, traps)
}

func TestStrokeTinyFlatness(t *testing.T) {
	dot := (&path.Data{}).
		MoveTo(vec.Vec2{X: 16, Y: 16}).LineTo(vec.Vec2{X: 16, Y: 16})

	r := NewTessellator()
	r.Width = 8
	r.Cap = graphics.LineCapRound
	r.Flatness = 1e-12
	var traps []Trapezoid
	require.NoError(t, r.Stroke(dot, collect(&traps)))

	assert.LessOrEqual(t, r.Stats().Edges, maxCurveSegments+1)
	assert.InDelta(t, 16*math.Pi, totalArea(traps), 0.01*16*math.Pi)
}

func TestStrokeErrors(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0})

	r := NewTessellator()
	r.Width = 0
	assert.Error(t, r.Stroke(line, func(Trapezoid) {}))

	r.Reset()
	r.MiterLimit = 0.5
	assert.Error(t, r.Stroke(line, func(Trapezoid) {}))

	r.Reset()
	r.Dash = []float64{3, -1}
	assert.Error(t, r.Stroke(line, func(Trapezoid) {}))

	r.Reset()
	r.Width = math.NaN()
	assert.Error(t, r.Stroke(line, func(Trapezoid) {}))

	r.Reset()
	assert.NoError(t, r.Stroke(line, func(Trapezoid) {}))
}
