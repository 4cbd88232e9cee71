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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Path:   starPolygon(0, 0, 50, 5, 2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		CTM:    matrix.Scale(0.5, 0.5).Translate(32, 32),
	},
	{
		Name:   "rotate_30deg",
		Path:   rectangle(-16, -16, 32, 32),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "shear",
		Path:   rectangle(-12, -12, 24, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2, 1).Translate(32, 32),
	},
	{
		Name:   "round_cap_nonuniform",
		Path:   polyline(pt(-20, 0), pt(20, 0)),
		Width:  128,
		Height: 64,
		Op:     stroke(8, graphics.LineCapRound, graphics.LineJoinRound),
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "round_join_rotated",
		Path:   polyline(pt(-16, -12), pt(0, 8), pt(16, -12)),
		Width:  64,
		Height: 64,
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinRound),
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "dash_scaled",
		Path:   polyline(pt(-25, 0), pt(25, 0)),
		Width:  128,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{5, 3}, 0),
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
}
