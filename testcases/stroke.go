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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     stroke(8, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "line_round",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     stroke(8, graphics.LineCapRound, graphics.LineJoinMiter),
	},
	{
		Name:   "line_square",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     stroke(8, graphics.LineCapSquare, graphics.LineJoinMiter),
	},
	{
		Name:   "line_diagonal",
		Path:   polyline(pt(10, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     stroke(5, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_miter",
		Path:   polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_round",
		Path:   polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "corner_bevel",
		Path:   polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinBevel),
	},
	{
		// the miter of this sharp corner exceeds the limit
		Name:   "corner_sharp_miter",
		Path:   polyline(pt(10, 56), pt(32, 8), pt(36, 56)),
		Width:  64,
		Height: 64,
		Op:     stroke(4, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "closed_square",
		Path:   rectangle(12, 12, 40, 40),
		Width:  64,
		Height: 64,
		Op:     stroke(6, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "zigzag_thick",
		Path:   polyline(pt(6, 50), pt(18, 14), pt(30, 50), pt(42, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     stroke(9, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "self_crossing",
		Path:   polygon(pt(8, 8), pt(56, 56), pt(56, 8), pt(8, 56)),
		Width:  64,
		Height: 64,
		Op:     stroke(5, graphics.LineCapButt, graphics.LineJoinBevel),
	},
	{
		Name:   "circle_stroked",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     stroke(4, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name: "dot_round",
		Path: (&path.Data{}).
			MoveTo(pt(32, 32)).
			LineTo(pt(32, 32)),
		Width:  64,
		Height: 64,
		Op:     stroke(12, graphics.LineCapRound, graphics.LineJoinMiter),
	},
}

// stroke returns a solid stroke operation with miter limit 10.
func stroke(width float64, lineCap graphics.LineCapStyle, join graphics.LineJoinStyle) Stroke {
	return Stroke{
		Width:      width,
		Cap:        lineCap,
		Join:       join,
		MiterLimit: 10,
	}
}

// dashed returns a dashed stroke operation with butt caps and miter joins.
func dashed(width float64, lineCap graphics.LineCapStyle, dash []float64, phase float64) Stroke {
	op := stroke(width, lineCap, graphics.LineJoinMiter)
	op.Dash = dash
	op.DashPhase = phase
	return op
}
