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
	"seehuhn.de/go/pdf/graphics"
)

var dashCases = []TestCase{
	{
		Name:   "dash_equal",
		Path:   polyline(pt(5, 32), pt(59, 32)),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{6, 6}, 0),
	},
	{
		// odd-length patterns repeat with on and off swapped
		Name:   "dash_single_element",
		Path:   polyline(pt(5, 32), pt(59, 32)),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{10}, 0),
	},
	{
		Name:   "dash_phase",
		Path:   polyline(pt(5, 32), pt(59, 32)),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{8, 4}, 5),
	},
	{
		Name:   "dash_phase_negative",
		Path:   polyline(pt(5, 32), pt(59, 32)),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{8, 4}, -5),
	},
	{
		Name:   "dash_zero_round",
		Path:   polyline(pt(8, 32), pt(56, 32)),
		Width:  64,
		Height: 64,
		Op:     dashed(6, graphics.LineCapRound, []float64{0, 12}, 0),
	},
	{
		Name:   "dash_zero_square",
		Path:   polyline(pt(8, 8), pt(56, 56)),
		Width:  64,
		Height: 64,
		Op:     dashed(6, graphics.LineCapSquare, []float64{0, 12}, 0),
	},
	{
		Name:   "dash_round_caps",
		Path:   polyline(pt(8, 32), pt(56, 32)),
		Width:  64,
		Height: 64,
		Op:     dashed(6, graphics.LineCapRound, []float64{6, 10}, 0),
	},
	{
		Name:   "dash_corner_in_dash",
		Path:   polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{20, 6}, 30),
	},
	{
		Name:   "dash_closed_square",
		Path:   rectangle(12, 12, 40, 40),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{12, 8}, 0),
	},
	{
		// the first and the last dash join at the start of the subpath
		Name:   "dash_closed_join",
		Path:   rectangle(12, 12, 40, 40),
		Width:  64,
		Height: 64,
		Op:     dashed(4, graphics.LineCapButt, []float64{30, 10}, 0),
	},
}
