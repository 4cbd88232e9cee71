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

// FillRule selects which regions of a self-intersecting polygon are
// considered inside.
type FillRule int

const (
	// NonZero fills every point with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills every point which is enclosed by an odd number of
	// edges, regardless of their direction.
	EvenOdd
)

// Fills reports whether a point with the given winding number is inside.
func (r FillRule) Fills(winding int) bool {
	switch r {
	case NonZero:
		return winding != 0
	case EvenOdd:
		return winding%2 != 0
	}
	return false
}

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	}
	return "FillRule(?)"
}
