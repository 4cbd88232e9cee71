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

import "github.com/pkg/errors"

// Errors reported for invalid input.  The returned errors wrap these
// values with details about the offending edge, and can be tested using
// [errors.Is] or [errors.Cause].
var (
	// ErrHorizontalEdge is returned for an edge with equal top and bottom
	// y coordinates.  Horizontal edges never contribute to the fill and
	// must be removed by the caller.
	ErrHorizontalEdge = errors.New("horizontal edge")

	// ErrEdgeOrder is returned for an edge whose top lies below its bottom.
	ErrEdgeOrder = errors.New("edge top below bottom")

	// ErrCoordinateRange is returned for coordinates outside
	// [-MaxCoord, MaxCoord].
	ErrCoordinateRange = errors.New("coordinate out of range")

	// ErrNonFinite is returned when a path coordinate is NaN or infinite
	// after transformation to device space.
	ErrNonFinite = errors.New("non-finite coordinate")
)
