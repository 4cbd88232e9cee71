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
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	var poly Polygon
	poly.AddPolygon(fixed.P(0, 0), fixed.P(8, 8), fixed.P(8, 0), fixed.P(0, 8))
	_, err := Tessellate(poly.Edges(), EvenOdd)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=tessellate")
	assert.Contains(t, out, "rule=EvenOdd")
	assert.Contains(t, out, "intersections=1")
}

func TestLoggerDefault(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
}

func TestLoggerReorder(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer SetLogger(nil)

	// no warning for a regular crossing
	var poly Polygon
	poly.AddPolygon(fixed.P(0, 0), fixed.P(8, 8), fixed.P(8, 0), fixed.P(0, 8))
	_, err := Tessellate(poly.Edges(), NonZero)
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	edges := []Edge{
		{Top: fixed.Point26_6{X: -20, Y: 0}, Bottom: fixed.Point26_6{X: -20, Y: 20}},
		{Top: fixed.Point26_6{X: 0, Y: 0}, Bottom: fixed.Point26_6{X: 10, Y: 10}},
		{Top: fixed.Point26_6{X: 89, Y: 0}, Bottom: fixed.Point26_6{X: -11, Y: 5}},
		{Top: fixed.Point26_6{X: 6, Y: 4}, Bottom: fixed.Point26_6{X: 16, Y: 14}},
	}
	_, err = Tessellate(edges, NonZero)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "swaps=1")
}
