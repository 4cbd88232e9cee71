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

// Command export tessellates all test cases and writes the resulting
// trapezoids to a JSON file, for comparison with other implementations.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/jessevdk/go-flags"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/testcases"
)

type options struct {
	Output string `short:"o" long:"output" default:"testdata/trapezoids.json" description:"output file"`
	Path   bool   `long:"with-path" description:"include the source paths"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	r := tessellate.NewTessellator()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(r, category, tc, opts.Path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s_%s: %v\n", category, tc.Name, err)
				os.Exit(1)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name          string          `json:"name"`
	Op            string          `json:"op"`
	Path          []jsonSegment   `json:"path,omitempty"`
	Edges         int             `json:"edges"`
	Intersections int             `json:"intersections"`
	Trapezoids    []jsonTrapezoid `json:"trapezoids"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// jsonTrapezoid holds the coordinates of a trapezoid in 26.6 units, as
// [top, bottom, left x1, left y1, left x2, left y2, right x1, ...].
type jsonTrapezoid [10]int32

func toJSON(r *tessellate.Tessellator, category string, tc testcases.TestCase, withPath bool) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Trapezoids: []jsonTrapezoid{},
	}
	if withPath {
		jtc.Path = pathToJSON(tc.Path)
	}

	emit := func(t tessellate.Trapezoid) {
		jtc.Trapezoids = append(jtc.Trapezoids, jsonTrapezoid{
			int32(t.Top), int32(t.Bottom),
			int32(t.Left.P1.X), int32(t.Left.P1.Y), int32(t.Left.P2.X), int32(t.Left.P2.Y),
			int32(t.Right.P1.X), int32(t.Right.P1.Y), int32(t.Right.P2.X), int32(t.Right.P2.Y),
		})
	}

	r.Reset()
	r.CTM = tc.Matrix()
	var err error
	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			jtc.Op = "fill_evenodd"
			err = r.FillEvenOdd(tc.Path, emit)
		} else {
			jtc.Op = "fill_nonzero"
			err = r.FillNonZero(tc.Path, emit)
		}
	case testcases.Stroke:
		jtc.Op = "stroke"
		r.Width = op.Width
		r.Cap = op.Cap
		r.Join = op.Join
		r.MiterLimit = op.MiterLimit
		r.Dash = op.Dash
		r.DashPhase = op.DashPhase
		err = r.Stroke(tc.Path, emit)
	}
	if err != nil {
		return jtc, err
	}

	stats := r.Stats()
	jtc.Edges = stats.Edges
	jtc.Intersections = stats.Intersections
	return jtc, nil
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	coordIdx := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		var n int
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd, n = "Z", 0
		}
		seg.Pts = make([][]float64, n)
		for i := range n {
			pt := p.Coords[coordIdx+i]
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		coordIdx += n
		segs = append(segs, seg)
	}
	return segs
}
