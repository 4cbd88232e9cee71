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

// Command genpdf draws the trapezoids for all test cases.  For every test
// case a PDF file is written, showing the individual trapezoids in
// alternating shades of grey, and a PNG file with the coverage obtained by
// scan converting the trapezoids.
package main

import (
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/jessevdk/go-flags"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/testcases"
)

type options struct {
	OutDir   string   `short:"d" long:"dir" default:"testdata/trapezoids" description:"output directory"`
	Category []string `short:"c" long:"category" description:"only process the given categories"`
	NoPNG    bool     `long:"no-png" description:"do not write PNG files"`
	Outline  bool     `long:"outline" description:"draw trapezoid outlines in the PDF files"`
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

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		panic(err)
	}

	r := tessellate.NewTessellator()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if len(opts.Category) > 0 && !slices.Contains(opts.Category, category) {
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			traps, err := tessellateCase(r, tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(opts.OutDir, name+".pdf")
			if err := generatePDF(tc, traps, pdfPath, opts.Outline); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if !opts.NoPNG {
				pngPath := filepath.Join(opts.OutDir, name+".png")
				if err := generatePNG(tc, traps, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func tessellateCase(r *tessellate.Tessellator, tc testcases.TestCase) ([]tessellate.Trapezoid, error) {
	var traps []tessellate.Trapezoid
	emit := func(t tessellate.Trapezoid) {
		traps = append(traps, t)
	}

	r.Reset()
	r.CTM = tc.Matrix()
	var err error
	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			err = r.FillEvenOdd(tc.Path, emit)
		} else {
			err = r.FillNonZero(tc.Path, emit)
		}
	case testcases.Stroke:
		r.Width = op.Width
		r.Cap = op.Cap
		r.Join = op.Join
		r.MiterLimit = op.MiterLimit
		r.Dash = op.Dash
		r.DashPhase = op.DashPhase
		err = r.Stroke(tc.Path, emit)
	}
	return traps, err
}

// corners returns the corners of a trapezoid in pixel units, in the order
// top left, top right, bottom right, bottom left.
func corners(t tessellate.Trapezoid) [4][2]float64 {
	top := float64(t.Top) / 64
	bottom := float64(t.Bottom) / 64
	return [4][2]float64{
		{t.Left.XAt(t.Top) / 64, top},
		{t.Right.XAt(t.Top) / 64, top},
		{t.Right.XAt(t.Bottom) / 64, bottom},
		{t.Left.XAt(t.Bottom) / 64, bottom},
	}
}

func generatePDF(tc testcases.TestCase, traps []tessellate.Trapezoid, pdfPath string, outline bool) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; the trapezoids use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	shades := []float64{1, 0.8, 0.6}
	for i, t := range traps {
		c := corners(t)
		page.SetFillColor(color.DeviceGray(shades[i%len(shades)]))
		page.MoveTo(c[0][0], c[0][1])
		for _, p := range c[1:] {
			page.LineTo(p[0], p[1])
		}
		page.ClosePath()
		page.Fill()
	}

	if outline {
		page.SetStrokeColor(color.DeviceGray(0.3))
		page.SetLineWidth(0.05)
		for _, t := range traps {
			c := corners(t)
			page.MoveTo(c[0][0], c[0][1])
			for _, p := range c[1:] {
				page.LineTo(p[0], p[1])
			}
			page.ClosePath()
		}
		page.Stroke()
	}

	return page.Close()
}

// generatePNG scan converts the trapezoids into an 8-bit coverage image.
func generatePNG(tc testcases.TestCase, traps []tessellate.Trapezoid, pngPath string) (err error) {
	z := vector.NewRasterizer(tc.Width, tc.Height)
	for _, t := range traps {
		c := corners(t)
		z.MoveTo(float32(c[0][0]), float32(c[0][1]))
		for _, p := range c[1:] {
			z.LineTo(float32(p[0]), float32(p[1]))
		}
		z.ClosePath()
	}

	img := image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))
	z.Draw(img, img.Bounds(), image.Opaque, image.Point{})

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
