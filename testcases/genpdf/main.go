// seehuhn.de/go/sliderpic - draw pictures with slider bodies
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

// Command genpdf draws a diagnostic sheet for every test case. Each sheet
// shows the recoloured picture as grey squares, with the encoded slider
// path drawn on top.
// Run from the sliderpic module root directory.
package main

import (
	"fmt"
	"image"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sliderpic"
	"seehuhn.de/go/sliderpic/testcases"
)

const sheetDir = "debug/sheets"

// cell is the size of one picture pixel on the sheet, in PDF points.
const cell = 16.0

func main() {
	if err := os.MkdirAll(sheetDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(sheetDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// encode recolours and encodes the picture of a test case.
func encode(tc testcases.TestCase) (*image.NRGBA, *sliderpic.Result, error) {
	pal, err := sliderpic.ParsePalette(tc.Palette.Body, tc.Palette.Border, tc.Palette.Background)
	if err != nil {
		return nil, nil, err
	}
	opt := sliderpic.Defaults
	if tc.Quality > 0 {
		opt.Quality = tc.Quality
	}
	opt.BlackOff = tc.BlackOff
	opt.BorderOff = tc.BorderOff

	timing := &sliderpic.Timing{
		Duration:   tc.Duration,
		CircleSize: tc.CircleSize,
	}
	if tc.Motion != nil {
		timing.MarkerPositionAt = tc.Motion.At
	}

	m := pal.Model()
	img, _ := sliderpic.Recolor(tc.Image, m, &opt, timing)

	enc := sliderpic.NewEncoder(m)
	enc.Options = &opt
	return img, enc.Picturate(tc.Image, timing), nil
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	img, res, err := encode(tc)
	if err != nil {
		return err
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()

	paper := &pdf.Rectangle{
		URx: cell * float64(w),
		URy: cell * float64(h),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; pictures use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, paper.URy})

	for y := range h {
		for x := range w {
			page.SetFillColor(color.DeviceGray(lightness(img, x, y)))
			page.Rectangle(cell*float64(x), cell*float64(y), cell, cell)
			page.Fill()
		}
	}

	// Draw the path twice, so that it is visible on any background.
	overlay := pictureData(res)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for _, style := range []struct{ width, gray float64 }{{1.5, 0}, {0.5, 1}} {
		page.SetLineWidth(style.width)
		page.SetStrokeColor(color.DeviceGray(style.gray))
		for cmd, pts := range overlay.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			}
		}
		page.Stroke()
	}

	return page.Close()
}

// pictureData returns the picture part of the slider path in sheet
// coordinates.
func pictureData(res *sliderpic.Result) *path.Data {
	const scale = cell / 960
	toSheet := matrix.Matrix{
		scale, 0,
		0, scale,
		-scale * res.ImageStart.X, -scale * res.ImageStart.Y,
	}

	p := &path.Data{}
	if len(res.Chunks) < 2 {
		return p
	}
	first := true
	for _, chunk := range res.Chunks[1:] {
		for _, pt := range chunk {
			q := vec.Vec2{
				X: toSheet[0]*pt.X + toSheet[2]*pt.Y + toSheet[4],
				Y: toSheet[1]*pt.X + toSheet[3]*pt.Y + toSheet[5],
			}
			if first {
				p = p.MoveTo(q)
				first = false
			} else {
				p = p.LineTo(q)
			}
		}
	}
	return p
}

// lightness returns the CIE L* value of a pixel, in the range [0, 1].
func lightness(img *image.NRGBA, x, y int) float64 {
	cf, _ := colorful.MakeColor(img.NRGBAAt(x, y))
	l, _, _ := cf.Lab()
	return min(1, max(0, l))
}
