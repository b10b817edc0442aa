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

package sliderpic

import (
	"image"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Preview draws the picture part of an encoded path, with scale output
// pixels per picture pixel. Every path segment is drawn as a thin line, so
// the result shows where the segments run. The slider box is omitted.
func Preview(res *Result, scale int) *image.Alpha {
	width, height := scale*res.Width, scale*res.Height
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	if len(res.Chunks) < 2 || width <= 0 || height <= 0 {
		return dst
	}

	k := float64(scale) / gridSize
	toPicture := matrix.Matrix{
		k, 0,
		0, k,
		-k * res.ImageStart.X, -k * res.ImageStart.Y,
	}
	lineWidth := previewLineWidth * float64(scale)

	z := vector.NewRasterizer(width, height)
	for _, chunk := range res.Chunks[1:] {
		for i := 1; i < len(chunk); i++ {
			a := apply(toPicture, chunk[i-1])
			b := apply(toPicture, chunk[i])
			addSegment(z, a, b, lineWidth)
		}
	}
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// addSegment adds a quadrilateral of the given width around the segment
// from a to b. All quadrilaterals have the same orientation, so
// overlapping segments do not cancel.
func addSegment(z *vector.Rasterizer, a, b vec.Vec2, width float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(width / 2 / l)
	corners := [4]vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	z.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		z.LineTo(float32(c.X), float32(c.Y))
	}
	z.ClosePath()
}

// previewLineWidth is the width of path segments in Preview, in picture
// pixels.
const previewLineWidth = 0.25
