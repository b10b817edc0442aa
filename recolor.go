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
	"log/slog"
)

// Recolor replaces every pixel of img by the closest colour a slider with
// colour model m can show. It also returns the segment estimate of
// [CountSegments] for the picture. A nil opt uses [Defaults].
//
// The returned image has the size of img, with its origin at (0, 0).
func Recolor(img image.Image, m *Model, opt *Options, timing *Timing) (*image.NRGBA, int64) {
	d := m.DistanceMap(img, opt)

	out := image.NewNRGBA(image.Rect(0, 0, d.Width, d.Height))
	forRows(d.Height, func(y int) {
		row := out.Pix[y*out.Stride : y*out.Stride+4*d.Width]
		for x := range d.Width {
			c := m.Color(d.At(x, y), d.Quality)
			row[4*x+0] = c.R
			row[4*x+1] = c.G
			row[4*x+2] = c.B
			row[4*x+3] = c.A
		}
	})

	segments := CountSegments(d, timing)
	Logger().Debug("recolored picture",
		slog.Int("width", d.Width),
		slog.Int("height", d.Height),
		slog.Int64("segments", segments))
	return out, segments
}
