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
	"iter"
	"math"
)

// run is a maximal stretch of pixels in one row, in scan direction, whose
// depth changes by the same amount from pixel to pixel.
type run struct {
	Start  int     // first column of the run
	Offset int     // signed column offset from Start to the last pixel
	Delta  float64 // depth change per pixel in scan direction
}

// runs yields the runs of row y. For dir = +1 the row is scanned left to
// right, for dir = -1 right to left. Every pixel belongs to exactly one run.
func (d *DistanceMap) runs(y, dir int) iter.Seq[run] {
	return func(yield func(run) bool) {
		w := d.Width
		inRow := func(x int) bool { return 0 <= x && x < w }
		depth := func(x int) float64 { return d.Depth(x, y) }

		start := 0
		if dir < 0 {
			start = w - 1
		}
		for inRow(start) {
			r := run{Start: start}
			if inRow(start + dir) {
				r.Delta = depth(start+dir) - depth(start)
				r.Offset = dir
				for inRow(start+r.Offset+dir) &&
					math.Abs(depth(start+r.Offset+dir)-depth(start+r.Offset)-r.Delta) <= runTolerance {
					r.Offset += dir
				}
			}
			if !yield(r) {
				return
			}
			start += r.Offset + dir
		}
	}
}

// rowDirections yields every row index together with its scan direction.
// Rows alternate between left-to-right and right-to-left, starting with
// left-to-right.
func (d *DistanceMap) rowDirections() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		dir := -1
		for y := range d.Height {
			dir = -dir
			if !yield(y, dir) {
				return
			}
		}
	}
}

// runTolerance is the largest difference between two depth steps that
// still counts as the same run.
const runTolerance = 0.001
