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
	"math"

	"seehuhn.de/go/geom/vec"
)

// CountSegments estimates how many segments the renderer has to draw for
// the picture in d. Every run contributes two segments and every row one
// more. If timing is non-nil, a worst-case estimate for the segments spent
// on controlling the slider ball is added.
//
// The count is a diagnostic: the renderer becomes slow or fails when it is
// too large.
func CountSegments(d *DistanceMap, timing *Timing) int64 {
	if d.Empty() {
		return 0
	}
	timing.check()

	var n int64
	for y, dir := range d.rowDirections() {
		for range d.runs(y, dir) {
			n += 2
		}
		n++
	}
	if dur := timing.duration(); dur > 0 {
		n += ballSegments(dur)
	}
	return n
}

// ballSegments over-estimates the number of segments used for moving the
// slider ball during the given number of time units.
func ballSegments(duration int) int64 {
	box := sliderBox(objectRadius(worstCircleSize), worstGridSpan)
	corner := vec.Vec2{X: box.LLx, Y: box.LLy}
	frameDist := 2 * StableLength(boxPath(corner, box))
	available := 2 * (box.URx - maxBallX)
	fillers := int64(math.Floor(frameDist/available)) + 1
	return (2*fillers + 1) * int64(duration)
}

// Worst-case assumptions for the slider ball estimate.
const (
	worstCircleSize = 10
	worstGridSpan   = 65536

	// maxBallX is an upper bound on the x position of the slider ball.
	maxBallX = 700
)
