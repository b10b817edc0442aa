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

// StableLength returns the length of the polyline through pts the way the
// renderer measures it: coordinates are rounded to integers before
// differencing, and each segment length is computed in single precision.
func StableLength(pts []vec.Vec2) float64 {
	var length float64
	for i := 1; i < len(pts); i++ {
		length += segmentLength(pts[i-1], pts[i])
	}
	return length
}

func segmentLength(a, b vec.Vec2) float64 {
	dx := float32(math.RoundToEven(a.X)) - float32(math.RoundToEven(b.X))
	dy := float32(math.RoundToEven(a.Y)) - float32(math.RoundToEven(b.Y))
	// explicit conversions keep the products from being fused
	return float64(float32(math.Sqrt(float64(float32(dx*dx) + float32(dy*dy)))))
}

// manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func manhattan(a, b vec.Vec2) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// round returns v with both coordinates rounded half to even.
func round(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: math.RoundToEven(v.X), Y: math.RoundToEven(v.Y)}
}

// single returns v with both coordinates narrowed to float32 precision.
func single(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: float64(float32(v.X)), Y: float64(float32(v.Y))}
}
