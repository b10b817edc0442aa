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
	"fmt"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Timing describes the slider the picture is drawn into.
type Timing struct {
	// Duration is the length of the slider in time units. Must be >= 0.
	Duration int

	// MarkerPositionAt returns the position of the slider ball at time t,
	// for 0 <= t <= duration. Must be non-nil if Duration > 0.
	MarkerPositionAt func(t, duration int) vec.Vec2

	// CircleSize is the beatmap circle size.
	CircleSize float64
}

// ObjectRadius returns the radius of the slider body in playfield pixels.
// A nil Timing uses circle size 0.
func (t *Timing) ObjectRadius() float64 {
	cs := 0.0
	if t != nil {
		cs = t.CircleSize
	}
	return objectRadius(cs)
}

func objectRadius(circleSize float64) float64 {
	return 1.00041 * (54.4 - 4.48*circleSize)
}

func (t *Timing) duration() int {
	if t == nil {
		return 0
	}
	return t.Duration
}

func (t *Timing) check() {
	if t == nil {
		return
	}
	if t.Duration < 0 {
		panic(fmt.Sprintf("sliderpic: negative duration %d", t.Duration))
	}
	if t.Duration > 0 && t.MarkerPositionAt == nil {
		panic("sliderpic: missing marker position function")
	}
}

// sliderBox returns the region in which path points can be placed without
// the renderer cropping the slider, for the given object radius and grid
// span.
func sliderBox(radius, gridSpan float64) rect.Rect {
	lo := math.Ceil(radius * boxMargin)
	hi := math.Floor(gridSize*gridSpan - boxMargin*radius)
	return rect.Rect{
		LLx: lo + imageOrigin.X,
		LLy: lo + imageOrigin.Y,
		URx: hi + imageOrigin.X,
		URy: hi + imageOrigin.Y,
	}
}

// boxPath returns the path from start around the slider box, ending at its
// top-left corner. It stretches the slider bounding box to its full size.
func boxPath(start vec.Vec2, box rect.Rect) []vec.Vec2 {
	return []vec.Vec2{
		start,
		{X: start.X, Y: box.LLy},
		{X: box.URx, Y: box.LLy},
		{X: box.URx, Y: box.URy},
		{X: box.URx, Y: box.LLy},
		{X: box.LLx, Y: box.LLy},
	}
}

// markers holds the per-time-unit targets of the path.
type markers struct {
	pos  []vec.Vec2 // rounded marker position for each time unit
	snap []vec.Vec2 // where the final approach to pos[t] starts; snap[0] is unused
}

func newMarkers(tm *Timing, box rect.Rect) *markers {
	n := tm.Duration
	raw := make([]vec.Vec2, n+1)
	for t := range raw {
		raw[t] = tm.MarkerPositionAt(t, n)
	}

	m := &markers{
		pos:  make([]vec.Vec2, n+1),
		snap: make([]vec.Vec2, n+1),
	}
	angle := 0.0
	moved := 0
	for t := 1; t <= n; t++ {
		// The final segment points along the direction of motion, so that
		// the ball keeps its rotation. Without motion the previous
		// direction is kept.
		if raw[t-1] != raw[t] {
			d := raw[t-1].Sub(raw[t])
			angle = math.Atan2(d.Y, d.X)
		}
		p := round(raw[t])
		s := round(vec.Vec2{
			X: float64(float32(snapTolerance*math.Cos(angle) + float64(float32(p.X)))),
			Y: float64(float32(snapTolerance*math.Sin(angle) + float64(float32(p.Y)))),
		})
		if s.X < box.LLx || s.Y < box.LLy {
			s = vec.Vec2{X: p.X + snapFallback, Y: p.Y}
			moved++
		}
		m.snap[t] = single(s)
	}
	for t, p := range raw {
		m.pos[t] = single(round(p))
	}
	if moved > 0 {
		Logger().Debug("snap points moved inside slider box", slog.Int("count", moved))
	}
	return m
}

// Playfield geometry.
const (
	// gridSize is the distance in playfield pixels between the sample
	// points of two neighbouring picture pixels.
	gridSize = 960

	// boxMargin is the margin around the slider box, in object radii.
	boxMargin = 1.15

	// snapTolerance is the length of the last segment leading to each
	// marker position.
	snapTolerance = 96

	// snapFallback is the length of the last segment when the regular
	// one would leave the slider box.
	snapFallback = 60
)

// imageOrigin is the playfield position of the top-left corner of the
// rendered picture. With the offsets (16+20n, 8+20m) the editor and
// gameplay renderings agree.
var imageOrigin = vec.Vec2{X: -104, Y: -52}
