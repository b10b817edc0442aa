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
	"image"
	"log/slog"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Encoder converts pictures into slider paths. The slider body, traced
// along the path by the renderer, shows the picture row by row.
//
// Create one instance with NewEncoder and adjust the fields as needed.
// An Encoder is not modified by Picturate and can be used from several
// goroutines at once.
type Encoder struct {
	// Model is the colour model of the slider. Must be non-nil.
	Model *Model

	// Options controls pixel classification. Nil means [Defaults].
	Options *Options

	// Start is the position of the slider head, in playfield pixels.
	Start vec.Vec2

	// PictureStart is where the top-left corner of the picture should
	// appear, in playfield pixels.
	PictureStart vec.Vec2

	// ResY is the vertical screen resolution the picture is made for.
	// Should be a multiple of 60.
	ResY float64

	// GridSpan is the size of the slider box in units of the grid
	// spacing. Must be at least 1.
	GridSpan float64
}

// NewEncoder returns an Encoder for the given colour model, with default
// values for all other fields.
func NewEncoder(m *Model) *Encoder {
	return &Encoder{
		Model:    m,
		ResY:     defaultResY,
		GridSpan: defaultGridSpan,
	}
}

// Result is the output of [Encoder.Picturate].
type Result struct {
	// Points is the slider path. All coordinates are integers.
	Points []vec.Vec2

	// FrameDist is the path length the slider ball travels per time unit.
	// It is 0 if the timing has zero duration.
	FrameDist float64

	// Chunks is the path before time-unit packing. Chunks[0] stretches the
	// slider box, the remaining chunks draw the picture and are cut after
	// every left-to-right row.
	Chunks [][]vec.Vec2

	// Arrivals[t] is the index in Points where the slider ball is at
	// time t. Nil if the timing has zero duration.
	Arrivals []int

	// Box is the region available for path points.
	Box rect.Rect

	// ImageStart is the playfield position of the picture's top-left
	// corner as rendered.
	ImageStart vec.Vec2

	// Width and Height give the picture size in pixels.
	Width, Height int
}

// Data returns the slider path as a polyline.
func (r *Result) Data() *path.Data {
	p := &path.Data{}
	for i, pt := range r.Points {
		if i == 0 {
			p = p.MoveTo(pt)
		} else {
			p = p.LineTo(pt)
		}
	}
	return p
}

// Picturate computes the slider path which shows img. If timing is nil or
// has zero duration, only the picture path is returned. Otherwise the path
// also moves the slider ball along timing.MarkerPositionAt, and the path
// length is spread evenly over the duration.
//
// Picturate panics if the encoder or timing violate their documented
// constraints. A picture without pixels gives an empty result.
func (e *Encoder) Picturate(img image.Image, timing *Timing) *Result {
	if e.GridSpan < 1 {
		panic(fmt.Sprintf("sliderpic: grid span %g less than 1", e.GridSpan))
	}
	timing.check()

	d := e.Model.DistanceMap(img, e.Options)
	if d.Empty() {
		return &Result{}
	}

	radius := timing.ObjectRadius()
	box := sliderBox(radius, e.GridSpan)
	origin, offset := e.pictureOrigin()
	res := &Result{
		Box:        box,
		ImageStart: origin,
		Width:      d.Width,
		Height:     d.Height,
	}
	res.Chunks = picturePath(d, radius, boxPath(round(e.Start), box), box, origin, offset)

	dur := timing.duration()
	if dur == 0 {
		res.Points = slices.Concat(res.Chunks...)
		return res
	}

	p := newPacker(res.Chunks, newMarkers(timing, box), box, dur)
	p.run()
	res.Points = p.out
	res.FrameDist = p.frameDist
	res.Arrivals = p.arrivals

	Logger().Debug("picturated",
		slog.Int("width", d.Width),
		slog.Int("height", d.Height),
		slog.Int("duration", dur),
		slog.Float64("frameDist", p.frameDist),
		slog.Int("points", len(p.out)))
	return res
}

// pictureOrigin returns the playfield position of the top-left corner of
// the picture, and whether it differs from the corner of the image area.
//
// The game window is 480 playfield pixels tall and ResY-16 screen pixels
// tall. Each screen pixel of the picture corresponds to one grid cell.
func (e *Encoder) pictureOrigin() (vec.Vec2, bool) {
	screen := round(round(e.PictureStart).Sub(imageOrigin).Mul((e.ResY - 16) / 480))
	return apply(gridToPlayfield(imageOrigin), screen), screen != vec.Vec2{}
}

// gridToPlayfield maps grid coordinates, with the given playfield origin,
// to playfield pixels.
func gridToPlayfield(origin vec.Vec2) matrix.Matrix {
	return matrix.Scale(gridSize, gridSize).Translate(origin.X, origin.Y)
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// picturePath builds the unpacked slider path: the box chunk, followed by
// the picture rows in serpentine order.
//
// Each run of a row becomes one straight segment. The renderer colours a
// pixel by the distance of its sample point from the path, so the segment
// is placed at the depth of the run's pixels, with a slope following the
// depth change along the run. The segment ends a quarter grid step away
// from the sample points of the run's end pixels, so that they are not
// affected by the segment's ends.
func picturePath(d *DistanceMap, radius float64, lead []vec.Vec2, box rect.Rect, origin vec.Vec2, offset bool) [][]vec.Vec2 {
	chunks := [][]vec.Vec2{lead}

	var cur []vec.Vec2
	if offset {
		cur = append(cur, vec.Vec2{X: box.LLx, Y: origin.Y}, origin)
	}

	toPlayfield := gridToPlayfield(origin)
	var ax, ay float64 // start of the most recent segment
	var last run
	for y, dir := range d.rowDirections() {
		for r := range d.runs(y, dir) {
			n := float64(r.Offset)

			// The renderer measures distance perpendicular to the segment,
			// which scales the depth by sqrt(1+slope²). A slope of
			// flat/sqrt(1-flat²) compensates for this.
			flat := math.RoundToEven(r.Delta*(n+0.5)) / ((n + 0.5) * gridSize)
			if math.Abs(flat) >= 1 {
				panic(fmt.Sprintf("sliderpic: run slope %g out of range", flat))
			}
			slope := 0.0
			if flat != 0 {
				slope = flat / math.Sqrt(1-flat*flat)
			}

			// Fit a line with fixed slope through the run's depths; relY is
			// its value at relX, relative to the first sample point.
			relX := float64(-dir * gridSize / 4)
			relY := math.Trunc(slope*relX +
				math.Sqrt(1+slope*slope)*radius*(d.Depth(r.Start, y)+r.Delta*(n+1)/2) -
				slope*gridSize*(n+1)/2)

			c := apply(toPlayfield, vec.Vec2{X: float64(r.Start) + 0.5, Y: float64(y) + 0.5})
			ax = math.Trunc(relX + c.X)
			ay = math.Trunc(relY + c.Y)
			cur = append(cur,
				vec.Vec2{X: ax, Y: ay},
				vec.Vec2{X: ax + (n+float64(dir)*0.5)*gridSize, Y: math.RoundToEven(ay + r.Delta*n)})
			last = r
		}

		n := float64(last.Offset)
		cur = append(cur, round(vec.Vec2{X: ax + (n+0.5)*gridSize, Y: ay + last.Delta*n + gridSize}))
		if dir == 1 {
			chunks = append(chunks, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}
	return chunks
}

// Defaults for the encoder configuration.
const (
	defaultResY     = 1080
	defaultGridSpan = 16384
)
