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

package testcases

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a picture together with the slider it is drawn with.
type TestCase struct {
	Name    string       // lowercase a-z, 0-9 and _ only
	Image   *image.NRGBA // the picture
	Palette Palette      // slider colours
	Quality int          // gradient levels (0 means the default)

	BlackOff  bool
	BorderOff bool

	Duration   int     // slider length in time units (0 for a still picture)
	CircleSize float64 // beatmap circle size
	Motion     Motion  // slider ball movement (required if Duration > 0)
}

// Palette gives the slider colours as hex strings.
type Palette struct {
	Body       string
	Border     string
	Background string
}

// Motion describes the path of the slider ball.
type Motion interface {
	// At returns the ball position at time t, for 0 <= t <= duration.
	At(t, duration int) vec.Vec2
}

// Still keeps the ball in one place.
type Still struct {
	Pos vec.Vec2
}

func (m Still) At(t, duration int) vec.Vec2 {
	return m.Pos
}

// Line moves the ball along a straight line at constant speed.
type Line struct {
	From, To vec.Vec2
}

func (m Line) At(t, duration int) vec.Vec2 {
	if duration == 0 {
		return m.From
	}
	s := float64(t) / float64(duration)
	return m.From.Add(m.To.Sub(m.From).Mul(s))
}

// Circle moves the ball once around a circle, starting on the right.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

func (m Circle) At(t, duration int) vec.Vec2 {
	if duration == 0 {
		return m.Center.Add(vec.Vec2{X: m.Radius})
	}
	phi := 2 * math.Pi * float64(t) / float64(duration)
	return m.Center.Add(vec.Vec2{X: m.Radius * math.Cos(phi), Y: m.Radius * math.Sin(phi)})
}

// defaultPalette is a blue slider with white border on black.
var defaultPalette = Palette{
	Body:       "#3264c8",
	Border:     "#ffffff",
	Background: "#000000",
}

// Colours a slider with defaultPalette shows at the inner and outer end of
// its gradient.
const (
	innerHex = "#557cb4"
	outerHex = "#204080"
)

// hex converts a hex colour to an opaque NRGBA value.
// It panics if s is malformed.
func hex(s string) color.NRGBA {
	c := colorful.MustParseHex(s)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// fill creates a picture of the given size, with each pixel coloured by f.
func fill(w, h int, f func(x, y int) color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, f(x, y))
		}
	}
	return img
}

// solid creates a single-colour picture.
func solid(w, h int, c string) *image.NRGBA {
	col := hex(c)
	return fill(w, h, func(x, y int) color.NRGBA { return col })
}

// ramp creates a picture which blends from c0 to c1 along dir.
func ramp(w, h int, c0, c1 string, dir vec.Vec2) *image.NRGBA {
	from := colorful.MustParseHex(c0)
	to := colorful.MustParseHex(c1)
	maxProj := dir.X*float64(w-1) + dir.Y*float64(h-1)
	return fill(w, h, func(x, y int) color.NRGBA {
		s := 0.0
		if maxProj != 0 {
			s = (dir.X*float64(x) + dir.Y*float64(y)) / maxProj
		}
		r, g, b := from.BlendRgb(to, s).Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}
	})
}

// ascii creates a picture from rows of characters, using one colour per
// character.
func ascii(rows []string, colours map[byte]string) *image.NRGBA {
	pal := make(map[byte]color.NRGBA, len(colours))
	for k, v := range colours {
		pal[k] = hex(v)
	}
	w := 0
	for _, row := range rows {
		w = max(w, len(row))
	}
	return fill(w, len(rows), func(x, y int) color.NRGBA {
		if x >= len(rows[y]) {
			return pal[' ']
		}
		return pal[rows[y][x]]
	})
}
