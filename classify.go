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
	"image/color"
	"math"
)

// Options controls how pixels are matched to the colours a slider can show.
type Options struct {
	// BlackOff disables the black class.
	BlackOff bool

	// BorderOff disables the border class.
	BorderOff bool

	// OpaqueOff skips compositing the source pixels over the background.
	OpaqueOff bool

	// NoRed, NoGreen and NoBlue zero the corresponding channel of each
	// source pixel before distances are computed.
	NoRed, NoGreen, NoBlue bool

	// Quality is the number of gradient levels used, in the range 1–101.
	Quality int
}

// Defaults are the options used when a nil *Options is passed.
var Defaults = Options{
	Quality: maxQuality,
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return &Defaults
	}
	return o
}

func (o *Options) check() {
	if o.Quality < 1 || o.Quality > maxQuality {
		panic(fmt.Sprintf("sliderpic: quality %d outside [1, %d]", o.Quality, maxQuality))
	}
}

// Kind identifies the class of a PixelState.
type Kind uint8

// The pixel classes.
const (
	Gradient Kind = iota
	Border
	Black
)

func (k Kind) String() string {
	switch k {
	case Gradient:
		return "gradient"
	case Border:
		return "border"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// PixelState is the classification of a single pixel.
// Value is only meaningful for the Gradient kind.
type PixelState struct {
	Kind  Kind
	Value float64
}

// GradientState returns the state of a pixel shown by the body gradient.
// The value is the quantized position along the gradient, 0 at the outer
// colour.
func GradientState(v float64) PixelState {
	return PixelState{Kind: Gradient, Value: v}
}

// Fixed states for the border and black classes.
var (
	BorderState = PixelState{Kind: Border}
	BlackState  = PixelState{Kind: Black}
)

func (s PixelState) String() string {
	if s.Kind == Gradient {
		return fmt.Sprintf("gradient(%g)", s.Value)
	}
	return s.Kind.String()
}

// Depth returns the distance from the path centre, in object radii, at
// which the renderer shows this state. The quality must be the one the
// state was classified with.
func (s PixelState) Depth(quality int) float64 {
	switch s.Kind {
	case Border:
		return borderDepth
	case Black:
		return blackDepth
	default:
		return maxValue(quality) - s.Value
	}
}

// maxValue returns the largest gradient value for the given quality.
func maxValue(quality int) float64 {
	return float64(quality*(maxQuality/quality)) / colorLevels
}

// Classify maps a pixel colour to the closest colour the slider can show.
// Ties between gradient and border go to the border, ties with black go to
// the previous winner.
func (m *Model) Classify(c color.NRGBA, opt *Options) PixelState {
	opt = opt.orDefault()
	if !opt.OpaqueOff {
		c = Opaque(c, m.Background)
	}
	v := rgbOf(c)
	if opt.NoRed {
		v[0] = 0
	}
	if opt.NoGreen {
		v[1] = 0
	}
	if opt.NoBlue {
		v[2] = 0
	}

	closest, t := m.project(v)
	gradDist := v.sub(closest).len2()
	borderDist := v.sub(m.border).len2()
	blackDist := v.len2()

	if opt.BorderOff || gradDist < borderDist {
		if !opt.BlackOff && blackDist < gradDist {
			return BlackState
		}
		q := opt.Quality
		level := math.RoundToEven(float64(q) * t)
		return GradientState(level * float64(maxQuality/q) / colorLevels)
	}
	if !opt.BlackOff && blackDist < borderDist {
		return BlackState
	}
	return BorderState
}

// project returns the point of the gradient segment closest to v, together
// with its position along the segment in [0, 1] (0 at the outer colour).
func (m *Model) project(v rgb) (rgb, float64) {
	if m.axisLen2 == 0 {
		return m.outer, 0
	}
	s := v.sub(m.outer).dot(m.axis) / m.axisLen2
	switch {
	case s <= 0:
		return m.outer, 0
	case s >= 1:
		return m.inner, 1
	}
	p := m.axis.mul(s).add(m.outer)
	return p, min(1, p.sub(m.outer).len()/m.axisLen)
}

// Position returns the unclamped position of c along the gradient axis,
// 0 at OpaqueOuter and 1 at OpaqueInner. The colour is used as given,
// without compositing.
func (m *Model) Position(c color.NRGBA) float64 {
	if m.axisLen2 == 0 {
		return 0
	}
	return rgbOf(c).sub(m.outer).dot(m.axis) / m.axisLen2
}

// Color returns the colour the renderer shows for a state.
func (m *Model) Color(s PixelState, quality int) color.NRGBA {
	switch s.Kind {
	case Border:
		return m.Border
	case Black:
		return color.NRGBA{A: 255}
	}
	c := m.inner.sub(m.axis.mul(s.Depth(quality)))
	channel := func(x float64) uint8 {
		return uint8(max(0, min(255, math.RoundToEven(x))))
	}
	return color.NRGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: 255}
}

// Classification constants. These match the renderer's 128-level colour
// banding and must not be changed.
const (
	// maxQuality is the largest supported number of gradient levels.
	maxQuality = 101

	// colorLevels is the number of colour bands across the body radius.
	colorLevels = 128

	// borderDepth is the sampling depth that shows the border colour.
	borderDepth = 111.0 / colorLevels

	// blackDepth is the sampling depth outside the body, which shows black.
	blackDepth = 1.2
)
