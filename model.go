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
	"image/color"
	"math"
)

// Model describes how the renderer colours a slider body. The body is a
// linear gradient from Inner (at the path) to Outer (at the edge), both
// drawn with a fixed alpha over the playfield background.
//
// A Model is immutable once created and safe for concurrent use.
type Model struct {
	Inner, Outer             color.NRGBA // gradient end points, before compositing
	OpaqueInner, OpaqueOuter color.NRGBA // gradient end points as they appear on screen
	Border                   color.NRGBA
	Background               color.NRGBA

	inner, outer rgb // OpaqueInner and OpaqueOuter as vectors
	border       rgb
	axis         rgb     // inner - outer
	axisLen2     float64 // squared length of axis
	axisLen      float64
}

// NewModel returns the colour model for a slider with the given body and
// border colours, drawn over the given background.
func NewModel(body, border, background color.NRGBA) *Model {
	inner, outer := Endpoints(body)
	m := &Model{
		Inner:       inner,
		Outer:       outer,
		OpaqueInner: Opaque(inner, background),
		OpaqueOuter: Opaque(outer, background),
		Border:      border,
		Background:  background,
	}
	m.inner = rgbOf(m.OpaqueInner)
	m.outer = rgbOf(m.OpaqueOuter)
	m.border = rgbOf(border)
	m.axis = m.inner.sub(m.outer)
	m.axisLen2 = m.axis.dot(m.axis)
	m.axisLen = math.Sqrt(m.axisLen2)
	return m
}

// Endpoints returns the two gradient colours the renderer derives from a
// slider body colour. Both carry the fixed body alpha.
func Endpoints(base color.NRGBA) (inner, outer color.NRGBA) {
	lighten := func(c uint8) uint8 {
		return uint8(min(255, float64(c)*(1+0.5*lightenAmount)+255*lightenAmount))
	}
	darken := func(c uint8) uint8 {
		return uint8(min(255, float64(c)/(1+darkenAmount)))
	}
	inner = color.NRGBA{R: lighten(base.R), G: lighten(base.G), B: lighten(base.B), A: bodyAlpha}
	outer = color.NRGBA{R: darken(base.R), G: darken(base.G), B: darken(base.B), A: bodyAlpha}
	return inner, outer
}

// Opaque composites top over bottom. Unless top is fully transparent (in
// which case bottom is returned unchanged), the result is fully opaque.
func Opaque(top, bottom color.NRGBA) color.NRGBA {
	if top.A == 0 {
		return bottom
	}
	at := float64(top.A) / 255
	ab := float64(bottom.A) / 255
	a := at + ab*(1-at)
	mix := func(t, b uint8) uint8 {
		v := (float64(b)*ab*(1-at) + float64(t)*at) / a
		return uint8(math.RoundToEven(v))
	}
	return color.NRGBA{
		R: mix(top.R, bottom.R),
		G: mix(top.G, bottom.G),
		B: mix(top.B, bottom.B),
		A: 255,
	}
}

// rgb is a colour as a point in RGB space.
type rgb [3]float64

func rgbOf(c color.NRGBA) rgb {
	return rgb{float64(c.R), float64(c.G), float64(c.B)}
}

func (a rgb) add(b rgb) rgb     { return rgb{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a rgb) sub(b rgb) rgb     { return rgb{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a rgb) mul(k float64) rgb { return rgb{a[0] * k, a[1] * k, a[2] * k} }
func (a rgb) dot(b rgb) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }
func (a rgb) len2() float64     { return a.dot(a) }
func (a rgb) len() float64      { return math.Sqrt(a.dot(a)) }

// Renderer constants for the slider body.
const (
	// lightenAmount controls how much lighter the inner gradient colour is.
	lightenAmount = 0.25

	// darkenAmount controls how much darker the outer gradient colour is.
	darkenAmount = 0.1

	// bodyAlpha is the opacity the body gradient is drawn with.
	bodyAlpha = 180
)
