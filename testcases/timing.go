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

import "seehuhn.de/go/geom/vec"

var timingCases = []TestCase{
	{
		Name:     "still",
		Image:    ramp(8, 4, outerHex, innerHex, vec.Vec2{X: 1}),
		Palette:  defaultPalette,
		Duration: 10,
		Motion:   Still{Pos: vec.Vec2{X: 256, Y: 192}},
	},
	{
		Name:     "single_unit",
		Image:    solid(4, 4, innerHex),
		Palette:  defaultPalette,
		Duration: 1,
		Motion:   Still{Pos: vec.Vec2{X: 256, Y: 192}},
	},
	{
		Name:     "line",
		Image:    ramp(12, 6, innerHex, outerHex, vec.Vec2{X: 1, Y: 1}),
		Palette:  defaultPalette,
		Duration: 40,
		Motion:   Line{From: vec.Vec2{X: 64, Y: 96}, To: vec.Vec2{X: 448, Y: 288}},
	},
	{
		Name:     "line_left",
		Image:    solid(6, 6, outerHex),
		Palette:  defaultPalette,
		Duration: 25,
		Motion:   Line{From: vec.Vec2{X: 448, Y: 192}, To: vec.Vec2{X: 64, Y: 192}},
	},
	{
		Name:       "circle",
		Image:      ramp(16, 8, outerHex, innerHex, vec.Vec2{Y: 1}),
		Palette:    defaultPalette,
		Duration:   60,
		CircleSize: 4,
		Motion:     Circle{Center: vec.Vec2{X: 256, Y: 192}, Radius: 100},
	},
	{
		Name:       "small_circles",
		Image:      solid(3, 3, innerHex),
		Palette:    defaultPalette,
		Duration:   20,
		CircleSize: 7,
		Motion:     Circle{Center: vec.Vec2{X: 100, Y: 100}, Radius: 30},
	},
}
