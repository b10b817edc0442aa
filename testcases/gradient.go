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

var gradientCases = []TestCase{
	{
		Name:    "horizontal",
		Image:   ramp(16, 4, outerHex, innerHex, vec.Vec2{X: 1}),
		Palette: defaultPalette,
	},
	{
		Name:    "horizontal_reverse",
		Image:   ramp(16, 4, innerHex, outerHex, vec.Vec2{X: 1}),
		Palette: defaultPalette,
	},
	{
		Name:    "vertical",
		Image:   ramp(4, 16, outerHex, innerHex, vec.Vec2{Y: 1}),
		Palette: defaultPalette,
	},
	{
		Name:    "diagonal",
		Image:   ramp(12, 12, outerHex, innerHex, vec.Vec2{X: 1, Y: 1}),
		Palette: defaultPalette,
	},
	{
		Name:    "quality_8",
		Image:   ramp(24, 2, outerHex, innerHex, vec.Vec2{X: 1}),
		Palette: defaultPalette,
		Quality: 8,
	},
	{
		Name:    "quality_1",
		Image:   ramp(24, 2, outerHex, innerHex, vec.Vec2{X: 1}),
		Palette: defaultPalette,
		Quality: 1,
	},
	{
		Name:    "to_border",
		Image:   ramp(16, 3, innerHex, "#ffffff", vec.Vec2{X: 1}),
		Palette: defaultPalette,
	},
	{
		Name:    "to_black",
		Image:   ramp(16, 3, outerHex, "#000000", vec.Vec2{X: 1}),
		Palette: defaultPalette,
	},
}
