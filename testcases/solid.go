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

var solidCases = []TestCase{
	{
		Name:    "single_pixel",
		Image:   solid(1, 1, innerHex),
		Palette: defaultPalette,
	},
	{
		Name:    "inner",
		Image:   solid(8, 4, innerHex),
		Palette: defaultPalette,
	},
	{
		Name:    "outer",
		Image:   solid(8, 4, outerHex),
		Palette: defaultPalette,
	},
	{
		Name:    "border",
		Image:   solid(6, 6, "#ffffff"),
		Palette: defaultPalette,
	},
	{
		Name:      "border_off",
		Image:     solid(6, 6, "#ffffff"),
		Palette:   defaultPalette,
		BorderOff: true,
	},
	{
		Name:    "black",
		Image:   solid(5, 3, "#000000"),
		Palette: defaultPalette,
	},
	{
		Name:     "black_off",
		Image:    solid(5, 3, "#000000"),
		Palette:  defaultPalette,
		BlackOff: true,
	},
	{
		Name:  "red_on_grey",
		Image: solid(4, 4, "#c03020"),
		Palette: Palette{
			Body:       "#e04030",
			Border:     "#202020",
			Background: "#808080",
		},
	},
}
