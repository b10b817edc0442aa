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

var patternCases = []TestCase{
	{
		Name: "checker",
		Image: ascii([]string{
			"ioioioio",
			"oioioioi",
			"ioioioio",
			"oioioioi",
		}, sliderColours),
		Palette: defaultPalette,
	},
	{
		Name: "stripes",
		Image: ascii([]string{
			"iiiiiiii",
			"bbbbbbbb",
			"oooooooo",
			"kkkkkkkk",
			"iiiiiiii",
		}, sliderColours),
		Palette: defaultPalette,
	},
	{
		Name: "smiley",
		Image: ascii([]string{
			"  bbbbbb  ",
			" biiiiiib ",
			"biikiikiib",
			"biiiiiiiib",
			"bikiiiikib",
			"biikkkkiib",
			" biiiiiib ",
			"  bbbbbb  ",
		}, sliderColours),
		Palette: defaultPalette,
	},
	{
		Name: "ragged",
		Image: ascii([]string{
			"i",
			"io",
			"iob",
			"iobk",
		}, sliderColours),
		Palette: defaultPalette,
	},
}

// sliderColours maps characters to the colours of defaultPalette:
// i = inner, o = outer, b = border, k = black, space = background.
var sliderColours = map[byte]string{
	'i': innerHex,
	'o': outerHex,
	'b': "#ffffff",
	'k': "#000000",
	' ': "#000000",
}
