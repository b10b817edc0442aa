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
	"strconv"
	"testing"
)

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette("#3264c8", "fff", " #000000 ")
	if err != nil {
		t.Fatal(err)
	}
	want := Palette{
		Body:       color.NRGBA{R: 0x32, G: 0x64, B: 0xc8, A: 255},
		Border:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Background: color.NRGBA{A: 255},
	}
	if p != want {
		t.Errorf("got %v, want %v", p, want)
	}
	if s := p.String(); s != "body #3264c8, border #ffffff, background #000000" {
		t.Errorf("unexpected string %q", s)
	}
}

func TestParsePaletteErrors(t *testing.T) {
	cases := []struct {
		body, border, background string
	}{
		{"", "#fff", "#000"},
		{"#fff", "#12345", "#000"},
		{"#fff", "#fff", "#zzzzzz"},
	}
	for i, tc := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			p, err := ParsePalette(tc.body, tc.border, tc.background)
			if err == nil {
				t.Fatalf("no error, got %v", p)
			}
			if p != (Palette{}) {
				t.Errorf("non-zero palette %v on error", p)
			}
		})
	}
}

func TestPaletteModel(t *testing.T) {
	p, err := ParsePalette("#3264c8", "#ffffff", "#000000")
	if err != nil {
		t.Fatal(err)
	}
	m := p.Model()
	if m.Border != p.Border || m.Background != p.Background {
		t.Errorf("model colours differ from palette")
	}
	inner, outer := Endpoints(p.Body)
	if m.Inner != inner || m.Outer != outer {
		t.Errorf("unexpected gradient %v, %v", m.Inner, m.Outer)
	}
}
