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
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colours of a slider, as given in a skin or beatmap.
type Palette struct {
	Body       color.NRGBA
	Border     color.NRGBA
	Background color.NRGBA
}

// ParsePalette parses the three palette colours from hex strings like
// "#ff8000" or "f80". The leading '#' is optional.
func ParsePalette(body, border, background string) (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"body", body, &p.Body},
		{"border", border, &p.Border},
		{"background", background, &p.Background},
	}
	for _, f := range fields {
		c, err := parseHex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("sliderpic: invalid %s colour: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

func parseHex(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Model returns the colour model for the palette.
func (p Palette) Model() *Model {
	return NewModel(p.Body, p.Border, p.Background)
}

func (p Palette) String() string {
	return fmt.Sprintf("body %s, border %s, background %s",
		hexOf(p.Body), hexOf(p.Border), hexOf(p.Background))
}

func hexOf(c color.NRGBA) string {
	c.A = 255
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
