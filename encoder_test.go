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
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"
	"sync"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sliderpic/testcases"
)

func testPicture(t testing.TB) *image.NRGBA {
	m := testModel(t)
	return rowImage(
		[]color.NRGBA{m.OpaqueOuter, m.OpaqueInner, m.OpaqueInner, white},
		[]color.NRGBA{m.OpaqueInner, m.OpaqueOuter, black, m.OpaqueOuter},
		[]color.NRGBA{white, white, m.OpaqueInner, m.OpaqueOuter},
	)
}

func still(pos vec.Vec2) func(t, duration int) vec.Vec2 {
	return func(t, duration int) vec.Vec2 { return pos }
}

func checkIntegral(t *testing.T, pts []vec.Vec2) {
	t.Helper()
	for i, p := range pts {
		if p.X != math.Trunc(p.X) || p.Y != math.Trunc(p.Y) {
			t.Fatalf("point %d is not integral: %v", i, p)
		}
	}
}

func TestPicturateStill(t *testing.T) {
	m := testModel(t)
	img := testPicture(t)
	enc := NewEncoder(m)

	for _, timing := range []*Timing{nil, {CircleSize: 3}} {
		res := enc.Picturate(img, timing)
		if res.FrameDist != 0 {
			t.Errorf("frameDist: got %g, want 0", res.FrameDist)
		}
		if res.Arrivals != nil {
			t.Errorf("unexpected arrivals %v", res.Arrivals)
		}
		if !slices.Equal(res.Points, slices.Concat(res.Chunks...)) {
			t.Error("points differ from the concatenated chunks")
		}
		if len(res.Chunks[0]) != 6 || res.Points[0] != (vec.Vec2{}) {
			t.Errorf("unexpected box chunk %v", res.Chunks[0])
		}
		checkIntegral(t, res.Points)
	}
}

func TestPicturePoints(t *testing.T) {
	m := testModel(t)
	img := testPicture(t)
	d := m.DistanceMap(img, nil)
	want := int(CountSegments(d, nil))

	// Every run gives two points and every row one more.
	enc := NewEncoder(m)
	enc.PictureStart = imageOrigin
	res := enc.Picturate(img, nil)
	if res.ImageStart != imageOrigin {
		t.Errorf("image start: got %v, want %v", res.ImageStart, imageOrigin)
	}
	if got := len(res.Points) - len(res.Chunks[0]); got != want {
		t.Errorf("got %d picture points, want %d", got, want)
	}

	// Chunks are cut after every left-to-right row.
	if len(res.Chunks) != 3 {
		t.Errorf("got %d chunks, want 3", len(res.Chunks))
	}

	// A picture away from the corner starts with a lead-in.
	enc.PictureStart = vec.Vec2{}
	res = enc.Picturate(img, nil)
	wantStart := vec.Vec2{X: -104 + 960*231, Y: -52 + 960*115}
	if res.ImageStart != wantStart {
		t.Errorf("image start: got %v, want %v", res.ImageStart, wantStart)
	}
	lead := res.Chunks[1][:2]
	if lead[0] != (vec.Vec2{X: res.Box.LLx, Y: wantStart.Y}) || lead[1] != wantStart {
		t.Errorf("unexpected lead-in %v", lead)
	}
	if got := len(res.Points) - len(res.Chunks[0]); got != want+2 {
		t.Errorf("got %d picture points, want %d", got, want+2)
	}
}

func TestPictureGeometry(t *testing.T) {
	// A uniform row gives one flat segment, a quarter grid step outside
	// the first and last sample points, at the depth of the pixels.
	m := testModel(t)
	img := solidImage(3, 1, m.OpaqueOuter)
	enc := NewEncoder(m)
	enc.PictureStart = imageOrigin
	res := enc.Picturate(img, nil)

	r := objectRadius(0)
	depth := math.Trunc(r * 101 / 128)
	want := []vec.Vec2{
		{X: -104 + 240, Y: -52 + 480 + depth},
		{X: -104 + 240 + 2.5*960, Y: -52 + 480 + depth},
		{X: -104 + 240 + 2.5*960, Y: -52 + 480 + depth + 960},
	}
	if got := res.Chunks[1]; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPicturateEmpty(t *testing.T) {
	m := testModel(t)
	enc := NewEncoder(m)
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	for _, timing := range []*Timing{nil, {Duration: 5, MarkerPositionAt: still(vec.Vec2{})}} {
		res := enc.Picturate(img, timing)
		if len(res.Points) != 0 || res.FrameDist != 0 {
			t.Errorf("got %d points, frameDist %g", len(res.Points), res.FrameDist)
		}
		if n := len(res.Data().Cmds); n != 0 {
			t.Errorf("got %d path commands", n)
		}
	}
}

func TestPicturatePanics(t *testing.T) {
	m := testModel(t)
	img := testPicture(t)

	enc := NewEncoder(m)
	enc.GridSpan = 0.5
	if !panics(func() { enc.Picturate(img, nil) }) {
		t.Error("small grid span: no panic")
	}

	enc = NewEncoder(m)
	if !panics(func() { enc.Picturate(img, &Timing{Duration: -1}) }) {
		t.Error("negative duration: no panic")
	}
	if !panics(func() { enc.Picturate(img, &Timing{Duration: 3}) }) {
		t.Error("missing marker function: no panic")
	}
	enc.Options = &Options{Quality: 0}
	if !panics(func() { enc.Picturate(img, nil) }) {
		t.Error("zero quality: no panic")
	}
}

func TestScenarioD(t *testing.T) {
	m := testModel(t)
	img := testPicture(t)
	pos := vec.Vec2{X: 256, Y: 192}
	timing := &Timing{Duration: 10, MarkerPositionAt: still(pos)}

	res := NewEncoder(m).Picturate(img, timing)
	if len(res.Arrivals) != 11 {
		t.Fatalf("got %d arrivals, want 11", len(res.Arrivals))
	}
	if res.Arrivals[0] != 0 || res.Arrivals[10] != len(res.Points)-1 {
		t.Errorf("unexpected arrivals %v", res.Arrivals)
	}
	snap := pos.Add(vec.Vec2{X: snapTolerance})
	for i := 1; i <= 10; i++ {
		k := res.Arrivals[i]
		if k <= res.Arrivals[i-1] {
			t.Fatalf("arrivals not increasing: %v", res.Arrivals)
		}
		if res.Points[k] != pos || res.Points[k-1] != snap {
			t.Errorf("t=%d: ends with %v, %v", i, res.Points[k-1], res.Points[k])
		}
	}
	checkIntegral(t, res.Points)
}

func TestFrameDist(t *testing.T) {
	m := testModel(t)
	img := testPicture(t)
	timing := &Timing{Duration: 10, MarkerPositionAt: still(vec.Vec2{X: 256, Y: 192})}
	res := NewEncoder(m).Picturate(img, timing)

	first := StableLength(res.Points[:res.Arrivals[1]+1])
	if first-snapTolerance/2 != res.FrameDist {
		t.Errorf("first unit has length %g, frameDist %g", first, res.FrameDist)
	}
	total := StableLength(slices.Concat(res.Chunks...))
	if 10*res.FrameDist < total {
		t.Errorf("frameDist %g too small for length %g", res.FrameDist, total)
	}
}

func TestLengthBudget(t *testing.T) {
	m := testModel(t)
	img := testPicture(t)
	timings := map[string]*Timing{
		"still": {Duration: 10, MarkerPositionAt: still(vec.Vec2{X: 256, Y: 192})},
		"line": {
			Duration: 30,
			MarkerPositionAt: func(t, duration int) vec.Vec2 {
				s := float64(t) / float64(duration)
				return vec.Vec2{X: 50 + 400*s, Y: 300 - 200*s}
			},
		},
		"circle": {
			Duration:   24,
			CircleSize: 5,
			MarkerPositionAt: func(t, duration int) vec.Vec2 {
				phi := 2 * math.Pi * float64(t) / float64(duration)
				return vec.Vec2{X: 256 + 80*math.Cos(phi), Y: 192 + 80*math.Sin(phi)}
			},
		},
	}
	for name, timing := range timings {
		t.Run(name, func(t *testing.T) {
			res := NewEncoder(m).Picturate(img, timing)
			mk := newMarkers(timing, res.Box)
			for i := 2; i <= timing.Duration; i++ {
				unit := res.Points[res.Arrivals[i-1] : res.Arrivals[i]+1]
				l := StableLength(unit)
				lo := res.FrameDist - snapTolerance
				hi := res.FrameDist + 2*(res.Box.URx-mk.snap[i].X)
				if l < lo || l > hi {
					t.Errorf("t=%d: length %g outside [%g, %g]", i, l, lo, hi)
				}
				for _, p := range unit {
					if p.X < res.Box.LLx || p.Y < res.Box.LLy || p.Y > res.Box.URy {
						t.Fatalf("t=%d: point %v outside %v", i, p, res.Box)
					}
				}
			}
		})
	}
}

func TestPicturateShortSlider(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	// With a single time unit, only the slider box is drawn.
	m := testModel(t)
	timing := &Timing{Duration: 1, MarkerPositionAt: still(vec.Vec2{X: 256, Y: 192})}
	res := NewEncoder(m).Picturate(testPicture(t), timing)
	if len(res.Points) != 14 {
		t.Errorf("got %d points, want 14", len(res.Points))
	}
	if want := []int{0, 13}; !slices.Equal(res.Arrivals, want) {
		t.Errorf("arrivals: got %v, want %v", res.Arrivals, want)
	}
	if !strings.Contains(buf.String(), "picture does not fit") {
		t.Errorf("missing warning in log output %q", buf.String())
	}
}

func TestPicturateConcurrent(t *testing.T) {
	m := testModel(t)
	img := testPicture(t)
	enc := NewEncoder(m)
	timing := &Timing{Duration: 12, MarkerPositionAt: still(vec.Vec2{X: 100, Y: 300})}
	want := enc.Picturate(img, timing)

	var wg sync.WaitGroup
	results := make([]*Result, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = enc.Picturate(img, timing)
		}()
	}
	wg.Wait()
	for i, res := range results {
		if !slices.Equal(res.Points, want.Points) || res.FrameDist != want.FrameDist {
			t.Errorf("run %d differs", i)
		}
	}
}

func TestResultData(t *testing.T) {
	m := testModel(t)
	res := NewEncoder(m).Picturate(testPicture(t), nil)
	data := res.Data()

	var pts []vec.Vec2
	for cmd, p := range data.Iter() {
		want := path.CmdLineTo
		if len(pts) == 0 {
			want = path.CmdMoveTo
		}
		if cmd != want {
			t.Fatalf("command %d: got %v, want %v", len(pts), cmd, want)
		}
		pts = append(pts, p[0])
	}
	if !slices.Equal(pts, res.Points) {
		t.Error("path points differ")
	}
}

func TestAllCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				enc, timing := setupCase(t, tc)
				res := enc.Picturate(tc.Image, timing)
				checkIntegral(t, res.Points)

				if timing.Duration == 0 {
					if !slices.Equal(res.Points, slices.Concat(res.Chunks...)) {
						t.Error("points differ from the concatenated chunks")
					}
					return
				}
				if len(res.Arrivals) != timing.Duration+1 {
					t.Fatalf("got %d arrivals, want %d", len(res.Arrivals), timing.Duration+1)
				}
				for i, k := range res.Arrivals[1:] {
					want := round(tc.Motion.At(i+1, timing.Duration))
					if res.Points[k] != want {
						t.Errorf("t=%d: got %v, want %v", i+1, res.Points[k], want)
					}
				}
			})
		}
	}
}

func setupCase(t testing.TB, tc testcases.TestCase) (*Encoder, *Timing) {
	t.Helper()
	pal, err := ParsePalette(tc.Palette.Body, tc.Palette.Border, tc.Palette.Background)
	if err != nil {
		t.Fatal(err)
	}
	opt := Defaults
	if tc.Quality > 0 {
		opt.Quality = tc.Quality
	}
	opt.BlackOff = tc.BlackOff
	opt.BorderOff = tc.BorderOff

	timing := &Timing{
		Duration:   tc.Duration,
		CircleSize: tc.CircleSize,
	}
	if tc.Motion != nil {
		timing.MarkerPositionAt = tc.Motion.At
	}

	enc := NewEncoder(pal.Model())
	enc.Options = &opt
	return enc, timing
}
