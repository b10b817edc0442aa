// Command preview writes PNG previews for every test case: the recoloured
// picture, and the segments of the encoded path at picture scale.
// Run from the sliderpic module root directory.
package main

import (
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/sliderpic"
	"seehuhn.de/go/sliderpic/testcases"
)

const previewDir = "debug/preview"

// zoom is the number of output pixels per picture pixel.
const zoom = 16

func main() {
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := writePreviews(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writePreviews(tc testcases.TestCase, name string) error {
	pal, err := sliderpic.ParsePalette(tc.Palette.Body, tc.Palette.Border, tc.Palette.Background)
	if err != nil {
		return err
	}
	opt := sliderpic.Defaults
	if tc.Quality > 0 {
		opt.Quality = tc.Quality
	}
	opt.BlackOff = tc.BlackOff
	opt.BorderOff = tc.BorderOff

	timing := &sliderpic.Timing{
		Duration:   tc.Duration,
		CircleSize: tc.CircleSize,
	}
	if tc.Motion != nil {
		timing.MarkerPositionAt = tc.Motion.At
	}

	m := pal.Model()
	recolored, segments := sliderpic.Recolor(tc.Image, m, &opt, timing)

	enc := sliderpic.NewEncoder(m)
	enc.Options = &opt
	res := enc.Picturate(tc.Image, timing)

	lines := sliderpic.Preview(res, zoom)
	if err := writePNG(filepath.Join(previewDir, name+"_path.png"), lines); err != nil {
		return err
	}
	if err := writePNG(filepath.Join(previewDir, name+"_recolor.png"), scaleUp(recolored)); err != nil {
		return err
	}

	fmt.Printf("%-28s %4d segments %6d points  frameDist %.0f\n",
		name, segments, len(res.Points), res.FrameDist)
	return nil
}

// scaleUp enlarges img by the zoom factor, without smoothing.
func scaleUp(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, zoom*b.Dx(), zoom*b.Dy()))
	draw.NearestNeighbor.Scale(dst, dst.Rect, img, b, draw.Src, nil)
	return dst
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
