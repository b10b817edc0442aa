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
	"image"
	"image/color"
	"runtime"
	"sync"

	"golang.org/x/image/draw"
)

// DistanceMap holds the classification of every pixel of an image,
// in row-major order.
type DistanceMap struct {
	Width, Height int
	Quality       int // quality the states were classified with
	States        []PixelState
}

// At returns the state of the pixel at (x, y).
func (d *DistanceMap) At(x, y int) PixelState {
	return d.States[d.index(x, y)]
}

// Depth returns the sampling depth of the pixel at (x, y).
// See [PixelState.Depth].
func (d *DistanceMap) Depth(x, y int) float64 {
	return d.States[d.index(x, y)].Depth(d.Quality)
}

func (d *DistanceMap) index(x, y int) int {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		panic(fmt.Sprintf("sliderpic: pixel (%d, %d) outside %dx%d map", x, y, d.Width, d.Height))
	}
	return y*d.Width + x
}

// Empty reports whether the map has no pixels.
func (d *DistanceMap) Empty() bool {
	return d.Width == 0 || d.Height == 0
}

// DistanceMap classifies every pixel of img. Rows are processed
// concurrently; the result does not depend on the scheduling.
func (m *Model) DistanceMap(img image.Image, opt *Options) *DistanceMap {
	opt = opt.orDefault()
	opt.check()

	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	d := &DistanceMap{
		Width:   w,
		Height:  h,
		Quality: opt.Quality,
		States:  make([]PixelState, w*h),
	}
	forRows(h, func(y int) {
		row := src.Pix[y*src.Stride : y*src.Stride+4*w]
		out := d.States[y*w : (y+1)*w]
		for x := range out {
			px := row[4*x : 4*x+4]
			out[x] = m.Classify(color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}, opt)
		}
	})
	return d
}

// toNRGBA returns img as a non-premultiplied RGBA image whose bounds
// start at the origin. The input is not modified.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if src, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst
}

// forRows calls fn once for every row in [0, height), splitting the rows
// into contiguous bands that run on separate goroutines. It returns after
// all calls have completed.
func forRows(height int, fn func(y int)) {
	if height <= 0 {
		return
	}
	workers := min(runtime.GOMAXPROCS(0), height)
	rowsPerWorker := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < height; start += rowsPerWorker {
		end := min(start+rowsPerWorker, height)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := start; y < end; y++ {
				fn(y)
			}
		}()
	}
	wg.Wait()
}
