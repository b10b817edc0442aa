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
	"log/slog"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// packer distributes the picture chunks over the time units of a slider.
//
// The renderer moves the ball along the path at constant speed, so every
// time unit has to use the same path length frameDist. Between two marker
// positions the packer emits as many picture chunks as fit into this
// budget, then leaves the picture, approaches the next marker position
// from its snap point and pads the remaining length with horizontal
// back-and-forth segments.
type packer struct {
	chunks    [][]vec.Vec2
	mk        *markers
	box       rect.Rect
	duration  int
	frameDist float64

	out      []vec.Vec2
	arrivals []int

	unit       []vec.Vec2 // path of the current time unit; unit[0] is already in out
	unitDist   float64    // estimated length of unit
	correction float64    // accumulated length error of the finished units
	t          int        // time unit being filled
}

func newPacker(chunks [][]vec.Vec2, mk *markers, box rect.Rect, duration int) *packer {
	return &packer{
		chunks:   chunks,
		mk:       mk,
		box:      box,
		duration: duration,
	}
}

func (p *packer) run() {
	p.firstUnit(StableLength(slices.Concat(p.chunks...)))

	p.t = 2
	p.unit = append(p.unit[:0], p.last())
	i := 1
	for ; i < len(p.chunks) && p.t <= p.duration; i++ {
		chunk := p.chunks[i]
		from := p.unit[len(p.unit)-1]
		chunkDist := segmentLength(from, chunk[0]) + StableLength(chunk)
		snap := p.mk.snap[p.t]
		if p.unitDist+chunkDist+manhattan(chunk[len(chunk)-1], snap)+snapTolerance > p.frameDist {
			p.detour()
			p.unit = append(p.unit, chunk...)
			p.unitDist = StableLength(p.unit)
		} else {
			p.unit = append(p.unit, chunk...)
			p.unitDist += chunkDist
		}
	}

	if p.t <= p.duration {
		p.detour()
	} else if dropped := len(p.chunks) - i + min(len(p.unit)-1, 1); dropped > 0 {
		Logger().Warn("picture does not fit into slider",
			slog.Int("droppedChunks", dropped),
			slog.Int("duration", p.duration))
	}

	for p.t <= p.duration {
		p.spin()
	}
}

// firstUnit stretches the slider box and determines frameDist. The box
// chunk is repeated until the path budget of all time units covers the
// whole path.
func (p *packer) firstUnit(total float64) {
	box := p.chunks[0]
	end := []vec.Vec2{p.mk.snap[1], p.mk.pos[1]}
	for {
		if len(p.out) > 0 {
			p.out = p.out[:len(p.out)-len(end)]
		}
		prev := p.frameDist
		p.out = append(p.out, box...)
		p.out = append(p.out, box...)
		p.out = append(p.out, end...)
		p.frameDist = StableLength(p.out) - snapTolerance/2
		if float64(p.duration)*p.frameDist >= total {
			break
		}
		if p.frameDist <= prev {
			panic("sliderpic: degenerate slider box")
		}
	}
	p.arrivals = append(p.arrivals[:0], 0, len(p.out)-1)
}

// detour finishes the current time unit: it leaves the picture towards
// the snap point, pads the unit to frameDist and ends at the marker
// position.
func (p *packer) detour() {
	snap := p.mk.snap[p.t]
	last := p.unit[len(p.unit)-1]
	p.unitDist += manhattan(last, snap)
	p.unit = append(p.unit, vec.Vec2{X: last.X, Y: snap.Y}, snap)
	p.unitDist += snapTolerance

	avail := p.fillerLength(snap)
	n := 0
	if avail > 0 {
		n = int(math.Floor((p.frameDist - p.unitDist) / avail))
	}
	p.fill(snap, n)
	p.unitDist += float64(max(n, 0)) * avail

	p.finish(math.RoundToEven((p.frameDist - p.unitDist + p.correction) / 2))
}

// spin fills a time unit after the picture is complete.
func (p *packer) spin() {
	snap := p.mk.snap[p.t]
	generous := manhattan(p.unit[0], snap)

	avail := p.fillerLength(snap)
	n := 0
	if avail > 0 {
		n = int(math.Floor((p.frameDist - snapTolerance - generous) / avail))
	}
	p.fill(snap, n)

	p.finish(math.RoundToEven((p.frameDist - StableLength(p.unit) - snapTolerance + p.correction) / 2))
}

// fillerLength returns the length of one back-and-forth segment between
// snap and the right edge of the slider box.
func (p *packer) fillerLength(snap vec.Vec2) float64 {
	return 2 * (p.box.URx - snap.X)
}

func (p *packer) fill(snap vec.Vec2, n int) {
	edge := vec.Vec2{X: p.box.URx, Y: snap.Y}
	for range n {
		p.unit = append(p.unit, edge, snap)
	}
}

// finish appends the last back-and-forth segment, of the given reach, and
// the approach to the marker position. The unit is then moved to the
// output and a new unit is started.
func (p *packer) finish(reach float64) {
	snap := p.mk.snap[p.t]
	p.unit = append(p.unit, vec.Vec2{X: snap.X + reach, Y: snap.Y}, snap, p.mk.pos[p.t])
	p.correction += p.frameDist - StableLength(p.unit)

	p.out = append(p.out, p.unit[1:]...)
	p.arrivals = append(p.arrivals, len(p.out)-1)
	p.t++

	p.unit = append(p.unit[:0], p.last())
	p.unitDist = 0
}

func (p *packer) last() vec.Vec2 {
	return p.out[len(p.out)-1]
}
