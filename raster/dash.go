// seehuhn.de/go/vecpaint - render vector shapes with gradients and masks
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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// run is a polyline about to be stroked.
type run struct {
	pts    []vec.Vec2
	closed bool

	// dir is the direction of the underlying path, for zero-length runs
	// created by dashing. It is zero otherwise.
	dir vec.Vec2
}

// dashRuns splits runs into dashes. Odd-length patterns are repeated to
// make the on and off phases alternate. A pattern without positive length
// leaves the runs unchanged.
func dashRuns(runs []run, pattern []float64, phase float64) []run {
	pat := make([]float64, 0, 2*len(pattern))
	total := 0.0
	for _, v := range pattern {
		if !(v > 0) {
			v = 0
		}
		pat = append(pat, v)
		total += v
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return runs
	}
	if len(pat)%2 == 1 {
		pat = append(pat, pat...)
		total *= 2
	}

	phase = math.Mod(phase, total)
	if math.IsNaN(phase) {
		phase = 0
	} else if phase < 0 {
		phase += total
	}

	var out []run
	for _, rn := range runs {
		if len(rn.pts) < 2 {
			out = append(out, rn)
			continue
		}
		out = dashRun(out, rn, pat, phase)
	}
	return out
}

// dashRun appends the dashes of a single run to out.
func dashRun(out []run, rn run, pat []float64, phase float64) []run {
	i, left := 0, pat[0]
	for pos := phase; pos > 0; {
		if pos < left {
			left -= pos
			break
		}
		pos -= left
		i = (i + 1) % len(pat)
		left = pat[i]
	}

	startOn := i%2 == 0
	on := startOn
	first := len(out)
	var cur run
	if on {
		cur.pts = []vec.Vec2{rn.pts[0]}
	}

	pts := rn.pts
	if rn.closed {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	for k := 1; k < len(pts); k++ {
		a, b := pts[k-1], pts[k]
		d := b.Sub(a)
		l := d.Length()
		if l < zeroLengthThreshold {
			continue
		}
		t := d.Mul(1 / l)
		if on && cur.dir == (vec.Vec2{}) {
			cur.dir = t
		}

		pos := 0.0
		for left < l-pos {
			pos += left
			q := a.Add(t.Mul(pos))
			if on {
				cur.pts = appendDistinct(cur.pts, q)
				out = append(out, cur)
				cur = run{}
			} else {
				cur = run{pts: []vec.Vec2{q}, dir: t}
			}
			on = !on
			i = (i + 1) % len(pat)
			left = pat[i]
		}
		left -= l - pos
		if on {
			cur.pts = appendDistinct(cur.pts, b)
		}
	}

	if !on || len(cur.pts) == 0 {
		return out
	}
	if rn.closed && startOn && len(out) > first {
		// The last dash runs through the start point into the first one.
		head := out[first]
		cur.pts = append(cur.pts, head.pts[1:]...)
		out[first] = cur
		return out
	}
	return append(out, cur)
}

func appendDistinct(pts []vec.Vec2, q vec.Vec2) []vec.Vec2 {
	if n := len(pts); n > 0 && near(pts[n-1], q) {
		return pts
	}
	return append(pts, q)
}
