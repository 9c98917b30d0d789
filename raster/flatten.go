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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vecpaint/affine"
)

// Polyline is a subpath with all curves replaced by line segments.
// Consecutive points are distinct. For closed polylines the segment from
// the last point back to the first is implied.
type Polyline struct {
	Points []vec.Vec2
	Closed bool
}

// Flatten splits p into subpaths and replaces curves by line segments.
// Points stay in user space, but the number of segments per curve is
// chosen so that the error after applying the CTM is at most Flatness.
//
// A subpath consisting of a single point is kept if it contains a drawing
// command, since it can still produce a round dot when stroked.
func (r *Rasterizer) Flatten(p *path.Data) []Polyline {
	if p == nil {
		return nil
	}

	var (
		out     []Polyline
		cur     Polyline
		start   vec.Vec2
		pen     vec.Vec2
		hasPen  bool // a current point exists
		open    bool // cur holds a subpath
		drawing bool // the subpath contains a drawing command
	)
	flush := func() {
		if open && drawing {
			pts := cur.Points
			if cur.Closed && len(pts) > 2 && near(pts[len(pts)-1], pts[0]) {
				cur.Points = pts[:len(pts)-1]
			}
			out = append(out, cur)
		}
		cur = Polyline{}
		open = false
		drawing = false
	}
	add := func(q vec.Vec2) {
		if n := len(cur.Points); n == 0 || !near(cur.Points[n-1], q) {
			cur.Points = append(cur.Points, q)
		}
	}
	// begin makes sure a subpath is open before a drawing command.
	begin := func() bool {
		if !hasPen {
			return false
		}
		if !open {
			cur.Points = []vec.Vec2{pen}
			start = pen
			open = true
		}
		drawing = true
		return true
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			pen = p.Coords[k]
			k++
			hasPen = true
			start = pen
			cur.Points = []vec.Vec2{pen}
			open = true

		case path.CmdLineTo:
			q := p.Coords[k]
			k++
			if begin() {
				add(q)
				pen = q
			}

		case path.CmdQuadTo:
			c, q := p.Coords[k], p.Coords[k+1]
			k += 2
			if begin() {
				r.flattenQuad(pen, c, q, add)
				pen = q
			}

		case path.CmdCubeTo:
			c1, c2, q := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			k += 3
			if begin() {
				r.flattenCube(pen, c1, c2, q, add)
				pen = q
			}

		case path.CmdClose:
			if open {
				drawing = true
				cur.Closed = true
				flush()
				pen = start
			}
		}
	}
	flush()
	return out
}

func near(a, b vec.Vec2) bool {
	return b.Sub(a).Length() < zeroLengthThreshold
}

func (r *Rasterizer) flatness() float64 {
	if r.Flatness > 0 {
		return r.Flatness
	}
	return defaultFlatness
}

// curveSegments returns the number of line segments needed for a curve
// whose second differences, in device space, are bounded by m.
func curveSegments(m, tol float64) int {
	n := math.Ceil(math.Sqrt(m / tol))
	if !(n >= 1) {
		return 1
	}
	return int(min(n, maxCurveSegments))
}

// flattenQuad emits the points of a quadratic Bézier curve after p0.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, emit func(vec.Vec2)) {
	dd := affine.ApplyLinear(r.CTM, p0.Sub(p1.Mul(2)).Add(p2))
	n := curveSegments(dd.Length()/4, r.flatness())
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		emit(p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCube emits the points of a cubic Bézier curve after p0, using
// Wang's bound for the number of segments.
func (r *Rasterizer) flattenCube(p0, p1, p2, p3 vec.Vec2, emit func(vec.Vec2)) {
	d1 := affine.ApplyLinear(r.CTM, p0.Sub(p1.Mul(2)).Add(p2))
	d2 := affine.ApplyLinear(r.CTM, p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())
	n := curveSegments(3*m/4, r.flatness())
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		emit(p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t)))
	}
}
