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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke computes the coverage of p stroked with the current Width, Cap,
// Join, MiterLimit and dash pattern. The emit callback is used as for Fill.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	for _, poly := range r.outline(p) {
		r.addPolygon(poly)
	}
	r.scan(NonZero, emit)
}

// StrokeOutline returns the region covered by stroking p, as closed
// polygons in user space. Filling the result with the nonzero rule covers
// the same pixels as Stroke. The result is nil if the stroke is empty.
func (r *Rasterizer) StrokeOutline(p *path.Data) *path.Data {
	polys := r.outline(p)
	if len(polys) == 0 {
		return nil
	}
	out := &path.Data{}
	for _, poly := range polys {
		out.MoveTo(poly[0])
		for _, q := range poly[1:] {
			out.LineTo(q)
		}
		out.Close()
	}
	return out
}

func (r *Rasterizer) outline(p *path.Data) [][]vec.Vec2 {
	width := r.Width
	if !(width >= minStrokeWidth) {
		width = minStrokeWidth
	}
	limit := r.MiterLimit
	if !(limit >= 1) {
		limit = 1
	}
	o := &outliner{
		d:          width / 2,
		cap:        r.Cap,
		join:       r.Join,
		miterLimit: min(limit, maxMiterLimit),
		scale:      deviceScale(r.CTM),
		flatness:   r.flatness(),
	}

	runs := make([]run, 0, 4)
	for _, pl := range r.Flatten(p) {
		runs = append(runs, run{pts: pl.Points, closed: pl.Closed})
	}
	if len(r.Dash) > 0 {
		runs = dashRuns(runs, r.Dash, r.DashPhase)
	}
	for _, rn := range runs {
		o.add(rn)
	}
	return o.polys
}

// deviceScale returns the largest factor by which m stretches a vector.
func deviceScale(m matrix.Matrix) float64 {
	return max(math.Hypot(m[0], m[1]), math.Hypot(m[2], m[3]))
}

// segment is a non-degenerate line segment of a stroked run.
type segment struct {
	a, b vec.Vec2
	t    vec.Vec2 // unit tangent from a to b
	n    vec.Vec2 // t rotated by +90°
}

func segmentsOf(pts []vec.Vec2, closed bool) []segment {
	segs := make([]segment, 0, len(pts))
	addSeg := func(a, b vec.Vec2) {
		d := b.Sub(a)
		l := d.Length()
		if l < zeroLengthThreshold {
			return
		}
		t := d.Mul(1 / l)
		segs = append(segs, segment{a: a, b: b, t: t, n: t.Rot90()})
	}
	for i := 1; i < len(pts); i++ {
		addSeg(pts[i-1], pts[i])
	}
	if closed && len(pts) > 1 {
		addSeg(pts[len(pts)-1], pts[0])
	}
	return segs
}

// reversed returns the segments traversed backwards. The left side of the
// result is the right side of the input.
func reversed(segs []segment) []segment {
	out := make([]segment, len(segs))
	for i, s := range segs {
		out[len(segs)-1-i] = segment{a: s.b, b: s.a, t: s.t.Mul(-1), n: s.n.Mul(-1)}
	}
	return out
}

// outliner collects the polygons making up a stroke outline.
type outliner struct {
	d          float64 // half the stroke width
	cap        graphics.LineCapStyle
	join       graphics.LineJoinStyle
	miterLimit float64
	scale      float64 // device pixels per user space unit
	flatness   float64

	polys [][]vec.Vec2
	pts   []vec.Vec2
}

// add appends the outline of one run.
//
// Open runs give a single polygon: the left offset going forward, the end
// cap, the left offset of the reversed run, and the start cap. Closed runs
// give two rings of opposite orientation, one on either side.
func (o *outliner) add(rn run) {
	if len(rn.pts) == 0 {
		return
	}
	segs := segmentsOf(rn.pts, rn.closed)
	if len(segs) == 0 {
		o.dot(rn.pts[0], rn.dir)
		return
	}
	back := reversed(segs)

	if rn.closed {
		o.ring(segs)
		o.ring(back)
		return
	}

	o.pts = nil
	o.side(segs)
	last := segs[len(segs)-1]
	o.addCap(last.b, last.t)
	o.side(back)
	first := back[len(back)-1]
	o.addCap(first.b, first.t)
	o.finish()
}

func (o *outliner) finish() {
	if len(o.pts) >= 3 {
		o.polys = append(o.polys, o.pts)
	}
	o.pts = nil
}

// side appends the left offset of an open chain of segments.
func (o *outliner) side(segs []segment) {
	s := segs[0]
	o.pts = append(o.pts, s.a.Add(s.n.Mul(o.d)))
	for i := 1; i < len(segs); i++ {
		o.addJoin(segs[i-1], segs[i])
	}
	s = segs[len(segs)-1]
	o.pts = append(o.pts, s.b.Add(s.n.Mul(o.d)))
}

// ring emits the left offset of a closed chain as its own polygon.
func (o *outliner) ring(segs []segment) {
	o.pts = nil
	for i := range segs {
		o.addJoin(segs[(i+len(segs)-1)%len(segs)], segs[i])
	}
	o.finish()
}

// addJoin appends the left offset around the vertex where s1 ends and s2
// begins.
func (o *outliner) addJoin(s1, s2 segment) {
	p := s1.b
	from := p.Add(s1.n.Mul(o.d))
	to := p.Add(s2.n.Mul(o.d))
	cross := s1.t.X*s2.t.Y - s1.t.Y*s2.t.X
	dot := s1.t.Dot(s2.t)

	switch {
	case dot < cuspCosine:
		o.pts = append(o.pts, from)
		o.addCap(p, s1.t)
		o.pts = append(o.pts, to)

	case math.Abs(cross) < collinearityThreshold:
		o.pts = append(o.pts, from)

	case cross > 0:
		// Inner side of the turn. Pivoting through the vertex leaves a
		// small loop which the nonzero rule fills.
		o.pts = append(o.pts, from, p, to)

	default:
		o.pts = append(o.pts, from)
		switch o.join {
		case graphics.LineJoinMiter:
			sinHalf := math.Sqrt((1 + dot) / 2)
			if sinHalf*o.miterLimit >= 1-1e-10 {
				bis := s1.n.Add(s2.n)
				if l := bis.Length(); l > zeroLengthThreshold {
					o.pts = append(o.pts, p.Add(bis.Mul(o.d/(sinHalf*l))))
				}
			}
		case graphics.LineJoinRound:
			o.arc(p, s1.n, math.Atan2(cross, dot))
		}
		o.pts = append(o.pts, to)
	}
}

// addCap appends the cap at p, for a line leaving p in direction t. The
// points run from the left offset to the right offset; the offsets
// themselves are added by the caller.
func (o *outliner) addCap(p, t vec.Vec2) {
	n := t.Rot90()
	switch o.cap {
	case graphics.LineCapSquare:
		e := p.Add(t.Mul(o.d))
		o.pts = append(o.pts, e.Add(n.Mul(o.d)), e.Sub(n.Mul(o.d)))
	case graphics.LineCapRound:
		o.arc(p, n, -math.Pi)
	}
}

// dot emits the outline of a zero-length run. Without a direction only
// round caps produce a mark.
func (o *outliner) dot(p, dir vec.Vec2) {
	switch o.cap {
	case graphics.LineCapRound:
		o.pts = []vec.Vec2{p.Add(vec.Vec2{X: o.d})}
		o.arc(p, vec.Vec2{X: 1}, 2*math.Pi)
		o.finish()
	case graphics.LineCapSquare:
		l := dir.Length()
		if l < zeroLengthThreshold {
			return
		}
		t := dir.Mul(o.d / l)
		n := t.Rot90()
		o.pts = []vec.Vec2{
			p.Add(t).Add(n),
			p.Sub(t).Add(n),
			p.Sub(t).Sub(n),
			p.Add(t).Sub(n),
		}
		o.finish()
	}
}

// arc appends the interior points of a circular arc of radius o.d around
// c, starting in the unit direction u and turning by sweep radians.
func (o *outliner) arc(c, u vec.Vec2, sweep float64) {
	n := o.arcSteps(math.Abs(sweep))
	for i := 1; i < n; i++ {
		s, k := math.Sincos(sweep * float64(i) / float64(n))
		v := vec.Vec2{X: u.X*k - u.Y*s, Y: u.X*s + u.Y*k}
		o.pts = append(o.pts, c.Add(v.Mul(o.d)))
	}
}

// arcSteps chooses the number of chords for an arc so that the sagitta of
// each chord stays below the flatness in device space.
func (o *outliner) arcSteps(sweep float64) int {
	step := math.Pi / 2
	if r := o.d * o.scale; r > o.flatness {
		step = 2 * math.Acos(1-o.flatness/r)
	}
	n := math.Ceil(sweep / step)
	if !(n >= 1) {
		return 1
	}
	return int(min(n, maxCurveSegments))
}
