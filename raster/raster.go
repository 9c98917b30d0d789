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

// Package raster turns paths into anti-aliased pixel coverage and builds
// the fill outlines of stroked paths.
//
// Coverage is computed analytically. Every edge deposits a signed cover
// value and an area value into the pixel cells it crosses, and a running
// sum along each scanline turns these into the covered fraction of each
// pixel.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vecpaint/affine"
)

// FillRule selects how winding numbers are turned into coverage.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(?)"
	}
}

// edge is a non-horizontal line segment in device space, stored top to
// bottom.
type edge struct {
	x0, y0 float64 // upper end point
	y1     float64 // lower y coordinate
	dxdy   float64
	dir    float32 // +1 if the original segment pointed downwards, else -1
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// Rasterizer converts paths to coverage values between 0 (outside) and 1
// (inside). A Rasterizer can be reused for many paths; its scratch buffers
// grow as needed.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates. The coordinates must
	// be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the stroke width in user space. Values below 0.1 are
	// raised to 0.1.
	Width float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MiterLimit bounds the ratio of miter length to stroke width.
	// It is clamped to [1, 100].
	MiterLimit float64

	// Dash lists alternating on and off lengths in user space.
	// A nil slice, or one without positive entries, means a solid line.
	Dash      []float64
	DashPhase float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	xLo, xHi, yLo, yHi float64 // device space bounding box of edges
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with an
// identity CTM and a one unit wide solid stroke.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Fill computes the coverage of the interior of p. Open subpaths are closed
// implicitly. The emit callback is called once per scanline with non-zero
// coverage, in increasing y order. The coverage slice is only valid during
// the call.
func (r *Rasterizer) Fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	for _, pl := range r.Flatten(p) {
		r.addPolygon(pl.Points)
	}
	r.scan(rule, emit)
}

func (r *Rasterizer) addPolygon(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	prev := pts[len(pts)-1]
	for _, q := range pts {
		r.addEdge(prev, q)
		prev = q
	}
}

func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	a = affine.Apply(r.CTM, a)
	b = affine.Apply(r.CTM, b)
	if !finite(a) || !finite(b) {
		return
	}
	if math.Abs(b.Y-a.Y) < horizontalEdgeThreshold {
		return
	}

	dir := float32(1)
	if b.Y < a.Y {
		a, b = b, a
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0:   a.X,
		y0:   a.Y,
		y1:   b.Y,
		dxdy: (b.X - a.X) / (b.Y - a.Y),
		dir:  dir,
	})

	if len(r.edges) == 1 {
		r.xLo, r.xHi = min(a.X, b.X), max(a.X, b.X)
		r.yLo, r.yHi = a.Y, b.Y
		return
	}
	r.xLo = min(r.xLo, a.X, b.X)
	r.xHi = max(r.xHi, a.X, b.X)
	r.yLo = min(r.yLo, a.Y)
	r.yHi = max(r.yHi, b.Y)
}

func finite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// scan walks the scanlines covered by r.edges, keeping a list of the edges
// which intersect the current scanline.
func (r *Rasterizer) scan(rule FillRule, emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	// Clip in floating point; the result lies inside the clip rectangle
	// and converts to int safely.
	xLo := max(math.Floor(r.xLo), r.Clip.LLx)
	xHi := min(math.Floor(r.xHi)+1, r.Clip.URx)
	yLo := max(math.Floor(r.yLo), r.Clip.LLy)
	yHi := min(math.Ceil(r.yHi), r.Clip.URy)
	if !(xLo < xHi && yLo < yHi) {
		return
	}
	xMin, xMax := int(xLo), int(xHi)
	yMin, yMax := int(yLo), int(yHi)
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		keep := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].y1 > top {
				keep = append(keep, i)
			}
		}
		r.active = keep
		for next < len(r.edges) && r.edges[next].y0 < bot {
			if r.edges[next].y1 > top {
				r.active = append(r.active, next)
			}
			next++
		}
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			e := &r.edges[i]
			ya, yb := max(top, e.y0), min(bot, e.y1)
			if yb > ya {
				r.deposit(e, ya, yb, xMin, xMax)
			}
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// deposit adds the contribution of the part of e between ya and yb, which
// lie within a single scanline. Everything left of xMin is accumulated in
// the first cell, everything right of xMax is dropped.
func (r *Rasterizer) deposit(e *edge, ya, yb float64, xMin, xMax int) {
	h := float32(yb-ya) * e.dir
	xa, xb := e.xAt(ya), e.xAt(yb)
	lo, hi := min(xa, xb), max(xa, xb)

	left := float64(xMin)
	if hi <= left {
		r.cover[0] += h
		r.area[0] += h
		return
	}
	if lo >= float64(xMax) {
		return
	}

	if hi-lo < 1e-9 {
		px := math.Floor(lo)
		r.cell(int(px), h, (lo+hi)/2-px, xMin, xMax)
		return
	}

	// The edge is straight, so its height inside each pixel column is
	// proportional to its horizontal extent there.
	span := hi - lo
	if lo < left {
		c := h * float32((left-lo)/span)
		r.cover[0] += c
		r.area[0] += c
		lo = left
	}
	last := min(int(math.Floor(hi)), xMax-1)
	for px := int(math.Floor(lo)); px <= last; px++ {
		l := max(lo, float64(px))
		u := min(hi, float64(px+1))
		if u <= l {
			continue
		}
		c := h * float32((u-l)/span)
		r.cell(px, c, (l+u)/2-float64(px), xMin, xMax)
	}
}

// cell records cover c at horizontal position px+frac.
func (r *Rasterizer) cell(px int, c float32, frac float64, xMin, xMax int) {
	switch {
	case px < xMin:
		r.cover[0] += c
		r.area[0] += c
	case px < xMax:
		i := px - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-frac)
	}
}

// integrateNonZero replaces cover with the final coverage values.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd replaces cover with the final coverage values.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(math.Floor(float64(v/2)))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the sub-slice between the first and the last non-zero
// value, together with its offset. It returns nil if all values are zero.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit converts joins sharper than about 11.5° into bevels.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6

	// cuspCosine detects a path doubling back on itself.
	cuspCosine = -0.9999

	minStrokeWidth = 0.1
	maxMiterLimit  = 100

	// maxCurveSegments bounds the work spent on a single curve.
	maxCurveSegments = 1 << 12
)
