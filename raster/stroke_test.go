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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func line(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).MoveTo(vec.Vec2{X: x0, Y: y0}).LineTo(vec.Vec2{X: x1, Y: y1})
}

// strokeArea returns the area covered by stroking p, measured through the
// rasterizer's coverage output.
func strokeArea(r *Rasterizer, p *path.Data) float64 {
	w, h := int(r.Clip.URx), int(r.Clip.URy)
	return total(coverageGrid(w, h, func(emit func(int, int, []float32)) {
		r.Stroke(p, emit)
	}))
}

func TestStrokeOutlineArea(t *testing.T) {
	const length, width = 100.0, 4.0

	cases := []struct {
		cap  graphics.LineCapStyle
		want float64
	}{
		{graphics.LineCapButt, length * width},
		{graphics.LineCapSquare, (length + width) * width},
		{graphics.LineCapRound, length*width + math.Pi*width*width/4},
	}
	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 120, URy: 20})
			r.Width = width
			r.Cap = tc.cap
			r.Flatness = 0.05

			p := line(10, 10, 10+length, 10)
			outline := r.StrokeOutline(p)
			if outline == nil {
				t.Fatal("empty outline")
			}
			if got := math.Abs(signedArea(outline)); math.Abs(got-tc.want) > 0.5 {
				t.Errorf("outline area: got %.3f, want %.3f", got, tc.want)
			}
			if got := strokeArea(r, p); math.Abs(got-tc.want) > 0.5 {
				t.Errorf("covered area: got %.3f, want %.3f", got, tc.want)
			}
		})
	}
}

// signedArea sums the shoelace areas of all polygons in p.
func signedArea(p *path.Data) float64 {
	var sum float64
	var poly []vec.Vec2
	flush := func() {
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			sum += a.X*b.Y - b.X*a.Y
		}
		poly = poly[:0]
	}
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			poly = append(poly, p.Coords[k])
			k++
		case path.CmdLineTo:
			poly = append(poly, p.Coords[k])
			k++
		case path.CmdClose:
			flush()
		}
	}
	flush()
	return sum / 2
}

func TestStrokeOutlineEmpty(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Width = 2

	if got := r.StrokeOutline(nil); got != nil {
		t.Errorf("nil path: got %v", got)
	}
	if got := r.StrokeOutline((&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 1})); got != nil {
		t.Errorf("lone MoveTo: got %v", got)
	}

	dot := line(5, 5, 5, 5)
	for _, c := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapSquare} {
		r.Cap = c
		if got := r.StrokeOutline(dot); got != nil {
			t.Errorf("zero-length line with %s cap: got %v", c, got)
		}
	}

	r.Cap = graphics.LineCapRound
	r.Flatness = 0.001
	outline := r.StrokeOutline(dot)
	if outline == nil {
		t.Fatal("zero-length line with round cap: no outline")
	}
	if got := math.Abs(signedArea(outline)); math.Abs(got-math.Pi) > 0.1 {
		t.Errorf("dot area: got %.3f, want %.3f", got, math.Pi)
	}
}

func TestStrokeWidthClamp(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 120, URy: 20})
	r.Width = 0
	outline := r.StrokeOutline(line(10, 10, 110, 10))
	if outline == nil {
		t.Fatal("zero width: no outline")
	}
	if got := math.Abs(signedArea(outline)); math.Abs(got-100*minStrokeWidth) > 1e-6 {
		t.Errorf("area: got %v, want %v", got, 100*minStrokeWidth)
	}
}

func TestStrokeCoverage(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Width = 2
	grid := coverageGrid(10, 10, func(emit func(int, int, []float32)) {
		r.Stroke(line(2, 5, 8, 5), emit)
	})
	for y, row := range grid {
		for x, c := range row {
			var want float32
			if (y == 4 || y == 5) && x >= 2 && x < 8 {
				want = 1
			}
			if math.Abs(float64(c-want)) > 1e-6 {
				t.Errorf("pixel (%d, %d): got %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestStrokeJoins(t *testing.T) {
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 25, Y: 5}).
		LineTo(vec.Vec2{X: 25, Y: 25})

	area := func(join graphics.LineJoinStyle, limit float64) float64 {
		r := NewRasterizer(rect.Rect{URx: 40, URy: 40})
		r.Width = 2
		r.Flatness = 0.01
		r.Join = join
		r.MiterLimit = limit
		return strokeArea(r, corner)
	}

	miter := area(graphics.LineJoinMiter, 10)
	bevel := area(graphics.LineJoinBevel, 10)
	clipped := area(graphics.LineJoinMiter, 1)
	round := area(graphics.LineJoinRound, 10)

	// the miter adds the unit square at the outer corner, the bevel half of it
	if d := miter - bevel; math.Abs(d-0.5) > 0.05 {
		t.Errorf("miter - bevel: got %.3f, want 0.5", d)
	}
	if math.Abs(clipped-bevel) > 1e-3 {
		t.Errorf("miter over the limit: got %.3f, want bevel area %.3f", clipped, bevel)
	}
	if d := round - bevel; math.Abs(d-(math.Pi/4-0.5)) > 0.05 {
		t.Errorf("round - bevel: got %.3f, want %.3f", d, math.Pi/4-0.5)
	}
}

func TestStrokeClosed(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 40, URy: 40})
	r.Width = 2
	square := rectPath(10, 10, 30, 30)
	grid := coverageGrid(40, 40, func(emit func(int, int, []float32)) {
		r.Stroke(square, emit)
	})

	if got, want := total(grid), 22.0*22-18*18; math.Abs(got-want) > 1e-3 {
		t.Errorf("area: got %v, want %v", got, want)
	}
	if grid[20][20] != 0 {
		t.Errorf("interior is painted: %v", grid[20][20])
	}
	if grid[9][9] != 1 || grid[10][10] != 1 {
		t.Errorf("corner pixels: %v %v", grid[9][9], grid[10][10])
	}
}

func TestStrokeCusp(t *testing.T) {
	back := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 30, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 10})

	r := NewRasterizer(rect.Rect{URx: 40, URy: 20})
	r.Width = 2
	r.Cap = graphics.LineCapSquare
	grid := coverageGrid(40, 20, func(emit func(int, int, []float32)) {
		r.Stroke(back, emit)
	})
	// the turning point gets a square cap reaching to x = 31
	if grid[9][30] != 1 || grid[10][30] != 1 {
		t.Errorf("cusp cap missing: %v %v", grid[9][30], grid[10][30])
	}
	if grid[9][31] != 0 {
		t.Errorf("cusp cap too long: %v", grid[9][31])
	}
}
