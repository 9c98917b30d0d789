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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// coverageGrid renders into a w×h grid of coverage values.
func coverageGrid(w, h int, draw func(emit func(y, xMin int, coverage []float32))) [][]float32 {
	grid := make([][]float32, h)
	for y := range grid {
		grid[y] = make([]float32, w)
	}
	draw(func(y, xMin int, coverage []float32) {
		copy(grid[y][xMin:], coverage)
	})
	return grid
}

func total(grid [][]float32) float64 {
	sum := 0.0
	for _, row := range grid {
		for _, c := range row {
			sum += float64(c)
		}
	}
	return sum
}

func rectPath(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// TestTriangleCoverage checks exact coverage values for the triangle
// (0,0), (10,0), (10,1), whose diagonal edge is y = x/10.  Pixel x is
// covered to (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	tri := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
	grid := coverageGrid(10, 1, func(emit func(int, int, []float32)) {
		r.Fill(tri, NonZero, emit)
	})

	for x, got := range grid[0] {
		want := float32(2*x+1) / 20
		if math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("pixel %d: got %.4f, want %.4f", x, got, want)
		}
	}
}

func TestFillRules(t *testing.T) {
	p := rectPath(0, 0, 10, 10)
	// same orientation as the outer square
	p.MoveTo(vec.Vec2{X: 3, Y: 3}).
		LineTo(vec.Vec2{X: 7, Y: 3}).
		LineTo(vec.Vec2{X: 7, Y: 7}).
		LineTo(vec.Vec2{X: 3, Y: 7}).
		Close()

	cases := []struct {
		rule         FillRule
		inner, outer float32
	}{
		{NonZero, 1, 1},
		{EvenOdd, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.rule.String(), func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
			grid := coverageGrid(10, 10, func(emit func(int, int, []float32)) {
				r.Fill(p, tc.rule, emit)
			})
			if got := grid[5][5]; got != tc.inner {
				t.Errorf("inner pixel: got %v, want %v", got, tc.inner)
			}
			if got := grid[1][1]; got != tc.outer {
				t.Errorf("outer pixel: got %v, want %v", got, tc.outer)
			}
		})
	}
}

func TestFillClipped(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	rows := 0
	r.Fill(rectPath(-5, -5, 15, 15), NonZero, func(y, xMin int, coverage []float32) {
		rows++
		if xMin != 0 || len(coverage) != 10 {
			t.Errorf("row %d: got span [%d, %d)", y, xMin, xMin+len(coverage))
		}
		for i, c := range coverage {
			if c != 1 {
				t.Errorf("pixel (%d, %d): got %v", xMin+i, y, c)
			}
		}
	})
	if rows != 10 {
		t.Errorf("got %d rows, want 10", rows)
	}
}

func TestFillCTM(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	r.CTM = matrix.Matrix{10, 0, 0, 10, 2, 3}
	grid := coverageGrid(20, 20, func(emit func(int, int, []float32)) {
		r.Fill(rectPath(0, 0, 1, 1), NonZero, emit)
	})
	if got := total(grid); math.Abs(got-100) > 1e-3 {
		t.Errorf("covered area: got %v, want 100", got)
	}
	if grid[3][2] != 1 || grid[12][11] != 1 || grid[13][12] != 0 {
		t.Errorf("unexpected placement: %v %v %v", grid[3][2], grid[12][11], grid[13][12])
	}
}

func TestFillEmpty(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	emit := func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output in row %d", y)
	}
	r.Fill(nil, NonZero, emit)
	r.Fill((&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 1}), NonZero, emit)
	r.Fill(rectPath(20, 20, 30, 30), NonZero, emit)
}

func TestFillFarAway(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	emit := func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output in row %d", y)
	}
	r.Fill(rectPath(1e19, 1, 2e19, 5), NonZero, emit)
	r.Fill(rectPath(-2e19, 1, -1e19, 5), NonZero, emit)
	r.Fill(rectPath(1, 1e19, 5, 2e19), NonZero, emit)
	r.Fill(rectPath(1e300, -1e300, 2e300, 1e300), NonZero, emit)

	rows := 0
	r.Fill(rectPath(-1e19, -1e19, 1e19, 1e19), NonZero, func(y, xMin int, coverage []float32) {
		rows++
		if xMin < 0 || xMin+len(coverage) > 10 {
			t.Errorf("row %d: span [%d, %d) outside the clip", y, xMin, xMin+len(coverage))
		}
	})
	if rows != 10 {
		t.Errorf("got %d rows, want 10", rows)
	}
}

func TestFlattenSubpaths(t *testing.T) {
	a, b, c := vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 10}
	p := &path.Data{
		Cmds: []path.Command{
			path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
			path.CmdLineTo, // starts a new subpath at a
			path.CmdMoveTo, // no drawing command, dropped
		},
		Coords: []vec.Vec2{a, b, c, a, c, b},
	}

	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	got := r.Flatten(p)
	if len(got) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(got))
	}
	if !got[0].Closed || len(got[0].Points) != 3 {
		t.Errorf("first subpath: %+v", got[0])
	}
	if got[1].Closed || len(got[1].Points) != 2 || got[1].Points[0] != a {
		t.Errorf("second subpath: %+v", got[1])
	}
}

func TestFlattenTolerance(t *testing.T) {
	const k = 0.5522847498
	quarter := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 0}).
		CubeTo(vec.Vec2{X: 1, Y: k}, vec.Vec2{X: k, Y: 1}, vec.Vec2{X: 0, Y: 1})

	r := NewRasterizer(rect.Rect{URx: 100, URy: 100})
	small := len(r.Flatten(quarter)[0].Points)
	r.CTM = matrix.Matrix{100, 0, 0, 100, 0, 0}
	large := len(r.Flatten(quarter)[0].Points)
	if small < 2 || large <= small {
		t.Errorf("segment counts: %d at unit scale, %d at scale 100", small, large)
	}

	// every flattened point must lie close to the unit circle
	for _, q := range r.Flatten(quarter)[0].Points {
		if d := math.Abs(q.Length()-1) * 100; d > 0.5 {
			t.Errorf("point %v is %.3f pixels off the arc", q, d)
		}
	}
}

func TestFlattenDegenerate(t *testing.T) {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 3, Y: 4}).LineTo(vec.Vec2{X: 3, Y: 4})
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	got := r.Flatten(p)
	if len(got) != 1 || len(got[0].Points) != 1 {
		t.Errorf("got %+v, want a single one-point subpath", got)
	}
}
